package coordinator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-backend/internal/cache"
	"salon-backend/internal/models"
)

func newTestQuery(backend *stubBackend) (*Query, *cache.Store) {
	store := cache.NewStore()
	return NewQuery(backend, store, zerolog.Nop()), store
}

func TestFetchPopulatesCache(t *testing.T) {
	backend := &stubBackend{
		listProducts: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: 1, Name: "Shampoo"}}, nil
		},
	}
	q, store := newTestQuery(backend)

	products, err := q.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	snap, ok := store.Get(cache.ListKey(cache.Products))
	require.True(t, ok)
	assert.False(t, snap.IsStale)
	assert.Equal(t, uint64(1), snap.Generation)
}

func TestFetchServesFreshFromCache(t *testing.T) {
	backend := &stubBackend{
		listProducts: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: 1}}, nil
		},
	}
	q, _ := newTestQuery(backend)

	_, err := q.Products(context.Background())
	require.NoError(t, err)
	_, err = q.Products(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), backend.listProductCalls.Load(),
		"a fresh entry is served from memory without a backend call")
}

func TestFetchRefetchesStaleEntry(t *testing.T) {
	backend := &stubBackend{
		listProducts: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: 1}}, nil
		},
	}
	q, store := newTestQuery(backend)

	_, err := q.Products(context.Background())
	require.NoError(t, err)

	store.Invalidate(cache.Products)

	_, err = q.Products(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), backend.listProductCalls.Load())

	snap, _ := store.Get(cache.ListKey(cache.Products))
	assert.False(t, snap.IsStale)
	assert.Equal(t, uint64(2), snap.Generation)
}

func TestConcurrentFetchesCoalesce(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once

	backend := &stubBackend{
		listProducts: func(ctx context.Context) ([]models.Product, error) {
			once.Do(func() { close(started) })
			<-release
			return []models.Product{{ID: 7}}, nil
		},
	}
	q, _ := newTestQuery(backend)

	const callers = 10
	var wg sync.WaitGroup
	results := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = q.Products(context.Background())
		}()
	}

	<-started
	close(release)
	wg.Wait()

	for _, err := range results {
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), backend.listProductCalls.Load(),
		"identical in-flight reads share one backend call")
}

func TestFetchFailureKeepsPreviousSnapshot(t *testing.T) {
	var fail bool
	backend := &stubBackend{
		listProducts: func(ctx context.Context) ([]models.Product, error) {
			if fail {
				return nil, errors.New("backend down")
			}
			return []models.Product{{ID: 1, Quantity: 3}}, nil
		},
	}
	q, store := newTestQuery(backend)

	_, err := q.Products(context.Background())
	require.NoError(t, err)

	store.Invalidate(cache.Products)
	fail = true

	_, err = q.Products(context.Background())
	require.Error(t, err)

	snap, ok := store.Get(cache.ListKey(cache.Products))
	require.True(t, ok, "the previous snapshot survives a failed refetch")
	assert.True(t, snap.IsStale)
	assert.False(t, snap.IsLoading)
	assert.Equal(t, uint64(1), snap.Generation)
	products := snap.Value.([]models.Product)
	assert.Equal(t, float64(3), products[0].Quantity)
}

func TestAppointmentsCombineAllStatuses(t *testing.T) {
	backend := &stubBackend{
		apptsByStatus: func(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
			switch status {
			case models.StatusConfirmed:
				return []models.Appointment{{ID: 1, Status: status}, {ID: 2, Status: status}}, nil
			case models.StatusInProgress:
				return []models.Appointment{{ID: 3, Status: status}}, nil
			case models.StatusFinished:
				return []models.Appointment{{ID: 4, Status: status}}, nil
			}
			return nil, nil
		},
	}
	q, _ := newTestQuery(backend)

	appts, err := q.Appointments(context.Background())
	require.NoError(t, err)
	require.Len(t, appts, 4)

	// Status groups keep their assembly order regardless of which read
	// finished first.
	var ids []int64
	for _, a := range appts {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)
}

func TestAppointmentsFailWhenOneStatusFails(t *testing.T) {
	backend := &stubBackend{
		apptsByStatus: func(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
			if status == models.StatusInProgress {
				return nil, errors.New("boom")
			}
			return []models.Appointment{{ID: 1, Status: status}}, nil
		},
	}
	q, store := newTestQuery(backend)

	_, err := q.Appointments(context.Background())
	require.Error(t, err)

	_, ok := store.Get(cache.ListKey(cache.Appointments))
	assert.False(t, ok, "a partial snapshot is never cached")
}

func TestPeekNeverBlocks(t *testing.T) {
	q, store := newTestQuery(&stubBackend{})

	_, ok := q.Peek(cache.ListKey(cache.Clients))
	assert.False(t, ok, "an entry that was never fetched is unknown")

	store.Set(cache.ListKey(cache.Clients), []models.Client{{ID: 1}})
	store.Invalidate(cache.Clients)

	snap, ok := q.Peek(cache.ListKey(cache.Clients))
	require.True(t, ok)
	assert.True(t, snap.IsStale, "a stale snapshot is still served without a backend call")
}

func TestMonthlyAggregatesPreserveMonthOrder(t *testing.T) {
	backend := &stubBackend{}
	q, store := newTestQuery(backend)

	// January: 100 income, 30 expense. February: 200 income, 50 expense.
	// Months with no transactions are absent, not zero rows.
	store.Set(cache.Key{Type: cache.MonthlyAggregates, Params: "2026"}, []models.MonthlyAggregate{
		{Month: "2026-01", TotalIncome: 100, TotalExpense: 30},
		{Month: "2026-02", TotalIncome: 200, TotalExpense: 50},
	})

	aggs, err := q.MonthlyAggregates(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, aggs, 2)
	assert.Equal(t, "2026-01", aggs[0].Month)
	assert.Equal(t, float64(100), aggs[0].TotalIncome)
	assert.Equal(t, "2026-02", aggs[1].Month)
	assert.Equal(t, float64(50), aggs[1].TotalExpense)
}

func TestMonthlyAggregatesKeyedByYear(t *testing.T) {
	backend := &stubBackend{}
	q, store := newTestQuery(backend)

	store.Set(cache.Key{Type: cache.MonthlyAggregates, Params: "2026"}, []models.MonthlyAggregate{
		{Month: "2026-01", TotalIncome: 100, TotalExpense: 40},
	})

	aggs, err := q.MonthlyAggregates(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, aggs, 1)
	assert.Equal(t, "2026-01", aggs[0].Month)
}
