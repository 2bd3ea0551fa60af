// Package coordinator contains the only components allowed to call the
// domain backend: the Query side populates the entity cache, the Mutator
// side issues writes and applies the invalidation map.
package coordinator

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"salon-backend/internal/cache"
	"salon-backend/internal/metrics"
	"salon-backend/internal/models"
	"salon-backend/internal/remote"
)

// Query issues reads against the backend and keeps the cache store
// populated. Concurrent identical reads coalesce into one backend call.
type Query struct {
	backend remote.Backend
	store   *cache.Store
	group   singleflight.Group
	logger  zerolog.Logger
}

func NewQuery(backend remote.Backend, store *cache.Store, logger zerolog.Logger) *Query {
	return &Query{
		backend: backend,
		store:   store,
		logger:  logger.With().Str("component", "query").Logger(),
	}
}

// Fetch returns the cached value for key, refetching from the backend when
// the entry is missing or stale. Identical in-flight fetches share one
// backend call. On failure the previous snapshot is left intact and the
// error is surfaced without retry.
func (q *Query) Fetch(ctx context.Context, key cache.Key) (interface{}, error) {
	if snap, ok := q.store.Get(key); ok && !snap.IsStale {
		metrics.CacheReads.WithLabelValues(string(key.Type), "fresh").Inc()
		return snap.Value, nil
	}

	value, err, shared := q.group.Do(groupKey(key), func() (interface{}, error) {
		q.store.MarkLoading(key, true)
		defer q.store.MarkLoading(key, false)

		// Detached from the caller: a read in flight when its consumer is
		// torn down still completes and populates the cache.
		v, err := q.load(context.WithoutCancel(ctx), key)
		if err != nil {
			metrics.RemoteCallsTotal.WithLabelValues("read:"+string(key.Type), "error").Inc()
			return nil, err
		}
		metrics.RemoteCallsTotal.WithLabelValues("read:"+string(key.Type), "ok").Inc()
		q.store.Set(key, v)
		return v, nil
	})
	if err != nil {
		q.logger.Warn().Err(err).Str("type", string(key.Type)).Msg("fetch failed, keeping previous snapshot")
		return nil, err
	}
	if shared {
		metrics.CacheReads.WithLabelValues(string(key.Type), "coalesced").Inc()
	} else {
		metrics.CacheReads.WithLabelValues(string(key.Type), "miss").Inc()
	}
	return value, nil
}

// Peek is the non-blocking read accessor: last known snapshot plus flags,
// straight from memory. An empty-and-loading result means "unknown", never
// "zero records".
func (q *Query) Peek(key cache.Key) (cache.Snapshot, bool) {
	return q.store.Get(key)
}

// load issues the actual backend read for one cache key.
func (q *Query) load(ctx context.Context, key cache.Key) (interface{}, error) {
	switch key.Type {
	case cache.Appointments:
		return q.loadAppointments(ctx)
	case cache.Clients:
		return q.backend.ListClients(ctx)
	case cache.Products:
		return q.backend.ListProducts(ctx)
	case cache.Services:
		return q.backend.ListServices(ctx)
	case cache.Transactions:
		return q.backend.ListTransactions(ctx)
	case cache.MonthlyAggregates:
		year, err := strconv.Atoi(key.Params)
		if err != nil {
			return nil, err
		}
		return q.backend.MonthlyAggregates(ctx, year)
	case cache.Portfolio:
		return q.backend.PortfolioByTag(ctx, key.Params)
	}
	panic("unknown entity type: " + key.Type)
}

// loadAppointments assembles the full appointment snapshot from the three
// per-status reads, fetched concurrently. Order of the status groups is
// stable so repeated snapshots compare predictably.
func (q *Query) loadAppointments(ctx context.Context) ([]models.Appointment, error) {
	results := make([][]models.Appointment, len(models.AllAppointmentStatuses))

	g, gctx := errgroup.WithContext(ctx)
	for i, status := range models.AllAppointmentStatuses {
		g.Go(func() error {
			appts, err := q.backend.AppointmentsByStatus(gctx, status)
			if err != nil {
				return err
			}
			results[i] = appts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.Appointment
	for _, group := range results {
		all = append(all, group...)
	}
	return all, nil
}

// Appointments returns the combined snapshot across all statuses.
func (q *Query) Appointments(ctx context.Context) ([]models.Appointment, error) {
	v, err := q.Fetch(ctx, cache.ListKey(cache.Appointments))
	if err != nil {
		return nil, err
	}
	return v.([]models.Appointment), nil
}

func (q *Query) Clients(ctx context.Context) ([]models.Client, error) {
	v, err := q.Fetch(ctx, cache.ListKey(cache.Clients))
	if err != nil {
		return nil, err
	}
	return v.([]models.Client), nil
}

func (q *Query) Products(ctx context.Context) ([]models.Product, error) {
	v, err := q.Fetch(ctx, cache.ListKey(cache.Products))
	if err != nil {
		return nil, err
	}
	return v.([]models.Product), nil
}

func (q *Query) Services(ctx context.Context) ([]models.Service, error) {
	v, err := q.Fetch(ctx, cache.ListKey(cache.Services))
	if err != nil {
		return nil, err
	}
	return v.([]models.Service), nil
}

func (q *Query) Transactions(ctx context.Context) ([]models.Transaction, error) {
	v, err := q.Fetch(ctx, cache.ListKey(cache.Transactions))
	if err != nil {
		return nil, err
	}
	return v.([]models.Transaction), nil
}

func (q *Query) MonthlyAggregates(ctx context.Context, year int) ([]models.MonthlyAggregate, error) {
	key := cache.Key{Type: cache.MonthlyAggregates, Params: strconv.Itoa(year)}
	v, err := q.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	return v.([]models.MonthlyAggregate), nil
}

func (q *Query) PortfolioByTag(ctx context.Context, tag string) ([]models.PortfolioPhoto, error) {
	key := cache.Key{Type: cache.Portfolio, Params: tag}
	v, err := q.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	return v.([]models.PortfolioPhoto), nil
}

func groupKey(key cache.Key) string {
	return string(key.Type) + "|" + key.Params
}
