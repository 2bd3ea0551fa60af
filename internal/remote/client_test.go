package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-backend/internal/models"
	"salon-backend/internal/salonerr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", zerolog.Nop())
}

func TestListClients(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/clients", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		json.NewEncoder(w).Encode([]models.Client{{ID: 1, Name: "Ana"}})
	})

	clients, err := client.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana", clients[0].Name)
}

func TestAddClientReturnsAssignedID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.AddClientRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Ana", req.Name)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]int64{"id": 42})
	})

	id, err := client.AddClient(context.Background(), &models.AddClientRequest{
		Name: "Ana", ContactInfo: "11 99999-0000",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestAppointmentsByStatusQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "inProgress", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode([]models.Appointment{{ID: 3, Status: models.StatusInProgress}})
	})

	appts, err := client.AppointmentsByStatus(context.Background(), models.StatusInProgress)
	require.NoError(t, err)
	require.Len(t, appts, 1)
}

func TestVerifyAdminLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		valid := body["username"] == "joana" && body["password"] == "joana123"
		json.NewEncoder(w).Encode(map[string]bool{"valid": valid})
	})

	valid, err := client.VerifyAdminLogin(context.Background(), "joana", "joana123")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = client.VerifyAdminLogin(context.Background(), "joana", "wrong")
	require.NoError(t, err)
	assert.False(t, valid, "a false result is not an error")
}

func TestGetServiceByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/7", r.URL.Path)
		json.NewEncoder(w).Encode(models.Service{ID: 7, Name: "Corte", Duration: 45, Active: true})
	})

	svc, err := client.GetService(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Corte", svc.Name)
	assert.Equal(t, 45, svc.Duration)
}

func TestNonSuccessStatusWrapsAsRemoteFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.ListProducts(context.Background())
	require.Error(t, err)
	assert.Equal(t, salonerr.KindRemoteCallFailed, salonerr.KindOf(err))
}

func TestUnreachableBackendWrapsAsRemoteFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", zerolog.Nop())

	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, salonerr.KindRemoteCallFailed, salonerr.KindOf(err))
}

func TestMonthlyAggregatesYearParam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/monthly", r.URL.Path)
		assert.Equal(t, "2026", r.URL.Query().Get("year"))
		json.NewEncoder(w).Encode([]models.MonthlyAggregate{
			{Month: "2026-01", TotalIncome: 900, TotalExpense: 250},
		})
	})

	aggs, err := client.MonthlyAggregates(context.Background(), 2026)
	require.NoError(t, err)
	require.Len(t, aggs, 1)
	assert.Equal(t, float64(900), aggs[0].TotalIncome)
}
