package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-backend/internal/auth"
	"salon-backend/internal/cache"
	"salon-backend/internal/config"
	"salon-backend/internal/coordinator"
	"salon-backend/internal/handlers"
	"salon-backend/internal/health"
	"salon-backend/internal/middleware"
	"salon-backend/internal/models"
	"salon-backend/internal/remote"
	"salon-backend/internal/session"
)

// gatewayBackend is the backend stub shared by the route tests. Admin
// permission is toggled per test to drive the gate.
type gatewayBackend struct {
	remote.Backend

	adminGranted bool
}

func (b *gatewayBackend) VerifyAdminLogin(ctx context.Context, username, password string) (bool, error) {
	return username == "joana" && password == "joana123", nil
}

func (b *gatewayBackend) IsCallerAdmin(ctx context.Context) (bool, error) {
	return b.adminGranted, nil
}

func (b *gatewayBackend) ListProducts(ctx context.Context) ([]models.Product, error) {
	return []models.Product{{ID: 1, Name: "Shampoo", Quantity: 12, MinThreshold: 5}}, nil
}

func (b *gatewayBackend) ListServices(ctx context.Context) ([]models.Service, error) {
	return []models.Service{
		{ID: 1, Name: "Corte", Active: true},
		{ID: 2, Name: "Luzes", Active: false},
	}, nil
}

func (b *gatewayBackend) Ping(ctx context.Context) error { return nil }

type memoryRecordStore struct {
	record models.AdminSession
	found  bool
}

func (m *memoryRecordStore) Load() (models.AdminSession, bool, error) {
	return m.record, m.found, nil
}

func (m *memoryRecordStore) Save(record models.AdminSession) error {
	m.record, m.found = record, true
	return nil
}

func (m *memoryRecordStore) Clear() error {
	m.record, m.found = models.AdminSession{}, false
	return nil
}

func newTestRouter(t *testing.T, backend *gatewayBackend) stdhttp.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "salon-backend"

	logger := zerolog.Nop()
	store := cache.NewStore()
	queries := coordinator.NewQuery(backend, store, logger)
	mutator := coordinator.NewMutator(backend, store, queries, logger)

	gate, err := session.NewGate(backend, &memoryRecordStore{}, logger)
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager(cfg)

	return NewRouter(
		handlers.NewSessionHandler(gate, jwtManager),
		handlers.NewAgendaHandler(queries, mutator),
		handlers.NewClientHandler(queries, mutator),
		handlers.NewInventoryHandler(queries, mutator),
		handlers.NewServiceHandler(queries, mutator),
		handlers.NewFinanceHandler(queries, mutator),
		handlers.NewPortfolioHandler(queries),
		handlers.NewAdminHandler(mutator),
		handlers.NewHealthHandler(health.NewHealthChecker(backend)),
		middleware.NewAuthMiddleware(jwtManager, gate),
	)
}

func login(t *testing.T, router stdhttp.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(models.LoginRequest{Username: username, Password: password})
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginIssuesToken(t *testing.T) {
	router := newTestRouter(t, &gatewayBackend{adminGranted: true})

	rec := login(t, router, "joana", "joana123")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.Session.IsAuthenticated)
	assert.Equal(t, models.RoleAdmin, resp.Session.Role)
}

func TestLoginDenied(t *testing.T) {
	router := newTestRouter(t, &gatewayBackend{adminGranted: true})

	rec := login(t, router, "joana", "wrong")
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router := newTestRouter(t, &gatewayBackend{adminGranted: true})

	req := httptest.NewRequest("GET", "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
}

func TestProtectedRouteWithToken(t *testing.T) {
	router := newTestRouter(t, &gatewayBackend{adminGranted: true})

	rec := login(t, router, "joana", "joana123")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 1)
}

func TestTokenAloneIsNotSufficient(t *testing.T) {
	backend := &gatewayBackend{adminGranted: true}
	router := newTestRouter(t, backend)

	rec := login(t, router, "joana", "joana123")
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// The backend revokes admin permission after the token was issued.
	backend.adminGranted = false

	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["relogin"], "a permission mismatch tells the View to re-login")

	// The gate was reset, so the session view reflects the logout.
	req = httptest.NewRequest("GET", "/auth/session", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var sess models.AdminSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.False(t, sess.IsAuthenticated)
}

func TestPublicBookingViewNeedsNoToken(t *testing.T) {
	router := newTestRouter(t, &gatewayBackend{})

	req := httptest.NewRequest("GET", "/api/services/active", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var services []models.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &services))
	require.Len(t, services, 1, "inactive services are excluded from the booking view")
	assert.Equal(t, "Corte", services[0].Name)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &gatewayBackend{})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, stdhttp.StatusOK, rec.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	router := newTestRouter(t, &gatewayBackend{adminGranted: true})

	rec := login(t, router, "joana", "joana123")
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	req = httptest.NewRequest("GET", "/auth/session", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	var sess models.AdminSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.False(t, sess.IsAuthenticated)
}
