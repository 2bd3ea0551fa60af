package coordinator

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"salon-backend/internal/cache"
	"salon-backend/internal/metrics"
	"salon-backend/internal/models"
	"salon-backend/internal/remote"
	"salon-backend/internal/salonerr"
)

// Mutator issues writes against the backend. On success it invalidates the
// cache families the write can affect; on failure every cache stays exactly
// as it was. No silent retries, no partial writes.
type Mutator struct {
	backend  remote.Backend
	store    *cache.Store
	queries  *Query
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewMutator(backend remote.Backend, store *cache.Store, queries *Query, logger zerolog.Logger) *Mutator {
	return &Mutator{
		backend:  backend,
		store:    store,
		queries:  queries,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With().Str("component", "mutator").Logger(),
	}
}

// checkStruct rejects invalid payloads before any remote call is issued.
func (m *Mutator) checkStruct(req interface{}) error {
	if err := m.validate.Struct(req); err != nil {
		return salonerr.Wrap(salonerr.KindValidationRejected, "invalid payload", err)
	}
	return nil
}

func (m *Mutator) invalidate(types ...cache.EntityType) {
	for _, t := range types {
		m.store.Invalidate(t)
		metrics.CacheInvalidations.WithLabelValues(string(t)).Inc()
	}
}

// CreateAppointment books an appointment and registers the visit against
// the client. These are two backend operations with no cross-call
// atomicity: if the visit registration fails, the appointment already
// exists and is NOT rolled back. The error reports the partial effect
// instead of hiding it.
func (m *Mutator) CreateAppointment(ctx context.Context, req *models.CreateAppointmentRequest) (int64, error) {
	if err := m.checkStruct(req); err != nil {
		return 0, err
	}

	id, err := m.backend.CreateAppointment(ctx, req)
	if err != nil {
		metrics.RemoteCallsTotal.WithLabelValues("createAppointment", "error").Inc()
		return 0, err
	}
	metrics.RemoteCallsTotal.WithLabelValues("createAppointment", "ok").Inc()
	m.invalidate(cache.Appointments)

	if err := m.backend.AddVisit(ctx, req.ClientID, id); err != nil {
		metrics.RemoteCallsTotal.WithLabelValues("addVisit", "error").Inc()
		m.logger.Error().Err(err).Int64("appointment_id", id).Int64("client_id", req.ClientID).
			Msg("appointment created but visit registration failed")
		return id, salonerr.Wrap(salonerr.KindRemoteCallFailed,
			"appointment created but visit registration failed", err)
	}
	metrics.RemoteCallsTotal.WithLabelValues("addVisit", "ok").Inc()
	m.invalidate(cache.Clients)

	return id, nil
}

func (m *Mutator) AddClient(ctx context.Context, req *models.AddClientRequest) (int64, error) {
	if err := m.checkStruct(req); err != nil {
		return 0, err
	}
	id, err := m.backend.AddClient(ctx, req)
	if err != nil {
		return 0, err
	}
	m.invalidate(cache.Clients)
	return id, nil
}

// UpdateLoyaltyPoints overwrites a client's point count. Points are only
// ever increased or explicitly overwritten; negative values never reach
// the backend.
func (m *Mutator) UpdateLoyaltyPoints(ctx context.Context, clientID, points int64) error {
	if points < 0 {
		return salonerr.Validationf("loyalty points cannot be negative: %d", points)
	}
	if err := m.backend.UpdateLoyaltyPoints(ctx, clientID, points); err != nil {
		return err
	}
	m.invalidate(cache.Clients)
	return nil
}

func (m *Mutator) AddProduct(ctx context.Context, req *models.AddProductRequest) (int64, error) {
	if err := m.checkStruct(req); err != nil {
		return 0, err
	}
	id, err := m.backend.AddProduct(ctx, req)
	if err != nil {
		return 0, err
	}
	m.invalidate(cache.Products)
	return id, nil
}

// AdjustQuantity applies a signed stock adjustment. An adjustment that
// would drive the quantity below zero is rejected before any remote call.
// Returns the new quantity on success.
func (m *Mutator) AdjustQuantity(ctx context.Context, productID int64, delta float64) (float64, error) {
	products, err := m.queries.Products(ctx)
	if err != nil {
		return 0, err
	}

	var current *models.Product
	for i := range products {
		if products[i].ID == productID {
			current = &products[i]
			break
		}
	}
	if current == nil {
		return 0, salonerr.Validationf("unknown product: %d", productID)
	}

	newQuantity := current.Quantity + delta
	if newQuantity < 0 {
		return 0, salonerr.Validationf(
			"adjustment of %v would drive quantity of product %d below zero (current %v)",
			delta, productID, current.Quantity)
	}

	if err := m.backend.UpdateProductQuantity(ctx, productID, newQuantity); err != nil {
		return 0, err
	}
	m.invalidate(cache.Products)
	return newQuantity, nil
}

func (m *Mutator) AddService(ctx context.Context, req *models.AddServiceRequest) (int64, error) {
	if err := m.checkStruct(req); err != nil {
		return 0, err
	}
	id, err := m.backend.AddService(ctx, req)
	if err != nil {
		return 0, err
	}
	m.invalidate(cache.Services)
	return id, nil
}

func (m *Mutator) SetServiceStatus(ctx context.Context, id int64, active bool) error {
	if err := m.backend.SetServiceStatus(ctx, id, active); err != nil {
		return err
	}
	m.invalidate(cache.Services)
	return nil
}

// Transaction writes invalidate both the transaction list and the monthly
// aggregates derived from it.

func (m *Mutator) AddTransaction(ctx context.Context, req *models.AddTransactionRequest) (int64, error) {
	if err := m.checkStruct(req); err != nil {
		return 0, err
	}
	id, err := m.backend.AddTransaction(ctx, req)
	if err != nil {
		return 0, err
	}
	m.invalidate(cache.Transactions, cache.MonthlyAggregates)
	return id, nil
}

func (m *Mutator) UpdateTransaction(ctx context.Context, id int64, req *models.UpdateTransactionRequest) error {
	if err := m.checkStruct(req); err != nil {
		return err
	}
	if err := m.backend.UpdateTransaction(ctx, id, req); err != nil {
		return err
	}
	m.invalidate(cache.Transactions, cache.MonthlyAggregates)
	return nil
}

func (m *Mutator) DeleteTransaction(ctx context.Context, id int64) error {
	if err := m.backend.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	m.invalidate(cache.Transactions, cache.MonthlyAggregates)
	return nil
}

// AssignRole and UpdateAdminCredentials touch no cached entity, so nothing
// is invalidated.

func (m *Mutator) AssignRole(ctx context.Context, req *models.AssignRoleRequest) error {
	if err := m.checkStruct(req); err != nil {
		return err
	}
	return m.backend.AssignRole(ctx, req.Subject, req.Role)
}

func (m *Mutator) UpdateAdminCredentials(ctx context.Context, req *models.UpdateCredentialsRequest) error {
	if err := m.checkStruct(req); err != nil {
		return err
	}
	if req.NewPassword != "" && req.NewPassword != req.ConfirmPassword {
		return salonerr.Validationf("new password and confirmation do not match")
	}
	return m.backend.UpdateAdminCredentials(ctx, req)
}
