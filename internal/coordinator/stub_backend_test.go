package coordinator

import (
	"context"
	"sync/atomic"

	"salon-backend/internal/models"
	"salon-backend/internal/remote"
)

// stubBackend satisfies remote.Backend for tests. Unset methods panic via
// the embedded nil interface, so a test only exercising products never
// silently reaches the appointment surface.
type stubBackend struct {
	remote.Backend

	listProducts  func(ctx context.Context) ([]models.Product, error)
	listClients   func(ctx context.Context) ([]models.Client, error)
	apptsByStatus func(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error)

	createAppointment func(ctx context.Context, req *models.CreateAppointmentRequest) (int64, error)
	addVisit          func(ctx context.Context, clientID, appointmentID int64) error
	addProduct        func(ctx context.Context, req *models.AddProductRequest) (int64, error)
	updateQuantity    func(ctx context.Context, id int64, newQuantity float64) error
	addTransaction    func(ctx context.Context, req *models.AddTransactionRequest) (int64, error)

	listProductCalls    atomic.Int64
	updateQuantityCalls atomic.Int64
}

func (s *stubBackend) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.listProductCalls.Add(1)
	return s.listProducts(ctx)
}

func (s *stubBackend) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.listClients(ctx)
}

func (s *stubBackend) AppointmentsByStatus(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
	return s.apptsByStatus(ctx, status)
}

func (s *stubBackend) CreateAppointment(ctx context.Context, req *models.CreateAppointmentRequest) (int64, error) {
	return s.createAppointment(ctx, req)
}

func (s *stubBackend) AddVisit(ctx context.Context, clientID, appointmentID int64) error {
	return s.addVisit(ctx, clientID, appointmentID)
}

func (s *stubBackend) AddProduct(ctx context.Context, req *models.AddProductRequest) (int64, error) {
	return s.addProduct(ctx, req)
}

func (s *stubBackend) UpdateProductQuantity(ctx context.Context, id int64, newQuantity float64) error {
	s.updateQuantityCalls.Add(1)
	return s.updateQuantity(ctx, id, newQuantity)
}

func (s *stubBackend) AddTransaction(ctx context.Context, req *models.AddTransactionRequest) (int64, error) {
	return s.addTransaction(ctx, req)
}
