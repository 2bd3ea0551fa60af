// Package remote holds the contract with the salon domain backend. The
// backend owns all durable state and applies each operation atomically; this
// layer treats it as an opaque request/response service.
package remote

import (
	"context"

	"salon-backend/internal/models"
)

// Backend is the full operation surface the coordinators are allowed to call.
// Implementations must wrap every failure as a RemoteCallFailed error.
type Backend interface {
	// Clients
	ListClients(ctx context.Context) ([]models.Client, error)
	AddClient(ctx context.Context, req *models.AddClientRequest) (int64, error)
	AddVisit(ctx context.Context, clientID, appointmentID int64) error
	UpdateLoyaltyPoints(ctx context.Context, clientID, points int64) error

	// Service catalog
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id int64) (*models.Service, error)
	AddService(ctx context.Context, req *models.AddServiceRequest) (int64, error)
	SetServiceStatus(ctx context.Context, id int64, active bool) error

	// Appointments
	AppointmentsByStatus(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, req *models.CreateAppointmentRequest) (int64, error)

	// Inventory
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	AddProduct(ctx context.Context, req *models.AddProductRequest) (int64, error)
	UpdateProductQuantity(ctx context.Context, id int64, newQuantity float64) error

	// Finances
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	AddTransaction(ctx context.Context, req *models.AddTransactionRequest) (int64, error)
	UpdateTransaction(ctx context.Context, id int64, req *models.UpdateTransactionRequest) error
	DeleteTransaction(ctx context.Context, id int64) error
	MonthlyAggregates(ctx context.Context, year int) ([]models.MonthlyAggregate, error)

	// Portfolio
	PortfolioByTag(ctx context.Context, tag string) ([]models.PortfolioPhoto, error)

	// Auth
	VerifyAdminLogin(ctx context.Context, username, password string) (bool, error)
	IsCallerAdmin(ctx context.Context) (bool, error)
	AssignRole(ctx context.Context, subject string, role models.Role) error
	UpdateAdminCredentials(ctx context.Context, req *models.UpdateCredentialsRequest) error
}
