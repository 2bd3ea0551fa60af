package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salon-backend/internal/handlers"
	"salon-backend/internal/middleware"
)

func NewRouter(
	sessionHandler *handlers.SessionHandler,
	agendaHandler *handlers.AgendaHandler,
	clientHandler *handlers.ClientHandler,
	inventoryHandler *handlers.InventoryHandler,
	serviceHandler *handlers.ServiceHandler,
	financeHandler *handlers.FinanceHandler,
	portfolioHandler *handlers.PortfolioHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes - session gate
	r.HandleFunc("/auth/login", sessionHandler.Login).Methods("POST")
	r.HandleFunc("/auth/logout", sessionHandler.Logout).Methods("POST")
	r.HandleFunc("/auth/session", sessionHandler.Session).Methods("GET")

	// Public read routes - booking views the landing pages need
	r.HandleFunc("/api/services/active", serviceHandler.ActiveServices).Methods("GET")
	r.HandleFunc("/api/portfolio", portfolioHandler.ListByTag).Methods("GET")

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Protected API routes - Agenda
	agendaAPI := r.PathPrefix("/api/appointments").Subrouter()
	agendaAPI.Use(authMiddleware.RequireAdmin)
	agendaAPI.HandleFunc("", agendaHandler.ListAppointments).Methods("GET")
	agendaAPI.HandleFunc("", agendaHandler.CreateAppointment).Methods("POST")

	// Protected API routes - Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.Use(authMiddleware.RequireAdmin)
	clientsAPI.HandleFunc("", clientHandler.ListClients).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.AddClient).Methods("POST")
	clientsAPI.HandleFunc("/{id}/loyalty", clientHandler.UpdateLoyalty).Methods("PUT")

	// Protected API routes - Inventory
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.Use(authMiddleware.RequireAdmin)
	productsAPI.HandleFunc("", inventoryHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", inventoryHandler.AddProduct).Methods("POST")
	productsAPI.HandleFunc("/low-stock", inventoryHandler.LowStock).Methods("GET")
	productsAPI.HandleFunc("/{id}/quantity", inventoryHandler.AdjustQuantity).Methods("PATCH")

	// Protected API routes - Service catalog
	servicesAPI := r.PathPrefix("/api/services").Subrouter()
	servicesAPI.Use(authMiddleware.RequireAdmin)
	servicesAPI.HandleFunc("", serviceHandler.ListServices).Methods("GET")
	servicesAPI.HandleFunc("", serviceHandler.AddService).Methods("POST")
	servicesAPI.HandleFunc("/{id}/status", serviceHandler.SetStatus).Methods("PATCH")

	// Protected API routes - Finances
	transactionsAPI := r.PathPrefix("/api/transactions").Subrouter()
	transactionsAPI.Use(authMiddleware.RequireAdmin)
	transactionsAPI.HandleFunc("", financeHandler.ListTransactions).Methods("GET")
	transactionsAPI.HandleFunc("", financeHandler.AddTransaction).Methods("POST")
	transactionsAPI.HandleFunc("/{id}", financeHandler.UpdateTransaction).Methods("PUT")
	transactionsAPI.HandleFunc("/{id}", financeHandler.DeleteTransaction).Methods("DELETE")

	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.RequireAdmin)
	reportsAPI.HandleFunc("/monthly", financeHandler.MonthlyReport).Methods("GET")

	// Protected API routes - Admin account
	adminAPI := r.PathPrefix("/api/admin").Subrouter()
	adminAPI.Use(authMiddleware.RequireAdmin)
	adminAPI.HandleFunc("/credentials", adminHandler.UpdateCredentials).Methods("POST")
	adminAPI.HandleFunc("/roles", adminHandler.AssignRole).Methods("POST")

	return r
}
