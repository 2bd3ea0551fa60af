package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"salon-backend/internal/auth"
	"salon-backend/internal/cache"
	"salon-backend/internal/config"
	"salon-backend/internal/coordinator"
	"salon-backend/internal/handlers"
	"salon-backend/internal/health"
	h "salon-backend/internal/http"
	"salon-backend/internal/middleware"
	"salon-backend/internal/remote"
	"salon-backend/internal/session"
)

func main() {
	// Parse command-line flags
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		logger = logger.Level(level)
	}

	// Remote domain backend client - the only component that talks to the
	// backend is the coordinator/gate layer built on top of it.
	backend := remote.NewClient(cfg.Backend.BaseURL, cfg.Backend.APIKey, logger)

	// Entity cache store and coordinators
	store := cache.NewStore()
	queries := coordinator.NewQuery(backend, store, logger)
	mutator := coordinator.NewMutator(backend, store, queries, logger)

	// Session gate with its persisted record
	sessionStore, err := session.OpenBoltStore(cfg.Session.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Session.Path).Msg("failed to open session store")
	}
	defer sessionStore.Close()

	gate, err := session.NewGate(backend, sessionStore, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to restore session gate")
	}

	// JWT manager for the View bearer token
	jwtManager := auth.NewJWTManager(cfg)

	// Health checker against the remote backend
	healthChecker := health.NewHealthChecker(backend)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, gate)
	corsMiddleware := middleware.NewCORS(cfg)

	// Handlers
	sessionHandler := handlers.NewSessionHandler(gate, jwtManager)
	agendaHandler := handlers.NewAgendaHandler(queries, mutator)
	clientHandler := handlers.NewClientHandler(queries, mutator)
	inventoryHandler := handlers.NewInventoryHandler(queries, mutator)
	serviceHandler := handlers.NewServiceHandler(queries, mutator)
	financeHandler := handlers.NewFinanceHandler(queries, mutator)
	portfolioHandler := handlers.NewPortfolioHandler(queries)
	adminHandler := handlers.NewAdminHandler(mutator)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		sessionHandler,
		agendaHandler,
		clientHandler,
		inventoryHandler,
		serviceHandler,
		financeHandler,
		portfolioHandler,
		adminHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(
		middleware.RequestLogger(logger)(
			middleware.MetricsMiddleware(
				corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shut down cleanly on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", addr).Str("backend", cfg.Backend.BaseURL).Msg("salon console listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
