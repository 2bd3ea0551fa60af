// Package session implements the admin gate: a small state machine that
// combines the locally persisted session record with the backend's own
// permission check. Privileged operations require BOTH signals; a mismatch
// forces the gate back to Unauthenticated rather than being retried.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"salon-backend/internal/metrics"
	"salon-backend/internal/models"
	"salon-backend/internal/remote"
	"salon-backend/internal/salonerr"
)

// State of the gate.
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	}
	return "unauthenticated"
}

// Gate owns the session state machine. Persistence is a single
// read-at-init / write-on-transition pair against the RecordStore; nothing
// else touches the persisted record.
type Gate struct {
	mu      sync.Mutex
	state   State
	role    models.Role
	backend remote.Backend
	store   RecordStore
	logger  zerolog.Logger
}

// NewGate restores the persisted session record, if any, and starts the
// machine in the matching state.
func NewGate(backend remote.Backend, store RecordStore, logger zerolog.Logger) (*Gate, error) {
	g := &Gate{
		state:   Unauthenticated,
		role:    models.RoleNone,
		backend: backend,
		store:   store,
		logger:  logger.With().Str("component", "session").Logger(),
	}

	record, found, err := store.Load()
	if err != nil {
		return nil, err
	}
	if found && record.IsAuthenticated {
		g.state = Authenticated
		g.role = record.Role
		g.logger.Info().Str("role", string(record.Role)).Msg("restored persisted session")
	}
	return g, nil
}

// Session returns the current session view.
func (g *Gate) Session() models.AdminSession {
	g.mu.Lock()
	defer g.mu.Unlock()
	return models.AdminSession{
		IsAuthenticated: g.state == Authenticated,
		Role:            g.role,
	}
}

// State returns the current machine state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// SubmitCredentials runs the credential check exactly once. A submission
// while another is in flight is rejected, so a double form-submit can never
// trigger duplicate verification calls. On a false result the gate returns
// to Unauthenticated and the caller must clear the credential fields.
func (g *Gate) SubmitCredentials(ctx context.Context, username, password string) (models.AdminSession, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	g.mu.Lock()
	if g.state == Authenticating {
		g.mu.Unlock()
		return models.AdminSession{}, salonerr.New(salonerr.KindVerificationInFlight,
			"credential verification already in flight")
	}
	g.state = Authenticating
	g.mu.Unlock()
	metrics.SessionTransitions.WithLabelValues(Authenticating.String()).Inc()

	valid, err := g.backend.VerifyAdminLogin(ctx, username, password)

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.toUnauthenticated()
		return models.AdminSession{}, err
	}
	if !valid {
		g.toUnauthenticated()
		g.logger.Info().Str("username", username).Msg("credential check denied")
		return models.AdminSession{}, salonerr.New(salonerr.KindAuthDenied, "invalid credentials")
	}

	g.state = Authenticated
	g.role = models.RoleAdmin
	metrics.SessionTransitions.WithLabelValues(Authenticated.String()).Inc()

	record := models.AdminSession{IsAuthenticated: true, Role: models.RoleAdmin}
	if err := g.store.Save(record); err != nil {
		// The live session stays valid; only persistence across restarts is lost.
		g.logger.Error().Err(err).Msg("failed to persist session record")
	}
	g.logger.Info().Msg("session authenticated")
	return record, nil
}

// RequireAdmin enforces the dual-signal rule for privileged operations:
// the gate must be Authenticated AND the backend must currently grant admin
// permission. A detected mismatch resets the gate and surfaces
// PermissionMismatch; it never silently grants and never retries.
func (g *Gate) RequireAdmin(ctx context.Context) error {
	g.mu.Lock()
	authenticated := g.state == Authenticated
	g.mu.Unlock()

	if !authenticated {
		return salonerr.New(salonerr.KindAuthDenied, "not authenticated")
	}

	isAdmin, err := g.backend.IsCallerAdmin(ctx)
	if err != nil {
		// Transient failure: the permission state is unknown, so the
		// operation is denied, but the gate is not reset.
		return err
	}
	if !isAdmin {
		g.mu.Lock()
		g.toUnauthenticated()
		g.mu.Unlock()
		g.logger.Warn().Msg("session said authenticated but backend denied admin, gate reset")
		return salonerr.New(salonerr.KindPermissionMismatch,
			"backend no longer grants admin permission, re-login required")
	}
	return nil
}

// Clear logs out: state back to Unauthenticated and the persisted record
// removed.
func (g *Gate) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.toUnauthenticated()
	g.logger.Info().Msg("session cleared")
}

// toUnauthenticated resets state and wipes the persisted record. Caller
// holds the lock.
func (g *Gate) toUnauthenticated() {
	g.state = Unauthenticated
	g.role = models.RoleNone
	metrics.SessionTransitions.WithLabelValues(Unauthenticated.String()).Inc()
	if err := g.store.Clear(); err != nil {
		g.logger.Error().Err(err).Msg("failed to clear session record")
	}
}
