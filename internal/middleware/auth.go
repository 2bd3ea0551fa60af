package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"salon-backend/internal/auth"
	"salon-backend/internal/salonerr"
	"salon-backend/internal/session"
)

type contextKey string

const RoleKey contextKey = "role"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	gate       *session.Gate
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, gate *session.Gate) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		gate:       gate,
	}
}

// RequireAdmin guards privileged routes. The bearer token identifies the
// caller, but it is never sufficient on its own: the session gate must be
// authenticated AND the backend must currently grant admin permission. A
// mismatch between those two signals resets the gate and tells the View to
// prompt a re-login.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, http.StatusUnauthorized, "Authorization header required", false)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeAuthError(w, http.StatusUnauthorized, "Invalid authorization format", false)
			return
		}

		claims, err := m.jwtManager.ValidateToken(parts[1])
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "Invalid or expired token", false)
			return
		}

		// Both signals checked live on every privileged request.
		if err := m.gate.RequireAdmin(r.Context()); err != nil {
			switch salonerr.KindOf(err) {
			case salonerr.KindPermissionMismatch:
				writeAuthError(w, http.StatusUnauthorized, "Admin permission revoked, please log in again", true)
			case salonerr.KindAuthDenied:
				writeAuthError(w, http.StatusUnauthorized, "Not authenticated", false)
			default:
				writeAuthError(w, http.StatusBadGateway, "Permission check unavailable", false)
			}
			return
		}

		ctx := context.WithValue(r.Context(), RoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRoleFromContext extracts the caller role from request context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

func writeAuthError(w http.ResponseWriter, status int, message string, relogin bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   message,
		"relogin": relogin,
	})
}
