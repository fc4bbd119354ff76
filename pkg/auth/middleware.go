package auth

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/models"
)

// Middleware gates handlers on the login session.
type Middleware struct {
	sessions *Sessions
	logger   *zap.Logger
}

// NewMiddleware creates a new auth middleware over the session store.
func NewMiddleware(sessions *Sessions, logger *zap.Logger) *Middleware {
	return &Middleware{
		sessions: sessions,
		logger:   logger,
	}
}

// RequireAuth requires a valid login session and attaches the identity
// to the request context for downstream handlers.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, role, ok := m.sessions.Current(r)
		if !ok {
			m.unauthorized(w, "Authentication required")
			return
		}

		ctx := WithIdentity(r.Context(), Identity{UserID: userID, Role: role})
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin requires a valid login session with the ADMIN role.
// User management is admin-only; regular users only browse players.
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		id, _ := GetIdentity(r.Context())
		if id.Role != models.RoleAdmin {
			m.forbidden(w, "Admin role required")
			return
		}
		next(w, r)
	})
}

func (m *Middleware) unauthorized(w http.ResponseWriter, message string) {
	m.writeError(w, http.StatusUnauthorized, "unauthorized", message)
}

func (m *Middleware) forbidden(w http.ResponseWriter, message string) {
	m.writeError(w, http.StatusForbidden, "forbidden", message)
}

func (m *Middleware) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   code,
		"message": message,
	}); err != nil {
		m.logger.Error("Failed to write error response", zap.Error(err))
	}
}
