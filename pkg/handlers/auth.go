package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/auth"
	"github.com/edu-rico/nbafx-engine/pkg/models"
	"github.com/edu-rico/nbafx-engine/pkg/services"
)

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the request body for self-registration.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler handles login, logout, and registration.
type AuthHandler struct {
	userService services.UserService
	sessions    *auth.Sessions
	logger      *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService services.UserService, sessions *auth.Sessions, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		logger:      logger,
	}
}

// RegisterRoutes registers the auth handler's routes on the given mux.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
	mux.HandleFunc("POST /api/auth/register", h.Register)
}

// Login handles POST /api/auth/login.
// A wrong password and an unknown name produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidate(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	user, err := h.userService.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		if err := ServiceError(w, err); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := h.sessions.Issue(w, r, user); err != nil {
		h.logger.Error("Failed to issue session", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to create session")
		return
	}

	if err := WriteJSON(w, http.StatusOK, user); err != nil {
		h.logger.Error("Failed to encode login response", zap.Error(err))
	}
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r); err != nil {
		h.logger.Error("Failed to clear session", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}

// Register handles POST /api/auth/register. Visitors sign themselves
// up with the USER role; admin accounts are created by an admin via
// POST /api/users.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidate(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	user, err := h.userService.Register(r.Context(), req.Name, req.Password, models.RoleUser)
	if err != nil {
		h.logger.Warn("Registration failed", zap.String("name", req.Name), zap.Error(err))
		if err := ServiceError(w, err); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusCreated, user); err != nil {
		h.logger.Error("Failed to encode register response", zap.Error(err))
	}
}

func (h *AuthHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
