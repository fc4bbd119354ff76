package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/auth"
	"github.com/edu-rico/nbafx-engine/pkg/models"
	"github.com/edu-rico/nbafx-engine/pkg/services"
)

// CreateUserRequest is the request body for creating an account with an
// explicit role. Self-registration (POST /api/auth/register) always
// creates USER accounts; this is how admin accounts come to exist.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER"`
}

// UpdateUserRequest is the request body for updating an account.
// Password is optional: empty keeps the stored hash.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER"`
	Password string `json:"password"`
}

// UsersHandler handles user management requests. Every route is
// admin-only.
type UsersHandler struct {
	userService services.UserService
	logger      *zap.Logger
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(userService services.UserService, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{
		userService: userService,
		logger:      logger,
	}
}

// RegisterRoutes registers the users handler's routes on the given mux.
func (h *UsersHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/users", authMiddleware.RequireAdmin(h.List))
	mux.HandleFunc("POST /api/users", authMiddleware.RequireAdmin(h.Create))
	mux.HandleFunc("PUT /api/users/{id}", authMiddleware.RequireAdmin(h.Update))
	mux.HandleFunc("DELETE /api/users/{id}", authMiddleware.RequireAdmin(h.Delete))
}

// Create handles POST /api/users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := DecodeAndValidate(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	user, err := h.userService.Register(r.Context(), req.Name, req.Password, models.Role(req.Role))
	if err != nil {
		h.logger.Warn("Failed to create user", zap.String("name", req.Name), zap.Error(err))
		h.serviceError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, user); err != nil {
		h.logger.Error("Failed to encode user response", zap.Error(err))
	}
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		h.serviceError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, users); err != nil {
		h.logger.Error("Failed to encode users response", zap.Error(err))
	}
}

// Update handles PUT /api/users/{id}.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := DecodeAndValidate(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	// Load the current record so the stored hash survives when no new
	// password is supplied.
	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	user.Name = req.Name
	user.Role = models.Role(req.Role)

	if err := h.userService.Update(r.Context(), user, req.Password); err != nil {
		h.serviceError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, user); err != nil {
		h.logger.Error("Failed to encode user response", zap.Error(err))
	}
}

// Delete handles DELETE /api/users/{id}.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.userService.Remove(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete user", zap.Int64("user_id", id), zap.Error(err))
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UsersHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_id", "Invalid user ID")
		return 0, false
	}
	return id, true
}

func (h *UsersHandler) serviceError(w http.ResponseWriter, err error) {
	if err := ServiceError(w, err); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

func (h *UsersHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
