package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/auth"
	"github.com/edu-rico/nbafx-engine/pkg/models"
	"github.com/edu-rico/nbafx-engine/pkg/services"
)

// PlayerRequest is the request body for creating or updating a player.
// Field ranges match the service's validation rules so obviously bad
// requests are rejected at the edge with the same messages.
type PlayerRequest struct {
	Name     string  `json:"name" validate:"required"`
	Dorsal   int     `json:"dorsal" validate:"gte=0,lte=99"`
	Team     string  `json:"team"`
	Position string  `json:"position" validate:"required"`
	Rings    int     `json:"rings" validate:"gte=0"`
	Height   float64 `json:"height" validate:"gt=0"`
	Weight   float64 `json:"weight" validate:"gt=0"`
	ImageURL string  `json:"imageUrl"`
}

// PlayersHandler handles player CRUD requests.
type PlayersHandler struct {
	playerService services.PlayerService
	logger        *zap.Logger
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(playerService services.PlayerService, logger *zap.Logger) *PlayersHandler {
	return &PlayersHandler{
		playerService: playerService,
		logger:        logger,
	}
}

// RegisterRoutes registers the players handler's routes on the given mux.
// Browsing is open to every authenticated user; writes are admin-only.
func (h *PlayersHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/players", authMiddleware.RequireAuth(h.List))
	mux.HandleFunc("GET /api/players/{id}", authMiddleware.RequireAuth(h.Get))
	mux.HandleFunc("POST /api/players", authMiddleware.RequireAdmin(h.Create))
	mux.HandleFunc("PUT /api/players/{id}", authMiddleware.RequireAdmin(h.Update))
	mux.HandleFunc("DELETE /api/players/{id}", authMiddleware.RequireAdmin(h.Delete))
}

// List handles GET /api/players.
func (h *PlayersHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list players", zap.Error(err))
		h.serviceError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, players); err != nil {
		h.logger.Error("Failed to encode players response", zap.Error(err))
	}
}

// Get handles GET /api/players/{id}.
func (h *PlayersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	player, err := h.playerService.Get(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, player); err != nil {
		h.logger.Error("Failed to encode player response", zap.Error(err))
	}
}

// Create handles POST /api/players.
func (h *PlayersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if err := DecodeAndValidate(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	player := req.toModel(0)
	if err := h.playerService.Register(r.Context(), player); err != nil {
		h.logger.Warn("Failed to register player", zap.String("name", req.Name), zap.Error(err))
		h.serviceError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusCreated, player); err != nil {
		h.logger.Error("Failed to encode player response", zap.Error(err))
	}
}

// Update handles PUT /api/players/{id}.
func (h *PlayersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req PlayerRequest
	if err := DecodeAndValidate(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	player := req.toModel(id)
	if err := h.playerService.Update(r.Context(), player); err != nil {
		h.serviceError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, player); err != nil {
		h.logger.Error("Failed to encode player response", zap.Error(err))
	}
}

// Delete handles DELETE /api/players/{id}.
// Deleting an id that does not exist still returns 204.
func (h *PlayersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.playerService.Remove(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete player", zap.Int64("player_id", id), zap.Error(err))
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (req *PlayerRequest) toModel(id int64) *models.Player {
	return &models.Player{
		ID:       id,
		Name:     req.Name,
		Dorsal:   req.Dorsal,
		Team:     req.Team,
		Position: models.Position(req.Position),
		Rings:    req.Rings,
		Height:   req.Height,
		Weight:   req.Weight,
		ImageURL: req.ImageURL,
	}
}

func (h *PlayersHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_id", "Invalid player ID")
		return 0, false
	}
	return id, true
}

func (h *PlayersHandler) serviceError(w http.ResponseWriter, err error) {
	if err := ServiceError(w, err); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

func (h *PlayersHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
