package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/auth"
	"github.com/edu-rico/nbafx-engine/pkg/services"
)

// RosterResponse is the session user's ideal five.
type RosterResponse struct {
	PlayerIDs []int64 `json:"playerIds"`
	Count     int     `json:"count"`
}

// RosterHandler handles ideal-five roster requests. All routes operate
// on the authenticated session user's own roster.
type RosterHandler struct {
	rosterService services.RosterService
	logger        *zap.Logger
}

// NewRosterHandler creates a new roster handler.
func NewRosterHandler(rosterService services.RosterService, logger *zap.Logger) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		logger:        logger,
	}
}

// RegisterRoutes registers the roster handler's routes on the given mux.
func (h *RosterHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/roster", authMiddleware.RequireAuth(h.Get))
	mux.HandleFunc("POST /api/roster/{playerId}", authMiddleware.RequireAuth(h.Add))
	mux.HandleFunc("DELETE /api/roster/{playerId}", authMiddleware.RequireAuth(h.Remove))
}

// Get handles GET /api/roster.
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.GetIdentity(r.Context())

	playerIDs, err := h.rosterService.PlayerIDs(r.Context(), id.UserID)
	if err != nil {
		h.logger.Error("Failed to list roster", zap.Int64("user_id", id.UserID), zap.Error(err))
		h.serviceError(w, err)
		return
	}

	response := RosterResponse{
		PlayerIDs: playerIDs,
		Count:     len(playerIDs),
	}
	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode roster response", zap.Error(err))
	}
}

// Add handles POST /api/roster/{playerId}.
func (h *RosterHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.GetIdentity(r.Context())

	playerID, ok := h.pathPlayerID(w, r)
	if !ok {
		return
	}

	if err := h.rosterService.AddPlayer(r.Context(), id.UserID, playerID); err != nil {
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Remove handles DELETE /api/roster/{playerId}.
func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.GetIdentity(r.Context())

	playerID, ok := h.pathPlayerID(w, r)
	if !ok {
		return
	}

	if err := h.rosterService.RemovePlayer(r.Context(), id.UserID, playerID); err != nil {
		h.logger.Error("Failed to remove player from roster",
			zap.Int64("user_id", id.UserID),
			zap.Int64("player_id", playerID),
			zap.Error(err))
		h.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RosterHandler) pathPlayerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("playerId"), 10, 64)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_id", "Invalid player ID"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return 0, false
	}
	return id, true
}

func (h *RosterHandler) serviceError(w http.ResponseWriter, err error) {
	if err := ServiceError(w, err); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
