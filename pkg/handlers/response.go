package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
)

// ErrorResponse writes a JSON error response and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// ServiceError maps a service-layer failure onto an HTTP error response.
func ServiceError(w http.ResponseWriter, err error) error {
	var ve *apperrors.ValidationError
	switch {
	case errors.As(err, &ve):
		return ErrorResponse(w, http.StatusBadRequest, "validation_failed", ve.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return ErrorResponse(w, http.StatusUnauthorized, "invalid_credentials", "Invalid name or password")
	case errors.Is(err, apperrors.ErrNotFound):
		return ErrorResponse(w, http.StatusNotFound, "not_found", "Record not found")
	case errors.Is(err, apperrors.ErrNameTaken):
		return ErrorResponse(w, http.StatusConflict, "name_taken", "That user name is already taken")
	case errors.Is(err, apperrors.ErrRosterFull):
		return ErrorResponse(w, http.StatusConflict, "roster_full", "Your roster is already complete (maximum 5 players)")
	case errors.Is(err, apperrors.ErrAlreadyInRoster):
		return ErrorResponse(w, http.StatusConflict, "already_in_roster", "That player is already in your roster")
	default:
		return ErrorResponse(w, http.StatusInternalServerError, "internal_error", "Operation failed")
	}
}
