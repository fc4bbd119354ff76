package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNameTaken          = errors.New("user name already taken")
	ErrRosterFull         = errors.New("roster is full")
	ErrAlreadyInRoster    = errors.New("player already in roster")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPosition    = errors.New("invalid position")
	ErrInvalidRole        = errors.New("invalid role")
)

// ValidationError reports a rejected field value. Services return it
// before attempting any write, so a validation failure never touches
// the database.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
