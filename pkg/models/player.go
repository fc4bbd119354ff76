package models

import (
	"fmt"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
)

// Position is a player's court position. Stored in the database by name.
type Position string

const (
	PositionPointGuard    Position = "POINT_GUARD"
	PositionShootingGuard Position = "SHOOTING_GUARD"
	PositionSmallForward  Position = "SMALL_FORWARD"
	PositionPowerForward  Position = "POWER_FORWARD"
	PositionCenter        Position = "CENTER"
)

// Positions contains all valid positions.
var Positions = []Position{
	PositionPointGuard,
	PositionShootingGuard,
	PositionSmallForward,
	PositionPowerForward,
	PositionCenter,
}

// ParsePosition maps a stored position name back to a Position.
// Unrecognized values fail loudly rather than defaulting.
func ParsePosition(s string) (Position, error) {
	for _, p := range Positions {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidPosition, s)
}

// Player represents a basketball player record.
// A zero ID means the player has not been persisted yet.
type Player struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Dorsal   int      `json:"dorsal"`
	Team     string   `json:"team"`
	Position Position `json:"position"`
	Rings    int      `json:"rings"`
	Height   float64  `json:"height"` // meters
	Weight   float64  `json:"weight"` // kilograms
	ImageURL string   `json:"imageUrl"`
}
