package models

// RosterSize is the maximum number of players in a user's ideal five.
const RosterSize = 5

// RosterEntry is a membership row linking a user to a player in their
// ideal five. The pair is unique per roster.
type RosterEntry struct {
	UserID   int64 `json:"userId"`
	PlayerID int64 `json:"playerId"`
}
