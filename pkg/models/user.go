package models

import (
	"fmt"
	"time"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
)

// Role determines what a user may do. Admins manage users and players;
// regular users browse players and manage their own roster.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Roles contains all valid role values.
var Roles = []Role{RoleAdmin, RoleUser}

// ParseRole maps a stored role name back to a Role, failing loudly on
// unrecognized values.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, s)
}

// User represents a user account. PasswordHash holds the Base64-encoded
// SHA-256 digest of the password; plaintext is never stored.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"` // assigned by the database on insert
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
