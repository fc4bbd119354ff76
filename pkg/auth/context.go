package auth

import (
	"context"

	"github.com/edu-rico/nbafx-engine/pkg/models"
)

type contextKey string

const identityKey contextKey = "auth.identity"

// Identity is the authenticated user attached to a request context by
// the middleware.
type Identity struct {
	UserID int64
	Role   models.Role
}

// WithIdentity returns a context carrying the identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity extracts the identity from the context.
func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
