// Package auth holds the session shell: the cookie-backed record of the
// single currently-authenticated user, and the middleware that gates
// handlers on it.
package auth

import (
	"crypto/sha256"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/edu-rico/nbafx-engine/pkg/models"
)

// SessionName is the name of the login session cookie.
const SessionName = "nbafx-session"

// Session value keys.
const (
	sessionKeyID     = "session_id"
	sessionKeyUserID = "user_id"
	sessionKeyRole   = "role"
)

// Sessions issues and reads login session cookies.
type Sessions struct {
	store *sessions.CookieStore
}

// NewSessions creates a cookie-based session store.
//
// The secret parameter signs session cookies. It can be any passphrase;
// it is SHA-256 hashed to derive a 32-byte key. It must stay consistent
// across restarts or every login is invalidated.
func NewSessions(secret string) *Sessions {
	key := sha256.Sum256([]byte(secret))

	store := sessions.NewCookieStore(key[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   8 * 60 * 60, // 8 hours
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	return &Sessions{store: store}
}

// Issue writes a login session for the user onto the response.
func (s *Sessions) Issue(w http.ResponseWriter, r *http.Request, user *models.User) error {
	session, _ := s.store.Get(r, SessionName)
	session.Values[sessionKeyID] = uuid.NewString()
	session.Values[sessionKeyUserID] = user.ID
	session.Values[sessionKeyRole] = string(user.Role)
	return session.Save(r, w)
}

// Clear expires the login session.
func (s *Sessions) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Current reads the authenticated user's id and role from the request.
// ok is false for missing, tampered, or incomplete sessions.
func (s *Sessions) Current(r *http.Request) (userID int64, role models.Role, ok bool) {
	session, err := s.store.Get(r, SessionName)
	if err != nil || session.IsNew {
		return 0, "", false
	}

	userID, okID := session.Values[sessionKeyUserID].(int64)
	roleStr, okRole := session.Values[sessionKeyRole].(string)
	if !okID || !okRole {
		return 0, "", false
	}

	role, err = models.ParseRole(roleStr)
	if err != nil {
		return 0, "", false
	}

	return userID, role, true
}
