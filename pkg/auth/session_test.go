package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/models"
)

func issueCookie(t *testing.T, sessions *Sessions, user *models.User) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, sessions.Issue(rec, req, user))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestSessions_IssueAndCurrent(t *testing.T) {
	sessions := NewSessions("test-secret")
	user := &models.User{ID: 42, Name: "alice", Role: models.RoleAdmin}

	cookie := issueCookie(t, sessions, user)
	assert.Equal(t, SessionName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	userID, role, ok := sessions.Current(req)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, models.RoleAdmin, role)
}

func TestSessions_Current_NoCookie(t *testing.T) {
	sessions := NewSessions("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, _, ok := sessions.Current(req)
	assert.False(t, ok)
}

func TestSessions_Current_WrongSecret(t *testing.T) {
	user := &models.User{ID: 42, Name: "alice", Role: models.RoleUser}
	cookie := issueCookie(t, NewSessions("secret-one"), user)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	_, _, ok := NewSessions("secret-two").Current(req)
	assert.False(t, ok, "a cookie signed with another key must not validate")
}

func TestSessions_Current_TamperedCookie(t *testing.T) {
	sessions := NewSessions("test-secret")
	user := &models.User{ID: 42, Name: "alice", Role: models.RoleUser}

	cookie := issueCookie(t, sessions, user)
	cookie.Value = cookie.Value[:len(cookie.Value)-4] + "xxxx"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	_, _, ok := sessions.Current(req)
	assert.False(t, ok)
}

func TestSessions_Clear(t *testing.T) {
	sessions := NewSessions("test-secret")
	user := &models.User{ID: 42, Name: "alice", Role: models.RoleUser}

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(issueCookie(t, sessions, user))
	rec := httptest.NewRecorder()
	require.NoError(t, sessions.Clear(rec, req))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestMiddleware_RequireAuth(t *testing.T) {
	sessions := NewSessions("test-secret")
	middleware := NewMiddleware(sessions, zap.NewNop())

	var seen Identity
	handler := middleware.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	// Without a session.
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// With a session.
	user := &models.User{ID: 9, Name: "alice", Role: models.RoleUser}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(issueCookie(t, sessions, user))
	rec = httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, Identity{UserID: 9, Role: models.RoleUser}, seen)
}

func TestMiddleware_RequireAdmin(t *testing.T) {
	sessions := NewSessions("test-secret")
	middleware := NewMiddleware(sessions, zap.NewNop())

	handler := middleware.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	regular := &models.User{ID: 1, Name: "alice", Role: models.RoleUser}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(issueCookie(t, sessions, regular))
	rec := httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := &models.User{ID: 2, Name: "root", Role: models.RoleAdmin}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(issueCookie(t, sessions, admin))
	rec = httptest.NewRecorder()
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
