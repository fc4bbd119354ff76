package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
	"github.com/edu-rico/nbafx-engine/pkg/auth"
	"github.com/edu-rico/nbafx-engine/pkg/models"
)

// mockUserService is a configurable mock for handler tests.
type mockUserService struct {
	user      *models.User
	users     []*models.User
	err       error
	updateErr error

	registeredName string
	registeredRole models.Role
}

func (m *mockUserService) Login(ctx context.Context, name, password string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserService) Register(ctx context.Context, name, password string, role models.Role) (*models.User, error) {
	m.registeredName = name
	m.registeredRole = role
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserService) List(ctx context.Context) ([]*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

func (m *mockUserService) Get(ctx context.Context, id int64) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.user == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.user, nil
}

func (m *mockUserService) Update(ctx context.Context, user *models.User, newPassword string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	return m.err
}

func (m *mockUserService) Remove(ctx context.Context, id int64) error {
	return m.err
}

// mockPlayerService is a configurable mock for handler tests.
type mockPlayerService struct {
	player  *models.Player
	players []*models.Player
	err     error
}

func (m *mockPlayerService) List(ctx context.Context) ([]*models.Player, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.players, nil
}

func (m *mockPlayerService) Get(ctx context.Context, id int64) (*models.Player, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.player == nil {
		return nil, apperrors.ErrNotFound
	}
	return m.player, nil
}

func (m *mockPlayerService) Register(ctx context.Context, player *models.Player) error {
	if m.err != nil {
		return m.err
	}
	player.ID = 1
	return nil
}

func (m *mockPlayerService) Update(ctx context.Context, player *models.Player) error {
	return m.err
}

func (m *mockPlayerService) Remove(ctx context.Context, id int64) error {
	return m.err
}

// mockRosterService is a configurable mock for handler tests.
type mockRosterService struct {
	playerIDs []int64
	err       error
}

func (m *mockRosterService) AddPlayer(ctx context.Context, userID, playerID int64) error {
	return m.err
}

func (m *mockRosterService) RemovePlayer(ctx context.Context, userID, playerID int64) error {
	return m.err
}

func (m *mockRosterService) PlayerIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.playerIDs, nil
}

func (m *mockRosterService) Count(ctx context.Context, userID int64) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.playerIDs), nil
}

const testSessionSecret = "handler-test-secret"

// sessionCookie logs the user in against a throwaway response and
// returns the resulting session cookie for use on later requests.
func sessionCookie(t *testing.T, sessions *auth.Sessions, user *models.User) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	require.NoError(t, sessions.Issue(rec, req, user))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "expected a session cookie to be set")
	return cookies[0]
}
