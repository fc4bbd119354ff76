package services

import (
	"context"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
	"github.com/edu-rico/nbafx-engine/pkg/models"
)

// mockPlayerRepository is an in-memory PlayerRepository for service tests.
type mockPlayerRepository struct {
	players map[int64]*models.Player
	nextID  int64
	err     error
}

func newMockPlayerRepository() *mockPlayerRepository {
	return &mockPlayerRepository{players: make(map[int64]*models.Player), nextID: 1}
}

func (m *mockPlayerRepository) FindAll(ctx context.Context) ([]*models.Player, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*models.Player, 0, len(m.players))
	for _, p := range m.players {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockPlayerRepository) FindByID(ctx context.Context, id int64) (*models.Player, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.players[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	if m.err != nil {
		return m.err
	}
	player.ID = m.nextID
	m.nextID++
	cp := *player
	m.players[player.ID] = &cp
	return nil
}

func (m *mockPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.players[player.ID]; !ok {
		return apperrors.ErrNotFound
	}
	cp := *player
	m.players[player.ID] = &cp
	return nil
}

func (m *mockPlayerRepository) Delete(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.players, id)
	return nil
}

// mockUserRepository is an in-memory UserRepository for service tests.
type mockUserRepository struct {
	users  map[int64]*models.User
	nextID int64
	err    error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[int64]*models.User), nextID: 1}
}

func (m *mockUserRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	for _, u := range m.users {
		if u.Name == user.Name {
			return apperrors.ErrNameTaken
		}
	}
	user.ID = m.nextID
	m.nextID++
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.ID]; !ok {
		return apperrors.ErrNotFound
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	delete(m.users, id)
	return nil
}

// mockRosterRepository is an in-memory RosterRepository enforcing the
// same capacity and uniqueness rules as the SQL implementation.
type mockRosterRepository struct {
	entries map[int64][]int64
	err     error
}

func newMockRosterRepository() *mockRosterRepository {
	return &mockRosterRepository{entries: make(map[int64][]int64)}
}

func (m *mockRosterRepository) Add(ctx context.Context, userID, playerID int64) error {
	if m.err != nil {
		return m.err
	}
	ids := m.entries[userID]
	for _, id := range ids {
		if id == playerID {
			return apperrors.ErrAlreadyInRoster
		}
	}
	if len(ids) >= 5 {
		return apperrors.ErrRosterFull
	}
	m.entries[userID] = append(ids, playerID)
	return nil
}

func (m *mockRosterRepository) Remove(ctx context.Context, userID, playerID int64) error {
	if m.err != nil {
		return m.err
	}
	ids := m.entries[userID]
	for i, id := range ids {
		if id == playerID {
			m.entries[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockRosterRepository) ListPlayerIDs(ctx context.Context, userID int64) ([]int64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]int64(nil), m.entries[userID]...), nil
}

func (m *mockRosterRepository) Count(ctx context.Context, userID int64) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.entries[userID]), nil
}
