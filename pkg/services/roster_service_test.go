package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
	"github.com/edu-rico/nbafx-engine/pkg/models"
)

func setupRosterTest(t *testing.T) (RosterService, *mockPlayerRepository) {
	t.Helper()
	players := newMockPlayerRepository()
	svc := NewRosterService(newMockRosterRepository(), players, zap.NewNop())
	return svc, players
}

func addTestPlayer(t *testing.T, players *mockPlayerRepository, name string) int64 {
	t.Helper()
	p := &models.Player{
		Name:     name,
		Dorsal:   23,
		Position: models.PositionSmallForward,
		Height:   2.06,
		Weight:   100,
	}
	require.NoError(t, players.Create(context.Background(), p))
	return p.ID
}

func TestRosterService_AddAndList(t *testing.T) {
	svc, players := setupRosterTest(t)
	const userID = int64(1)

	playerID := addTestPlayer(t, players, "LeBron James")
	require.NoError(t, svc.AddPlayer(context.Background(), userID, playerID))

	ids, err := svc.PlayerIDs(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []int64{playerID}, ids)

	count, err := svc.Count(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRosterService_CapacityLimit(t *testing.T) {
	svc, players := setupRosterTest(t)
	const userID = int64(1)

	names := []string{"Curry", "Thompson", "Green", "Durant", "Iguodala", "Looney"}
	var sixth int64
	for i, name := range names {
		id := addTestPlayer(t, players, name)
		if i < models.RosterSize {
			require.NoError(t, svc.AddPlayer(context.Background(), userID, id))
		} else {
			sixth = id
		}
	}

	err := svc.AddPlayer(context.Background(), userID, sixth)
	assert.ErrorIs(t, err, apperrors.ErrRosterFull)

	count, err := svc.Count(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, models.RosterSize, count)
}

func TestRosterService_DuplicatePick(t *testing.T) {
	svc, players := setupRosterTest(t)
	const userID = int64(1)

	playerID := addTestPlayer(t, players, "Jokic")
	require.NoError(t, svc.AddPlayer(context.Background(), userID, playerID))

	err := svc.AddPlayer(context.Background(), userID, playerID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyInRoster)
}

func TestRosterService_AddUnknownPlayer(t *testing.T) {
	svc, _ := setupRosterTest(t)

	err := svc.AddPlayer(context.Background(), 1, 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRosterService_RemoveIsIdempotent(t *testing.T) {
	svc, players := setupRosterTest(t)
	const userID = int64(1)

	playerID := addTestPlayer(t, players, "Doncic")
	require.NoError(t, svc.AddPlayer(context.Background(), userID, playerID))

	require.NoError(t, svc.RemovePlayer(context.Background(), userID, playerID))
	require.NoError(t, svc.RemovePlayer(context.Background(), userID, playerID))

	count, err := svc.Count(context.Background(), userID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRosterService_RostersAreIndependent(t *testing.T) {
	svc, players := setupRosterTest(t)

	playerID := addTestPlayer(t, players, "Giannis")
	require.NoError(t, svc.AddPlayer(context.Background(), 1, playerID))
	require.NoError(t, svc.AddPlayer(context.Background(), 2, playerID))

	one, err := svc.Count(context.Background(), 1)
	require.NoError(t, err)
	two, err := svc.Count(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, one)
	assert.Equal(t, 1, two)
}
