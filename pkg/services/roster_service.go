package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
	"github.com/edu-rico/nbafx-engine/pkg/repositories"
)

// RosterService manages users' ideal-five rosters.
type RosterService interface {
	// AddPlayer adds a player to the user's roster. Returns
	// apperrors.ErrRosterFull at capacity and
	// apperrors.ErrAlreadyInRoster on a duplicate pick. The player must
	// exist.
	AddPlayer(ctx context.Context, userID, playerID int64) error
	RemovePlayer(ctx context.Context, userID, playerID int64) error
	PlayerIDs(ctx context.Context, userID int64) ([]int64, error)
	Count(ctx context.Context, userID int64) (int, error)
}

type rosterService struct {
	repo    repositories.RosterRepository
	players repositories.PlayerRepository
	logger  *zap.Logger
}

// NewRosterService creates a new RosterService.
func NewRosterService(repo repositories.RosterRepository, players repositories.PlayerRepository, logger *zap.Logger) RosterService {
	return &rosterService{
		repo:    repo,
		players: players,
		logger:  logger.Named("roster-service"),
	}
}

var _ RosterService = (*rosterService)(nil)

func (s *rosterService) AddPlayer(ctx context.Context, userID, playerID int64) error {
	if _, err := s.players.FindByID(ctx, playerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("add player to roster: %w", err)
	}

	// Capacity and duplicate checks happen atomically in the repository.
	if err := s.repo.Add(ctx, userID, playerID); err != nil {
		return err
	}

	s.logger.Info("Added player to roster",
		zap.Int64("user_id", userID),
		zap.Int64("player_id", playerID))
	return nil
}

func (s *rosterService) RemovePlayer(ctx context.Context, userID, playerID int64) error {
	return s.repo.Remove(ctx, userID, playerID)
}

func (s *rosterService) PlayerIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.repo.ListPlayerIDs(ctx, userID)
}

func (s *rosterService) Count(ctx context.Context, userID int64) (int, error) {
	return s.repo.Count(ctx, userID)
}
