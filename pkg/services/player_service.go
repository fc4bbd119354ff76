package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
	"github.com/edu-rico/nbafx-engine/pkg/models"
	"github.com/edu-rico/nbafx-engine/pkg/repositories"
)

// PlayerService provides business operations on player records.
// Field validation happens here, before any write reaches the
// repository; the repository trusts its input.
type PlayerService interface {
	List(ctx context.Context) ([]*models.Player, error)
	Get(ctx context.Context, id int64) (*models.Player, error)
	// Register validates and inserts a new player, assigning its id.
	Register(ctx context.Context, player *models.Player) error
	Update(ctx context.Context, player *models.Player) error
	// Remove deletes by id. The database is the source of truth for
	// existence: removing an unknown id is not an error.
	Remove(ctx context.Context, id int64) error
}

type playerService struct {
	repo   repositories.PlayerRepository
	logger *zap.Logger
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(repo repositories.PlayerRepository, logger *zap.Logger) PlayerService {
	return &playerService{
		repo:   repo,
		logger: logger.Named("player-service"),
	}
}

var _ PlayerService = (*playerService)(nil)

func (s *playerService) List(ctx context.Context) ([]*models.Player, error) {
	return s.repo.FindAll(ctx)
}

func (s *playerService) Get(ctx context.Context, id int64) (*models.Player, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *playerService) Register(ctx context.Context, player *models.Player) error {
	if err := validatePlayer(player); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, player); err != nil {
		return fmt.Errorf("register player: %w", err)
	}

	s.logger.Info("Registered player",
		zap.Int64("player_id", player.ID),
		zap.String("name", player.Name))
	return nil
}

func (s *playerService) Update(ctx context.Context, player *models.Player) error {
	if err := validatePlayer(player); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, player); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}

func (s *playerService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove player: %w", err)
	}
	return nil
}

// validatePlayer rejects the first invalid field. No write is attempted
// after a validation failure.
func validatePlayer(p *models.Player) error {
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.NewValidationError("name", "must not be empty")
	}
	if p.Dorsal < 0 || p.Dorsal > 99 {
		return apperrors.NewValidationError("dorsal", "must be between 0 and 99")
	}
	if p.Height <= 0 {
		return apperrors.NewValidationError("height", "must be greater than 0")
	}
	if p.Weight <= 0 {
		return apperrors.NewValidationError("weight", "must be greater than 0")
	}
	if p.Rings < 0 {
		return apperrors.NewValidationError("rings", "must not be negative")
	}
	if _, err := models.ParsePosition(string(p.Position)); err != nil {
		return apperrors.NewValidationError("position", "unknown position")
	}
	return nil
}
