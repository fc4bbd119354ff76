package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
	"github.com/edu-rico/nbafx-engine/pkg/models"
	"github.com/edu-rico/nbafx-engine/pkg/repositories"
)

// UserService provides account management and authentication.
type UserService interface {
	// Login verifies credentials and returns the matching user.
	// An unknown name and a wrong password both return
	// apperrors.ErrInvalidCredentials; callers cannot tell which
	// accounts exist.
	Login(ctx context.Context, name, password string) (*models.User, error)
	// Register creates an account, hashing the password before it is
	// stored. An existing name returns apperrors.ErrNameTaken.
	Register(ctx context.Context, name, password string, role models.Role) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	// Update rewrites the account. When newPassword is non-empty it is
	// hashed and replaces the stored hash; otherwise the stored hash is
	// left untouched. This is the only place a password is rewritten.
	Update(ctx context.Context, user *models.User, newPassword string) error
	Remove(ctx context.Context, id int64) error
}

type userService struct {
	repo   repositories.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger.Named("user-service"),
	}
}

var _ UserService = (*userService)(nil)

func (s *userService) Login(ctx context.Context, name, password string) (*models.User, error) {
	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !verifyPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

func (s *userService) Register(ctx context.Context, name, password string, role models.Role) (*models.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password", "must not be empty")
	}
	if _, err := models.ParseRole(string(role)); err != nil {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}

	// Friendly pre-check; the unique constraint on nombre settles the
	// race when two registrations run concurrently.
	if _, err := s.repo.FindByName(ctx, name); err == nil {
		return nil, apperrors.ErrNameTaken
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("register user: %w", err)
	}

	user := &models.User{
		Name:         name,
		PasswordHash: hashPassword(password),
		Role:         role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.logger.Info("Registered user",
		zap.Int64("user_id", user.ID),
		zap.String("name", user.Name),
		zap.String("role", string(user.Role)))
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) Update(ctx context.Context, user *models.User, newPassword string) error {
	if strings.TrimSpace(user.Name) == "" {
		return apperrors.NewValidationError("name", "must not be empty")
	}
	if _, err := models.ParseRole(string(user.Role)); err != nil {
		return apperrors.NewValidationError("role", "unknown role")
	}

	if newPassword != "" {
		user.PasswordHash = hashPassword(newPassword)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (s *userService) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	return nil
}
