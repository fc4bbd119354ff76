package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
	"github.com/edu-rico/nbafx-engine/pkg/database"
	"github.com/edu-rico/nbafx-engine/pkg/models"
)

// UserRepository defines the interface for user account data access.
type UserRepository interface {
	// FindByName returns apperrors.ErrNotFound when no user has that name.
	FindByName(ctx context.Context, name string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	// Create inserts the user, assigning the generated id and the
	// database-side creation timestamp back onto it. A duplicate name
	// returns apperrors.ErrNameTaken.
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// userRepository implements UserRepository using PostgreSQL.
type userRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *database.DB) UserRepository {
	return &userRepository{db: db}
}

var _ UserRepository = (*userRepository)(nil)

func (r *userRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	query := `
		SELECT id, nombre, password, rol, fecha_creacion
		FROM usuarios
		WHERE nombre = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by name: %w", err)
	}

	return u, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, nombre, password, rol, fecha_creacion
		FROM usuarios
		WHERE id = $1`

	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, nombre, password, rol, fecha_creacion
		FROM usuarios
		ORDER BY fecha_creacion`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO usuarios (nombre, password, rol)
		VALUES ($1, $2, $3)
		RETURNING id, fecha_creacion`

	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.PasswordHash,
		string(user.Role),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrNameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	// fecha_creacion is immutable after insert and deliberately absent here.
	query := `
		UPDATE usuarios
		SET nombre = $1, password = $2, rol = $3
		WHERE id = $4`

	result, err := r.db.Exec(ctx, query,
		user.Name,
		user.PasswordHash,
		string(user.Role),
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrNameTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM usuarios WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	var role string
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.PasswordHash,
		&role,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Role, err = models.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("failed to scan user %d: %w", u.ID, err)
	}

	return &u, nil
}
