package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/edu-rico/nbafx-engine/pkg/apperrors"
	"github.com/edu-rico/nbafx-engine/pkg/database"
	"github.com/edu-rico/nbafx-engine/pkg/models"
)

// uniqueViolationCode is the SQLSTATE for unique constraint violations.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// RosterRepository defines data access for users' ideal-five rosters.
type RosterRepository interface {
	// Add inserts a membership row inside a transaction that locks the
	// owner's user row, so concurrent adds for one user run one at a
	// time. Returns apperrors.ErrRosterFull when the user already has
	// five players, apperrors.ErrAlreadyInRoster on a duplicate pair,
	// and apperrors.ErrNotFound for an unknown user.
	Add(ctx context.Context, userID, playerID int64) error
	// Remove deletes a membership row; removing an absent pair is a no-op.
	Remove(ctx context.Context, userID, playerID int64) error
	ListPlayerIDs(ctx context.Context, userID int64) ([]int64, error)
	Count(ctx context.Context, userID int64) (int, error)
}

// rosterRepository implements RosterRepository using PostgreSQL.
type rosterRepository struct {
	db *database.DB
}

// NewRosterRepository creates a new roster repository.
func NewRosterRepository(db *database.DB) RosterRepository {
	return &rosterRepository{db: db}
}

var _ RosterRepository = (*rosterRepository)(nil)

func (r *rosterRepository) Add(ctx context.Context, userID, playerID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin roster transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock the owner row first. Under READ COMMITTED two concurrent
	// conditional inserts for distinct players would both see the same
	// count and overfill the roster; the lock serializes adds per user.
	var ownerID int64
	if err := tx.QueryRow(ctx,
		`SELECT id FROM usuarios WHERE id = $1 FOR UPDATE`, userID).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock roster owner: %w", err)
	}

	// The row only lands while the user is below capacity.
	query := `
		INSERT INTO quintetos (usuario_id, jugador_id)
		SELECT $1, $2
		WHERE (SELECT COUNT(*) FROM quintetos WHERE usuario_id = $1) < $3`

	result, err := tx.Exec(ctx, query, userID, playerID, models.RosterSize)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyInRoster
		}
		return fmt.Errorf("failed to add player to roster: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrRosterFull
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit roster add: %w", err)
	}

	return nil
}

func (r *rosterRepository) Remove(ctx context.Context, userID, playerID int64) error {
	query := `DELETE FROM quintetos WHERE usuario_id = $1 AND jugador_id = $2`

	if _, err := r.db.Exec(ctx, query, userID, playerID); err != nil {
		return fmt.Errorf("failed to remove player from roster: %w", err)
	}

	return nil
}

func (r *rosterRepository) ListPlayerIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := `SELECT jugador_id FROM quintetos WHERE usuario_id = $1 ORDER BY jugador_id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, models.RosterSize)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roster: %w", err)
	}

	return ids, nil
}

func (r *rosterRepository) Count(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM quintetos WHERE usuario_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count roster: %w", err)
	}

	return count, nil
}
