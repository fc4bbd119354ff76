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

// PlayerRepository defines the interface for player data access.
// Every operation propagates storage errors to the caller; nothing is
// logged and swallowed at this layer.
type PlayerRepository interface {
	FindAll(ctx context.Context) ([]*models.Player, error)
	// FindByID returns apperrors.ErrNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*models.Player, error)
	// Create inserts the player and assigns the generated id back onto it.
	Create(ctx context.Context, player *models.Player) error
	Update(ctx context.Context, player *models.Player) error
	// Delete removes the row; deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
}

// playerRepository implements PlayerRepository using PostgreSQL.
type playerRepository struct {
	db *database.DB
}

// NewPlayerRepository creates a new player repository.
func NewPlayerRepository(db *database.DB) PlayerRepository {
	return &playerRepository{db: db}
}

var _ PlayerRepository = (*playerRepository)(nil)

func (r *playerRepository) FindAll(ctx context.Context) ([]*models.Player, error) {
	query := `
		SELECT id, nombre, dorsal, equipo, posicion, numero_anillos, altura, peso, image_url
		FROM jugadores
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating players: %w", err)
	}

	return players, nil
}

func (r *playerRepository) FindByID(ctx context.Context, id int64) (*models.Player, error) {
	query := `
		SELECT id, nombre, dorsal, equipo, posicion, numero_anillos, altura, peso, image_url
		FROM jugadores
		WHERE id = $1`

	p, err := scanPlayer(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return p, nil
}

func (r *playerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO jugadores (nombre, dorsal, equipo, posicion, numero_anillos, altura, peso, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		player.Name,
		player.Dorsal,
		player.Team,
		string(player.Position),
		player.Rings,
		player.Height,
		player.Weight,
		player.ImageURL,
	).Scan(&player.ID)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	return nil
}

func (r *playerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE jugadores
		SET nombre = $1, dorsal = $2, equipo = $3, posicion = $4,
		    numero_anillos = $5, altura = $6, peso = $7, image_url = $8
		WHERE id = $9`

	result, err := r.db.Exec(ctx, query,
		player.Name,
		player.Dorsal,
		player.Team,
		string(player.Position),
		player.Rings,
		player.Height,
		player.Weight,
		player.ImageURL,
		player.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *playerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM jugadores WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	return nil
}

// scanPlayer maps a row to a Player. An unknown stored position is an
// error, never a silent default.
func scanPlayer(row pgx.Row) (*models.Player, error) {
	var p models.Player
	var position string
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Dorsal,
		&p.Team,
		&position,
		&p.Rings,
		&p.Height,
		&p.Weight,
		&p.ImageURL,
	)
	if err != nil {
		return nil, err
	}

	p.Position, err = models.ParsePosition(position)
	if err != nil {
		return nil, fmt.Errorf("failed to scan player %d: %w", p.ID, err)
	}

	return &p, nil
}
