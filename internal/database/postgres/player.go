package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetPlayer retrieves a record by identity
func (r *PlayerRepository) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.PlayerRecord, error) {
	query := `
		SELECT uuid, name, xp, level
		FROM player_levels
		WHERE uuid = $1
	`
	rec, err := scanPlayer(r.db.QueryRow(ctx, query, id.String()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return rec, nil
}

// GetPlayerByName retrieves the first record whose name matches case-insensitively
func (r *PlayerRepository) GetPlayerByName(ctx context.Context, name string) (*domain.PlayerRecord, error) {
	query := `
		SELECT uuid, name, xp, level
		FROM player_levels
		WHERE lower(name) = lower($1)
		ORDER BY level DESC, xp DESC
		LIMIT 1
	`
	rec, err := scanPlayer(r.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by name: %w", err)
	}
	return rec, nil
}

// UpsertPlayer inserts or replaces a record
func (r *PlayerRepository) UpsertPlayer(ctx context.Context, rec domain.PlayerRecord) error {
	query := `
		INSERT INTO player_levels (uuid, name, xp, level)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (uuid) DO UPDATE SET
			name = EXCLUDED.name,
			xp = EXCLUDED.xp,
			level = EXCLUDED.level
	`
	_, err := r.db.Exec(ctx, query, rec.ID.String(), domain.TruncateName(rec.Name), rec.Experience, rec.Level)
	if err != nil {
		return fmt.Errorf("failed to upsert player: %w", err)
	}
	return nil
}

// UpdatePlayer rewrites an existing record only
func (r *PlayerRepository) UpdatePlayer(ctx context.Context, rec domain.PlayerRecord) (bool, error) {
	query := `
		UPDATE player_levels
		SET name = $2, xp = $3, level = $4
		WHERE uuid = $1
	`
	tag, err := r.db.Exec(ctx, query, rec.ID.String(), domain.TruncateName(rec.Name), rec.Experience, rec.Level)
	if err != nil {
		return false, fmt.Errorf("failed to update player: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetTopPlayers returns up to limit records ordered by level then experience
func (r *PlayerRepository) GetTopPlayers(ctx context.Context, limit int) ([]domain.PlayerRecord, error) {
	if limit <= 0 {
		return []domain.PlayerRecord{}, nil
	}
	query := `
		SELECT uuid, name, xp, level
		FROM player_levels
		ORDER BY level DESC, xp DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top players: %w", err)
	}
	defer rows.Close()

	players := make([]domain.PlayerRecord, 0, limit)
	for rows.Next() {
		rec, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return players, nil
}

// Ping checks connectivity
func (r *PlayerRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close releases the pool
func (r *PlayerRepository) Close() error {
	r.db.Close()
	return nil
}

func scanPlayer(row pgx.Row) (*domain.PlayerRecord, error) {
	var (
		rec domain.PlayerRecord
		raw string
	)
	if err := row.Scan(&raw, &rec.Name, &rec.Experience, &rec.Level); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid %q: %w", raw, err)
	}
	rec.ID = id
	return &rec, nil
}
