// Package sqlite is the embedded single-file backend.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// PlayerRepository implements repository.Player over database/sql with the sqlite driver
type PlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *sql.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// GetPlayer retrieves a record by identity
func (r *PlayerRepository) GetPlayer(ctx context.Context, id uuid.UUID) (*domain.PlayerRecord, error) {
	query := `SELECT uuid, name, xp, level FROM player_levels WHERE uuid = ?`

	rec, err := scanPlayer(r.db.QueryRowContext(ctx, query, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
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
		SELECT uuid, name, xp, level FROM player_levels
		WHERE lower(name) = lower(?)
		ORDER BY level DESC, xp DESC
		LIMIT 1`

	rec, err := scanPlayer(r.db.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
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
		VALUES (?, ?, ?, ?)
		ON CONFLICT (uuid) DO UPDATE SET
			name = excluded.name,
			xp = excluded.xp,
			level = excluded.level`

	_, err := r.db.ExecContext(ctx, query, rec.ID.String(), domain.TruncateName(rec.Name), rec.Experience, rec.Level)
	if err != nil {
		return fmt.Errorf("failed to upsert player: %w", err)
	}
	return nil
}

// UpdatePlayer rewrites an existing record only
func (r *PlayerRepository) UpdatePlayer(ctx context.Context, rec domain.PlayerRecord) (bool, error) {
	query := `UPDATE player_levels SET name = ?, xp = ?, level = ? WHERE uuid = ?`

	res, err := r.db.ExecContext(ctx, query, domain.TruncateName(rec.Name), rec.Experience, rec.Level, rec.ID.String())
	if err != nil {
		return false, fmt.Errorf("failed to update player: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// GetTopPlayers returns up to limit records ordered by level then experience
func (r *PlayerRepository) GetTopPlayers(ctx context.Context, limit int) ([]domain.PlayerRecord, error) {
	if limit <= 0 {
		return []domain.PlayerRecord{}, nil
	}
	query := `SELECT uuid, name, xp, level FROM player_levels ORDER BY level DESC, xp DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return players, nil
}

// Ping checks the database file is reachable
func (r *PlayerRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database
func (r *PlayerRepository) Close() error {
	return r.db.Close()
}

func scanPlayer(row rowScanner) (*domain.PlayerRecord, error) {
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
