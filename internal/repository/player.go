package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// Player persists player level records. Implementations return (nil, nil)
// when a record does not exist.
type Player interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (*domain.PlayerRecord, error)
	UpsertPlayer(ctx context.Context, rec domain.PlayerRecord) error
	// UpdatePlayer rewrites an existing row and reports whether one matched
	UpdatePlayer(ctx context.Context, rec domain.PlayerRecord) (bool, error)
	GetTopPlayers(ctx context.Context, limit int) ([]domain.PlayerRecord, error)
	// GetPlayerByName matches case-insensitively and returns the first hit
	GetPlayerByName(ctx context.Context, name string) (*domain.PlayerRecord, error)
	Ping(ctx context.Context) error
	Close() error
}
