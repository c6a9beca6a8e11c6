package plugin

import (
	"context"
	"fmt"

	"github.com/osse101/PlayerLevels_Go/internal/config"
	"github.com/osse101/PlayerLevels_Go/internal/database"
	"github.com/osse101/PlayerLevels_Go/internal/database/postgres"
	"github.com/osse101/PlayerLevels_Go/internal/database/sqlite"
	"github.com/osse101/PlayerLevels_Go/internal/repository"
)

// OpenRepository connects to the configured backend and applies migrations
func OpenRepository(ctx context.Context, cfg config.Storage) (repository.Player, error) {
	switch cfg.Type {
	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.Postgres.DSN())
		if err != nil {
			return nil, err
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return postgres.NewPlayerRepository(pool), nil

	case config.StorageSQLite, "":
		db, err := database.OpenSQLite(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		if err := database.MigrateSQLite(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return sqlite.NewPlayerRepository(db), nil
	}
	return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
}
