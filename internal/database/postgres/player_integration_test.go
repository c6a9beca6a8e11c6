package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/PlayerLevels_Go/internal/database"
	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

// setupPool starts a throwaway postgres and applies migrations, skipping without Docker
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	var (
		pgContainer *postgres.PostgresContainer
		err         error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test, could not start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.MigratePostgres(ctx, pool))
	return pool
}

func TestPlayerRepository_Integration(t *testing.T) {
	pool := setupPool(t)
	repo := NewPlayerRepository(pool)
	ctx := context.Background()

	t.Run("missing player", func(t *testing.T) {
		rec, err := repo.GetPlayer(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("upsert replaces", func(t *testing.T) {
		id := uuid.New()
		require.NoError(t, repo.UpsertPlayer(ctx, domain.PlayerRecord{ID: id, Name: "Steve", Experience: 100, Level: 2}))
		require.NoError(t, repo.UpsertPlayer(ctx, domain.PlayerRecord{ID: id, Name: "AVeryLongPlayerNameIndeed", Experience: 250, Level: 3}))

		rec, err := repo.GetPlayer(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "AVeryLongPlayerN", rec.Name)
		assert.Equal(t, 250.0, rec.Experience)
		assert.Equal(t, 3, rec.Level)
	})

	t.Run("update only", func(t *testing.T) {
		ok, err := repo.UpdatePlayer(ctx, domain.PlayerRecord{ID: uuid.New(), Name: "Ghost", Level: 1})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("leaderboard and name lookup", func(t *testing.T) {
		high := domain.PlayerRecord{ID: uuid.New(), Name: "Champion", Experience: 1e6, Level: 30}
		require.NoError(t, repo.UpsertPlayer(ctx, high))

		top, err := repo.GetTopPlayers(ctx, 1)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, high, top[0])

		got, err := repo.GetPlayerByName(ctx, "champion")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, high.ID, got.ID)
	})

	assert.NoError(t, repo.Ping(ctx))
}
