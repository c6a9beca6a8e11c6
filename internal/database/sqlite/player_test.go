package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlayerLevels_Go/internal/database"
	"github.com/osse101/PlayerLevels_Go/internal/domain"
)

func newTestRepo(t *testing.T) *PlayerRepository {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "playerlevels.db"))
	require.NoError(t, err)
	require.NoError(t, database.MigrateSQLite(ctx, db))

	repo := NewPlayerRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestPlayerRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	rec, err := repo.GetPlayer(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestPlayerRepository_UpsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.UpsertPlayer(ctx, domain.PlayerRecord{ID: id, Name: "Steve", Experience: 250, Level: 3}))
	require.NoError(t, repo.UpsertPlayer(ctx, domain.PlayerRecord{ID: id, Name: "Steve2", Experience: 475.5, Level: 4}))

	rec, err := repo.GetPlayer(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, domain.PlayerRecord{ID: id, Name: "Steve2", Experience: 475.5, Level: 4}, *rec)
}

func TestPlayerRepository_TruncatesLongNames(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, repo.UpsertPlayer(ctx, domain.PlayerRecord{ID: id, Name: "AVeryLongPlayerNameIndeed", Level: 1}))

	rec, err := repo.GetPlayer(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "AVeryLongPlayerN", rec.Name)
}

func TestPlayerRepository_UpdateOnlyTouchesExistingRows(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	existing := domain.PlayerRecord{ID: uuid.New(), Name: "Alex", Experience: 100, Level: 2}
	require.NoError(t, repo.UpsertPlayer(ctx, existing))

	existing.Experience = 300
	existing.Level = 3
	ok, err := repo.UpdatePlayer(ctx, existing)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdatePlayer(ctx, domain.PlayerRecord{ID: uuid.New(), Name: "Ghost", Level: 1})
	require.NoError(t, err)
	assert.False(t, ok)

	rec, err := repo.GetPlayer(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing, *rec)
}

func TestPlayerRepository_GetTopPlayers(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	records := []domain.PlayerRecord{
		{ID: uuid.New(), Name: "low", Experience: 10, Level: 1},
		{ID: uuid.New(), Name: "midA", Experience: 120, Level: 2},
		{ID: uuid.New(), Name: "top", Experience: 300, Level: 3},
		{ID: uuid.New(), Name: "midB", Experience: 200, Level: 2},
	}
	for _, rec := range records {
		require.NoError(t, repo.UpsertPlayer(ctx, rec))
	}

	top, err := repo.GetTopPlayers(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "top", top[0].Name)
	assert.Equal(t, "midB", top[1].Name)
	assert.Equal(t, "midA", top[2].Name)

	all, err := repo.GetTopPlayers(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := repo.GetTopPlayers(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPlayerRepository_GetPlayerByName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	rec := domain.PlayerRecord{ID: uuid.New(), Name: "Notch", Experience: 5, Level: 1}
	require.NoError(t, repo.UpsertPlayer(ctx, rec))

	got, err := repo.GetPlayerByName(ctx, "notch")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID)

	missing, err := repo.GetPlayerByName(ctx, "jeb_")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPlayerRepository_MigrationsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "playerlevels.db")

	db, err := database.OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, database.MigrateSQLite(ctx, db))
	require.NoError(t, db.Close())

	db, err = database.OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, database.MigrateSQLite(ctx, db))
	assert.NoError(t, NewPlayerRepository(db).Ping(ctx))
}
