package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/storage"
	"github.com/mcoot/guessr/internal/storage/sqlite/migrations"
	"github.com/mcoot/guessr/internal/storage/storagetest"
)

func openTempStore(t *testing.T) *Storage {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "guessr.db"))
	require.NoError(t, err)
	return store
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, &storagetest.Suite{
		NewStorage: func() storage.Storage { return openTempStore(t) },
	})
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}

func TestReopenKeepsDataAndSkipsAppliedMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "guessr.db")

	store, err := Open(ctx, path)
	require.NoError(t, err)
	player, _ := model.NewPlayer("alice", time.Now())
	require.NoError(t, store.CreatePlayer(ctx, player))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)

	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)
	var count int
	require.NoError(t, reopened.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, len(entries), count, "one row per .sql file")
}

func TestHangmanTurnsColumnDefaultsToSeven(t *testing.T) {
	ctx := context.Background()
	store := openTempStore(t)
	defer store.Close()

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO hangmen (answer, created_at, updated_at) VALUES ('cat', 0, 0)`)
	require.NoError(t, err)

	game, err := store.GetHangman(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTurns, game.Turns)
	assert.Empty(t, game.Guesses)
	assert.False(t, game.Finished)
}

func TestApplyMigrationsRunsInOrderOnce(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE items (id INTEGER PRIMARY KEY);\n-- +migrate Down\nDROP TABLE items;")},
		"002_alter.sql":  &fstest.MapFile{Data: []byte("-- +migrate Up\nALTER TABLE items ADD COLUMN label TEXT;")},
		"README.md":      &fstest.MapFile{Data: []byte("not a migration")},
	}

	require.NoError(t, applyMigrations(ctx, db, fsys))
	require.NoError(t, applyMigrations(ctx, db, fsys), "second run is a no-op")

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 2, count)

	_, err = db.ExecContext(ctx, "INSERT INTO items (label) VALUES ('x')")
	assert.NoError(t, err)
}

func TestApplyMigrationsDoesNotRecordFailure(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"001_broken.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE (;")},
	}

	assert.Error(t, applyMigrations(ctx, db, fsys))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestUpSection(t *testing.T) {
	assert.Equal(t, "\nA;\n", upSection("-- +migrate Up\nA;\n-- +migrate Down\nB;"))
	assert.Equal(t, "\nA;", upSection("-- +migrate Up\nA;"))
	assert.Equal(t, "A;", upSection("A;"))
}
