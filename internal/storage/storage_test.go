package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/numenera/internal/config"
	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
	"github.com/cory-johannsen/numenera/internal/game/item"
	"github.com/cory-johannsen/numenera/internal/storage"
)

const tablesDir = "../../content/tables"

func configFor(t *testing.T, backend string) config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Storage.Backend = backend
	cfg.SQLite.Path = filepath.Join(t.TempDir(), "numenera.db")
	cfg.Tables.Dir = tablesDir
	return cfg
}

func TestOpen_YAML(t *testing.T) {
	store, err := storage.Open(context.Background(), configFor(t, config.BackendYAML), dice.NewSeededSource(1))
	require.NoError(t, err)
	defer store.Close()

	row, err := store.IotumForRoll(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEmpty(t, row.Name)
}

func TestOpen_YAMLMissingDir(t *testing.T) {
	cfg := configFor(t, config.BackendYAML)
	cfg.Tables.Dir = filepath.Join(t.TempDir(), "missing")
	_, err := storage.Open(context.Background(), cfg, dice.NewSeededSource(1))
	assert.Error(t, err)
}

func TestOpenWriter_YAMLIsReadOnly(t *testing.T) {
	_, err := storage.OpenWriter(context.Background(), configFor(t, config.BackendYAML), dice.NewSeededSource(1))
	assert.ErrorIs(t, err, fault.ErrStorage)
}

func TestOpenWriter_UnknownBackend(t *testing.T) {
	_, err := storage.OpenWriter(context.Background(), configFor(t, "mysql"), dice.NewSeededSource(1))
	assert.ErrorIs(t, err, fault.ErrStorage)
}

func TestOpen_SQLiteImportedTablesMatchYAML(t *testing.T) {
	ctx := context.Background()
	cfg := configFor(t, config.BackendSQLite)

	tables, err := item.LoadTables(tablesDir)
	require.NoError(t, err)

	writer, err := storage.OpenWriter(ctx, cfg, dice.NewSeededSource(1))
	require.NoError(t, err)
	require.NoError(t, writer.ReplaceTables(ctx, tables))
	require.NoError(t, writer.Close())

	store, err := storage.Open(ctx, cfg, dice.NewSeededSource(1))
	require.NoError(t, err)
	defer store.Close()

	memory := item.NewMemoryStore(tables, dice.NewSeededSource(1))
	for roll := 1; roll <= 100; roll++ {
		want, err := memory.IotumForRoll(ctx, roll)
		require.NoError(t, err)
		got, err := store.IotumForRoll(ctx, roll)
		require.NoError(t, err)
		assert.Equal(t, want, got, "roll %d", roll)
	}
}

func TestOpen_SQLiteEmptyDatabaseIsStorageError(t *testing.T) {
	store, err := storage.Open(context.Background(), configFor(t, config.BackendSQLite), dice.NewSeededSource(1))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.RandomCypher(context.Background())
	assert.ErrorIs(t, err, fault.ErrStorage)
}
