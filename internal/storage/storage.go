// Package storage opens the salvage table store selected by configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/numenera/internal/config"
	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
	"github.com/cory-johannsen/numenera/internal/game/item"
	"github.com/cory-johannsen/numenera/internal/storage/postgres"
	"github.com/cory-johannsen/numenera/internal/storage/sqlite"
)

// TableStore is an item.Store holding resources until closed.
type TableStore interface {
	item.Store
	Close() error
}

// TableWriter is a TableStore whose content can be replaced.
type TableWriter interface {
	TableStore
	ReplaceTables(ctx context.Context, tables item.Tables) error
}

// Open returns the store for cfg.Storage.Backend. Random rows are chosen with src.
//
// Precondition: cfg must have passed Validate; src must be non-nil.
// Postcondition: Returns an open TableStore the caller must Close, or a non-nil error.
func Open(ctx context.Context, cfg config.Config, src dice.Source) (TableStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendYAML:
		tables, err := item.LoadTables(cfg.Tables.Dir)
		if err != nil {
			return nil, err
		}
		return memoryStore{item.NewMemoryStore(tables, src)}, nil
	default:
		store, err := OpenWriter(ctx, cfg, src)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// OpenWriter returns a writable store for the sqlite or postgres backend.
//
// Precondition: cfg must have passed Validate; src must be non-nil.
// Postcondition: Returns an open TableWriter the caller must Close, or a non-nil error.
func OpenWriter(ctx context.Context, cfg config.Config, src dice.Source) (TableWriter, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite.Path, src)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return postgresStore{TableRepository: postgres.NewTableRepository(pool.DB(), src), pool: pool}, nil
	case config.BackendYAML:
		return nil, fmt.Errorf("%w: the yaml backend is read-only", fault.ErrStorage)
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", fault.ErrStorage, cfg.Storage.Backend)
	}
}

type memoryStore struct {
	*item.MemoryStore
}

func (memoryStore) Close() error { return nil }

type postgresStore struct {
	*postgres.TableRepository
	pool *postgres.Pool
}

func (s postgresStore) Close() error {
	s.pool.Close()
	return nil
}
