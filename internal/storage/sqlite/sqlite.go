// Package sqlite provides the SQLite salvage table store.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
	"github.com/cory-johannsen/numenera/internal/game/item"
)

//go:embed schema.sql
var schema string

// Store implements item.Store over a SQLite database file.
type Store struct {
	db  *sql.DB
	src dice.Source
}

// Open opens or creates the database at path and ensures the schema exists.
// Random rows are chosen with src.
//
// Precondition: path must be non-empty; src must be non-nil.
// Postcondition: Returns an open Store or an error wrapping fault.ErrStorage.
func Open(ctx context.Context, path string, src dice.Source) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("%w: creating database dir: %w", fault.ErrStorage, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening sqlite %s: %w", fault.ErrStorage, path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: pinging sqlite %s: %w", fault.ErrStorage, path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: creating schema: %w", fault.ErrStorage, err)
	}
	return &Store{db: db, src: src}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// IotumForRoll returns the iotum row whose bracket contains roll.
func (s *Store) IotumForRoll(ctx context.Context, roll int) (item.IotumRow, error) {
	var (
		r     item.IotumRow
		level sql.NullInt64
		units sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT min_roll, max_roll, name, level, units_salvaged, value
		 FROM iotum WHERE min_roll <= ? AND max_roll >= ?
		 ORDER BY min_roll LIMIT 1`,
		roll, roll,
	).Scan(&r.MinRoll, &r.MaxRoll, &r.Name, &level, &units, &r.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return item.IotumRow{}, fmt.Errorf("%w: no iotum row for roll %d", fault.ErrStorage, roll)
	}
	if err != nil {
		return item.IotumRow{}, fmt.Errorf("%w: querying iotum: %w", fault.ErrStorage, err)
	}
	r.Level = int(level.Int64)
	r.UnitsSalvaged = units.String
	return r, nil
}

// RandomOddity returns a uniformly random oddity row.
func (s *Store) RandomOddity(ctx context.Context) (item.OddityRow, error) {
	offset, err := s.randomOffset(ctx, "oddities")
	if err != nil {
		return item.OddityRow{}, err
	}
	var (
		r      item.OddityRow
		source sql.NullString
		page   sql.NullInt64
	)
	err = s.db.QueryRowContext(ctx,
		`SELECT description, source, page FROM oddities ORDER BY id LIMIT 1 OFFSET ?`, offset,
	).Scan(&r.Description, &source, &page)
	if err != nil {
		return item.OddityRow{}, fmt.Errorf("%w: querying oddities: %w", fault.ErrStorage, err)
	}
	r.Source = source.String
	r.Page = int(page.Int64)
	return r, nil
}

// RandomCypher returns a uniformly random cypher row.
func (s *Store) RandomCypher(ctx context.Context) (item.DeviceRow, error) {
	return s.randomDevice(ctx, "cyphers")
}

// RandomArtifact returns a uniformly random artifact row.
func (s *Store) RandomArtifact(ctx context.Context) (item.DeviceRow, error) {
	return s.randomDevice(ctx, "artifacts")
}

// table is always one of the fixed table names above.
func (s *Store) randomDevice(ctx context.Context, table string) (item.DeviceRow, error) {
	offset, err := s.randomOffset(ctx, table)
	if err != nil {
		return item.DeviceRow{}, err
	}
	var (
		r      item.DeviceRow
		source sql.NullString
		page   sql.NullInt64
	)
	err = s.db.QueryRowContext(ctx,
		`SELECT name, level, source, page FROM `+table+` ORDER BY id LIMIT 1 OFFSET ?`, offset,
	).Scan(&r.Name, &r.Level, &source, &page)
	if err != nil {
		return item.DeviceRow{}, fmt.Errorf("%w: querying %s: %w", fault.ErrStorage, table, err)
	}
	r.Source = source.String
	r.Page = int(page.Int64)
	return r, nil
}

func (s *Store) randomOffset(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: counting %s: %w", fault.ErrStorage, table, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %s table is empty", fault.ErrStorage, table)
	}
	return s.src.Intn(n), nil
}

// ReplaceTables swaps the contents of all four tables for tables in a single
// transaction.
//
// Precondition: tables should have passed Validate.
// Postcondition: On success the store serves exactly tables; on error nothing changes.
func (s *Store) ReplaceTables(ctx context.Context, tables item.Tables) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %w", fault.ErrStorage, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"iotum", "oddities", "cyphers", "artifacts"} {
		if _, err = tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("%w: clearing %s: %w", fault.ErrStorage, table, err)
		}
	}
	for _, r := range tables.Iotum {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO iotum (min_roll, max_roll, name, level, units_salvaged, value)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.MinRoll, r.MaxRoll, r.Name, nullInt(r.Level), nullString(r.UnitsSalvaged), r.Value)
		if err != nil {
			return fmt.Errorf("%w: inserting iotum %q: %w", fault.ErrStorage, r.Name, err)
		}
	}
	for _, r := range tables.Oddities {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO oddities (description, source, page) VALUES (?, ?, ?)`,
			r.Description, nullString(r.Source), nullInt(r.Page))
		if err != nil {
			return fmt.Errorf("%w: inserting oddity: %w", fault.ErrStorage, err)
		}
	}
	for table, rows := range map[string][]item.DeviceRow{"cyphers": tables.Cyphers, "artifacts": tables.Artifacts} {
		for _, r := range rows {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO `+table+` (name, level, source, page) VALUES (?, ?, ?, ?)`,
				r.Name, r.Level, nullString(r.Source), nullInt(r.Page))
			if err != nil {
				return fmt.Errorf("%w: inserting %s %q: %w", fault.ErrStorage, table, r.Name, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing tables: %w", fault.ErrStorage, err)
	}
	return nil
}

func nullInt(v int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(v), Valid: v != 0}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
