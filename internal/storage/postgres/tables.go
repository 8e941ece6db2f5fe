package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
	"github.com/cory-johannsen/numenera/internal/game/item"
)

// TableRepository implements item.Store over the salvage tables.
type TableRepository struct {
	db  *pgxpool.Pool
	src dice.Source
}

// NewTableRepository creates a TableRepository backed by the given pool.
// Random rows are chosen with src.
//
// Precondition: db must be a valid, open connection pool; src must be non-nil.
func NewTableRepository(db *pgxpool.Pool, src dice.Source) *TableRepository {
	return &TableRepository{db: db, src: src}
}

// IotumForRoll returns the iotum row whose bracket contains roll.
//
// Postcondition: Returns the row, or an error wrapping fault.ErrStorage when
// no bracket matches or the query fails.
func (r *TableRepository) IotumForRoll(ctx context.Context, roll int) (item.IotumRow, error) {
	var (
		row   item.IotumRow
		level *int
		units *string
	)
	err := r.db.QueryRow(ctx, `
		SELECT min_roll, max_roll, name, level, units_salvaged, value
		FROM iotum WHERE min_roll <= $1 AND max_roll >= $1
		ORDER BY min_roll LIMIT 1`,
		roll,
	).Scan(&row.MinRoll, &row.MaxRoll, &row.Name, &level, &units, &row.Value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return item.IotumRow{}, fmt.Errorf("%w: no iotum row for roll %d", fault.ErrStorage, roll)
		}
		return item.IotumRow{}, fmt.Errorf("%w: querying iotum: %w", fault.ErrStorage, err)
	}
	row.Level = deref(level)
	row.UnitsSalvaged = deref(units)
	return row, nil
}

// RandomOddity returns a uniformly random oddity row.
func (r *TableRepository) RandomOddity(ctx context.Context) (item.OddityRow, error) {
	offset, err := r.randomOffset(ctx, "oddities")
	if err != nil {
		return item.OddityRow{}, err
	}
	var (
		row    item.OddityRow
		source *string
		page   *int
	)
	err = r.db.QueryRow(ctx,
		`SELECT description, source, page FROM oddities ORDER BY id LIMIT 1 OFFSET $1`, offset,
	).Scan(&row.Description, &source, &page)
	if err != nil {
		return item.OddityRow{}, fmt.Errorf("%w: querying oddities: %w", fault.ErrStorage, err)
	}
	row.Source = deref(source)
	row.Page = deref(page)
	return row, nil
}

// RandomCypher returns a uniformly random cypher row.
func (r *TableRepository) RandomCypher(ctx context.Context) (item.DeviceRow, error) {
	return r.randomDevice(ctx, "cyphers")
}

// RandomArtifact returns a uniformly random artifact row.
func (r *TableRepository) RandomArtifact(ctx context.Context) (item.DeviceRow, error) {
	return r.randomDevice(ctx, "artifacts")
}

func (r *TableRepository) randomDevice(ctx context.Context, table string) (item.DeviceRow, error) {
	offset, err := r.randomOffset(ctx, table)
	if err != nil {
		return item.DeviceRow{}, err
	}
	var (
		row    item.DeviceRow
		source *string
		page   *int
	)
	err = r.db.QueryRow(ctx,
		`SELECT name, level, source, page FROM `+table+` ORDER BY id LIMIT 1 OFFSET $1`, offset,
	).Scan(&row.Name, &row.Level, &source, &page)
	if err != nil {
		return item.DeviceRow{}, fmt.Errorf("%w: querying %s: %w", fault.ErrStorage, table, err)
	}
	row.Source = deref(source)
	row.Page = deref(page)
	return row, nil
}

func (r *TableRepository) randomOffset(ctx context.Context, table string) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: counting %s: %w", fault.ErrStorage, table, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %s table is empty", fault.ErrStorage, table)
	}
	return r.src.Intn(n), nil
}

// ReplaceTables swaps the contents of all four tables for tables in a single
// transaction.
//
// Precondition: tables should have passed Validate.
// Postcondition: On success the repository serves exactly tables; on error nothing changes.
func (r *TableRepository) ReplaceTables(ctx context.Context, tables item.Tables) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %w", fault.ErrStorage, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE iotum, oddities, cyphers, artifacts RESTART IDENTITY`); err != nil {
		return fmt.Errorf("%w: truncating tables: %w", fault.ErrStorage, err)
	}

	batch := &pgx.Batch{}
	for _, row := range tables.Iotum {
		batch.Queue(`
			INSERT INTO iotum (min_roll, max_roll, name, level, units_salvaged, value)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			row.MinRoll, row.MaxRoll, row.Name, nullable(row.Level), nullable(row.UnitsSalvaged), row.Value)
	}
	for _, row := range tables.Oddities {
		batch.Queue(`INSERT INTO oddities (description, source, page) VALUES ($1, $2, $3)`,
			row.Description, nullable(row.Source), nullable(row.Page))
	}
	for _, row := range tables.Cyphers {
		batch.Queue(`INSERT INTO cyphers (name, level, source, page) VALUES ($1, $2, $3, $4)`,
			row.Name, row.Level, nullable(row.Source), nullable(row.Page))
	}
	for _, row := range tables.Artifacts {
		batch.Queue(`INSERT INTO artifacts (name, level, source, page) VALUES ($1, $2, $3, $4)`,
			row.Name, row.Level, nullable(row.Source), nullable(row.Page))
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%w: inserting table rows: %w", fault.ErrStorage, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: committing tables: %w", fault.ErrStorage, err)
	}
	return nil
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// nullable maps the zero value to SQL NULL.
func nullable[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
