package item

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
)

// MemoryStore implements Store over Tables held in memory.
type MemoryStore struct {
	tables Tables
	src    dice.Source
}

// NewMemoryStore creates a MemoryStore picking random rows with src.
//
// Precondition: src must be non-nil; tables should have passed Validate.
func NewMemoryStore(tables Tables, src dice.Source) *MemoryStore {
	return &MemoryStore{tables: tables, src: src}
}

// IotumForRoll returns the first iotum row whose bracket contains roll.
func (m *MemoryStore) IotumForRoll(_ context.Context, roll int) (IotumRow, error) {
	for _, r := range m.tables.Iotum {
		if r.MinRoll <= roll && r.MaxRoll >= roll {
			return r, nil
		}
	}
	return IotumRow{}, fmt.Errorf("%w: no iotum row for roll %d", fault.ErrStorage, roll)
}

// RandomOddity returns a uniformly random oddity row.
func (m *MemoryStore) RandomOddity(_ context.Context) (OddityRow, error) {
	return pick(m.src, m.tables.Oddities, "oddities")
}

// RandomCypher returns a uniformly random cypher row.
func (m *MemoryStore) RandomCypher(_ context.Context) (DeviceRow, error) {
	return pick(m.src, m.tables.Cyphers, "cyphers")
}

// RandomArtifact returns a uniformly random artifact row.
func (m *MemoryStore) RandomArtifact(_ context.Context) (DeviceRow, error) {
	return pick(m.src, m.tables.Artifacts, "artifacts")
}

func pick[T any](src dice.Source, rows []T, table string) (T, error) {
	if len(rows) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: %s table is empty", fault.ErrStorage, table)
	}
	return rows[src.Intn(len(rows))], nil
}
