package item

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
)

// Table implements Lookup over a Store, rolling the d100 brackets, oddity
// entries, and level expressions itself so every backend behaves the same.
type Table struct {
	store  Store
	dice   dice.Primitives
	roller *dice.Roller
}

// NewTable creates a Table.
//
// Precondition: store, prims, and roller must be non-nil.
func NewTable(store Store, prims dice.Primitives, roller *dice.Roller) *Table {
	return &Table{store: store, dice: prims, roller: roller}
}

// Iotum draws the iotum row bracketing a fresh d100 roll.
//
// Precondition: itemLevel in [1, 255].
// Postcondition: A Plan seed has Level == UnitsSalvaged == itemLevel and
// Value == row value * itemLevel; any other iotum takes Level from its row and
// UnitsSalvaged from evaluating the row's expression.
func (t *Table) Iotum(ctx context.Context, itemLevel int) (Iotum, error) {
	roll := t.dice.D100()
	row, err := t.store.IotumForRoll(ctx, roll)
	if err != nil {
		return Iotum{}, fmt.Errorf("looking up iotum for roll %d: %w", roll, err)
	}

	if row.Name == PlanSeed {
		value := row.Value * itemLevel
		if value > dice.MaxValue {
			return Iotum{}, fmt.Errorf("%w: %s value %d x level %d exceeds %d",
				fault.ErrDataFormat, PlanSeed, row.Value, itemLevel, dice.MaxValue)
		}
		return Iotum{
			Name:          row.Name,
			Level:         itemLevel,
			UnitsSalvaged: itemLevel,
			Value:         value,
		}, nil
	}

	if row.Level < 1 {
		return Iotum{}, fmt.Errorf("%w: iotum %q has no level", fault.ErrDataFormat, row.Name)
	}
	units, err := t.roller.Evaluate(row.UnitsSalvaged)
	if err != nil {
		return Iotum{}, fmt.Errorf("rolling units salvaged for iotum %q: %w", row.Name, err)
	}
	return Iotum{
		Name:          row.Name,
		Level:         row.Level,
		UnitsSalvaged: units,
		Value:         row.Value,
	}, nil
}

// Oddity draws a random oddity and attaches a fresh d100 entry roll.
func (t *Table) Oddity(ctx context.Context) (Oddity, error) {
	row, err := t.store.RandomOddity(ctx)
	if err != nil {
		return Oddity{}, fmt.Errorf("looking up oddity: %w", err)
	}
	return Oddity{
		Description: row.Description,
		Entry:       t.dice.D100(),
		Source:      row.Source,
		Page:        row.Page,
	}, nil
}

// Cypher draws a random cypher and rolls its level.
func (t *Table) Cypher(ctx context.Context) (Cypher, error) {
	row, err := t.store.RandomCypher(ctx)
	if err != nil {
		return Cypher{}, fmt.Errorf("looking up cypher: %w", err)
	}
	level, err := t.roller.Evaluate(row.Level)
	if err != nil {
		return Cypher{}, fmt.Errorf("rolling level for cypher %q: %w", row.Name, err)
	}
	return Cypher{Name: row.Name, Level: level, Source: row.Source, Page: row.Page}, nil
}

// Artifact draws a random artifact and rolls its level.
func (t *Table) Artifact(ctx context.Context) (Artifact, error) {
	row, err := t.store.RandomArtifact(ctx)
	if err != nil {
		return Artifact{}, fmt.Errorf("looking up artifact: %w", err)
	}
	level, err := t.roller.Evaluate(row.Level)
	if err != nil {
		return Artifact{}, fmt.Errorf("rolling level for artifact %q: %w", row.Name, err)
	}
	return Artifact{Name: row.Name, Level: level, Source: row.Source, Page: row.Page}, nil
}
