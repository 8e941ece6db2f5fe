package item

import (
	"context"
	"fmt"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
)

// LootCounts is how many of each kind a loot draw produces.
type LootCounts struct {
	Cyphers   int
	Artifacts int
	Oddities  int
}

// Validate checks that every count is in [0, 255].
func (c LootCounts) Validate() error {
	for _, n := range []struct {
		kind  string
		count int
	}{{"cyphers", c.Cyphers}, {"artifacts", c.Artifacts}, {"oddities", c.Oddities}} {
		if n.count < 0 || n.count > dice.MaxValue {
			return fmt.Errorf("%w: %s count must be 0-%d, got %d", fault.ErrDataFormat, n.kind, dice.MaxValue, n.count)
		}
	}
	return nil
}

// Loot holds independently drawn cyphers, artifacts, and oddities.
type Loot struct {
	Cyphers   []Cypher   `yaml:"cyphers,omitempty"`
	Artifacts []Artifact `yaml:"artifacts,omitempty"`
	Oddities  []Oddity   `yaml:"oddities,omitempty"`
}

// DrawLoot draws each kind of item directly from lookup, cyphers first, then
// artifacts, then oddities.
//
// Precondition: counts must pass Validate.
// Postcondition: On success len(Cyphers) == counts.Cyphers and likewise for the
// other kinds. Any failure aborts the draw and no loot is returned.
func DrawLoot(ctx context.Context, lookup Lookup, counts LootCounts) (Loot, error) {
	if err := counts.Validate(); err != nil {
		return Loot{}, err
	}

	var loot Loot
	for i := 0; i < counts.Cyphers; i++ {
		c, err := lookup.Cypher(ctx)
		if err != nil {
			return Loot{}, err
		}
		loot.Cyphers = append(loot.Cyphers, c)
	}
	for i := 0; i < counts.Artifacts; i++ {
		a, err := lookup.Artifact(ctx)
		if err != nil {
			return Loot{}, err
		}
		loot.Artifacts = append(loot.Artifacts, a)
	}
	for i := 0; i < counts.Oddities; i++ {
		o, err := lookup.Oddity(ctx)
		if err != nil {
			return Loot{}, err
		}
		loot.Oddities = append(loot.Oddities, o)
	}
	return loot, nil
}
