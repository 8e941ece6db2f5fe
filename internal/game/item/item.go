// Package item defines the salvage reward items, the raw table rows they are
// built from, and the lookups that turn a random table draw into an item.
package item

import "context"

// PlanSeed is the iotum whose level, units, and value scale with the item
// level being salvaged instead of coming from its table row.
const PlanSeed = "Plan seed"

// Iotum is a stackable crafting component recovered from salvage.
type Iotum struct {
	Name          string `yaml:"name"`
	Level         int    `yaml:"level"`
	UnitsSalvaged int    `yaml:"units_salvaged"`
	Value         int    `yaml:"value"`
}

// Oddity is a curiosity with no mechanical effect.
type Oddity struct {
	Description string `yaml:"description"`
	// Entry is a d100 sub-roll players use to pick a variant of the oddity.
	Entry  int    `yaml:"entry"`
	Source string `yaml:"source,omitempty"`
	Page   int    `yaml:"page,omitempty"`
}

// Cypher is a single-use device.
type Cypher struct {
	Name   string `yaml:"name"`
	Level  int    `yaml:"level"`
	Source string `yaml:"source,omitempty"`
	Page   int    `yaml:"page,omitempty"`
}

// Artifact is a persistent, reusable device.
type Artifact struct {
	Name   string `yaml:"name"`
	Level  int    `yaml:"level"`
	Source string `yaml:"source,omitempty"`
	Page   int    `yaml:"page,omitempty"`
}

// Lookup materializes one random item per call. Each call is an independent
// draw; errors wrap fault.ErrStorage or fault.ErrDataFormat.
type Lookup interface {
	// Iotum draws an iotum for an object of the given item level.
	Iotum(ctx context.Context, itemLevel int) (Iotum, error)
	// Oddity draws one oddity.
	Oddity(ctx context.Context) (Oddity, error)
	// Cypher draws one cypher.
	Cypher(ctx context.Context) (Cypher, error)
	// Artifact draws one artifact.
	Artifact(ctx context.Context) (Artifact, error)
}
