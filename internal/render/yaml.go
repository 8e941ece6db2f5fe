package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/item"
	"github.com/cory-johannsen/numenera/internal/game/salvage"
)

type salvageDoc struct {
	ID     string    `yaml:"id"`
	Shins  int       `yaml:"shins"`
	Parts  int       `yaml:"parts"`
	Reward rewardDoc `yaml:"reward"`
}

type rewardDoc struct {
	Kind     salvage.Kind   `yaml:"kind"`
	Oddity   *item.Oddity   `yaml:"oddity,omitempty"`
	Iotum    []item.Iotum   `yaml:"iotum,omitempty"`
	Cyphers  []item.Cypher  `yaml:"cyphers,omitempty"`
	Artifact *item.Artifact `yaml:"artifact,omitempty"`
}

type rollDoc struct {
	Expression string `yaml:"expression"`
	Dice       []int  `yaml:"dice,flow"`
	Modifier   int    `yaml:"modifier"`
	Total      int    `yaml:"total"`
}

// SalvageYAML encodes a salvage result with its reward kind made explicit.
//
// Precondition: r.Reward must be non-nil.
func SalvageYAML(r salvage.Result) ([]byte, error) {
	doc := salvageDoc{
		ID:     r.ID,
		Shins:  r.Shins,
		Parts:  r.Parts,
		Reward: rewardDoc{Kind: r.Reward.Kind()},
	}
	if o, ok := r.Oddity(); ok {
		doc.Reward.Oddity = &o
	}
	if a, ok := r.Artifact(); ok {
		doc.Reward.Artifact = &a
	}
	doc.Reward.Iotum = r.Iotum()
	doc.Reward.Cyphers = r.Cyphers()
	return marshal(doc)
}

// LootYAML encodes a loot draw.
func LootYAML(l item.Loot) ([]byte, error) {
	return marshal(l)
}

// RollsYAML encodes dice rolls as a list with their totals.
func RollsYAML(rolls []dice.RollResult) ([]byte, error) {
	docs := make([]rollDoc, 0, len(rolls))
	for _, r := range rolls {
		docs = append(docs, rollDoc{
			Expression: r.Expression,
			Dice:       r.Dice,
			Modifier:   r.Modifier,
			Total:      r.Total(),
		})
	}
	return marshal(docs)
}

func marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return out, nil
}
