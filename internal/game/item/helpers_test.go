package item_test

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
	"github.com/cory-johannsen/numenera/internal/game/item"
)

// fixedPrimitives returns the same value for every primitive roll.
type fixedPrimitives struct {
	flip, d6, d10, d100 int
}

func (f fixedPrimitives) CoinFlip() int { return f.flip }
func (f fixedPrimitives) D6() int { return f.d6 }
func (f fixedPrimitives) D10() int { return f.d10 }
func (f fixedPrimitives) D100() int { return f.d100 }

// constSource always returns v from Intn, clamped to n-1.
type constSource int

func (c constSource) Intn(n int) int {
	if int(c) >= n {
		return n - 1
	}
	return int(c)
}

// stubStore serves canned rows and records the iotum rolls it was asked for.
type stubStore struct {
	iotum    item.IotumRow
	oddity   item.OddityRow
	cypher   item.DeviceRow
	artifact item.DeviceRow
	err      error
	rolls    []int
}

func (s *stubStore) IotumForRoll(_ context.Context, roll int) (item.IotumRow, error) {
	s.rolls = append(s.rolls, roll)
	return s.iotum, s.err
}

func (s *stubStore) RandomOddity(context.Context) (item.OddityRow, error) { return s.oddity, s.err }

func (s *stubStore) RandomCypher(context.Context) (item.DeviceRow, error) { return s.cypher, s.err }

func (s *stubStore) RandomArtifact(context.Context) (item.DeviceRow, error) {
	return s.artifact, s.err
}

func storageFailure(what string) error {
	return fmt.Errorf("%w: %s unavailable", fault.ErrStorage, what)
}

func newTestTable(store item.Store, prims dice.Primitives, src dice.Source) *item.Table {
	return item.NewTable(store, prims, dice.NewLoggedRoller(src, zap.NewNop()))
}

func sampleTables() item.Tables {
	return item.Tables{
		Iotum: []item.IotumRow{
			{MinRoll: 1, MaxRoll: 60, Name: "Io", Level: 1, UnitsSalvaged: "1d6", Value: 1},
			{MinRoll: 61, MaxRoll: 99, Name: "Responsive synth", Level: 2, UnitsSalvaged: "1d6+1", Value: 2},
			{MinRoll: 100, MaxRoll: 100, Name: item.PlanSeed, Value: 3},
		},
		Oddities: []item.OddityRow{
			{Description: "A glass cube that hums when touched.", Source: "Discovery", Page: 380},
			{Description: "A feather that always falls upward."},
		},
		Cyphers: []item.DeviceRow{
			{Name: "Detonation", Level: "1d6+2", Source: "Discovery", Page: 354},
			{Name: "Stim", Level: "1d6", Source: "Discovery", Page: 372},
		},
		Artifacts: []item.DeviceRow{
			{Name: "Lightning Gauntlet", Level: "1d6+3"},
		},
	}
}
