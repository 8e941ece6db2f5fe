package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/numenera/internal/game/dice"
)

// sequenceSource replays Intn results in order, cycling when exhausted.
type sequenceSource struct {
	vals []int
	next int
}

func (s *sequenceSource) Intn(n int) int {
	v := s.vals[s.next%len(s.vals)]
	s.next++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("sequenceSource: value %d out of range [0, %d)", v, n))
	}
	return v
}

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, 12, r.Total())
}

func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{Expression: "2d6+3", Dice: []int{4, 5}, Modifier: 3}
	assert.Equal(t, "2d6+3 → [4 5] +3 = 12", r.String())
}

func TestRollResult_String_Constant(t *testing.T) {
	r := dice.RollResult{Expression: "5", Modifier: 5}
	assert.Equal(t, "5 → [] +5 = 5", r.String())
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}}
	assert.Panics(t, func() { _ = r.String() })
}

// TestRollResult_Total_Property verifies Total() == sum(Dice) + Modifier.
func TestRollResult_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rolled := rapid.SliceOf(rapid.IntRange(1, 20)).Draw(rt, "dice")
		modifier := rapid.IntRange(0, 255).Draw(rt, "modifier")

		expected := modifier
		for _, d := range rolled {
			expected += d
		}
		r := dice.RollResult{Expression: "Nd20+M", Dice: rolled, Modifier: modifier}
		assert.Equal(rt, expected, r.Total())
	})
}

func TestRollResult_String_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		expr := rapid.StringMatching(`[0-9]{1,2}d[0-9]{1,2}\+[0-9]{1,2}`).Draw(rt, "expression")
		rolled := rapid.SliceOfN(rapid.IntRange(1, 20), 1, 10).Draw(rt, "dice")
		r := dice.RollResult{Expression: expr, Dice: rolled}
		s := r.String()
		assert.True(rt, strings.HasPrefix(s, expr))
		assert.True(rt, strings.HasSuffix(s, fmt.Sprintf("= %d", r.Total())))
	})
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewCryptoSource().Intn(0) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestSeededSource_Intn_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { dice.NewSeededSource(1).Intn(-1) })
}

func TestPrimitives_Bounds_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		p := dice.NewPrimitives(dice.NewSeededSource(seed))

		flip := p.CoinFlip()
		assert.True(rt, flip == 1 || flip == 2, "coin flip %d", flip)
		assert.True(rt, p.D6() >= 1 && p.D6() <= 6)
		assert.True(rt, p.D10() >= 1 && p.D10() <= 10)
		assert.True(rt, p.D100() >= 1 && p.D100() <= 100)
	})
}

func TestPrimitives_InclusiveBounds(t *testing.T) {
	low := dice.NewPrimitives(&sequenceSource{vals: []int{0}})
	assert.Equal(t, 1, low.CoinFlip())
	assert.Equal(t, 1, low.D6())
	assert.Equal(t, 1, low.D10())
	assert.Equal(t, 1, low.D100())

	assert.Equal(t, 2, dice.NewPrimitives(&sequenceSource{vals: []int{1}}).CoinFlip())
	assert.Equal(t, 6, dice.NewPrimitives(&sequenceSource{vals: []int{5}}).D6())
	assert.Equal(t, 10, dice.NewPrimitives(&sequenceSource{vals: []int{9}}).D10())
	assert.Equal(t, 100, dice.NewPrimitives(&sequenceSource{vals: []int{99}}).D100())
}
