package item_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
	"github.com/cory-johannsen/numenera/internal/game/item"
)

func TestMemoryStore_IotumForRoll_Brackets(t *testing.T) {
	store := item.NewMemoryStore(sampleTables(), constSource(0))
	ctx := context.Background()

	cases := map[int]string{1: "Io", 60: "Io", 61: "Responsive synth", 99: "Responsive synth", 100: item.PlanSeed}
	for roll, want := range cases {
		row, err := store.IotumForRoll(ctx, roll)
		require.NoError(t, err, "roll %d", roll)
		assert.Equal(t, want, row.Name, "roll %d", roll)
	}
}

func TestMemoryStore_IotumForRoll_NoRow(t *testing.T) {
	store := item.NewMemoryStore(sampleTables(), constSource(0))
	_, err := store.IotumForRoll(context.Background(), 101)
	assert.ErrorIs(t, err, fault.ErrStorage)
}

func TestMemoryStore_RandomRows_UseSource(t *testing.T) {
	tables := sampleTables()
	ctx := context.Background()

	first := item.NewMemoryStore(tables, constSource(0))
	o, err := first.RandomOddity(ctx)
	require.NoError(t, err)
	assert.Equal(t, tables.Oddities[0], o)

	last := item.NewMemoryStore(tables, constSource(1))
	c, err := last.RandomCypher(ctx)
	require.NoError(t, err)
	assert.Equal(t, tables.Cyphers[1], c)

	a, err := last.RandomArtifact(ctx)
	require.NoError(t, err)
	assert.Equal(t, tables.Artifacts[0], a)
}

func TestMemoryStore_EmptyTable(t *testing.T) {
	store := item.NewMemoryStore(item.Tables{}, constSource(0))
	ctx := context.Background()

	_, err := store.RandomOddity(ctx)
	assert.ErrorIs(t, err, fault.ErrStorage)
	_, err = store.RandomCypher(ctx)
	assert.ErrorIs(t, err, fault.ErrStorage)
	_, err = store.RandomArtifact(ctx)
	assert.ErrorIs(t, err, fault.ErrStorage)
}

// TestMemoryStore_Property_EveryRollHasIotum: validated tables cover every d100 roll.
func TestMemoryStore_Property_EveryRollHasIotum(t *testing.T) {
	store := item.NewMemoryStore(sampleTables(), dice.NewCryptoSource())
	rapid.Check(t, func(rt *rapid.T) {
		roll := rapid.IntRange(1, 100).Draw(rt, "roll")
		row, err := store.IotumForRoll(context.Background(), roll)
		require.NoError(rt, err)
		assert.True(rt, row.MinRoll <= roll && roll <= row.MaxRoll)
	})
}
