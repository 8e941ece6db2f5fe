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

func TestDrawLoot_Counts(t *testing.T) {
	src := dice.NewSeededSource(7)
	tbl := newTestTable(item.NewMemoryStore(sampleTables(), src), dice.NewPrimitives(src), src)

	loot, err := item.DrawLoot(context.Background(), tbl, item.LootCounts{Cyphers: 3, Artifacts: 1, Oddities: 2})
	require.NoError(t, err)
	assert.Len(t, loot.Cyphers, 3)
	assert.Len(t, loot.Artifacts, 1)
	assert.Len(t, loot.Oddities, 2)
	for _, o := range loot.Oddities {
		assert.True(t, o.Entry >= 1 && o.Entry <= 100)
	}
}

func TestDrawLoot_ZeroCounts(t *testing.T) {
	store := &stubStore{err: storageFailure("table")}
	loot, err := item.DrawLoot(context.Background(), newTestTable(store, fixedPrimitives{}, constSource(0)), item.LootCounts{})
	require.NoError(t, err, "no draws means the store is never touched")
	assert.Equal(t, item.Loot{}, loot)
}

func TestDrawLoot_AbortsOnFailure(t *testing.T) {
	store := &stubStore{err: storageFailure("artifacts")}
	_, err := item.DrawLoot(context.Background(), newTestTable(store, fixedPrimitives{}, constSource(0)),
		item.LootCounts{Artifacts: 2})
	assert.ErrorIs(t, err, fault.ErrStorage)
}

func TestLootCounts_Validate(t *testing.T) {
	assert.NoError(t, item.LootCounts{Cyphers: 255}.Validate())
	assert.ErrorIs(t, item.LootCounts{Oddities: -1}.Validate(), fault.ErrDataFormat)
	assert.ErrorIs(t, item.LootCounts{Artifacts: 256}.Validate(), fault.ErrDataFormat)
}

func TestDrawLoot_Property_LevelsFromExpressions(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		n := rapid.IntRange(0, 10).Draw(rt, "n")
		src := dice.NewSeededSource(seed)
		tbl := newTestTable(item.NewMemoryStore(sampleTables(), src), dice.NewPrimitives(src), src)

		loot, err := item.DrawLoot(context.Background(), tbl, item.LootCounts{Cyphers: n, Artifacts: n})
		require.NoError(rt, err)
		require.Len(rt, loot.Cyphers, n)
		for _, c := range loot.Cyphers {
			// sample cyphers are 1d6+2 and 1d6
			assert.True(rt, c.Level >= 1 && c.Level <= 8, "cypher level %d", c.Level)
		}
		for _, a := range loot.Artifacts {
			assert.True(rt, a.Level >= 4 && a.Level <= 9, "artifact level %d", a.Level)
		}
	})
}
