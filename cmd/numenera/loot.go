package main

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/numenera/internal/game/item"
	"github.com/cory-johannsen/numenera/internal/render"
)

func newLootCmd(root *rootFlags) *cobra.Command {
	var counts item.LootCounts
	cmd := &cobra.Command{
		Use:   "loot",
		Short: "Draw cyphers, artifacts, and oddities directly from the tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLoot(cmd, root, counts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&counts.Cyphers, "cyphers", "c", 0, "number of cyphers to draw")
	f.IntVarP(&counts.Artifacts, "artifacts", "a", 0, "number of artifacts to draw")
	f.IntVarP(&counts.Oddities, "oddities", "o", 0, "number of oddities to draw")
	return cmd
}

func runLoot(cmd *cobra.Command, root *rootFlags, counts item.LootCounts) error {
	if err := counts.Validate(); err != nil {
		return err
	}

	a, err := root.newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	lookup, closeStore, err := a.openLookup(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	loot, err := item.DrawLoot(ctx, lookup, counts)
	if err != nil {
		return err
	}
	return a.write(cmd.OutOrStdout(),
		func(t render.Text) string { return t.Loot(loot) },
		func() ([]byte, error) { return render.LootYAML(loot) },
	)
}
