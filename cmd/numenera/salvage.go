package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/numenera/internal/game/fault"
	"github.com/cory-johannsen/numenera/internal/game/salvage"
	"github.com/cory-johannsen/numenera/internal/render"
)

func newSalvageCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "salvage <level>",
		Short: "Salvage one object of the given item level (1-255)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSalvage(cmd, root, args[0])
		},
	}
}

func runSalvage(cmd *cobra.Command, root *rootFlags, arg string) error {
	level, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: item level %q is not an integer", fault.ErrDataFormat, arg)
	}
	if err := salvage.ValidateLevel(level); err != nil {
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

	result, err := salvage.NewEngine(lookup, a.prims, a.logger).Random(ctx, level)
	if err != nil {
		return err
	}
	return a.write(cmd.OutOrStdout(),
		func(t render.Text) string { return t.Salvage(result) },
		func() ([]byte, error) { return render.SalvageYAML(result) },
	)
}
