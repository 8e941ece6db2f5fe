package main

import (
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/render"
)

func newRollCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "roll <expr>...",
		Short:   "Evaluate dice expressions such as 3d6, 1d6+2, or 5",
		Example: "  numenera roll 1d6+2 \"3d6 + 2\" 5",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(cmd, root, args)
		},
	}
}

// runRoll evaluates every expression before printing, so a bad expression
// prints nothing.
func runRoll(cmd *cobra.Command, root *rootFlags, exprs []string) error {
	a, err := root.newApp()
	if err != nil {
		return err
	}
	defer a.close()

	rolls := make([]dice.RollResult, 0, len(exprs))
	for _, expr := range exprs {
		r, err := a.roller.RollExpr(expr)
		if err != nil {
			return err
		}
		rolls = append(rolls, r)
	}
	return a.write(cmd.OutOrStdout(),
		func(t render.Text) string { return t.Rolls(rolls) },
		func() ([]byte, error) { return render.RollsYAML(rolls) },
	)
}
