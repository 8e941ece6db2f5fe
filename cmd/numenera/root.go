package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/numenera/internal/config"
	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/item"
	"github.com/cory-johannsen/numenera/internal/observability"
	"github.com/cory-johannsen/numenera/internal/render"
	"github.com/cory-johannsen/numenera/internal/storage"
)

// version is set at build time via -ldflags.
var version = "dev"

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

type rootFlags struct {
	configPath string
	backend    string
	format     string
	color      bool
	seed       uint64
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "numenera",
		Short:         "Resolve salvage and draw loot from the Numenera item tables",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&flags.configPath, "config", "", "path to YAML configuration file (optional)")
	f.StringVar(&flags.backend, "backend", "", "table store: sqlite, postgres, or yaml (overrides config)")
	f.StringVar(&flags.format, "format", formatText, "output format: text or yaml")
	f.BoolVar(&flags.color, "color", false, "colour text output with ANSI escapes")
	f.Uint64Var(&flags.seed, "seed", 0, "seed for reproducible rolls (0 = crypto randomness)")

	cmd.AddCommand(newSalvageCmd(flags))
	cmd.AddCommand(newLootCmd(flags))
	cmd.AddCommand(newRollCmd(flags))
	return cmd
}

// app is the per-invocation wiring shared by the subcommands.
type app struct {
	flags  *rootFlags
	cfg    config.Config
	logger *zap.Logger
	prims  dice.Primitives
	roller *dice.Roller
	src    dice.Source
}

func (f *rootFlags) newApp() (*app, error) {
	if f.format != formatText && f.format != formatYAML {
		return nil, fmt.Errorf("unknown output format %q: must be %q or %q", f.format, formatText, formatYAML)
	}

	v := config.NewViper()
	if f.configPath != "" {
		v.SetConfigFile(f.configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	if f.backend != "" {
		v.Set("storage.backend", f.backend)
	}
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return nil, err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	src := dice.NewCryptoSource()
	if f.seed != 0 {
		src = dice.NewSeededSource(f.seed)
	}
	return &app{
		flags:  f,
		cfg:    cfg,
		logger: logger,
		prims:  dice.NewPrimitives(src),
		roller: dice.NewLoggedRoller(src, logger),
		src:    src,
	}, nil
}

// openLookup opens the configured store and wraps it in the item tables.
// The returned close function must be called when done.
func (a *app) openLookup(ctx context.Context) (item.Lookup, func(), error) {
	store, err := storage.Open(ctx, a.cfg, a.src)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("table store opened", zap.String("backend", a.cfg.Storage.Backend))
	closeStore := func() {
		if err := store.Close(); err != nil {
			a.logger.Warn("closing table store", zap.Error(err))
		}
	}
	return item.NewTable(store, a.prims, a.roller), closeStore, nil
}

// write renders a value in the selected format. Nothing is written if
// encoding fails.
func (a *app) write(w io.Writer, text func(render.Text) string, encode func() ([]byte, error)) error {
	if a.flags.format == formatYAML {
		out, err := encode()
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	_, err := io.WriteString(w, text(render.NewText(a.flags.color)))
	return err
}

func (a *app) close() {
	_ = a.logger.Sync()
}
