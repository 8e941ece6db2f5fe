// import-tables loads the YAML salvage tables, validates them, and replaces
// the contents of the sqlite or postgres table store with them.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/numenera/internal/config"
	"github.com/cory-johannsen/numenera/internal/game/dice"
	"github.com/cory-johannsen/numenera/internal/game/fault"
	"github.com/cory-johannsen/numenera/internal/game/item"
	"github.com/cory-johannsen/numenera/internal/observability"
	"github.com/cory-johannsen/numenera/internal/storage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("import-tables", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to configuration file (optional)")
	backend := fs.String("backend", "", "target store: sqlite or postgres (overrides config)")
	sourceDir := fs.String("source", "", "directory holding the table YAML files (overrides tables.dir)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	start := time.Now()
	counts, err := importTables(context.Background(), *configPath, *backend, *sourceDir)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", fault.Category(err), err)
		return 1
	}
	fmt.Fprintf(stdout, "imported %d iotum, %d oddities, %d cyphers, %d artifacts in %s\n",
		len(counts.Iotum), len(counts.Oddities), len(counts.Cyphers), len(counts.Artifacts),
		time.Since(start).Round(time.Millisecond))
	return 0
}

// importTables replaces the configured store's content with the validated
// YAML tables and returns what was imported.
func importTables(ctx context.Context, configPath, backend, sourceDir string) (item.Tables, error) {
	v := config.NewViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return item.Tables{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	if backend != "" {
		v.Set("storage.backend", backend)
	}
	if sourceDir != "" {
		v.Set("tables.dir", sourceDir)
	}
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return item.Tables{}, err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return item.Tables{}, fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	tables, err := item.LoadTables(cfg.Tables.Dir)
	if err != nil {
		return item.Tables{}, err
	}
	logger.Info("tables loaded", zap.String("dir", cfg.Tables.Dir))

	store, err := storage.OpenWriter(ctx, cfg, dice.NewCryptoSource())
	if err != nil {
		return item.Tables{}, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing table store", zap.Error(err))
		}
	}()

	if err := store.ReplaceTables(ctx, tables); err != nil {
		return item.Tables{}, err
	}
	logger.Info("tables imported", zap.String("backend", cfg.Storage.Backend))
	return tables, nil
}
