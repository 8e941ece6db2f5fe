// numenera resolves salvage and draws loot from the Numenera item tables.
//
// Usage:
//
//	numenera salvage <level>
//	numenera loot [-c N] [-a N] [-o N]
//	numenera roll <expr>...
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cory-johannsen/numenera/internal/game/fault"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit status.
// SIGINT and SIGTERM cancel the command context.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", fault.Category(err), err)
		return 1
	}
	return 0
}
