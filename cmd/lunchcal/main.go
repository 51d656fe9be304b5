// Package main is the entry point for the lunchcal service.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/lunchcal/cmd/lunchcal/commands"
	"go.trai.ch/lunchcal/internal/adapters/config"
	"go.trai.ch/lunchcal/internal/app"
	_ "go.trai.ch/lunchcal/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The config node runs before cobra parses flags, so the --config
	// override has to be picked out of the raw arguments here.
	applyConfigFlag(os.Args[1:])

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}

func applyConfigFlag(args []string) {
	for i, arg := range args {
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 < len(args) {
				config.SetPath(args[i+1])
			}
		case strings.HasPrefix(arg, "--config="):
			config.SetPath(strings.TrimPrefix(arg, "--config="))
		}
	}
}
