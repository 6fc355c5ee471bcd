// Package main is the entry point for the jarpack CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/jarpack/cmd/jarpack/commands"
	"go.trai.ch/jarpack/internal/app"
	_ "go.trai.ch/jarpack/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	defer func() {
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Warn("failed to close telemetry: " + err.Error())
		}
	}()

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
