// Package main is the entry point for the todostack CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/todostack/cmd/todostack/commands"
	"go.trai.ch/todostack/internal/app"
	"go.trai.ch/todostack/internal/core/domain"
	_ "go.trai.ch/todostack/internal/wiring"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...graft.Option) int {
	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx, opts...)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Warn("failed to close telemetry: " + err.Error())
		}
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// The failing command and its stderr were already printed.
		if errors.Is(err, domain.ErrStepFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
