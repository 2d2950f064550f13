// Package app implements the application layer for todostack.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/todostack/internal/core/domain"
	"go.trai.ch/todostack/internal/core/ports"
	"go.trai.ch/todostack/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	emitter      ports.ComposeEmitter
	validator    ports.ComposeValidator
	runner       *runner.Runner
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	emitter ports.ComposeEmitter,
	validator ports.ComposeValidator,
	r *runner.Runner,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		emitter:      emitter,
		validator:    validator,
		runner:       r,
		logger:       logger,
	}
}

// ComposeOptions configures a Compose call.
type ComposeOptions struct {
	// ConfigPath is the settings file; a missing file means defaults.
	ConfigPath string
	// Validate checks the written document with the compose loader.
	Validate bool
}

// DeployOptions configures a Deploy call.
type DeployOptions struct {
	ConfigPath string
	// DryRun prints the commands instead of running them.
	DryRun bool
	// SkipNetwork leaves out the network step, so the run step relies on a
	// network created elsewhere.
	SkipNetwork bool
	// Progress writes a per-step summary to stderr once the run ends,
	// whether or not it succeeded.
	Progress bool
}

// Compose writes the compose file described by the loaded settings.
func (a *App) Compose(ctx context.Context, opts ComposeOptions, stdout io.Writer) error {
	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	res, err := a.emitter.Emit(ctx, settings)
	if err != nil {
		return zerr.Wrap(err, "failed to generate compose file")
	}

	if opts.Validate {
		if err := a.validator.Validate(ctx, settings.Compose.Project, res.Content); err != nil {
			return zerr.With(zerr.Wrap(err, "generated compose file failed validation"), "path", res.Path)
		}
		a.logger.Info(res.Path + " passed validation")
	}

	_, _ = fmt.Fprintf(stdout, "%s generated successfully!\n", res.Path)
	return nil
}

// Deploy builds the application image and starts its container. On
// success the last line written to stdout carries the service URL.
func (a *App) Deploy(ctx context.Context, opts DeployOptions, stdout, stderr io.Writer) error {
	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if opts.SkipNetwork {
		settings.Deploy.EnsureNetwork = false
	}

	steps, err := domain.NewDeployPlan(settings)
	if err != nil {
		return zerr.Wrap(err, "failed to plan deploy")
	}

	port, err := domain.ParsePortMapping(settings.Deploy.Ports)
	if err != nil {
		return err
	}

	if opts.DryRun {
		runner.Print(steps, stdout)
		return nil
	}

	err = a.runner.Run(ctx, steps, stdout, stderr)
	if opts.Progress {
		if serr := a.runner.Summarize(stderr); serr != nil {
			a.logger.Warn("failed to write step summary: " + serr.Error())
		}
	}
	if err != nil {
		return zerr.Wrap(err, "deploy failed")
	}

	_, _ = fmt.Fprintf(stdout, "TodoApp is running on %s\n", port.URL())
	return nil
}
