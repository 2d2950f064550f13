// Package runner executes deploy steps one after another and stops at the
// first failure.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/todostack/internal/core/domain"
	"go.trai.ch/todostack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner runs a deploy plan through an Executor.
type Runner struct {
	executor  ports.Executor
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(executor ports.Executor, telemetry ports.Telemetry, logger ports.Logger) *Runner {
	return &Runner{
		executor:  executor,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run executes steps in order. Each step's message is written to stdout
// before it starts and its captured output after it succeeds. When a step
// fails its command and captured stderr are written to stderr and the
// returned error wraps domain.ErrStepFailed; later steps are not started.
func (r *Runner) Run(ctx context.Context, steps []domain.Step, stdout, stderr io.Writer) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return zerr.With(zerr.Wrap(err, "deploy interrupted"), "step", step.Name)
		}
		if err := r.runStep(ctx, step, stdout, stderr); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, step domain.Step, stdout, stderr io.Writer) (err error) {
	if len(step.Command) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrEmptyCommand, "invalid step"), "step", step.Name)
	}

	ctx, vertex := r.telemetry.Record(ctx, step.Name)
	defer func() { vertex.Complete(err) }()

	_, _ = fmt.Fprintln(stdout, step.Message)

	if r.satisfied(ctx, step) {
		vertex.Cached()
		r.logger.Info("step " + step.Name + " already satisfied, skipping")
		return nil
	}

	r.logger.Info("running step " + step.Name)
	res, execErr := r.executor.Execute(ctx, step.Command)
	if execErr == nil && !res.Succeeded() {
		execErr = zerr.With(zerr.New("command exited with non-zero status"), "exit_code", res.ExitCode)
	}
	if execErr != nil {
		_, _ = fmt.Fprintf(stderr, "Error running command: %s\n", step)
		_, _ = fmt.Fprintln(stderr, res.Stderr)
		return zerr.With(errors.Join(domain.ErrStepFailed, execErr), "step", step.Name)
	}

	_, _ = fmt.Fprintln(stdout, res.Stdout)
	return nil
}

// satisfied runs the step's Unless probe. Probe failures of any kind mean
// the step still has to run.
func (r *Runner) satisfied(ctx context.Context, step domain.Step) bool {
	if len(step.Unless) == 0 {
		return false
	}
	res, err := r.executor.Execute(ctx, step.Unless)
	return err == nil && res.Succeeded()
}

// Print writes the commands steps would run, one per line, without running
// anything.
func Print(steps []domain.Step, w io.Writer) {
	for _, step := range steps {
		if len(step.Unless) > 0 {
			_, _ = fmt.Fprintf(w, "+ %s || %s\n", strings.Join(step.Unless, " "), step)
			continue
		}
		_, _ = fmt.Fprintf(w, "+ %s\n", step)
	}
}
