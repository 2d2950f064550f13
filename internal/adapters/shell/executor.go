// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"

	"go.trai.ch/todostack/internal/core/domain"
	"go.trai.ch/todostack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec. Commands are started
// directly from their argument vector; no shell is involved.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor. Commands run in the working directory.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs argv to completion, capturing stdout and stderr. When ctx
// carries a ports.Vertex the streams are also copied to it as they arrive.
func (e *Executor) Execute(ctx context.Context, argv []string) (domain.Result, error) {
	if len(argv) == 0 {
		return domain.Result{}, domain.ErrEmptyCommand
	}

	//nolint:gosec // argv comes from the deploy plan
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = io.MultiWriter(&stdout, v.Stdout())
		cmd.Stderr = io.MultiWriter(&stderr, v.Stderr())
	}

	err := cmd.Run()
	res := domain.Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
	} else {
		// Not started, or killed by a signal.
		res.ExitCode = -1
		if res.Stderr == "" {
			res.Stderr = err.Error()
		}
		e.logger.Warn("could not run " + argv[0] + ": " + err.Error())
	}

	return res, zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "exit_code", res.ExitCode), "command", argv[0])
}
