// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/todostack/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs argv (binary first) to completion and returns its captured
	// output and exit code.
	//
	// It returns an error if the process could not be started or exited with a
	// non-zero status; the Result is populated in both cases.
	Execute(ctx context.Context, argv []string) (domain.Result, error)
}
