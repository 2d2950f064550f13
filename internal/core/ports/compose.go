package ports

import (
	"context"

	"go.trai.ch/todostack/internal/core/domain"
)

// ComposeEmitter writes the compose file for the given settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=compose.go -destination=mocks/mock_compose.go -package=mocks
type ComposeEmitter interface {
	// Emit encodes the compose document and overwrites the target file.
	Emit(ctx context.Context, settings domain.Settings) (domain.EmitResult, error)
}

// ComposeValidator checks a compose document against the Compose Specification schema.
type ComposeValidator interface {
	// Validate returns an error wrapping domain.ErrComposeInvalid when content
	// is not a loadable compose project.
	Validate(ctx context.Context, project string, content []byte) error
}
