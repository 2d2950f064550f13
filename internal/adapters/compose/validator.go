package compose

import (
	"context"
	"errors"

	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
	"go.trai.ch/todostack/internal/core/domain"
	"go.trai.ch/todostack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ComposeValidator = (*Validator)(nil)

// Validator implements ports.ComposeValidator with compose-go, which checks
// documents against the Compose Specification JSON schema and verifies that
// every referenced network and volume is declared.
type Validator struct {
	workingDir string
}

// NewValidator creates a Validator resolving relative paths against workingDir.
func NewValidator(workingDir string) *Validator {
	return &Validator{workingDir: workingDir}
}

// Validate loads content as the named compose project entirely in memory.
func (v *Validator) Validate(ctx context.Context, project string, content []byte) error {
	if len(content) == 0 {
		return zerr.Wrap(domain.ErrComposeInvalid, "compose file is empty")
	}

	_, err := loader.LoadWithContext(ctx, types.ConfigDetails{
		WorkingDir: v.workingDir,
		ConfigFiles: []types.ConfigFile{{
			Filename: "docker-compose.yml",
			Content:  content,
		}},
		Environment: types.Mapping{},
	}, func(opts *loader.Options) {
		opts.SetProjectName(loader.NormalizeProjectName(project), true)
		opts.SkipNormalization = true
		opts.SkipExtends = true
		opts.SkipInclude = true
		opts.SkipResolveEnvironment = true
	})
	if err != nil {
		return zerr.With(errors.Join(domain.ErrComposeInvalid, err), "project", project)
	}
	return nil
}
