// Package compose writes and validates the docker-compose.yml artifact.
package compose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/todostack/internal/core/domain"
	"go.trai.ch/todostack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ComposeEmitter = (*Emitter)(nil)

// Emitter implements ports.ComposeEmitter by writing block-style YAML to disk.
type Emitter struct {
	logger ports.Logger
}

// NewEmitter creates a new Emitter.
func NewEmitter(logger ports.Logger) *Emitter {
	return &Emitter{logger: logger}
}

// Encode renders the compose document as block-style YAML with two-space
// indentation. Map keys are sorted by the encoder, so output is stable.
func Encode(cf domain.ComposeFile) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cf); err != nil {
		return nil, zerr.Wrap(err, "failed to encode compose file")
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to encode compose file")
	}
	return buf.Bytes(), nil
}

// Digest returns the hex xxhash64 of content.
func Digest(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// Emit overwrites settings.Compose.Path with the encoded compose document.
func (e *Emitter) Emit(ctx context.Context, settings domain.Settings) (domain.EmitResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.EmitResult{}, err
	}

	content, err := Encode(domain.NewComposeFile(settings))
	if err != nil {
		return domain.EmitResult{}, err
	}

	path := settings.Compose.Path
	res := domain.EmitResult{
		Path:    path,
		Content: content,
		Digest:  Digest(content),
		Changed: true,
	}

	//nolint:gosec // path comes from settings
	previous, err := os.ReadFile(path)
	switch {
	case err == nil:
		res.Changed = Digest(previous) != res.Digest
	case !errors.Is(err, fs.ErrNotExist):
		e.logger.Warn("could not read existing " + path + ": " + err.Error())
	}

	//nolint:gosec // compose files are meant to be world-readable
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return domain.EmitResult{}, zerr.With(zerr.Wrap(err, "failed to write compose file"), "path", path)
	}

	if res.Changed {
		e.logger.Info("wrote " + path + " digest=" + res.Digest)
	} else {
		e.logger.Info("rewrote " + path + " unchanged digest=" + res.Digest)
	}
	return res, nil
}
