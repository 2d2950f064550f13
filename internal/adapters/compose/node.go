package compose

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/todostack/internal/adapters/logger"
	"go.trai.ch/todostack/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// EmitterNodeID is the unique identifier for the compose emitter Graft node.
	EmitterNodeID graft.ID = "adapter.compose_emitter"
	// ValidatorNodeID is the unique identifier for the compose validator Graft node.
	ValidatorNodeID graft.ID = "adapter.compose_validator"
)

func init() {
	graft.Register(graft.Node[ports.ComposeEmitter]{
		ID:        EmitterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ComposeEmitter, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEmitter(log), nil
		},
	})

	graft.Register(graft.Node[ports.ComposeValidator]{
		ID:        ValidatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ComposeValidator, error) {
			wd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to get working directory")
			}
			return NewValidator(wd), nil
		},
	})
}
