package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/todostack/internal/adapters/compose"            //nolint:depguard // Wired in app layer
	"go.trai.ch/todostack/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/todostack/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/todostack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/todostack/internal/core/ports"
	"go.trai.ch/todostack/internal/engine/runner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI layer
// needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			compose.EmitterNodeID,
			compose.ValidatorNodeID,
			runner.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.ComposeEmitter](ctx)
	if err != nil {
		return nil, err
	}

	validator, err := graft.Dep[ports.ComposeValidator](ctx)
	if err != nil {
		return nil, err
	}

	r, err := graft.Dep[*runner.Runner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, emitter, validator, r, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
