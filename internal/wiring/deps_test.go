package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/todostack/internal/adapters/compose"
	"go.trai.ch/todostack/internal/adapters/config"
	"go.trai.ch/todostack/internal/adapters/logger"
	"go.trai.ch/todostack/internal/adapters/shell"
	"go.trai.ch/todostack/internal/adapters/telemetry/progrock"
	"go.trai.ch/todostack/internal/app"
	"go.trai.ch/todostack/internal/engine/runner"
	_ "go.trai.ch/todostack/internal/wiring"
)

// TestGraftGraphResolves runs every registered node once, which fails on
// missing or cyclic dependencies.
func TestGraftGraphResolves(t *testing.T) {
	results, err := graft.Execute(context.Background(), graft.DisableCache())
	require.NoError(t, err)

	for _, id := range []graft.ID{
		logger.NodeID,
		config.NodeID,
		shell.NodeID,
		progrock.NodeID,
		compose.EmitterNodeID,
		compose.ValidatorNodeID,
		runner.NodeID,
		app.AppNodeID,
		app.ComponentsNodeID,
	} {
		assert.Contains(t, results, id)
	}
}
