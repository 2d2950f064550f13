// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/todostack/internal/adapters/compose"
	_ "go.trai.ch/todostack/internal/adapters/config"
	_ "go.trai.ch/todostack/internal/adapters/logger"
	_ "go.trai.ch/todostack/internal/adapters/shell"
	_ "go.trai.ch/todostack/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/todostack/internal/app"
	_ "go.trai.ch/todostack/internal/engine/runner"
)
