// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.hollert.ch/sokforge/internal/adapters/cas"
	_ "go.hollert.ch/sokforge/internal/adapters/config"
	_ "go.hollert.ch/sokforge/internal/adapters/detector"
	_ "go.hollert.ch/sokforge/internal/adapters/fs"
	_ "go.hollert.ch/sokforge/internal/adapters/logger"
	_ "go.hollert.ch/sokforge/internal/adapters/shell"
	_ "go.hollert.ch/sokforge/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.hollert.ch/sokforge/internal/app"
	_ "go.hollert.ch/sokforge/internal/engine/scheduler"
)
