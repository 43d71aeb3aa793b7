// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/microbench/internal/adapters/config"
	_ "go.trai.ch/microbench/internal/adapters/fs"
	_ "go.trai.ch/microbench/internal/adapters/host"
	_ "go.trai.ch/microbench/internal/adapters/logger"
	_ "go.trai.ch/microbench/internal/adapters/shell"
	_ "go.trai.ch/microbench/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/microbench/internal/app"
)
