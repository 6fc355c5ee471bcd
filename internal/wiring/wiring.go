// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jarpack/internal/adapters/buildinfo"
	_ "go.trai.ch/jarpack/internal/adapters/config"
	_ "go.trai.ch/jarpack/internal/adapters/fs"
	_ "go.trai.ch/jarpack/internal/adapters/gems"
	_ "go.trai.ch/jarpack/internal/adapters/jar"
	_ "go.trai.ch/jarpack/internal/adapters/logger"
	_ "go.trai.ch/jarpack/internal/adapters/normalize"
	_ "go.trai.ch/jarpack/internal/adapters/runtime"
	_ "go.trai.ch/jarpack/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/jarpack/internal/app"
	_ "go.trai.ch/jarpack/internal/engine/assembler"
	_ "go.trai.ch/jarpack/internal/engine/selector"
)
