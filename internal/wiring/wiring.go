// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vdep/internal/adapters/config"
	_ "go.trai.ch/vdep/internal/adapters/folder"
	_ "go.trai.ch/vdep/internal/adapters/logger"
	_ "go.trai.ch/vdep/internal/adapters/scribe"
	_ "go.trai.ch/vdep/internal/adapters/telemetry"
	_ "go.trai.ch/vdep/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/vdep/internal/app"
	_ "go.trai.ch/vdep/internal/engine/virtualdeps"
)
