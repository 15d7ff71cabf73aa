// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/macsdk/internal/adapters/clt"
	_ "go.trai.ch/macsdk/internal/adapters/config"
	_ "go.trai.ch/macsdk/internal/adapters/fs"
	_ "go.trai.ch/macsdk/internal/adapters/host"
	_ "go.trai.ch/macsdk/internal/adapters/logger"
	_ "go.trai.ch/macsdk/internal/adapters/system"
	_ "go.trai.ch/macsdk/internal/adapters/telemetry"
	_ "go.trai.ch/macsdk/internal/adapters/tooling"
	_ "go.trai.ch/macsdk/internal/adapters/xcode"
	// Register app and engine nodes.
	_ "go.trai.ch/macsdk/internal/app"
	_ "go.trai.ch/macsdk/internal/engine/resolver"
)
