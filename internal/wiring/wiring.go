// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/seer/internal/adapters/config"
	_ "go.trai.ch/seer/internal/adapters/fs"
	_ "go.trai.ch/seer/internal/adapters/logger"
	_ "go.trai.ch/seer/internal/adapters/project"
	// Register app nodes.
	_ "go.trai.ch/seer/internal/app"
)
