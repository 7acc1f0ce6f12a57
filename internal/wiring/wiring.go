// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/blastrunner/internal/adapters/cas"
	_ "go.trai.ch/blastrunner/internal/adapters/config"
	_ "go.trai.ch/blastrunner/internal/adapters/fasta"
	_ "go.trai.ch/blastrunner/internal/adapters/fs"
	_ "go.trai.ch/blastrunner/internal/adapters/logger"
	_ "go.trai.ch/blastrunner/internal/adapters/shell"
	_ "go.trai.ch/blastrunner/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/blastrunner/internal/app"
	_ "go.trai.ch/blastrunner/internal/engine/runner"
)
