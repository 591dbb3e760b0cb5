// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/hayuki/ionic-app-scripts/internal/adapters/config"
	_ "github.com/hayuki/ionic-app-scripts/internal/adapters/shell"
	// Register app and event nodes.
	_ "github.com/hayuki/ionic-app-scripts/internal/app"
	_ "github.com/hayuki/ionic-app-scripts/internal/events"
)
