package ports

import "github.com/hayuki/ionic-app-scripts/internal/core/domain"

// ConfigLoader loads the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers and parses the configuration, starting at cwd and
	// walking upward.
	Load(cwd string) (*domain.Project, error)
}
