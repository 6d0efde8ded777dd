package ports

import "go.hollert.ch/sokforge/internal/core/domain"

// ConfigLoader defines the interface for loading the build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the build
	// options. An empty path selects the default file in the working
	// directory. A missing file yields the defaults.
	Load(path string) (*domain.BuildOptions, error)
}
