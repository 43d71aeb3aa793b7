package ports

import "go.trai.ch/microbench/internal/core/domain"

// ConfigLoader defines the interface for loading the repository layout.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration found in the repository root and returns the resolved layout.
	// A missing configuration file is not an error.
	Load(root string) (domain.Layout, error)
}
