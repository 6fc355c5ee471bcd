// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/jarpack/internal/core/domain"

// ConfigLoader defines the interface for loading packaging configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at the given path. A missing file is
	// not an error; it yields a zero config so defaults apply.
	Load(path string) (domain.PackageConfig, error)
}
