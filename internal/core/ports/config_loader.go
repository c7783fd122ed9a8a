package ports

import "go.trai.ch/vdep/internal/core/domain"

// ConfigLoader defines the interface for loading a project description.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project description at the given path.
	Load(path string) (*domain.ProjectConfig, error)
}
