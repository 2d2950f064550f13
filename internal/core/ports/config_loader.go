package ports

import "go.trai.ch/todostack/internal/core/domain"

// ConfigLoader defines the interface for loading deployment settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves settings from defaults, the optional config file at path,
	// and the environment. A missing file is not an error.
	Load(path string) (domain.Settings, error)
}
