package store

import "github.com/amterp/swatch/internal/model"

// ConfigStore handles user config persistence.
type ConfigStore interface {
	Load() (*model.Config, error)
	Save(config *model.Config) error
	EnsureExists() error
	Path() string
}

// CatalogStore reads and writes catalog files.
type CatalogStore interface {
	Load() ([]model.Color, error)
	Save(colors []model.Color) error
	Path() string
}
