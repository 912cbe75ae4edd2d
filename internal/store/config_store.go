package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

// FileConfigStore implements ConfigStore using the filesystem.
type FileConfigStore struct {
	paths *config.Paths
}

// NewConfigStore creates a new config store.
func NewConfigStore(paths *config.Paths) *FileConfigStore {
	return &FileConfigStore{paths: paths}
}

// Path returns the config file location.
func (s *FileConfigStore) Path() string {
	return s.paths.ConfigPath()
}

// Load reads the config from disk.
// Returns an empty config if the file doesn't exist.
func (s *FileConfigStore) Load() (*model.Config, error) {
	path := s.paths.ConfigPath()
	if path == "" {
		return &model.Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg model.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	// Strict version validation (only if file exists)
	if cfg.SwatchSchema == "" {
		return nil, version.MissingConfigSchema(path)
	}
	if cfg.SwatchSchema != version.CurrentConfigSchema() {
		return nil, version.InvalidConfigSchema(path, cfg.SwatchSchema)
	}

	return &cfg, nil
}

// Save writes the config to disk.
func (s *FileConfigStore) Save(cfg *model.Config) error {
	// Stamp current schema version
	cfg.SwatchSchema = version.CurrentConfigSchema()

	path := s.paths.ConfigPath()
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// EnsureExists creates the config file with defaults if it doesn't exist.
func (s *FileConfigStore) EnsureExists() error {
	path := s.paths.ConfigPath()
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s.Save(&model.Config{Room: model.DefaultWallAssignment()})
	}
	return nil
}
