package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	ConfigFileName  = "config.toml"
	GlobalConfigDir = ".config/swatch"
	ConfigEnvVar    = "SWATCH_CONFIG"
)

// Paths resolves the config file and anything it references.
type Paths struct {
	configPath string
}

// NewPaths creates a Paths rooted at an explicit config file path.
func NewPaths(configPath string) *Paths {
	return &Paths{configPath: configPath}
}

// DefaultPaths honors $SWATCH_CONFIG, falling back to ~/.config/swatch/config.toml.
func DefaultPaths() *Paths {
	return NewPaths(GlobalConfigPath())
}

// ConfigPath returns the config file path. Empty if no home directory could be found.
func (p *Paths) ConfigPath() string {
	return p.configPath
}

// ConfigDir returns the directory holding the config file.
func (p *Paths) ConfigDir() string {
	if p.configPath == "" {
		return ""
	}
	return filepath.Dir(p.configPath)
}

// CatalogPath resolves a catalog path from the config.
// "~/" expands to the home directory; relative paths are taken from the config dir.
func (p *Paths) CatalogPath(catalog string) string {
	if catalog == "" {
		return ""
	}
	if strings.HasPrefix(catalog, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, catalog[2:])
		}
	}
	if filepath.IsAbs(catalog) || p.ConfigDir() == "" {
		return catalog
	}
	return filepath.Join(p.ConfigDir(), catalog)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	if env := os.Getenv(ConfigEnvVar); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, ConfigFileName)
}
