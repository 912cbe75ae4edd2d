package model

import "time"

// Defaults for settings that may be omitted from the config file.
const (
	DefaultServePort = 3000
	DefaultNearest   = 5
)

// Config represents the user's swatch configuration.
// Stored at ~/.config/swatch/config.toml
// Schema changes require a version bump. See internal/version/version.go.
type Config struct {
	SwatchSchema      string         `toml:"swatch_schema"`
	Catalog           string         `toml:"catalog,omitempty"` // Path to a TOML catalog file, relative to the config dir
	SearchDelayMillis int            `toml:"search_delay_ms,omitempty"`
	Editor            string         `toml:"editor,omitempty"` // Overrides $EDITOR for "swatch config"
	Room              WallAssignment `toml:"room,omitempty"`
	Serve             ServeConfig    `toml:"serve,omitempty"`
}

// ServeConfig holds settings for the web interface.
type ServeConfig struct {
	Port        int   `toml:"port,omitempty"`
	OpenBrowser *bool `toml:"open_browser,omitempty"`
}

// DefaultRoom returns the configured starting room, with any slot the
// config leaves blank taken from the built-in defaults.
func (c *Config) DefaultRoom() WallAssignment {
	if c == nil {
		return DefaultWallAssignment()
	}
	return c.Room.WithFallback(DefaultWallAssignment())
}

// SearchDelay returns the cosmetic pause applied before session searches resolve.
func (c *Config) SearchDelay() time.Duration {
	if c == nil || c.SearchDelayMillis <= 0 {
		return 0
	}
	return time.Duration(c.SearchDelayMillis) * time.Millisecond
}

// ServePort returns the configured port, or the default.
func (c *Config) ServePort() int {
	if c == nil || c.Serve.Port <= 0 {
		return DefaultServePort
	}
	return c.Serve.Port
}

// ShouldOpenBrowser reports whether serve opens a browser on start. Defaults to true.
func (c *Config) ShouldOpenBrowser() bool {
	if c == nil || c.Serve.OpenBrowser == nil {
		return true
	}
	return *c.Serve.OpenBrowser
}
