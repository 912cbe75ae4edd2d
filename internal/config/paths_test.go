package config

import (
	"path/filepath"
	"testing"
)

func TestGlobalConfigPath_EnvOverride(t *testing.T) {
	t.Setenv(ConfigEnvVar, "/tmp/custom/swatch.toml")

	if got := GlobalConfigPath(); got != "/tmp/custom/swatch.toml" {
		t.Errorf("GlobalConfigPath() = %q", got)
	}
	if got := DefaultPaths().ConfigDir(); got != "/tmp/custom" {
		t.Errorf("ConfigDir() = %q", got)
	}
}

func TestGlobalConfigPath_Home(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	t.Setenv("HOME", "/home/tester")

	want := filepath.Join("/home/tester", ".config", "swatch", "config.toml")
	if got := GlobalConfigPath(); got != want {
		t.Errorf("GlobalConfigPath() = %q, want %q", got, want)
	}
}

func TestPaths_CatalogPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	p := NewPaths("/etc/swatch/config.toml")

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"catalog.toml", "/etc/swatch/catalog.toml"},
		{"paints/brand.toml", "/etc/swatch/paints/brand.toml"},
		{"/opt/catalog.toml", "/opt/catalog.toml"},
		{"~/paints.toml", "/home/tester/paints.toml"},
	}
	for _, tt := range tests {
		if got := p.CatalogPath(tt.input); got != tt.want {
			t.Errorf("CatalogPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPaths_EmptyConfigPath(t *testing.T) {
	p := NewPaths("")
	if p.ConfigDir() != "" {
		t.Errorf("ConfigDir() = %q, want empty", p.ConfigDir())
	}
	if got := p.CatalogPath("catalog.toml"); got != "catalog.toml" {
		t.Errorf("CatalogPath() = %q", got)
	}
}
