package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

// TestColor returns a color with sensible test defaults.
func TestColor(code, name, hex string, related ...string) model.Color {
	return model.Color{
		ID:           code,
		Code:         code,
		Name:         name,
		Hex:          hex,
		Category:     "test",
		RelatedCodes: related,
	}
}

// TestColors returns a small, valid catalog: two reds that point at each
// other and a blue with no relations.
func TestColors() []model.Color {
	brick := TestColor("A100", "Brick", "#B22222", "A101")
	brick.Category = "red"
	rose := TestColor("A101", "Rose", "#FF007F", "A100")
	rose.Category = "red"
	navy := TestColor("B200", "Navy", "#000080")
	navy.Category = "blue"
	return []model.Color{brick, rose, navy}
}

// WriteConfig writes a config file into dir, prefixed with the current
// schema line, and returns its path.
func WriteConfig(t *testing.T, dir, body string) string {
	t.Helper()

	path := filepath.Join(dir, config.ConfigFileName)
	content := `swatch_schema = "` + version.CurrentConfigSchema() + `"` + "\n" + body
	writeFile(t, path, []byte(content))
	return path
}

// WriteCatalog writes colors as a catalog file at path.
func WriteCatalog(t *testing.T, path string, colors []model.Color) {
	t.Helper()

	var buf bytes.Buffer
	file := model.CatalogFile{SwatchSchema: version.CurrentCatalogSchema(), Colors: colors}
	if err := toml.NewEncoder(&buf).Encode(file); err != nil {
		t.Fatalf("failed to encode catalog: %v", err)
	}
	writeFile(t, path, buf.Bytes())
}

// NewTestPaths creates a Paths for a config file inside the given temp directory.
func NewTestPaths(baseDir string) *config.Paths {
	return config.NewPaths(filepath.Join(baseDir, config.ConfigFileName))
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
