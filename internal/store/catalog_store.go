package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

// FileCatalogStore reads a catalog from a TOML file of [[colors]] tables.
type FileCatalogStore struct {
	path string
}

// NewCatalogStore creates a catalog store for the file at path.
func NewCatalogStore(path string) *FileCatalogStore {
	return &FileCatalogStore{path: path}
}

// Path returns the catalog file location.
func (s *FileCatalogStore) Path() string {
	return s.path
}

// Load reads every color from the catalog file. IDs are filled from codes.
// The result is not validated; pass it to catalog.New for that.
func (s *FileCatalogStore) Load() ([]model.Color, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file model.CatalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", s.path, err)
	}

	if file.SwatchSchema == "" {
		return nil, version.MissingCatalogSchema(s.path)
	}
	if file.SwatchSchema != version.CurrentCatalogSchema() {
		return nil, version.InvalidCatalogSchema(s.path, file.SwatchSchema)
	}

	for i := range file.Colors {
		file.Colors[i].ID = file.Colors[i].Code
	}
	return file.Colors, nil
}

// Save writes colors to the catalog file, creating parent directories.
func (s *FileCatalogStore) Save(colors []model.Color) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(model.CatalogFile{
		SwatchSchema: version.CurrentCatalogSchema(),
		Colors:       colors,
	})
}
