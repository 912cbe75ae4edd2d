package version

import (
	"fmt"
)

// SchemaVersionError indicates a schema version problem while reading a file.
type SchemaVersionError struct {
	FileType    string // "config", "catalog"
	FilePath    string // Path to the problematic file
	Found       string // What was found (e.g., "missing", "config/2")
	Expected    string // What was expected (e.g., "config/1")
	MinRequired string // Minimum swatch version required (if upgrade needed)
}

func (e *SchemaVersionError) Error() string {
	if e.MinRequired != "" {
		return fmt.Sprintf(
			"%s schema version %s requires swatch >= %s (file: %s, supports up to: %s)",
			e.FileType, e.Found, e.MinRequired, e.FilePath, e.Expected,
		)
	}
	if e.Found == "missing" {
		return fmt.Sprintf(
			"%s has no schema version (file: %s). Add swatch_schema = %q.",
			e.FileType, e.FilePath, e.Expected,
		)
	}
	return fmt.Sprintf(
		"%s has invalid schema version: found %s, expected %s (file: %s)",
		e.FileType, e.Found, e.Expected, e.FilePath,
	)
}

// MissingConfigSchema creates an error for a config file missing swatch_schema.
func MissingConfigSchema(path string) error {
	return &SchemaVersionError{
		FileType: "config",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentConfigSchema(),
	}
}

// InvalidConfigSchema creates an error for a config file with an unsupported schema.
func InvalidConfigSchema(path, found string) error {
	return newerAware(&SchemaVersionError{
		FileType: "config",
		FilePath: path,
		Found:    found,
		Expected: CurrentConfigSchema(),
	}, ParseConfigVersion, CurrentConfigVersion)
}

// MissingCatalogSchema creates an error for a catalog file missing swatch_schema.
func MissingCatalogSchema(path string) error {
	return &SchemaVersionError{
		FileType: "catalog",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentCatalogSchema(),
	}
}

// InvalidCatalogSchema creates an error for a catalog file with an unsupported schema.
func InvalidCatalogSchema(path, found string) error {
	return newerAware(&SchemaVersionError{
		FileType: "catalog",
		FilePath: path,
		Found:    found,
		Expected: CurrentCatalogSchema(),
	}, ParseCatalogVersion, CurrentCatalogVersion)
}

// newerAware fills MinRequired when the file was written by a newer swatch.
func newerAware(e *SchemaVersionError, parse func(string) (int, error), current int) error {
	if v, err := parse(e.Found); err == nil && v > current {
		if minSwatch, ok := MinSwatchVersion[e.Found]; ok {
			e.MinRequired = minSwatch
		} else {
			e.MinRequired = "a newer version"
		}
	}
	return e
}
