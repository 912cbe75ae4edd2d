package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Build information, injected at build time via:
// -ldflags "-X github.com/amterp/swatch/internal/version.Version=x.y.z"
var (
	Version = "dev"
	Commit  = "unknown"
)

// Current schema versions - bump these when making breaking changes.
//
// CHECKLIST when bumping a version:
//  1. Update the constant below
//  2. Add entry to MinSwatchVersion map (tested by TestMinSwatchVersionCompleteness)
//  3. Teach the stores to read the previous layout or report it clearly
const (
	CurrentConfigVersion  = 1
	CurrentCatalogVersion = 1
)

// Schema type prefixes for TOML files.
const (
	ConfigSchemaPrefix  = "config/"
	CatalogSchemaPrefix = "catalog/"
)

// MinSwatchVersion maps schema identifiers to the minimum swatch version required.
// Used to provide helpful upgrade messages when encountering newer schemas.
var MinSwatchVersion = map[string]string{
	"config/1":  "0.1.0",
	"catalog/1": "0.1.0",
}

// String returns a human-readable build description.
func String() string {
	if Commit != "unknown" && len(Commit) >= 8 {
		return fmt.Sprintf("swatch %s (commit: %s, %s, %s/%s)",
			Version, Commit[:8], runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("swatch %s (%s, %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// FormatConfigSchema creates a config schema string from a version number.
// Example: FormatConfigSchema(1) returns "config/1"
func FormatConfigSchema(v int) string {
	return fmt.Sprintf("%s%d", ConfigSchemaPrefix, v)
}

// FormatCatalogSchema creates a catalog schema string from a version number.
// Example: FormatCatalogSchema(1) returns "catalog/1"
func FormatCatalogSchema(v int) string {
	return fmt.Sprintf("%s%d", CatalogSchemaPrefix, v)
}

// ParseConfigVersion extracts the version number from a config schema string.
// Returns an error if the format is invalid.
func ParseConfigVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, ConfigSchemaPrefix, "config")
}

// ParseCatalogVersion extracts the version number from a catalog schema string.
// Returns an error if the format is invalid.
func ParseCatalogVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, CatalogSchemaPrefix, "catalog")
}

func parseSchemaVersion(schema, prefix, schemaType string) (int, error) {
	if !strings.HasPrefix(schema, prefix) {
		return 0, fmt.Errorf("invalid %s schema format: %q (expected %sN)", schemaType, schema, prefix)
	}
	versionStr := strings.TrimPrefix(schema, prefix)
	v, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s schema version: %q", schemaType, versionStr)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid %s schema version: %d (must be >= 1)", schemaType, v)
	}
	return v, nil
}

// CurrentConfigSchema returns the current config schema string.
func CurrentConfigSchema() string {
	return FormatConfigSchema(CurrentConfigVersion)
}

// CurrentCatalogSchema returns the current catalog schema string.
func CurrentCatalogSchema() string {
	return FormatCatalogSchema(CurrentCatalogVersion)
}
