package cli

import (
	"encoding/json"
	"fmt"

	"github.com/amterp/swatch/internal/catalog"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/render"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/version"
)

// colorJson represents a color with all fields for JSON output.
// Adds the readable text color so scripts can draw labelled swatches.
//
// SYNC WARNING: This struct must stay in sync with model.Color fields.
// If you add fields to model.Color, add them here too. See TestColorJsonFieldSync.
type colorJson struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Hex          string   `json:"hex"`
	Category     string   `json:"category"`
	RelatedCodes []string `json:"related_codes"`
	TextColor    string   `json:"text_color"`
}

func colorToJson(c model.Color) colorJson {
	related := c.RelatedCodes
	if related == nil {
		related = []string{}
	}
	return colorJson{
		ID:           c.ID,
		Code:         c.Code,
		Name:         c.Name,
		Hex:          c.Hex,
		Category:     c.Category,
		RelatedCodes: related,
		TextColor:    render.TextColor(c.Hex),
	}
}

func colorsToJson(colors []model.Color) []colorJson {
	result := make([]colorJson, 0, len(colors))
	for _, c := range colors {
		result = append(result, colorToJson(c))
	}
	return result
}

// SearchOutput wraps a code search for JSON output.
type SearchOutput struct {
	Query  string      `json:"query"`
	Found  bool        `json:"found"`
	Colors []colorJson `json:"colors"`
}

// NewSearchOutput creates a SearchOutput. A miss has an empty colors array.
func NewSearchOutput(query string, result model.SearchResult) SearchOutput {
	return SearchOutput{
		Query:  query,
		Found:  result.Found,
		Colors: colorsToJson(result.Colors),
	}
}

// colorDetailJson is a color with its related colors resolved.
type colorDetailJson struct {
	colorJson
	Related []colorJson `json:"related"`
}

// ColorOutput wraps a single color for JSON output.
type ColorOutput struct {
	Color colorDetailJson `json:"color"`
}

// NewColorOutput creates a ColorOutput from a resolved color.
func NewColorOutput(detail *service.ColorDetail) ColorOutput {
	return ColorOutput{Color: colorDetailJson{
		colorJson: colorToJson(detail.Color),
		Related:   colorsToJson(detail.Related),
	}}
}

// ListOutput wraps a list of colors for JSON output.
type ListOutput struct {
	Colors []colorJson `json:"colors"`
}

// NewListOutput creates a ListOutput from a slice of model.Color.
// Always returns an empty array (not null) when there are no colors.
func NewListOutput(colors []model.Color) ListOutput {
	return ListOutput{Colors: colorsToJson(colors)}
}

// matchJson is one ranked color in match output.
type matchJson struct {
	Color    colorJson `json:"color"`
	Distance float64   `json:"distance"`
}

// MatchOutput wraps nearest-color results for JSON output.
type MatchOutput struct {
	Hex     string      `json:"hex"`
	Matches []matchJson `json:"matches"`
}

// NewMatchOutput creates a MatchOutput. Always returns an empty array (not null).
func NewMatchOutput(hex string, matches []catalog.Match) MatchOutput {
	result := make([]matchJson, 0, len(matches))
	for _, m := range matches {
		result = append(result, matchJson{Color: colorToJson(m.Color), Distance: m.Distance})
	}
	return MatchOutput{Hex: hex, Matches: result}
}

// SessionOutput wraps a painting session snapshot for JSON output.
type SessionOutput struct {
	Session service.Snapshot `json:"session"`
}

// ExportOutput describes a written catalog file.
type ExportOutput struct {
	Path   string `json:"path"`
	Colors int    `json:"colors"`
}

// VersionOutput describes the build and the schemas it reads and writes.
type VersionOutput struct {
	Version       string `json:"version"`
	Commit        string `json:"commit"`
	ConfigSchema  string `json:"config_schema"`
	CatalogSchema string `json:"catalog_schema"`
}

// NewVersionOutput creates a VersionOutput for this build.
func NewVersionOutput() VersionOutput {
	return VersionOutput{
		Version:       version.Version,
		Commit:        version.Commit,
		ConfigSchema:  version.CurrentConfigSchema(),
		CatalogSchema: version.CurrentCatalogSchema(),
	}
}

// printJson marshals the value as indented JSON and prints it to stdout.
func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// warnJsonNotSupported prints a warning to stderr when --json is used on an unsupported command.
func warnJsonNotSupported(command string) {
	PrintWarning("--json is not supported for '%s' (flag ignored)", command)
}
