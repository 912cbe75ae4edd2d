package model

import "slices"

// Color is a single paint in the catalog.
// ID always equals Code; both are kept because the web UI keys cards by ID.
type Color struct {
	ID           string   `json:"id" toml:"-"`
	Name         string   `json:"name" toml:"name"`
	Code         string   `json:"code" toml:"code"`
	Hex          string   `json:"hex" toml:"hex"`
	Category     string   `json:"category" toml:"category"`
	RelatedCodes []string `json:"related_codes,omitempty" toml:"related,omitempty"`
}

// Clone returns a copy that shares no backing storage with c.
func (c Color) Clone() Color {
	c.RelatedCodes = slices.Clone(c.RelatedCodes)
	return c
}

// SearchResult is the outcome of a code search: the match followed by its
// related colors, or nothing.
type SearchResult struct {
	Colors []Color `json:"colors"`
	Found  bool    `json:"found"`
}

// EmptySearchResult returns a not-found result with a non-nil, empty color list.
func EmptySearchResult() SearchResult {
	return SearchResult{Colors: []Color{}}
}

// Match returns the color that was searched for, if any.
func (r SearchResult) Match() (Color, bool) {
	if !r.Found || len(r.Colors) == 0 {
		return Color{}, false
	}
	return r.Colors[0], true
}

// CatalogFile is the on-disk layout of a user-supplied catalog.
// Schema changes require a version bump. See internal/version/version.go.
type CatalogFile struct {
	SwatchSchema string  `toml:"swatch_schema"`
	Colors       []Color `toml:"colors"`
}
