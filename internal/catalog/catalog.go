// Package catalog holds the read-only set of paint colors and the lookups
// built on it. A Catalog is built once, validated, and never mutated.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/util"
)

// hexRegex matches sRGB colors in #RRGGBB form.
var hexRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Catalog is an immutable, ordered set of colors indexed by code.
// Safe for concurrent use.
type Catalog struct {
	colors     []model.Color
	byCode     map[string]int
	categories []string
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(builtinColors())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// New builds a catalog and rejects it if any record is malformed or any
// related code points at a color that doesn't exist.
func New(colors []model.Color) (*Catalog, error) {
	c, err := build(colors)
	if err != nil {
		return nil, err
	}
	if dangling := c.Dangling(); len(dangling) > 0 {
		errs := make([]error, len(dangling))
		for i, d := range dangling {
			errs[i] = swerr.DanglingRelated(d.Code, d.Related)
		}
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// NewLenient builds a catalog that tolerates related codes with no matching
// color; RelatedOf skips them. Every other check from New still applies.
func NewLenient(colors []model.Color) (*Catalog, error) {
	return build(colors)
}

func build(colors []model.Color) (*Catalog, error) {
	c := &Catalog{
		colors: make([]model.Color, 0, len(colors)),
		byCode: make(map[string]int, len(colors)),
	}
	seenCategory := make(map[string]bool)

	var errs []error
	for i, col := range colors {
		col = col.Clone()
		if col.ID == "" {
			col.ID = col.Code
		}

		if err := validateColor(i, col); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, exists := c.byCode[col.Code]; exists {
			errs = append(errs, swerr.DuplicateColor(col.Code))
			continue
		}

		c.byCode[col.Code] = len(c.colors)
		c.colors = append(c.colors, col)

		if !seenCategory[col.Category] {
			seenCategory[col.Category] = true
			c.categories = append(c.categories, col.Category)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

func validateColor(index int, col model.Color) error {
	if col.Code == "" {
		return swerr.InvalidField("code", fmt.Sprintf("color #%d has an empty code", index+1))
	}
	if col.ID != col.Code {
		return swerr.InvalidField("id", fmt.Sprintf("color %s has id %q; id must equal code", col.Code, col.ID))
	}
	if col.Name == "" {
		return swerr.InvalidField("name", fmt.Sprintf("color %s has an empty name", col.Code))
	}
	if !hexRegex.MatchString(col.Hex) {
		return swerr.InvalidField("hex", fmt.Sprintf("color %s has hex %q; expected #RRGGBB", col.Code, col.Hex))
	}
	return nil
}

// DanglingRef is a related code that doesn't resolve.
type DanglingRef struct {
	Code    string `json:"code"`
	Related string `json:"related"`
}

// Dangling lists every related code that has no matching color, in catalog order.
func (c *Catalog) Dangling() []DanglingRef {
	var refs []DanglingRef
	for _, col := range c.colors {
		for _, rel := range col.RelatedCodes {
			if _, ok := c.byCode[rel]; !ok {
				refs = append(refs, DanglingRef{Code: col.Code, Related: rel})
			}
		}
	}
	return refs
}

// Len returns the number of colors.
func (c *Catalog) Len() int {
	return len(c.colors)
}

// All returns every color in catalog order.
func (c *Catalog) All() []model.Color {
	return cloneAll(c.colors)
}

// FindByCode returns the color whose code is exactly code.
// Matching is case-sensitive with no trimming.
func (c *Catalog) FindByCode(code string) (model.Color, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return model.Color{}, false
	}
	return c.colors[i].Clone(), true
}

// RelatedOf resolves record's related codes in order, skipping any that
// don't resolve. Never nil.
func (c *Catalog) RelatedOf(record model.Color) []model.Color {
	related := make([]model.Color, 0, len(record.RelatedCodes))
	for _, code := range record.RelatedCodes {
		if col, ok := c.FindByCode(code); ok {
			related = append(related, col)
		}
	}
	return related
}

// Search returns the match for code followed by its related colors.
// A miss is an empty, not-found result rather than an error.
func (c *Catalog) Search(code string) model.SearchResult {
	match, ok := c.FindByCode(code)
	if !ok {
		return model.EmptySearchResult()
	}
	colors := append([]model.Color{match}, c.RelatedOf(match)...)
	return model.SearchResult{Colors: colors, Found: true}
}

// Categories returns category names in the order they first appear.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// ByCategory returns the colors in category, in catalog order.
func (c *Catalog) ByCategory(category string) []model.Color {
	var result []model.Color
	for _, col := range c.colors {
		if col.Category == category {
			result = append(result, col.Clone())
		}
	}
	return result
}

// FilterByName returns colors whose name contains a word starting with each
// word of query. Case and accents are ignored.
func (c *Catalog) FilterByName(query string) []model.Color {
	var result []model.Color
	for _, col := range c.colors {
		if util.MatchesWordPrefixes(col.Name, query) {
			result = append(result, col.Clone())
		}
	}
	return result
}

// IsHex reports whether s is a #RRGGBB color.
func IsHex(s string) bool {
	return hexRegex.MatchString(s)
}

func cloneAll(colors []model.Color) []model.Color {
	result := make([]model.Color, len(colors))
	for i, col := range colors {
		result[i] = col.Clone()
	}
	return result
}
