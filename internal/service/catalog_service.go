package service

import (
	"slices"

	"github.com/amterp/swatch/internal/catalog"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
)

// CatalogService answers read-only questions about the catalog.
type CatalogService struct {
	catalog *catalog.Catalog
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: c}
}

// Catalog returns the underlying catalog.
func (s *CatalogService) Catalog() *catalog.Catalog {
	return s.catalog
}

// Search looks up code and its related colors. A miss is not an error.
func (s *CatalogService) Search(code string) model.SearchResult {
	return s.catalog.Search(code)
}

// ColorDetail is a single color with its related colors resolved.
type ColorDetail struct {
	model.Color
	Related []model.Color `json:"related"`
}

// Show returns the color with the given code, or a NotFoundError.
func (s *CatalogService) Show(code string) (*ColorDetail, error) {
	c, ok := s.catalog.FindByCode(code)
	if !ok {
		return nil, swerr.ColorNotFound(code)
	}
	return &ColorDetail{Color: c, Related: s.catalog.RelatedOf(c)}, nil
}

// ListInput filters List. Empty fields match everything.
type ListInput struct {
	Category string
	Name     string
}

// List returns catalog colors in catalog order, narrowed by category and name.
// An unknown category is a NotFoundError so typos don't look like empty results.
func (s *CatalogService) List(input ListInput) ([]model.Color, error) {
	var colors []model.Color
	if input.Category != "" {
		if !slices.Contains(s.catalog.Categories(), input.Category) {
			return nil, swerr.CategoryNotFound(input.Category)
		}
		colors = s.catalog.ByCategory(input.Category)
	} else {
		colors = s.catalog.All()
	}

	if input.Name != "" {
		byName := s.catalog.FilterByName(input.Name)
		keep := make(map[string]bool, len(byName))
		for _, c := range byName {
			keep[c.Code] = true
		}
		colors = slices.DeleteFunc(colors, func(c model.Color) bool {
			return !keep[c.Code]
		})
	}

	if colors == nil {
		colors = []model.Color{}
	}
	return colors, nil
}

// Categories returns every category in first-seen order.
func (s *CatalogService) Categories() []string {
	return s.catalog.Categories()
}

// Match ranks catalog colors by perceptual distance from hex.
func (s *CatalogService) Match(hex string, limit int) ([]catalog.Match, error) {
	if limit < 0 {
		return nil, swerr.InvalidField("limit", "must not be negative")
	}
	return s.catalog.Nearest(hex, limit)
}
