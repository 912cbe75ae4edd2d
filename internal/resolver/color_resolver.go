package resolver

import (
	"fmt"

	"github.com/amterp/swatch/internal/catalog"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/prompt"
)

// ColorResolver turns a code argument into a catalog color.
type ColorResolver struct {
	catalog  *catalog.Catalog
	prompter prompt.Prompter
}

// NewColorResolver creates a new color resolver.
func NewColorResolver(c *catalog.Catalog, prompter prompt.Prompter) *ColorResolver {
	return &ColorResolver{
		catalog:  c,
		prompter: prompter,
	}
}

// Resolve determines which color to use:
// 1. If a code is given, it must exist
// 2. If interactive, prompt from the whole catalog
// 3. Otherwise, fail with error
func (r *ColorResolver) Resolve(code string, interactive bool) (model.Color, error) {
	if code != "" {
		c, ok := r.catalog.FindByCode(code)
		if !ok {
			return model.Color{}, swerr.ColorNotFound(code)
		}
		return c, nil
	}

	if !interactive {
		return model.Color{}, fmt.Errorf("color code required (try one of %v)", catalog.SuggestedCodes)
	}

	picked, err := r.prompter.Select("Select color", ColorOptions(r.catalog.All()))
	if err != nil {
		return model.Color{}, err
	}
	c, ok := r.catalog.FindByCode(picked)
	if !ok {
		return model.Color{}, swerr.ColorNotFound(picked)
	}
	return c, nil
}

// ColorOptions labels each color with its code and name for a Select prompt.
func ColorOptions(colors []model.Color) []prompt.Option {
	opts := make([]prompt.Option, len(colors))
	for i, c := range colors {
		opts[i] = prompt.Option{
			Label: fmt.Sprintf("%s  %s", c.Code, c.Name),
			Value: c.Code,
		}
	}
	return opts
}
