package catalog

import (
	"sort"
	"strings"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Match is a catalog color ranked by perceptual distance from a target.
type Match struct {
	Color    model.Color `json:"color"`
	Distance float64     `json:"distance"`
}

// NormalizeHex adds a missing leading '#' and upper-cases the digits.
func NormalizeHex(hex string) string {
	hex = strings.TrimSpace(hex)
	if hex != "" && !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	return strings.ToUpper(hex)
}

// Nearest ranks catalog colors by CIE Lab distance from hex, closest first.
// limit <= 0 returns every color.
func (c *Catalog) Nearest(hex string, limit int) ([]Match, error) {
	hex = NormalizeHex(hex)
	if !IsHex(hex) {
		return nil, swerr.InvalidField("hex", "expected a color like #C8E6C9 (got "+hex+")")
	}
	target, err := colorful.Hex(hex)
	if err != nil {
		return nil, swerr.InvalidField("hex", err.Error())
	}

	matches := make([]Match, 0, len(c.colors))
	for _, col := range c.colors {
		ref, err := colorful.Hex(col.Hex)
		if err != nil {
			continue // validated at construction
		}
		matches = append(matches, Match{Color: col.Clone(), Distance: target.DistanceLab(ref)})
	}

	// Stable so ties keep catalog order
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
