package model

import (
	"fmt"
	"strings"

	swerr "github.com/amterp/swatch/internal/errors"
)

// WallSlot names one paintable region of the room illustration.
type WallSlot string

const (
	WallCeiling WallSlot = "ceiling"
	WallFront   WallSlot = "frontWall"
	WallSide    WallSlot = "sideWall"
)

// WallSlots lists every slot in display order.
var WallSlots = []WallSlot{WallCeiling, WallFront, WallSide}

// Default wall colors for a fresh room.
const (
	DefaultCeilingColor   = "#FFFFFF"
	DefaultFrontWallColor = "#F8F9FA"
	DefaultSideWallColor  = "#FEF3C7"
)

// Valid reports whether s is one of the three known slots.
func (s WallSlot) Valid() bool {
	switch s {
	case WallCeiling, WallFront, WallSide:
		return true
	}
	return false
}

// DisplayName returns the human-readable slot name.
func (s WallSlot) DisplayName() string {
	switch s {
	case WallCeiling:
		return "Ceiling"
	case WallFront:
		return "Front Wall"
	case WallSide:
		return "Side Wall"
	}
	return string(s)
}

// ParseWallSlot converts user input into a WallSlot.
// Accepts the canonical names plus case-insensitive kebab and short forms
// ("front-wall", "front", "side").
func ParseWallSlot(s string) (WallSlot, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)

	switch normalized {
	case "ceiling":
		return WallCeiling, nil
	case "frontwall", "front":
		return WallFront, nil
	case "sidewall", "side":
		return WallSide, nil
	}
	return "", swerr.InvalidField("wall", fmt.Sprintf("must be one of ceiling, frontWall, sideWall (got %q)", s))
}

// WallAssignment maps each wall slot to a hex color.
// Values are never validated; whatever is applied is displayed as-is.
type WallAssignment struct {
	Ceiling   string `json:"ceiling" toml:"ceiling,omitempty"`
	FrontWall string `json:"frontWall" toml:"front_wall,omitempty"`
	SideWall  string `json:"sideWall" toml:"side_wall,omitempty"`
}

// DefaultWallAssignment returns the built-in starting colors.
func DefaultWallAssignment() WallAssignment {
	return WallAssignment{
		Ceiling:   DefaultCeilingColor,
		FrontWall: DefaultFrontWallColor,
		SideWall:  DefaultSideWallColor,
	}
}

// Apply returns a copy of w with exactly one slot overwritten.
// An unknown slot leaves w unchanged.
func (w WallAssignment) Apply(slot WallSlot, hex string) WallAssignment {
	switch slot {
	case WallCeiling:
		w.Ceiling = hex
	case WallFront:
		w.FrontWall = hex
	case WallSide:
		w.SideWall = hex
	}
	return w
}

// Get returns the color currently assigned to slot.
func (w WallAssignment) Get(slot WallSlot) string {
	switch slot {
	case WallCeiling:
		return w.Ceiling
	case WallFront:
		return w.FrontWall
	case WallSide:
		return w.SideWall
	}
	return ""
}

// WithFallback fills any empty slot from fallback.
func (w WallAssignment) WithFallback(fallback WallAssignment) WallAssignment {
	for _, slot := range WallSlots {
		if w.Get(slot) == "" {
			w = w.Apply(slot, fallback.Get(slot))
		}
	}
	return w
}
