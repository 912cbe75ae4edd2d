package model

import (
	"testing"

	swerr "github.com/amterp/swatch/internal/errors"
)

func TestWallAssignment_ApplyLeavesOtherSlotsUnchanged(t *testing.T) {
	base := WallAssignment{Ceiling: "#111111", FrontWall: "#222222", SideWall: "#333333"}

	for _, slot := range WallSlots {
		got := base.Apply(slot, "#ABCDEF")

		if got.Get(slot) != "#ABCDEF" {
			t.Errorf("Apply(%s): slot = %q, want %q", slot, got.Get(slot), "#ABCDEF")
		}
		for _, other := range WallSlots {
			if other == slot {
				continue
			}
			if got.Get(other) != base.Get(other) {
				t.Errorf("Apply(%s) changed %s: got %q, want %q", slot, other, got.Get(other), base.Get(other))
			}
		}
	}

	// Receiver is a value; the original must be untouched
	if base.Ceiling != "#111111" || base.FrontWall != "#222222" || base.SideWall != "#333333" {
		t.Errorf("Apply mutated its receiver: %+v", base)
	}
}

func TestWallAssignment_ApplyIsIdempotent(t *testing.T) {
	once := DefaultWallAssignment().Apply(WallSide, "#FFA726")
	twice := once.Apply(WallSide, "#FFA726")

	if once != twice {
		t.Errorf("Applying twice differs from once: %+v vs %+v", twice, once)
	}
}

func TestWallAssignment_ApplySideWallScenario(t *testing.T) {
	got := DefaultWallAssignment().Apply(WallSide, "#FFA726")
	want := WallAssignment{Ceiling: "#FFFFFF", FrontWall: "#F8F9FA", SideWall: "#FFA726"}

	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestWallAssignment_ApplyAcceptsGarbageHex(t *testing.T) {
	got := DefaultWallAssignment().Apply(WallCeiling, "not-a-color")
	if got.Ceiling != "not-a-color" {
		t.Errorf("Expected garbage value to be stored as-is, got %q", got.Ceiling)
	}
}

func TestWallAssignment_ApplyUnknownSlot(t *testing.T) {
	base := DefaultWallAssignment()
	if got := base.Apply(WallSlot("floor"), "#000000"); got != base {
		t.Errorf("Unknown slot should be a no-op, got %+v", got)
	}
}

func TestWallAssignment_WithFallback(t *testing.T) {
	partial := WallAssignment{FrontWall: "#123456"}
	got := partial.WithFallback(DefaultWallAssignment())
	want := WallAssignment{Ceiling: "#FFFFFF", FrontWall: "#123456", SideWall: "#FEF3C7"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseWallSlot(t *testing.T) {
	tests := []struct {
		input   string
		want    WallSlot
		wantErr bool
	}{
		{"ceiling", WallCeiling, false},
		{"frontWall", WallFront, false},
		{"sideWall", WallSide, false},
		{"front-wall", WallFront, false},
		{"Side Wall", WallSide, false},
		{"front", WallFront, false},
		{"  CEILING ", WallCeiling, false},
		{"floor", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseWallSlot(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWallSlot(%q) expected error, got %q", tt.input, got)
			} else if !swerr.IsValidationError(err) {
				t.Errorf("ParseWallSlot(%q) expected validation error, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWallSlot(%q) unexpected error: %v", tt.input, err)
		} else if got != tt.want {
			t.Errorf("ParseWallSlot(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWallSlot_DisplayName(t *testing.T) {
	want := map[WallSlot]string{
		WallCeiling: "Ceiling",
		WallFront:   "Front Wall",
		WallSide:    "Side Wall",
	}
	for slot, name := range want {
		if got := slot.DisplayName(); got != name {
			t.Errorf("%s.DisplayName() = %q, want %q", slot, got, name)
		}
	}
}

func TestConfig_Defaults(t *testing.T) {
	var cfg *Config
	if cfg.ServePort() != DefaultServePort {
		t.Errorf("nil config port = %d, want %d", cfg.ServePort(), DefaultServePort)
	}
	if !cfg.ShouldOpenBrowser() {
		t.Error("nil config should open browser")
	}
	if cfg.SearchDelay() != 0 {
		t.Errorf("nil config delay = %v, want 0", cfg.SearchDelay())
	}
	if cfg.DefaultRoom() != DefaultWallAssignment() {
		t.Errorf("nil config room = %+v", cfg.DefaultRoom())
	}

	no := false
	cfg = &Config{
		SearchDelayMillis: 500,
		Room:              WallAssignment{Ceiling: "#000000"},
		Serve:             ServeConfig{Port: 8080, OpenBrowser: &no},
	}
	if cfg.ServePort() != 8080 {
		t.Errorf("port = %d, want 8080", cfg.ServePort())
	}
	if cfg.ShouldOpenBrowser() {
		t.Error("open_browser=false should be honored")
	}
	if cfg.SearchDelay().Milliseconds() != 500 {
		t.Errorf("delay = %v, want 500ms", cfg.SearchDelay())
	}
	if got := cfg.DefaultRoom(); got.Ceiling != "#000000" || got.SideWall != DefaultSideWallColor {
		t.Errorf("room = %+v", got)
	}
}
