package catalog

import (
	"testing"

	swerr "github.com/amterp/swatch/internal/errors"
)

func TestNearest_ExactHexRanksFirst(t *testing.T) {
	matches, err := Default().Nearest("#FFA726", 3)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(matches))
	}
	if matches[0].Color.Code != "7705" {
		t.Errorf("Closest = %s, want 7705", matches[0].Color.Code)
	}
	if matches[0].Distance > 1e-9 {
		t.Errorf("Exact match should have zero distance, got %f", matches[0].Distance)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Distance < matches[i-1].Distance {
			t.Errorf("Matches not sorted at %d: %f < %f", i, matches[i].Distance, matches[i-1].Distance)
		}
	}
}

func TestNearest_AcceptsMissingHashAndLowercase(t *testing.T) {
	matches, err := Default().Nearest("c8e6c9", 1)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if matches[0].Color.Code != "9770" {
		t.Errorf("Closest = %s, want 9770", matches[0].Color.Code)
	}
}

func TestNearest_NoLimitReturnsAll(t *testing.T) {
	matches, err := Default().Nearest("#000000", 0)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if len(matches) != Default().Len() {
		t.Errorf("Expected %d matches, got %d", Default().Len(), len(matches))
	}
}

func TestNearest_InvalidHex(t *testing.T) {
	for _, hex := range []string{"", "#12", "#GGGGGG", "blue"} {
		if _, err := Default().Nearest(hex, 1); !swerr.IsValidationError(err) {
			t.Errorf("Nearest(%q) expected validation error, got %v", hex, err)
		}
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := map[string]string{
		"ffa726":    "#FFA726",
		"#ffa726":   "#FFA726",
		" #FFA726 ": "#FFA726",
		"":          "",
	}
	for in, want := range tests {
		if got := NormalizeHex(in); got != want {
			t.Errorf("NormalizeHex(%q) = %q, want %q", in, got, want)
		}
	}
}
