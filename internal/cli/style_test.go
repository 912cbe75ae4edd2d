package cli

import (
	"strings"
	"testing"

	"github.com/amterp/swatch/testutil"
)

func TestColorChip(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#FFA726", "██"},
		{"", "░░"},
		{"orange", "░░"},
		{"#FFA72", "░░"},
	}

	for _, tt := range tests {
		if got := ColorChip(tt.hex); !strings.Contains(got, tt.want) {
			t.Errorf("ColorChip(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestDetailBox_KeepsEveryLine(t *testing.T) {
	box := DetailBox("Code 9770", "Hex #C8E6C9")

	lines := strings.Split(box, "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected border, 2 lines, border; got %d lines:\n%s", len(lines), box)
	}
	if !strings.Contains(lines[1], "Code 9770") || !strings.Contains(lines[2], "Hex #C8E6C9") {
		t.Errorf("Unexpected box:\n%s", box)
	}
	if !strings.HasPrefix(lines[0], "╭") || !strings.HasPrefix(lines[3], "╰") {
		t.Errorf("Expected rounded border:\n%s", box)
	}
}

func TestListRow(t *testing.T) {
	c := testutil.TestColor("A100", "Tomato Red", "#FF6347")

	row := listRow(c)
	for _, want := range []string{"██", "A100", "Tomato Red", "#FF6347"} {
		if !strings.Contains(row, want) {
			t.Errorf("listRow = %q, missing %q", row, want)
		}
	}
	if strings.Contains(row, c.Category) {
		t.Errorf("listRow should leave the category to the group heading: %q", row)
	}
}
