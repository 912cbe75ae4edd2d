package cli

import (
	"reflect"
	"testing"

	"github.com/amterp/ra"
	"github.com/amterp/swatch/internal/catalog"
)

func TestColorCodesWithPrefix(t *testing.T) {
	got := colorCodesWithPrefix(catalog.Default(), "880")
	want := []string{"8801", "8802", "8803", "8804", "8805", "8806"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestColorCodesWithPrefix_EmptyPrefixListsAll(t *testing.T) {
	c := catalog.Default()
	if got := colorCodesWithPrefix(c, ""); len(got) != c.Len() {
		t.Errorf("Expected %d codes, got %d", c.Len(), len(got))
	}
}

func TestColorCodesWithPrefix_NoMatch(t *testing.T) {
	if got := colorCodesWithPrefix(catalog.Default(), "zz"); len(got) != 0 {
		t.Errorf("Expected no codes, got %v", got)
	}
}

func TestCompleteWalls(t *testing.T) {
	got, directive := completeWalls("")
	if !reflect.DeepEqual(got, []string{"ceiling", "frontWall", "sideWall"}) {
		t.Errorf("Unexpected walls: %v", got)
	}
	if directive != ra.CompletionDirectiveNoFileComp {
		t.Errorf("Expected NoFileComp directive, got %v", directive)
	}

	got, _ = completeWalls("s")
	if !reflect.DeepEqual(got, []string{"sideWall"}) {
		t.Errorf("Expected [sideWall], got %v", got)
	}
}

func TestWithPrefix(t *testing.T) {
	values := []string{"green", "blue", "orange"}
	if got := withPrefix(values, "b"); !reflect.DeepEqual(got, []string{"blue"}) {
		t.Errorf("Expected [blue], got %v", got)
	}
	if got := withPrefix(values, "x"); got != nil {
		t.Errorf("Expected nil, got %v", got)
	}
}
