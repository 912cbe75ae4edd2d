package prompt

import (
	"errors"
	"reflect"
	"testing"
)

func TestOptions(t *testing.T) {
	got := Options("ceiling", "frontWall")
	want := []Option{{Label: "ceiling", Value: "ceiling"}, {Label: "frontWall", Value: "frontWall"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Options() = %v, want %v", got, want)
	}
}

func TestNoopPrompter(t *testing.T) {
	var p Prompter = &NoopPrompter{}

	if _, err := p.Select("pick", Options("a")); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("Select error = %v", err)
	}
	if _, err := p.Input("type", "x"); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("Input error = %v", err)
	}
	if _, err := p.Confirm("sure?", true); !errors.Is(err, ErrNonInteractive) {
		t.Errorf("Confirm error = %v", err)
	}
}
