package resolver

import (
	"errors"
	"testing"

	"github.com/amterp/swatch/internal/catalog"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/prompt"
)

// mockPrompter implements prompt.Prompter for testing.
type mockPrompter struct {
	selectResult string
	selectErr    error
	lastOptions  []prompt.Option
	selectCalled bool
}

func (m *mockPrompter) Select(title string, options []prompt.Option) (string, error) {
	m.selectCalled = true
	m.lastOptions = options
	return m.selectResult, m.selectErr
}

func (m *mockPrompter) Input(title string, defaultValue string) (string, error) {
	return defaultValue, nil
}

func (m *mockPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	return defaultValue, nil
}

var _ prompt.Prompter = (*mockPrompter)(nil)

func TestColorResolver_ExplicitCode(t *testing.T) {
	p := &mockPrompter{}
	r := NewColorResolver(catalog.Default(), p)

	c, err := r.Resolve("8803", false)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if c.Name != "Ocean Breeze-N" {
		t.Errorf("Resolved %+v", c)
	}
	if p.selectCalled {
		t.Error("Should not prompt when code is explicit")
	}
}

func TestColorResolver_UnknownCode(t *testing.T) {
	r := NewColorResolver(catalog.Default(), &mockPrompter{})

	if _, err := r.Resolve("0000", true); !swerr.IsNotFound(err) {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestColorResolver_NonInteractiveRequiresCode(t *testing.T) {
	r := NewColorResolver(catalog.Default(), &mockPrompter{})

	if _, err := r.Resolve("", false); err == nil {
		t.Error("Expected error without code in non-interactive mode")
	}
}

func TestColorResolver_Prompts(t *testing.T) {
	p := &mockPrompter{selectResult: "7703"}
	r := NewColorResolver(catalog.Default(), p)

	c, err := r.Resolve("", true)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if c.Code != "7703" {
		t.Errorf("Resolved %s, want 7703", c.Code)
	}
	if len(p.lastOptions) != catalog.Default().Len() {
		t.Errorf("Prompted with %d options", len(p.lastOptions))
	}
	if p.lastOptions[0].Label != "9770  Pale Peppermint-N" || p.lastOptions[0].Value != "9770" {
		t.Errorf("First option = %+v", p.lastOptions[0])
	}
}

func TestColorResolver_PromptError(t *testing.T) {
	r := NewColorResolver(catalog.Default(), &mockPrompter{selectErr: prompt.ErrNonInteractive})

	if _, err := r.Resolve("", true); !errors.Is(err, prompt.ErrNonInteractive) {
		t.Errorf("Expected prompt error, got %v", err)
	}
}

func TestWallResolver(t *testing.T) {
	p := &mockPrompter{selectResult: "sideWall"}
	r := NewWallResolver(p)

	slot, err := r.Resolve("front", false)
	if err != nil || slot != model.WallFront {
		t.Errorf("Resolve(front) = %s, %v", slot, err)
	}

	if _, err := r.Resolve("floor", false); !swerr.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}

	if _, err := r.Resolve("", false); err == nil {
		t.Error("Expected error without wall in non-interactive mode")
	}

	slot, err = r.Resolve("", true)
	if err != nil || slot != model.WallSide {
		t.Errorf("Prompted Resolve = %s, %v", slot, err)
	}
	if len(p.lastOptions) != 3 || p.lastOptions[1].Label != "Front Wall" {
		t.Errorf("Wall options = %+v", p.lastOptions)
	}
}
