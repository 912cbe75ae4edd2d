package resolver

import (
	"fmt"

	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/prompt"
)

// WallResolver turns a wall argument into a WallSlot.
type WallResolver struct {
	prompter prompt.Prompter
}

// NewWallResolver creates a new wall resolver.
func NewWallResolver(prompter prompt.Prompter) *WallResolver {
	return &WallResolver{prompter: prompter}
}

// Resolve parses an explicit wall name, or prompts for one when interactive.
func (r *WallResolver) Resolve(wall string, interactive bool) (model.WallSlot, error) {
	if wall != "" {
		return model.ParseWallSlot(wall)
	}

	if !interactive {
		return "", fmt.Errorf("wall required (one of ceiling, frontWall, sideWall)")
	}

	picked, err := r.prompter.Select("Select wall", WallOptions())
	if err != nil {
		return "", err
	}
	return model.ParseWallSlot(picked)
}

// WallOptions lists every wall by display name.
func WallOptions() []prompt.Option {
	opts := make([]prompt.Option, len(model.WallSlots))
	for i, slot := range model.WallSlots {
		opts[i] = prompt.Option{Label: slot.DisplayName(), Value: string(slot)}
	}
	return opts
}
