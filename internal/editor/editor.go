package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Editor handles editor resolution and invocation.
type Editor struct {
	configured string
}

// NewEditor creates a new Editor. configured is the editor named in the
// swatch config and may be empty.
func NewEditor(configured string) *Editor {
	return &Editor{configured: configured}
}

// Resolve returns the editor command to use.
// Order: swatch config > $EDITOR > vim
func (e *Editor) Resolve() string {
	// 1. Swatch config
	if e.configured != "" {
		return e.configured
	}

	// 2. Environment variable
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	// 3. Default
	return "vim"
}

// Open opens path in the editor and waits for it to exit.
// The editor command may carry its own arguments, e.g. "code --wait".
func (e *Editor) Open(path string) error {
	fields := strings.Fields(e.Resolve())
	if len(fields) == 0 {
		return errors.New("no editor configured")
	}

	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
