package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_Order(t *testing.T) {
	t.Setenv("EDITOR", "nano")

	if got := NewEditor("hx").Resolve(); got != "hx" {
		t.Errorf("Expected configured editor, got %q", got)
	}
	if got := NewEditor("").Resolve(); got != "nano" {
		t.Errorf("Expected $EDITOR, got %q", got)
	}

	t.Setenv("EDITOR", "")
	if got := NewEditor("").Resolve(); got != "vim" {
		t.Errorf("Expected vim fallback, got %q", got)
	}
}

func TestOpen_RunsEditorOnPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	// touch stands in for an editor that saves a new file
	if err := NewEditor("touch").Open(path); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected editor to create %s: %v", path, err)
	}
}

func TestOpen_PassesEditorArguments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	if err := NewEditor("mkdir -p").Open(path); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		t.Errorf("Expected arguments before the path, stat err=%v", err)
	}
}

func TestOpen_FailingEditor(t *testing.T) {
	if err := NewEditor("false").Open("whatever"); err == nil {
		t.Error("Expected error from failing editor")
	}
}
