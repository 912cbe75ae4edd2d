package api

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

// mockSubscriber implements ConfigChangeSubscriber for testing
type mockSubscriber struct {
	mu      sync.Mutex
	changes []string
}

func (m *mockSubscriber) OnConfigChange(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes = append(m.changes, path)
}

func (m *mockSubscriber) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.changes)
}

func TestConfigWatcher_IsConfigEvent(t *testing.T) {
	cw := &ConfigWatcher{path: filepath.Join("home", "u", ".config", "swatch", "config.toml")}
	dir := filepath.Join("home", "u", ".config", "swatch")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: filepath.Join(dir, "config.toml"), Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: filepath.Join(dir, "config.toml"), Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: filepath.Join(dir, "config.toml"), Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: filepath.Join(dir, "config.toml"), Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(dir, "catalog.toml"), Op: fsnotify.Write}, false},
		{"editor swap file", fsnotify.Event{Name: filepath.Join(dir, ".config.toml.swp"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cw.isConfigEvent(tt.event); got != tt.want {
				t.Errorf("isConfigEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestConfigWatcher_Subscribe(t *testing.T) {
	cw := &ConfigWatcher{}

	sub1 := &mockSubscriber{}
	sub2 := &mockSubscriber{}

	cw.Subscribe(sub1)
	cw.Subscribe(sub2)

	if len(cw.subscribers) != 2 {
		t.Errorf("Expected 2 subscribers, got %d", len(cw.subscribers))
	}

	cw.Unsubscribe(sub1)

	if len(cw.subscribers) != 1 || cw.subscribers[0] != sub2 {
		t.Error("Wrong subscriber remained")
	}
}

func TestConfigWatcher_StoppedPreventsRestart(t *testing.T) {
	cw := &ConfigWatcher{
		stopped: true,
	}

	if err := cw.Start(); err == nil {
		t.Error("Expected error when starting stopped watcher")
	}
}

func TestConfigWatcher_StopWithoutStartReleasesWatcher(t *testing.T) {
	dir := t.TempDir()
	cw, err := NewConfigWatcher(filepath.Join(dir, "config.toml"), nil)
	if err != nil {
		t.Fatalf("NewConfigWatcher failed: %v", err)
	}

	if err := cw.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := cw.watcher.Add(dir); err != fsnotify.ErrClosed {
		t.Errorf("Add after Stop = %v, want %v", err, fsnotify.ErrClosed)
	}
	if err := cw.Stop(); err != nil {
		t.Errorf("Second Stop = %v, want nil", err)
	}
	if err := cw.Start(); err == nil {
		t.Error("Expected error when starting stopped watcher")
	}
}

func TestNewConfigWatcher_RequiresPath(t *testing.T) {
	if _, err := NewConfigWatcher("", nil); err == nil {
		t.Error("Expected error for empty path")
	}
}

func TestConfigWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cw, err := NewConfigWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewConfigWatcher failed: %v", err)
	}
	sub := &mockSubscriber{}
	cw.Subscribe(sub)

	if err := cw.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer cw.Stop()

	// A burst of writes should produce a single notification
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("search_delay_ms = 1\n"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	// Unrelated files are ignored
	os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0644)

	deadline := time.Now().Add(2 * time.Second)
	for sub.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	// Give a stray second timer a chance to fire
	time.Sleep(3 * DefaultDebounce)

	if got := sub.count(); got != 1 {
		t.Errorf("Expected 1 notification, got %d", got)
	}
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if len(sub.changes) > 0 && sub.changes[0] != path {
		t.Errorf("Notified path = %s, want %s", sub.changes[0], path)
	}
}

func TestConfigWatcher_NoEventsAfterStop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cw, err := NewConfigWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewConfigWatcher failed: %v", err)
	}
	sub := &mockSubscriber{}
	cw.Subscribe(sub)
	if err := cw.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := cw.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	os.WriteFile(path, []byte("x = 1\n"), 0644)
	time.Sleep(3 * DefaultDebounce)

	if sub.count() != 0 {
		t.Errorf("Expected no notifications after stop, got %d", sub.count())
	}
}
