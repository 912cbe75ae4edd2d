package api

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// ConfigChangeSubscriber receives config file change notifications.
type ConfigChangeSubscriber interface {
	OnConfigChange(path string)
}

// ConfigWatcher watches the config file and notifies subscribers when it
// changes. It watches the parent directory so that editors which replace
// the file on save are still seen.
type ConfigWatcher struct {
	watcher     *fsnotify.Watcher
	path        string
	logger      hclog.Logger
	debounceFor time.Duration
	mu          sync.RWMutex
	subscribers []ConfigChangeSubscriber
	debounce    *time.Timer
	debounceMu  sync.Mutex
	stopCh      chan struct{}
	stopped     bool // Once stopped, cannot restart
	running     bool
}

// NewConfigWatcher creates a watcher for the config file at path.
func NewConfigWatcher(path string, logger hclog.Logger) (*ConfigWatcher, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is required")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ConfigWatcher{
		watcher:     watcher,
		path:        filepath.Clean(path),
		logger:      logger,
		debounceFor: DefaultDebounce,
		stopCh:      make(chan struct{}),
	}, nil
}

// Path returns the watched config file.
func (cw *ConfigWatcher) Path() string {
	return cw.path
}

// Subscribe adds a subscriber to receive change notifications.
func (cw *ConfigWatcher) Subscribe(sub ConfigChangeSubscriber) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.subscribers = append(cw.subscribers, sub)
}

// Unsubscribe removes a subscriber.
func (cw *ConfigWatcher) Unsubscribe(sub ConfigChangeSubscriber) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	for i, s := range cw.subscribers {
		if s == sub {
			cw.subscribers = append(cw.subscribers[:i], cw.subscribers[i+1:]...)
			return
		}
	}
}

// Start begins watching. The config directory must exist.
func (cw *ConfigWatcher) Start() error {
	cw.mu.Lock()
	if cw.running {
		cw.mu.Unlock()
		return nil
	}
	if cw.stopped {
		cw.mu.Unlock()
		return fmt.Errorf("config watcher cannot be restarted after stop")
	}
	cw.running = true
	cw.mu.Unlock()

	if err := cw.watcher.Add(filepath.Dir(cw.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(cw.path), err)
	}

	go cw.run()
	return nil
}

// Stop stops watching for changes.
func (cw *ConfigWatcher) Stop() error {
	cw.mu.Lock()
	if cw.stopped {
		cw.mu.Unlock()
		return nil
	}
	if !cw.running {
		// Never started, only the fsnotify handle needs releasing
		cw.stopped = true
		cw.mu.Unlock()
		return cw.watcher.Close()
	}
	cw.running = false
	cw.stopped = true
	cw.mu.Unlock()

	// Cancel the pending debounce timer so it can't fire after stop
	cw.debounceMu.Lock()
	if cw.debounce != nil {
		cw.debounce.Stop()
		cw.debounce = nil
	}
	cw.debounceMu.Unlock()

	close(cw.stopCh)
	return cw.watcher.Close()
}

func (cw *ConfigWatcher) run() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleEvent(event)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Warn("config watcher error", "error", err)

		case <-cw.stopCh:
			return
		}
	}
}

// isConfigEvent reports whether event is a content change to the config file.
func (cw *ConfigWatcher) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != cw.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

func (cw *ConfigWatcher) handleEvent(event fsnotify.Event) {
	if !cw.isConfigEvent(event) {
		return
	}

	// Debounce: restart the timer on every event and emit once things settle
	cw.debounceMu.Lock()
	if cw.debounce != nil {
		cw.debounce.Stop()
	}
	cw.debounce = time.AfterFunc(cw.debounceFor, cw.emitChange)
	cw.debounceMu.Unlock()
}

func (cw *ConfigWatcher) emitChange() {
	// Check if watcher was stopped (debounce timer may fire after Stop)
	cw.mu.RLock()
	if cw.stopped {
		cw.mu.RUnlock()
		return
	}
	subs := make([]ConfigChangeSubscriber, len(cw.subscribers))
	copy(subs, cw.subscribers)
	cw.mu.RUnlock()

	cw.logger.Debug("config file changed", "path", cw.path)
	for _, sub := range subs {
		sub.OnConfigChange(cw.path)
	}
}
