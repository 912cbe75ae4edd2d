package api

import (
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/store"
	"github.com/hashicorp/go-hclog"
)

// ConfigReloader re-reads the config when it changes and pushes the new
// room defaults and search delay into the session. The catalog is fixed for
// the life of the server and is never reloaded.
type ConfigReloader struct {
	store   store.ConfigStore
	session *service.SessionService
	hub     *WebSocketHub
	logger  hclog.Logger
}

// NewConfigReloader creates a reloader. hub may be nil.
func NewConfigReloader(configStore store.ConfigStore, session *service.SessionService, hub *WebSocketHub, logger hclog.Logger) *ConfigReloader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ConfigReloader{
		store:   configStore,
		session: session,
		hub:     hub,
		logger:  logger,
	}
}

// OnConfigChange implements ConfigChangeSubscriber. A config that fails to
// load leaves the session as it was.
func (r *ConfigReloader) OnConfigChange(path string) {
	cfg, err := r.store.Load()
	if err != nil {
		r.logger.Warn("config reload failed; keeping previous settings", "path", path, "error", err)
		if r.hub != nil {
			r.hub.OnConfigReload(ConfigReloadedData{Path: path, Error: err.Error()})
		}
		return
	}

	r.session.SetSearchDelay(cfg.SearchDelay())
	r.session.SetDefaults(cfg.DefaultRoom())
	r.logger.Info("config reloaded", "path", path)

	if r.hub != nil {
		r.hub.OnConfigReload(ConfigReloadedData{
			Path:          path,
			SearchDelayMs: int(cfg.SearchDelay().Milliseconds()),
		})
	}
}
