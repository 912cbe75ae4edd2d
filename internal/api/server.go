package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/amterp/swatch/internal/store"
	"github.com/hashicorp/go-hclog"
)

// Server wraps the HTTP server for the web frontend.
type Server struct {
	httpServer *http.Server
	handler    *Handler
	watcher    *ConfigWatcher
	wsHub      *WebSocketHub
	logger     hclog.Logger
}

// NewServer creates a new server with the given handler and port.
// If configStore is nil or has no path, config live reload is disabled.
func NewServer(handler *Handler, port int, configStore store.ConfigStore, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	wsHub := NewWebSocketHub(handler.session.Snapshot, logger.Named("ws"))
	handler.session.Subscribe(wsHub)
	mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)

	var watcher *ConfigWatcher
	if configStore != nil && configStore.Path() != "" {
		var err error
		watcher, err = NewConfigWatcher(configStore.Path(), logger.Named("watcher"))
		if err != nil {
			logger.Warn("failed to create config watcher", "error", err)
			watcher = nil
		} else {
			watcher.Subscribe(NewConfigReloader(configStore, handler.session, wsHub, logger.Named("reload")))
		}
	}

	// Apply middleware
	wrapped := Cors(Logging(logger.Named("http"))(mux))

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      wrapped,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		handler: handler,
		watcher: watcher,
		wsHub:   wsHub,
		logger:  logger,
	}
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln. Blocks until shutdown.
func (s *Server) Serve(ln net.Listener) error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			s.logger.Warn("config live reload disabled", "error", err)
		}
	}

	s.logger.Info("listening", "addr", ln.Addr().String())
	err := s.httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}
	s.handler.session.Unsubscribe(s.wsHub)

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is configured to listen on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
