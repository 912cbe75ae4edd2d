package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/amterp/swatch/internal/service"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
)

// Message types sent to clients.
const (
	MessageConnected      = "connected"
	MessageSession        = "session"
	MessageConfigReloaded = "config_reloaded"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WebSocketHub manages WebSocket connections and broadcasts session changes.
type WebSocketHub struct {
	mu       sync.RWMutex
	clients  map[*WebSocketClient]bool
	snapshot func() service.Snapshot
	logger   hclog.Logger
}

// WebSocketClient represents a connected WebSocket client.
type WebSocketClient struct {
	hub     *WebSocketHub
	conn    *websocket.Conn
	send    chan []byte
	welcome chan []byte // Written before anything on send
}

// WebSocketMessage is the JSON message sent to clients.
type WebSocketMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ConfigReloadedData describes a config reload to clients.
type ConfigReloadedData struct {
	Path          string `json:"path"`
	SearchDelayMs int    `json:"search_delay_ms"`
	Error         string `json:"error,omitempty"`
}

// NewWebSocketHub creates a new WebSocket hub. snapshot supplies the session
// sent to each client as it connects.
func NewWebSocketHub(snapshot func() service.Snapshot, logger hclog.Logger) *WebSocketHub {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &WebSocketHub{
		clients:  make(map[*WebSocketClient]bool),
		snapshot: snapshot,
		logger:   logger,
	}
}

// OnSessionChange implements service.SessionSubscriber.
func (h *WebSocketHub) OnSessionChange(snap service.Snapshot) {
	h.publish(MessageSession, snap)
}

// OnConfigReload announces a config reload, successful or not.
func (h *WebSocketHub) OnConfigReload(data ConfigReloadedData) {
	h.publish(MessageConfigReloaded, data)
}

func (h *WebSocketHub) publish(msgType string, payload any) {
	data, err := json.Marshal(WebSocketMessage{Type: msgType, Data: payload})
	if err != nil {
		h.logger.Error("failed to marshal message", "type", msgType, "error", err)
		return
	}
	h.broadcast(data)
}

// broadcast sends a message to all connected clients.
func (h *WebSocketHub) broadcast(data []byte) {
	h.mu.RLock()
	clients := make([]*WebSocketClient, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.trySend(client, data)
	}
}

// trySend attempts to send data to a client, handling the case where
// the client's channel was closed between snapshot and send.
func (h *WebSocketHub) trySend(client *WebSocketClient, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed by removeClient - client already cleaned up
		}
	}()

	select {
	case client.send <- data:
	default:
		// Client buffer full, close it
		h.logger.Warn("dropping slow websocket client")
		h.removeClient(client)
	}
}

func (h *WebSocketHub) addClient(client *WebSocketClient) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
}

func (h *WebSocketHub) removeClient(client *WebSocketClient) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
}

// ServeWS handles WebSocket connection requests.
func (h *WebSocketHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &WebSocketClient{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, 256),
		welcome: make(chan []byte, 1),
	}

	// Join broadcasts before reading the session so no change can fall
	// between the two. Anything broadcast meanwhile waits behind the welcome.
	h.addClient(client)
	if data, ok := h.welcomeMessage(); ok {
		client.welcome <- data
	}
	close(client.welcome)
	h.logger.Debug("websocket client connected", "clients", h.ClientCount())

	// Start read/write goroutines
	go client.writePump()
	go client.readPump()
}

func (h *WebSocketHub) welcomeMessage() ([]byte, bool) {
	if h.snapshot == nil {
		return nil, false
	}
	data, err := json.Marshal(WebSocketMessage{Type: MessageConnected, Data: h.snapshot()})
	if err != nil {
		h.logger.Error("failed to marshal message", "type", MessageConnected, "error", err)
		return nil, false
	}
	return data, true
}

// readPump reads messages from the WebSocket connection.
// We don't expect client messages, but we need to read to detect disconnects.
func (c *WebSocketClient) readPump() {
	defer func() {
		// Only call removeClient here - closing send channel signals writePump to exit
		// writePump is responsible for closing the connection
		c.hub.removeClient(c)
	}()

	c.conn.SetReadLimit(512) // Small limit since we don't expect large messages
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket read error", "error", err)
			}
			break
		}
	}
}

// writePump writes messages to the WebSocket connection.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(30 * time.Second) // Ping interval
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	if message, ok := <-c.welcome; ok {
		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// One frame per message so the page always receives whole JSON documents
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
