// Package ws pushes notification events to connected browsers over WebSocket.
// The hub only tracks connections; notifications themselves live in PostgreSQL
// and reach the hub through the LISTEN/NOTIFY relay.
package ws

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 256
)

// Observer is told about connection churn and push results. *metrics.Metrics satisfies it.
type Observer interface {
	ConnectionOpened()
	ConnectionClosed()
	NotificationPushed(dropped bool)
}

type nopObserver struct{}

func (nopObserver) ConnectionOpened()          {}
func (nopObserver) ConnectionClosed()          {}
func (nopObserver) NotificationPushed(_ bool) {}

// Hub keeps the open connections of this instance, grouped by user id.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}

	upgrader websocket.Upgrader
	observer Observer
	logger   *slog.Logger
}

// NewHub creates a hub. checkOrigin may be nil to accept same-origin requests only;
// observer may be nil.
func NewHub(logger *slog.Logger, observer Observer, checkOrigin func(r *http.Request) bool) *Hub {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		observer: observer,
		logger:   logger.With("component", "ws_hub"),
	}
}

// Serve upgrades the request and registers the connection for userID. It returns
// once the pumps are running; the upgrader has already answered on error.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		hub:    h,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, sendBuffer),
	}
	h.register(c)

	go c.writePump()
	go c.readPump()
	return nil
}

// Deliver queues payload on every connection of userID. A connection whose buffer
// is full is dropped; the client recovers through the events feed.
func (h *Hub) Deliver(userID string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients[userID] {
		select {
		case c.send <- payload:
			h.observer.NotificationPushed(false)
		default:
			h.observer.NotificationPushed(true)
			h.removeLocked(c)
			h.logger.Warn("Dropping slow connection", "user_id", userID)
		}
	}
}

// ConnectionCount returns the number of open connections of userID.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, set := range h.clients {
		for c := range set {
			h.removeLocked(c)
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.userID]
	if !ok {
		set = make(map[*client]struct{})
		h.clients[c.userID] = set
	}
	set[c] = struct{}{}
	h.observer.ConnectionOpened()
	h.logger.Debug("Client connected", "user_id", c.userID, "connections", len(set))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// removeLocked closes c.send exactly once; the caller holds h.mu.
func (h *Hub) removeLocked(c *client) {
	set, ok := h.clients[c.userID]
	if !ok {
		return
	}
	if _, ok = set[c]; !ok {
		return
	}

	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	close(c.send)
	h.observer.ConnectionClosed()
	h.logger.Debug("Client disconnected", "user_id", c.userID)
}
