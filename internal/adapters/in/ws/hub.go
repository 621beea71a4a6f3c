// Package ws pushes board events to connected clients over websockets.
// The hub implements ports.Notifier for transient acknowledgments and
// carries job updates so every open board converges without polling.
package ws

import (
	"log/slog"
	"net/http"
	"sync"

	httpapi "hireboard/internal/adapters/in/http"
	"hireboard/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Event is the envelope every websocket message travels in.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// notificationPayload is the wire shape of a transient acknowledgment.
type notificationPayload struct {
	Level   string `json:"level"`
	JobID   string `json:"jobId"`
	Message string `json:"message"`
}

// Hub fans board events out to every connected client. Clients that fall
// behind or error on write are dropped; delivery is best-effort.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
		logger:  logger.With("component", "ws.Hub"),
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handle upgrades the request and keeps the connection registered until the
// client goes away. The board protocol is push-only; inbound messages are
// read and discarded to service control frames.
func (h *Hub) Handle(ctx echo.Context) error {
	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("client connected", "clients", count)

	defer func() {
		h.drop(conn)
		h.logger.Info("client disconnected")
	}()

	for {
		if _, _, readErr := conn.ReadMessage(); readErr != nil {
			return nil
		}
	}
}

// Publish broadcasts a transient acknowledgment. Implements ports.Notifier.
func (h *Hub) Publish(notification ports.Notification) {
	h.broadcast(Event{
		Type: "notification",
		Payload: notificationPayload{
			Level:   string(notification.Level),
			JobID:   notification.JobID.String(),
			Message: notification.Message,
		},
	})
}

// JobUpdated broadcasts the authoritative record after a mutation.
func (h *Hub) JobUpdated(job httpapi.JobResponse) {
	h.broadcast(Event{Type: "job.updated", Payload: job})
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) broadcast(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Warn("dropping client after write failure", "error", err)
			_ = conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[conn]; ok {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}
