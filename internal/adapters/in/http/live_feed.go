package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"orderpanel/internal/core/domain/model/order"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const liveWriteTimeout = 5 * time.Second

// LiveFeed pushes relayed order events to connected operator dashboards
// over websockets. It implements commands.EventFeed.
type LiveFeed struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewLiveFeed(logger *slog.Logger) *LiveFeed {
	return &LiveFeed{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// Access is gated by the session token, not the origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "live_feed"),
	}
}

// Serve handles GET /api/v1/orders/live. The connection stays open until the
// client goes away; anything the client sends is discarded.
func (f *LiveFeed) Serve(c echo.Context) error {
	conn, err := f.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		f.logger.WarnContext(c.Request().Context(), "websocket upgrade failed", "error", err)
		return nil
	}

	f.add(conn)
	defer f.remove(conn)

	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// Broadcast sends event to every connected client. Clients that fail the
// write are dropped.
func (f *LiveFeed) Broadcast(event order.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		f.logger.Error("encode live event", "error", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
		if err = conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			f.logger.Warn("live feed write failed", "error", err)
			delete(f.clients, conn)
			_ = conn.Close()
		}
	}
}

// Clients reports how many dashboards are connected.
func (f *LiveFeed) Clients() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// Close disconnects every client.
func (f *LiveFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second),
		)
		_ = conn.Close()
		delete(f.clients, conn)
	}
}

func (f *LiveFeed) add(conn *websocket.Conn) {
	f.mu.Lock()
	f.clients[conn] = struct{}{}
	n := len(f.clients)
	f.mu.Unlock()
	f.logger.Info("live feed client connected", "clients", n)
}

func (f *LiveFeed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	delete(f.clients, conn)
	n := len(f.clients)
	f.mu.Unlock()
	_ = conn.Close()
	f.logger.Info("live feed client disconnected", "clients", n)
}
