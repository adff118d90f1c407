package telemetry

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	subscriberBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub is a Sink that streams each flushed frame to websocket viewers. Slow
// viewers drop frames instead of stalling the game loop.
type Hub struct {
	Recorder

	mu          sync.RWMutex
	subscribers map[uuid.UUID]chan Frame
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[uuid.UUID]chan Frame)}
}

// Flush broadcasts everything drawn since the previous flush.
func (h *Hub) Flush(frame int) {
	f := h.Take(frame)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subscribers {
		select {
		case ch <- f:
		default:
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Subscribe streams flushed frames to a caller other than a websocket viewer.
// The returned func stops the stream.
func (h *Hub) Subscribe() (<-chan Frame, func()) {
	id, ch := h.register()
	return ch, func() { h.unregister(id) }
}

func (h *Hub) register() (uuid.UUID, chan Frame) {
	id := uuid.New()
	ch := make(chan Frame, subscriberBuffer)
	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()
	return id, ch
}

func (h *Hub) unregister(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subscribers[id]; ok {
		close(ch)
		delete(h.subscribers, id)
	}
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.subscribers {
		close(ch)
		delete(h.subscribers, id)
	}
}

// ServeHTTP upgrades the request and streams frames until the viewer leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("telemetry upgrade failed", "error", err)
		return
	}
	id, frames := h.register()
	slog.Info("telemetry viewer connected", "viewer", id, "remote", r.RemoteAddr)

	go h.readPump(conn, id)
	h.writePump(conn, frames)
	slog.Info("telemetry viewer disconnected", "viewer", id)
}

// readPump only watches for the viewer closing the connection.
func (h *Hub) readPump(conn *websocket.Conn, id uuid.UUID) {
	defer h.unregister(id)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, frames <-chan Frame) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()
	for {
		select {
		case f, ok := <-frames:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(f); err != nil {
				slog.Debug("telemetry write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
