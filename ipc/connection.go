package ipc

import (
	"context"
	"log/slog"
	"net"
	"sync"

	"github.com/nstehr/vimy/vimy-tactics/telemetry"
)

// Handler processes a received envelope. Return nil to send no reply.
type Handler func(env Envelope) (*Envelope, error)

// Connection represents a single bridge instance talking to the tactics core.
// Handlers run on the Run goroutine; Send may be called from them or from any
// other goroutine.
type Connection struct {
	conn     net.Conn
	handlers map[string]Handler
	Player   string
	// Overlay, when set before Run, is forwarded to the bridge as draw
	// messages so it can render debug shapes in game.
	Overlay <-chan telemetry.Frame

	writeMu sync.Mutex
}

// Stats counts what one session exchanged with the bridge.
type Stats struct {
	Received  map[string]int
	Unhandled int
	Failed    int
	Replies   int
	Overlays  int
}

func NewConnection(conn net.Conn, handlers map[string]Handler) *Connection {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	return &Connection{
		conn:     conn,
		handlers: handlers,
	}
}

func (c *Connection) RegisterHandler(msgType string, handler Handler) {
	c.handlers[msgType] = handler
}

func (c *Connection) Send(msgType string, data any) error {
	env, err := NewEnvelope(msgType, data)
	if err != nil {
		return err
	}
	return c.write(env)
}

func (c *Connection) write(env Envelope) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return WriteEnvelope(c.conn, env)
}

// Run dispatches bridge messages and forwards overlay frames until the
// connection closes, a write fails or ctx is done. It owns the conn lifetime
// so callers don't need to track cleanup.
func (c *Connection) Run(ctx context.Context) Stats {
	defer c.conn.Close()
	stop := context.AfterFunc(ctx, func() { c.conn.Close() })
	defer stop()

	done := make(chan struct{})
	defer close(done)
	incoming := make(chan Envelope)
	readErr := make(chan error, 1)
	go func() {
		for {
			env, err := ReadEnvelope(c.conn)
			if err != nil {
				readErr <- err
				return
			}
			select {
			case incoming <- env:
			case <-done:
				return
			}
		}
	}()

	st := Stats{Received: make(map[string]int)}
	overlay := c.Overlay
	for {
		select {
		case env := <-incoming:
			st.Received[env.Type]++
			if !c.dispatch(env, &st) {
				return st
			}
		case f, ok := <-overlay:
			if !ok {
				overlay = nil
				continue
			}
			if len(f.Shapes) == 0 && len(f.Logs) == 0 {
				continue
			}
			if err := c.Send(TypeDraw, f); err != nil {
				slog.Error("failed to send overlay", "frame", f.Frame, "error", err)
				return st
			}
			st.Overlays++
		case err := <-readErr:
			slog.Info("connection read ended", "player", c.Player, "error", err)
			return st
		}
	}
}

// dispatch runs env's handler and writes its reply. It reports false once the
// bridge can no longer be written to.
func (c *Connection) dispatch(env Envelope, st *Stats) bool {
	handler, ok := c.handlers[env.Type]
	if !ok {
		st.Unhandled++
		slog.Warn("no handler for message type", "type", env.Type)
		return true
	}

	resp, err := handler(env)
	if err != nil {
		st.Failed++
		slog.Error("handler error", "type", env.Type, "error", err)
		return true
	}
	if resp == nil {
		return true
	}
	if err := c.write(*resp); err != nil {
		slog.Error("failed to send response", "type", resp.Type, "error", err)
		return false
	}
	st.Replies++
	slog.Debug("sent response", "type", resp.Type, "player", c.Player)
	return true
}
