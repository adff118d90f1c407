package telemetry

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nstehr/vimy/vimy-tactics/model"
)

func TestRecorderTakeResets(t *testing.T) {
	var r Recorder
	r.Line(model.Pos(0, 0), model.Pos(10, 10), Red)
	r.Circle(model.Pos(5, 5), 8, Blue)
	r.UnitLog(7, "kite %d", 3)

	f := r.Take(42)
	if f.Frame != 42 {
		t.Errorf("frame = %d, want 42", f.Frame)
	}
	if len(f.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(f.Shapes))
	}
	if f.Shapes[0].To == nil || *f.Shapes[0].To != model.Pos(10, 10) {
		t.Errorf("line end = %v, want (10,10)", f.Shapes[0].To)
	}
	if len(f.Logs) != 1 || f.Logs[0].Text != "kite 3" || f.Logs[0].UnitID != 7 {
		t.Errorf("unexpected logs %+v", f.Logs)
	}

	if next := r.Take(43); len(next.Shapes) != 0 || len(next.Logs) != 0 {
		t.Errorf("expected empty frame after Take, got %+v", next)
	}
}

func TestNopSatisfiesSink(t *testing.T) {
	var s Sink = Nop{}
	s.Line(model.Pos(0, 0), model.Pos(1, 1), Green)
	s.UnitLog(1, "ignored")
}

func TestHubStreamsFrames(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.SubscriberCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("viewer never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	hub.Text(model.Pos(1, 2), "engage")
	hub.Flush(99)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Frame
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.Frame != 99 || len(got.Shapes) != 1 || got.Shapes[0].Text != "engage" {
		t.Errorf("unexpected frame %+v", got)
	}
}

func TestFlushWithoutViewersDoesNotBlock(t *testing.T) {
	hub := NewHub()
	for i := range 1000 {
		hub.Circle(model.Pos(i, i), 4, Yellow)
		hub.Flush(i)
	}
}

func TestSubscribeReceivesUntilStopped(t *testing.T) {
	hub := NewHub()
	frames, stop := hub.Subscribe()
	if hub.SubscriberCount() != 1 {
		t.Fatalf("SubscriberCount = %d, want 1", hub.SubscriberCount())
	}

	hub.Line(model.Pos(0, 0), model.Pos(3, 4), Cyan)
	hub.Flush(7)
	if f := <-frames; f.Frame != 7 || len(f.Shapes) != 1 {
		t.Errorf("unexpected frame %+v", f)
	}

	stop()
	if _, ok := <-frames; ok {
		t.Error("frames still open after stop")
	}
	if hub.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount = %d after stop, want 0", hub.SubscriberCount())
	}
	stop()
}
