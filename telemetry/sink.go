// Package telemetry is the optional debug channel of the tactics core. Core
// packages draw through a Sink; the default Nop sink discards everything so
// decisions never depend on it.
package telemetry

import (
	"fmt"
	"sync"

	"github.com/nstehr/vimy/vimy-tactics/model"
)

type Color string

const (
	Red    Color = "red"
	Green  Color = "green"
	Blue   Color = "blue"
	Cyan   Color = "cyan"
	Brown  Color = "brown"
	Yellow Color = "yellow"
	White  Color = "white"
)

// Sink receives debug drawings and per-unit log lines.
type Sink interface {
	Line(from, to model.Position, c Color)
	Circle(at model.Position, radius int, c Color)
	Text(at model.Position, text string)
	UnitLog(unitID int, format string, args ...any)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Line(model.Position, model.Position, Color) {}
func (Nop) Circle(model.Position, int, Color)          {}
func (Nop) Text(model.Position, string)                {}
func (Nop) UnitLog(int, string, ...any)                {}

// Shape is one recorded drawing.
type Shape struct {
	Kind   string          `json:"kind"`
	From   model.Position  `json:"from"`
	To     *model.Position `json:"to,omitempty"`
	Radius int             `json:"radius,omitempty"`
	Color  Color           `json:"color,omitempty"`
	Text   string          `json:"text,omitempty"`
}

// UnitLine is one per-unit log message.
type UnitLine struct {
	UnitID int    `json:"unitId"`
	Text   string `json:"text"`
}

// Frame is everything drawn during one game frame.
type Frame struct {
	Frame  int        `json:"frame"`
	Shapes []Shape    `json:"shapes"`
	Logs   []UnitLine `json:"logs"`
}

// Recorder buffers drawings until Take is called. It is safe for concurrent use.
type Recorder struct {
	mu  sync.Mutex
	cur Frame
}

func (r *Recorder) Line(from, to model.Position, c Color) {
	r.add(Shape{Kind: "line", From: from, To: &to, Color: c})
}

func (r *Recorder) Circle(at model.Position, radius int, c Color) {
	r.add(Shape{Kind: "circle", From: at, Radius: radius, Color: c})
}

func (r *Recorder) Text(at model.Position, text string) {
	r.add(Shape{Kind: "text", From: at, Text: text})
}

func (r *Recorder) UnitLog(unitID int, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cur.Logs = append(r.cur.Logs, UnitLine{UnitID: unitID, Text: fmt.Sprintf(format, args...)})
}

func (r *Recorder) add(s Shape) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cur.Shapes = append(r.cur.Shapes, s)
}

// Take returns the buffered frame stamped with frame and starts a new one.
func (r *Recorder) Take(frame int) Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.cur
	f.Frame = frame
	r.cur = Frame{}
	return f
}
