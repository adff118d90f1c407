package agent

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nstehr/vimy/vimy-tactics/rules"
)

// Strategist runs in the background and swaps the rule engine's rule set
// when an event has a doctrine reaction configured.
type Strategist struct {
	mu        sync.Mutex
	engine    *rules.Engine
	doctrines map[string]rules.Doctrine
	reactions map[EventKind]string
	pending   []Event
	current   string
	ready     chan struct{}
}

// NewStrategist creates a strategist starting from the doctrine already
// loaded into engine. Reactions naming an unknown doctrine are ignored.
func NewStrategist(engine *rules.Engine, current rules.Doctrine, doctrines []rules.Doctrine, reactions map[string]string) *Strategist {
	s := &Strategist{
		engine:    engine,
		doctrines: map[string]rules.Doctrine{current.Name: current},
		reactions: make(map[EventKind]string, len(reactions)),
		current:   current.Name,
		ready:     make(chan struct{}, 1),
	}
	for _, d := range doctrines {
		s.doctrines[d.Name] = d
	}
	for kind, name := range reactions {
		if _, ok := s.doctrines[name]; !ok {
			slog.Warn("reaction names unknown doctrine", "event", kind, "doctrine", name)
			continue
		}
		s.reactions[EventKind(kind)] = name
	}
	return s
}

// Notify queues events for the strategist. It never blocks the tick.
func (s *Strategist) Notify(events []Event) {
	if len(events) == 0 {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, events...)
	s.mu.Unlock()

	select {
	case s.ready <- struct{}{}:
	default:
	}
}

// Current is the name of the doctrine in force.
func (s *Strategist) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Start launches the background strategist loop. It blocks until ctx is cancelled.
func (s *Strategist) Start(ctx context.Context) {
	slog.Info("strategist started", "doctrine", s.Current(), "reactions", len(s.reactions))
	for {
		select {
		case <-ctx.Done():
			slog.Info("strategist stopped")
			return
		case <-s.ready:
			s.evaluate()
		}
	}
}

// evaluate applies the reaction of the latest pending event that has one.
func (s *Strategist) evaluate() {
	s.mu.Lock()
	events := s.pending
	s.pending = nil
	current := s.current
	s.mu.Unlock()

	var trigger *Event
	for i := len(events) - 1; i >= 0; i-- {
		if _, ok := s.reactions[events[i].Kind]; ok {
			trigger = &events[i]
			break
		}
	}
	if trigger == nil {
		return
	}
	name := s.reactions[trigger.Kind]
	if name == current {
		return
	}

	doctrine := s.doctrines[name]
	doctrine.Validate()
	if err := s.engine.Swap(rules.CompileDoctrine(doctrine)); err != nil {
		slog.Error("strategist rule swap failed", "doctrine", name, "error", err)
		return
	}
	slog.Info("doctrine switched",
		"from", current,
		"to", name,
		"event", trigger.Kind,
		"tick", trigger.Tick,
		"rationale", doctrine.Rationale,
		"aggression", doctrine.Aggression,
		"buildingProtection", doctrine.BuildingProtection,
		"persistence", doctrine.Persistence,
	)

	s.mu.Lock()
	s.current = name
	s.mu.Unlock()
}
