package agent

import (
	"context"
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/nstehr/vimy/vimy-tactics/config"
	"github.com/nstehr/vimy/vimy-tactics/ipc"
	"github.com/nstehr/vimy/vimy-tactics/journal"
	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/rules"
	"github.com/nstehr/vimy/vimy-tactics/telemetry"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

type command struct {
	kind   string
	unit   int
	target int
	pos    model.Position
}

type fakeSink struct{ sent []command }

func (f *fakeSink) Move(id int, to model.Position) error {
	f.sent = append(f.sent, command{kind: ipc.TypeMove, unit: id, pos: to})
	return nil
}

func (f *fakeSink) Attack(id, target int) error {
	f.sent = append(f.sent, command{kind: ipc.TypeAttack, unit: id, target: target})
	return nil
}

func (f *fakeSink) AttackPosition(id int, at model.Position) error {
	f.sent = append(f.sent, command{kind: ipc.TypeAttackMove, unit: id, pos: at})
	return nil
}

func (f *fakeSink) Stop(id int) error {
	f.sent = append(f.sent, command{kind: ipc.TypeStop, unit: id})
	return nil
}

func newAgent(t *testing.T) (*Agent, *fakeSink) {
	t.Helper()
	cfg := config.Default()
	engine, err := rules.NewEngine(rules.CompileDoctrine(cfg.Doctrine))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	sink := &fakeSink{}
	return New(sink, cfg, engine), sink
}

func place(u model.Unit, x, y int) model.Unit {
	u.X, u.Y = x, y
	return u
}

// skirmishState has six zealots next to a lone zergling, far from our nexus.
func skirmishState(tick int) model.GameState {
	units := []model.Unit{place(unit(1, unittype.ProtossNexus, model.Me), 100, 100)}
	for i := range 6 {
		units = append(units, place(unit(10+i, unittype.ProtossZealot, model.Me), 600+20*(i%3), 600+20*(i/3)))
	}
	units = append(units, place(unit(50, unittype.ZergZergling, model.Enemy), 690, 610))
	return model.GameState{
		Tick:      tick,
		Units:     units,
		MapWidth:  64,
		MapHeight: 64,
		EnemyBase: &model.Position{X: 1800, Y: 1800},
	}
}

func envelope(t *testing.T, msgType string, data any) ipc.Envelope {
	t.Helper()
	env, err := ipc.NewEnvelope(msgType, data)
	if err != nil {
		t.Fatalf("NewEnvelope failed: %v", err)
	}
	return env
}

func TestHandleHelloBuildsTerrain(t *testing.T) {
	a, _ := newAgent(t)
	hello := ipc.HelloMessage{
		Player: "bot",
		Race:   "Protoss",
		Map:    "Fighting Spirit",
		Terrain: &ipc.TerrainData{
			WalkCols: 8,
			WalkRows: 4,
			Walkable: strings.Repeat("11110000", 4),
		},
	}
	resp, err := a.HandleHello(envelope(t, ipc.TypeHello, hello))
	if err != nil {
		t.Fatalf("HandleHello failed: %v", err)
	}
	if resp == nil || resp.Type != ipc.TypeAck {
		t.Fatalf("response = %+v, want ack", resp)
	}
	if a.Player != "bot" || a.Race != "Protoss" || a.Map != "Fighting Spirit" {
		t.Errorf("identity = %q %q %q", a.Player, a.Race, a.Map)
	}
	if a.Terrain() == nil || a.Terrain().IsWalkable(model.Pos(40, 8)) || !a.Terrain().IsWalkable(model.Pos(8, 8)) {
		t.Error("terrain not installed from hello")
	}
}

func TestHandleHelloRejectsBadTerrain(t *testing.T) {
	a, _ := newAgent(t)
	hello := ipc.HelloMessage{Player: "bot", Terrain: &ipc.TerrainData{WalkCols: 4, WalkRows: 4, Walkable: "1"}}
	if _, err := a.HandleHello(envelope(t, ipc.TypeHello, hello)); err == nil {
		t.Error("expected error for malformed terrain")
	}
}

func TestTickAttacksWinnableSkirmish(t *testing.T) {
	a, sink := newAgent(t)
	rep, err := a.Tick(context.Background(), skirmishState(24))
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if a.Terrain() == nil {
		t.Fatal("Tick did not fall back to open terrain")
	}
	if len(rep.Decisions) != 1 {
		t.Fatalf("decisions = %+v, want one skirmish", rep.Decisions)
	}
	if d := rep.Decisions[0]; d.Stance != rules.Attack || d.Evaluation <= 0 {
		t.Errorf("decision = %+v, want attack with a positive evaluation", d)
	}
	if rep.BaseInDanger {
		t.Error("base reported in danger")
	}

	hit := false
	for _, c := range sink.sent {
		if c.unit < 10 || c.unit > 15 {
			t.Errorf("command for non-army unit: %+v", c)
		}
		if c.kind == ipc.TypeAttack && c.target == 50 {
			hit = true
		}
	}
	if !hit {
		t.Errorf("no zealot attacked the zergling: %+v", sink.sent)
	}
	if a.Orders.Issued() != len(sink.sent) {
		t.Errorf("Issued = %d, sent %d", a.Orders.Issued(), len(sink.sent))
	}
}

func TestTickWithoutBaseIssuesNothing(t *testing.T) {
	a, sink := newAgent(t)
	gs := skirmishState(24)
	gs.Units = gs.Units[1:]
	rep, err := a.Tick(context.Background(), gs)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if len(sink.sent) != 0 || len(rep.Decisions) != 0 {
		t.Errorf("sent %+v, decisions %+v; want nothing", sink.sent, rep.Decisions)
	}
}

func TestTickCancelled(t *testing.T) {
	a, sink := newAgent(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.Tick(ctx, skirmishState(24)); err == nil {
		t.Error("expected error from cancelled tick")
	}
	if len(sink.sent) != 0 {
		t.Errorf("cancelled tick sent %+v", sink.sent)
	}
}

func TestHandleGameStateAcksIssuedCount(t *testing.T) {
	a, sink := newAgent(t)
	resp, err := a.HandleGameState(envelope(t, ipc.TypeGameState, skirmishState(24)))
	if err != nil {
		t.Fatalf("HandleGameState failed: %v", err)
	}
	var ack ipc.AckMessage
	if err := json.Unmarshal(resp.Data, &ack); err != nil {
		t.Fatalf("unmarshal ack: %v", err)
	}
	if ack.Status != "ok" || ack.Issued != len(sink.sent) || ack.Issued == 0 {
		t.Errorf("ack = %+v, sent %d", ack, len(sink.sent))
	}

	if _, err := a.HandleGameState(ipc.Envelope{Type: ipc.TypeGameState, Data: json.RawMessage(`{"tick":"x"}`)}); err == nil {
		t.Error("expected error for malformed game state")
	}
}

func TestTickJournalsDecisionsAndEvents(t *testing.T) {
	ctx := context.Background()
	a, _ := newAgent(t)
	j, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("journal.Open failed: %v", err)
	}
	defer j.Close()
	a.Journal = j

	quiet := skirmishState(10)
	quiet.Units = quiet.Units[:len(quiet.Units)-1]
	if _, err := a.Tick(ctx, quiet); err != nil {
		t.Fatalf("first Tick failed: %v", err)
	}
	if _, err := a.Tick(ctx, skirmishState(34)); err != nil {
		t.Fatalf("second Tick failed: %v", err)
	}

	entries, err := j.Entries(ctx, j.Session())
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	var attacks int
	for _, e := range entries {
		if e.Frame == 34 && e.Stance == rules.Attack {
			attacks++
		}
	}
	if attacks != 1 {
		t.Errorf("entries = %+v, want one attack decision at frame 34", entries)
	}

	events, err := j.Events(ctx, j.Session())
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if !slices.ContainsFunc(events, func(e journal.Event) bool { return e.Kind == string(EventFirstContact) && e.Frame == 34 }) {
		t.Errorf("events = %+v, want first_contact at 34", events)
	}
}

func TestTickFlushesTelemetry(t *testing.T) {
	a, _ := newAgent(t)
	a.Hub = telemetry.NewHub()
	defer a.Hub.Close()
	if _, err := a.Tick(context.Background(), skirmishState(24)); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	// Flush hands the frame to viewers and leaves the recorder empty.
	if f := a.Hub.Take(25); len(f.Shapes) != 0 {
		t.Errorf("recorder kept %d shapes after flush", len(f.Shapes))
	}
}

func TestStrategistSwitchesDoctrine(t *testing.T) {
	cfg := config.Default()
	engine, err := rules.NewEngine(rules.CompileDoctrine(cfg.Doctrine))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	turtle := rules.Doctrine{Name: "Turtle", BuildingProtection: 1}
	s := NewStrategist(engine, cfg.Doctrine, []rules.Doctrine{turtle}, map[string]string{
		string(EventArmyDevastated): "Turtle",
		string(EventFirstContact):   "Nowhere",
	})

	s.Notify([]Event{{Kind: EventFirstContact, Tick: 5}})
	s.evaluate()
	if s.Current() != cfg.Doctrine.Name {
		t.Fatalf("Current = %q after an event without a reaction", s.Current())
	}

	s.Notify([]Event{{Kind: EventArmyDevastated, Tick: 9}, {Kind: EventEngagementEnded, Tick: 9}})
	s.evaluate()
	if s.Current() != "Turtle" {
		t.Fatalf("Current = %q, want Turtle", s.Current())
	}
	if !slices.ContainsFunc(engine.Rules(), func(r *rules.Rule) bool { return r.Name == "guard-buildings" }) {
		t.Error("engine rules were not swapped to the turtle doctrine")
	}
}

func TestStrategistStart(t *testing.T) {
	cfg := config.Default()
	engine, err := rules.NewEngine(rules.CompileDoctrine(cfg.Doctrine))
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	s := NewStrategist(engine, cfg.Doctrine, []rules.Doctrine{{Name: "Rush", Aggression: 1}},
		map[string]string{string(EventBaseInDanger): "Rush"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	s.Notify([]Event{{Kind: EventBaseInDanger, Tick: 1}})
	deadline := time.Now().Add(2 * time.Second)
	for s.Current() != "Rush" && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if s.Current() != "Rush" {
		t.Errorf("Current = %q, want Rush", s.Current())
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
