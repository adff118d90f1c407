package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nstehr/vimy/vimy-tactics/boids"
	"github.com/nstehr/vimy/vimy-tactics/cluster"
	"github.com/nstehr/vimy/vimy-tactics/config"
	"github.com/nstehr/vimy/vimy-tactics/ipc"
	"github.com/nstehr/vimy/vimy-tactics/journal"
	"github.com/nstehr/vimy/vimy-tactics/micro"
	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/order"
	"github.com/nstehr/vimy/vimy-tactics/rules"
	"github.com/nstehr/vimy/vimy-tactics/skirmish"
	"github.com/nstehr/vimy/vimy-tactics/spatial"
	"github.com/nstehr/vimy/vimy-tactics/squad"
	"github.com/nstehr/vimy/vimy-tactics/targeting"
	"github.com/nstehr/vimy/vimy-tactics/telemetry"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

// Agent owns the tactical decisions for a single player session.
type Agent struct {
	Player string
	Race   string
	Map    string

	Config config.Config
	Engine *rules.Engine
	Squad  *squad.Squad
	Orders *order.Issuer

	// Optional collaborators; nil disables them.
	Hub        *telemetry.Hub
	Journal    *journal.Journal
	Strategist *Strategist

	terrain   *model.Terrain
	paths     model.Paths
	evaluator *skirmish.Evaluator
	prev      *stateSnapshot
}

func New(sink order.Sink, cfg config.Config, engine *rules.Engine) *Agent {
	return &Agent{
		Config: cfg,
		Engine: engine,
		Squad:  squad.New(cfg.Squad, engine, model.Position{}),
		Orders: order.NewIssuer(sink),
	}
}

// Terrain is the map of the session, nil before the first hello or state.
func (a *Agent) Terrain() *model.Terrain { return a.terrain }

// SetTerrain installs the static map and the path finder built on it.
func (a *Agent) SetTerrain(t *model.Terrain) {
	a.terrain = t
	a.paths = model.NewTilePaths(t)
	a.evaluator = skirmish.NewEvaluator(a.Config.Skirmish, t, a.paths)
}

// HandleHello completes the handshake so the bridge knows the core is ready.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	a.Player = hello.Player
	a.Race = hello.Race
	a.Map = hello.Map
	if hello.Terrain != nil {
		t, err := hello.Terrain.Terrain()
		if err != nil {
			return nil, fmt.Errorf("hello terrain: %w", err)
		}
		a.SetTerrain(t)
	}
	slog.Info("player identified", "player", a.Player, "race", a.Race, "map", a.Map, "terrain", a.terrain != nil)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok"})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

func (a *Agent) HandleGameState(env ipc.Envelope) (*ipc.Envelope, error) {
	var gs model.GameState
	if err := json.Unmarshal(env.Data, &gs); err != nil {
		return nil, fmt.Errorf("unmarshal GameState: %w", err)
	}

	rep, err := a.Tick(context.Background(), gs)
	if err != nil {
		return nil, err
	}
	slog.Debug("tick handled",
		"tick", gs.Tick,
		"units", len(gs.Units),
		"skirmishes", len(rep.Decisions),
		"attacking", rep.Attacking,
		"fallingBack", rep.FallingBack,
		"failed", rep.Failed,
		"issued", a.Orders.Issued(),
	)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok", Issued: a.Orders.Issued()})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

func (a *Agent) sink() telemetry.Sink {
	if a.Hub == nil {
		return telemetry.Nop{}
	}
	return a.Hub
}

// Tick runs the whole pipeline for one game state: cluster the units,
// evaluate every cluster, pick a stance per cluster and order the army.
func (a *Agent) Tick(ctx context.Context, gs model.GameState) (squad.Report, error) {
	if a.terrain == nil {
		slog.Warn("no terrain from hello, assuming open ground", "width", gs.MapWidth, "height", gs.MapHeight)
		a.SetTerrain(model.OpenTerrain(max(gs.MapWidth, 1)*4, max(gs.MapHeight, 1)*4))
	}
	sink := a.sink()

	units := model.NewUnits(gs.Units)
	idx := spatial.New(units.All())
	clusters := cluster.DBSCAN(idx, a.Config.Cluster.Eps, a.Config.Cluster.MinPts)
	a.Squad.Retarget(units, gs.EnemyBase)

	skirmishes, err := a.evaluator.EvaluateAll(ctx, clusters, a.Squad.Target)
	if err != nil {
		return squad.Report{}, fmt.Errorf("evaluate tick %d: %w", gs.Tick, err)
	}

	a.Orders.Begin(gs.Tick, units)
	steerer := &boids.Steerer{Terrain: a.terrain, Paths: a.paths, Sink: sink, Draw: a.Config.DrawForces}
	selector := &targeting.Selector{
		Weights:          a.Config.Targeting,
		Frame:            gs.Tick,
		RemainingLatency: gs.RemainingLatencyFrames,
		Units:            units,
		Terrain:          a.terrain,
		Paths:            a.paths,
		Cloaked:          fieldsCloaked(units),
		Sleeping:         a.Orders.Sleeping,
	}
	rep := a.Squad.Update(squad.Tick{
		Frame:      gs.Tick,
		Units:      units,
		Index:      idx,
		Skirmishes: skirmishes,
		Pool:       squad.NewPool(units.All()),
		Orders:     a.Orders,
		Steerer:    steerer,
		Micro:      &micro.Micro{Steerer: steerer, Index: idx, Orders: a.Orders, Sink: sink},
		Selector:   selector,
		Paths:      a.paths,
		Sink:       sink,
	})

	snap := takeSnapshot(units, skirmishes, rep.BaseInDanger)
	events := detectEvents(gs.Tick, snap, a.prev)
	a.prev = &snap
	for _, ev := range events {
		slog.Info("game event", "kind", ev.Kind, "tick", ev.Tick, "detail", ev.Detail)
	}
	if a.Strategist != nil {
		a.Strategist.Notify(events)
	}
	a.record(ctx, gs.Tick, skirmishes, rep, events)

	if a.Hub != nil {
		for i := range skirmishes {
			drawSkirmish(sink, &skirmishes[i])
		}
		a.Hub.Flush(gs.Tick)
	}
	return rep, nil
}

// record journals the decisions and events of a tick. Journal failures are
// logged and never stop the army.
func (a *Agent) record(ctx context.Context, tick int, skirmishes []skirmish.Skirmish, rep squad.Report, events []Event) {
	if a.Journal == nil {
		return
	}
	entries := make([]journal.Entry, 0, len(rep.Decisions))
	for i, d := range rep.Decisions {
		entries = append(entries, journal.NewEntry(tick, skirmishes[i], d))
	}
	if err := a.Journal.Record(ctx, entries); err != nil {
		slog.Error("journal record failed", "tick", tick, "error", err)
	}
	for _, ev := range events {
		if err := a.Journal.RecordEvent(ctx, journal.Event{Frame: ev.Tick, Kind: string(ev.Kind), Detail: ev.Detail}); err != nil {
			slog.Error("journal event failed", "kind", ev.Kind, "error", err)
		}
	}
}

// fieldsCloaked reports whether we own a permanently cloaked unit.
func fieldsCloaked(units *model.Units) bool {
	for _, u := range units.Mine() {
		if u.Info().Has(unittype.PermanentlyCloaked) {
			return true
		}
	}
	return false
}

// drawSkirmish boxes the cluster, green when we would fight it.
func drawSkirmish(sink telemetry.Sink, s *skirmish.Skirmish) {
	if len(s.Cluster.Units) == 0 {
		return
	}
	lo, hi := s.Cluster.Units[0].Position(), s.Cluster.Units[0].Position()
	for _, u := range s.Cluster.Units[1:] {
		p := u.Position()
		lo = model.Position{X: min(lo.X, p.X), Y: min(lo.Y, p.Y)}
		hi = model.Position{X: max(hi.X, p.X), Y: max(hi.Y, p.Y)}
	}
	c := telemetry.Green
	if s.CombatEvaluation < 0 {
		c = telemetry.Red
	}
	corners := []model.Position{lo, {X: hi.X, Y: lo.Y}, hi, {X: lo.X, Y: hi.Y}}
	for i, p := range corners {
		sink.Line(p, corners[(i+1)%len(corners)], c)
	}
	sink.Text(lo, fmt.Sprintf("eval %d", s.CombatEvaluation))
	if s.Vanguard != nil {
		sink.Circle(s.Vanguard.Position(), 16, telemetry.Yellow)
	}
}
