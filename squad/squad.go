// Package squad turns skirmish stances into unit orders: units of lost
// fights fall back, the rest pick targets and engage.
package squad

import (
	"errors"
	"log/slog"

	"github.com/nstehr/vimy/vimy-tactics/boids"
	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/order"
	"github.com/nstehr/vimy/vimy-tactics/rules"
	"github.com/nstehr/vimy/vimy-tactics/skirmish"
	"github.com/nstehr/vimy/vimy-tactics/spatial"
	"github.com/nstehr/vimy/vimy-tactics/targeting"
	"github.com/nstehr/vimy/vimy-tactics/telemetry"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

// Config holds the squad's distances and steering weights.
type Config struct {
	BaseDangerRadius int     `yaml:"base_danger_radius"`
	EngageBuffer     int     `yaml:"engage_buffer"`
	NeighbourRadius  int     `yaml:"neighbour_radius"`
	FanOutRadius     int     `yaml:"fan_out_radius"`
	CohesionFrames   int     `yaml:"cohesion_frames"`
	CohesionWeight   float64 `yaml:"cohesion_weight"`
}

func DefaultConfig() Config {
	return Config{
		BaseDangerRadius: 300,
		EngageBuffer:     256,
		NeighbourRadius:  300,
		FanOutRadius:     64,
		CohesionFrames:   24,
		CohesionWeight:   0.1,
	}
}

// Micro is the per-unit fighting and retreating behavior the squad
// delegates to.
type Micro interface {
	Engage(u, enemy *model.Unit) error
	Flee(u *model.Unit, toward model.Position, extra ...boids.Force) error
}

// Tick is everything Update needs from the current frame.
type Tick struct {
	Frame      int
	Units      *model.Units
	Index      *spatial.Index
	Skirmishes []skirmish.Skirmish
	Pool       *Pool
	Orders     *order.Issuer
	Steerer    *boids.Steerer
	Micro      Micro
	Selector   *targeting.Selector
	Paths      model.Paths
	Sink       telemetry.Sink
}

// Decision records the stance taken for one skirmish.
type Decision struct {
	VanguardID int          `json:"vanguard_id"`
	Stance     rules.Stance `json:"stance"`
	Rule       string       `json:"rule"`
	Evaluation int          `json:"evaluation"`
	Units      int          `json:"units"`
}

// Report summarises one Update.
type Report struct {
	BaseInDanger bool
	Target       model.Position
	Decisions    []Decision
	FallingBack  int
	Attacking    int
	Failed       int
}

// Squad is our single army. Target is where it is heading.
type Squad struct {
	Target model.Position
	Config Config
	Rules  *rules.Engine

	base         *model.Position
	baseInDanger bool
	lastStance   map[int]rules.Stance
}

func New(cfg Config, engine *rules.Engine, target model.Position) *Squad {
	return &Squad{Target: target, Config: cfg, Rules: engine, lastStance: make(map[int]rules.Stance)}
}

// Retarget picks this tick's objective: our base while an armed ground enemy
// is near it, else the enemy base when known, else the previous target.
func (s *Squad) Retarget(units *model.Units, enemyBase *model.Position) model.Position {
	s.base = nil
	s.baseInDanger = false
	for _, u := range units.Mine() {
		if u.Completed && u.Alive() && u.Info().Has(unittype.ResourceDepot) {
			p := u.Position()
			s.base = &p
			break
		}
	}
	if s.base != nil {
		r := s.Config.BaseDangerRadius
		for _, e := range units.Enemies() {
			// Overlords and other unarmed scouts are no threat to the base.
			if e.Alive() && e.Info().Ground.Exists() && e.Position().DistanceSquared(*s.base) < r*r {
				s.baseInDanger = true
				break
			}
		}
	}
	switch {
	case s.baseInDanger:
		s.Target = *s.base
	case enemyBase != nil:
		s.Target = *enemyBase
	}
	return s.Target
}

func (s *Squad) BaseInDanger() bool { return s.baseInDanger }

// Update decides a stance per skirmish and orders every unit it claims.
// Retarget must have run for this tick. Without a base of ours nothing happens.
func (s *Squad) Update(t Tick) Report {
	rep := Report{BaseInDanger: s.baseInDanger, Target: s.Target}
	if s.base == nil {
		slog.Debug("squad idle, no base")
		return rep
	}
	sink := t.Sink
	if sink == nil {
		sink = telemetry.Nop{}
	}

	var fallBackers, attackers, holders []*model.Unit
	stances := make(map[int]rules.Stance, len(t.Skirmishes))
	for i := range t.Skirmishes {
		sk := &t.Skirmishes[i]
		env := rules.RuleEnv{Skirmish: sk, BaseInDanger: s.baseInDanger, Frame: t.Frame}
		vanguardID := 0
		if sk.Vanguard != nil {
			vanguardID = sk.Vanguard.ID
			env.LastStance = string(s.lastStance[vanguardID])
		}
		d := s.Rules.Decide(env)
		if vanguardID != 0 {
			stances[vanguardID] = d.Stance
		}
		claimed := 0
		for _, u := range sk.Cluster.Units {
			if !u.IsMe() || !u.Alive() {
				continue
			}
			info := u.Info()
			switch d.Stance {
			case rules.FallBack:
				if info.CanMove() && t.Pool.Claim(u) {
					fallBackers = append(fallBackers, u)
					claimed++
				}
			case rules.Attack, rules.Hold:
				if !info.CanAttack() || info.IsWorker() || !t.Pool.Claim(u) {
					continue
				}
				claimed++
				if d.Stance == rules.Hold {
					holders = append(holders, u)
				} else {
					attackers = append(attackers, u)
				}
			}
		}
		rep.Decisions = append(rep.Decisions, Decision{
			VanguardID: vanguardID,
			Stance:     d.Stance,
			Rule:       d.Rule,
			Evaluation: sk.CombatEvaluation,
			Units:      claimed,
		})
	}
	s.lastStance = stances

	vanguard := s.vanguard(t)
	if vanguard != nil {
		sink.Line(vanguard.Position(), s.Target, telemetry.Blue)
	}

	for _, u := range fallBackers {
		if err := s.fallBack(t, u, vanguard); err != nil {
			s.failed(&rep, u, err)
		}
	}
	rep.FallingBack = len(fallBackers)

	enemies := t.Units.Filter(func(u *model.Unit) bool { return u.IsEnemy() && u.Alive() })
	for _, group := range []struct {
		units  []*model.Unit
		static bool
	}{{attackers, false}, {holders, true}} {
		if len(group.units) == 0 {
			continue
		}
		solution := t.Selector.SelectTargets(targeting.Request{
			Vanguard:  vanguard,
			Attackers: group.units,
			Targets:   enemies,
			Objective: s.Target,
			Static:    group.static,
		})
		for _, a := range solution {
			if err := s.attack(t, a, group.static); err != nil {
				s.failed(&rep, a.Unit, err)
			}
		}
		rep.Attacking += len(group.units)
	}
	return rep
}

func (s *Squad) failed(rep *Report, u *model.Unit, err error) {
	if errors.Is(err, order.ErrBusy) {
		return
	}
	rep.Failed++
	slog.Debug("unit order failed", "unit", u.ID, "error", err)
}

// vanguard is our completed armed unit with the shortest path to the target.
func (s *Squad) vanguard(t Tick) *model.Unit {
	paths := t.Paths
	if paths == nil {
		paths = model.DirectPaths{}
	}
	var best *model.Unit
	bestDist := 0
	for _, u := range t.Units.Mine() {
		if !u.Completed || !u.Alive() || !u.Info().CanAttack() {
			continue
		}
		d, ok := paths.Distance(u.Position(), s.Target)
		if !ok {
			continue
		}
		if best == nil || d < bestDist || d == bestDist && u.ID < best.ID {
			best, bestDist = u, d
		}
	}
	return best
}

// fallBack hands u to micro for the retreat: the vanguard heads home and
// everyone else regroups on it, pulled toward nearby friends.
func (s *Squad) fallBack(t Tick, u, vanguard *model.Unit) error {
	var cohesion []boids.Force
	for o := range t.Index.InEnvelope(s.around(u)) {
		if o.ID != u.ID && o.IsMe() {
			cohesion = append(cohesion, boids.Cohesion(u, o, s.Config.CohesionFrames, s.Config.CohesionWeight))
		}
	}
	rally := *s.base
	if vanguard != nil && u.ID != vanguard.ID {
		rally = vanguard.Position()
	}
	return t.Micro.Flee(u, rally, cohesion...)
}

// attack engages a close target, fans out toward a distant one and
// attack-moves to the objective without one. Holders never walk off.
func (s *Squad) attack(t Tick, a targeting.Assignment, static bool) error {
	u, target := a.Unit, a.Target
	if target == nil {
		if static || u.Attacking {
			return nil
		}
		return t.Orders.AttackPosition(u, s.Target)
	}
	if static || u.Distance(target) < s.Config.EngageBuffer+u.WeaponAgainst(target).MaxRange {
		return t.Micro.Engage(u, target)
	}
	var forces []boids.Force
	for o := range t.Index.InEnvelope(s.around(u)) {
		switch {
		case o.IsEnemy():
			forces = append(forces, boids.Cohesion(u, o, s.Config.CohesionFrames, 1))
		case o.ID != u.ID:
			forces = append(forces, boids.Separation(u, o, float64(s.Config.FanOutRadius), 1))
		}
	}
	if pos, ok := t.Steerer.Positioning(u, forces); ok && pos != u.Position() {
		return t.Orders.MoveTo(u, pos)
	}
	return t.Orders.Attack(u, target)
}

func (s *Squad) around(u *model.Unit) model.Rect {
	p := u.Position()
	return model.Rect{Min: p, Max: p}.Expand(s.Config.NeighbourRadius)
}
