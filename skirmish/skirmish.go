// Package skirmish predicts the outcome of every cluster's potential fight by
// running the combat simulator under three hypotheses: we flee, both sides
// fight, and the enemy holds its ground.
package skirmish

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"github.com/nstehr/vimy/vimy-tactics/cluster"
	"github.com/nstehr/vimy/vimy-tactics/combatsim"
	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultFrames            = 8 * 24
	DefaultFrameSkip         = 1
	DefaultOverrunCap        = DefaultFrames * 4
	DefaultFleeSpeedFactor   = 1.0
	DefaultDefendSpeedFactor = 0.1
)

// Options tune the simulations behind an evaluation.
type Options struct {
	Frames            int     `yaml:"frames"`
	FrameSkip         int     `yaml:"frame_skip"`
	OverrunCap        int     `yaml:"overrun_cap"`
	FleeSpeedFactor   float64 `yaml:"flee_speed_factor"`
	DefendSpeedFactor float64 `yaml:"defend_speed_factor"`
	// Workers bounds how many clusters EvaluateAll simulates at once. Zero
	// means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

func DefaultOptions() Options {
	return Options{
		Frames:            DefaultFrames,
		FrameSkip:         DefaultFrameSkip,
		OverrunCap:        DefaultOverrunCap,
		FleeSpeedFactor:   DefaultFleeSpeedFactor,
		DefendSpeedFactor: DefaultDefendSpeedFactor,
	}
}

// Outcome is what one simulated scenario cost each side.
type Outcome struct {
	MyDead             int `json:"my_dead"`
	EnemyDead          int `json:"enemy_dead"`
	MyBuildingsDead    int `json:"my_buildings_dead"`
	EnemyBuildingsDead int `json:"enemy_buildings_dead"`
	Frames             int `json:"frames"`
}

// Delta is positive when the enemy lost more value than we did.
func (o Outcome) Delta() int { return o.EnemyDead - o.MyDead }

// Skirmish is the evaluation of one cluster.
type Skirmish struct {
	Cluster        cluster.Cluster
	Fleeing        Outcome
	Fighting       Outcome
	EnemyDefending Outcome
	// CombatEvaluation is the worse of the two fight deltas plus what we would
	// lose anyway by running.
	CombatEvaluation int
	Engaged          bool
	// PotentialBuildingLoss and PotentialEnemyBuildingLoss are the values of
	// each side's buildings lost in the fight scenario. Only computed when
	// Engaged.
	PotentialBuildingLoss      int
	PotentialEnemyBuildingLoss int
	// Vanguard is our combat unit closest to the objective, nil if the
	// cluster has none.
	Vanguard *model.Unit
}

// ShouldFight reports whether the evaluation clears threshold.
func (s *Skirmish) ShouldFight(threshold int) bool { return s.CombatEvaluation >= threshold }

// AgentValue is what losing one unit of type t is worth.
func AgentValue(t unittype.Type) int {
	info := t.Info()
	v := (2*info.Price.Minerals + 3*info.Price.Gas) / 2
	if info.Has(unittype.TwoInEgg) {
		v /= 2
	}
	if info.IsWorker() {
		v = v * 3 / 2
	}
	return v
}

// Engaged reports whether any of our units and any enemy unit in units are
// already within weapon range of one another.
func Engaged(units []*model.Unit) bool {
	for _, u := range units {
		if !u.IsMe() || !u.Alive() {
			continue
		}
		for _, e := range units {
			if e.IsEnemy() && e.Alive() && (e.InWeaponRange(u) || u.InWeaponRange(e)) {
				return true
			}
		}
	}
	return false
}

// Evaluator holds the collaborators shared by every evaluation of a frame.
type Evaluator struct {
	Options Options
	// Terrain drives walkability and elevation. Nil is an open flat map.
	Terrain *model.Terrain
	// Paths measures distance to the objective. Nil means straight lines.
	Paths model.Paths
}

func NewEvaluator(opts Options, terrain *model.Terrain, paths model.Paths) *Evaluator {
	if paths == nil {
		paths = model.DirectPaths{}
	}
	return &Evaluator{Options: opts, Terrain: terrain, Paths: paths}
}

// Evaluate simulates the three scenarios for c.
func (e *Evaluator) Evaluate(c cluster.Cluster, objective model.Position) Skirmish {
	mine, enemy := e.players(c.Units)

	fleeing := clonePlayer(mine, combatsim.Retreater, e.Options.FleeSpeedFactor)
	defending := clonePlayer(enemy, combatsim.Attacker, e.Options.DefendSpeedFactor)

	s := Skirmish{
		Cluster:        c,
		Fleeing:        e.run(fleeing, clonePlayer(enemy, combatsim.Attacker, 1)),
		Fighting:       e.run(clonePlayer(mine, combatsim.Attacker, 1), clonePlayer(enemy, combatsim.Attacker, 1)),
		EnemyDefending: e.run(clonePlayer(mine, combatsim.Attacker, 1), defending),
		Engaged:        Engaged(c.Units),
		Vanguard:       e.vanguard(c.Units, objective),
	}
	s.CombatEvaluation = min(s.Fighting.Delta(), s.EnemyDefending.Delta()) + s.Fleeing.MyDead
	if s.Engaged {
		s.PotentialBuildingLoss = s.Fighting.MyBuildingsDead
		s.PotentialEnemyBuildingLoss = s.Fighting.EnemyBuildingsDead
	}
	return s
}

// EvaluateAll evaluates every cluster concurrently. Results keep the order of
// clusters and equal what sequential Evaluate calls would return.
func (e *Evaluator) EvaluateAll(ctx context.Context, clusters []cluster.Cluster, objective model.Position) ([]Skirmish, error) {
	out := make([]Skirmish, len(clusters))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cmp.Or(e.Options.Workers, runtime.GOMAXPROCS(0)))
	for i := range clusters {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = e.Evaluate(clusters[i], objective)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// players converts the cluster into simulator sides. Allies fight with us;
// neutrals and units the simulator cannot model are left out.
func (e *Evaluator) players(units []*model.Unit) (mine, enemy combatsim.Player) {
	for _, u := range units {
		if !u.Alive() || !u.Type.Valid() {
			continue
		}
		a := combatsim.NewAgent(u)
		if e.Terrain != nil {
			a.SetElevation(e.Terrain.GroundHeight(u.Position()))
		}
		switch {
		case u.IsFriendly():
			mine.Add(a)
		case u.IsEnemy():
			enemy.Add(a)
		}
	}
	return mine, enemy
}

func clonePlayer(p combatsim.Player, script combatsim.Script, speedFactor float64) combatsim.Player {
	out := combatsim.Player{Agents: slices.Clone(p.Agents), Script: script}
	if speedFactor != 1 {
		f := combatsim.FromFloat(speedFactor)
		for i := range out.Agents {
			out.Agents[i].SetSpeedFactor(f)
		}
	}
	return out
}

func (e *Evaluator) run(mine, enemy combatsim.Player) Outcome {
	sim := combatsim.New(mine, enemy)
	sim.FrameSkip = e.Options.FrameSkip
	sim.Cap = e.Options.OverrunCap
	if e.Terrain != nil {
		sim.Walkable = e.Terrain.IsWalkable
	}
	o := Outcome{Frames: sim.SimulateFor(e.Options.Frames)}
	for i := range sim.A.Agents {
		a := &sim.A.Agents[i]
		if a.Alive() {
			continue
		}
		v := AgentValue(a.Type)
		o.MyDead += v
		if a.IsBuilding() {
			o.MyBuildingsDead += v
		}
	}
	for i := range sim.B.Agents {
		a := &sim.B.Agents[i]
		if a.Alive() {
			continue
		}
		v := AgentValue(a.Type)
		o.EnemyDead += v
		if a.IsBuilding() {
			o.EnemyBuildingsDead += v
		}
	}
	return o
}

// vanguard picks our mobile armed unit with the shortest path to objective,
// lowest id first on ties.
func (e *Evaluator) vanguard(units []*model.Unit, objective model.Position) *model.Unit {
	var best *model.Unit
	bestDist := 0
	for _, u := range units {
		info := u.Info()
		if !u.IsMe() || !u.Alive() || info.IsWorker() || info.IsBuilding() || !info.CanAttack() {
			continue
		}
		d, ok := e.Paths.Distance(u.Position(), objective)
		if !ok {
			continue
		}
		if best == nil || d < bestDist || (d == bestDist && u.ID < best.ID) {
			best, bestDist = u, d
		}
	}
	return best
}
