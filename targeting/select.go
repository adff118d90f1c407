// Package targeting assigns every attacking unit of a squad its best enemy.
// Candidates are scored with priority, range and threat heuristics and then
// claimed greedily. Damage already promised by earlier attackers is
// subtracted from a target's remaining health before later attackers score it,
// which is what produces focus fire without overkill.
package targeting

import (
	"cmp"
	"math"
	"slices"

	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

// Weights are the scoring bonuses and thresholds. Positive values are added,
// penalties are subtracted.
type Weights struct {
	PriorityStep      int `yaml:"priority_step"`
	InRangeRanged     int `yaml:"in_range_ranged"`
	InRangeMelee      int `yaml:"in_range_melee"`
	Injured           int `yaml:"injured"`
	Uphill            int `yaml:"uphill"`
	DefenseMatrix     int `yaml:"defense_matrix"`
	CloserToObjective int `yaml:"closer_to_objective"`
	DarkSwarm         int `yaml:"dark_swarm"`
	ThreatInRange     int `yaml:"threat_in_range"`
	ThreatWeInRange   int `yaml:"threat_we_in_range"`
	Threat            int `yaml:"threat"`
	StationarySiege   int `yaml:"stationary_siege"`
	Stationary        int `yaml:"stationary"`
	Braking           int `yaml:"braking"`
	Faster            int `yaml:"faster"`
	DamageType        int `yaml:"damage_type"`
	BunkerSnipe       int `yaml:"bunker_snipe"`

	// FarFromObjective is the distance beyond which chasing filters apply.
	FarFromObjective int `yaml:"far_from_objective"`
	// BehindVanguard drops ground targets whose path to the objective is
	// this much longer than the vanguard's.
	BehindVanguard int `yaml:"behind_vanguard"`
	LatencyBuffer  int `yaml:"latency_buffer"`
	CarrierLeash   int `yaml:"carrier_leash"`
	CarrierRecent  int `yaml:"carrier_recent"`
}

func DefaultWeights() Weights {
	return Weights{
		PriorityStep:      64,
		InRangeRanged:     64,
		InRangeMelee:      160,
		Injured:           160,
		Uphill:            64,
		DefenseMatrix:     128,
		CloserToObjective: 64,
		DarkSwarm:         128,
		ThreatInRange:     192,
		ThreatWeInRange:   128,
		Threat:            96,
		StationarySiege:   48,
		Stationary:        24,
		Braking:           16,
		Faster:            128,
		DamageType:        32,
		BunkerSnipe:       256,
		FarFromObjective:  500,
		BehindVanguard:    700,
		LatencyBuffer:     2,
		CarrierLeash:      11 * 32,
		CarrierRecent:     96,
	}
}

// Selector carries the frame-level context of a selection.
type Selector struct {
	Weights Weights

	Frame            int
	RemainingLatency int
	// Units resolves order targets. Nil disables the lookups that need it.
	Units   *model.Units
	Terrain *model.Terrain
	Paths   model.Paths
	// Cloaked is set when we field a permanently cloaked unit, which makes
	// enemy observers top priority.
	Cloaked bool
	// Sleeping reports units still waiting on a command issued earlier.
	Sleeping func(*model.Unit) bool
}

// Request is one squad's selection problem.
type Request struct {
	// Vanguard anchors the behind-the-front filter. May be nil.
	Vanguard  *model.Unit
	Attackers []*model.Unit
	Targets   []*model.Unit
	Objective model.Position
	// Static only accepts targets already in range.
	Static bool
}

// Assignment pairs an attacker with its target. A nil Target means attack-move
// toward the objective.
type Assignment struct {
	Unit   *model.Unit
	Target *model.Unit
}

type target struct {
	unit      *model.Unit
	priority  int
	health    int
	attackers int
}

type attacker struct {
	unit           *model.Unit
	targets        []*target
	framesToAttack int
	closeTargets   int
}

// SelectTargets returns exactly one assignment per attacker. Sleeping units
// come first in input order, the rest in claim order.
func (s *Selector) SelectTargets(req Request) []Assignment {
	out := make([]Assignment, 0, len(req.Attackers))
	objDist := make(map[int]int)
	candidates := s.behindVanguard(req, objDist)

	targets := make([]*target, 0, len(candidates))
	for _, u := range candidates {
		if !u.Alive() {
			continue
		}
		targets = append(targets, &target{unit: u, priority: s.Priority(u), health: u.HP + u.Shields})
	}
	current := func(u *model.Unit) *target {
		for _, t := range targets {
			if u.OrderTargetID != 0 && t.unit.ID == u.OrderTargetID {
				return t
			}
		}
		return nil
	}

	attackers := make([]*attacker, 0, len(req.Attackers))
	for _, u := range req.Attackers {
		if s.Sleeping != nil && s.Sleeping(u) {
			t := current(u)
			var tu *model.Unit
			if t != nil {
				if u.Cooldown() <= s.RemainingLatency+s.Weights.LatencyBuffer {
					s.dealDamage(t, u)
				}
				tu = t.unit
			}
			out = append(out, Assignment{Unit: u, Target: tu})
			continue
		}
		attackers = append(attackers, s.candidates(u, targets, req, objDist))
	}

	slices.SortFunc(attackers, func(a, b *attacker) int {
		return cmp.Or(
			cmp.Compare(a.framesToAttack, b.framesToAttack),
			cmp.Compare(a.closeTargets, b.closeTargets),
			cmp.Compare(len(a.targets), len(b.targets)),
			cmp.Compare(a.unit.ID, b.unit.ID),
		)
	})

	for _, a := range attackers {
		best := s.best(a, req.Objective)
		if a.unit.Type == unittype.ProtossCarrier {
			if cur := current(a.unit); cur != nil &&
				a.unit.Position().Distance(cur.unit.Position()) < float64(s.Weights.CarrierLeash) &&
				a.unit.LastCommandFrame > s.Frame-s.Weights.CarrierRecent {
				best = cur
			}
		}
		if best == nil {
			out = append(out, Assignment{Unit: a.unit})
			continue
		}
		if a.unit.InWeaponRange(best.unit) {
			s.dealDamage(best, a.unit)
		}
		out = append(out, Assignment{Unit: a.unit, Target: best.unit})
	}
	return out
}

// behindVanguard drops ground targets whose path to the objective is far
// longer than the vanguard's, unless they can shoot the vanguard. Path
// distances it measures are kept in objDist by unit id.
func (s *Selector) behindVanguard(req Request, objDist map[int]int) []*model.Unit {
	if req.Vanguard == nil || req.Vanguard.Flying() {
		return req.Targets
	}
	paths := s.paths()
	vd, ok := paths.Distance(req.Vanguard.Position(), req.Objective)
	if !ok {
		return req.Targets
	}
	out := make([]*model.Unit, 0, len(req.Targets))
	for _, t := range req.Targets {
		if !t.Flying() {
			if d, ok := paths.Distance(t.Position(), req.Objective); ok {
				objDist[t.ID] = d
				if d-vd > s.Weights.BehindVanguard && !t.InWeaponRange(req.Vanguard) {
					continue
				}
			}
		}
		out = append(out, t)
	}
	return out
}

// candidates filters targets for u and finds the ones it can hit soonest.
func (s *Selector) candidates(u *model.Unit, targets []*target, req Request, objDist map[int]int) *attacker {
	a := &attacker{unit: u, framesToAttack: math.MaxInt}
	ranged := u.IsRanged()
	far := u.Position().Distance(req.Objective) > float64(s.Weights.FarFromObjective)
	unitObjDist, unitObjOK := -1, false
	if far && !u.Flying() {
		unitObjDist, unitObjOK = s.paths().Distance(u.Position(), req.Objective)
	}

	type candidate struct {
		t           *target
		distToRange int
	}
	var filtered []candidate
	hasNonBuilding := false
	for _, t := range targets {
		tu := t.unit
		if tu.Type == unittype.ZergLarva || tu.Type == unittype.ZergEgg || !u.CanAttack(tu) {
			continue
		}
		if (ranged || u.Info().IsWorker()) && u.Type != unittype.ProtossReaver && tu.UnderDarkSwarm {
			continue
		}
		if !ranged && (tu.UnderDisruption || tu.UnderStorm) {
			continue
		}
		dist := u.Distance(tu)
		distToRange := max(0, dist-u.WeaponAgainst(tu).MaxRange)
		if distToRange > 0 && (req.Static || s.cliffed(u, tu)) {
			continue
		}
		if far {
			if distToRange > 0 && s.escaping(u, tu) {
				continue
			}
			if u.Flying() == tu.Flying() && (distToRange > 0 || u.Cooldown() > 0 && !tu.InWeaponRange(u)) {
				if td, ok := objDist[tu.ID]; ok && unitObjOK && unitObjDist < td {
					continue
				}
			}
		}
		filtered = append(filtered, candidate{t, distToRange})
		hasNonBuilding = hasNonBuilding || t.priority > buildingPriority
	}

	var soonest []*target
	for _, c := range filtered {
		if c.t.priority < buildingPriority && hasNonBuilding {
			continue
		}
		a.targets = append(a.targets, c.t)
		frames := max(u.Cooldown(), s.framesToReach(u, c.distToRange))
		switch {
		case frames < a.framesToAttack:
			a.framesToAttack = frames
			soonest = append(soonest[:0], c.t)
		case frames == a.framesToAttack:
			soonest = append(soonest, c.t)
		}
	}
	for _, t := range soonest {
		t.attackers++
	}
	a.closeTargets = len(soonest)
	return a
}

func (s *Selector) framesToReach(u *model.Unit, dist int) int {
	if dist <= 0 {
		return s.RemainingLatency + s.Weights.LatencyBuffer
	}
	speed := u.TopSpeed()
	if speed <= 0 {
		return math.MaxInt / 2
	}
	return int(float64(dist)/speed) + s.RemainingLatency + s.Weights.LatencyBuffer
}

// escaping reports a target moving away from u at least as fast as u moves.
func (s *Selector) escaping(u, t *model.Unit) bool {
	if !t.Moving || t.TopSpeed() < u.TopSpeed() {
		return false
	}
	now := u.Position().DistanceSquared(t.Position())
	return u.Position().DistanceSquared(t.PredictPosition(1)) > now
}

// cliffed marks a sieged tank on higher ground, which only units already in
// range can see and hit.
func (s *Selector) cliffed(u, t *model.Unit) bool {
	return t.Type == unittype.TerranSiegeTankSiegeMode && s.height(t) > s.height(u)
}

func (s *Selector) best(a *attacker, objective model.Position) *target {
	u := a.unit
	w := s.Weights
	ranged := u.IsRanged()
	moveFrames := max(0, u.Cooldown()-s.RemainingLatency-w.LatencyBuffer)
	speed := u.TopSpeed()
	objDist := u.Position().Distance(objective)

	var best *target
	bestScore, bestAttackers, bestDist := math.MinInt, 0, math.MaxInt
	for _, t := range a.targets {
		if t.health <= 0 {
			continue
		}
		tu := t.unit
		dist := u.Distance(tu)
		weapon := u.WeaponAgainst(tu)
		rng := weapon.MaxRange
		score := w.PriorityStep*t.priority - max(0, dist-int(float64(moveFrames)*speed)-rng)

		if dist <= rng {
			if ranged {
				score += w.InRangeRanged
			} else {
				score += w.InRangeMelee
			}
		}
		if full := tu.MaxHP() + tu.MaxShields(); full > 0 {
			lost := 1 - float64(t.health)/float64(full)
			score += int(float64(w.Injured) * max(lost, 0))
		}
		if ranged && !u.Flying() && s.height(u) < s.height(tu) {
			score -= w.Uphill
		}
		if tu.DefenseMatrixed {
			score -= w.DefenseMatrix
		}
		if tu.Position().Distance(objective) < objDist {
			score += w.CloserToObjective
		}
		if tu.UnderDarkSwarm {
			score += w.DarkSwarm
		}
		if tu.CanAttack(u) {
			switch {
			case tu.InWeaponRange(u):
				score += w.ThreatInRange
			case u.InWeaponRange(tu):
				score += w.ThreatWeInRange
			default:
				score += w.Threat
			}
		}
		switch {
		case !tu.Moving && (tu.Type == unittype.TerranSiegeTankSiegeMode || tu.Sieging):
			score += w.StationarySiege
		case !tu.Moving:
			score += w.Stationary
		case tu.Braking:
			score += w.Braking
		case tu.TopSpeed() > speed:
			score -= w.Faster
		}
		score += s.damageTypeBonus(weapon.Spec.Type, tu.Info().Size)
		if s.snipeable(u, tu, rng) {
			score += w.BunkerSnipe
		}

		if score > bestScore ||
			score == bestScore && (t.attackers > bestAttackers || t.attackers == bestAttackers && dist < bestDist) {
			best, bestScore, bestAttackers, bestDist = t, score, t.attackers, dist
		}
	}
	return best
}

func (s *Selector) damageTypeBonus(dt unittype.DamageType, size unittype.Size) int {
	switch {
	case dt == unittype.Explosive && size == unittype.Large:
		return s.Weights.DamageType
	case dt == unittype.Concussive && size == unittype.Small:
		return s.Weights.DamageType
	case dt == unittype.Concussive && size == unittype.Large:
		return -s.Weights.DamageType
	}
	return 0
}

// snipeable is a worker servicing a bunker that u can hit without entering
// the bunker's range.
func (s *Selector) snipeable(u, t *model.Unit, rng int) bool {
	if !t.Repairing && !t.Constructing {
		return false
	}
	bunker, ok := s.orderTarget(t)
	if !ok || bunker.Type != unittype.TerranBunker {
		return false
	}
	return u.Position().Distance(t.Position()) <= float64(rng) && !bunker.InWeaponRange(u)
}

// dealDamage books one attack from u against t's remaining health.
func (s *Selector) dealDamage(t *target, u *model.Unit) {
	if t.unit.BeingHealed {
		return
	}
	dmg := u.DamageTo(t.unit)
	if !u.Flying() && u.IsRanged() && s.height(u) < s.height(t.unit) {
		dmg /= 2
	}
	t.health -= dmg
}

func (s *Selector) height(u *model.Unit) int {
	if s.Terrain == nil {
		return 0
	}
	return s.Terrain.GroundHeight(u.Position())
}

func (s *Selector) paths() model.Paths {
	if s.Paths == nil {
		return model.DirectPaths{}
	}
	return s.Paths
}
