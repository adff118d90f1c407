// Package micro moves individual units in and out of fights.
package micro

import (
	"github.com/nstehr/vimy/vimy-tactics/boids"
	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/spatial"
	"github.com/nstehr/vimy/vimy-tactics/telemetry"
)

const (
	neighbourRadius = 300
	personalSpace   = 32
	threatBuffer    = 128
	threatPerSpeed  = 32
	fleeWeight      = 2.0
	fleeClimbWeight = 4.0
	kiteCrowdWeight = 0.3
	kiteClimbWeight = 1.0
	climbRange      = 32
	climbAltitude   = 32
	minMoveSpeed    = 0.5
	significant     = 0.1
	arrivalRadius   = 32
)

// Commander is the slice of order.Issuer micro needs.
type Commander interface {
	MoveTo(u *model.Unit, pos model.Position) error
	Attack(u, target *model.Unit) error
	Stop(u *model.Unit) error
	Sleeping(u *model.Unit) bool
}

type Micro struct {
	Steerer *boids.Steerer
	Index   *spatial.Index
	Orders  Commander
	Sink    telemetry.Sink
}

func (m *Micro) sink() telemetry.Sink {
	if m.Sink == nil {
		return telemetry.Nop{}
	}
	return m.Sink
}

// Flee heads for toward along the ground route, swerving around armed enemies
// by a margin that grows with their speed and range. extra forces join the
// blend once something threatens u; unthreatened it is a plain move. A unit
// already at toward that is still attacking gets stopped.
func (m *Micro) Flee(u *model.Unit, toward model.Position, extra ...boids.Force) error {
	if u.Position().Distance(toward) <= arrivalRadius {
		if u.Attacking && !m.Orders.Sleeping(u) {
			return m.Orders.Stop(u)
		}
		return nil
	}
	var forces []boids.Force
	for o := range m.Index.InRadius(u.Position(), neighbourRadius) {
		switch {
		case o.ID == u.ID:
		case o.Completed && o.IsEnemy() && o.HasWeaponAgainst(u):
			dist := personalSpace + threatBuffer + threatPerSpeed*o.TopSpeed() + float64(o.WeaponAgainst(u).MaxRange)
			forces = append(forces, boids.Avoid(u, o.Position(), dist, fleeWeight))
		default:
			forces = append(forces, boids.Separation(u, o, personalSpace, fleeWeight))
		}
	}
	threatened := false
	for i := range forces {
		forces[i].Weight /= float64(len(forces))
		threatened = threatened || forces[i].Weight > significant
	}
	if !threatened {
		return m.Orders.MoveTo(u, toward)
	}
	forces = append(forces, extra...)
	if !u.Flying() {
		forces = append(forces, m.Steerer.Climb(u, climbRange, climbAltitude, fleeClimbWeight))
	}
	forces = append(forces, m.Steerer.FollowPath(u, toward, 1))
	pos, ok := m.Steerer.Positioning(u, forces)
	if !ok {
		return nil
	}
	return m.Orders.MoveTo(u, pos)
}

// Engage attacks enemy, or kites away while the weapon reloads when u can
// afford the turn and either outranges the enemy or is its target.
func (m *Micro) Engage(u, enemy *model.Unit) error {
	m.sink().UnitLog(u.ID, "ENG %d", enemy.ID)
	if !m.shouldKite(u, enemy) {
		return m.Orders.Attack(u, enemy)
	}
	m.sink().UnitLog(u.ID, "kiting cd %d", u.Cooldown())

	pos := u.Position()
	area := model.Rect{Min: pos, Max: pos}.Expand(neighbourRadius)
	var forces []boids.Force
	for o := range m.Index.InEnvelope(area) {
		forces = append(forces, boids.Separation(u, o, personalSpace, kiteCrowdWeight))
	}
	forces = append(forces, boids.Separation(u, enemy, float64(u.WeaponAgainst(enemy).MaxRange), 1))
	if !u.Flying() {
		forces = append(forces, m.Steerer.Climb(u, climbRange, climbAltitude, kiteClimbWeight))
	}
	target, ok := m.Steerer.Positioning(u, forces)
	if !ok {
		return nil
	}
	return m.Orders.MoveTo(u, target)
}

func (m *Micro) shouldKite(u, enemy *model.Unit) bool {
	if u.Cooldown() <= 2+u.FramesToTurn180() || m.Orders.Sleeping(u) {
		return false
	}
	mine, theirs := u.WeaponAgainst(enemy), enemy.WeaponAgainst(u)
	outranged := u.TopSpeed() > minMoveSpeed &&
		theirs.MaxRange < mine.MaxRange &&
		(theirs.Spec.Cooldown >= mine.Spec.Cooldown ||
			enemy.TopSpeed() <= u.TopSpeed() && enemy.TopSpeed() > minMoveSpeed)
	return outranged || enemy.OrderTargetID == u.ID
}
