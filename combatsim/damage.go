package combatsim

import (
	"slices"

	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

const (
	minDamage   Fixed = One / 2
	bounceRange       = 96
)

func scaleDamage(dmg Fixed, kind unittype.DamageType, size unittype.Size) Fixed {
	return Fixed(model.ScaleDamage(int(dmg), kind, size))
}

// ApplyDamage runs shields first, carries any overflow into hull, then applies
// the size table and armor. Each hit always does at least half a point.
func (a *Agent) ApplyDamage(dmg Fixed, kind unittype.DamageType, hits int) {
	if !a.alive || dmg <= 0 {
		return
	}
	if a.shields > 0 {
		a.shields -= dmg
		if a.shields >= 0 {
			return
		}
		dmg = -a.shields
		a.shields = 0
	}
	dmg = scaleDamage(dmg, kind, a.size)
	dmg = max(dmg-a.armor*Fixed(hits), minDamage*Fixed(hits))
	a.health -= dmg
	if a.health <= 0 {
		a.die()
	}
}

// fire resolves one attack from a on enemy.Agents[ti].
func (s *Simulator) fire(a *Agent, own, enemy *Player, ti int) {
	t := &enemy.Agents[ti]
	w := a.weaponFor(t)
	a.cooldown = a.adjustedCooldown(w.cooldown)
	a.sleepTimer = a.stopFrames

	dmg := w.damage
	if !a.melee && !a.flyer && t.elevation > a.elevation {
		dmg /= 2
	}

	switch w.explosion {
	case unittype.RadialSplash:
		s.splash(a, t, w, dmg, own)
		s.splash(a, t, w, dmg, enemy)
	case unittype.EnemySplash:
		s.splash(a, t, w, dmg, enemy)
	case unittype.LineSplash:
		t.ApplyDamage(dmg, w.kind, w.hits)
		s.lineSplash(a, t, w, dmg, enemy)
	case unittype.Bounce:
		s.bounce(t, w, dmg, enemy)
	default:
		t.ApplyDamage(dmg, w.kind, w.hits)
	}
}

// splash hits every live agent of p on the target's layer, with full, half or
// quarter damage by distance from the impact. Burrowed units only take
// the inner ring.
func (s *Simulator) splash(a, t *Agent, w *weapon, dmg Fixed, p *Player) {
	for i := range p.Agents {
		u := &p.Agents[i]
		if !u.alive || u == a || u.flyer != t.flyer {
			continue
		}
		if u == t {
			u.ApplyDamage(dmg, w.kind, w.hits)
			continue
		}
		d := max(isqrt(distSq(u, t))-u.radius, 0)
		switch {
		case d <= w.inner:
			u.ApplyDamage(dmg, w.kind, w.hits)
		case u.burrowed:
		case d <= w.median:
			u.ApplyDamage(dmg/2, w.kind, w.hits)
		case d <= w.outer:
			u.ApplyDamage(dmg/4, w.kind, w.hits)
		}
	}
}

// lineSplash hits enemies in front of the firer whose distance to the
// firing line is within the splash radius.
func (s *Simulator) lineSplash(a, t *Agent, w *weapon, dmg Fixed, enemy *Player) {
	dx, dy := t.x-a.x, t.y-a.y
	length := isqrt(dx*dx + dy*dy)
	if length == 0 {
		return
	}
	limit := w.reach(a, t) + w.inner
	for i := range enemy.Agents {
		u := &enemy.Agents[i]
		if !u.alive || u == t || u.flyer {
			continue
		}
		ux, uy := u.x-a.x, u.y-a.y
		along := (ux*dx + uy*dy) / length
		if along < 0 || along > limit {
			continue
		}
		cross := ux*dy - uy*dx
		if cross < 0 {
			cross = -cross
		}
		if cross/length <= w.inner+u.radius {
			u.ApplyDamage(dmg, w.kind, w.hits)
		}
	}
}

// bounce hits the target and then jumps twice to the nearest other enemy in
// a small box, each jump dealing a third of the previous damage.
func (s *Simulator) bounce(t *Agent, w *weapon, dmg Fixed, enemy *Player) {
	t.ApplyDamage(dmg, w.kind, w.hits)
	hit := []model.Position{t.Position()}
	cur := t
	for range 2 {
		dmg /= 3
		var next *Agent
		best := 0
		for i := range enemy.Agents {
			u := &enemy.Agents[i]
			if !u.alive || abs(u.x-cur.x) > bounceRange || abs(u.y-cur.y) > bounceRange {
				continue
			}
			if slices.Contains(hit, u.Position()) {
				continue
			}
			if d := distSq(u, cur); next == nil || d < best {
				next, best = u, d
			}
		}
		if next == nil {
			return
		}
		next.ApplyDamage(dmg, w.kind, w.hits)
		hit = append(hit, next.Position())
		cur = next
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
