package combatsim

import (
	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

type weapon struct {
	damage    Fixed // per attack, all hits included
	hits      int
	minRange  int
	maxRange  int
	cooldown  int
	kind      unittype.DamageType
	explosion unittype.Explosion
	inner     int
	median    int
	outer     int
}

func newWeapon(spec unittype.Weapon, level, rangeBonus int) weapon {
	if !spec.Exists() {
		return weapon{}
	}
	return weapon{
		damage:    FromInt(spec.DamageAt(level)),
		hits:      max(spec.Hits, 1),
		minRange:  spec.MinRange,
		maxRange:  spec.MaxRange + rangeBonus,
		cooldown:  spec.Cooldown,
		kind:      spec.Type,
		explosion: spec.Explosion,
		inner:     spec.InnerSplash,
		median:    spec.MedianSplash,
		outer:     spec.OuterSplash,
	}
}

func fromModelWeapon(w model.Weapon) weapon {
	if !w.Exists() {
		return weapon{}
	}
	out := newWeapon(w.Spec, 0, 0)
	out.damage = FromInt(w.Damage)
	out.minRange = w.MinRange
	out.maxRange = w.MaxRange
	return out
}

func (w *weapon) exists() bool { return w.damage > 0 }

// reach converts an edge-to-edge range into a center-to-center distance.
func (w *weapon) reach(a, t *Agent) int { return w.maxRange + a.radius + t.radius }

func (w *weapon) inRange(a, t *Agent, dsq int) bool {
	r := w.reach(a, t)
	if dsq > r*r {
		return false
	}
	if w.minRange > 0 {
		m := w.minRange + a.radius + t.radius
		return dsq >= m*m
	}
	return true
}
