package model

import (
	"fmt"
	"math"

	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

// Weapon is a catalog weapon resolved against the owner's upgrades.
type Weapon struct {
	Spec     unittype.Weapon
	Damage   int // per attack, hits and upgrades included
	MinRange int
	MaxRange int
}

func (w Weapon) Exists() bool { return w.Spec.Exists() }

func (w Weapon) Hits() int { return max(w.Spec.Hits, 1) }

func (u *Unit) Info() *unittype.Info { return u.Type.Info() }

func (u *Unit) Position() Position { return Position{u.X, u.Y} }

func (u *Unit) IsMe() bool       { return u.Relation == Me }
func (u *Unit) IsEnemy() bool    { return u.Relation == Enemy }
func (u *Unit) IsFriendly() bool { return u.Relation == Me || u.Relation == Ally }

func (u *Unit) Alive() bool  { return u.HP > 0 }
func (u *Unit) Flying() bool { return u.Info().IsFlyer() }

func (u *Unit) MaxHP() int      { return u.Info().HP }
func (u *Unit) MaxShields() int { return u.Info().Shields }

func (u *Unit) String() string {
	return fmt.Sprintf("%s#%d@(%d,%d)", u.Type, u.ID, u.X, u.Y)
}

// Dimensions is the unit's collision box.
func (u *Unit) Dimensions() Rect {
	info := u.Info()
	return Rect{
		Min: Position{u.X - info.Left, u.Y - info.Up},
		Max: Position{u.X + info.Right, u.Y + info.Down},
	}
}

// Distance is the edge-to-edge distance between the two collision boxes,
// the measure weapon ranges are defined against.
func (u *Unit) Distance(o *Unit) int {
	return u.Dimensions().EdgeDistance(o.Dimensions())
}

// DistanceTo is the distance from the collision box to a point.
func (u *Unit) DistanceTo(p Position) int {
	return int(math.Sqrt(float64(u.Dimensions().DistanceSquaredTo(p))))
}

// Stunned units can neither move nor attack this frame.
func (u *Unit) Stunned() bool {
	return u.StasisTimer > 0 || u.LockdownTimer > 0 || u.MaelstromTimer > 0
}

func (u *Unit) CanMove() bool {
	return u.Info().CanMove() && !u.Burrowed && !u.Stunned()
}

// Targetable reports whether anyone could shoot at u right now.
func (u *Unit) Targetable() bool {
	return u.Alive() && !u.Undetected && u.StasisTimer == 0
}

func (u *Unit) GroundWeapon() Weapon {
	return u.resolve(u.Info().Ground, u.Upgrades.GroundWeapons)
}

func (u *Unit) AirWeapon() Weapon {
	return u.resolve(u.Info().Air, u.Upgrades.AirWeapons)
}

func (u *Unit) resolve(spec unittype.Weapon, level int) Weapon {
	if !spec.Exists() {
		return Weapon{}
	}
	w := Weapon{Spec: spec, Damage: spec.DamageAt(level), MinRange: spec.MinRange, MaxRange: spec.MaxRange}
	if u.Upgrades.Range {
		w.MaxRange += rangeUpgradeBonus(u.Type, spec)
	}
	return w
}

func rangeUpgradeBonus(t unittype.Type, spec unittype.Weapon) int {
	switch t {
	case unittype.TerranMarine, unittype.ZergHydralisk:
		return 32
	case unittype.ProtossDragoon:
		return 64
	case unittype.TerranGoliath:
		if spec.Name == t.Info().Air.Name {
			return 96
		}
	}
	return 0
}

// WeaponAgainst picks the weapon u would use on o.
func (u *Unit) WeaponAgainst(o *Unit) Weapon {
	if o.Flying() {
		return u.AirWeapon()
	}
	return u.GroundWeapon()
}

func (u *Unit) HasWeaponAgainst(o *Unit) bool { return u.WeaponAgainst(o).Exists() }

// CooldownAgainst is the remaining cooldown of the weapon u would use on o.
func (u *Unit) CooldownAgainst(o *Unit) int {
	if o.Flying() {
		return u.AirCooldown
	}
	return u.GroundCooldown
}

func (u *Unit) Cooldown() int { return max(u.GroundCooldown, u.AirCooldown) }

func (u *Unit) Armor() int { return u.Info().Armor + u.Upgrades.Armor }

// CanAttack reports whether u is able to fire on o at all.
func (u *Unit) CanAttack(o *Unit) bool {
	return u.Alive() && !u.Stunned() && u.HasWeaponAgainst(o) && o.Targetable()
}

func (u *Unit) InWeaponRange(o *Unit) bool {
	w := u.WeaponAgainst(o)
	if !w.Exists() {
		return false
	}
	d := u.Distance(o)
	return d >= w.MinRange && d <= w.MaxRange
}

// CloseToWeaponRange is InWeaponRange with extra slack on the far edge.
func (u *Unit) CloseToWeaponRange(o *Unit, slack int) bool {
	w := u.WeaponAgainst(o)
	if !w.Exists() {
		return false
	}
	d := u.Distance(o)
	return d >= w.MinRange && d <= w.MaxRange+slack
}

// DamageTo estimates one attack's damage against o, ignoring shields.
// Capped at 128 so a single huge hit does not dominate target scoring.
func (u *Unit) DamageTo(o *Unit) int {
	w := u.WeaponAgainst(o)
	if !w.Exists() {
		return 0
	}
	hits := w.Hits()
	dmg := w.Damage - o.Armor()*hits
	dmg = ScaleDamage(dmg, w.Spec.Type, o.Info().Size)
	return min(128, max(dmg, hits))
}

// ScaleDamage applies the damage-type versus size table.
func ScaleDamage(dmg int, dt unittype.DamageType, size unittype.Size) int {
	switch {
	case dt == unittype.Concussive && size == unittype.Large:
		return dmg / 4
	case dt == unittype.Concussive && size == unittype.Medium:
		return dmg / 2
	case dt == unittype.Explosive && size == unittype.Small:
		return dmg / 2
	case dt == unittype.Explosive && size == unittype.Medium:
		return dmg * 3 / 4
	}
	return dmg
}

// TopSpeed is the current speed in pixels per frame.
func (u *Unit) TopSpeed() float64 {
	speed := u.Info().Speed
	if u.Upgrades.Speed {
		speed *= 1.5
	}
	if u.StimTimer > 0 {
		speed *= 1.5
	}
	if u.EnsnareTimer > 0 {
		speed /= 2
	}
	return speed
}

// FramesToTravel panics for immobile units; callers must check CanMove first.
func (u *Unit) FramesToTravel(dist int) int {
	speed := u.TopSpeed()
	if speed <= 0 {
		panic(fmt.Sprintf("model: FramesToTravel on immobile %s", u))
	}
	return int(math.Ceil(float64(dist) / speed))
}

func (u *Unit) FramesToTurn180() int {
	return 128 / max(u.Info().TurnRadius, 1)
}

// PredictPosition extrapolates the current velocity.
func (u *Unit) PredictPosition(frames int) Position {
	return Position{
		X: u.X + int(u.VX*float64(frames)),
		Y: u.Y + int(u.VY*float64(frames)),
	}
}

func (u *Unit) IsRanged() bool { return u.Info().IsRanged() }
