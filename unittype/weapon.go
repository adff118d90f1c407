package unittype

// DamageType selects the size-versus-damage scaling applied to a hit.
type DamageType uint8

const (
	Normal DamageType = iota
	Explosive
	Concussive
	Independent
)

// Explosion describes how a weapon's damage spreads around the primary target.
type Explosion uint8

const (
	Single Explosion = iota
	// RadialSplash hits everyone around the impact, including the firer's side.
	RadialSplash
	// EnemySplash hits only the target's side.
	EnemySplash
	// LineSplash hits enemies along the line from firer to target.
	LineSplash
	// Bounce jumps to up to two more nearby enemies, losing two thirds each jump.
	Bounce
)

// Weapon is a static weapon description. Damage is per hit before upgrades.
type Weapon struct {
	Name         string
	Damage       int
	DamageBonus  int
	Hits         int
	Cooldown     int
	MinRange     int
	MaxRange     int
	Type         DamageType
	Explosion    Explosion
	InnerSplash  int
	MedianSplash int
	OuterSplash  int
}

// Exists reports whether w describes a real weapon.
func (w Weapon) Exists() bool { return w.Name != "" }

// DamageAt returns the full per-attack damage with the given upgrade level.
func (w Weapon) DamageAt(level int) int {
	hits := max(w.Hits, 1)
	return (w.Damage + w.DamageBonus*level) * hits
}
