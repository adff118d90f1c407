package combatsim

import (
	"fmt"

	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

// Per-frame regeneration, in Fixed units.
const (
	hpRegen     Fixed = 4
	shieldRegen Fixed = 7
	energyRegen Fixed = 8
	plagueTick  Fixed = 128
)

// Stim costs 10 hp and lasts 37 timer ticks of 8 frames.
const (
	stimCost   Fixed = 10 << fixedShift
	stimFrames       = 37 * 8
)

var (
	boostedFloor = FromFloat(3 + 1.0/3)
	scoutBoosted = FromFloat(6 + 2.0/3)
)

// Priority orders targets inside the simulation.
type Priority uint8

const (
	Low Priority = iota
	Medium
	Highest
)

func priorityOf(t unittype.Type) Priority {
	info := t.Info()
	switch {
	case t == unittype.ProtossInterceptor || info.Has(unittype.Spawn):
		return Low
	case info.IsBuilding() && !info.CanAttack():
		return Medium
	}
	return Highest
}

// Agent is one simulated unit.
type Agent struct {
	ID   int
	Type unittype.Type

	x, y   int
	vx, vy int
	radius int

	elevation int

	baseSpeed    Fixed
	speed        Fixed
	speedFactor  Fixed
	speedUpgrade bool

	health     Fixed
	maxHealth  Fixed
	shields    Fixed
	maxShields Fixed
	energy     Fixed
	maxEnergy  Fixed
	armor      Fixed
	size       unittype.Size

	cooldown        int
	cooldownUpgrade bool
	stopFrames      int
	stimTimer       int
	ensnareTimer    int
	stasisTimer     int
	sleepTimer      int
	plagueTimer     int

	ground weapon
	air    weapon

	priority      Priority
	attackTarget  int
	restoreTarget int
	hpRepairRate  Fixed

	alive            bool
	healedThisFrame  bool
	regenerates      bool
	flyer            bool
	organic          bool
	mechanical       bool
	building         bool
	healer           bool
	repairer         bool
	suicider         bool
	stimmable        bool
	kiter            bool
	burrowed         bool
	burrowedAttacker bool
	undetected       bool
	underDarkSwarm   bool
	melee            bool
}

// AgentFromType builds a full-health agent. It panics on None since there is no
// sensible unit to simulate.
func AgentFromType(t unittype.Type) Agent {
	if !t.Valid() {
		panic(fmt.Sprintf("combatsim: AgentFromType(%v)", t))
	}
	info := t.Info()
	a := Agent{
		Type:             t,
		radius:           (info.Left + info.Right + info.Up + info.Down) / 4,
		baseSpeed:        FromFloat(info.Speed),
		speedFactor:      One,
		health:           FromInt(info.HP),
		maxHealth:        FromInt(info.HP),
		shields:          FromInt(info.Shields),
		maxShields:       FromInt(info.Shields),
		energy:           FromInt(info.MaxEnergy),
		maxEnergy:        FromInt(info.MaxEnergy),
		armor:            FromInt(info.Armor),
		size:             info.Size,
		stopFrames:       info.StopFrames,
		ground:           newWeapon(info.Ground, 0, 0),
		air:              newWeapon(info.Air, 0, 0),
		priority:         priorityOf(t),
		attackTarget:     -1,
		restoreTarget:    -1,
		alive:            true,
		flyer:            info.IsFlyer(),
		organic:          info.Has(unittype.Organic),
		regenerates:      info.Has(unittype.RegeneratesHP),
		mechanical:       info.Has(unittype.Mechanical),
		building:         info.IsBuilding(),
		healer:           info.Has(unittype.Healer),
		repairer:         info.Has(unittype.Repairer),
		suicider:         info.Has(unittype.Suicider),
		stimmable:        info.Has(unittype.Stimmable),
		kiter:            info.Has(unittype.Kiter),
		burrowedAttacker: info.Has(unittype.BurrowedAttacker),
		melee:            !info.IsRanged(),
	}
	if info.BuildTime > 0 {
		a.hpRepairRate = max(a.maxHealth/Fixed(info.BuildTime), 1)
	}
	a.updateSpeed()
	return a
}

// NewAgent builds an agent from a frame snapshot, carrying over damage,
// timers and upgrades.
func NewAgent(u *model.Unit) Agent {
	a := AgentFromType(u.Type)
	a.ID = u.ID
	a.x, a.y = u.X, u.Y
	a.health = FromInt(max(u.HP, 0))
	a.shields = FromInt(max(u.Shields, 0))
	a.energy = FromInt(max(u.Energy, 0))
	a.armor = FromInt(u.Armor())
	a.cooldown = u.Cooldown()
	a.stimTimer = u.StimTimer
	a.ensnareTimer = u.EnsnareTimer
	a.stasisTimer = u.StasisTimer
	a.sleepTimer = max(u.LockdownTimer, u.MaelstromTimer)
	a.plagueTimer = u.PlagueTimer
	a.burrowed = u.Burrowed
	a.undetected = u.Undetected
	a.underDarkSwarm = u.UnderDarkSwarm
	a.speedUpgrade = u.Upgrades.Speed
	a.cooldownUpgrade = u.Upgrades.Cooldown
	a.ground = fromModelWeapon(u.GroundWeapon())
	a.air = fromModelWeapon(u.AirWeapon())
	a.alive = u.HP > 0
	a.updateSpeed()
	return a
}

func (a *Agent) SetPosition(p model.Position) { a.x, a.y = p.X, p.Y }

func (a *Agent) SetElevation(level int) { a.elevation = level }

// SetSpeedFactor scales movement speed; the skirmish scenarios use it to
// model a fleeing or a holding side.
func (a *Agent) SetSpeedFactor(f Fixed) {
	a.speedFactor = f
	a.updateSpeed()
}

func (a *Agent) Position() model.Position { return model.Position{X: a.x, Y: a.y} }

func (a *Agent) Alive() bool { return a.alive }

// Health is clamped to [0, max]; regeneration may briefly overshoot internally.
func (a *Agent) Health() int { return min(max(a.health, 0), a.maxHealth).Int() }

func (a *Agent) Shields() int { return min(max(a.shields, 0), a.maxShields).Int() }

func (a *Agent) Energy() int { return min(max(a.energy, 0), a.maxEnergy).Int() }

func (a *Agent) Speed() Fixed { return a.speed }

func (a *Agent) IsBuilding() bool { return a.building }

func (a *Agent) die() {
	a.alive = false
	a.health = 0
	a.vx, a.vy = 0, 0
}

// updateSpeed folds stim, speed upgrades and ensnare into one modifier.
func (a *Agent) updateSpeed() {
	speed := a.baseSpeed
	m := 0
	if a.stimTimer > 0 {
		m++
	}
	if a.speedUpgrade {
		m++
	}
	if a.ensnareTimer > 0 {
		m--
	}
	switch {
	case m < 0:
		speed /= 2
	case m > 0 && a.Type == unittype.ProtossScout:
		speed = scoutBoosted
	case m > 0:
		speed = max(speed*3/2, boostedFloor)
	}
	if a.baseSpeed == 0 {
		speed = 0
	}
	a.speed = speed.Mul(a.speedFactor)
}

// stim trades health for the speed and cooldown bonus. Only agents above half
// health that are not already stimmed qualify.
func (a *Agent) stim() {
	if !a.stimmable || a.stimTimer > 0 || a.health <= a.maxHealth/2 {
		return
	}
	a.health -= stimCost
	a.stimTimer = stimFrames
	a.updateSpeed()
}

// adjustedCooldown applies the same modifier bucket to weapon cooldown.
func (a *Agent) adjustedCooldown(base int) int {
	m := 0
	if a.stimTimer > 0 {
		m++
	}
	if a.cooldownUpgrade {
		m++
	}
	if a.ensnareTimer > 0 {
		m--
	}
	switch {
	case m < 0:
		return max(base+base/4, 5)
	case m > 0:
		return base / 2
	}
	return base
}

func (a *Agent) weaponFor(t *Agent) *weapon {
	if t.flyer {
		return &a.air
	}
	return &a.ground
}

// canTarget reports whether a could ever fire on t this frame.
func (a *Agent) canTarget(t *Agent) bool {
	if !t.alive || t.stasisTimer > 0 || t.undetected {
		return false
	}
	if t.underDarkSwarm && !a.melee && !a.suicider {
		return false
	}
	return a.weaponFor(t).exists()
}

func distSq(a, b *Agent) int {
	dx, dy := a.x-b.x, a.y-b.y
	return dx*dx + dy*dy
}

// tieDirection picks a stable unit vector for zero-length moves.
func tieDirection(id int) (int, int) {
	dirs := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	h := uint32(id) * 2654435761
	d := dirs[h>>29]
	return d[0], d[1]
}
