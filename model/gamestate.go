package model

import (
	"fmt"
	"slices"

	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

// GameState is one frame's snapshot as pushed by the BWAPI bridge.
type GameState struct {
	Tick                   int    `json:"tick"`
	LatencyFrames          int    `json:"latencyFrames"`
	RemainingLatencyFrames int    `json:"remainingLatencyFrames"`
	Units                  []Unit `json:"units"`
	// MapWidth and MapHeight count 32px tiles.
	MapWidth  int       `json:"mapWidth"`
	MapHeight int       `json:"mapHeight"`
	Base      *Position `json:"base,omitempty"`
	EnemyBase *Position `json:"enemyBase,omitempty"`
}

// Relation is the owner of a unit as seen from our player.
type Relation uint8

const (
	Neutral Relation = iota
	Me
	Ally
	Enemy
)

var relationNames = [...]string{Neutral: "neutral", Me: "me", Ally: "ally", Enemy: "enemy"}

func (r Relation) String() string {
	if int(r) < len(relationNames) {
		return relationNames[r]
	}
	return fmt.Sprintf("relation(%d)", r)
}

func (r Relation) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Relation) UnmarshalText(b []byte) error {
	for i, name := range relationNames {
		if name == string(b) {
			*r = Relation(i)
			return nil
		}
	}
	return fmt.Errorf("unknown relation %q", b)
}

// Upgrades are the owner's research levels that apply to a unit.
type Upgrades struct {
	GroundWeapons int  `json:"groundWeapons"`
	AirWeapons    int  `json:"airWeapons"`
	Armor         int  `json:"armor"`
	Shields       int  `json:"shields"`
	Speed         bool `json:"speed"`
	Range         bool `json:"range"`
	Cooldown      bool `json:"cooldown"`
}

type Unit struct {
	ID       int           `json:"id"`
	Type     unittype.Type `json:"type"`
	Relation Relation      `json:"relation"`
	X        int           `json:"x"`
	Y        int           `json:"y"`
	VX       float64       `json:"vx"`
	VY       float64       `json:"vy"`

	HP      int `json:"hp"`
	Shields int `json:"shields"`
	Energy  int `json:"energy"`

	GroundCooldown int `json:"groundCooldown"`
	AirCooldown    int `json:"airCooldown"`
	StimTimer      int `json:"stimTimer"`
	EnsnareTimer   int `json:"ensnareTimer"`
	StasisTimer    int `json:"stasisTimer"`
	LockdownTimer  int `json:"lockdownTimer"`
	MaelstromTimer int `json:"maelstromTimer"`
	PlagueTimer    int `json:"plagueTimer"`

	Completed       bool `json:"completed"`
	Burrowed        bool `json:"burrowed"`
	Undetected      bool `json:"undetected"`
	Powered         bool `json:"powered"`
	UnderDarkSwarm  bool `json:"underDarkSwarm"`
	UnderStorm      bool `json:"underStorm"`
	UnderDisruption bool `json:"underDisruptionWeb"`
	DefenseMatrixed bool `json:"defenseMatrixed"`
	BeingHealed     bool `json:"beingHealed"`
	Repairing       bool `json:"repairing"`
	Constructing    bool `json:"constructing"`
	Attacking       bool `json:"attacking"`
	Moving          bool `json:"moving"`
	Braking         bool `json:"braking"`
	// Sieging is set while a tank is switching modes in either direction.
	Sieging   bool `json:"sieging"`
	Idle      bool `json:"idle"`
	Gathering bool `json:"gathering"`

	TargetID         int       `json:"targetId"`
	OrderTargetID    int       `json:"orderTargetId"`
	TargetPos        *Position `json:"targetPos,omitempty"`
	LastCommandFrame int       `json:"lastCommandFrame"`
	LastAttackFrame  int       `json:"lastAttackFrame"`
	Interceptors     int       `json:"interceptors"`
	Upgrades         Upgrades  `json:"upgrades"`
}

// Units indexes a frame's units by id. Order of All follows the snapshot.
type Units struct {
	all  []*Unit
	byID map[int]*Unit
}

func NewUnits(units []Unit) *Units {
	us := &Units{
		all:  make([]*Unit, len(units)),
		byID: make(map[int]*Unit, len(units)),
	}
	for i := range units {
		u := &units[i]
		us.all[i] = u
		us.byID[u.ID] = u
	}
	return us
}

func (us *Units) Get(id int) (*Unit, bool) {
	u, ok := us.byID[id]
	return u, ok
}

func (us *Units) All() []*Unit { return us.all }
func (us *Units) Len() int     { return len(us.all) }

// Filter returns the units matching keep, in snapshot order.
func (us *Units) Filter(keep func(*Unit) bool) []*Unit {
	return slices.DeleteFunc(slices.Clone(us.all), func(u *Unit) bool { return !keep(u) })
}

func (us *Units) Mine() []*Unit    { return us.Filter((*Unit).IsMe) }
func (us *Units) Enemies() []*Unit { return us.Filter((*Unit).IsEnemy) }

// Target resolves the unit u is currently shooting at, if any is known.
func (us *Units) Target(u *Unit) (*Unit, bool) {
	if u.TargetID == 0 {
		return nil, false
	}
	return us.Get(u.TargetID)
}

// OrderTarget resolves the unit u was last ordered to act upon.
func (us *Units) OrderTarget(u *Unit) (*Unit, bool) {
	if u.OrderTargetID == 0 {
		return nil, false
	}
	return us.Get(u.OrderTargetID)
}
