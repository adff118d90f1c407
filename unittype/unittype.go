// Package unittype is the static Brood War unit catalog: prices, hit points,
// dimensions, movement and weapons for every type the tactics layer reasons about.
package unittype

import (
	"fmt"

	"github.com/nstehr/vimy/vimy-tactics/gms"
)

type Race uint8

const (
	Neutral Race = iota
	Terran
	Zerg
	Protoss
)

// Size is the unit size class used by the damage scaling table.
type Size uint8

const (
	SizeIndependent Size = iota
	Small
	Medium
	Large
)

type Flags uint32

const (
	Building Flags = 1 << iota
	Worker
	Flyer
	Organic
	Mechanical
	Robotic
	Spellcaster
	Detector
	TwoInEgg
	RegeneratesHP
	PermanentlyCloaked
	BurrowedAttacker
	Kiter
	Healer
	Suicider
	Stimmable
	Repairer
	ResourceDepot
	Spawn
)

// Info is everything the catalog knows about a type.
type Info struct {
	Name       string
	Race       Race
	Price      gms.Gms
	HP         int
	Shields    int
	Armor      int
	MaxEnergy  int
	Size       Size
	Speed      float64 // pixels per frame
	TurnRadius int
	Left       int
	Up         int
	Right      int
	Down       int
	Ground     Weapon
	Air        Weapon
	BuildTime  int
	StopFrames int
	Flags      Flags
}

func (i *Info) Has(f Flags) bool { return i.Flags&f != 0 }

func (i *Info) IsBuilding() bool { return i.Has(Building) }
func (i *Info) IsWorker() bool   { return i.Has(Worker) }
func (i *Info) IsFlyer() bool    { return i.Has(Flyer) }
func (i *Info) CanMove() bool    { return i.Speed > 0 }

// CanAttack reports whether the type carries any weapon.
func (i *Info) CanAttack() bool { return i.Ground.Exists() || i.Air.Exists() }

// IsRanged is true for anything that does not fight in melee.
func (i *Info) IsRanged() bool {
	return i.Ground.MaxRange > 32 || i.IsFlyer()
}

// Type identifies a unit type.
type Type uint8

const (
	None Type = iota

	TerranMarine
	TerranFirebat
	TerranMedic
	TerranGhost
	TerranSCV
	TerranVulture
	TerranSpiderMine
	TerranSiegeTankTankMode
	TerranSiegeTankSiegeMode
	TerranGoliath
	TerranWraith
	TerranDropship
	TerranScienceVessel
	TerranValkyrie
	TerranCommandCenter
	TerranSupplyDepot
	TerranRefinery
	TerranBarracks
	TerranAcademy
	TerranFactory
	TerranArmory
	TerranEngineeringBay
	TerranBunker
	TerranMissileTurret

	ZergLarva
	ZergEgg
	ZergDrone
	ZergZergling
	ZergHydralisk
	ZergLurker
	ZergUltralisk
	ZergOverlord
	ZergMutalisk
	ZergGuardian
	ZergDevourer
	ZergScourge
	ZergDefiler
	ZergInfestedTerran
	ZergHatchery
	ZergLair
	ZergExtractor
	ZergSpawningPool
	ZergHydraliskDen
	ZergCreepColony
	ZergSunkenColony
	ZergSporeColony

	ProtossProbe
	ProtossZealot
	ProtossDragoon
	ProtossHighTemplar
	ProtossDarkTemplar
	ProtossArchon
	ProtossReaver
	ProtossShuttle
	ProtossObserver
	ProtossCorsair
	ProtossScout
	ProtossCarrier
	ProtossInterceptor
	ProtossArbiter
	ProtossNexus
	ProtossPylon
	ProtossAssimilator
	ProtossGateway
	ProtossForge
	ProtossCyberneticsCore
	ProtossPhotonCannon
	ProtossShieldBattery

	numTypes
)

// Info returns the catalog entry. Unknown values map to the None entry.
func (t Type) Info() *Info {
	if t >= numTypes {
		return &catalog[None]
	}
	return &catalog[t]
}

func (t Type) String() string { return t.Info().Name }

// Price of one unit of the type. Two-in-egg types cost half their pair price.
func (t Type) Price() gms.Gms {
	p := t.Info().Price
	if t.Info().Has(TwoInEgg) {
		return gms.Gms{Minerals: p.Minerals / 2, Gas: p.Gas / 2, Supply: p.Supply}
	}
	return p
}

// Valid reports whether t is a known, non-None type.
func (t Type) Valid() bool { return t > None && t < numTypes }

// All returns every known type except None.
func All() []Type {
	out := make([]Type, 0, numTypes-1)
	for t := None + 1; t < numTypes; t++ {
		out = append(out, t)
	}
	return out
}

var byName = func() map[string]Type {
	m := make(map[string]Type, numTypes)
	for t := None; t < numTypes; t++ {
		m[catalog[t].Name] = t
	}
	return m
}()

// Parse looks a type up by its engine name, e.g. "Zerg_Zergling".
func Parse(name string) (Type, error) {
	t, ok := byName[name]
	if !ok {
		return None, fmt.Errorf("unknown unit type %q", name)
	}
	return t, nil
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
