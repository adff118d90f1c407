package combatsim

import (
	"math/rand/v2"
	"testing"

	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		name        string
		typ         unittype.Type
		noShields   bool
		dmg         Fixed
		kind        unittype.DamageType
		wantHealth  int
		wantShields int
	}{
		{"shields absorb", unittype.ProtossZealot, false, FromInt(40), unittype.Normal, 100, 20},
		{"overflow carries into hull", unittype.ProtossZealot, false, FromInt(70), unittype.Normal, 91, 0},
		{"armor floors at half a point", unittype.ZergLarva, false, FromInt(1), unittype.Normal, 24, 0},
		{"concussive vs large", unittype.ProtossDragoon, true, FromInt(20), unittype.Concussive, 96, 0},
		{"explosive vs small", unittype.ZergZergling, false, FromInt(20), unittype.Explosive, 25, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AgentFromType(tt.typ)
			if tt.noShields {
				a.shields = 0
			}
			a.ApplyDamage(tt.dmg, tt.kind, 1)
			if a.Health() != tt.wantHealth || a.Shields() != tt.wantShields {
				t.Errorf("after %v: hp %d shields %d, want %d %d", tt.dmg.Float(), a.Health(), a.Shields(), tt.wantHealth, tt.wantShields)
			}
		})
	}
}

func TestApplyDamageNeverHeals(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	all := unittype.All()
	for range 2000 {
		a := AgentFromType(all[rng.IntN(len(all))])
		h, s := a.health, a.shields
		a.ApplyDamage(Fixed(rng.IntN(int(FromInt(200)))), unittype.DamageType(rng.IntN(4)), 1+rng.IntN(4))
		if a.health > h || a.shields > s {
			t.Fatalf("%v gained health or shields from damage", a.Type)
		}
	}
}

func TestEnemySplashSparesOwnSide(t *testing.T) {
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.ProtossArchon, 100, 100), agentAt(2, unittype.ZergZergling, 200, 105)}},
		Player{Agents: []Agent{agentAt(3, unittype.ZergZergling, 200, 100)}},
	)
	s.fire(&s.A.Agents[0], &s.A, &s.B, 0)

	if got := s.A.Agents[1].Health(); got != 35 {
		t.Errorf("friendly zergling hp = %d, want 35", got)
	}
	if got := s.B.Agents[0].Health(); got >= 35 {
		t.Errorf("target hp = %d, want it damaged", got)
	}
}

func TestRadialSplashHitsBothSides(t *testing.T) {
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.TerranSiegeTankSiegeMode, 0, 100), agentAt(2, unittype.ZergZergling, 300, 105)}},
		Player{Agents: []Agent{agentAt(3, unittype.ZergZergling, 300, 100)}},
	)
	s.fire(&s.A.Agents[0], &s.A, &s.B, 0)

	if s.A.Agents[1].Health() >= 35 {
		t.Error("radial splash spared the firer's own unit")
	}
	if s.A.Agents[0].Health() != 150 {
		t.Error("firer damaged itself")
	}
}

func TestLineSplash(t *testing.T) {
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.ZergLurker, 0, 0)}},
		Player{Agents: []Agent{
			agentAt(2, unittype.ZergZergling, 100, 0),
			agentAt(3, unittype.ZergZergling, 150, 0),
			agentAt(4, unittype.ZergZergling, 100, 150),
		}},
	)
	s.fire(&s.A.Agents[0], &s.A, &s.B, 0)

	for i, want := range []int{15, 15, 35} {
		if got := s.B.Agents[i].Health(); got != want {
			t.Errorf("zergling %d hp = %d, want %d", i, got, want)
		}
	}
}

func TestBounce(t *testing.T) {
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.ZergMutalisk, 0, 0)}},
		Player{Agents: []Agent{
			agentAt(2, unittype.ZergZergling, 50, 0),
			agentAt(3, unittype.ZergZergling, 80, 0),
			agentAt(4, unittype.ZergZergling, 110, 0),
			agentAt(5, unittype.ZergZergling, 500, 0),
		}},
	)
	s.fire(&s.A.Agents[0], &s.A, &s.B, 0)

	for i, want := range []int{26, 32, 34, 35} {
		if got := s.B.Agents[i].Health(); got != want {
			t.Errorf("zergling %d hp = %d, want %d", i, got, want)
		}
	}
}

func TestUpdateSpeed(t *testing.T) {
	tests := []struct {
		name  string
		typ   unittype.Type
		setup func(*Agent)
		want  Fixed
	}{
		{"base", unittype.TerranMarine, func(*Agent) {}, 1024},
		{"stim", unittype.TerranMarine, func(a *Agent) { a.stimTimer = 10 }, 1536},
		{"ensnare", unittype.TerranMarine, func(a *Agent) { a.ensnareTimer = 10 }, 512},
		{"stim and ensnare cancel", unittype.TerranMarine, func(a *Agent) { a.stimTimer, a.ensnareTimer = 10, 10 }, 1024},
		{"boost floor", unittype.ZergOverlord, func(a *Agent) { a.speedUpgrade = true }, boostedFloor},
		{"scout", unittype.ProtossScout, func(a *Agent) { a.speedUpgrade = true }, scoutBoosted},
		{"immobile stays immobile", unittype.TerranSiegeTankSiegeMode, func(a *Agent) { a.speedUpgrade = true }, 0},
		{"speed factor", unittype.TerranMarine, func(a *Agent) { a.speedFactor = FromFloat(0.1) }, 104},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AgentFromType(tt.typ)
			tt.setup(&a)
			a.updateSpeed()
			if a.Speed() != tt.want {
				t.Errorf("speed = %d, want %d", a.Speed(), tt.want)
			}
		})
	}
}

func TestAdjustedCooldown(t *testing.T) {
	a := AgentFromType(unittype.TerranMarine)
	if got := a.adjustedCooldown(15); got != 15 {
		t.Errorf("plain cooldown = %d, want 15", got)
	}
	a.stimTimer = 5
	if got := a.adjustedCooldown(15); got != 7 {
		t.Errorf("stimmed cooldown = %d, want 7", got)
	}
	a.stimTimer, a.ensnareTimer = 0, 5
	if got := a.adjustedCooldown(15); got != 18 {
		t.Errorf("ensnared cooldown = %d, want 18", got)
	}
	if got := a.adjustedCooldown(2); got != 5 {
		t.Errorf("ensnared short cooldown = %d, want 5", got)
	}
}

func TestPlagueNeverKills(t *testing.T) {
	m := agentAt(1, unittype.TerranMarine, 0, 0)
	m.health = FromInt(1)
	m.plagueTimer = 100
	s := New(Player{Agents: []Agent{m}}, Player{})
	for range 20 {
		s.Step()
	}
	if a := &s.A.Agents[0]; !a.Alive() || a.health <= 0 {
		t.Errorf("plague killed the marine: alive=%v health=%d", a.Alive(), a.health)
	}
}
