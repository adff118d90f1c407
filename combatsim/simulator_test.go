package combatsim

import (
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"

	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

func agentAt(id int, t unittype.Type, x, y int) Agent {
	a := AgentFromType(t)
	a.ID = id
	a.SetPosition(model.Pos(x, y))
	return a
}

func TestMeleeKillsDamagedBuilding(t *testing.T) {
	pylon := NewAgent(&model.Unit{ID: 2, Type: unittype.ProtossPylon, X: 164, Y: 100, HP: 40})
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.ProtossZealot, 100, 100)}},
		Player{Agents: []Agent{pylon}},
	)
	s.SimulateFor(96)

	if s.B.Alive() != 0 {
		t.Errorf("pylon survived with %d hp after %d frames", s.B.Agents[0].Health(), s.Frame())
	}
	if s.A.Alive() != 1 {
		t.Error("zealot died against an unarmed building")
	}
}

func TestTenZealotsBeatThreeDarkTemplars(t *testing.T) {
	var zealots, templars Player
	for i := range 5 {
		zealots.Add(agentAt(i+1, unittype.ProtossZealot, 160, 180+i*30))
		zealots.Add(agentAt(i+6, unittype.ProtossZealot, 240, 180+i*30))
	}
	for i := range 3 {
		templars.Add(agentAt(100+i, unittype.ProtossDarkTemplar, 200, 200+i*40))
	}
	s := New(zealots, templars)
	s.SimulateFor(128)

	if s.B.Alive() != 0 {
		t.Errorf("%d dark templars still alive after %d frames", s.B.Alive(), s.Frame())
	}
	if lost := 10 - s.A.Alive(); lost > 3 {
		t.Errorf("lost %d zealots, want at most 3", lost)
	}
}

func TestBlockedTerrainNobodyDies(t *testing.T) {
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.ZergZergling, 100, 100)}},
		Player{Agents: []Agent{agentAt(2, unittype.ZergSunkenColony, 1000, 100)}},
	)
	s.Walkable = func(model.Position) bool { return false }
	s.SimulateFor(128)

	if s.A.Alive() != 1 || s.B.Alive() != 1 {
		t.Errorf("alive = %d/%d, want 1/1", s.A.Alive(), s.B.Alive())
	}
	if x := s.A.Agents[0].Position().X; x <= 100 {
		t.Errorf("zergling did not advance at all (x=%d)", x)
	}
}

func TestUnarmedBattleStops(t *testing.T) {
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.ZergOverlord, 100, 100)}},
		Player{Agents: []Agent{agentAt(2, unittype.ProtossObserver, 120, 100)}},
	)
	if frames := s.SimulateFor(192); frames >= 192 {
		t.Errorf("unarmed battle ran the whole budget (%d frames)", frames)
	}
}

func TestCapBoundsSimulation(t *testing.T) {
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.ZergZergling, 100, 100)}},
		Player{Agents: []Agent{agentAt(2, unittype.ZergSunkenColony, 5000, 100)}},
	)
	s.Cap = 50
	if frames := s.SimulateFor(192); frames != 50 {
		t.Errorf("SimulateFor with cap 50 ran %d frames", frames)
	}
}

func TestKiterOutrunsMelee(t *testing.T) {
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.TerranVulture, 100, 100)}},
		Player{Agents: []Agent{agentAt(2, unittype.ProtossZealot, 250, 100)}},
	)
	s.SimulateFor(192)

	v, z := &s.A.Agents[0], &s.B.Agents[0]
	if !v.Alive() || v.Health() != 80 {
		t.Errorf("vulture took damage while kiting: alive=%v hp=%d", v.Alive(), v.Health())
	}
	if z.Health()+z.Shields() >= 160 {
		t.Error("zealot was never hit")
	}
}

func TestMedicHeals(t *testing.T) {
	marine := agentAt(1, unittype.TerranMarine, 100, 100)
	marine.health = FromInt(20)
	s := New(Player{Agents: []Agent{agentAt(2, unittype.TerranMedic, 110, 100), marine}}, Player{})

	s.Step()
	if got := s.A.Agents[1].health; got != FromInt(20)+healAmount {
		t.Errorf("marine health = %d, want %d", got, FromInt(20)+healAmount)
	}
	if got := s.A.Agents[0].energy; got >= FromInt(200) {
		t.Errorf("medic energy = %d, expected healing to cost energy", got)
	}
}

func TestMarineStimsBeforeFirstShot(t *testing.T) {
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.TerranMarine, 100, 100)}},
		Player{Agents: []Agent{agentAt(2, unittype.ProtossZealot, 150, 100)}},
	)
	s.Step()

	m := &s.A.Agents[0]
	if got := m.Health(); got != 30 {
		t.Errorf("health = %d, want 30 after stim", got)
	}
	if m.stimTimer != stimFrames-1 {
		t.Errorf("stimTimer = %d, want %d", m.stimTimer, stimFrames-1)
	}
	// 15 halved by stim, then one frame elapsed.
	if m.cooldown != 6 {
		t.Errorf("cooldown = %d, want 6", m.cooldown)
	}
	if z := &s.B.Agents[0]; z.Shields() >= z.maxShields.Int() {
		t.Error("marine did not fire")
	}
}

func TestWoundedMarineDoesNotStim(t *testing.T) {
	marine := agentAt(1, unittype.TerranMarine, 100, 100)
	marine.health = FromInt(20)
	s := New(
		Player{Agents: []Agent{marine}},
		Player{Agents: []Agent{agentAt(2, unittype.ProtossZealot, 150, 100)}},
	)
	s.Step()

	m := &s.A.Agents[0]
	if m.Health() != 20 || m.stimTimer != 0 {
		t.Errorf("wounded marine stimmed: hp=%d stimTimer=%d", m.Health(), m.stimTimer)
	}
	if m.cooldown != 14 {
		t.Errorf("cooldown = %d, want 14", m.cooldown)
	}
}

func TestSelectTargetTakesFirstHighestInRange(t *testing.T) {
	marine := agentAt(1, unittype.TerranMarine, 100, 100)
	enemy := Player{Agents: []Agent{
		agentAt(2, unittype.ZergLarva, 120, 100),
		agentAt(3, unittype.ProtossZealot, 400, 100),
		agentAt(4, unittype.ProtossZealot, 200, 100),
		agentAt(5, unittype.ProtossZealot, 150, 100),
	}}
	if got := selectTarget(&marine, &enemy); got != 2 {
		t.Errorf("selectTarget = %d, want 2 (first highest-priority zealot in range)", got)
	}

	// A current target still loses to a closer equal-priority enemy.
	marine.attackTarget = 2
	if got := selectTarget(&marine, &enemy); got != 3 {
		t.Errorf("selectTarget with current target = %d, want 3", got)
	}
}

func TestRetreaterRunsAway(t *testing.T) {
	s := New(
		Player{Agents: []Agent{agentAt(1, unittype.ZergZergling, 100, 100)}, Script: Retreater},
		Player{Agents: []Agent{agentAt(2, unittype.TerranMarine, 200, 100)}},
	)
	s.Step()
	if x := s.A.Agents[0].Position().X; x >= 100 {
		t.Errorf("retreating zergling moved toward the marine (x=%d)", x)
	}
}

func randomArmy(rng *rand.Rand, idBase, x0 int) Player {
	types := []unittype.Type{
		unittype.ZergZergling, unittype.ZergHydralisk, unittype.ZergMutalisk,
		unittype.TerranMarine, unittype.TerranMedic, unittype.TerranSiegeTankSiegeMode,
		unittype.ProtossZealot, unittype.ProtossDragoon, unittype.ProtossArchon, unittype.ZergLurker,
	}
	var p Player
	for i := range 5 + rng.IntN(10) {
		p.Add(agentAt(idBase+i, types[rng.IntN(len(types))], x0+rng.IntN(200), rng.IntN(300)))
	}
	return p
}

func clonePlayer(p Player) Player {
	return Player{Agents: slices.Clone(p.Agents), Script: p.Script}
}

func TestDeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	for range 20 {
		a, b := randomArmy(rng, 1, 0), randomArmy(rng, 100, 250)
		s1 := New(clonePlayer(a), clonePlayer(b))
		s2 := New(clonePlayer(a), clonePlayer(b))
		f1, f2 := s1.SimulateFor(192), s2.SimulateFor(192)
		if f1 != f2 || !reflect.DeepEqual(s1.A, s2.A) || !reflect.DeepEqual(s1.B, s2.B) {
			t.Fatal("identical inputs produced different outcomes")
		}
	}
}

func TestZeroDistanceMoveIsStable(t *testing.T) {
	a := agentAt(7, unittype.ZergZergling, 100, 100)
	b := agentAt(7, unittype.ZergZergling, 100, 100)
	a.moveAway(100, 100, 10)
	b.moveAway(100, 100, 10)
	if a.vx != b.vx || a.vy != b.vy || (a.vx == 0 && a.vy == 0) {
		t.Errorf("zero-distance moves: (%d,%d) vs (%d,%d)", a.vx, a.vy, b.vx, b.vy)
	}
}

func TestAgentFromTypeNonePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AgentFromType(None) did not panic")
		}
	}()
	AgentFromType(unittype.None)
}
