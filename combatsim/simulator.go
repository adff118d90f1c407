// Package combatsim is a deterministic fixed-point battle simulator. Two
// players each run a script over their agents once per frame; positions,
// health and timers then advance together. Identical input always produces an
// identical outcome.
package combatsim

import "github.com/nstehr/vimy/vimy-tactics/model"

// Player is one side of a simulated battle.
type Player struct {
	Agents []Agent
	Script Script
}

func (p *Player) Add(a Agent) { p.Agents = append(p.Agents, a) }

// Alive counts living agents.
func (p *Player) Alive() int {
	n := 0
	for i := range p.Agents {
		if p.Agents[i].alive {
			n++
		}
	}
	return n
}

// Simulator owns both players for the length of one battle.
type Simulator struct {
	A Player
	B Player
	// Walkable reports ground walkability; nil treats the map as open.
	Walkable func(model.Position) bool
	// FrameSkip is how many game frames one Step covers. Zero means one.
	FrameSkip int
	// Cap bounds the total frames a simulator will ever run. Zero means no cap.
	Cap int

	frame int
}

func New(a, b Player) *Simulator {
	return &Simulator{A: a, B: b, FrameSkip: 1}
}

// Frame is the number of game frames simulated so far.
func (s *Simulator) Frame() int { return s.frame }

func (s *Simulator) skip() int { return max(s.FrameSkip, 1) }

// Step advances one quantum. It returns false once no agent on either side
// did anything, which ends the battle early.
func (s *Simulator) Step() bool {
	acted := s.actAll(&s.A, &s.B)
	acted = s.actAll(&s.B, &s.A) || acted
	s.updateStats(&s.A)
	s.updateStats(&s.B)
	s.frame += s.skip()
	return acted
}

func (s *Simulator) actAll(own, enemy *Player) bool {
	acted := false
	for i := range own.Agents {
		a := &own.Agents[i]
		if !a.alive {
			continue
		}
		if a.stasisTimer > 0 || a.sleepTimer > 0 {
			acted = true
			continue
		}
		if s.act(a, own, enemy) {
			acted = true
		}
	}
	return acted
}

// SimulateFor runs until frames have elapsed or the battle stalls, and
// returns the number of frames actually simulated.
func (s *Simulator) SimulateFor(frames int) int {
	start := s.frame
	for s.frame-start < frames && (s.Cap <= 0 || s.frame < s.Cap) {
		if !s.Step() {
			break
		}
	}
	return s.frame - start
}

func (s *Simulator) walkable(x, y int) bool {
	if s.Walkable == nil {
		return true
	}
	return s.Walkable(model.Position{X: x, Y: y})
}

// updateStats integrates movement, regeneration and timers for one quantum.
// Ground agents that would step onto unwalkable terrain only move half way.
func (s *Simulator) updateStats(p *Player) {
	n := s.skip()
	for i := range p.Agents {
		a := &p.Agents[i]
		if !a.alive {
			continue
		}
		if a.vx != 0 || a.vy != 0 {
			nx, ny := a.x+a.vx*n, a.y+a.vy*n
			if a.flyer || s.walkable(nx, ny) {
				a.x, a.y = nx, ny
			} else {
				a.x += a.vx * n / 2
				a.y += a.vy * n / 2
			}
			a.vx, a.vy = 0, 0
		}
		a.healedThisFrame = false

		if a.plagueTimer > 0 {
			a.health -= plagueTick * Fixed(n)
			if a.health <= 0 {
				a.health = 1
			}
			a.plagueTimer = max(a.plagueTimer-n, 0)
		}
		if a.regenerates && a.health < a.maxHealth {
			a.health += hpRegen * Fixed(n)
		}
		if a.shields < a.maxShields {
			a.shields += shieldRegen * Fixed(n)
		}
		if a.energy < a.maxEnergy {
			a.energy += energyRegen * Fixed(n)
		}

		a.cooldown = max(a.cooldown-n, 0)
		a.sleepTimer = max(a.sleepTimer-n, 0)
		a.stasisTimer = max(a.stasisTimer-n, 0)
		a.stimTimer = max(a.stimTimer-n, 0)
		a.ensnareTimer = max(a.ensnareTimer-n, 0)
		a.updateSpeed()
	}
}
