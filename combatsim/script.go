package combatsim

// Script is the behavior an agent follows each frame.
type Script uint8

const (
	// Attacker picks the best target, closes in, kites if it can and fires.
	Attacker Script = iota
	// Retreater runs from the nearest threat and never fires.
	Retreater
	// Healer restores hit points of nearby organic allies.
	Healer
	// Repairer restores hit points of nearby mechanical allies, else attacks.
	Repairer
	// Suicider attacks once and dies.
	Suicider
)

func (s Script) String() string {
	switch s {
	case Attacker:
		return "attacker"
	case Retreater:
		return "retreater"
	case Healer:
		return "healer"
	case Repairer:
		return "repairer"
	case Suicider:
		return "suicider"
	}
	return "unknown"
}

const (
	burrowFrames = 9
	fleeMargin   = 384
	healRange    = 30
	repairRange  = 10

	healAmount     Fixed = 200
	healEnergyCost Fixed = 100
)

// scriptFor resolves the per-agent behavior under the player's script.
func (a *Agent) scriptFor(player Script) Script {
	if player == Retreater {
		return Retreater
	}
	switch {
	case a.healer:
		return Healer
	case a.repairer:
		return Repairer
	case a.suicider:
		return Suicider
	}
	return Attacker
}

// act runs one frame of a's script and reports whether it did anything.
func (s *Simulator) act(a *Agent, own, enemy *Player) bool {
	switch a.scriptFor(own.Script) {
	case Retreater:
		return s.flee(a, enemy)
	case Healer:
		return s.heal(a, own, enemy)
	case Repairer:
		if s.repair(a, own) {
			return true
		}
	}
	return s.attack(a, own, enemy)
}

func (s *Simulator) attack(a *Agent, own, enemy *Player) bool {
	ti := selectTarget(a, enemy)
	if ti < 0 {
		return s.flee(a, enemy)
	}
	a.attackTarget = ti
	t := &enemy.Agents[ti]
	w := a.weaponFor(t)
	dsq := distSq(a, t)
	inRange := w.inRange(a, t, dsq)

	if inRange && a.cooldown <= 0 {
		if a.burrowedAttacker && !a.burrowed {
			a.burrowed = true
			a.sleepTimer = burrowFrames
			return true
		}
		a.stim()
		s.fire(a, own, enemy, ti)
		if a.suicider {
			a.die()
		}
		return true
	}
	if !inRange && a.burrowed && a.burrowedAttacker {
		a.burrowed = false
		a.sleepTimer = burrowFrames
		return true
	}
	return s.combatMove(a, t, w, dsq, inRange)
}

// selectTarget keeps a valid in-range current target unless an engageable
// candidate beats it: strictly higher priority, or equal priority and closer.
// Without a current target every reachable enemy competes, and the first
// highest-priority enemy already in range ends the scan.
func selectTarget(a *Agent, enemy *Player) int {
	cur := -1
	if i := a.attackTarget; i >= 0 && i < len(enemy.Agents) {
		t := &enemy.Agents[i]
		if a.canTarget(t) && a.weaponFor(t).inRange(a, t, distSq(a, t)) {
			cur = i
		}
	}
	best, bestPrio, bestDist := cur, Low, 0
	if cur >= 0 {
		bestPrio, bestDist = enemy.Agents[cur].priority, distSq(a, &enemy.Agents[cur])
	}
	for j := range enemy.Agents {
		t := &enemy.Agents[j]
		if j == cur || !a.canTarget(t) {
			continue
		}
		d := distSq(a, t)
		inRange := a.weaponFor(t).inRange(a, t, d)
		if cur >= 0 && !inRange {
			continue
		}
		if cur < 0 && inRange && t.priority == Highest {
			return j
		}
		if best < 0 || t.priority > bestPrio || (t.priority == bestPrio && d < bestDist) {
			best, bestPrio, bestDist = j, t.priority, d
		}
	}
	return best
}

// combatMove positions a relative to its target when it cannot fire this frame.
func (s *Simulator) combatMove(a, t *Agent, w *weapon, dsq int, inRange bool) bool {
	if a.speed <= 0 {
		return inRange
	}
	dist := isqrt(dsq)
	reach := w.reach(a, t)
	if a.kiter && a.cooldown > 0 {
		tw := t.weaponFor(a)
		safe := !tw.exists() || tw.reach(t, a) <= dist
		if safe && t.speed < a.speed {
			if dist < reach {
				a.moveAway(t.x, t.y, reach-dist)
			}
			return true
		}
	}
	if inRange {
		return true
	}
	if w.minRange > 0 && dist < w.minRange+a.radius+t.radius {
		a.moveAway(t.x, t.y, w.minRange+a.radius+t.radius-dist)
		return true
	}
	a.moveToward(t.x, t.y, dist-reach+1)
	return true
}

// flee runs from the nearest agent that can hurt a, until it is well out of range.
func (s *Simulator) flee(a *Agent, enemy *Player) bool {
	if a.speed <= 0 {
		return false
	}
	threat, best := -1, 0
	for j := range enemy.Agents {
		t := &enemy.Agents[j]
		if !t.alive || t.stasisTimer > 0 || !t.weaponFor(a).exists() {
			continue
		}
		if d := distSq(a, t); threat < 0 || d < best {
			threat, best = j, d
		}
	}
	if threat < 0 {
		return false
	}
	t := &enemy.Agents[threat]
	safe := t.weaponFor(a).reach(t, a) + fleeMargin
	dist := isqrt(best)
	if dist >= safe {
		return false
	}
	a.moveAway(t.x, t.y, safe-dist)
	return true
}

func (s *Simulator) heal(a *Agent, own, enemy *Player) bool {
	if a.energy < healEnergyCost {
		return s.flee(a, enemy)
	}
	pi := nearestPatient(a, own, func(p *Agent) bool {
		return p.organic && !p.flyer && !p.building && p.health < p.maxHealth
	})
	if pi < 0 {
		return s.flee(a, enemy)
	}
	a.restoreTarget = pi
	p := &own.Agents[pi]
	reach := healRange + a.radius + p.radius
	dsq := distSq(a, p)
	if dsq <= reach*reach {
		p.health = min(p.health+healAmount, p.maxHealth)
		p.healedThisFrame = true
		a.energy -= healEnergyCost
		return true
	}
	a.moveToward(p.x, p.y, isqrt(dsq)-reach+1)
	return true
}

func (s *Simulator) repair(a *Agent, own *Player) bool {
	pi := nearestPatient(a, own, func(p *Agent) bool {
		return p.mechanical && (p.building || !p.organic) && p.health < p.maxHealth
	})
	if pi < 0 {
		return false
	}
	a.restoreTarget = pi
	p := &own.Agents[pi]
	reach := repairRange + a.radius + p.radius
	dsq := distSq(a, p)
	if dsq <= reach*reach {
		p.health = min(p.health+p.hpRepairRate, p.maxHealth)
		p.healedThisFrame = true
		return true
	}
	if a.speed <= 0 {
		return false
	}
	a.moveToward(p.x, p.y, isqrt(dsq)-reach+1)
	return true
}

func nearestPatient(a *Agent, own *Player, needs func(*Agent) bool) int {
	best, bestD := -1, 0
	for j := range own.Agents {
		p := &own.Agents[j]
		if p == a || !p.alive || p.healedThisFrame || !needs(p) {
			continue
		}
		if d := distSq(a, p); best < 0 || d < bestD {
			best, bestD = j, d
		}
	}
	return best
}

// moveToward sets a velocity of at most min(speed, limit) pixels toward (tx, ty).
func (a *Agent) moveToward(tx, ty, limit int) {
	a.steer(tx-a.x, ty-a.y, limit)
}

func (a *Agent) moveAway(tx, ty, limit int) {
	a.steer(a.x-tx, a.y-ty, limit)
}

func (a *Agent) steer(dx, dy, limit int) {
	if limit <= 0 || a.speed <= 0 {
		return
	}
	dist := isqrt(dx*dx + dy*dy)
	if dist == 0 {
		dx, dy = tieDirection(a.ID)
		dist = isqrt(dx*dx + dy*dy)
	}
	step := min(a.speed, FromInt(limit))
	vx := roundShift(int64(dx) * int64(step) / int64(dist))
	vy := roundShift(int64(dy) * int64(step) / int64(dist))
	if vx == 0 && vy == 0 {
		if abs(dx) >= abs(dy) {
			vx = sign(dx)
		} else {
			vy = sign(dy)
		}
	}
	a.vx, a.vy = vx, vy
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
