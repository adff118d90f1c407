package boids

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/telemetry"
)

const (
	minWeight      = 0.0001
	clampFrames    = 11
	waypointMin    = 63
	pathSteps      = 8
	moveThreshold  = 16
	arriveDistance = 8
)

// Steerer owns the terrain queries forces and positioning need.
type Steerer struct {
	Terrain *model.Terrain
	Paths   model.Paths
	Sink    telemetry.Sink
	// Draw enables force vector drawing on Sink.
	Draw bool
}

func (s *Steerer) sink() telemetry.Sink {
	if s.Sink == nil || !s.Draw {
		return telemetry.Nop{}
	}
	return s.Sink
}

func (s *Steerer) paths() model.Paths {
	if s.Paths == nil {
		return model.DirectPaths{}
	}
	return s.Paths
}

// Climb pulls a ground unit toward the highest walk cell within rangePx while
// its own altitude is at most maxAltitude. The lower it stands the stronger
// the pull.
func (s *Steerer) Climb(u *model.Unit, rangePx, maxAltitude int, weight float64) Force {
	if u.Flying() || maxAltitude <= 0 {
		return Zero
	}
	at := u.Position().Walk()
	cur := s.Terrain.Altitude(at)
	if cur > maxAltitude {
		return Zero
	}
	r := (rangePx + 7) / 8
	best, bestKey := at, -1
	for y := at.Y - r; y <= at.Y+r; y++ {
		for x := at.X - r; x <= at.X+r; x++ {
			w := model.WalkPosition{X: x, Y: y}
			if x < 0 || y < 0 || x >= s.Terrain.WalkCols || y >= s.Terrain.WalkRows {
				continue
			}
			key := 0
			if alt := s.Terrain.Altitude(w); alt > 0 {
				key = alt*1_000_000 + w.DistanceSquared(at)
			}
			if key > bestKey {
				best, bestKey = w, key
			}
		}
	}
	scale := float64(maxAltitude-cur) / float64(maxAltitude)
	s.sink().Line(u.Position(), best.Center(), telemetry.Brown)
	return Force{Weight: weight * scale, Vec: vec(best.Center()).Sub(vec(u.Position()))}
}

// FollowPath pulls u along its route to target. Flyers head straight there;
// ground units aim at the first waypoint at least waypointMin away and step
// toward it over cells wide enough for their footprint.
func (s *Steerer) FollowPath(u *model.Unit, target model.Position, weight float64) Force {
	pos := u.Position()
	if u.Flying() {
		f := Force{Weight: weight, Vec: vec(target).Sub(vec(pos))}
		s.sink().Line(pos, target, telemetry.Cyan)
		return f
	}
	aim := target
	for _, wp := range s.paths().Waypoints(pos, target) {
		if pos.Distance(wp) >= waypointMin {
			aim = wp
			break
		}
	}
	info := u.Info()
	clearance := (7 + max(info.Left+info.Right+1, info.Up+info.Down+1)) / 8 * 8
	goal := aim.Walk()
	cur := pos.Walk()
	for range pathSteps {
		next, ok := s.altitudeStep(cur, goal, clearance)
		if !ok {
			return Zero
		}
		cur = next
	}
	s.sink().Line(pos, cur.Center(), telemetry.Cyan)
	return Force{Weight: weight, Vec: vec(cur.Center()).Sub(vec(pos))}
}

// altitudeStep moves one walk cell closer to goal over cells with at least
// minAltitude clearance. Standing still is fine once no neighbour gets closer.
func (s *Steerer) altitudeStep(cur, goal model.WalkPosition, minAltitude int) (model.WalkPosition, bool) {
	if cur == goal {
		return cur, true
	}
	best, bestD := cur, cur.DistanceSquared(goal)
	found := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := model.WalkPosition{X: cur.X + dx, Y: cur.Y + dy}
			if s.Terrain.Altitude(n) < minAltitude {
				continue
			}
			found = true
			if d := n.DistanceSquared(goal); d < bestD {
				best, bestD = n, d
			}
		}
	}
	return best, found
}

// Positioning folds forces into one destination for u. ok is false when the
// forces carry no weight or the destination is too close to bother issuing
// a move.
func (s *Steerer) Positioning(u *model.Unit, forces []Force) (model.Position, bool) {
	pos := u.Position()
	var sum mgl64.Vec2
	total := 0.0
	for _, f := range forces {
		total += f.Weight
		sum = sum.Add(f.Vec.Mul(f.Weight))
	}
	if total < minWeight {
		return pos, false
	}
	avg := sum.Mul(1 / total)
	if limit := u.TopSpeed() * clampFrames; avg.Len() > limit {
		if limit <= 0 {
			avg = mgl64.Vec2{}
		} else {
			avg = avg.Normalize().Mul(limit)
		}
	}
	s.sink().Text(pos, fmt.Sprintf("%.2f (%.0f,%.0f)", total, avg.X(), avg.Y()))

	// Forces that cancel out would leave the unit stuck; follow the strongest.
	if avg.LenSqr() < 1 {
		strongest := forces[0]
		for _, f := range forces[1:] {
			if f.Weight > strongest.Weight {
				strongest = f
			}
		}
		avg = strongest.Vec
	}
	delta := model.Pos(int(math.Round(avg.X())), int(math.Round(avg.Y())))
	target := pos.Add(delta)

	result := target
	if !u.Flying() {
		result = s.project(pos, delta, target)
	}
	s.sink().Line(target, pos, telemetry.Blue)
	s.sink().Line(pos, result, telemetry.Green)
	s.sink().Circle(result, 8, telemetry.Green)

	if result.DistanceSquared(pos) > moveThreshold*moveThreshold ||
		result.DistanceSquared(target) < arriveDistance*arriveDistance {
		return result, true
	}
	return result, false
}

// project walks delta and both its perpendiculars over walkable cells and
// keeps whichever stop lands nearest target.
func (s *Steerer) project(pos, delta, target model.Position) model.Position {
	goal := target.Walk()
	candidates := [...]model.Position{
		delta,
		{X: -delta.Y, Y: delta.X},
		{X: delta.Y, Y: -delta.X},
	}
	var best model.WalkPosition
	bestD, found := 0, false
	for _, d := range candidates {
		w, ok := s.Terrain.FurthestWalkable(pos.Walk(), pos.Add(d).Walk())
		if !ok {
			continue
		}
		if dist := w.DistanceSquared(goal); !found || dist < bestD {
			best, bestD, found = w, dist, true
		}
	}
	switch {
	case !found:
		return pos
	case best == goal:
		return target
	}
	return best.Center()
}
