// Package boids turns weighted steering forces into a single move target.
//
// Each force is a displacement relative to the unit plus a weight. Positioning
// averages them, clamps the result to what the unit can cover in a few frames
// and projects it onto walkable ground for non-flyers.
package boids

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/nstehr/vimy/vimy-tactics/model"
)

// Force is one steering influence.
type Force struct {
	Weight float64
	Vec    mgl64.Vec2
}

var Zero = Force{}

func vec(p model.Position) mgl64.Vec2 { return mgl64.Vec2{float64(p.X), float64(p.Y)} }

// Avoid pushes u away from a point, harder the closer it is.
func Avoid(u *model.Unit, p model.Position, minDist, weight float64) Force {
	delta := vec(u.Position()).Sub(vec(p))
	dist := delta.Len()
	if dist > minDist || dist == 0 {
		return Zero
	}
	scale := 1 - dist/minDist
	return Force{Weight: weight * scale, Vec: delta.Mul((minDist - dist) / dist)}
}

// Separation pushes u away from other while they are closer than minDist.
// Two units on the same spot separate in a direction derived from u's id.
func Separation(u, other *model.Unit, minDist, weight float64) Force {
	if u.ID == other.ID {
		return Zero
	}
	delta := vec(u.Position()).Sub(vec(other.Position()))
	dist := delta.Len()
	switch {
	case dist >= minDist:
		return Zero
	case dist == 0:
		s, c := math.Sincos(float64(u.ID))
		return Force{Weight: weight, Vec: mgl64.Vec2{c, s}.Mul(minDist)}
	}
	scale := 1 - dist/minDist
	return Force{Weight: weight * scale, Vec: delta.Mul((minDist - dist) / dist)}
}

// Goal pulls u straight at target.
func Goal(u *model.Unit, target model.Position, weight float64) Force {
	delta := vec(target).Sub(vec(u.Position()))
	if delta.LenSqr() == 0 {
		return Zero
	}
	return Force{Weight: weight, Vec: delta}
}

// Cohesion pulls u toward where other will be in frames.
func Cohesion(u, other *model.Unit, frames int, weight float64) Force {
	return Goal(u, other.PredictPosition(frames), weight)
}
