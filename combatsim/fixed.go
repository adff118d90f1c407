package combatsim

import "math"

// Fixed is a Q24.8 fixed-point value. Hit points, shields, energy, damage
// and speeds all live in this representation so a simulation never touches
// floating point and replays bit for bit on every platform.
type Fixed int32

const (
	fixedShift       = 8
	One        Fixed = 1 << fixedShift
)

func FromInt(v int) Fixed { return Fixed(v << fixedShift) }

// FromFloat rounds to the nearest representable value.
func FromFloat(v float64) Fixed { return Fixed(math.Round(v * float64(One))) }

// Int truncates toward negative infinity.
func (f Fixed) Int() int { return int(f >> fixedShift) }

func (f Fixed) Float() float64 { return float64(f) / float64(One) }

func (f Fixed) Mul(g Fixed) Fixed { return Fixed((int64(f) * int64(g)) >> fixedShift) }

// isqrt is floor(sqrt(v)) for non-negative v.
func isqrt(v int) int {
	if v <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(v)))
	for r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}

// roundShift converts a Q.8 intermediate back to whole pixels, rounding half up.
func roundShift(v int64) int {
	return int((v + int64(One)/2) >> fixedShift)
}
