package rules

import "math"

// Doctrine is the high-level fighting posture loaded from config.
// Weights are 0.0–1.0; the compiler maps them to concrete rule thresholds.
type Doctrine struct {
	Name      string `yaml:"name" json:"name"`
	Rationale string `yaml:"rationale" json:"rationale"`
	// Aggression lowers the evaluation needed to take a fight.
	Aggression float64 `yaml:"aggression" json:"aggression"`
	// BuildingProtection accepts worse trades to hold ground next to our buildings.
	BuildingProtection float64 `yaml:"building_protection" json:"building_protection"`
	// Persistence keeps an engaged squad fighting through small swings.
	Persistence float64 `yaml:"persistence" json:"persistence"`
	// AvoidStaticDefense refuses fights against this many armed buildings
	// unless the evaluation is overwhelming. Zero disables the rule.
	AvoidStaticDefense int `yaml:"avoid_static_defense" json:"avoid_static_defense"`
	// Rules are appended verbatim to the compiled set.
	Rules []*Rule `yaml:"rules" json:"-"`
}

// DefaultDoctrine returns a balanced baseline doctrine: fight when the
// evaluation is not negative, otherwise fall back.
func DefaultDoctrine() Doctrine {
	return Doctrine{
		Name:       "Balanced",
		Rationale:  "Fight even or better trades, always defend the base",
		Aggression: 0.5,
	}
}

// Validate clamps all weights to their valid ranges.
func (d *Doctrine) Validate() {
	d.Aggression = clamp(d.Aggression, 0, 1)
	d.BuildingProtection = clamp(d.BuildingProtection, 0, 1)
	d.Persistence = clamp(d.Persistence, 0, 1)
	d.AvoidStaticDefense = clampInt(d.AvoidStaticDefense, 0, 10)
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// lerp linearly interpolates between min and max by t (0–1), returning an int.
func lerp(min, max int, t float64) int {
	return min + int(math.Round(float64(max-min)*t))
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
