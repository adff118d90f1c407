package rules

import "fmt"

// CompileDoctrine generates a complete stance rule set from a doctrine's weights.
// All conditions are built via fmt.Sprintf with interpolated values —
// the compiler never generates invalid expr.
func CompileDoctrine(d Doctrine) []*Rule {
	d.Validate()
	engage := EngageThreshold(d.Aggression)

	rules := []*Rule{
		{
			Name:         "defend-base",
			Priority:     1000,
			ConditionSrc: `BaseInDanger`,
			Stance:       Attack,
		},
	}

	if d.AvoidStaticDefense > 0 {
		rules = append(rules, &Rule{
			Name:         "avoid-static-defense",
			Priority:     950,
			ConditionSrc: fmt.Sprintf(`!Engaged() && EnemyStaticDefense() >= %d && Evaluation() < %d`, d.AvoidStaticDefense, engage+lerp(400, 100, d.Aggression)),
			Stance:       FallBack,
		})
	}

	if d.BuildingProtection > 0 {
		rules = append(rules, &Rule{
			Name:         "guard-buildings",
			Priority:     900,
			ConditionSrc: fmt.Sprintf(`BuildingLoss() > 0 && Evaluation() >= %d`, engage-lerp(0, 300, d.BuildingProtection)),
			Stance:       Hold,
		})
	}

	if d.Persistence > 0 {
		rules = append(rules, &Rule{
			Name:         "stay-committed",
			Priority:     800,
			ConditionSrc: fmt.Sprintf(`LastStance == "attack" && Engaged() && Evaluation() >= %d`, engage-lerp(0, 200, d.Persistence)),
			Stance:       Attack,
		})
	}

	rules = append(rules,
		&Rule{
			Name:         "press-advantage",
			Priority:     700,
			ConditionSrc: fmt.Sprintf(`Evaluation() >= %d`, engage),
			Stance:       Attack,
		},
		&Rule{
			Name:         "fall-back",
			Priority:     100,
			ConditionSrc: `true`,
			Stance:       FallBack,
		},
	)

	return append(rules, d.Rules...)
}

// EngageThreshold is the evaluation a doctrine needs to take a fight:
// +150 for a timid doctrine, -150 for a reckless one, 0 when balanced.
func EngageThreshold(aggression float64) int {
	return lerp(150, -150, clamp(aggression, 0, 1))
}
