package rules

import (
	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/skirmish"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

// RuleEnv wraps one skirmish and exposes helper methods callable from expr
// expressions.
type RuleEnv struct {
	Skirmish     *skirmish.Skirmish
	BaseInDanger bool
	// LastStance is what the squad did with this skirmish's vanguard last tick.
	LastStance string
	Frame      int
}

func (e RuleEnv) units() []*model.Unit {
	if e.Skirmish == nil {
		return nil
	}
	return e.Skirmish.Cluster.Units
}

// Evaluation is the skirmish's combat evaluation; positive favours fighting.
func (e RuleEnv) Evaluation() int {
	if e.Skirmish == nil {
		return 0
	}
	return e.Skirmish.CombatEvaluation
}

func (e RuleEnv) Engaged() bool { return e.Skirmish != nil && e.Skirmish.Engaged }

// BuildingLoss is the value of our buildings the fight scenario loses.
func (e RuleEnv) BuildingLoss() int {
	if e.Skirmish == nil {
		return 0
	}
	return e.Skirmish.PotentialBuildingLoss
}

// EnemyBuildingLoss is the value of enemy buildings the fight scenario kills.
func (e RuleEnv) EnemyBuildingLoss() int {
	if e.Skirmish == nil {
		return 0
	}
	return e.Skirmish.PotentialEnemyBuildingLoss
}

// FleeLoss is what we lose by running away.
func (e RuleEnv) FleeLoss() int {
	if e.Skirmish == nil {
		return 0
	}
	return e.Skirmish.Fleeing.MyDead
}

func (e RuleEnv) FightDelta() int {
	if e.Skirmish == nil {
		return 0
	}
	return e.Skirmish.Fighting.Delta()
}

func (e RuleEnv) DefendDelta() int {
	if e.Skirmish == nil {
		return 0
	}
	return e.Skirmish.EnemyDefending.Delta()
}

func (e RuleEnv) MyValue() int {
	return e.value(func(u *model.Unit) bool { return u.IsFriendly() })
}

func (e RuleEnv) EnemyValue() int {
	return e.value((*model.Unit).IsEnemy)
}

// ValueRatio is our value over theirs; an empty enemy side counts as one.
func (e RuleEnv) ValueRatio() float64 {
	return float64(e.MyValue()) / float64(max(e.EnemyValue(), 1))
}

func (e RuleEnv) value(keep func(*model.Unit) bool) int {
	total := 0
	for _, u := range e.units() {
		if u.Alive() && keep(u) {
			total += skirmish.AgentValue(u.Type)
		}
	}
	return total
}

func (e RuleEnv) MyCount() int {
	n := 0
	for _, u := range e.units() {
		if u.Alive() && u.IsMe() {
			n++
		}
	}
	return n
}

func (e RuleEnv) EnemyCount() int {
	n := 0
	for _, u := range e.units() {
		if u.Alive() && u.IsEnemy() {
			n++
		}
	}
	return n
}

// EnemyHas reports whether the skirmish contains a living enemy of the named
// type, e.g. "Protoss_Reaver".
func (e RuleEnv) EnemyHas(name string) bool {
	t, err := unittype.Parse(name)
	if err != nil {
		return false
	}
	for _, u := range e.units() {
		if u.Alive() && u.IsEnemy() && u.Type == t {
			return true
		}
	}
	return false
}

// EnemyStaticDefense counts armed enemy buildings.
func (e RuleEnv) EnemyStaticDefense() int {
	n := 0
	for _, u := range e.units() {
		info := u.Info()
		if u.Alive() && u.IsEnemy() && info.IsBuilding() && info.CanAttack() {
			n++
		}
	}
	return n
}
