package rules

import (
	"fmt"

	"github.com/expr-lang/expr/vm"
)

// Stance is what a squad does with the units of one skirmish.
type Stance string

const (
	// Attack commits the skirmish's units to selecting and chasing targets.
	Attack Stance = "attack"
	// Hold fights only what is already in range.
	Hold Stance = "hold"
	// FallBack pulls the units back toward safety.
	FallBack Stance = "fall_back"
)

func (s Stance) Valid() bool {
	switch s {
	case Attack, Hold, FallBack:
		return true
	}
	return false
}

// Rule maps a condition over one skirmish to a stance.
// The engine evaluates rules by priority; the first match decides.
type Rule struct {
	Name         string      `yaml:"name"`
	Priority     int         `yaml:"priority"` // higher = evaluated first
	ConditionSrc string      `yaml:"condition"`
	Stance       Stance      `yaml:"stance"`
	program      *vm.Program // compiled bytecode
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s(%d)->%s", r.Name, r.Priority, r.Stance)
}
