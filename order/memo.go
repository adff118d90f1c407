// Package order issues unit commands through a Sink and remembers what each
// unit was last told, so re-sending the same command every tick is free.
package order

import (
	"errors"
	"fmt"

	"github.com/nstehr/vimy/vimy-tactics/model"
)

var (
	// ErrUnitGone is returned when a unit or its target no longer resolves.
	ErrUnitGone = errors.New("order: unit no longer exists")
	// ErrBusy is returned when a different goal is still pending for the unit.
	ErrBusy = errors.New("order: unit busy with another goal")
)

// CommandError wraps a Sink failure.
type CommandError struct {
	Command string
	UnitID  int
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("order: %s for unit %d: %v", e.Command, e.UnitID, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

type Kind uint8

const (
	Nothing Kind = iota
	MoveTo
	Attack
	AttackPosition
	Stop
)

var kindNames = [...]string{
	Nothing:        "nothing",
	MoveTo:         "move",
	Attack:         "attack",
	AttackPosition: "attack_move",
	Stop:           "stop",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Goal is the last command issued to a unit. TargetID is set for Attack,
// Pos for MoveTo and AttackPosition.
type Goal struct {
	Kind     Kind
	TargetID int
	Pos      model.Position
}

// Memo is a unit's pending goal and the last frame it is still trusted.
type Memo struct {
	Goal       Goal
	ValidUntil int
}

// Pending reports whether a blocking goal is still in effect at frame.
// Stop never blocks.
func (m *Memo) Pending(frame int) bool {
	return frame <= m.ValidUntil && m.Goal.Kind != Nothing && m.Goal.Kind != Stop
}

// Act runs issue when nothing is pending and remembers goal for sleep frames.
// Repeating the pending goal succeeds without issuing; a different pending
// goal returns ErrBusy.
func (m *Memo) Act(frame int, goal Goal, sleep int, issue func() error) error {
	if m.Pending(frame) {
		if m.Goal == goal {
			return nil
		}
		return ErrBusy
	}
	if err := issue(); err != nil {
		return err
	}
	m.Goal = goal
	m.ValidUntil = frame + sleep
	return nil
}
