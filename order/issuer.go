package order

import (
	"log/slog"

	"github.com/nstehr/vimy/vimy-tactics/model"
)

const (
	moveSleep           = 3
	attackPositionSleep = 4
	stopSleep           = 3
	minAttackSleep      = 2
)

// Sink delivers commands to the game.
type Sink interface {
	Move(unitID int, to model.Position) error
	Attack(unitID, targetID int) error
	AttackPosition(unitID int, at model.Position) error
	Stop(unitID int) error
}

// Issuer sends commands for one game session. It is not safe for concurrent
// use; the tick pipeline owns it.
type Issuer struct {
	sink   Sink
	frame  int
	units  *model.Units
	memos  map[int]*Memo
	issued int
}

func NewIssuer(sink Sink) *Issuer {
	return &Issuer{sink: sink, units: model.NewUnits(nil), memos: make(map[int]*Memo)}
}

// Begin starts a new tick. Memos of units that vanished or whose goal expired
// are forgotten.
func (is *Issuer) Begin(frame int, units *model.Units) {
	is.frame = frame
	is.units = units
	is.issued = 0
	for id, m := range is.memos {
		if _, ok := units.Get(id); !ok || frame > m.ValidUntil {
			delete(is.memos, id)
		}
	}
}

func (is *Issuer) Frame() int { return is.frame }

// Issued counts commands actually sent to the sink this tick.
func (is *Issuer) Issued() int { return is.issued }

// Pending returns the goal u is still waiting on.
func (is *Issuer) Pending(u *model.Unit) (Goal, bool) {
	m, ok := is.memos[u.ID]
	if !ok || !m.Pending(is.frame) {
		return Goal{}, false
	}
	return m.Goal, true
}

// Sleeping units were just commanded and should be left alone.
func (is *Issuer) Sleeping(u *model.Unit) bool {
	_, ok := is.Pending(u)
	return ok
}

func (is *Issuer) memo(id int) *Memo {
	m, ok := is.memos[id]
	if !ok {
		m = &Memo{ValidUntil: -1}
		is.memos[id] = m
	}
	return m
}

func (is *Issuer) resolve(u *model.Unit) error {
	if u == nil {
		return ErrUnitGone
	}
	if cur, ok := is.units.Get(u.ID); !ok || !cur.Alive() {
		return ErrUnitGone
	}
	return nil
}

func (is *Issuer) send(command string, unitID int, fn func() error) error {
	if err := fn(); err != nil {
		return &CommandError{Command: command, UnitID: unitID, Err: err}
	}
	is.issued++
	slog.Debug("command issued", "command", command, "unit", unitID, "frame", is.frame)
	return nil
}

// MoveTo overrides any pending goal. A unit already heading to pos is left alone.
func (is *Issuer) MoveTo(u *model.Unit, pos model.Position) error {
	if err := is.resolve(u); err != nil {
		return err
	}
	if u.TargetPos != nil && *u.TargetPos == pos {
		return nil
	}
	err := is.send(MoveTo.String(), u.ID, func() error { return is.sink.Move(u.ID, pos) })
	if err != nil {
		return err
	}
	*is.memo(u.ID) = Memo{Goal: Goal{Kind: MoveTo, Pos: pos}, ValidUntil: is.frame + moveSleep}
	return nil
}

// Attack sleeps the unit for its stop frames so the shot is not cancelled.
func (is *Issuer) Attack(u, target *model.Unit) error {
	if err := is.resolve(u); err != nil {
		return err
	}
	if err := is.resolve(target); err != nil {
		return err
	}
	sleep := max(u.Info().StopFrames, minAttackSleep)
	goal := Goal{Kind: Attack, TargetID: target.ID}
	return is.memo(u.ID).Act(is.frame, goal, sleep, func() error {
		if u.OrderTargetID == target.ID {
			return nil
		}
		return is.send(Attack.String(), u.ID, func() error { return is.sink.Attack(u.ID, target.ID) })
	})
}

func (is *Issuer) AttackPosition(u *model.Unit, pos model.Position) error {
	if err := is.resolve(u); err != nil {
		return err
	}
	goal := Goal{Kind: AttackPosition, Pos: pos}
	return is.memo(u.ID).Act(is.frame, goal, attackPositionSleep, func() error {
		return is.send(AttackPosition.String(), u.ID, func() error { return is.sink.AttackPosition(u.ID, pos) })
	})
}

// Stop always goes through and clears whatever was pending.
func (is *Issuer) Stop(u *model.Unit) error {
	if err := is.resolve(u); err != nil {
		return err
	}
	*is.memo(u.ID) = Memo{Goal: Goal{Kind: Stop}, ValidUntil: is.frame + stopSleep}
	return is.send(Stop.String(), u.ID, func() error { return is.sink.Stop(u.ID) })
}
