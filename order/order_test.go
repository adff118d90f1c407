package order

import (
	"errors"
	"testing"

	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

type call struct {
	kind   Kind
	unit   int
	target int
	pos    model.Position
}

type fakeSink struct {
	calls []call
	err   error
}

func (f *fakeSink) Move(id int, to model.Position) error {
	f.calls = append(f.calls, call{kind: MoveTo, unit: id, pos: to})
	return f.err
}

func (f *fakeSink) Attack(id, target int) error {
	f.calls = append(f.calls, call{kind: Attack, unit: id, target: target})
	return f.err
}

func (f *fakeSink) AttackPosition(id int, at model.Position) error {
	f.calls = append(f.calls, call{kind: AttackPosition, unit: id, pos: at})
	return f.err
}

func (f *fakeSink) Stop(id int) error {
	f.calls = append(f.calls, call{kind: Stop, unit: id})
	return f.err
}

func snapshot() *model.Units {
	return model.NewUnits([]model.Unit{
		{ID: 1, Type: unittype.ProtossZealot, Relation: model.Me, X: 100, Y: 100, HP: 100},
		{ID: 2, Type: unittype.ProtossDragoon, Relation: model.Me, X: 120, Y: 100, HP: 100},
		{ID: 9, Type: unittype.ZergZergling, Relation: model.Enemy, X: 140, Y: 100, HP: 35},
	})
}

func TestMemoAct(t *testing.T) {
	var m Memo
	issued := 0
	issue := func() error { issued++; return nil }
	attack := Goal{Kind: Attack, TargetID: 9}

	if err := m.Act(10, attack, 3, issue); err != nil || issued != 1 {
		t.Fatalf("first Act: err=%v issued=%d", err, issued)
	}
	if err := m.Act(11, attack, 3, issue); err != nil || issued != 1 {
		t.Errorf("repeating the pending goal should not reissue: err=%v issued=%d", err, issued)
	}
	if err := m.Act(12, Goal{Kind: MoveTo}, 3, issue); !errors.Is(err, ErrBusy) {
		t.Errorf("different goal while pending: err=%v, want ErrBusy", err)
	}
	if err := m.Act(14, Goal{Kind: MoveTo}, 3, issue); err != nil || issued != 2 {
		t.Errorf("expired memo should allow a new goal: err=%v issued=%d", err, issued)
	}
}

func TestMemoActFailureLeavesNoGoal(t *testing.T) {
	var m Memo
	boom := errors.New("boom")
	if err := m.Act(1, Goal{Kind: Attack, TargetID: 3}, 5, func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if m.Pending(2) {
		t.Error("failed command must not leave a pending goal")
	}
}

func TestAttackSleepsForStopFrames(t *testing.T) {
	sink := &fakeSink{}
	is := NewIssuer(sink)
	units := snapshot()
	is.Begin(100, units)

	zealot, _ := units.Get(1)
	ling, _ := units.Get(9)
	if err := is.Attack(zealot, ling); err != nil {
		t.Fatalf("Attack failed: %v", err)
	}
	if err := is.Attack(zealot, ling); err != nil {
		t.Fatalf("repeated Attack failed: %v", err)
	}
	if len(sink.calls) != 1 {
		t.Errorf("expected 1 command sent, got %d", len(sink.calls))
	}
	if !is.Sleeping(zealot) {
		t.Error("zealot should sleep after attacking")
	}
	// Zealot stop frames are 7.
	is.Begin(107, units)
	if !is.Sleeping(zealot) {
		t.Error("zealot should still sleep at frame 107")
	}
	is.Begin(108, units)
	if is.Sleeping(zealot) {
		t.Error("zealot should wake at frame 108")
	}
}

func TestAttackCurrentOrderTargetSendsNothing(t *testing.T) {
	sink := &fakeSink{}
	is := NewIssuer(sink)
	units := snapshot()
	is.Begin(1, units)
	zealot, _ := units.Get(1)
	zealot.OrderTargetID = 9
	ling, _ := units.Get(9)
	if err := is.Attack(zealot, ling); err != nil {
		t.Fatalf("Attack failed: %v", err)
	}
	if len(sink.calls) != 0 {
		t.Errorf("expected no command, got %v", sink.calls)
	}
	if g, ok := is.Pending(zealot); !ok || g.TargetID != 9 {
		t.Errorf("Pending = %+v, %v", g, ok)
	}
}

func TestMoveOverridesPendingAttack(t *testing.T) {
	sink := &fakeSink{}
	is := NewIssuer(sink)
	units := snapshot()
	is.Begin(1, units)
	dragoon, _ := units.Get(2)
	ling, _ := units.Get(9)

	if err := is.Attack(dragoon, ling); err != nil {
		t.Fatalf("Attack failed: %v", err)
	}
	if err := is.MoveTo(dragoon, model.Pos(50, 50)); err != nil {
		t.Fatalf("MoveTo failed: %v", err)
	}
	if err := is.AttackPosition(dragoon, model.Pos(300, 300)); !errors.Is(err, ErrBusy) {
		t.Errorf("AttackPosition during move: err=%v, want ErrBusy", err)
	}
	if g, _ := is.Pending(dragoon); g.Kind != MoveTo {
		t.Errorf("pending goal = %s, want move", g.Kind)
	}

	dragoon.TargetPos = &model.Position{X: 50, Y: 50}
	before := len(sink.calls)
	if err := is.MoveTo(dragoon, model.Pos(50, 50)); err != nil || len(sink.calls) != before {
		t.Errorf("moving to the current target position should be a no-op: err=%v", err)
	}
}

func TestStopClearsPending(t *testing.T) {
	sink := &fakeSink{}
	is := NewIssuer(sink)
	units := snapshot()
	is.Begin(1, units)
	zealot, _ := units.Get(1)
	if err := is.AttackPosition(zealot, model.Pos(500, 500)); err != nil {
		t.Fatalf("AttackPosition failed: %v", err)
	}
	if err := is.Stop(zealot); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if is.Sleeping(zealot) {
		t.Error("stop should not leave the unit sleeping")
	}
	if is.Issued() != 2 {
		t.Errorf("Issued() = %d, want 2", is.Issued())
	}
}

func TestIssuerErrors(t *testing.T) {
	sink := &fakeSink{err: errors.New("socket closed")}
	is := NewIssuer(sink)
	units := snapshot()
	is.Begin(1, units)
	zealot, _ := units.Get(1)

	err := is.AttackPosition(zealot, model.Pos(1, 1))
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("err = %v, want CommandError", err)
	}
	if cmdErr.UnitID != 1 || cmdErr.Command != "attack_move" {
		t.Errorf("unexpected CommandError %+v", cmdErr)
	}
	if is.Sleeping(zealot) {
		t.Error("failed command must not put the unit to sleep")
	}

	ghost := &model.Unit{ID: 77, Type: unittype.ProtossZealot, HP: 100}
	if err := is.MoveTo(ghost, model.Pos(1, 1)); !errors.Is(err, ErrUnitGone) {
		t.Errorf("MoveTo unknown unit: err=%v, want ErrUnitGone", err)
	}
	if err := is.Attack(zealot, ghost); !errors.Is(err, ErrUnitGone) {
		t.Errorf("Attack unknown target: err=%v, want ErrUnitGone", err)
	}
}

func TestBeginForgetsVanishedUnits(t *testing.T) {
	is := NewIssuer(&fakeSink{})
	units := snapshot()
	is.Begin(1, units)
	zealot, _ := units.Get(1)
	if err := is.AttackPosition(zealot, model.Pos(1, 1)); err != nil {
		t.Fatalf("AttackPosition failed: %v", err)
	}
	is.Begin(2, model.NewUnits(nil))
	if len(is.memos) != 0 {
		t.Errorf("expected memos to be dropped, have %d", len(is.memos))
	}
}
