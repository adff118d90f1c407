package journal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nstehr/vimy/vimy-tactics/rules"
	"github.com/nstehr/vimy/vimy-tactics/skirmish"
	"github.com/nstehr/vimy/vimy-tactics/squad"
)

func openJournal(t *testing.T, path string) *Journal {
	t.Helper()
	j, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", path, err)
	}
	return j
}

func TestNewEntry(t *testing.T) {
	sk := skirmish.Skirmish{
		Fleeing:               skirmish.Outcome{MyDead: 75},
		Fighting:              skirmish.Outcome{MyDead: 100, EnemyDead: 250},
		EnemyDefending:        skirmish.Outcome{MyDead: 200, EnemyDead: 50},
		CombatEvaluation:      -75,
		Engaged:               true,
		PotentialBuildingLoss: 400,
	}
	d := squad.Decision{VanguardID: 7, Stance: rules.Hold, Rule: "guard-buildings", Units: 3}
	e := NewEntry(120, sk, d)
	want := Entry{
		Frame: 120, VanguardID: 7, Stance: rules.Hold, Rule: "guard-buildings",
		Evaluation: -75, FightDelta: 150, DefendDelta: -150, FleeLoss: 75,
		BuildingLoss: 400, Engaged: true, Units: 3,
	}
	if e != want {
		t.Errorf("NewEntry = %+v\nwant %+v", e, want)
	}
}

func TestRecordAndReadBack(t *testing.T) {
	ctx := context.Background()
	j := openJournal(t, filepath.Join(t.TempDir(), "journal.db"))
	defer j.Close()

	entries := []Entry{
		{Frame: 24, VanguardID: 1, Stance: rules.Attack, Rule: "press-advantage", Evaluation: 80, Units: 4},
		{Frame: 24, VanguardID: 9, Stance: rules.FallBack, Rule: "fall-back", Evaluation: -300, Engaged: true, Units: 2},
	}
	if err := j.Record(ctx, entries); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := j.Record(ctx, nil); err != nil {
		t.Fatalf("Record(nil) failed: %v", err)
	}
	if err := j.RecordEvent(ctx, Event{Frame: 30, Kind: "first_contact", Detail: "3 enemies"}); err != nil {
		t.Fatalf("RecordEvent failed: %v", err)
	}

	got, err := j.Entries(ctx, j.Session())
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}

	events, err := j.Events(ctx, j.Session())
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 1 || events[0].Kind != "first_contact" || events[0].Detail != "3 enemies" {
		t.Errorf("events = %+v", events)
	}
}

func TestSessionsAreSeparate(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.db")

	first := openJournal(t, path)
	if err := first.Record(ctx, []Entry{{Frame: 1, Stance: rules.Attack, Rule: "default"}}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	firstSession := first.Session()
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second := openJournal(t, path)
	defer second.Close()
	if second.Session() == firstSession {
		t.Fatal("reopened journal reused the session id")
	}
	got, err := second.Entries(ctx, second.Session())
	if err != nil || len(got) != 0 {
		t.Errorf("new session entries = %v, %v; want none", got, err)
	}
	old, err := second.Entries(ctx, firstSession)
	if err != nil || len(old) != 1 {
		t.Errorf("first session entries = %v, %v; want 1", old, err)
	}
}
