// Package journal keeps a SQLite record of every stance decision and agent
// event so a finished game can be replayed against its evaluations.
package journal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/nstehr/vimy/vimy-tactics/rules"
	"github.com/nstehr/vimy/vimy-tactics/skirmish"
	"github.com/nstehr/vimy/vimy-tactics/squad"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		started_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS decisions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL REFERENCES sessions(id),
		frame INTEGER NOT NULL,
		vanguard_id INTEGER NOT NULL,
		stance TEXT NOT NULL,
		rule TEXT NOT NULL,
		evaluation INTEGER NOT NULL,
		fight_delta INTEGER NOT NULL,
		defend_delta INTEGER NOT NULL,
		flee_loss INTEGER NOT NULL,
		building_loss INTEGER NOT NULL,
		engaged INTEGER NOT NULL,
		units INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS decisions_session_frame ON decisions(session_id, frame)`,
	`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL REFERENCES sessions(id),
		frame INTEGER NOT NULL,
		kind TEXT NOT NULL,
		detail TEXT
	)`,
}

// Entry is one journaled stance decision.
type Entry struct {
	Frame        int
	VanguardID   int
	Stance       rules.Stance
	Rule         string
	Evaluation   int
	FightDelta   int
	DefendDelta  int
	FleeLoss     int
	BuildingLoss int
	Engaged      bool
	Units        int
}

// NewEntry joins a skirmish with the decision the squad took for it.
func NewEntry(frame int, sk skirmish.Skirmish, d squad.Decision) Entry {
	return Entry{
		Frame:        frame,
		VanguardID:   d.VanguardID,
		Stance:       d.Stance,
		Rule:         d.Rule,
		Evaluation:   sk.CombatEvaluation,
		FightDelta:   sk.Fighting.Delta(),
		DefendDelta:  sk.EnemyDefending.Delta(),
		FleeLoss:     sk.Fleeing.MyDead,
		BuildingLoss: sk.PotentialBuildingLoss,
		Engaged:      sk.Engaged,
		Units:        d.Units,
	}
}

// Event is one journaled agent event.
type Event struct {
	Frame  int
	Kind   string
	Detail string
}

type Journal struct {
	db      *sql.DB
	session uuid.UUID
}

// Open creates or appends to the journal at path and starts a new session.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// one writer; pragmas apply per connection
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping journal: %w", err)
	}

	for _, ddl := range schema {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create journal schema: %w", err)
		}
	}

	j := &Journal{db: db, session: uuid.New()}
	if _, err := db.Exec(`INSERT INTO sessions (id) VALUES (?)`, j.session.String()); err != nil {
		db.Close()
		return nil, fmt.Errorf("start session: %w", err)
	}
	return j, nil
}

// Session identifies the game this journal is recording.
func (j *Journal) Session() uuid.UUID { return j.session }

// Record stores the decisions of one tick in a single transaction.
func (j *Journal) Record(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO decisions
		(session_id, frame, vanguard_id, stance, rule, evaluation, fight_delta, defend_delta, flee_loss, building_loss, engaged, units)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare record: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, j.session.String(), e.Frame, e.VanguardID, string(e.Stance), e.Rule,
			e.Evaluation, e.FightDelta, e.DefendDelta, e.FleeLoss, e.BuildingLoss, e.Engaged, e.Units); err != nil {
			return fmt.Errorf("record frame %d: %w", e.Frame, err)
		}
	}
	return tx.Commit()
}

func (j *Journal) RecordEvent(ctx context.Context, ev Event) error {
	_, err := j.db.ExecContext(ctx, `INSERT INTO events (session_id, frame, kind, detail) VALUES (?, ?, ?, ?)`,
		j.session.String(), ev.Frame, ev.Kind, ev.Detail)
	if err != nil {
		return fmt.Errorf("record event %s: %w", ev.Kind, err)
	}
	return nil
}

// Entries returns the decisions of a session in frame order.
func (j *Journal) Entries(ctx context.Context, session uuid.UUID) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT frame, vanguard_id, stance, rule, evaluation, fight_delta,
		defend_delta, flee_loss, building_loss, engaged, units
		FROM decisions WHERE session_id = ? ORDER BY frame, id`, session.String())
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var stance string
		if err := rows.Scan(&e.Frame, &e.VanguardID, &stance, &e.Rule, &e.Evaluation, &e.FightDelta,
			&e.DefendDelta, &e.FleeLoss, &e.BuildingLoss, &e.Engaged, &e.Units); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		e.Stance = rules.Stance(stance)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Events returns the events of a session in frame order.
func (j *Journal) Events(ctx context.Context, session uuid.UUID) ([]Event, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT frame, kind, COALESCE(detail, '')
		FROM events WHERE session_id = ? ORDER BY frame, id`, session.String())
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.Frame, &ev.Kind, &ev.Detail); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (j *Journal) Close() error { return j.db.Close() }
