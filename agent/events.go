package agent

import (
	"fmt"

	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/skirmish"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

// EventKind identifies the category of a game event that may trigger a
// doctrine switch by the strategist.
type EventKind string

const (
	EventFirstContact         EventKind = "first_contact"
	EventEngagementStarted    EventKind = "engagement_started"
	EventEngagementEnded      EventKind = "engagement_ended"
	EventArmyDevastated       EventKind = "army_devastated"
	EventBaseInDanger         EventKind = "base_in_danger"
	EventCriticalBuildingLost EventKind = "critical_building_lost"
)

// Event represents a significant change detected by diffing consecutive
// ticks. Events are logged, journaled and handed to the strategist.
type Event struct {
	Kind   EventKind
	Tick   int
	Detail string
}

// stateSnapshot captures the diffable fields from one tick.
type stateSnapshot struct {
	buildingIDs  map[int]unittype.Type // owned buildings
	armyIDs      map[int]bool          // owned combat units
	enemiesSeen  bool
	engaged      int // skirmishes with shots exchanged or about to be
	baseInDanger bool
}

// armyDevastatedFloor avoids reporting early skirmishes between a handful of units.
const armyDevastatedFloor = 6

// isCriticalBuilding reports buildings whose loss changes what the army is
// fighting for: depots and the production and tech they unlock.
func isCriticalBuilding(t unittype.Type) bool {
	info := t.Info()
	if info.Has(unittype.ResourceDepot) {
		return true
	}
	switch t {
	case unittype.TerranBarracks, unittype.TerranFactory,
		unittype.ProtossGateway, unittype.ProtossCyberneticsCore,
		unittype.ZergSpawningPool, unittype.ZergHydraliskDen:
		return true
	}
	return false
}

// isCombatUnit is any completed armed unit of ours that is not a worker.
func isCombatUnit(u *model.Unit) bool {
	info := u.Info()
	return u.Completed && info.CanAttack() && !info.IsWorker() && !info.IsBuilding()
}

// takeSnapshot captures the current diffable state for next tick's comparison.
func takeSnapshot(units *model.Units, skirmishes []skirmish.Skirmish, baseInDanger bool) stateSnapshot {
	snap := stateSnapshot{
		buildingIDs:  make(map[int]unittype.Type),
		armyIDs:      make(map[int]bool),
		baseInDanger: baseInDanger,
	}
	for _, u := range units.All() {
		if !u.Alive() {
			continue
		}
		if u.IsEnemy() {
			snap.enemiesSeen = true
			continue
		}
		if !u.IsMe() {
			continue
		}
		if u.Info().IsBuilding() {
			snap.buildingIDs[u.ID] = u.Type
		} else if isCombatUnit(u) {
			snap.armyIDs[u.ID] = true
		}
	}
	for i := range skirmishes {
		if skirmishes[i].Engaged {
			snap.engaged++
		}
	}
	return snap
}

// detectEvents compares the current snapshot against the previous one and
// returns any triggered events. Returns nil if prev is nil (first tick).
func detectEvents(tick int, cur stateSnapshot, prev *stateSnapshot) []Event {
	if prev == nil {
		return nil
	}

	var events []Event

	// 1. first_contact: enemies visible for the first time
	if !prev.enemiesSeen && cur.enemiesSeen {
		events = append(events, Event{
			Kind:   EventFirstContact,
			Tick:   tick,
			Detail: "First contact: enemies now visible",
		})
	}

	// 2. engagement_started / engagement_ended
	switch {
	case prev.engaged == 0 && cur.engaged > 0:
		events = append(events, Event{
			Kind:   EventEngagementStarted,
			Tick:   tick,
			Detail: fmt.Sprintf("Engagement started in %d skirmishes", cur.engaged),
		})
	case prev.engaged > 0 && cur.engaged == 0:
		events = append(events, Event{
			Kind:   EventEngagementEnded,
			Tick:   tick,
			Detail: "Engagement ended",
		})
	}

	// 3. army_devastated: >50% of the army lost since last tick
	if len(prev.armyIDs) >= armyDevastatedFloor {
		lost := countMissing(prev.armyIDs, cur.armyIDs)
		if lost > 0 && float64(lost)/float64(len(prev.armyIDs)) > 0.5 {
			events = append(events, Event{
				Kind:   EventArmyDevastated,
				Tick:   tick,
				Detail: fmt.Sprintf("Army devastated: lost %d of %d combat units", lost, len(prev.armyIDs)),
			})
		}
	}

	// 4. base_in_danger: armed enemy ground units reached the main base
	if !prev.baseInDanger && cur.baseInDanger {
		events = append(events, Event{
			Kind:   EventBaseInDanger,
			Tick:   tick,
			Detail: "Enemy army at our base",
		})
	}

	// 5. critical_building_lost: a critical building present last tick is now gone
	for id, typ := range prev.buildingIDs {
		if !isCriticalBuilding(typ) {
			continue
		}
		if _, exists := cur.buildingIDs[id]; !exists {
			events = append(events, Event{
				Kind:   EventCriticalBuildingLost,
				Tick:   tick,
				Detail: fmt.Sprintf("Lost critical building: %s (id %d)", typ, id),
			})
			break // one event per tick is enough
		}
	}

	return events
}

// countMissing returns how many IDs in prev are absent from cur.
func countMissing(prev, cur map[int]bool) int {
	n := 0
	for id := range prev {
		if !cur[id] {
			n++
		}
	}
	return n
}
