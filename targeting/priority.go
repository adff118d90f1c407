package targeting

import (
	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/unittype"
)

// Priorities run from 1 (ignore unless nothing else) to 15 (kill first).
const (
	MaxPriority = 15
	MinPriority = 1

	// buildingPriority separates real targets from passive structures.
	buildingPriority = 7
	recentAttack     = 96
)

// Priority ranks how urgently t should die.
func (s *Selector) Priority(t *model.Unit) int {
	info := t.Info()
	switch t.Type {
	case unittype.ZergInfestedTerran, unittype.ProtossHighTemplar, unittype.ProtossReaver:
		return 15
	case unittype.TerranSpiderMine:
		if !t.Burrowed {
			return 15
		}
	case unittype.ProtossObserver:
		if s.Cloaked {
			return 15
		}
		return 13
	case unittype.ProtossArbiter, unittype.TerranSiegeTankSiegeMode:
		return 14
	case unittype.TerranSiegeTankTankMode, unittype.TerranDropship, unittype.ProtossShuttle,
		unittype.TerranScienceVessel, unittype.ZergScourge:
		return 13
	case unittype.TerranBunker:
		return 11
	}

	if info.IsWorker() {
		return s.workerPriority(t)
	}
	switch {
	case info.CanAttack():
		return 11
	case info.Has(unittype.Spellcaster):
		return 10
	case info.Has(unittype.ResourceDepot):
		return 7
	case t.Type == unittype.ProtossPylon || t.Type == unittype.ZergSpawningPool ||
		t.Type == unittype.TerranFactory || t.Type == unittype.TerranArmory:
		return 5
	case !t.Completed || (needsPower(t.Type) && !t.Powered):
		return 2
	case info.Price.Gas > 0:
		return 4
	case info.Price.Minerals > 0:
		return 3
	}
	return MinPriority
}

func (s *Selector) workerPriority(t *model.Unit) int {
	if t.Repairing {
		if target, ok := s.orderTarget(t); ok {
			if target.Info().Ground.Exists() && target.Type != unittype.TerranBunker {
				return 14
			}
			if target.Type == unittype.TerranBunker {
				return 13
			}
		}
	}
	switch {
	case t.LastAttackFrame > 0 && s.Frame-t.LastAttackFrame < recentAttack:
		return 11
	case t.Constructing:
		return 10
	}
	return 9
}

// needsPower reports Protoss structures that shut down without a pylon.
func needsPower(t unittype.Type) bool {
	info := t.Info()
	return info.Race == unittype.Protoss && info.IsBuilding() &&
		t != unittype.ProtossNexus && t != unittype.ProtossPylon && t != unittype.ProtossAssimilator
}

func (s *Selector) orderTarget(u *model.Unit) (*model.Unit, bool) {
	if s.Units == nil {
		return nil, false
	}
	return s.Units.OrderTarget(u)
}
