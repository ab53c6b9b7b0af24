package system

import (
	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/search"
)

// AttackRangeSystem fills AttackReach.Cells for every unit that has a
// position and a faction. Allies block the spread, opponents are hit but stop
// it.
type AttackRangeSystem struct {
	Engine search.Engine
}

func NewAttackRangeSystem() *AttackRangeSystem {
	return &AttackRangeSystem{}
}

func (as *AttackRangeSystem) Update(w *ecs.World) {
	if as == nil || w == nil {
		return
	}
	lvl, ok := levelOf(w)
	if !ok {
		return
	}
	occ := NewOccupancyIndex(w)
	ecs.ForEach3(w, component.AttackReachComponent.Kind(), component.GridPositionComponent.Kind(), component.FactionComponent.Kind(), func(_ ecs.Entity, ar *component.AttackReach, pos *component.GridPosition, f *component.Faction) {
		ar.Cells = as.Engine.ComputeRange(lvl, occ, pos.At, ar.Hops, f.Side)
	})
}

// Targets returns the opposing entities inside e's attack range, lowest id
// first.
func Targets(w *ecs.World, e ecs.Entity) []ecs.Entity {
	ar, ok := ecs.Get(w, e, component.AttackReachComponent.Kind())
	if !ok {
		return nil
	}
	f, ok := ecs.Get(w, e, component.FactionComponent.Kind())
	if !ok {
		return nil
	}
	var out []ecs.Entity
	ecs.ForEach2(w, component.GridPositionComponent.Kind(), component.FactionComponent.Kind(), func(other ecs.Entity, pos *component.GridPosition, of *component.Faction) {
		if other == e || of.Side != f.Side.Opponent() {
			return
		}
		if ar.Cells.Contains(pos.At) {
			out = append(out, other)
		}
	})
	return out
}
