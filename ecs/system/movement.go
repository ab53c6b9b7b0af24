package system

import (
	"log"

	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/search"
)

// MovementRangeSystem keeps the MovementRange of every selected unit in step
// with its position, remaining budget and the level revision.
type MovementRangeSystem struct {
	Engine search.Engine
}

func NewMovementRangeSystem() *MovementRangeSystem {
	return &MovementRangeSystem{}
}

func (ms *MovementRangeSystem) Update(w *ecs.World) {
	if ms == nil || w == nil {
		return
	}
	lvl, ok := levelOf(w)
	if !ok {
		return
	}

	var stale []ecs.Entity
	ecs.ForEach(w, component.MovementRangeComponent.Kind(), func(e ecs.Entity, _ *component.MovementRange) {
		if !ecs.Has(w, e, component.SelectedComponent.Kind()) {
			stale = append(stale, e)
		}
	})
	for _, e := range stale {
		ecs.Remove(w, e, component.MovementRangeComponent.Kind())
	}

	ecs.ForEach3(w, component.SelectedComponent.Kind(), component.MoverComponent.Kind(), component.GridPositionComponent.Kind(), func(e ecs.Entity, _ *component.Selected, m *component.Mover, pos *component.GridPosition) {
		if mr, ok := ecs.Get(w, e, component.MovementRangeComponent.Kind()); ok {
			if mr.Origin == pos.At && mr.Budget == m.Remaining && mr.Revision == lvl.Revision() {
				return
			}
		}
		cells := ms.Engine.ReachableArea(lvl, pos.At, m.Remaining)
		if err := ecs.Add(w, e, component.MovementRangeComponent.Kind(), &component.MovementRange{
			Origin:   pos.At,
			Budget:   m.Remaining,
			Revision: lvl.Revision(),
			Cells:    cells,
		}); err != nil {
			log.Printf("movement: entity=%d store range: %v", e, err)
		}
	})
}

// MoveOrderSystem applies MoveOrder components. A move is legal when the
// destination is reachable within the unit's remaining budget and nobody else
// stands there.
type MoveOrderSystem struct {
	Engine search.Engine
}

func NewMoveOrderSystem() *MoveOrderSystem {
	return &MoveOrderSystem{}
}

const (
	RejectOutOfRange = "out of range"
	RejectOccupied   = "occupied"
	RejectNoMove     = "already there"
)

func (ms *MoveOrderSystem) Update(w *ecs.World) {
	if ms == nil || w == nil {
		return
	}
	lvl, ok := levelOf(w)
	if !ok {
		return
	}
	occ := NewOccupancyIndex(w)

	var handled []ecs.Entity
	ecs.ForEach3(w, component.MoveOrderComponent.Kind(), component.MoverComponent.Kind(), component.GridPositionComponent.Kind(), func(e ecs.Entity, order *component.MoveOrder, m *component.Mover, pos *component.GridPosition) {
		handled = append(handled, e)

		reject := func(reason string) {
			w.Events().Push(ecs.Event{Type: ecs.EventMoveRejected, Data: ecs.MoveRejected{Entity: e, To: order.To, Reason: reason}})
		}
		if order.To == pos.At {
			reject(RejectNoMove)
			return
		}
		cost, ok := ms.Engine.ReachableArea(lvl, pos.At, m.Remaining).CostTo(order.To)
		if !ok {
			reject(RejectOutOfRange)
			return
		}
		if other, taken := occ.At(order.To); taken && other != e {
			reject(RejectOccupied)
			return
		}

		from := pos.At
		pos.At = order.To
		m.Remaining -= cost
		occ.move(e, from, order.To)
		w.Events().Push(ecs.Event{Type: ecs.EventUnitMoved, Data: ecs.UnitMoved{Entity: e, From: from, To: order.To, Cost: cost}})
	})

	// Orders on entities that cannot move are dropped too.
	ecs.ForEach(w, component.MoveOrderComponent.Kind(), func(e ecs.Entity, _ *component.MoveOrder) {
		handled = append(handled, e)
	})
	for _, e := range handled {
		ecs.Remove(w, e, component.MoveOrderComponent.Kind())
	}
}

// ResetMovers restores every Mover's full budget, starting a new turn.
func ResetMovers(w *ecs.World) {
	ecs.ForEach(w, component.MoverComponent.Kind(), func(_ ecs.Entity, m *component.Mover) {
		m.Reset()
	})
}
