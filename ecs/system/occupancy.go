package system

import (
	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/search"
)

type occupant struct {
	entity ecs.Entity
	side   search.Side
}

// OccupancyIndex maps each cell to the one entity standing on it. It
// implements search.Occupancy; a cell reports at most one side.
type OccupancyIndex struct {
	cells map[search.Coord]occupant
}

func NewOccupancyIndex(w *ecs.World) *OccupancyIndex {
	idx := &OccupancyIndex{}
	idx.Rebuild(w)
	return idx
}

// Rebuild rescans every entity with a GridPosition and a Faction. When two
// entities share a cell the lower id wins, whatever their sides.
func (o *OccupancyIndex) Rebuild(w *ecs.World) {
	o.cells = make(map[search.Coord]occupant)
	ecs.ForEach2(w, component.GridPositionComponent.Kind(), component.FactionComponent.Kind(), func(e ecs.Entity, pos *component.GridPosition, f *component.Faction) {
		if _, taken := o.cells[pos.At]; !taken {
			o.cells[pos.At] = occupant{entity: e, side: f.Side}
		}
	})
}

func (o *OccupancyIndex) FriendlyAt(x, y int) bool {
	side, ok := o.SideAt(search.C(x, y))
	return ok && side == search.Friendly
}

func (o *OccupancyIndex) HostileAt(x, y int) bool {
	side, ok := o.SideAt(search.C(x, y))
	return ok && side == search.Hostile
}

// At returns the entity standing on c.
func (o *OccupancyIndex) At(c search.Coord) (ecs.Entity, bool) {
	occ, ok := o.cells[c]
	return occ.entity, ok
}

func (o *OccupancyIndex) SideAt(c search.Coord) (search.Side, bool) {
	occ, ok := o.cells[c]
	return occ.side, ok
}

// move shifts e from one cell to another. It is a no-op for entities the
// index does not hold, and never evicts another occupant of to.
func (o *OccupancyIndex) move(e ecs.Entity, from, to search.Coord) {
	occ, ok := o.cells[from]
	if !ok || occ.entity != e {
		return
	}
	delete(o.cells, from)
	if _, taken := o.cells[to]; !taken {
		o.cells[to] = occ
	}
}

// canEnter reports whether e may step onto c. Cells held by another entity
// are closed, except that followers of one side may pile up on their shared
// goal.
func canEnter(w *ecs.World, occ *OccupancyIndex, e ecs.Entity, c search.Coord, goal bool) bool {
	other, taken := occ.At(c)
	if !taken || other == e {
		return true
	}
	if !goal {
		return false
	}
	f, ok := ecs.Get(w, e, component.FactionComponent.Kind())
	if !ok {
		return false
	}
	side, _ := occ.SideAt(c)
	return side == f.Side
}
