package component

import "github.com/milk9111/gridtactics/search"

type Unit struct {
	Name string
}

var UnitComponent = NewComponent[Unit]()

// Selected marks the unit whose movement range is shown.
type Selected struct{}

var SelectedComponent = NewComponent[Selected]()

// Mover is a unit's movement allowance for the current turn.
type Mover struct {
	Budget    float64
	Remaining float64
}

// Reset restores the full budget at the start of a turn.
func (m *Mover) Reset() {
	m.Remaining = m.Budget
}

var MoverComponent = NewComponent[Mover]()

// MovementRange caches the reachable cells for a selected unit.
type MovementRange struct {
	Origin   search.Coord
	Budget   float64
	Revision uint64
	Cells    search.ReachableSet
}

var MovementRangeComponent = NewComponent[MovementRange]()

// MoveOrder requests a move to To. MoveOrderSystem removes it once handled.
type MoveOrder struct {
	To search.Coord
}

var MoveOrderComponent = NewComponent[MoveOrder]()

// AttackReach is how many steps an attack or effect spreads, and the cells it
// currently covers.
type AttackReach struct {
	Hops  int
	Cells search.RangeSet
}

var AttackReachComponent = NewComponent[AttackReach]()
