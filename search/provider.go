package search

import "math"

// Impassable is the cost of a cell that can never be entered.
var Impassable = math.Inf(1)

// GridMap supplies the cost of entering each cell. Costs are per destination
// cell: entering (x, y) costs the same from every direction. Costs must be
// >= 0 or exactly Impassable. Callers never query outside [0,Width) x [0,Height).
type GridMap interface {
	Width() int
	Height() int
	MovementCost(x, y int) float64
}

// Occupancy reports which side, if any, stands on a cell. A cell must never
// report both.
type Occupancy interface {
	FriendlyAt(x, y int) bool
	HostileAt(x, y int) bool
}

// Side is the allegiance of the actor running a range query.
type Side int

const (
	Friendly Side = iota
	Hostile
)

func (s Side) String() string {
	switch s {
	case Friendly:
		return "friendly"
	case Hostile:
		return "hostile"
	default:
		return "unknown"
	}
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Friendly {
		return Hostile
	}
	return Friendly
}

// ParseSide accepts "friendly", "ally" or "f" for Friendly and "hostile",
// "enemy" or "h" for Hostile. Matching is case-sensitive.
func ParseSide(s string) (Side, bool) {
	switch s {
	case "friendly", "ally", "f":
		return Friendly, true
	case "hostile", "enemy", "h":
		return Hostile, true
	default:
		return Friendly, false
	}
}

// Passable reports whether a cell with the given cost can be entered.
func Passable(cost float64) bool {
	return !math.IsInf(cost, 1)
}

// CostGrid is a dense row-major GridMap, handy for callers that already hold
// their costs in a slice.
type CostGrid struct {
	W     int
	H     int
	Costs []float64
}

// NewCostGrid returns a width x height grid filled with cost.
func NewCostGrid(width, height int, cost float64) *CostGrid {
	costs := make([]float64, width*height)
	for i := range costs {
		costs[i] = cost
	}
	return &CostGrid{W: width, H: height, Costs: costs}
}

func (g *CostGrid) Width() int  { return g.W }
func (g *CostGrid) Height() int { return g.H }

func (g *CostGrid) MovementCost(x, y int) float64 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return Impassable
	}
	return g.Costs[y*g.W+x]
}

// Set changes the cost of entering (x, y). Out-of-range cells are ignored.
func (g *CostGrid) Set(x, y int, cost float64) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.Costs[y*g.W+x] = cost
}
