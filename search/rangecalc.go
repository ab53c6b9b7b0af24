package search

import "github.com/zyedidia/generic/mapset"

// RangeSet is the set of cells inside an effect or attack range.
type RangeSet struct {
	cells mapset.Set[Coord]
}

func newRangeSet() RangeSet {
	return RangeSet{cells: mapset.New[Coord]()}
}

// Contains reports whether c is in range.
func (r RangeSet) Contains(c Coord) bool {
	return r.cells.Has(c)
}

func (r RangeSet) Len() int {
	return r.cells.Size()
}

// Coords returns the members in row-major order.
func (r RangeSet) Coords() []Coord {
	out := make([]Coord, 0, r.Len())
	r.cells.Each(func(c Coord) {
		out = append(out, c)
	})
	sortRowMajor(out)
	return out
}

type occupant int

const (
	occupantNone occupant = iota
	occupantAlly
	occupantOpponent
)

func occupantAt(occ Occupancy, c Coord, side Side) occupant {
	if occ == nil {
		return occupantNone
	}
	friendly := occ.FriendlyAt(c.X, c.Y)
	hostile := occ.HostileAt(c.X, c.Y)
	switch {
	case side == Friendly && friendly, side == Hostile && hostile:
		return occupantAlly
	case side == Friendly && hostile, side == Hostile && friendly:
		return occupantOpponent
	default:
		return occupantNone
	}
}

type hop struct {
	at    Coord
	depth int
}

// ComputeRange walks breadth-first from origin for at most maxHops steps.
// Every step costs one hop regardless of terrain; impassable cells are never
// entered. A cell held by the searching side blocks the walk and is left out.
// A cell held by the other side is included as a target but the walk does not
// continue past it. The origin's own occupant is ignored.
func (e Engine) ComputeRange(m GridMap, occ Occupancy, origin Coord, maxHops int, side Side) RangeSet {
	out := newRangeSet()
	if m == nil {
		return out
	}
	gridW, gridH := m.Width(), m.Height()
	if !inBounds(origin, gridW, gridH) {
		return out
	}
	out.cells.Put(origin)

	seen := newLedger()
	seen.improve(origin, 0)

	queue := []hop{{at: origin, depth: 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.depth >= maxHops {
			continue
		}

		depth := current.depth + 1
		for _, n := range neighbors(current.at, gridW, gridH) {
			if !Passable(m.MovementCost(n.X, n.Y)) {
				continue
			}
			if !seen.improve(n, float64(depth)) {
				continue
			}
			switch occupantAt(occ, n, side) {
			case occupantAlly:
				continue
			case occupantOpponent:
				out.cells.Put(n)
			default:
				out.cells.Put(n)
				queue = append(queue, hop{at: n, depth: depth})
			}
		}
	}

	return out
}
