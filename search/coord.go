// Package search answers the three grid questions every map-driven system
// keeps asking: the cheapest path between two cells, the cells a unit can reach
// on a movement budget, and the cells inside an occupancy-aware effect radius.
//
// All searches run 4-way over a GridMap, allocate their own working state per
// call, and keep nothing afterwards.
package search

import (
	"fmt"
	"sort"
)

// Coord identifies a grid cell. It is comparable and is used directly as a
// map and set key.
type Coord struct {
	X int
	Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Key returns the canonical integer key x*height + y for grids of the given
// height. Value-equal coords always produce the same key.
func (c Coord) Key(height int) int {
	return c.X*height + c.Y
}

// FromKey inverts Key.
func FromKey(key, height int) Coord {
	return Coord{X: key / height, Y: key % height}
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Coord) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Adjacent reports whether a and b share an edge.
func Adjacent(a, b Coord) bool {
	return Manhattan(a, b) == 1
}

func inBounds(c Coord, width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
}

// neighbors returns the in-bounds axis-aligned neighbors of p in a fixed
// order: left, right, up, down.
func neighbors(p Coord, width, height int) []Coord {
	out := make([]Coord, 0, 4)
	if p.X > 0 {
		out = append(out, Coord{X: p.X - 1, Y: p.Y})
	}
	if p.X < width-1 {
		out = append(out, Coord{X: p.X + 1, Y: p.Y})
	}
	if p.Y > 0 {
		out = append(out, Coord{X: p.X, Y: p.Y - 1})
	}
	if p.Y < height-1 {
		out = append(out, Coord{X: p.X, Y: p.Y + 1})
	}
	return out
}

// sortRowMajor orders coords by row, then column.
func sortRowMajor(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}
