package search

// ReachableSet maps every cell reachable within a budget to the cheapest
// accumulated cost of reaching it. The start cell is always present at 0.
type ReachableSet map[Coord]float64

// Contains reports whether c is reachable.
func (r ReachableSet) Contains(c Coord) bool {
	_, ok := r[c]
	return ok
}

// CostTo returns the cheapest cost of reaching c.
func (r ReachableSet) CostTo(c Coord) (float64, bool) {
	cost, ok := r[c]
	return cost, ok
}

func (r ReachableSet) Len() int {
	return len(r)
}

// Coords returns the members in row-major order.
func (r ReachableSet) Coords() []Coord {
	out := make([]Coord, 0, len(r))
	for c := range r {
		out = append(out, c)
	}
	sortRowMajor(out)
	return out
}

// ReachableArea floods out from start with Dijkstra and returns every cell
// whose cheapest cost is within budget. The budget limits accumulated cost,
// not steps. A start outside the grid yields an empty set.
func (e Engine) ReachableArea(m GridMap, start Coord, budget float64) ReachableSet {
	out := make(ReachableSet)
	if m == nil {
		return out
	}
	gridW, gridH := m.Width(), m.Height()
	if !inBounds(start, gridW, gridH) {
		return out
	}

	best := newLedger()
	best.improve(start, 0)
	out[start] = 0

	open := newFrontier[Coord]()
	open.push(start, 0)

	for open.len() > 0 {
		current, g, _ := open.pop()
		if recorded, _ := best.cost(current); g > recorded {
			continue
		}

		for _, n := range neighbors(current, gridW, gridH) {
			cost := m.MovementCost(n.X, n.Y)
			if !Passable(cost) {
				continue
			}
			tentative := g + cost
			if tentative > budget {
				continue
			}
			// Members can still get cheaper after they were first added.
			if !best.improve(n, tentative) {
				continue
			}
			out[n] = tentative
			open.push(n, tentative)
		}
	}

	return out
}
