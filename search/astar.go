package search

// Path is a sequence of 4-adjacent cells from start to goal inclusive. It is
// empty only when start and goal are the same cell.
type Path []Coord

// Cost sums the entry cost of every cell after the first.
func (p Path) Cost(m GridMap) float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += m.MovementCost(p[i].X, p[i].Y)
	}
	return total
}

// Start returns the first cell of the path.
func (p Path) Start() (Coord, bool) {
	if len(p) == 0 {
		return Coord{}, false
	}
	return p[0], true
}

// End returns the last cell of the path.
func (p Path) End() (Coord, bool) {
	if len(p) == 0 {
		return Coord{}, false
	}
	return p[len(p)-1], true
}

type node struct {
	at     Coord
	g      float64
	f      float64
	parent *node
	closed bool
}

// FindPath returns the cheapest path from start to goal using A* with a
// Manhattan heuristic. The heuristic is admissible while every enterable cell
// costs at least 1. The start cell's own cost is never consulted.
//
// It reports false when either end is out of bounds, the goal is impassable,
// no route exists, or MaxExpansions is exhausted.
func (e Engine) FindPath(m GridMap, start, goal Coord) (Path, bool) {
	return e.findPath(m, start, goal, nil)
}

// TracePath is FindPath that also returns every cell in the order it was
// expanded, for debug overlays.
func (e Engine) TracePath(m GridMap, start, goal Coord) (Path, []Coord, bool) {
	visited := make([]Coord, 0, 64)
	path, ok := e.findPath(m, start, goal, &visited)
	return path, visited, ok
}

func (e Engine) findPath(m GridMap, start, goal Coord, visited *[]Coord) (Path, bool) {
	if m == nil {
		return nil, false
	}
	gridW, gridH := m.Width(), m.Height()
	if !inBounds(start, gridW, gridH) || !inBounds(goal, gridW, gridH) {
		return nil, false
	}
	if start == goal {
		return Path{}, true
	}
	// The goal check also covers an impassable start: the agent already
	// stands on start, so only the destination has to be enterable.
	if !Passable(m.MovementCost(goal.X, goal.Y)) {
		return nil, false
	}

	nodes := make(map[Coord]*node, 64)
	open := newFrontier[*node]()

	first := &node{at: start, g: 0, f: float64(Manhattan(start, goal))}
	nodes[start] = first
	open.push(first, first.f)

	expansions := 0
	for open.len() > 0 {
		current, f, _ := open.pop()
		// A node re-pushed with a lower f leaves its older entry behind.
		if current.closed || f != current.f {
			continue
		}

		if visited != nil {
			*visited = append(*visited, current.at)
		}
		if current.at == goal {
			return reconstructPath(current), true
		}

		if e.MaxExpansions > 0 && expansions >= e.MaxExpansions {
			return nil, false
		}
		expansions++
		current.closed = true

		for _, n := range neighbors(current.at, gridW, gridH) {
			cost := m.MovementCost(n.X, n.Y)
			if !Passable(cost) {
				continue
			}
			tentative := current.g + cost
			next, seen := nodes[n]
			if seen && tentative >= next.g {
				continue
			}
			if !seen {
				next = &node{at: n}
				nodes[n] = next
			}
			next.g = tentative
			next.f = tentative + float64(Manhattan(n, goal))
			next.parent = current
			// Closed cells keep the cheaper cost but are not expanded again.
			if !next.closed {
				open.push(next, next.f)
			}
		}
	}

	return nil, false
}

func reconstructPath(goal *node) Path {
	path := make(Path, 0, 32)
	for n := goal; n != nil; n = n.parent {
		path = append(path, n.at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
