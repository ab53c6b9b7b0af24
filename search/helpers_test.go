package search

import (
	"math/rand"
	"strings"
)

// gridFrom builds a CostGrid from rows where '.' costs 1, '#' is impassable
// and '1'-'9' cost their digit.
func gridFrom(rows ...string) *CostGrid {
	g := NewCostGrid(len(rows[0]), len(rows), 1)
	for y, row := range rows {
		for x, ch := range row {
			switch {
			case ch == '#':
				g.Set(x, y, Impassable)
			case ch >= '0' && ch <= '9':
				g.Set(x, y, float64(ch-'0'))
			}
		}
	}
	return g
}

func randomGrid(rng *rand.Rand, w, h int, wallChance float64) *CostGrid {
	g := NewCostGrid(w, h, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < wallChance {
				g.Set(x, y, Impassable)
				continue
			}
			g.Set(x, y, float64(1+rng.Intn(5)))
		}
	}
	return g
}

// bruteForceCosts relaxes every edge until nothing changes.
func bruteForceCosts(m GridMap, start Coord) map[Coord]float64 {
	dist := map[Coord]float64{start: 0}
	for changed := true; changed; {
		changed = false
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				cur := C(x, y)
				d, ok := dist[cur]
				if !ok {
					continue
				}
				for _, n := range neighbors(cur, m.Width(), m.Height()) {
					cost := m.MovementCost(n.X, n.Y)
					if !Passable(cost) {
						continue
					}
					if prev, seen := dist[n]; !seen || d+cost < prev {
						dist[n] = d + cost
						changed = true
					}
				}
			}
		}
	}
	return dist
}

// plainBFS returns hop distances over passable cells ignoring occupants.
func plainBFS(m GridMap, origin Coord) map[Coord]int {
	depth := map[Coord]int{origin: 0}
	queue := []Coord{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range neighbors(cur, m.Width(), m.Height()) {
			if !Passable(m.MovementCost(n.X, n.Y)) {
				continue
			}
			if _, ok := depth[n]; ok {
				continue
			}
			depth[n] = depth[cur] + 1
			queue = append(queue, n)
		}
	}
	return depth
}

type occupants struct {
	friendly map[Coord]bool
	hostile  map[Coord]bool
}

func newOccupants() *occupants {
	return &occupants{friendly: map[Coord]bool{}, hostile: map[Coord]bool{}}
}

func (o *occupants) FriendlyAt(x, y int) bool { return o.friendly[C(x, y)] }
func (o *occupants) HostileAt(x, y int) bool  { return o.hostile[C(x, y)] }

func drawCoords(w, h int, cs []Coord) string {
	grid := make([][]byte, h)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", w))
	}
	for _, c := range cs {
		grid[c.Y][c.X] = 'x'
	}
	lines := make([]string, h)
	for y := range grid {
		lines[y] = string(grid[y])
	}
	return strings.Join(lines, "\n")
}
