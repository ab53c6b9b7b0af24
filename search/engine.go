package search

// Engine runs grid searches. It holds configuration only, never results, so
// one value can be shared freely. The zero value is ready to use.
type Engine struct {
	// MaxExpansions caps how many cells FindPath may expand before giving up.
	// Zero means no cap.
	MaxExpansions int
}

var defaultEngine Engine

// FindPath runs FindPath on the zero Engine.
func FindPath(m GridMap, start, goal Coord) (Path, bool) {
	return defaultEngine.FindPath(m, start, goal)
}

// TracePath runs TracePath on the zero Engine.
func TracePath(m GridMap, start, goal Coord) (Path, []Coord, bool) {
	return defaultEngine.TracePath(m, start, goal)
}

// ReachableArea runs ReachableArea on the zero Engine.
func ReachableArea(m GridMap, start Coord, budget float64) ReachableSet {
	return defaultEngine.ReachableArea(m, start, budget)
}

// ComputeRange runs ComputeRange on the zero Engine.
func ComputeRange(m GridMap, occ Occupancy, origin Coord, maxHops int, side Side) RangeSet {
	return defaultEngine.ComputeRange(m, occ, origin, maxHops, side)
}
