package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/gridtactics/levels"
	"github.com/milk9111/gridtactics/search"
)

var (
	errBadCoord    = errors.New("gridquery: coordinate must look like x,y")
	errUnknownMode = errors.New("gridquery: mode must be path, reach or range")
	errNoOrigin    = errors.New("gridquery: no -from given and no unit to start from")
)

type query struct {
	mode   string
	from   string
	to     string
	budget float64
	hops   int
	side   search.Side
	trace  bool
}

func parseCoord(s string) (search.Coord, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return search.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return search.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return search.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	return search.C(x, y), nil
}

// origin resolves -from. Without it the first unit of the query's side is
// used, and its move and reach fill in a zero budget or hop count.
func (q query) origin(lvl *levels.Level) (search.Coord, float64, int, error) {
	if q.from != "" {
		c, err := parseCoord(q.from)
		return c, q.budget, q.hops, err
	}
	for _, u := range lvl.Units() {
		if u.Side != q.side {
			continue
		}
		budget, hops := q.budget, q.hops
		if budget == 0 {
			budget = u.Move
		}
		if hops == 0 {
			hops = u.Reach
		}
		return u.At, budget, hops, nil
	}
	return search.Coord{}, 0, 0, errNoOrigin
}

// run answers q against lvl and returns the rendered overlay followed by a
// one-line summary.
func (q query) run(lvl *levels.Level) (string, error) {
	from, budget, hops, err := q.origin(lvl)
	if err != nil {
		return "", err
	}

	var (
		overlay = levels.Overlay{ShowUnits: true}
		summary string
	)
	switch q.mode {
	case "path":
		to, err := parseCoord(q.to)
		if err != nil {
			return "", err
		}
		path, visited, ok := search.TracePath(lvl, from, to)
		if q.trace {
			overlay.Visited = visited
		}
		if !ok {
			summary = fmt.Sprintf("no path %s -> %s", from, to)
			break
		}
		overlay.Path = path
		summary = fmt.Sprintf("path %s -> %s: %d steps, cost %g", from, to, max(len(path)-1, 0), path.Cost(lvl))
		if q.trace {
			summary += fmt.Sprintf(", expanded %d", len(visited))
		}
	case "reach":
		reach := search.ReachableArea(lvl, from, budget)
		overlay.Reach = reach
		summary = fmt.Sprintf("reach from %s budget %g: %d cells", from, budget, reach.Len())
	case "range":
		rng := search.ComputeRange(lvl, lvl.Occupancy(), from, hops, q.side)
		overlay.Range = rng
		summary = fmt.Sprintf("range from %s hops %d side %s: %d cells", from, hops, q.side, rng.Len())
	default:
		return "", fmt.Errorf("%w: %q", errUnknownMode, q.mode)
	}

	return levels.Render(lvl, overlay) + summary + "\n", nil
}
