package levels

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/milk9111/gridtactics/search"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyLevel      = errors.New("levels: level has no rows")
	ErrRaggedRows      = errors.New("levels: rows differ in length")
	ErrBadGlyph        = errors.New("levels: terrain glyph must be a single ASCII character")
	ErrUnknownTerrain  = errors.New("levels: glyph not in terrain legend")
	ErrInvalidCost     = errors.New("levels: terrain cost must be >= 1 or .inf")
	ErrUnknownSide     = errors.New("levels: unknown unit side")
	ErrUnknownRole     = errors.New("levels: unknown unit role")
	ErrUnitOutOfBounds = errors.New("levels: unit outside the level")
	ErrGoalOutOfBounds = errors.New("levels: goal outside the level")
	ErrUnitsOverlap    = errors.New("levels: two units share a cell")
)

// TerrainSpec describes one legend entry.
type TerrainSpec struct {
	Name     string  `yaml:"name"`
	Cost     float64 `yaml:"cost"`
	Diggable bool    `yaml:"diggable"`
	Floor    bool    `yaml:"floor"`
}

type UnitSpec struct {
	Name  string  `yaml:"name"`
	Side  string  `yaml:"side"`
	X     int     `yaml:"x"`
	Y     int     `yaml:"y"`
	Move  float64 `yaml:"move"`
	Reach int     `yaml:"reach"`
	Role  string  `yaml:"role"`
}

type GoalSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Spec is the on-disk YAML form of a level.
type Spec struct {
	Name    string                 `yaml:"name"`
	Terrain map[string]TerrainSpec `yaml:"terrain"`
	Script  string                 `yaml:"script"`
	Rows    []string               `yaml:"rows"`
	Units   []UnitSpec             `yaml:"units"`
	Goals   []GoalSpec             `yaml:"goals"`
}

// Role decides which systems drive a unit.
type Role string

const (
	RoleTactics Role = "tactics"
	RoleCreep   Role = "creep"
	RoleMinion  Role = "minion"
)

func parseRole(s string) (Role, bool) {
	switch Role(s) {
	case "", RoleTactics:
		return RoleTactics, true
	case RoleCreep, RoleMinion:
		return Role(s), true
	}
	return "", false
}

// Unit is a unit placed by the level file.
type Unit struct {
	Name  string
	Side  search.Side
	Role  Role
	At    search.Coord
	Move  float64
	Reach int
}

// Level is a tile map with per-cell entry costs. It implements
// search.GridMap.
type Level struct {
	name     string
	width    int
	height   int
	glyphs   []byte
	costs    []float64
	terrain  map[byte]TerrainSpec
	floor    byte
	script   *CostScript
	units    []Unit
	goals    []search.Coord
	revision uint64
}

// Parse decodes a YAML level. Scripts named by the level are resolved with
// LoadScript.
func Parse(name string, data []byte) (*Level, error) {
	return parse(name, data, LoadScript)
}

func parse(name string, data []byte, readScript func(string) ([]byte, error)) (*Level, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = name
	}

	var script *CostScript
	if spec.Script != "" {
		src, err := readScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("levels: load script %s for %s: %w", spec.Script, name, err)
		}
		script, err = CompileCostScript(spec.Script, src)
		if err != nil {
			return nil, err
		}
	}

	lvl, err := FromSpec(spec, script)
	if err != nil {
		return nil, fmt.Errorf("levels: build %s: %w", name, err)
	}
	return lvl, nil
}

// FromSpec builds a level from an already decoded spec. script may be nil.
func FromSpec(spec Spec, script *CostScript) (*Level, error) {
	if len(spec.Rows) == 0 || len(spec.Rows[0]) == 0 {
		return nil, ErrEmptyLevel
	}

	terrain := make(map[byte]TerrainSpec, len(spec.Terrain))
	var floors []byte
	for glyph, t := range spec.Terrain {
		if len(glyph) != 1 || glyph[0] > asciiMax {
			return nil, fmt.Errorf("%w: %q", ErrBadGlyph, glyph)
		}
		if math.IsNaN(t.Cost) || (t.Cost < 1 && !math.IsInf(t.Cost, 1)) {
			return nil, fmt.Errorf("%w: %q costs %v", ErrInvalidCost, glyph, t.Cost)
		}
		terrain[glyph[0]] = t
		if t.Floor && !math.IsInf(t.Cost, 1) {
			floors = append(floors, glyph[0])
		}
	}

	width := len(spec.Rows[0])
	height := len(spec.Rows)
	lvl := &Level{
		name:    spec.Name,
		width:   width,
		height:  height,
		glyphs:  make([]byte, 0, width*height),
		costs:   make([]float64, width*height),
		terrain: terrain,
		floor:   '.',
		script:  script,
	}
	if len(floors) > 0 {
		sort.Slice(floors, func(i, j int) bool { return floors[i] < floors[j] })
		lvl.floor = floors[0]
	}

	for y, row := range spec.Rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			if _, ok := terrain[row[x]]; !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTerrain, row[x], x, y)
			}
			lvl.glyphs = append(lvl.glyphs, row[x])
		}
	}

	placed := make(map[search.Coord]string, len(spec.Units))
	for _, u := range spec.Units {
		side, ok := search.ParseSide(u.Side)
		if !ok {
			return nil, fmt.Errorf("%w: %q for unit %s", ErrUnknownSide, u.Side, u.Name)
		}
		role, ok := parseRole(u.Role)
		if !ok {
			return nil, fmt.Errorf("%w: %q for unit %s", ErrUnknownRole, u.Role, u.Name)
		}
		if !lvl.inBounds(u.X, u.Y) {
			return nil, fmt.Errorf("%w: %s at (%d,%d)", ErrUnitOutOfBounds, u.Name, u.X, u.Y)
		}
		at := search.C(u.X, u.Y)
		if other, taken := placed[at]; taken {
			return nil, fmt.Errorf("%w: %s and %s at (%d,%d)", ErrUnitsOverlap, other, u.Name, u.X, u.Y)
		}
		placed[at] = u.Name
		lvl.units = append(lvl.units, Unit{
			Name:  u.Name,
			Side:  side,
			Role:  role,
			At:    at,
			Move:  u.Move,
			Reach: u.Reach,
		})
	}
	for _, g := range spec.Goals {
		if !lvl.inBounds(g.X, g.Y) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrGoalOutOfBounds, g.X, g.Y)
		}
		lvl.goals = append(lvl.goals, search.C(g.X, g.Y))
	}

	if err := lvl.bake(); err != nil {
		return nil, err
	}
	return lvl, nil
}

const asciiMax = 0x7f

// bake recomputes every cell cost from the legend and the cost script.
func (l *Level) bake() error {
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			if err := l.bakeCell(x, y); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Level) bakeCell(x, y int) error {
	idx := y*l.width + x
	t := l.terrain[l.glyphs[idx]]
	cost := t.Cost
	if l.script != nil && !math.IsInf(cost, 1) {
		scripted, err := l.script.Eval(CellInput{
			Glyph:  string(l.glyphs[idx]),
			Name:   t.Name,
			Base:   cost,
			X:      x,
			Y:      y,
			Width:  l.width,
			Height: l.height,
		})
		if err != nil {
			return err
		}
		cost = scripted
	}
	l.costs[idx] = cost
	return nil
}

func (l *Level) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.width && y < l.height
}

func (l *Level) Name() string { return l.name }
func (l *Level) Width() int   { return l.width }
func (l *Level) Height() int  { return l.height }

// MovementCost returns the baked cost of entering (x, y), or
// search.Impassable outside the level.
func (l *Level) MovementCost(x, y int) float64 {
	if !l.inBounds(x, y) {
		return search.Impassable
	}
	return l.costs[y*l.width+x]
}

// Glyph returns the legend glyph at (x, y), or 0 outside the level.
func (l *Level) Glyph(x, y int) byte {
	if !l.inBounds(x, y) {
		return 0
	}
	return l.glyphs[y*l.width+x]
}

// Terrain returns the legend entry at (x, y).
func (l *Level) Terrain(x, y int) (TerrainSpec, bool) {
	if !l.inBounds(x, y) {
		return TerrainSpec{}, false
	}
	t, ok := l.terrain[l.glyphs[y*l.width+x]]
	return t, ok
}

// Diggable reports whether (x, y) can be dug out.
func (l *Level) Diggable(x, y int) bool {
	t, ok := l.Terrain(x, y)
	return ok && t.Diggable
}

// Dig turns a diggable cell into floor and re-bakes its cost. It reports
// whether anything changed.
func (l *Level) Dig(x, y int) bool {
	if !l.Diggable(x, y) {
		return false
	}
	if _, ok := l.terrain[l.floor]; !ok {
		return false
	}
	idx := y*l.width + x
	prev := l.glyphs[idx]
	l.glyphs[idx] = l.floor
	if err := l.bakeCell(x, y); err != nil {
		l.glyphs[idx] = prev
		return false
	}
	l.revision++
	return true
}

// Revision increments every time the level's costs change.
func (l *Level) Revision() uint64 { return l.revision }

// Units returns a copy of the units placed by the level file.
func (l *Level) Units() []Unit {
	return append([]Unit(nil), l.units...)
}

// Goals returns a copy of the level's goal cells.
func (l *Level) Goals() []search.Coord {
	return append([]search.Coord(nil), l.goals...)
}

// Clone returns a deep copy that can be mutated independently. The compiled
// cost script is shared; it is never mutated.
func (l *Level) Clone() *Level {
	cp := *l
	cp.glyphs = append([]byte(nil), l.glyphs...)
	cp.costs = append([]float64(nil), l.costs...)
	cp.terrain = make(map[byte]TerrainSpec, len(l.terrain))
	for k, v := range l.terrain {
		cp.terrain[k] = v
	}
	cp.units = l.Units()
	cp.goals = l.Goals()
	return &cp
}

// UnitOccupancy answers occupancy queries from the level's placed units.
// Each cell holds at most one unit, so a cell is never both friendly and
// hostile.
type UnitOccupancy struct {
	cells map[search.Coord]search.Side
}

// Occupancy indexes the level's units by cell.
func (l *Level) Occupancy() *UnitOccupancy {
	occ := &UnitOccupancy{cells: make(map[search.Coord]search.Side, len(l.units))}
	for _, u := range l.units {
		if _, taken := occ.cells[u.At]; !taken {
			occ.cells[u.At] = u.Side
		}
	}
	return occ
}

func (o *UnitOccupancy) FriendlyAt(x, y int) bool { return o.sideAt(x, y, search.Friendly) }
func (o *UnitOccupancy) HostileAt(x, y int) bool  { return o.sideAt(x, y, search.Hostile) }

func (o *UnitOccupancy) sideAt(x, y int, want search.Side) bool {
	side, ok := o.cells[search.C(x, y)]
	return ok && side == want
}
