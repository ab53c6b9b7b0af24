package levels

import (
	"strings"
	"unicode"

	"github.com/milk9111/gridtactics/search"
)

// Overlay is what Render draws on top of the terrain. Later fields win when
// they overlap: Visited, Reach, Range, Path, units, Marks.
type Overlay struct {
	Visited   []search.Coord
	Reach     search.ReachableSet
	Range     search.RangeSet
	Path      search.Path
	ShowUnits bool
	Marks     map[search.Coord]byte
}

// Render draws the level as text, one row per line.
func Render(l *Level, o Overlay) string {
	if l == nil {
		return ""
	}
	grid := make([][]byte, l.height)
	for y := 0; y < l.height; y++ {
		grid[y] = append([]byte(nil), l.glyphs[y*l.width:(y+1)*l.width]...)
	}
	put := func(c search.Coord, ch byte) {
		if l.inBounds(c.X, c.Y) {
			grid[c.Y][c.X] = ch
		}
	}

	for _, c := range o.Visited {
		put(c, 'o')
	}
	for c := range o.Reach {
		put(c, '+')
	}
	for _, c := range o.Range.Coords() {
		put(c, 'x')
	}
	for i, c := range o.Path {
		switch i {
		case 0:
			put(c, 'S')
		case len(o.Path) - 1:
			put(c, 'G')
		default:
			put(c, '*')
		}
	}
	if o.ShowUnits {
		for _, u := range l.units {
			put(u.At, UnitGlyph(u.Name, u.Side))
		}
	}
	for c, ch := range o.Marks {
		put(c, ch)
	}

	var b strings.Builder
	b.Grow((l.width + 1) * l.height)
	for y := range grid {
		b.Write(grid[y])
		b.WriteByte('\n')
	}
	return b.String()
}

// UnitGlyph is the single byte a unit is drawn as: the first byte of its
// name when that is a printable ASCII character, 'u' otherwise. Friendly
// units are upper case, hostile ones lower case.
func UnitGlyph(name string, side search.Side) byte {
	ch := byte('u')
	if name != "" && name[0] > ' ' && name[0] < asciiMax {
		ch = name[0]
	}
	if side == search.Friendly {
		return byte(unicode.ToUpper(rune(ch)))
	}
	return byte(unicode.ToLower(rune(ch)))
}
