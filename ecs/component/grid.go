package component

import (
	"github.com/milk9111/gridtactics/levels"
	"github.com/milk9111/gridtactics/search"
)

// LevelMap holds the level every grid system searches over. One entity per
// world carries it.
type LevelMap struct {
	Level *levels.Level
}

var LevelMapComponent = NewComponent[LevelMap]()

// GridPosition is the cell an entity stands on.
type GridPosition struct {
	At search.Coord
}

var GridPositionComponent = NewComponent[GridPosition]()

// Faction decides which occupants block an entity and which it can target.
type Faction struct {
	Side search.Side
}

var FactionComponent = NewComponent[Faction]()
