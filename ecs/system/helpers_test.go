package system

import (
	"testing"

	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/ecs/entity"
	"github.com/milk9111/gridtactics/levels"
	"github.com/milk9111/gridtactics/search"
	"github.com/stretchr/testify/require"
)

const terrainLegend = `terrain:
  ".": { name: floor, cost: 1, floor: true }
  "#": { name: rock, cost: .inf, diggable: true }
  "X": { name: bedrock, cost: .inf }
`

func loadWorld(t *testing.T, body string) (*ecs.World, *levels.Level, []ecs.Entity) {
	t.Helper()
	lvl, err := levels.Parse(t.Name(), []byte(terrainLegend+body))
	require.NoError(t, err)
	w := ecs.NewWorld()
	units, err := entity.LoadLevelToWorld(w, lvl)
	require.NoError(t, err)
	return w, lvl, units
}

func positionOf(t *testing.T, w *ecs.World, e ecs.Entity) search.Coord {
	t.Helper()
	pos, ok := ecs.Get(w, e, component.GridPositionComponent.Kind())
	require.True(t, ok, "entity %d has no position", e)
	return pos.At
}

func eventsOfType(events []ecs.Event, typ string) []ecs.Event {
	var out []ecs.Event
	for _, evt := range events {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}
