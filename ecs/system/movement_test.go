package system

import (
	"testing"

	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moveLevel = `rows:
  - "....."
  - ".#..."
  - "....."
units:
  - { name: knight, side: friendly, x: 0, y: 0, move: 2 }
  - { name: goblin, side: hostile, x: 2, y: 0 }
`

func TestMovementRangeFollowsBudget(t *testing.T) {
	w, _, units := loadWorld(t, moveLevel)
	knight := units[0]
	require.NoError(t, ecs.Add(w, knight, component.SelectedComponent.Kind(), &component.Selected{}))

	sys := NewMovementRangeSystem()
	sys.Update(w)

	mr, ok := ecs.Get(w, knight, component.MovementRangeComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, []search.Coord{search.C(0, 0), search.C(1, 0), search.C(2, 0), search.C(0, 1), search.C(0, 2)}, mr.Cells.Coords())
	cost, _ := mr.Cells.CostTo(search.C(0, 2))
	assert.Equal(t, 2.0, cost)

	m, _ := ecs.Get(w, knight, component.MoverComponent.Kind())
	m.Remaining = 1
	sys.Update(w)
	mr, _ = ecs.Get(w, knight, component.MovementRangeComponent.Kind())
	assert.Equal(t, 3, mr.Cells.Len())
	assert.Equal(t, 1.0, mr.Budget)

	ecs.Remove(w, knight, component.SelectedComponent.Kind())
	sys.Update(w)
	assert.False(t, ecs.Has(w, knight, component.MovementRangeComponent.Kind()))
}

func TestMovementRangeSkipsUnselected(t *testing.T) {
	w, _, units := loadWorld(t, moveLevel)
	NewMovementRangeSystem().Update(w)
	assert.False(t, ecs.Has(w, units[0], component.MovementRangeComponent.Kind()))
}

func TestMoveOrders(t *testing.T) {
	const level = `rows:
  - "....."
  - ".#..."
  - "....."
units:
  - { name: knight, side: friendly, x: 0, y: 0, move: 3 }
  - { name: goblin, side: hostile, x: 2, y: 0 }
`
	cases := []struct {
		name      string
		to        search.Coord
		wantType  string
		reason    string
		wantAt    search.Coord
		remaining float64
	}{
		{"occupied", search.C(2, 0), ecs.EventMoveRejected, RejectOccupied, search.C(0, 0), 3},
		{"too_far", search.C(4, 2), ecs.EventMoveRejected, RejectOutOfRange, search.C(0, 0), 3},
		{"into_wall", search.C(1, 1), ecs.EventMoveRejected, RejectOutOfRange, search.C(0, 0), 3},
		{"same_cell", search.C(0, 0), ecs.EventMoveRejected, RejectNoMove, search.C(0, 0), 3},
		{"legal", search.C(0, 2), ecs.EventUnitMoved, "", search.C(0, 2), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, _, units := loadWorld(t, level)
			knight := units[0]
			require.NoError(t, ecs.Add(w, knight, component.MoveOrderComponent.Kind(), &component.MoveOrder{To: c.to}))

			NewMoveOrderSystem().Update(w)

			events := w.Events().Drain()
			require.Len(t, events, 1)
			assert.Equal(t, c.wantType, events[0].Type)
			switch data := events[0].Data.(type) {
			case ecs.MoveRejected:
				assert.Equal(t, c.reason, data.Reason)
			case ecs.UnitMoved:
				assert.Equal(t, search.C(0, 0), data.From)
				assert.Equal(t, 2.0, data.Cost)
			}

			assert.Equal(t, c.wantAt, positionOf(t, w, knight))
			m, _ := ecs.Get(w, knight, component.MoverComponent.Kind())
			assert.Equal(t, c.remaining, m.Remaining)
			assert.False(t, ecs.Has(w, knight, component.MoveOrderComponent.Kind()), "order should be consumed")
		})
	}
}

func TestMoveOrderSpendsBudgetAcrossTurn(t *testing.T) {
	w, _, units := loadWorld(t, moveLevel)
	knight := units[0]
	sys := NewMoveOrderSystem()

	require.NoError(t, ecs.Add(w, knight, component.MoveOrderComponent.Kind(), &component.MoveOrder{To: search.C(0, 1)}))
	sys.Update(w)
	require.NoError(t, ecs.Add(w, knight, component.MoveOrderComponent.Kind(), &component.MoveOrder{To: search.C(0, 2)}))
	sys.Update(w)
	require.NoError(t, ecs.Add(w, knight, component.MoveOrderComponent.Kind(), &component.MoveOrder{To: search.C(1, 2)}))
	sys.Update(w)

	events := w.Events().Drain()
	require.Len(t, events, 3)
	assert.Len(t, eventsOfType(events, ecs.EventUnitMoved), 2)
	assert.Equal(t, ecs.EventMoveRejected, events[2].Type)
	assert.Equal(t, search.C(0, 2), positionOf(t, w, knight))

	ResetMovers(w)
	require.NoError(t, ecs.Add(w, knight, component.MoveOrderComponent.Kind(), &component.MoveOrder{To: search.C(1, 2)}))
	sys.Update(w)
	assert.Equal(t, search.C(1, 2), positionOf(t, w, knight))
}
