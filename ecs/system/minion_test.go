package system

import (
	"testing"

	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/ecs/entity"
	"github.com/milk9111/gridtactics/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const digLevel = `rows:
  - "XXXXXXX"
  - "X.....X"
  - "X.###.X"
  - "XXXXXXX"
units:
  - { name: far, side: friendly, role: minion, x: 1, y: 1 }
  - { name: near, side: friendly, role: minion, x: 5, y: 1 }
`

func TestMinionSchedulerPicksCheapestMinion(t *testing.T) {
	w, lvl, units := loadWorld(t, digLevel)
	far, near := units[0], units[1]
	job, err := entity.AddDigJob(w, search.C(4, 2))
	require.NoError(t, err)

	sys := NewMinionSchedulerSystem()
	sys.Update(w)

	dj, ok := ecs.Get(w, job, component.DigJobComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, uint64(near), dj.Worker)
	m, _ := ecs.Get(w, near, component.MinionComponent.Kind())
	assert.Equal(t, uint64(job), m.Job)
	assert.Equal(t, search.C(5, 2), positionOf(t, w, near))

	idle, _ := ecs.Get(w, far, component.MinionComponent.Kind())
	assert.True(t, idle.Idle())
	assert.Equal(t, search.C(1, 1), positionOf(t, w, far))

	sys.Update(w)
	dug := eventsOfType(w.Events().Drain(), ecs.EventCellDug)
	require.Len(t, dug, 1)
	assert.Equal(t, ecs.CellDug{Entity: near, Cell: search.C(4, 2)}, dug[0].Data)
	assert.False(t, ecs.IsAlive(w, job))
	assert.Equal(t, 1.0, lvl.MovementCost(4, 2))
	assert.Equal(t, uint64(1), lvl.Revision())

	m, _ = ecs.Get(w, near, component.MinionComponent.Kind())
	assert.True(t, m.Idle())
}

func TestMinionSchedulerDropsUndiggableJobs(t *testing.T) {
	w, _, _ := loadWorld(t, digLevel)
	job, err := entity.AddDigJob(w, search.C(0, 0))
	require.NoError(t, err)

	NewMinionSchedulerSystem().Update(w)
	assert.False(t, ecs.IsAlive(w, job))
	assert.Empty(t, w.Events().Drain())
}

func TestMinionSchedulerLeavesUnreachableJobsQueued(t *testing.T) {
	w, _, units := loadWorld(t, `rows:
  - "XXXXX"
  - "X.X#X"
  - "XXXXX"
units:
  - { name: imp, side: friendly, role: minion, x: 1, y: 1 }
`)
	job, err := entity.AddDigJob(w, search.C(3, 1))
	require.NoError(t, err)

	NewMinionSchedulerSystem().Update(w)
	dj, ok := ecs.Get(w, job, component.DigJobComponent.Kind())
	require.True(t, ok)
	assert.Zero(t, dj.Worker)
	m, _ := ecs.Get(w, units[0], component.MinionComponent.Kind())
	assert.True(t, m.Idle())
}

func TestMinionSchedulerReassignsOrphanedJob(t *testing.T) {
	w, _, units := loadWorld(t, digLevel)
	far, near := units[0], units[1]
	job, err := entity.AddDigJob(w, search.C(4, 2))
	require.NoError(t, err)

	sys := NewMinionSchedulerSystem()
	sys.Update(w)
	require.True(t, ecs.DestroyEntity(w, near))

	sys.Update(w)
	dj, _ := ecs.Get(w, job, component.DigJobComponent.Kind())
	assert.Equal(t, uint64(far), dj.Worker)
}

func TestMinionSchedulerSkipsOccupiedWorkCells(t *testing.T) {
	w, _, units := loadWorld(t, `rows:
  - "XXXXXXX"
  - "X.....X"
  - "X.###.X"
  - "XXXXXXX"
units:
  - { name: imp, side: friendly, role: minion, x: 1, y: 1 }
  - { name: knight, side: friendly, x: 1, y: 2 }
`)
	imp := units[0]
	_, err := entity.AddDigJob(w, search.C(2, 2))
	require.NoError(t, err)

	NewMinionSchedulerSystem().Update(w)
	m, _ := ecs.Get(w, imp, component.MinionComponent.Kind())
	require.False(t, m.Idle())
	assert.Equal(t, search.C(2, 1), m.Path[len(m.Path)-1], "the knight's cell is not a place to stand")
	assert.Equal(t, search.C(2, 1), positionOf(t, w, imp))
	assert.Equal(t, search.C(1, 2), positionOf(t, w, units[1]))
}

func TestMinionWaitsForOccupiedCell(t *testing.T) {
	w, _, units := loadWorld(t, `rows:
  - "XXXXXXX"
  - "X....#X"
  - "XXXXXXX"
units:
  - { name: imp, side: friendly, role: minion, x: 1, y: 1 }
`)
	imp := units[0]
	_, err := entity.AddDigJob(w, search.C(5, 1))
	require.NoError(t, err)
	sys := NewMinionSchedulerSystem()

	sys.Update(w)
	require.Equal(t, search.C(2, 1), positionOf(t, w, imp))

	goblin := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, goblin, component.GridPositionComponent.Kind(), &component.GridPosition{At: search.C(3, 1)}))
	require.NoError(t, ecs.Add(w, goblin, component.FactionComponent.Kind(), &component.Faction{Side: search.Hostile}))

	sys.Update(w)
	assert.Equal(t, search.C(2, 1), positionOf(t, w, imp))
	m, _ := ecs.Get(w, imp, component.MinionComponent.Kind())
	assert.False(t, m.Idle(), "a blocked minion keeps its job")

	require.True(t, ecs.DestroyEntity(w, goblin))
	sys.Update(w)
	assert.Equal(t, search.C(3, 1), positionOf(t, w, imp))
}
