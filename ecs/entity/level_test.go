package entity

import (
	"testing"

	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/levels"
	"github.com/milk9111/gridtactics/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevelToWorldBuildsRoles(t *testing.T) {
	cases := []struct {
		level string
		check func(t *testing.T, w *ecs.World, units []ecs.Entity)
	}{
		{
			level: "tactics",
			check: func(t *testing.T, w *ecs.World, units []ecs.Entity) {
				require.Len(t, units, 4)
				m, ok := ecs.Get(w, units[0], component.MoverComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, 5.0, m.Remaining)
				ar, ok := ecs.Get(w, units[1], component.AttackReachComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, 3, ar.Hops)
				f, _ := ecs.Get(w, units[2], component.FactionComponent.Kind())
				assert.Equal(t, search.Hostile, f.Side)
			},
		},
		{
			level: "towerdefense",
			check: func(t *testing.T, w *ecs.World, units []ecs.Entity) {
				for _, e := range units {
					pf, ok := ecs.Get(w, e, component.PathFollowerComponent.Kind())
					require.True(t, ok)
					assert.Equal(t, search.C(15, 4), pf.Goal)
					assert.False(t, ecs.Has(w, e, component.MoverComponent.Kind()))
				}
			},
		},
		{
			level: "dungeon",
			check: func(t *testing.T, w *ecs.World, units []ecs.Entity) {
				for _, e := range units {
					m, ok := ecs.Get(w, e, component.MinionComponent.Kind())
					require.True(t, ok)
					assert.True(t, m.Idle())
				}
			},
		},
	}
	for _, c := range cases {
		t.Run(c.level, func(t *testing.T) {
			lvl, err := levels.Load(c.level)
			require.NoError(t, err)
			w := ecs.NewWorld()
			units, err := LoadLevelToWorld(w, lvl)
			require.NoError(t, err)

			e, ok := ecs.First(w, component.LevelMapComponent.Kind())
			require.True(t, ok)
			lm, _ := ecs.Get(w, e, component.LevelMapComponent.Kind())
			assert.Same(t, lvl, lm.Level)

			for i, u := range lvl.Units() {
				pos, ok := ecs.Get(w, units[i], component.GridPositionComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, u.At, pos.At)
			}
			c.check(t, w, units)
		})
	}
}

func TestCreepWithoutGoalFails(t *testing.T) {
	lvl, err := levels.Parse("nogoal", []byte(`terrain: {'.': {cost: 1}}
rows: ['...']
units: [{name: creep, side: hostile, role: creep}]
`))
	require.NoError(t, err)
	_, err = LoadLevelToWorld(ecs.NewWorld(), lvl)
	assert.ErrorIs(t, err, ErrNoGoal)
}

func TestNearestGoal(t *testing.T) {
	goals := []search.Coord{search.C(9, 9), search.C(2, 1), search.C(1, 2)}
	g, ok := nearestGoal(goals, search.C(0, 0))
	assert.True(t, ok)
	assert.Equal(t, search.C(2, 1), g)

	_, ok = nearestGoal(nil, search.C(0, 0))
	assert.False(t, ok)
}
