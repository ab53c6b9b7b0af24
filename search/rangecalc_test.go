package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRangeHostileTerminatesBranch(t *testing.T) {
	m := NewCostGrid(9, 9, 1)
	occ := newOccupants()
	occ.hostile[C(3, 2)] = true

	r := ComputeRange(m, occ, C(2, 2), 3, Friendly)

	assert.True(t, r.Contains(C(3, 2)), "hostile target should be in range")
	assert.False(t, r.Contains(C(4, 2)))
	assert.False(t, r.Contains(C(5, 2)))

	assert.True(t, r.Contains(C(2, 5)), "down extends 3 hops")
	assert.False(t, r.Contains(C(2, 6)))
	assert.True(t, r.Contains(C(0, 2)), "left runs to the edge")
	assert.True(t, r.Contains(C(2, 0)), "up runs to the edge")
	assert.True(t, r.Contains(C(3, 4)))
	assert.True(t, r.Contains(C(2, 2)), "origin is in range")
}

func TestComputeRangeBlockingSymmetry(t *testing.T) {
	m := NewCostGrid(6, 5, 1)
	occ := newOccupants()
	occ.friendly[C(1, 2)] = true
	occ.hostile[C(2, 2)] = true
	origin := C(0, 2)

	friendly := ComputeRange(m, occ, origin, 4, Friendly)
	assert.False(t, friendly.Contains(C(1, 2)), "own unit blocks")
	assert.True(t, friendly.Contains(C(2, 2)), "enemy is a target")
	assert.False(t, friendly.Contains(C(3, 2)), "nothing past the enemy")

	hostile := ComputeRange(m, occ, origin, 4, Hostile)
	assert.True(t, hostile.Contains(C(1, 2)), "enemy is a target")
	assert.False(t, hostile.Contains(C(2, 2)), "own unit blocks")
	assert.False(t, hostile.Contains(C(3, 2)))
}

func TestComputeRangeCorridor(t *testing.T) {
	m := NewCostGrid(6, 1, 1)
	cases := []struct {
		name     string
		friendly []Coord
		hostile  []Coord
		side     Side
		want     []Coord
	}{
		{"open", nil, nil, Friendly, []Coord{C(0, 0), C(1, 0), C(2, 0), C(3, 0), C(4, 0)}},
		{"enemy_terminates", nil, []Coord{C(2, 0)}, Friendly, []Coord{C(0, 0), C(1, 0), C(2, 0)}},
		{"ally_blocks", []Coord{C(2, 0)}, nil, Friendly, []Coord{C(0, 0), C(1, 0)}},
		{"hostile_side_ally_blocks", nil, []Coord{C(2, 0)}, Hostile, []Coord{C(0, 0), C(1, 0)}},
		{"hostile_side_enemy_terminates", []Coord{C(1, 0)}, nil, Hostile, []Coord{C(0, 0), C(1, 0)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			occ := newOccupants()
			for _, f := range c.friendly {
				occ.friendly[f] = true
			}
			for _, h := range c.hostile {
				occ.hostile[h] = true
			}
			got := ComputeRange(m, occ, C(0, 0), 4, c.side)
			assert.Equal(t, c.want, got.Coords())
		})
	}
}

func TestComputeRangeEdgeCases(t *testing.T) {
	m := gridFrom(
		".#.",
		"...",
	)
	occ := newOccupants()
	occ.friendly[C(0, 0)] = true

	t.Run("zero_hops", func(t *testing.T) {
		r := ComputeRange(m, occ, C(0, 0), 0, Friendly)
		assert.Equal(t, []Coord{C(0, 0)}, r.Coords())
	})
	t.Run("out_of_bounds", func(t *testing.T) {
		r := ComputeRange(m, occ, C(-1, 0), 3, Friendly)
		assert.Equal(t, 0, r.Len())
		assert.Empty(t, r.Coords())
	})
	t.Run("walls_never_included", func(t *testing.T) {
		r := ComputeRange(m, nil, C(0, 1), 5, Friendly)
		assert.False(t, r.Contains(C(1, 0)))
		assert.Equal(t, 5, r.Len())
	})
	t.Run("hops_ignore_terrain_cost", func(t *testing.T) {
		swamp := gridFrom("999")
		r := ComputeRange(swamp, nil, C(0, 0), 2, Friendly)
		assert.Equal(t, 3, r.Len())
	})
}

func TestComputeRangeHopBound(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 40; i++ {
		m := randomGrid(rng, 4+rng.Intn(6), 4+rng.Intn(6), 0.15)
		origin := C(rng.Intn(m.W), rng.Intn(m.H))
		occ := newOccupants()
		for j := 0; j < 4; j++ {
			c := C(rng.Intn(m.W), rng.Intn(m.H))
			if c == origin || occ.friendly[c] || occ.hostile[c] {
				continue
			}
			if rng.Intn(2) == 0 {
				occ.friendly[c] = true
			} else {
				occ.hostile[c] = true
			}
		}
		maxHops := rng.Intn(5)
		side := Side(rng.Intn(2))

		open := plainBFS(m, origin)
		r := ComputeRange(m, occ, origin, maxHops, side)
		for _, c := range r.Coords() {
			d, ok := open[c]
			require.True(t, ok, "grid %d: %v not walkable from origin", i, c)
			require.LessOrEqual(t, d, maxHops, "grid %d:\n%s", i, drawCoords(m.W, m.H, r.Coords()))
			if c == origin {
				continue
			}
			if side == Friendly {
				require.False(t, occ.friendly[c], "grid %d: ally cell %v included", i, c)
			} else {
				require.False(t, occ.hostile[c], "grid %d: ally cell %v included", i, c)
			}
		}

		unblocked := ComputeRange(m, nil, origin, maxHops, side)
		for c, d := range open {
			if d <= maxHops {
				require.True(t, unblocked.Contains(c), "grid %d: %v missing without occupants", i, c)
			}
		}
	}
}

func TestComputeRangeDeterministic(t *testing.T) {
	m := gridFrom(
		"......",
		".#..#.",
		"......",
	)
	occ := newOccupants()
	occ.hostile[C(3, 1)] = true
	first := ComputeRange(m, occ, C(0, 0), 4, Friendly).Coords()
	for i := 0; i < 10; i++ {
		require.Equal(t, first, ComputeRange(m, occ, C(0, 0), 4, Friendly).Coords())
	}
}
