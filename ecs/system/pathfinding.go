package system

import (
	"log"

	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/levels"
	"github.com/milk9111/gridtactics/search"
)

const (
	defaultPathRepathFrames = 30
	defaultPathStepFrames   = 1
)

// PathfindingSystem walks PathFollower entities toward their goal. Paths are
// replanned every RepathFrames and whenever the level changes underneath
// them.
type PathfindingSystem struct {
	Engine search.Engine
}

func NewPathfindingSystem() *PathfindingSystem {
	return &PathfindingSystem{}
}

func (ps *PathfindingSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	lvl, ok := levelOf(w)
	if !ok {
		return
	}

	occ := NewOccupancyIndex(w)
	ecs.ForEach2(w, component.PathFollowerComponent.Kind(), component.GridPositionComponent.Kind(), func(e ecs.Entity, pf *component.PathFollower, pos *component.GridPosition) {
		if pf.Arrived {
			return
		}
		if pf.RepathFrames <= 0 {
			pf.RepathFrames = defaultPathRepathFrames
		}
		if pf.StepFrames <= 0 {
			pf.StepFrames = defaultPathStepFrames
		}

		pf.FrameCounter++
		if !pf.Planned || pf.Revision != lvl.Revision() || pf.FrameCounter%pf.RepathFrames == 0 {
			ps.plan(e, pf, pos, lvl)
		}

		if pos.At != pf.Goal && pf.FrameCounter%pf.StepFrames == 0 && pf.Next < len(pf.Path) {
			next := pf.Path[pf.Next]
			if !canEnter(w, occ, e, next, next == pf.Goal) {
				return
			}
			occ.move(e, pos.At, next)
			pos.At = next
			pf.Next++
		}

		if pos.At == pf.Goal {
			pf.Arrived = true
			pf.Path = nil
			pf.Next = 0
			w.Events().Push(ecs.Event{Type: ecs.EventGoalReached, Data: ecs.GoalReached{Entity: e, Goal: pf.Goal}})
		}
	})
}

func (ps *PathfindingSystem) plan(e ecs.Entity, pf *component.PathFollower, pos *component.GridPosition, lvl *levels.Level) {
	// Only log the transition into "stuck", not every failed replan.
	wasStuck := pf.Planned && len(pf.Path) == 0
	path, visited, ok := ps.Engine.TracePath(lvl, pos.At, pf.Goal)

	pf.Planned = true
	pf.Visited = visited
	pf.Revision = lvl.Revision()
	if !ok {
		if !wasStuck {
			log.Printf("pathfinding: entity=%d no path %s -> %s (expanded %d)", e, pos.At, pf.Goal, len(visited))
		}
		pf.Path = search.Path{}
		pf.Next = 0
		return
	}
	pf.Path = path
	pf.Next = 1
}
