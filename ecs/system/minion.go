package system

import (
	"log"

	"github.com/milk9111/gridtactics/ecs"
	"github.com/milk9111/gridtactics/ecs/component"
	"github.com/milk9111/gridtactics/levels"
	"github.com/milk9111/gridtactics/search"
)

// MinionSchedulerSystem hands DigJobs to idle minions and walks them to the
// job. Each job goes to the idle minion with the cheapest path to a walkable
// cell next to the job; ties go to the lower entity id.
type MinionSchedulerSystem struct {
	Engine search.Engine
}

func NewMinionSchedulerSystem() *MinionSchedulerSystem {
	return &MinionSchedulerSystem{}
}

func (ms *MinionSchedulerSystem) Update(w *ecs.World) {
	if ms == nil || w == nil {
		return
	}
	lvl, ok := levelOf(w)
	if !ok {
		return
	}
	ms.assign(w, lvl)
	ms.work(w, lvl)
}

func (ms *MinionSchedulerSystem) assign(w *ecs.World, lvl *levels.Level) {
	var dropped []ecs.Entity
	occ := NewOccupancyIndex(w)
	ecs.ForEach(w, component.DigJobComponent.Kind(), func(jobEntity ecs.Entity, job *component.DigJob) {
		if job.Worker != 0 {
			if ecs.IsAlive(w, ecs.Entity(job.Worker)) {
				return
			}
			job.Worker = 0
		}
		if !lvl.Diggable(job.Cell.X, job.Cell.Y) {
			log.Printf("minions: job=%d cell %s is not diggable, dropping", jobEntity, job.Cell)
			dropped = append(dropped, jobEntity)
			return
		}

		var (
			best     ecs.Entity
			bestPath search.Path
			bestCost float64
			found    bool
		)
		ecs.ForEach2(w, component.MinionComponent.Kind(), component.GridPositionComponent.Kind(), func(me ecs.Entity, m *component.Minion, pos *component.GridPosition) {
			if !m.Idle() {
				return
			}
			for _, stand := range workCells(lvl, job.Cell) {
				if !canEnter(w, occ, me, stand, false) {
					continue
				}
				path, ok := ms.Engine.FindPath(lvl, pos.At, stand)
				if !ok {
					continue
				}
				cost := path.Cost(lvl)
				if !found || cost < bestCost {
					best, bestPath, bestCost, found = me, path, cost, true
				}
			}
		})
		if !found {
			return
		}

		m, _ := ecs.Get(w, best, component.MinionComponent.Kind())
		m.Job = uint64(jobEntity)
		m.Path = bestPath
		m.Next = 1
		job.Worker = uint64(best)
		log.Printf("minions: job=%d cell %s -> minion=%d cost %.1f", jobEntity, job.Cell, best, bestCost)
	})
	for _, e := range dropped {
		ecs.DestroyEntity(w, e)
	}
}

func (ms *MinionSchedulerSystem) work(w *ecs.World, lvl *levels.Level) {
	var done []ecs.Entity
	occ := NewOccupancyIndex(w)
	ecs.ForEach2(w, component.MinionComponent.Kind(), component.GridPositionComponent.Kind(), func(me ecs.Entity, m *component.Minion, pos *component.GridPosition) {
		if m.Idle() {
			return
		}
		jobEntity := ecs.Entity(m.Job)
		job, ok := ecs.Get(w, jobEntity, component.DigJobComponent.Kind())
		if !ok {
			*m = component.Minion{}
			return
		}

		if m.Next < len(m.Path) {
			next := m.Path[m.Next]
			if !search.Passable(lvl.MovementCost(next.X, next.Y)) {
				// The map changed under the minion; hand the job back.
				job.Worker = 0
				*m = component.Minion{}
				return
			}
			if !canEnter(w, occ, me, next, false) {
				return
			}
			occ.move(me, pos.At, next)
			pos.At = next
			m.Next++
			return
		}

		if search.Adjacent(pos.At, job.Cell) && lvl.Dig(job.Cell.X, job.Cell.Y) {
			w.Events().Push(ecs.Event{Type: ecs.EventCellDug, Data: ecs.CellDug{Entity: me, Cell: job.Cell}})
		}
		done = append(done, jobEntity)
		*m = component.Minion{}
	})
	for _, e := range done {
		ecs.DestroyEntity(w, e)
	}
}

// workCells returns the walkable cells a minion can dig cell from.
func workCells(lvl *levels.Level, cell search.Coord) []search.Coord {
	out := make([]search.Coord, 0, 4)
	for _, d := range [...]search.Coord{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}} {
		c := search.C(cell.X+d.X, cell.Y+d.Y)
		if c.X < 0 || c.Y < 0 || c.X >= lvl.Width() || c.Y >= lvl.Height() {
			continue
		}
		if search.Passable(lvl.MovementCost(c.X, c.Y)) {
			out = append(out, c)
		}
	}
	return out
}
