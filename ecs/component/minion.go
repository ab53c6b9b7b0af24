package component

import "github.com/milk9111/gridtactics/search"

// Minion is a worker that digs out cells. Job is the entity id of its current
// DigJob, zero when idle.
type Minion struct {
	Job  uint64
	Path search.Path
	Next int
}

func (m *Minion) Idle() bool {
	return m.Job == 0
}

var MinionComponent = NewComponent[Minion]()

// DigJob asks for Cell to be dug out. Worker is the assigned minion's entity
// id, zero while unassigned.
type DigJob struct {
	Cell   search.Coord
	Worker uint64
}

var DigJobComponent = NewComponent[DigJob]()
