package ecs

import "github.com/milk9111/gridtactics/search"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventUnitMoved    = "unit_moved"
	EventMoveRejected = "move_rejected"
	EventGoalReached  = "goal_reached"
	EventCellDug      = "cell_dug"
)

// UnitMoved is the payload of EventUnitMoved.
type UnitMoved struct {
	Entity Entity
	From   search.Coord
	To     search.Coord
	Cost   float64
}

// MoveRejected is the payload of EventMoveRejected.
type MoveRejected struct {
	Entity Entity
	To     search.Coord
	Reason string
}

// GoalReached is the payload of EventGoalReached.
type GoalReached struct {
	Entity Entity
	Goal   search.Coord
}

// CellDug is the payload of EventCellDug.
type CellDug struct {
	Entity Entity
	Cell   search.Coord
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len reports the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
