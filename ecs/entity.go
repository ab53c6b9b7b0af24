package ecs

import "strconv"

// Entity is a handle to a unit, goal marker or job on the grid. The low half
// is the slot the entity's components are stored under; the high half counts
// how many times that slot has been recycled. A handle kept past
// DestroyEntity stops resolving once the slot is reused.
type Entity uint64

type entityID uint32
type generation uint32

const (
	slotBits = 32
	slotMask = 1<<slotBits - 1
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<slotBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint64(e) & slotMask)
}

func (e Entity) generation() generation {
	return generation(uint64(e) >> slotBits)
}

// String renders the handle as slot/generation, e.g. "4/1".
func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "/" + strconv.FormatUint(uint64(e.generation()), 10)
}

// Valid reports whether e refers to a slot at all. Slot 0 is never handed
// out, so the zero Entity means "nobody", as in DigJob.Worker.
func (e Entity) Valid() bool {
	return e.id() != 0
}
