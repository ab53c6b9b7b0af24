package ecs

// System advances one concern of the grid simulation by a tick.
type System interface {
	Update(w *World)
}

// Scheduler runs its systems in insertion order once per tick. While paused,
// Update is a no-op and Step advances exactly one tick.
type Scheduler struct {
	systems []System
	ticks   uint64
	paused  bool
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs one tick unless the scheduler is paused. It reports whether
// the systems ran.
func (s *Scheduler) Update(w *World) bool {
	if s.paused {
		return false
	}
	s.tick(w)
	return true
}

// Step runs one tick regardless of the pause state.
func (s *Scheduler) Step(w *World) {
	s.tick(w)
}

func (s *Scheduler) tick(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
	s.ticks++
}

func (s *Scheduler) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Scheduler) Paused() bool {
	return s.paused
}

// Ticks counts the ticks run so far, stepped ones included.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
