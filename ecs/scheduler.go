package ecs

// System advances one slice of the simulation by dt seconds. Systems mutate
// shared state and rely on every earlier system in the schedule having run
// already this frame; they must tolerate dt == 0 (the restart reconciliation
// tick) by recomputing derived state without advancing timers.
type System interface {
	Update(w *World, dt float64)
}

// Scheduler runs systems in a fixed order, once per frame. The order is a
// correctness invariant, not a registration accident.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

// Update runs every system exactly once, in order.
func (s *Scheduler) Update(w *World, dt float64) {
	for _, system := range s.systems {
		if system != nil {
			system.Update(w, dt)
		}
	}
}

// Systems returns a copy of the schedule, for inspection in tests.
func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
