package ecs

// System is one stage of the fixed per-tick update order.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in a single fixed total order every tick. There is
// no parallelism: at any instant exactly one system is mutating the world.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: append([]System(nil), systems...)}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once, in order.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}
