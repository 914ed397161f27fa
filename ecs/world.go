// Package ecs implements the entity/component world store, the fixed-order
// system scheduler, and the per-tick collision event log.
package ecs

import "github.com/milk9111/danmaku/ecs/component"

// World owns entities and their typed component storage. It carries no
// gameplay logic; systems read and transform it in a fixed order, one
// mutator at a time.
type World struct {
	entities entityStore
	stores   map[component.ID]*sparseSet
	events   EventLog
	tick     uint64
}

func NewWorld() *World {
	return &World{stores: map[component.ID]*sparseSet{}}
}

// CreateEntity allocates a new entity with no components.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and drops all of its components
// atomically. Returns false for a stale or invalid handle.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.index())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether a handle still refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Events returns the per-tick collision event log.
func (w *World) Events() *EventLog {
	return &w.events
}

// Tick returns the current simulation frame number.
func (w *World) Tick() uint64 {
	return w.tick
}

// AdvanceTick increments the frame counter. Called once per tick by the
// simulation driver before systems run.
func (w *World) AdvanceTick() {
	w.tick++
}

func (w *World) store(id component.ID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}
