package ecs

import (
	"fmt"

	"github.com/milk9111/danmaku/ecs/component"
)

// Add attaches a component to a live entity, replacing any existing
// instance of the same kind.
func Add[T any](w *World, e Entity, k component.Kind[T], v *T) {
	if !w.entities.isAlive(e) || v == nil {
		return
	}
	w.store(k.ID()).set(e, v)
}

// Get returns the entity's component of kind k, or false if absent. Callers
// treating a component as optional use this, never MustGet.
func Get[T any](w *World, e Entity, k component.Kind[T]) (*T, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	v := w.store(k.ID()).get(e.index())
	if v == nil {
		return nil, false
	}
	c, ok := v.(*T)
	return c, ok
}

// MustGet returns the component or panics with ErrMissingComponent. Reserve
// it for components whose presence the system order guarantees.
func MustGet[T any](w *World, e Entity, k component.Kind[T]) *T {
	c, ok := Get(w, e, k)
	if !ok {
		panic(fmt.Errorf("%w: entity %s kind %d", component.ErrMissingComponent, e, k.ID()))
	}
	return c
}

// Has reports whether the entity carries a component of kind k.
func Has[T any](w *World, e Entity, k component.Kind[T]) bool {
	return w.entities.isAlive(e) && w.store(k.ID()).has(e.index())
}

// Remove detaches the component of kind k, reporting whether it was present.
func Remove[T any](w *World, e Entity, k component.Kind[T]) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	return w.store(k.ID()).remove(e.index())
}

// ForEach visits every entity holding kind k in insertion order. The
// visited set is snapshotted, so fn may add or remove entities.
func ForEach[T any](w *World, k component.Kind[T], fn func(Entity, *T)) {
	s := w.store(k.ID())
	for _, e := range s.entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := s.get(e.index()).(*T); ok && v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both kinds, in ka's insertion order.
func ForEach2[A, B any](w *World, ka component.Kind[A], kb component.Kind[B], fn func(Entity, *A, *B)) {
	sa, sb := w.store(ka.ID()), w.store(kb.ID())
	for _, e := range sa.entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		a, okA := sa.get(e.index()).(*A)
		b, okB := sb.get(e.index()).(*B)
		if okA && okB && a != nil && b != nil {
			fn(e, a, b)
		}
	}
}

// ForEach3 visits entities holding all three kinds, in ka's insertion order.
func ForEach3[A, B, C any](w *World, ka component.Kind[A], kb component.Kind[B], kc component.Kind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := w.store(ka.ID()), w.store(kb.ID()), w.store(kc.ID())
	for _, e := range sa.entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		a, okA := sa.get(e.index()).(*A)
		b, okB := sb.get(e.index()).(*B)
		c, okC := sc.get(e.index()).(*C)
		if okA && okB && okC && a != nil && b != nil && c != nil {
			fn(e, a, b, c)
		}
	}
}

// First returns the first entity holding kind k, in insertion order.
func First[T any](w *World, k component.Kind[T]) (Entity, bool) {
	s := w.store(k.ID())
	for _, e := range s.denseEntities {
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}

// Count returns the number of live entities holding kind k.
func Count[T any](w *World, k component.Kind[T]) int {
	n := 0
	s := w.store(k.ID())
	for _, e := range s.denseEntities {
		if w.entities.isAlive(e) {
			n++
		}
	}
	return n
}
