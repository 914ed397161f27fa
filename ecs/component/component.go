// Package component declares the data-only component types attached to
// entities, plus the typed handle machinery the world uses to store them.
package component

import (
	"errors"
	"sync/atomic"
)

// ErrMissingComponent reports a system assuming a component is present
// without checking first. It indicates a scheduling or data-setup bug, not
// a runtime condition to recover from.
var ErrMissingComponent = errors.New("ecs: missing component")

// ID identifies one component type process-wide.
type ID uint32

var nextID atomic.Uint32

// Kind is the typed identity of a component type T.
type Kind[T any] struct {
	id ID
}

// NewKind allocates a fresh component kind. Call once per type, at package
// init, and share the value.
func NewKind[T any]() Kind[T] {
	return Kind[T]{id: ID(nextID.Add(1))}
}

func (k Kind[T]) ID() ID {
	return k.id
}

func (k Kind[T]) Valid() bool {
	return k.id != 0
}
