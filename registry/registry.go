// Package registry provides the generic name-to-handler lookup tables that
// back every content-defining subsystem (enemies, bosses, behaviors, bullet
// archetypes, paths, character presets).
package registry

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDuplicateKey is returned when a key is registered twice. This is a
	// content-authoring bug and should be fatal at load time.
	ErrDuplicateKey = errors.New("registry: duplicate key")
	// ErrUnknownKey is returned when resolving an unbound key. This is a
	// content-authoring bug, never a recoverable runtime condition.
	ErrUnknownKey = errors.New("registry: unknown key")
)

// Registry maps content keys to handlers. Keys iterate in registration
// order. Safe for concurrent use: content hot reload replaces bindings from
// the watcher goroutine while systems resolve them every tick.
type Registry[K comparable, V any] struct {
	mu      sync.RWMutex
	name    string
	entries map[K]V
	keys    []K
}

func New[K comparable, V any](name string) *Registry[K, V] {
	return &Registry[K, V]{
		name:    name,
		entries: make(map[K]V),
	}
}

// Name returns the registry's diagnostic name.
func (r *Registry[K, V]) Name() string {
	return r.name
}

// Register binds key to value, failing fast on a duplicate.
func (r *Registry[K, V]) Register(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; ok {
		return fmt.Errorf("%w: %s %v", ErrDuplicateKey, r.name, key)
	}
	r.entries[key] = value
	r.keys = append(r.keys, key)
	return nil
}

// Replace binds key to value, overwriting any existing binding. Content hot
// reload re-registers through this path.
func (r *Registry[K, V]) Replace(key K, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.entries[key] = value
}

// MustRegister is Register for static registration tables built at startup.
func (r *Registry[K, V]) MustRegister(key K, value V) {
	if err := r.Register(key, value); err != nil {
		panic(err)
	}
}

// Resolve looks up key.
func (r *Registry[K, V]) Resolve(key K) (V, error) {
	r.mu.RLock()
	v, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %s %v", ErrUnknownKey, r.name, key)
	}
	return v, nil
}

// MustResolve looks up a key that startup validation has already proven
// bound.
func (r *Registry[K, V]) MustResolve(key K) V {
	v, err := r.Resolve(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether key is bound.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Keys returns all bound keys in registration order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]K, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of bound keys.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
