// Package prototype implements a name-keyed store of cloneable templates.
// Callers register a canonical instance once and receive an independent clone
// on every Create, so customising one result never affects the template or
// any other result.
package prototype

import (
	"slices"
	"sync"

	"github.com/mesh-intelligence/finplan/pkg/types"
)

// Cloner is implemented by values that can produce an independent deep copy
// of themselves.
type Cloner[T any] interface {
	Clone() T
}

// Registry maps registration names to canonical prototypes. The canonical
// values are never handed out; Register stores a clone and Create returns one.
// A Registry is safe for concurrent use.
type Registry[T Cloner[T]] struct {
	mu     sync.RWMutex
	protos map[string]T
}

// NewRegistry creates an empty registry.
func NewRegistry[T Cloner[T]]() *Registry[T] {
	return &Registry[T]{
		protos: make(map[string]T),
	}
}

// Register stores a copy of proto under name, replacing any existing entry.
func (r *Registry[T]) Register(name string, proto T) {
	canonical := proto.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.protos[name] = canonical
}

// Create returns a fresh clone of the prototype registered under name.
// Returns a *types.NotFoundError (matching types.ErrNotFound) and the zero
// value if name is not registered.
func (r *Registry[T]) Create(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	proto, ok := r.protos[name]
	if !ok {
		var zero T
		return zero, &types.NotFoundError{Name: name}
	}
	return proto.Clone(), nil
}

// Remove deletes the entry for name.
// Returns a *types.NotFoundError if name is not registered.
func (r *Registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.protos[name]; !ok {
		return &types.NotFoundError{Name: name}
	}
	delete(r.protos, name)
	return nil
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.protos))
	for name := range r.protos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered prototypes.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.protos)
}
