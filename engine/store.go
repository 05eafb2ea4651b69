package engine

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/lixenwraith/vi-asteroids/core"
)

// Store is a generic container for a specific component type T
// Sparse set: map for lookup, dense slice for iteration, index map for O(1) removal
type Store[T any] struct {
	mu         sync.RWMutex
	name       string
	components map[core.Entity]T
	entities   []core.Entity
	index      map[core.Entity]int
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	var zero T
	return &Store[T]{
		name:       reflect.TypeOf(zero).Name(),
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
		index:      make(map[core.Entity]int),
	}
}

// Name returns the component type name
func (s *Store[T]) Name() string {
	return s.name
}

// Set inserts or replaces the component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.index[e] = len(s.entities)
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Has checks whether the entity carries this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// Remove detaches the component, no-op when absent
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(e)
}

func (s *Store[T]) removeLocked(e core.Entity) {
	i, exists := s.index[e]
	if !exists {
		return
	}
	last := len(s.entities) - 1
	moved := s.entities[last]
	s.entities[i] = moved
	s.index[moved] = i
	s.entities = s.entities[:last]
	delete(s.index, e)
	delete(s.components, e)
}

// RemoveBatch detaches the component from several entities under one lock
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entities {
		s.removeLocked(e)
	}
}

// All returns a copy of the entities holding this component
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Count returns the number of entities holding this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
	s.index = make(map[core.Entity]int)
}

func (s *Store[T]) componentType() reflect.Type {
	return reflect.TypeFor[T]()
}

func (s *Store[T]) setAny(e core.Entity, val any) error {
	v, ok := val.(T)
	if !ok {
		return fmt.Errorf("%w: store %s got %T", ErrUnknownComponent, s.name, val)
	}
	s.Set(e, v)
	return nil
}
