package engine

import (
	"sync"

	"github.com/lixenwraith/vi-asteroids/core"
)

type slotState uint8

const (
	slotFree slotState = iota
	slotReserved
	slotAlive
)

// EntityRegistry hands out generational ids over recycled slots
// A slot is free, reserved (id issued by a command buffer, not yet created) or alive
type EntityRegistry struct {
	mu          sync.Mutex
	generations []uint32
	states      []slotState
	free        []uint32
	alive       int
}

// NewEntityRegistry creates an empty registry
func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{
		generations: make([]uint32, 0, 256),
		states:      make([]slotState, 0, 256),
	}
}

// Reserve issues an id without making it alive
func (r *EntityRegistry) Reserve() core.Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reserveLocked()
}

func (r *EntityRegistry) reserveLocked() core.Entity {
	var idx uint32
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		idx = uint32(len(r.generations))
		r.generations = append(r.generations, 1)
		r.states = append(r.states, slotFree)
	}
	r.states[idx] = slotReserved
	return core.NewEntity(idx, r.generations[idx])
}

// Create issues an alive id
func (r *EntityRegistry) Create() core.Entity {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := r.reserveLocked()
	r.states[e.Index()] = slotAlive
	r.alive++
	return e
}

// Activate turns a reserved id alive, false if the reservation was released meanwhile
func (r *EntityRegistry) Activate(e core.Entity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.matchLocked(e) || r.states[e.Index()] != slotReserved {
		return false
	}
	r.states[e.Index()] = slotAlive
	r.alive++
	return true
}

// IsAlive reports whether e is the current occupant of its slot and alive
func (r *EntityRegistry) IsAlive(e core.Entity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matchLocked(e) && r.states[e.Index()] == slotAlive
}

// IsReserved reports whether e is issued but not yet alive
func (r *EntityRegistry) IsReserved(e core.Entity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.matchLocked(e) && r.states[e.Index()] == slotReserved
}

// Release frees the slot and bumps its generation
// Returns false for stale, unknown or already free ids
func (r *EntityRegistry) Release(e core.Entity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.matchLocked(e) {
		return false
	}
	idx := e.Index()
	switch r.states[idx] {
	case slotFree:
		return false
	case slotAlive:
		r.alive--
	}
	r.states[idx] = slotFree
	r.generations[idx]++
	if r.generations[idx] == 0 {
		r.generations[idx] = 1
	}
	r.free = append(r.free, idx)
	return true
}

// Alive returns the number of alive entities
func (r *EntityRegistry) Alive() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.alive
}

// Reset frees every slot, bumping generations so old ids stay detectable
func (r *EntityRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.free = r.free[:0]
	for i := len(r.generations) - 1; i >= 0; i-- {
		if r.states[i] != slotFree {
			r.generations[i]++
			if r.generations[i] == 0 {
				r.generations[i] = 1
			}
		}
		r.states[i] = slotFree
		r.free = append(r.free, uint32(i))
	}
	r.alive = 0
}

func (r *EntityRegistry) matchLocked(e core.Entity) bool {
	idx := e.Index()
	return e != core.NoEntity && int(idx) < len(r.generations) && r.generations[idx] == e.Generation()
}
