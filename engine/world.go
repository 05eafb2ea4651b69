package engine

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/status"
)

// World owns entities, component stores, resources and the event mailbox
type World struct {
	entities *EntityRegistry

	Resource   Resource
	Components ComponentStore

	stores       []AnyStore
	storesByType map[reflect.Type]AnyStore
	events       *event.EventQueue

	statCreated   *atomic.Int64
	statDestroyed *atomic.Int64
}

// NewWorld creates a world; nil resources are filled with defaults
func NewWorld(res Resource) *World {
	if res.Time == nil {
		res.Time = &TimeResource{}
	}
	if res.Overlaps == nil {
		res.Overlaps = NewOverlapBuffer()
	}
	if res.Status == nil {
		res.Status = status.NewRegistry()
	}
	if res.Log == nil {
		res.Log = zap.NewNop()
	}

	w := &World{
		entities: NewEntityRegistry(),
		Resource: res,
		stores:   make([]AnyStore, 0, 40),
		events:   event.NewEventQueue(),
	}
	w.initComponentStores()
	w.statCreated = res.Status.Counter(status.EntityCreated)
	w.statDestroyed = res.Status.Counter(status.EntityDestroyed)
	return w
}

// CreateEntity issues a new alive entity without components
func (w *World) CreateEntity() core.Entity {
	w.statCreated.Add(1)
	return w.entities.Create()
}

// DestroyEntity removes all components, releases the id and cascades to linked children
// Destroying a destroyed, stale or unknown id is a no-op returning false
func (w *World) DestroyEntity(e core.Entity) bool {
	alive := w.entities.IsAlive(e)
	if !alive && !w.entities.IsReserved(e) {
		return false
	}

	group, hasGroup := w.Components.LinkedGroup.Get(e)
	for _, s := range w.stores {
		s.Remove(e)
	}
	w.entities.Release(e)
	if alive {
		w.statDestroyed.Add(1)
	}

	// Children after release so cyclic links terminate
	if hasGroup {
		for _, child := range group.Children {
			w.DestroyEntity(child)
		}
	}
	return true
}

// IsAlive reports whether e refers to a live entity of the current slot generation
func (w *World) IsAlive(e core.Entity) bool {
	return w.entities.IsAlive(e)
}

// EntityCount returns the number of alive entities
func (w *World) EntityCount() int {
	return w.entities.Alive()
}

// Clear removes every entity and pending event
func (w *World) Clear() {
	for _, s := range w.stores {
		s.Clear()
	}
	w.entities.Reset()
	w.events.Clear()
	w.Resource.Overlaps.Drain()
}

// FrameNumber returns the current frame index
func (w *World) FrameNumber() int64 {
	return w.Resource.Time.Frame
}

// StoreFor returns the store registered for the dynamic type of a component value
func (w *World) StoreFor(component any) (AnyStore, error) {
	s, ok := w.storesByType[reflect.TypeOf(component)]
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnknownComponent, component)
	}
	return s, nil
}

// PushEvent raises an event into the mailbox, safe from concurrent jobs
func (w *World) PushEvent(t event.EventType, payload any) {
	w.events.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.FrameNumber(),
	})
}

// Events exposes the mailbox to the dispatcher
func (w *World) Events() *event.EventQueue {
	return w.events
}

// Invariant reports a violated assumption
// Debug worlds panic, release worlds log and return false so the caller skips the entity
func (w *World) Invariant(ok bool, msg string, fields ...zap.Field) bool {
	if ok {
		return true
	}
	if w.Resource.Debug {
		panic("invariant violated: " + msg)
	}
	w.Resource.Log.Warn("invariant violated", append(fields, zap.String("invariant", msg))...)
	return false
}
