// Package status exposes lock-free counters and gauges shared by the simulation and its harness
package status

import (
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Well-known metric keys
const (
	EntityCreated   = "entity.created"
	EntityDestroyed = "entity.destroyed"
	FrameCount      = "frame.count"
	EventDispatched = "event.dispatched"
	SpawnRequested  = "spawn.requested"

	// Gauges, seconds
	FrameSeconds = "frame.seconds" // Wall time spent computing a frame
	FrameDelta   = "frame.delta"   // Simulated step
)

// Registry hands out metrics by key
// Owners fetch their pointers once at construction and update them without locking
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	gauges   map[string]*Gauge
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		gauges:   make(map[string]*Gauge),
	}
}

func lookup[T any](r *Registry, m map[string]*T, key string) *T {
	r.mu.RLock()
	ptr, ok := m[key]
	r.mu.RUnlock()
	if ok {
		return ptr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ptr, ok := m[key]; ok {
		return ptr
	}
	ptr = new(T)
	m[key] = ptr
	return ptr
}

// Counter returns the counter for key, creating it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	return lookup(r, r.counters, key)
}

// Gauge returns the gauge for key, creating it on first use
func (r *Registry) Gauge(key string) *Gauge {
	return lookup(r, r.gauges, key)
}

// Snapshot copies every counter
func (r *Registry) Snapshot() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int64, len(r.counters))
	for k, c := range r.counters {
		out[k] = c.Load()
	}
	return out
}

// Averages copies the smoothed value of every gauge
func (r *Registry) Averages() map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]float64, len(r.gauges))
	for k, g := range r.gauges {
		out[k] = g.Average()
	}
	return out
}

// Fields renders every metric as log fields in key order
func (r *Registry) Fields() []zap.Field {
	counters := r.Snapshot()
	gauges := r.Averages()

	keys := make([]string, 0, len(counters)+len(gauges))
	for k := range counters {
		keys = append(keys, k)
	}
	for k := range gauges {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		if v, ok := counters[k]; ok {
			fields = append(fields, zap.Int64(k, v))
			continue
		}
		fields = append(fields, zap.Float64(k, gauges[k]))
	}
	return fields
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.counters) + len(r.gauges)
}
