package engine

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/status"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Resource holds world-level singletons handed to systems at construction
type Resource struct {
	Time     *TimeResource
	Field    PlayField
	Overlaps *OverlapBuffer
	Status   *status.Registry
	Log      *zap.Logger

	// Debug turns invariant violations into panics
	Debug bool
	// Seed mixes into every per-entity random stream
	Seed uint64
}

// TimeResource is the simulation clock, advanced once per Scheduler.Step
type TimeResource struct {
	DeltaTime float64 // Seconds since previous frame
	GameTime  float64 // Seconds since world creation
	Frame     int64
}

// Update advances the clock by dt seconds
func (t *TimeResource) Update(dt float64) {
	t.DeltaTime = dt
	t.GameTime += dt
	t.Frame++
}

// PlayField is the rectangle entities live in, centered on the origin
type PlayField struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewPlayField creates a centered field of the given size
func NewPlayField(width, height float64) PlayField {
	return PlayField{
		MinX: -width / 2,
		MaxX: width / 2,
		MinY: -height / 2,
		MaxY: height / 2,
	}
}

func (f PlayField) Width() float64  { return f.MaxX - f.MinX }
func (f PlayField) Height() float64 { return f.MaxY - f.MinY }

// Contains reports whether p lies inside the field, edges included
func (f PlayField) Contains(p vmath.Vec2) bool {
	return p.X >= f.MinX && p.X <= f.MaxX && p.Y >= f.MinY && p.Y <= f.MaxY
}

// RandomPosition picks a uniform point inside the field
func (f PlayField) RandomPosition(r *vmath.FastRand) vmath.Vec2 {
	return vmath.Vec2{
		X: r.Range(f.MinX, f.MaxX),
		Y: r.Range(f.MinY, f.MaxY),
	}
}

// Pair is one overlap reported by the physics collaborator, unordered
type Pair struct {
	A, B core.Entity
}

// OverlapBuffer collects overlap pairs between physics steps
type OverlapBuffer struct {
	mu    sync.Mutex
	pairs []Pair
}

// NewOverlapBuffer creates an empty buffer
func NewOverlapBuffer() *OverlapBuffer {
	return &OverlapBuffer{pairs: make([]Pair, 0, 32)}
}

// Push records an overlap
func (b *OverlapBuffer) Push(a, c core.Entity) {
	b.mu.Lock()
	b.pairs = append(b.pairs, Pair{A: a, B: c})
	b.mu.Unlock()
}

// Drain removes and returns all recorded overlaps
func (b *OverlapBuffer) Drain() []Pair {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pairs
	b.pairs = make([]Pair, 0, cap(out))
	return out
}

// Len returns the number of pending overlaps
func (b *OverlapBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pairs)
}
