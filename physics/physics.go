// Package physics is the reference physics collaborator: it integrates motion, moves attached
// children with their parents and reports collider overlaps to the world between frames
package physics

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
)

// Metric keys
const (
	StatOverlaps   = "physics.overlaps"
	StatIntegrated = "physics.integrated"
)

// Physics advances a world outside the scheduler
// Not safe for concurrent use with Scheduler.Step, callers alternate the two
type Physics struct {
	world *engine.World

	bodies []body

	statOverlaps   *atomic.Int64
	statIntegrated *atomic.Int64
}

// New creates the collaborator for one world
func New(world *engine.World) *Physics {
	return &Physics{
		world:          world,
		bodies:         make([]body, 0, 64),
		statOverlaps:   world.Resource.Status.Counter(StatOverlaps),
		statIntegrated: world.Resource.Status.Counter(StatIntegrated),
	}
}

// Step integrates free bodies, snaps attached children, then detects overlaps
func (p *Physics) Step(dt float64) {
	p.Integrate(dt)
	p.FollowParents()
	p.DetectOverlaps()
}

// Integrate moves every entity with a velocity that is not attached to a parent
func (p *Physics) Integrate(dt float64) {
	c := &p.world.Components
	entities := p.world.Query().With(c.Position, c.Velocity).Without(c.Attached, c.Destroyed).Execute()
	for _, e := range entities {
		pos, _ := c.Position.Get(e)
		vel, _ := c.Velocity.Get(e)
		rot, _ := c.Rotation.Get(e)

		pos, rot = Integrate(pos, rot, vel, dt)
		c.Position.Set(e, pos)
		if c.Rotation.Has(e) {
			c.Rotation.Set(e, rot)
		}
	}
	p.statIntegrated.Add(int64(len(entities)))
}

// FollowParents copies the parent transform onto each attached child
// A child whose parent is gone is left where it is, the parent's linked group destroys it
func (p *Physics) FollowParents() {
	c := &p.world.Components
	for _, e := range p.world.Query().With(c.Attached, c.Position).Execute() {
		att, _ := c.Attached.Get(e)
		parentPos, ok := c.Position.Get(att.Parent)
		if !ok {
			continue
		}
		parentRot, _ := c.Rotation.Get(att.Parent)

		pos, rot := ChildTransform(parentPos, parentRot, att.Offset)
		c.Position.Set(e, pos)
		if c.Rotation.Has(e) {
			c.Rotation.Set(e, rot)
		}
	}
}

// DetectOverlaps pushes every overlapping interacting pair to the world's overlap buffer
func (p *Physics) DetectOverlaps() int {
	c := &p.world.Components
	p.bodies = p.bodies[:0]
	for _, e := range p.world.Query().With(c.Collider, c.Position).Without(c.Destroyed).Execute() {
		col, _ := c.Collider.Get(e)
		pos, _ := c.Position.Get(e)
		p.bodies = append(p.bodies, body{e: e, pos: pos.Vec2, col: col})
	}

	n := 0
	overlaps := p.world.Resource.Overlaps
	overlapPairs(p.bodies, func(a, b core.Entity) {
		overlaps.Push(a, b)
		n++
	})
	p.statOverlaps.Add(int64(n))
	return n
}
