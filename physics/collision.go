package physics

import (
	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Interacts reports whether either collider's mask contains the other's layer
func Interacts(a, b component.ColliderComponent) bool {
	return a.Mask&b.Layer != 0 || b.Mask&a.Layer != 0
}

// Overlaps reports whether two circles touch, tangent counts as overlap
func Overlaps(a component.ColliderComponent, pa vmath.Vec2, b component.ColliderComponent, pb vmath.Vec2) bool {
	r := a.Radius + b.Radius
	return vmath.V2MagSq(vmath.V2Sub(pa, pb)) <= r*r
}

// body is one collider snapshot for the broad-phase-free pair scan
type body struct {
	e   core.Entity
	pos vmath.Vec2
	col component.ColliderComponent
}

// overlapPairs tests every unordered pair once, O(n²)
// Entity counts stay in the low hundreds so no spatial index is kept
func overlapPairs(bodies []body, emit func(a, b core.Entity)) {
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := &bodies[i], &bodies[j]
			if !Interacts(a.col, b.col) {
				continue
			}
			if Overlaps(a.col, a.pos, b.col, b.pos) {
				emit(a.e, b.e)
			}
		}
	}
}
