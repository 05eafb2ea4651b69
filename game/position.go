package game

import (
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

const maxPlacementAttempts = 32

// positionAway picks a uniform field position at least radius from avoid
// After maxPlacementAttempts misses the point is pushed out along a random direction
func positionAway(f engine.PlayField, r *vmath.FastRand, avoid vmath.Vec2, radius float64) vmath.Vec2 {
	if radius <= 0 {
		return f.RandomPosition(r)
	}
	for i := 0; i < maxPlacementAttempts; i++ {
		p := f.RandomPosition(r)
		if vmath.V2Dist(p, avoid) >= radius {
			return p
		}
	}
	return vmath.V2Add(avoid, vmath.V2Scale(vmath.V2Forward(r.Angle()), radius))
}
