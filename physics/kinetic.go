package physics

import (
	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Integrate performs explicit Euler integration: p = p + v*dt, angle = angle + ω*dt
func Integrate(pos component.PositionComponent, rot component.RotationComponent, vel component.VelocityComponent, dt float64) (component.PositionComponent, component.RotationComponent) {
	pos.Vec2 = vmath.V2Add(pos.Vec2, vmath.V2Scale(vel.Linear, dt))
	rot.Angle += vel.Angular * dt
	return pos, rot
}

// ChildTransform returns the world transform of an attached child
// Offset is expressed in parent-local space and turns with the parent
func ChildTransform(parentPos component.PositionComponent, parentRot component.RotationComponent, offset vmath.Vec2) (component.PositionComponent, component.RotationComponent) {
	return component.PositionComponent{Vec2: vmath.V2Add(parentPos.Vec2, vmath.V2Rotate(offset, parentRot.Angle))},
		component.RotationComponent{Angle: parentRot.Angle}
}
