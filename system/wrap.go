package system

import (
	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/engine"
)

// WrapSystem teleports entities leaving the field to the opposite edge
// An axis wraps only while moving further outward, so entities resting on an edge stay put
type WrapSystem struct {
	world         *engine.World
	defaultMargin float64
}

// NewWrapSystem creates a wrap system; defaultMargin applies to entities without their own
func NewWrapSystem(world *engine.World, defaultMargin float64) engine.System {
	return &WrapSystem{world: world, defaultMargin: defaultMargin}
}

// Name returns the system name
func (s *WrapSystem) Name() string { return "wrap" }

// Phase returns the cleanup phase
func (s *WrapSystem) Phase() engine.Phase { return engine.PhaseCleanup }

// Access declares the stores the system touches
func (s *WrapSystem) Access() engine.Access {
	c := &s.world.Components
	return engine.Access{
		Reads:  []engine.AnyStore{c.WrapAround, c.Velocity, c.Destroyed},
		Writes: []engine.AnyStore{c.Position},
	}
}

func (s *WrapSystem) Init() {}

func (s *WrapSystem) Update(cmd *engine.CommandBuffer) {
	c := &s.world.Components
	field := s.world.Resource.Field

	for _, e := range s.world.Query().With(c.WrapAround, c.Position, c.Velocity).Without(c.Destroyed).Execute() {
		wrap, _ := c.WrapAround.Get(e)
		pos, _ := c.Position.Get(e)
		vel, _ := c.Velocity.Get(e)

		margin := wrap.Margin
		if margin == 0 {
			margin = s.defaultMargin
		}
		if next, moved := Wrap(field, margin, pos, vel); moved {
			c.Position.Set(e, next)
		}
	}
}

// Wrap returns the wrapped position and whether any axis wrapped
func Wrap(f engine.PlayField, margin float64, pos component.PositionComponent, vel component.VelocityComponent) (component.PositionComponent, bool) {
	left, right := f.MinX-margin, f.MaxX+margin
	bottom, top := f.MinY-margin, f.MaxY+margin
	moved := false

	if pos.X > right && vel.Linear.X > 0 {
		pos.X = left
		moved = true
	} else if pos.X < left && vel.Linear.X < 0 {
		pos.X = right
		moved = true
	}

	if pos.Y > top && vel.Linear.Y > 0 {
		pos.Y = bottom
		moved = true
	} else if pos.Y < bottom && vel.Linear.Y < 0 {
		pos.Y = top
		moved = true
	}
	return pos, moved
}
