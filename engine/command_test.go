package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

func TestCommandBufferDeferredCreate(t *testing.T) {
	w := NewTestWorld()
	cb := NewCommandBuffer(w)

	e := cb.CreateEntity()
	cb.Set(e, component.PositionComponent{Vec2: vmath.Vec2{X: 3, Y: 4}})
	cb.Set(e, component.AsteroidComponent{Size: component.AsteroidMedium})

	assert.False(t, w.IsAlive(e), "not alive before the barrier")
	assert.Equal(t, 0, w.Components.Asteroid.Count())
	assert.Equal(t, 3, cb.Len())

	cb.Apply()

	require.True(t, w.IsAlive(e))
	pos, ok := w.Components.Position.Get(e)
	require.True(t, ok)
	assert.Equal(t, 3.0, pos.X)
	assert.Equal(t, 0, cb.Len())
}

func TestCommandBufferOrderAndReplace(t *testing.T) {
	w := NewTestWorld()
	e := w.CreateEntity()
	cb := NewCommandBuffer(w)

	cb.Set(e, component.LifetimeComponent{Remaining: 1})
	cb.Set(e, component.LifetimeComponent{Remaining: 2})
	cb.Remove(e, w.Components.Lifetime)
	cb.Set(e, component.LifetimeComponent{Remaining: 3})
	cb.Apply()

	lt, ok := w.Components.Lifetime.Get(e)
	require.True(t, ok)
	assert.Equal(t, 3.0, lt.Remaining, "playback follows record order")
}

func TestCommandBufferDoubleDestroy(t *testing.T) {
	w := NewTestWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	cb := NewCommandBuffer(w)

	cb.DestroyEntity(a)
	cb.DestroyAll([]core.Entity{a, b, a})
	cb.Set(a, component.PlayerTag{})
	assert.NotPanics(t, cb.Apply)

	assert.False(t, w.IsAlive(a))
	assert.False(t, w.IsAlive(b))
	assert.Equal(t, 0, w.Components.Player.Count(), "set after destroy is skipped")
}

func TestCommandBufferAppendChild(t *testing.T) {
	w := NewTestWorld()
	parent := w.CreateEntity()
	cb := NewCommandBuffer(w)

	visual := cb.CreateEntity()
	cb.Set(visual, component.PositionComponent{})
	cb.AppendChild(parent, visual)
	cb.Apply()

	group, ok := w.Components.LinkedGroup.Get(parent)
	require.True(t, ok)
	assert.Equal(t, []core.Entity{visual}, group.Children)

	cb.DestroyEntity(parent)
	cb.Apply()
	assert.False(t, w.IsAlive(visual), "child destroyed with parent")
}

func TestCommandBufferDestroyPendingCreate(t *testing.T) {
	w := NewTestWorld()
	cb := NewCommandBuffer(w)
	other := NewCommandBuffer(w)

	e := cb.CreateEntity()
	other.DestroyEntity(e)
	other.Apply()
	cb.Set(e, component.PlayerTag{})
	cb.Apply()

	assert.False(t, w.IsAlive(e))
	assert.Equal(t, 0, w.Components.Player.Count())
}

func TestCommandBufferResetReleasesReservations(t *testing.T) {
	w := NewTestWorld()
	cb := NewCommandBuffer(w)
	e := cb.CreateEntity()
	cb.Reset()

	cb.Apply()
	assert.False(t, w.IsAlive(e))
	assert.Equal(t, 0, w.EntityCount())
}

func TestCommandBufferUnknownComponentPanics(t *testing.T) {
	w := NewTestWorld()
	cb := NewCommandBuffer(w)
	assert.Panics(t, func() { cb.Set(w.CreateEntity(), struct{ X int }{}) })
}

func TestCommandBufferAppendChildPrunesDeadLinks(t *testing.T) {
	w := NewTestWorld()
	parent := w.CreateEntity()
	first := w.CreateEntity()
	second := w.CreateEntity()
	cb := NewCommandBuffer(w)

	cb.AppendChild(parent, first)
	cb.Apply()
	w.DestroyEntity(first)

	cb.AppendChild(parent, second)
	cb.Apply()

	group, _ := w.Components.LinkedGroup.Get(parent)
	assert.Equal(t, []core.Entity{second}, group.Children)
}
