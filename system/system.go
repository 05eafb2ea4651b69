// Package system holds the gameplay rules evaluated by the engine scheduler
package system

import (
	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Deps bundles the collaborators systems receive at construction
type Deps struct {
	World    *engine.World
	Registry *registry.Registry
	Config   *config.Config
	Router   *event.Router
}

// NewPipeline builds every gameplay system in registration order
// Order inside a phase decides the order command buffers are applied at the barrier
func NewPipeline(d Deps) []engine.System {
	w := d.World
	systems := []engine.System{
		// Input
		NewPlayerInputSystem(w, d.Registry),
		NewUFOSteeringSystem(w),
		NewUFOAttackSystem(w, d.Registry),

		// Collision
		NewCollisionTagSystem(w),
	}

	// Resolve
	systems = append(systems, NewCollisionResolveSystems(w, d.Config.Shield.Mode)...)
	systems = append(systems,
		NewLifetimeSystem(w),
		NewShieldDepleteSystem(w),
		NewHyperspaceSystem(w),

		// Spawn
		NewSpawnSystem(w, d.Registry),
		NewWeaponDefaultSystem(w, registry.DefaultWeapon(d.Config)),
		NewShieldPickupSystem(w),
		NewWeaponPickupSystem(w),

		// React
		NewInitializeSystem(w),
		NewShieldEnableSystem(w, d.Registry),
		NewWeaponEquipSystem(w, d.Registry),

		// Dispatch
		NewDispatchSystem(w, d.Router),

		// Cleanup
		NewWrapSystem(w, d.Config.Field.WrapMargin),
		NewCullSystem(w),
	)
	return systems
}

func playSound(w *engine.World, s core.SoundType) {
	w.PushEvent(event.EventSoundPlay, &event.SoundPayload{Sound: s})
}

// entityRand returns the random stream of one entity for the current frame
func entityRand(w *engine.World, e core.Entity) *vmath.FastRand {
	return vmath.NewFastRand(vmath.EntitySeed(w.Resource.Seed, w.FrameNumber(), uint64(e)))
}

// requestSpawn records a transient spawn request entity
func requestSpawn(cmd *engine.CommandBuffer, req component.SpawnRequestComponent) core.Entity {
	e := cmd.CreateEntity()
	cmd.Set(e, req)
	return e
}

// attachVisual instantiates a visual child following parent and links it for cascading destruction
func attachVisual(cmd *engine.CommandBuffer, reg *registry.Registry, parent core.Entity, key core.PrefabKey, at vmath.Vec2, offset vmath.Vec2) core.Entity {
	visual := reg.Instantiate(cmd, key)
	cmd.Set(visual, component.PositionComponent{Vec2: at})
	cmd.Set(visual, component.AttachedComponent{Parent: parent, Offset: offset})
	cmd.AppendChild(parent, visual)
	return visual
}
