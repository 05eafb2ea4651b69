package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/event"
)

// EventTypes returns the gameplay notifications the orchestrator follows
func (m *Manager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerDestroyed,
		event.EventAsteroidDestroyed,
		event.EventUFODestroyed,
		event.EventShieldEnabled,
		event.EventShieldDepleted,
		event.EventHyperspace,
	}
}

// HandleEvent reacts to gameplay notifications
// Runs inside the dispatch job, so it never mutates the world directly
func (m *Manager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlayerDestroyed:
		if p, ok := ev.Payload.(*event.PlayerDestroyedPayload); ok {
			if p.Player != m.player {
				m.log.Debug("stale player death ignored", zap.Uint64("entity", uint64(p.Player)))
				return
			}
			m.playerDied(p.Position)
		}

	case event.EventAsteroidDestroyed:
		if p, ok := ev.Payload.(*event.AsteroidDestroyedPayload); ok {
			m.statKills.Add(1)
			m.log.Debug("asteroid destroyed", zap.Stringer("size", p.Size))
		}

	case event.EventUFODestroyed:
		m.statKills.Add(1)
		m.log.Debug("ufo destroyed")

	case event.EventShieldEnabled:
		if p, ok := ev.Payload.(*event.ShieldEnabledPayload); ok {
			m.log.Debug("shield enabled", zap.Float64("duration", p.Duration))
		}

	case event.EventShieldDepleted:
		m.log.Debug("shield depleted")

	case event.EventHyperspace:
		if p, ok := ev.Payload.(*event.HyperspacePayload); ok {
			m.log.Debug("hyperspace",
				zap.Float64("from_x", p.From.X), zap.Float64("from_y", p.From.Y),
				zap.Float64("to_x", p.To.X), zap.Float64("to_y", p.To.Y),
			)
		}
	}
}
