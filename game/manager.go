// Package game is the orchestrator: it owns the game state machine, lives and levels,
// issues spawn requests between frames and schedules delayed actions behind an epoch guard
package game

import (
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/component"
	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/engine/fsm"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/vmath"
)

// Game states
const (
	StateInit fsm.StateID = iota + 1
	StateStartingGame
	StateStartingLevel
	StateRunning
	StateGameOver
)

// Metric keys
const (
	StatLevelsStarted = "game.levels_started"
	StatLivesLost     = "game.lives_lost"
	StatUFOsSpawned   = "game.ufos_spawned"
	StatKills         = "game.kills"
)

// Resetter clears per-game system state, satisfied by engine.Scheduler
type Resetter interface {
	Init()
}

// Manager drives a single-player game session
// All methods run on the simulation goroutine between frames; HandleEvent runs during dispatch
type Manager struct {
	world   *engine.World
	reg     *registry.Registry
	cfg     *config.Config
	systems Resetter
	baseLog *zap.Logger
	log     *zap.Logger

	machine *fsm.Machine[*Manager]
	timers  *Timers
	rng     *vmath.FastRand
	cmd     *engine.CommandBuffer

	sessionID string
	epoch     uint64
	level     int
	lives     int
	player    core.Entity
	dt        float64

	ufoInterval float64
	ufoTimer    float64
	restart     bool

	statLevels *atomic.Int64
	statLives  *atomic.Int64
	statUFOs   *atomic.Int64
	statKills  *atomic.Int64
}

// New creates a manager in the Init state; the first Update starts a game
// systems may be nil when no per-game reset is needed
func New(world *engine.World, reg *registry.Registry, cfg *config.Config, systems Resetter, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}
	status := world.Resource.Status
	m := &Manager{
		world:      world,
		reg:        reg,
		cfg:        cfg,
		systems:    systems,
		baseLog:    log,
		log:        log,
		timers:     NewTimers(log),
		rng:        vmath.NewFastRand(world.Resource.Seed ^ 0x9e3779b97f4a7c15),
		cmd:        engine.NewCommandBuffer(world),
		statLevels: status.Counter(StatLevelsStarted),
		statLives:  status.Counter(StatLivesLost),
		statUFOs:   status.Counter(StatUFOsSpawned),
		statKills:  status.Counter(StatKills),
	}
	m.machine = m.buildMachine()
	if err := m.machine.Init(m, StateInit); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) buildMachine() *fsm.Machine[*Manager] {
	machine := fsm.NewMachine[*Manager]()
	machine.AddState(StateInit, "init").
		On(fsm.Transition[*Manager]{TargetID: StateStartingGame})
	machine.AddState(StateStartingGame, "starting_game").
		Enter(func(m *Manager) { m.setupNewGame() }).
		On(fsm.Transition[*Manager]{
			TargetID: StateStartingLevel,
			Guard:    fsm.StateTimeExceeds[*Manager](m.cfg.Game.CountdownDelay),
		})
	machine.AddState(StateStartingLevel, "starting_level").
		Enter(func(m *Manager) { m.enterLevel() }).
		On(fsm.Transition[*Manager]{TargetID: StateGameOver, Event: event.EventPlayerDestroyed, Guard: lastLife})
	machine.AddState(StateRunning, "running").
		Tick(func(m *Manager) { m.checkSpawnUFO() }).
		On(fsm.Transition[*Manager]{TargetID: StateGameOver, Event: event.EventPlayerDestroyed, Guard: lastLife}).
		On(fsm.Transition[*Manager]{TargetID: StateStartingLevel, Guard: levelCleared}).
		Exit(func(m *Manager) {
			m.log.Info("level ended", zap.Int("level", m.level), zap.Float64("seconds", m.machine.TimeInState()))
		})
	machine.AddState(StateGameOver, "game_over").
		Enter(func(m *Manager) {
			m.log.Info("game over", zap.Int("level", m.level))
			m.world.PushEvent(event.EventGameOver, &event.GameOverPayload{Level: m.level})
		}).
		On(fsm.Transition[*Manager]{TargetID: StateStartingGame, Guard: restartRequested})

	machine.OnTransition = func(from, to fsm.StateID) {
		m.log.Debug("game state",
			zap.String("from", machine.Name(from)),
			zap.String("to", machine.Name(to)),
		)
	}
	return machine
}

func lastLife(m *Manager, _ *fsm.Machine[*Manager]) bool { return m.lives <= 1 }

func levelCleared(m *Manager, _ *fsm.Machine[*Manager]) bool { return !m.enemiesLeft() }

func restartRequested(m *Manager, _ *fsm.Machine[*Manager]) bool { return m.restart }

// Update advances timers and the state machine, called once per frame before the scheduler step
func (m *Manager) Update(dt float64) {
	m.dt = dt
	m.timers.Update(dt, m.guard)
	m.machine.Update(m, dt)
	m.restart = false
}

func (m *Manager) guard() (uint64, fsm.StateID) {
	return m.epoch, m.machine.Current()
}

// State returns the active game state
func (m *Manager) State() fsm.StateID { return m.machine.Current() }

// StateName returns the active game state name
func (m *Manager) StateName() string { return m.machine.CurrentName() }

// Level returns the current level, 0 before the first level starts
func (m *Manager) Level() int { return m.level }

// Lives returns the remaining lives including the one in play
func (m *Manager) Lives() int { return m.lives }

// Player returns the current player entity, possibly destroyed
func (m *Manager) Player() core.Entity { return m.player }

// SessionID identifies the current game
func (m *Manager) SessionID() string { return m.sessionID }

// Epoch is bumped by every StartNewGame
func (m *Manager) Epoch() uint64 { return m.epoch }

// RequestRestart starts a new game on the next Update if the game is over
func (m *Manager) RequestRestart() {
	m.restart = true
}

// StartNewGame wipes the field and begins the countdown to level 1
// Re-entering the countdown state restarts it from zero
func (m *Manager) StartNewGame() {
	m.transition(StateStartingGame)
}

// setupNewGame resets the session on entry to the countdown
// Bumping the epoch invalidates every timer scheduled by the previous game
func (m *Manager) setupNewGame() {
	m.CleanupAllGameplayEntities()
	if m.systems != nil {
		m.systems.Init()
	}

	m.epoch++
	m.sessionID = uuid.NewString()
	m.log = m.baseLog.With(zap.String("session", m.sessionID))
	m.level = 0
	m.lives = m.cfg.Game.Lives
	m.player = core.NoEntity
	m.ufoInterval = m.cfg.UFO.IntervalMax
	m.ufoTimer = 0
	m.restart = false

	m.log.Info("new game", zap.Int("lives", m.lives), zap.Uint64("epoch", m.epoch))

	m.world.PushEvent(event.EventLivesChanged, &event.LivesChangedPayload{Lives: m.lives})
	m.world.PushEvent(event.EventCountdownStarted, &event.CountdownStartedPayload{Seconds: m.cfg.Game.CountdownDelay})
}

// CleanupAllGameplayEntities destroys players, asteroids, bullets, power-ups, UFOs,
// pending spawn requests and effects in one sweep; linked visuals cascade
func (m *Manager) CleanupAllGameplayEntities() {
	c := &m.world.Components
	stores := []engine.QueryableStore{c.Player, c.Asteroid, c.Bullet, c.PowerUp, c.UFO, c.SpawnRequest, c.VFX}
	for _, s := range stores {
		m.cmd.DestroyAll(s.All())
	}
	m.flush()
}

// SpawnPlayer places a fresh ship at the field center
func (m *Manager) SpawnPlayer() core.Entity {
	e := m.reg.Instantiate(m.cmd, registry.PlayerKey())
	m.cmd.Set(e, component.PositionComponent{})
	m.cmd.Set(e, component.LinkedGroupComponent{})
	m.flush()

	m.player = e
	m.log.Debug("player spawned", zap.Uint64("entity", uint64(e)))
	return e
}

// SpawnAsteroidBatch requests count big asteroids, each at least avoidRadius from avoidPoint
func (m *Manager) SpawnAsteroidBatch(count int, avoidRadius float64, avoidPoint vmath.Vec2) {
	for i := 0; i < count; i++ {
		e := m.cmd.CreateEntity()
		m.cmd.Set(e, component.SpawnRequestComponent{
			Key:      registry.AsteroidKey(component.AsteroidBig),
			Position: positionAway(m.world.Resource.Field, m.rng, avoidPoint, avoidRadius),
			Amount:   1,
		})
	}
	m.flush()
}

// SpawnPowerUpBatch places count power-ups of random kind and color
func (m *Manager) SpawnPowerUpBatch(count int) {
	field := m.world.Resource.Field
	for i := 0; i < count; i++ {
		kind := component.PowerUpShield
		if m.rng.Intn(2) == 1 {
			kind = component.PowerUpWeapon
		}
		color := registry.PickupColors[m.rng.Intn(len(registry.PickupColors))]

		e := m.reg.Instantiate(m.cmd, registry.PowerUpKey(kind, color))
		m.cmd.Set(e, component.PositionComponent{Vec2: field.RandomPosition(m.rng)})
	}
	m.flush()
}

// SpawnUFO enters a UFO from a random side edge, flying horizontally across the field
func (m *Manager) SpawnUFO() core.Entity {
	field := m.world.Resource.Field
	leftToRight := m.rng.Float64() < 0.5

	pos := vmath.Vec2{X: field.MaxX, Y: m.rng.Range(field.MinY, field.MaxY)}
	speed := -m.cfg.UFO.Speed
	if leftToRight {
		pos.X = field.MinX
		speed = m.cfg.UFO.Speed
	}

	e := m.reg.Instantiate(m.cmd, registry.UFOKey())
	m.cmd.Set(e, component.PositionComponent{Vec2: pos})
	m.cmd.Set(e, component.VelocityComponent{Linear: vmath.Vec2{X: speed}, Angular: 1})
	m.flush()

	m.statUFOs.Add(1)
	m.log.Debug("ufo spawned", zap.Bool("left_to_right", leftToRight))
	return e
}

// enterLevel bumps the level and spawns its wave after the level delay
// The first level of a game puts the ship in play without delay
func (m *Manager) enterLevel() {
	delay := m.cfg.Game.NextLevelDelay
	if m.level == 0 {
		delay = 0
		m.world.PushEvent(event.EventLivesChanged, &event.LivesChangedPayload{Lives: m.lives - 1})
		m.SpawnPlayer()
		m.world.PushEvent(event.EventGameStarted, &event.GameStartedPayload{GameID: m.sessionID})
	}

	m.level++
	level := m.level
	m.log.Info("starting level", zap.Int("level", level), zap.Float64("delay", delay))

	m.schedule("next_level", delay, []fsm.StateID{StateStartingLevel}, func() {
		g := m.cfg.Game
		m.SpawnAsteroidBatch(g.AsteroidsPerLevel*level+g.AsteroidsBase, g.AsteroidAvoidRadius, m.playerPosition())
		m.SpawnPowerUpBatch(g.PowerUpsPerLevel*level + g.PowerUpsBase)
		m.statLevels.Add(1)
		m.world.PushEvent(event.EventLevelStarted, &event.LevelStartedPayload{Level: level})
		m.transition(StateRunning)
	})
}

func (m *Manager) checkSpawnUFO() {
	m.ufoTimer += m.dt
	if m.ufoTimer < m.ufoInterval {
		return
	}
	m.ufoInterval = max(m.ufoInterval-m.cfg.UFO.IntervalDecrease, m.cfg.UFO.IntervalMin)
	m.ufoTimer = 0
	m.SpawnUFO()
}

// enemiesLeft reports live asteroids, UFOs or pending asteroid spawn requests
func (m *Manager) enemiesLeft() bool {
	c := &m.world.Components
	if c.Asteroid.Count() > 0 || c.UFO.Count() > 0 {
		return true
	}
	for _, e := range c.SpawnRequest.All() {
		if req, ok := c.SpawnRequest.Get(e); ok && req.Key.Class == core.PrefabAsteroid {
			return true
		}
	}
	return false
}

func (m *Manager) playerPosition() vmath.Vec2 {
	if pos, ok := m.world.Components.Position.Get(m.player); ok {
		return pos.Vec2
	}
	return vmath.Vec2{}
}

func (m *Manager) playerDied(pos vmath.Vec2) {
	m.statLives.Add(1)
	m.log.Info("player died", zap.Int("lives", m.lives), zap.Float64("x", pos.X), zap.Float64("y", pos.Y))

	if m.machine.HandleEvent(m, event.EventPlayerDestroyed) {
		return
	}
	m.schedule("respawn", m.cfg.Game.RespawnDelay, []fsm.StateID{StateStartingLevel, StateRunning}, func() {
		m.lives--
		m.world.PushEvent(event.EventLivesChanged, &event.LivesChangedPayload{Lives: m.lives - 1})
		m.SpawnPlayer()
	})
}

// schedule runs fn after delay under the current epoch, immediately when delay is not positive
func (m *Manager) schedule(name string, delay float64, states []fsm.StateID, fn func()) {
	if delay <= 0 {
		fn()
		return
	}
	m.timers.After(name, delay, m.epoch, states, fn)
}

func (m *Manager) transition(to fsm.StateID) {
	// Only registered states are used, the error path is unreachable
	_ = m.machine.Transition(m, to)
}

func (m *Manager) flush() {
	m.cmd.Apply()
}
