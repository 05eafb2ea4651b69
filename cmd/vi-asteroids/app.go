package main

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/audio"
	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/core"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/game"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/physics"
	"github.com/lixenwraith/vi-asteroids/render"
	"github.com/lixenwraith/vi-asteroids/service"
	"github.com/lixenwraith/vi-asteroids/status"
)

var errQuit = errors.New("quit requested")

// App owns one running game and the collaborators around the simulation
type App struct {
	cfg      *config.Config
	world    *engine.World
	sched    *engine.Scheduler
	physics  *physics.Physics
	manager  *game.Manager
	keyboard *input.Keyboard
	router   *event.Router
	sink     *audio.BeepSink
	services *service.Group
	log      *zap.Logger

	audioOn   bool
	muted     bool
	frameTime *status.Gauge
	frameStep *status.Gauge
}

func newApp(
	cfg *config.Config,
	w *engine.World,
	sched *engine.Scheduler,
	phys *physics.Physics,
	manager *game.Manager,
	keyboard *input.Keyboard,
	router *event.Router,
	sink *audio.BeepSink,
	services *service.Group,
	log *zap.Logger,
) *App {
	return &App{
		cfg:       cfg,
		world:     w,
		sched:     sched,
		physics:   phys,
		manager:   manager,
		keyboard:  keyboard,
		router:    router,
		sink:      sink,
		services:  services,
		log:       log,
		frameTime: w.Resource.Status.Gauge(status.FrameSeconds),
		frameStep: w.Resource.Status.Gauge(status.FrameDelta),
	}
}

// Start brings up services and routes their resources into the game
// Audio failing to open is not fatal, the game runs silent
func (a *App) Start() error {
	if err := a.services.Init(nil); err != nil {
		return err
	}
	if err := a.services.Start(); err != nil {
		a.log.Warn("services unavailable, continuing without audio", zap.Error(err))
		return nil
	}
	return a.services.Contribute(func(resource any) {
		switch r := resource.(type) {
		case audio.Sink:
			a.router.Register(audio.NewListener(r, a.log.Named("sound")))
			a.audioOn = true
		default:
			a.log.Warn("unhandled service resource", zap.Any("resource", resource))
		}
	})
}

// Stop releases services
func (a *App) Stop() {
	if err := a.services.Stop(); err != nil {
		a.log.Warn("service shutdown", zap.Error(err))
	}
}

// Frame runs one full step: input, physics, rules, orchestration
func (a *App) Frame(dt float64) error {
	start := time.Now()

	a.keyboard.Advance(dt)
	a.keyboard.Apply(a.world, a.manager.Player())
	a.physics.Step(dt)
	if err := a.sched.Step(dt); err != nil {
		return err
	}
	a.manager.Update(dt)

	a.frameTime.Observe(time.Since(start).Seconds())
	a.frameStep.Observe(dt)
	return nil
}

// HandleEvent feeds a terminal event to the keyboard and acts on session keys
// Returns false when the player asked to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch a.keyboard.HandleEvent(ev) {
	case input.ActionQuit:
		return false
	case input.ActionRestart:
		a.manager.RequestRestart()
	case input.ActionToggleMute:
		if a.audioOn {
			a.muted = a.sink.ToggleMute()
			a.log.Debug("audio mute toggled", zap.Bool("muted", a.muted))
		}
	}
	return true
}

func (a *App) hud() render.HUD {
	h := render.HUD{
		State: a.manager.StateName(),
		Level: a.manager.Level(),
		Lives: a.manager.Lives(),
		Muted: a.muted || !a.audioOn,
	}
	if step := a.frameStep.Average(); step > 0 {
		h.FPS = 1 / step
	}
	if a.manager.State() == game.StateGameOver {
		h.Hint = "enter restarts, q quits"
	}
	return h
}

// Run drives the game on screen until quit or ctx ends
func (a *App) Run(ctx context.Context, screen tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	plotter := render.NewPlotter(screen, a.world.Resource.Field)
	events := make(chan tcell.Event, 256)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil once the screen is finalized
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	interval := time.Second / time.Duration(a.cfg.Sim.TickRate)
	maxStep := time.Duration(a.cfg.Sim.MaxStep * float64(time.Second))
	clock := engine.NewClock(interval, maxStep)

	err := clock.Run(ctx, func(dt time.Duration) error {
	drain:
		for {
			select {
			case ev := <-events:
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
				}
				if !a.HandleEvent(ev) {
					return errQuit
				}
			default:
				break drain
			}
		}
		if err := a.Frame(dt.Seconds()); err != nil {
			return err
		}
		plotter.Draw(a.world, a.hud())
		return nil
	})
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// RunHeadless steps a fixed number of frames without a screen
// An autopilot holds fire and turn, and restarts after game over
func (a *App) RunHeadless(ctx context.Context, frames int, dt float64) error {
	autopilot := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
	}
	for i := 0; i < frames; i++ {
		if ctx.Err() != nil {
			break
		}
		for _, k := range autopilot {
			a.HandleEvent(k)
		}
		if a.manager.State() == game.StateGameOver {
			a.manager.RequestRestart()
		}
		if err := a.Frame(dt); err != nil {
			return err
		}
	}
	a.log.Info("headless run finished", append([]zap.Field{
		zap.String("state", a.manager.StateName()),
		zap.Int("level", a.manager.Level()),
	}, a.world.Resource.Status.Fields()...)...)
	return nil
}
