package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-asteroids/audio"
	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/engine"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/game"
	"github.com/lixenwraith/vi-asteroids/input"
	"github.com/lixenwraith/vi-asteroids/logger"
	"github.com/lixenwraith/vi-asteroids/physics"
	"github.com/lixenwraith/vi-asteroids/registry"
	"github.com/lixenwraith/vi-asteroids/service"
	"github.com/lixenwraith/vi-asteroids/status"
	"github.com/lixenwraith/vi-asteroids/system"
)

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return log, func() { logger.Sync(log) }, nil
}

func provideWorld(cfg *config.Config, log *zap.Logger) *engine.World {
	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("world created", zap.Uint64("seed", seed), zap.Bool("debug", cfg.Sim.Debug))
	return engine.NewWorld(engine.Resource{
		Field:  engine.NewPlayField(cfg.Field.Width, cfg.Field.Height),
		Status: status.NewRegistry(),
		Log:    log,
		Debug:  cfg.Sim.Debug,
		Seed:   seed,
	})
}

func provideScheduler(w *engine.World, reg *registry.Registry, cfg *config.Config, router *event.Router) *engine.Scheduler {
	sched := engine.NewScheduler(w, cfg.Sim.Workers)
	sched.Register(system.NewPipeline(system.Deps{
		World:    w,
		Registry: reg,
		Config:   cfg,
		Router:   router,
	})...)
	return sched
}

func provideManager(w *engine.World, reg *registry.Registry, cfg *config.Config, sched *engine.Scheduler, router *event.Router, log *zap.Logger) (*game.Manager, error) {
	m, err := game.New(w, reg, cfg, sched, log)
	if err != nil {
		return nil, err
	}
	router.Register(m)
	return m, nil
}

func provideKeyboard(cfg *config.Config) *input.Keyboard {
	return input.NewKeyboard(cfg.Input)
}

func provideAudio(cfg *config.Config, log *zap.Logger) *audio.BeepSink {
	return audio.NewBeepSink(cfg.Audio.Volume, log.Named("audio"))
}

// provideServices registers the long-lived collaborators; a disabled audio backend is left out
func provideServices(cfg *config.Config, sink *audio.BeepSink, log *zap.Logger) (*service.Group, error) {
	g := service.NewGroup(log)
	if cfg.Audio.Enabled {
		if err := g.Add(sink); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func providePhysics(w *engine.World) *physics.Physics {
	return physics.New(w)
}
