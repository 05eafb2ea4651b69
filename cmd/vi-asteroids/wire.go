//go:build wireinject
// +build wireinject

// The build tag keeps the injector template out of the final build.

package main

import (
	"github.com/google/wire"

	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/event"
	"github.com/lixenwraith/vi-asteroids/registry"
)

func initializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		provideLogger,
		provideWorld,
		registry.Build,
		event.NewRouter,
		provideScheduler,
		provideManager,
		providePhysics,
		provideKeyboard,
		provideAudio,
		provideServices,
		newApp,
	)
	return nil, nil, nil
}
