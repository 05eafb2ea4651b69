package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-asteroids/config"
	"github.com/lixenwraith/vi-asteroids/core"
)

const defaultLogFile = "vi-asteroids.log"

type options struct {
	configPath string
	envFile    string
	headless   bool
	frames     int
	mute       bool
	debug      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file, overridden by "+config.EnvConfigPath)
	flag.StringVar(&opts.envFile, "env", ".env", "dotenv file with ASTEROIDS_* overrides")
	flag.BoolVar(&opts.headless, "headless", false, "run without a terminal screen")
	flag.IntVar(&opts.frames, "frames", 3600, "frames to simulate in headless mode")
	flag.BoolVar(&opts.mute, "mute", false, "disable audio")
	flag.BoolVar(&opts.debug, "debug", false, "panic on invariant violations and log at debug level")
	flag.Parse()

	// Restore the terminal before the stack trace is printed
	defer func() { core.HandleCrash(recover()) }()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "vi-asteroids: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(opts options) (*config.Config, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(config.PathFromEnv(opts.configPath))
	if err != nil {
		return nil, err
	}
	if opts.mute {
		cfg.Audio.Enabled = false
	}
	if opts.debug {
		cfg.Sim.Debug = true
		cfg.Log.Level = "debug"
	}
	// tcell owns the terminal, logs go to a file
	if !opts.headless && cfg.Log.File == "" {
		cfg.Log.File = defaultLogFile
	}
	return cfg, nil
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	app, cleanup, err := initializeApp(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Start(); err != nil {
		return err
	}
	defer app.Stop()

	if opts.headless {
		return app.RunHeadless(ctx, opts.frames, 1/float64(cfg.Sim.TickRate))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.OnCrash(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	return app.Run(ctx, screen)
}
