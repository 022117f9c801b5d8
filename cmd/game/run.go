package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/devloglogan/basic-3d-game/internal/config"
	"github.com/devloglogan/basic-3d-game/internal/debug"
	"github.com/devloglogan/basic-3d-game/internal/env"
	"github.com/devloglogan/basic-3d-game/internal/gpu"
	"github.com/devloglogan/basic-3d-game/internal/graphics"
	"github.com/devloglogan/basic-3d-game/internal/logger"
	"github.com/devloglogan/basic-3d-game/internal/scene"
	"github.com/devloglogan/basic-3d-game/internal/shaders"
)

type options struct {
	configPath string
	envPath    string
	saveConfig bool
	overrides  config.Overrides
}

// loadConfig layers the config file, the environment (.env included) and
// the command line, in increasing priority.
func loadConfig(opts options) (config.Config, error) {
	if err := env.Load(opts.envPath); err != nil {
		return config.Config{}, fmt.Errorf("env: %w", err)
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	fromEnv, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return cfg, err
	}
	for _, o := range []config.Overrides{fromEnv, opts.overrides} {
		if err := cfg.Apply(o); err != nil {
			return cfg, err
		}
	}
	if cfg.WatchShaders && cfg.ShaderDir == "" {
		return cfg, errors.New("--watch-shaders needs --shaders")
	}
	return cfg, cfg.Validate()
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	if opts.saveConfig {
		if err := config.Save(opts.configPath, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintln(os.Stdout, "wrote", opts.configPath)
		return nil
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log, err := logger.New(logger.LogFilePath, level, os.Stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	if err := play(cfg, log); err != nil {
		log.Error("game stopped", "err", err)
		return err
	}
	return nil
}

func play(cfg config.Config, log *logger.Logger) error {
	scn, err := scene.New(cfg, log.Logger)
	if err != nil {
		return err
	}

	win, err := graphics.Open(graphics.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	version, err := gpu.Init()
	if err != nil {
		return err
	}
	log.Info("window open", "scene", scn.Name(), "gl", version,
		"width", cfg.Window.Width, "height", cfg.Window.Height)

	if err := scn.Init(); err != nil {
		return err
	}
	defer scn.Close()

	var watcher *shaders.Watcher
	if cfg.WatchShaders {
		watcher, err = shaders.Watch(cfg.ShaderDir, log.Logger)
		if err != nil {
			return fmt.Errorf("watch shaders: %w", err)
		}
		defer watcher.Close()
		log.Info("watching shaders", "dir", cfg.ShaderDir)
	}

	overlay := debug.New(cfg.ShowFPS, cfg.ShowMemAlloc)
	if cfg.ShowFPS {
		overlay.Label = scn.Name() + ": " + scn.Stats()
	}
	if cfg.ShowLog {
		overlay.Log = log.Lines
	}

	update := func(f graphics.Frame) {
		if watcher != nil {
			for _, name := range watcher.Pending() {
				if err := scn.Reload(name); err != nil {
					log.Warn("shader reload failed, keeping previous program", "program", name, "err", err)
					continue
				}
				log.Info("shader reloaded", "program", name)
			}
		}
		scn.Update(f)
	}
	draw := func(f graphics.Frame) {
		scn.Draw(f)
		gpu.EndFrame()
		overlay.Draw()
	}
	win.Run(update, draw)
	log.Info("window closed")
	return nil
}
