package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the path to the game config file, relative to the process working directory.
const DefaultPath = "config/game.yaml"

// Scene names accepted by Config.Scene.
const (
	SceneCube   = "cube"
	ScenePoints = "points"
	ScenePaddle = "paddle"
)

// Window describes the window and GL context.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"` // 0 = uncapped
}

// Camera holds the fixed perspective camera parameters.
type Camera struct {
	FOV      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Distance float32 `yaml:"distance"`
}

// Paddle holds the paddle start position and movement limits.
type Paddle struct {
	Start [3]float32 `yaml:"start"`
	Speed float32    `yaml:"speed"`
	Limit float32    `yaml:"limit"`
}

// Config is everything the demo reads at startup. Persisted as YAML.
type Config struct {
	Scene        string     `yaml:"scene"`
	Model        string     `yaml:"model"`
	ShaderDir    string     `yaml:"shader_dir,omitempty"` // empty = embedded shaders
	WatchShaders bool       `yaml:"watch_shaders"`
	ShowFPS      bool       `yaml:"show_fps"`
	ShowMemAlloc bool       `yaml:"show_memalloc"`
	ShowLog      bool       `yaml:"show_log"` // recent log lines in the overlay
	LogLevel     string     `yaml:"log_level"`
	ClearColor   [4]float32 `yaml:"clear_color"`
	Window       Window     `yaml:"window"`
	Camera       Camera     `yaml:"camera"`
	Paddle       Paddle     `yaml:"paddle"`
}

// Default returns the settings of the textured paddle demo: 640x480 window,
// purple clear color, pyramid model.
func Default() Config {
	return Config{
		Scene:      ScenePaddle,
		Model:      "assets/models/pyramid/pyramid.gltf",
		LogLevel:   "info",
		ClearColor: [4]float32{0.3, 0.1, 0.3, 1},
		Window: Window{
			Width:  640,
			Height: 480,
			Title:  "Breakout 3D",
		},
		Camera: Camera{FOV: 45, Near: 0.1, Far: 100, Distance: 4},
		Paddle: Paddle{
			Start: [3]float32{0, -0.75, 0},
			Speed: 1.5,
			Limit: 1.5,
		},
	}
}

// Load reads the config at path on top of Default(). Keys missing from the
// file keep their default value; a missing file yields Default().
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, c.Validate()
}

// Save writes c as YAML to path, creating the parent directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Overrides are the settings that can be changed from the command line or
// the environment. Empty strings and nil switches leave the config
// untouched; a switch pointing at false turns the setting off.
type Overrides struct {
	Scene        string
	Model        string
	ShaderDir    string
	WatchShaders *bool
	ShowFPS      *bool
	ShowLog      *bool
	LogLevel     string
}

// Apply copies every set field of o onto c.
func (c *Config) Apply(o Overrides) error {
	return copier.CopyWithOption(c, &o, copier.Option{IgnoreEmpty: true})
}

// Validate reports the first setting that would make the demo unusable.
func (c Config) Validate() error {
	switch c.Scene {
	case SceneCube, ScenePoints, ScenePaddle:
	default:
		return fmt.Errorf("config: unknown scene %q", c.Scene)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TargetFPS < 0 {
		return fmt.Errorf("config: target fps %d", c.Window.TargetFPS)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("config: camera fov %v out of (0, 180)", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return fmt.Errorf("config: camera clip range %v..%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Paddle.Speed < 0 || c.Paddle.Limit < 0 {
		return fmt.Errorf("config: paddle speed %v / limit %v must not be negative", c.Paddle.Speed, c.Paddle.Limit)
	}
	if c.Scene != SceneCube && c.Model == "" {
		return fmt.Errorf("config: scene %q needs a model", c.Scene)
	}
	return nil
}
