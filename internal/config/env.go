package config

import (
	"fmt"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvScene        = "BREAKOUT_SCENE"
	EnvModel        = "BREAKOUT_MODEL"
	EnvShaderDir    = "BREAKOUT_SHADER_DIR"
	EnvWatchShaders = "BREAKOUT_WATCH_SHADERS"
	EnvShowFPS      = "BREAKOUT_SHOW_FPS"
	EnvShowLog      = "BREAKOUT_SHOW_LOG"
	EnvLogLevel     = "BREAKOUT_LOG_LEVEL"
)

// FromEnv collects overrides from the environment through lookup (usually
// os.LookupEnv). Boolean variables must parse with strconv.ParseBool; an
// unset or empty variable leaves the setting alone.
func FromEnv(lookup func(string) (string, bool)) (Overrides, error) {
	var o Overrides
	o.Scene, _ = lookup(EnvScene)
	o.Model, _ = lookup(EnvModel)
	o.ShaderDir, _ = lookup(EnvShaderDir)
	o.LogLevel, _ = lookup(EnvLogLevel)

	for key, dst := range map[string]**bool{
		EnvWatchShaders: &o.WatchShaders,
		EnvShowFPS:      &o.ShowFPS,
		EnvShowLog:      &o.ShowLog,
	} {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Overrides{}, fmt.Errorf("config: %s=%q: %w", key, v, err)
		}
		*dst = &b
	}
	return o, nil
}
