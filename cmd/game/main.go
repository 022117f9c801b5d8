package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/devloglogan/basic-3d-game/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	// GL contexts are bound to an OS thread; keep main on the thread that
	// creates the window.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	switches := map[string]*bool{}
	cmd := &cobra.Command{
		Use:   "game [cube|points|paddle]",
		Short: "Breakout 3D rendering demo",
		Long: `Opens a window and renders one of three demos:
  cube    a rotating cube with per-vertex colors
  points  the glTF model's vertices drawn as points
  paddle  the textured glTF model, moved with A/D (default)
Escape quits.`,
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     []string{"cube", "points", "paddle"},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.overrides.Scene = args[0]
			}
			setSwitches(cmd, switches, &opts.overrides)
			return run(opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", config.DefaultPath, "path to the YAML config file")
	f.BoolVar(&opts.saveConfig, "save-config", false, "write the effective config to --config and exit")
	f.StringVar(&opts.envPath, "env", ".env", "path to a KEY=VALUE file loaded into the environment")
	f.StringVar(&opts.overrides.Model, "model", "", "glTF model to load (overrides config)")
	f.StringVar(&opts.overrides.ShaderDir, "shaders", "", "directory with *.vert/*.frag files (default: embedded)")
	switches["watch-shaders"] = f.Bool("watch-shaders", false, "recompile shaders when files in --shaders change")
	switches["show-fps"] = f.Bool("show-fps", false, "draw the FPS counter")
	switches["show-log"] = f.Bool("show-log", false, "draw the most recent log lines")
	f.StringVar(&opts.overrides.LogLevel, "log-level", "", "debug, info, warn or error")
	return cmd
}

// setSwitches copies the boolean flags given on the command line into o.
// Flags left out stay nil so the config file and environment decide.
func setSwitches(cmd *cobra.Command, switches map[string]*bool, o *config.Overrides) {
	for name, dst := range map[string]**bool{
		"watch-shaders": &o.WatchShaders,
		"show-fps":      &o.ShowFPS,
		"show-log":      &o.ShowLog,
	} {
		if cmd.Flags().Changed(name) {
			*dst = switches[name]
		}
	}
}
