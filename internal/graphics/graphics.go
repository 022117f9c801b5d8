package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options describes the window to open.
type Options struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int // 0 = uncapped
}

// Frame is the per-frame input handed to update and draw: time since the last
// frame and since start (seconds), the framebuffer size, and the state of
// the movement keys.
type Frame struct {
	Delta  float32
	Time   float32
	Width  int
	Height int
	Left   bool
	Right  bool
}

// Window owns the OS window and its OpenGL 3.3 core context.
type Window struct {
	opts Options
}

// Open creates the window and makes its GL context current on the calling
// thread. The caller must stay on that thread (see runtime.LockOSThread)
// for every GL call until Close.
func Open(opts Options) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("graphics: window could not be created")
	}
	rl.SetExitKey(rl.KeyEscape)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	return &Window{opts: opts}, nil
}

// Run loops until the window is closed or Escape is pressed. Each frame it
// polls input, calls update, then draw between BeginDrawing and EndDrawing
// (which swaps buffers).
func (w *Window) Run(update, draw func(Frame)) {
	for !rl.WindowShouldClose() {
		f := Frame{
			Delta:  rl.GetFrameTime(),
			Time:   float32(rl.GetTime()),
			Width:  rl.GetRenderWidth(),
			Height: rl.GetRenderHeight(),
			Left:   rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
			Right:  rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		}
		update(f)

		rl.BeginDrawing()
		draw(f)
		rl.EndDrawing()
	}
}

// Close destroys the window and its GL context.
func (w *Window) Close() {
	rl.CloseWindow()
}
