package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
	logFontSize    = 10
	logLines       = 6
	logMaxRunes    = 110
)

// Overlay draws optional FPS, heap and mesh statistics in the top-right
// corner over the 3D scene. All lines are off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	// Label is drawn under the counters when non-empty (e.g. "paddle: 18 indices").
	Label string
	// Log, when set, returns recent log lines; the last few are drawn in the
	// bottom-left corner.
	Log func() []string

	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns an overlay with the given counters enabled.
func New(showFPS, showMemAlloc bool) *Overlay {
	return &Overlay{ShowFPS: showFPS, ShowMemAlloc: showMemAlloc}
}

// Enabled reports whether Draw would render anything.
func (o *Overlay) Enabled() bool {
	return o.ShowFPS || o.ShowMemAlloc || o.Label != "" || o.Log != nil
}

// lines returns the text to draw this frame, refreshing the counters every
// updateInterval frames. fps and alloc are sampled lazily.
func (o *Overlay) lines(fps func() int32, alloc func() uint64) []string {
	o.frameCount++
	refresh := o.frameCount%updateInterval == 0
	var out []string
	if o.ShowFPS {
		if refresh || o.fpsText == "" {
			o.fpsText = fmt.Sprintf("FPS: %d", fps())
		}
		out = append(out, o.fpsText)
	}
	if o.ShowMemAlloc {
		if refresh || o.memText == "" {
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(alloc())/(1024*1024))
		}
		out = append(out, o.memText)
	}
	if o.Label != "" {
		out = append(out, o.Label)
	}
	return out
}

// tail returns the last n lines, each cut to logMaxRunes.
func tail(lines []string, n int) []string {
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if r := []rune(l); len(r) > logMaxRunes {
			l = string(r[:logMaxRunes-3]) + "..."
		}
		out[i] = l
	}
	return out
}

func (o *Overlay) heapAlloc() uint64 {
	runtime.ReadMemStats(&o.memStats)
	return o.memStats.Alloc
}

// Draw renders the enabled lines. Call inside the frame after the scene.
func (o *Overlay) Draw() {
	if !o.Enabled() {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range o.lines(rl.GetFPS, o.heapAlloc) {
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if o.Log == nil {
		return
	}
	lines := tail(o.Log(), logLines)
	y = int32(rl.GetScreenHeight()) - padding - int32(len(lines))*(logFontSize+2)
	for _, text := range lines {
		rl.DrawText(text, padding, y, logFontSize, rl.RayWhite)
		y += logFontSize + 2
	}
}
