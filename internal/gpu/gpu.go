// Package gpu uploads static geometry, shaders and textures through OpenGL
// 3.3 core. Every function must run on the thread that owns the GL context.
package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads the GL function pointers for the context that is current on the
// calling thread and returns the driver version string.
func Init() (string, error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("gpu: init: %w", err)
	}
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

// BeginFrame resets the per-frame state the demos rely on: depth testing on,
// face culling off, color and depth buffers cleared to clear.
func BeginFrame(clear [4]float32, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// EndFrame unbinds what the demos bound so the window layer's own renderer
// (debug overlay text) starts from a clean state.
func EndFrame() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.Disable(gl.DEPTH_TEST)
}
