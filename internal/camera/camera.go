package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera is a fixed perspective camera looking down -Z from Distance units
// in front of the origin. The matrices are computed once at startup.
type Camera struct {
	FOV      float32 // vertical field of view in degrees
	Near     float32
	Far      float32
	Distance float32
}

// View returns the view matrix, a plain translation along -Z.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -c.Distance)
}

// Projection returns the perspective matrix for a width x height viewport.
func (c Camera) Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}
