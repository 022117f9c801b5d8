package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// demo is the camera all three demos use: 45° fov, 0.1..100 clip range,
// 4 units back.
var demo = Camera{FOV: 45, Near: 0.1, Far: 100, Distance: 4}

func TestView(t *testing.T) {
	v := demo.View()
	p := v.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.Equal(t, mgl32.Vec4{0, 0, -4, 1}, p)
}

func TestProjectionCentersOrigin(t *testing.T) {
	c := demo
	mvp := c.Projection(640, 480).Mul4(c.View())
	clip := mvp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())

	assert.InDelta(t, 0, ndc.X(), 1e-6)
	assert.InDelta(t, 0, ndc.Y(), 1e-6)
	assert.True(t, ndc.Z() > -1 && ndc.Z() < 1, "origin should be inside the clip range, got z=%v", ndc.Z())
}

func TestProjectionAspect(t *testing.T) {
	c := demo
	wide := c.Projection(640, 480)
	square := c.Projection(480, 480)
	// x scale shrinks as the viewport gets wider.
	assert.Less(t, wide.At(0, 0), square.At(0, 0))
	// a zero height falls back to a square aspect.
	assert.Equal(t, square, c.Projection(100, 0))
}
