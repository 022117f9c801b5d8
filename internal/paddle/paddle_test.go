package paddle

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestUpdate(t *testing.T) {
	p := New(mgl32.Vec3{0, -0.75, 0}, 2, 1.5)

	p.Update(false, true, 0.25)
	assert.InDelta(t, 0.5, p.Position.X(), 1e-6)

	p.Update(true, false, 0.5)
	assert.InDelta(t, -0.5, p.Position.X(), 1e-6)

	p.Update(true, true, 1)
	assert.InDelta(t, -0.5, p.Position.X(), 1e-6)

	p.Update(false, false, 1)
	assert.InDelta(t, -0.5, p.Position.X(), 1e-6)

	assert.Equal(t, float32(-0.75), p.Position.Y())
}

func TestUpdateClamps(t *testing.T) {
	p := New(mgl32.Vec3{0, -0.75, 0}, 2, 1.5)
	for i := 0; i < 100; i++ {
		p.Update(false, true, 0.1)
	}
	assert.Equal(t, float32(1.5), p.Position.X())

	for i := 0; i < 100; i++ {
		p.Update(true, false, 0.1)
	}
	assert.Equal(t, float32(-1.5), p.Position.X())
}

func TestNewClampsStart(t *testing.T) {
	p := New(mgl32.Vec3{9, 0, 0}, 1, 1.5)
	assert.Equal(t, float32(1.5), p.Position.X())
}

func TestModel(t *testing.T) {
	p := New(mgl32.Vec3{1, -0.75, 0}, 1, 1.5)
	got := p.Model().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.Equal(t, mgl32.Vec4{1, -0.75, 0, 1}, got)
}
