package scene

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/devloglogan/basic-3d-game/internal/config"
	"github.com/devloglogan/basic-3d-game/internal/graphics"
	"github.com/devloglogan/basic-3d-game/internal/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pyramidPath = "../../assets/models/pyramid/pyramid.gltf"

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig(scene string) config.Config {
	c := config.Default()
	c.Scene = scene
	c.Model = pyramidPath
	return c
}

func TestNewCube(t *testing.T) {
	s, err := New(testConfig(config.SceneCube), quiet)
	require.NoError(t, err)
	c, ok := s.(*Cube)
	require.True(t, ok)
	assert.Equal(t, "cube", c.Name())
	assert.Empty(t, c.Stats(), "nothing uploaded before Init")

	c.Update(graphics.Frame{Delta: 0.5})
	assert.InDelta(t, 0.5, c.Angle, 1e-6)

	for i := 0; i < 100; i++ {
		c.Update(graphics.Frame{Delta: 0.5})
	}
	assert.GreaterOrEqual(t, c.Angle, float32(0))
	assert.Less(t, c.Angle, float32(2*math.Pi))
}

func TestNewPoints(t *testing.T) {
	s, err := New(testConfig(config.ScenePoints), quiet)
	require.NoError(t, err)
	p, ok := s.(*Points)
	require.True(t, ok)
	assert.Equal(t, 16, p.data.VertexCount())
	assert.Empty(t, p.Stats(), "nothing uploaded before Init")
	assert.Len(t, p.data.Indices, 18)
}

func TestNewPaddle(t *testing.T) {
	s, err := New(testConfig(config.ScenePaddle), quiet)
	require.NoError(t, err)
	p, ok := s.(*Paddle)
	require.True(t, ok)
	assert.NotNil(t, p.data.BaseColor)

	img, components, err := p.baseColor()
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 3, components)

	assert.Equal(t, float32(-0.75), p.Pad.Position.Y())
	p.Update(graphics.Frame{Delta: 10, Right: true})
	assert.Equal(t, float32(1.5), p.Pad.Position.X())
	p.Update(graphics.Frame{Delta: 0.5, Left: true})
	assert.InDelta(t, 0.75, p.Pad.Position.X(), 1e-6)
}

func TestPaddleWithoutTexture(t *testing.T) {
	s, err := New(testConfig(config.ScenePaddle), quiet)
	require.NoError(t, err)
	p := s.(*Paddle)
	p.data.BaseColor = nil

	img, components, err := p.baseColor()
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 3, components)
}

func TestNewErrors(t *testing.T) {
	_, err := New(testConfig("breakout"), quiet)
	assert.ErrorContains(t, err, "unknown scene")

	c := testConfig(config.ScenePoints)
	c.Model = "missing.gltf"
	_, err = New(c, quiet)
	assert.Error(t, err)
}

func TestReloadIgnoresOtherPrograms(t *testing.T) {
	s, err := New(testConfig(config.SceneCube), quiet)
	require.NoError(t, err)
	c := s.(*Cube)
	c.program = shaders.Cube
	// Not the cube's program: no GL work, no error.
	assert.NoError(t, c.Reload(shaders.Textured))
}
