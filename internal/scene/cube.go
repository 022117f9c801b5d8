package scene

import (
	"github.com/chewxy/math32"
	"github.com/devloglogan/basic-3d-game/internal/gpu"
	"github.com/devloglogan/basic-3d-game/internal/graphics"
	"github.com/devloglogan/basic-3d-game/internal/mesh"
	"github.com/devloglogan/basic-3d-game/internal/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// cubeSpin is the rotation speed in radians per second.
const cubeSpin = 1

var cubeAxis = mgl32.Vec3{0.5, 1, 0}.Normalize()

// Cube spins the hard-coded vertex-colored cube.
type Cube struct {
	base
	Angle float32
}

func newCube(b base) *Cube {
	return &Cube{base: b}
}

func (c *Cube) Name() string { return "cube" }

func (c *Cube) Init() error {
	c.data = mesh.Cube()
	return c.setup(shaders.Cube)
}

// Update advances the angle, kept in [0, 2π).
func (c *Cube) Update(f graphics.Frame) {
	c.Angle = math32.Mod(c.Angle+cubeSpin*f.Delta, 2*math32.Pi)
}

func (c *Cube) model() mgl32.Mat4 {
	return mgl32.HomogRotate3D(c.Angle, cubeAxis)
}

func (c *Cube) Draw(f graphics.Frame) {
	c.begin(f)
	c.prog.SetMat4("u_model", c.model())
	c.buffers.Draw(gpu.Triangles)
}
