package scene

import (
	"github.com/devloglogan/basic-3d-game/internal/gpu"
	"github.com/devloglogan/basic-3d-game/internal/graphics"
	"github.com/devloglogan/basic-3d-game/internal/mesh"
	"github.com/devloglogan/basic-3d-game/internal/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// Points draws the loaded mesh's vertices as points with an identity model.
type Points struct {
	base
}

func newPoints(b base, d *mesh.Data) *Points {
	b.data = d
	return &Points{base: b}
}

func (p *Points) Name() string { return "points" }

func (p *Points) Init() error {
	return p.setup(shaders.Points)
}

func (p *Points) Update(graphics.Frame) {}

func (p *Points) Draw(f graphics.Frame) {
	p.begin(f)
	p.prog.SetMat4("u_model", mgl32.Ident4())
	p.buffers.Draw(gpu.Points)
}
