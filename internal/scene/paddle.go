package scene

import (
	"image"
	"image/color"

	"github.com/devloglogan/basic-3d-game/internal/config"
	"github.com/devloglogan/basic-3d-game/internal/gpu"
	"github.com/devloglogan/basic-3d-game/internal/graphics"
	"github.com/devloglogan/basic-3d-game/internal/mesh"
	"github.com/devloglogan/basic-3d-game/internal/paddle"
	"github.com/devloglogan/basic-3d-game/internal/shaders"
	"github.com/devloglogan/basic-3d-game/internal/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// Paddle draws the textured mesh as triangles at the paddle position, which
// A/D (or the arrow keys) move along X.
type Paddle struct {
	base
	Pad     *paddle.Paddle
	texture *gpu.Texture
}

func newPaddle(b base, d *mesh.Data, p config.Paddle) *Paddle {
	b.data = d
	return &Paddle{
		base: b,
		Pad:  paddle.New(mgl32.Vec3(p.Start), p.Speed, p.Limit),
	}
}

func (p *Paddle) Name() string { return "paddle" }

func (p *Paddle) Init() error {
	img, components, err := p.baseColor()
	if err != nil {
		return err
	}
	if err := p.setup(shaders.Textured); err != nil {
		return err
	}
	p.texture, err = gpu.UploadTexture(img, components)
	if err != nil {
		return err
	}
	p.log.Debug("texture uploaded", "id", p.texture.ID,
		"width", p.texture.Width, "height", p.texture.Height, "components", components)
	return nil
}

// baseColor decodes the mesh's base color image, or a 1x1 white image when
// it has none.
func (p *Paddle) baseColor() (*image.RGBA, int, error) {
	if p.data.BaseColor == nil {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		return img, 3, nil
	}
	img, err := texture.DecodeBytes(p.data.BaseColor)
	if err != nil {
		return nil, 0, err
	}
	p.log.Debug("texture decoded", "format", img.Format, "bounds", img.Bounds())
	return img.RGBA, img.Components, nil
}

func (p *Paddle) Update(f graphics.Frame) {
	p.Pad.Update(f.Left, f.Right, f.Delta)
}

func (p *Paddle) Draw(f graphics.Frame) {
	p.begin(f)
	p.texture.Bind(0)
	p.prog.SetInt("u_texture", 0)
	p.prog.SetMat4("u_model", p.Pad.Model())
	p.buffers.Draw(gpu.Triangles)
}

func (p *Paddle) Close() {
	if p.texture != nil {
		p.texture.Release()
		p.texture = nil
	}
	p.base.Close()
}
