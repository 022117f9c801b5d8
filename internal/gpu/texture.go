package gpu

import (
	"errors"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture is a mipmapped 2D texture.
type Texture struct {
	ID            uint32
	Width, Height int32
}

// internalFormat picks the GL storage format for an image with the given
// channel count.
func internalFormat(components int) int32 {
	switch components {
	case 1:
		return gl.RED
	case 4:
		return gl.RGBA
	}
	return gl.RGB
}

// UploadTexture copies img to a GL_TEXTURE_2D with mipmaps, repeat wrapping
// and trilinear minification. components (see texture.Components) selects
// whether alpha is kept.
func UploadTexture(img *image.RGBA, components int) (*Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.New("gpu: empty texture image")
	}
	t := &Texture{Width: int32(b.Dx()), Height: int32(b.Dy())}

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat(components), t.Width, t.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	if components == 1 {
		// Single channel storage samples as (r, 0, 0, 1); spread it to gray.
		swizzle := [4]int32{gl.RED, gl.RED, gl.RED, gl.ONE}
		gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

// Bind binds t to texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Release deletes the texture.
func (t *Texture) Release() {
	gl.DeleteTextures(1, &t.ID)
	t.ID = 0
}
