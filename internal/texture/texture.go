// Package texture decodes base color images into the RGBA layout the GPU
// upload expects.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/anthonynsimon/bild/clone"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Image is a decoded texture. Pixels are always RGBA; Components records how
// many channels the encoded file carried.
type Image struct {
	*image.RGBA
	Format     string
	Components int
}

// Decode reads an encoded image (PNG, JPEG, BMP or WebP) and returns it as
// tightly packed RGBA with its origin at (0, 0).
func Decode(r io.Reader) (*Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return &Image{
		RGBA:       clone.AsRGBA(img),
		Format:     format,
		Components: Components(img),
	}, nil
}

// DecodeBytes is Decode over an in-memory image.
func DecodeBytes(data []byte) (*Image, error) {
	return Decode(bytes.NewReader(data))
}

// Components reports the channel count of a decoded image from its color
// model: 1 for gray, 4 when it has alpha that is actually used, 3 otherwise.
func Components(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && !o.Opaque() {
		return 4
	}
	return 3
}
