package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(1, 0, color.NRGBA{G: 255, A: 255})
	src.Set(0, 1, color.NRGBA{B: 255, A: 255})
	src.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	img, err := DecodeBytes(encodePNG(t, src))
	require.NoError(t, err)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(1, 0))
	assert.Equal(t, 3, img.Components)
}

func TestDecodeWhiteColorPNGKeepsThreeChannels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	img, err := DecodeBytes(encodePNG(t, src))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Components, "gray-looking pixels in a color file are still color")
}

func TestDecodeGrayPNG(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(1, 1, color.Gray{Y: 200})
	img, err := DecodeBytes(encodePNG(t, src))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Components)
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 200, A: 255}, img.RGBAAt(1, 1))
}

func TestDecodeTranslucentPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.NRGBA{R: 10, A: 128})
	img, err := DecodeBytes(encodePNG(t, src))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Components)
}

func TestDecodeJPEGOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	img, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", img.Format)
	assert.Equal(t, image.Pt(0, 0), img.Bounds().Min)
	assert.Equal(t, 3, img.Components)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := DecodeBytes([]byte("not an image"))
	assert.Error(t, err)
}

func TestComponents(t *testing.T) {
	assert.Equal(t, 1, Components(image.NewGray(image.Rect(0, 0, 1, 1))))
	assert.Equal(t, 1, Components(image.NewGray16(image.Rect(0, 0, 1, 1))))

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 1))
	rgba.SetRGBA(0, 0, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	rgba.SetRGBA(1, 0, color.RGBA{R: 20, G: 20, B: 20, A: 255})
	assert.Equal(t, 3, Components(rgba), "opaque gray pixels in an RGBA image")

	rgba.SetRGBA(0, 0, color.RGBA{A: 128})
	assert.Equal(t, 4, Components(rgba))

	assert.Equal(t, 3, Components(image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420)))
}
