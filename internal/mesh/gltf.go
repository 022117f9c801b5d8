package mesh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
)

// Load reads the glTF (or GLB) file at path and extracts mesh 0, primitive 0.
// External buffers and images are resolved relative to the file's directory.
func Load(path string) (*Data, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	return FromDocument(doc, filepath.Dir(path))
}

// FromDocument extracts positions, texture coordinates, indices and the base
// color image of mesh 0, primitive 0 from an already decoded document.
// dir is used to resolve image files referenced by relative URI.
func FromDocument(doc *gltf.Document, dir string) (*Data, error) {
	if len(doc.Meshes) == 0 || doc.Meshes[0] == nil || len(doc.Meshes[0].Primitives) == 0 {
		return nil, ErrNoMesh
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, ErrNoPosition
	}
	positions, err := readFloats(doc, posIdx, gltf.AccessorVec3)
	if err != nil {
		return nil, fmt.Errorf("mesh: POSITION: %w", err)
	}
	d := &Data{Positions: positions}

	if tcIdx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		d.TexCoords, err = readFloats(doc, tcIdx, gltf.AccessorVec2)
		if err != nil {
			return nil, fmt.Errorf("mesh: TEXCOORD_0: %w", err)
		}
	}

	if prim.Indices != nil {
		d.Indices, err = readIndices(doc, *prim.Indices)
		if err != nil {
			return nil, fmt.Errorf("mesh: indices: %w", err)
		}
	} else {
		n := d.VertexCount()
		d.Indices = make([]uint32, n)
		for i := range d.Indices {
			d.Indices[i] = uint32(i)
		}
	}

	img, err := BaseColorImage(doc, prim, dir)
	switch {
	case err == nil:
		d.BaseColor = img
	case errors.Is(err, ErrNoTexture):
	default:
		return nil, err
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// accessorView returns the raw bytes backing accessor i, starting at the
// accessor's first element, together with the byte stride between elements
// and the size of one element.
func accessorView(doc *gltf.Document, i int) (acc *gltf.Accessor, data []byte, stride, elem int, err error) {
	if i < 0 || i >= len(doc.Accessors) {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d: %w", i, ErrOutOfRange)
	}
	acc = doc.Accessors[i]
	if acc.BufferView == nil {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d has no buffer view", i)
	}
	if *acc.BufferView < 0 || *acc.BufferView >= len(doc.BufferViews) {
		return nil, nil, 0, 0, fmt.Errorf("buffer view %d: %w", *acc.BufferView, ErrOutOfRange)
	}
	view := doc.BufferViews[*acc.BufferView]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) {
		return nil, nil, 0, 0, fmt.Errorf("buffer %d: %w", view.Buffer, ErrOutOfRange)
	}
	data, err = viewBytes(doc.Buffers[view.Buffer].Data, view)
	if err != nil {
		return nil, nil, 0, 0, fmt.Errorf("buffer view %d: %w", *acc.BufferView, err)
	}

	elem = componentSize(acc.ComponentType) * componentCount(acc.Type)
	stride = view.ByteStride
	if stride == 0 {
		stride = elem
	}
	if stride < elem {
		return nil, nil, 0, 0, fmt.Errorf("buffer view %d: stride %d below element size %d: %w",
			*acc.BufferView, view.ByteStride, elem, ErrOutOfRange)
	}
	if acc.Count < 0 || acc.ByteOffset < 0 || acc.ByteOffset > len(data) {
		return nil, nil, 0, 0, fmt.Errorf("accessor %d: count %d at offset %d: %w",
			i, acc.Count, acc.ByteOffset, ErrOutOfRange)
	}
	data = data[acc.ByteOffset:]
	if acc.Count > 0 {
		// Compare element counts instead of byte sizes so huge counts
		// cannot overflow.
		if len(data) < elem || acc.Count-1 > (len(data)-elem)/stride {
			return nil, nil, 0, 0, fmt.Errorf("accessor %d: %d elements do not fit in %d bytes: %w",
				i, acc.Count, len(data), ErrOutOfRange)
		}
	}
	return acc, data, stride, elem, nil
}

// viewBytes returns the slice of buf covered by view.
func viewBytes(buf []byte, view *gltf.BufferView) ([]byte, error) {
	if view.ByteOffset < 0 || view.ByteLength < 0 || view.ByteStride < 0 ||
		view.ByteOffset > len(buf) || view.ByteLength > len(buf)-view.ByteOffset {
		return nil, fmt.Errorf("[%d:+%d] of %d bytes: %w",
			view.ByteOffset, view.ByteLength, len(buf), ErrOutOfRange)
	}
	return buf[view.ByteOffset : view.ByteOffset+view.ByteLength], nil
}

func readFloats(doc *gltf.Document, i int, want gltf.AccessorType) ([]float32, error) {
	acc, data, stride, _, err := accessorView(doc, i)
	if err != nil {
		return nil, err
	}
	if acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("accessor %d: component type %v, want float", i, acc.ComponentType)
	}
	if acc.Type != want {
		return nil, fmt.Errorf("accessor %d: type %v, want %v", i, acc.Type, want)
	}
	n := componentCount(want)
	out := make([]float32, 0, acc.Count*n)
	for e := 0; e < acc.Count; e++ {
		off := e * stride
		for c := 0; c < n; c++ {
			bits := binary.LittleEndian.Uint32(data[off+c*4:])
			out = append(out, math.Float32frombits(bits))
		}
	}
	return out, nil
}

// readIndices widens 8, 16 or 32 bit index storage to uint32.
func readIndices(doc *gltf.Document, i int) ([]uint32, error) {
	acc, data, stride, _, err := accessorView(doc, i)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("accessor %d: type %v, want scalar", i, acc.Type)
	}
	out := make([]uint32, acc.Count)
	switch acc.ComponentType {
	case gltf.ComponentUbyte:
		for e := range out {
			out[e] = uint32(data[e*stride])
		}
	case gltf.ComponentUshort:
		for e := range out {
			out[e] = uint32(binary.LittleEndian.Uint16(data[e*stride:]))
		}
	case gltf.ComponentUint:
		for e := range out {
			out[e] = binary.LittleEndian.Uint32(data[e*stride:])
		}
	default:
		return nil, fmt.Errorf("accessor %d: %v: %w", i, acc.ComponentType, ErrUnsupportedIndexType)
	}
	return out, nil
}

// BaseColorImage follows material -> baseColorTexture -> texture -> image for
// prim and returns the encoded image bytes.
func BaseColorImage(doc *gltf.Document, prim *gltf.Primitive, dir string) ([]byte, error) {
	if prim.Material == nil || *prim.Material < 0 || *prim.Material >= len(doc.Materials) {
		return nil, ErrNoTexture
	}
	mat := doc.Materials[*prim.Material]
	if mat.PBRMetallicRoughness == nil || mat.PBRMetallicRoughness.BaseColorTexture == nil {
		return nil, ErrNoTexture
	}
	ti := mat.PBRMetallicRoughness.BaseColorTexture.Index
	if ti < 0 || ti >= len(doc.Textures) {
		return nil, fmt.Errorf("mesh: texture %d: %w", ti, ErrOutOfRange)
	}
	tex := doc.Textures[ti]
	if tex.Source == nil || *tex.Source < 0 || *tex.Source >= len(doc.Images) {
		return nil, ErrNoTexture
	}
	img := doc.Images[*tex.Source]

	switch {
	case img.BufferView != nil:
		bv := *img.BufferView
		if bv < 0 || bv >= len(doc.BufferViews) {
			return nil, fmt.Errorf("mesh: image buffer view %d: %w", bv, ErrOutOfRange)
		}
		view := doc.BufferViews[bv]
		if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) {
			return nil, fmt.Errorf("mesh: image buffer %d: %w", view.Buffer, ErrOutOfRange)
		}
		data, err := viewBytes(doc.Buffers[view.Buffer].Data, view)
		if err != nil {
			return nil, fmt.Errorf("mesh: image buffer view %d: %w", bv, err)
		}
		return data, nil
	case img.IsEmbeddedResource():
		data, err := img.MarshalData()
		if err != nil {
			return nil, fmt.Errorf("mesh: decode image data uri: %w", err)
		}
		return data, nil
	case img.URI != "":
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(img.URI)))
		if err != nil {
			return nil, fmt.Errorf("mesh: read image: %w", err)
		}
		return data, nil
	}
	return nil, ErrNoTexture
}

func componentSize(c gltf.ComponentType) int {
	switch c {
	case gltf.ComponentByte, gltf.ComponentUbyte:
		return 1
	case gltf.ComponentShort, gltf.ComponentUshort:
		return 2
	default:
		return 4
	}
}

func componentCount(t gltf.AccessorType) int {
	switch t {
	case gltf.AccessorVec2:
		return 2
	case gltf.AccessorVec3:
		return 3
	case gltf.AccessorVec4, gltf.AccessorMat2:
		return 4
	case gltf.AccessorMat3:
		return 9
	case gltf.AccessorMat4:
		return 16
	default:
		return 1
	}
}
