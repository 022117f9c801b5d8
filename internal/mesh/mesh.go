package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMesh is returned when a document has no mesh 0 / primitive 0.
	ErrNoMesh = errors.New("mesh: document has no mesh primitive")
	// ErrNoPosition is returned when the primitive has no POSITION attribute.
	ErrNoPosition = errors.New("mesh: primitive has no POSITION attribute")
	// ErrUnsupportedIndexType is returned for index accessors that are not
	// unsigned byte, short or int.
	ErrUnsupportedIndexType = errors.New("mesh: unsupported index component type")
	// ErrNoTexture is returned when the primitive's material has no base color texture.
	ErrNoTexture = errors.New("mesh: primitive has no base color texture")
	// ErrOutOfRange is returned when an accessor reads past the end of its
	// buffer or an index addresses a missing vertex.
	ErrOutOfRange = errors.New("mesh: out of range")
)

// Data is a single static mesh ready for upload. Positions hold 3 floats per
// vertex, TexCoords and Colors (when present) 2 and 3 floats per vertex.
// Indices are always 32-bit regardless of how they were stored on disk.
type Data struct {
	Positions []float32
	TexCoords []float32
	Colors    []float32
	Indices   []uint32

	// BaseColor is the encoded base color image of the primitive's material
	// (PNG, JPEG, ...), or nil when the material has none.
	BaseColor []byte
}

// VertexCount returns the number of vertices described by Positions.
func (d *Data) VertexCount() int {
	return len(d.Positions) / 3
}

// HasTexCoords reports whether the mesh carries one UV pair per vertex.
func (d *Data) HasTexCoords() bool {
	return len(d.TexCoords) > 0
}

// HasColors reports whether the mesh carries one RGB color per vertex.
func (d *Data) HasColors() bool {
	return len(d.Colors) > 0
}

// Validate checks that the attribute arrays agree with each other and that
// every index addresses an existing vertex.
func (d *Data) Validate() error {
	if len(d.Positions) == 0 {
		return errors.New("mesh: no positions")
	}
	if len(d.Positions)%3 != 0 {
		return fmt.Errorf("mesh: positions length %d is not a multiple of 3", len(d.Positions))
	}
	n := d.VertexCount()
	if d.HasTexCoords() && len(d.TexCoords) != n*2 {
		return fmt.Errorf("mesh: %d tex coords for %d vertices", len(d.TexCoords)/2, n)
	}
	if d.HasColors() && len(d.Colors) != n*3 {
		return fmt.Errorf("mesh: %d colors for %d vertices", len(d.Colors)/3, n)
	}
	for i, idx := range d.Indices {
		if int(idx) >= n {
			return fmt.Errorf("mesh: index %d at %d for %d vertices: %w", idx, i, n, ErrOutOfRange)
		}
	}
	return nil
}
