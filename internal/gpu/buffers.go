package gpu

import (
	"fmt"

	"github.com/devloglogan/basic-3d-game/internal/mesh"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Vertex attribute locations shared with the shaders.
const (
	AttribPosition uint32 = 0
	AttribTexCoord uint32 = 1
	AttribColor    uint32 = 2
)

// Mode is the primitive type used by MeshBuffers.Draw.
type Mode uint32

const (
	Points    Mode = gl.POINTS
	Triangles Mode = gl.TRIANGLES
)

// attribute is one tightly packed float attribute stream.
type attribute struct {
	loc  uint32
	size int32
	data []float32
}

// attributes lists the streams present in d, in location order.
func attributes(d *mesh.Data) []attribute {
	attrs := []attribute{{AttribPosition, 3, d.Positions}}
	if d.HasTexCoords() {
		attrs = append(attrs, attribute{AttribTexCoord, 2, d.TexCoords})
	}
	if d.HasColors() {
		attrs = append(attrs, attribute{AttribColor, 3, d.Colors})
	}
	return attrs
}

// MeshBuffers is a VAO with one VBO per attribute and a 32-bit EBO.
type MeshBuffers struct {
	VAO   uint32
	VBOs  []uint32
	EBO   uint32
	Count int32
}

// UploadMesh copies d to static GPU buffers.
func UploadMesh(d *mesh.Data) (*MeshBuffers, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("gpu: upload: %w", err)
	}
	if len(d.Indices) == 0 {
		return nil, fmt.Errorf("gpu: upload: mesh has no indices")
	}
	attrs := attributes(d)
	mb := &MeshBuffers{
		VBOs:  make([]uint32, len(attrs)),
		Count: int32(len(d.Indices)),
	}

	gl.GenVertexArrays(1, &mb.VAO)
	gl.BindVertexArray(mb.VAO)

	gl.GenBuffers(int32(len(mb.VBOs)), &mb.VBOs[0])
	for i, a := range attrs {
		gl.BindBuffer(gl.ARRAY_BUFFER, mb.VBOs[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(a.data)*4, gl.Ptr(a.data), gl.STATIC_DRAW)
		gl.VertexAttribPointerWithOffset(a.loc, a.size, gl.FLOAT, false, a.size*4, 0)
		gl.EnableVertexAttribArray(a.loc)
	}

	gl.GenBuffers(1, &mb.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mb.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, gl.Ptr(d.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return mb, nil
}

// Draw issues one indexed draw call over the whole mesh.
func (mb *MeshBuffers) Draw(mode Mode) {
	if mode == Points {
		gl.Enable(gl.PROGRAM_POINT_SIZE)
	}
	gl.BindVertexArray(mb.VAO)
	gl.DrawElementsWithOffset(uint32(mode), mb.Count, gl.UNSIGNED_INT, 0)
}

// Release deletes the GPU buffers.
func (mb *MeshBuffers) Release() {
	if len(mb.VBOs) > 0 {
		gl.DeleteBuffers(int32(len(mb.VBOs)), &mb.VBOs[0])
	}
	gl.DeleteBuffers(1, &mb.EBO)
	gl.DeleteVertexArrays(1, &mb.VAO)
	*mb = MeshBuffers{}
}
