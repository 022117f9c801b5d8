// Package shaders holds the GLSL programs of the demos and loads them either
// from the copies embedded in the binary or from a directory on disk.
package shaders

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// Program names; each maps to <name>.vert and <name>.frag.
const (
	Cube     = "cube"
	Points   = "points"
	Textured = "default"
)

//go:embed glsl/*.vert glsl/*.frag
var embedded embed.FS

// Source is the text of a vertex/fragment shader pair.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
}

// FS returns the file system shaders are read from: dir on disk when set,
// the embedded copies otherwise.
func FS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	sub, err := fs.Sub(embedded, "glsl")
	if err != nil {
		panic(err) // embedded layout is fixed at build time
	}
	return sub
}

// Load reads name.vert and name.frag from fsys.
func Load(fsys fs.FS, name string) (Source, error) {
	vert, err := fs.ReadFile(fsys, name+".vert")
	if err != nil {
		return Source{}, fmt.Errorf("shaders: %w", err)
	}
	frag, err := fs.ReadFile(fsys, name+".frag")
	if err != nil {
		return Source{}, fmt.Errorf("shaders: %w", err)
	}
	return Source{Name: name, Vertex: string(vert), Fragment: string(frag)}, nil
}
