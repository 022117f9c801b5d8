package scene

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/devloglogan/basic-3d-game/internal/camera"
	"github.com/devloglogan/basic-3d-game/internal/config"
	"github.com/devloglogan/basic-3d-game/internal/gpu"
	"github.com/devloglogan/basic-3d-game/internal/graphics"
	"github.com/devloglogan/basic-3d-game/internal/mesh"
	"github.com/devloglogan/basic-3d-game/internal/shaders"
)

// Scene is one demo. New builds it without touching the GPU; Init uploads
// geometry and compiles shaders once the GL context exists; Update and Draw
// run every frame.
type Scene interface {
	Name() string
	Init() error
	Update(f graphics.Frame)
	Draw(f graphics.Frame)
	// Reload recompiles program from shader source after an on-disk change.
	Reload(program string) error
	// Stats describes the uploaded geometry for the debug overlay.
	Stats() string
	Close()
}

// New returns the scene named by cfg.Scene with its mesh loaded from disk
// (except the cube, which is hard-coded).
func New(cfg config.Config, log *slog.Logger) (Scene, error) {
	b := base{
		cam: camera.Camera{
			FOV:      cfg.Camera.FOV,
			Near:     cfg.Camera.Near,
			Far:      cfg.Camera.Far,
			Distance: cfg.Camera.Distance,
		},
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		clear:   cfg.ClearColor,
		shaders: shaders.FS(cfg.ShaderDir),
		log:     log,
	}
	switch cfg.Scene {
	case config.SceneCube:
		return newCube(b), nil
	case config.ScenePoints:
		d, err := loadMesh(cfg.Model, log)
		if err != nil {
			return nil, err
		}
		return newPoints(b, d), nil
	case config.ScenePaddle:
		d, err := loadMesh(cfg.Model, log)
		if err != nil {
			return nil, err
		}
		if !d.HasTexCoords() {
			return nil, fmt.Errorf("scene: %s has no TEXCOORD_0", cfg.Model)
		}
		if d.BaseColor == nil {
			log.Warn("model has no base color texture, using white", "model", cfg.Model)
		}
		return newPaddle(b, d, cfg.Paddle), nil
	}
	return nil, fmt.Errorf("scene: unknown scene %q", cfg.Scene)
}

func loadMesh(path string, log *slog.Logger) (*mesh.Data, error) {
	d, err := mesh.Load(path)
	if err != nil {
		return nil, err
	}
	log.Info("mesh loaded", "path", path,
		"vertices", d.VertexCount(), "indices", len(d.Indices), "texture", d.BaseColor != nil)
	return d, nil
}

// base holds what every demo shares: one program, one mesh on the GPU and
// a fixed camera whose matrices are uploaded once.
type base struct {
	cam     camera.Camera
	width   int
	height  int
	clear   [4]float32
	shaders fs.FS
	log     *slog.Logger

	program string
	prog    *gpu.Program
	data    *mesh.Data
	buffers *gpu.MeshBuffers
}

// setup compiles the named program and uploads b.data.
func (b *base) setup(program string) error {
	b.program = program
	if err := b.Reload(program); err != nil {
		return err
	}
	buffers, err := gpu.UploadMesh(b.data)
	if err != nil {
		return err
	}
	b.buffers = buffers
	b.log.Debug("mesh uploaded", "vao", buffers.VAO, "ebo", buffers.EBO, "count", buffers.Count)
	return nil
}

// Reload compiles program and, on success, replaces the current one and sets
// the camera uniforms on it. A failed compile keeps the previous program.
func (b *base) Reload(program string) error {
	if program != b.program {
		return nil
	}
	src, err := shaders.Load(b.shaders, program)
	if err != nil {
		return err
	}
	p, err := gpu.CompileProgram(src.Vertex, src.Fragment)
	if err != nil {
		return fmt.Errorf("scene: program %s: %w", program, err)
	}
	if b.prog != nil {
		b.prog.Release()
	}
	b.prog = p
	p.Use()
	p.SetMat4("u_view", b.cam.View())
	p.SetMat4("u_projection", b.cam.Projection(b.width, b.height))
	b.log.Debug("program ready", "name", program, "id", p.ID)
	return nil
}

func (b *base) Stats() string {
	if b.buffers == nil {
		return ""
	}
	return fmt.Sprintf("%d vertices, %d indices", b.data.VertexCount(), b.buffers.Count)
}

// begin clears the frame and makes the program current.
func (b *base) begin(f graphics.Frame) {
	gpu.BeginFrame(b.clear, f.Width, f.Height)
	b.prog.Use()
}

func (b *base) Close() {
	if b.buffers != nil {
		b.buffers.Release()
		b.buffers = nil
	}
	if b.prog != nil {
		b.prog.Release()
		b.prog = nil
	}
}
