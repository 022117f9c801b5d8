package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex + fragment shader program with a cache of
// uniform locations.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// CompileProgram compiles both stages, links them and deletes the stage
// objects. Errors carry the stage name and the driver's info log.
func CompileProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("gpu: vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("gpu: fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		log := infoLog(n, func(buf *uint8) { gl.GetProgramInfoLog(id, n, nil, buf) })
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("gpu: link: %s", log)
	}
	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)
	return &Program{ID: id, uniforms: make(map[string]int32)}, nil
}

func compileShader(src string, kind uint32) (uint32, error) {
	id := gl.CreateShader(kind)
	csrc, free := gl.Strs(terminate(src))
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &n)
		log := infoLog(n, func(buf *uint8) { gl.GetShaderInfoLog(id, n, nil, buf) })
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile: %s", log)
	}
	return id, nil
}

// terminate appends the NUL byte gl.Strs and gl.Str require.
func terminate(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// infoLog allocates an n byte buffer, lets fill write the driver log into it
// and returns it as a trimmed Go string.
func infoLog(n int32, fill func(*uint8)) string {
	if n <= 0 {
		return "(no info log)"
	}
	buf := make([]uint8, n+1)
	fill(&buf[0])
	return cleanLog(buf)
}

func cleanLog(buf []uint8) string {
	if i := strings.IndexByte(string(buf), 0); i >= 0 {
		buf = buf[:i]
	}
	return strings.TrimSpace(string(buf))
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Location returns the uniform location of name, -1 when the driver
// optimized it away.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(terminate(name)))
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads m to the mat4 uniform name. p must be in use.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.Location(name), 1, false, &m[0])
}

// SetInt uploads v to the int (or sampler) uniform name. p must be in use.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.Location(name), v)
}

// Release deletes the program.
func (p *Program) Release() {
	gl.DeleteProgram(p.ID)
	p.ID = 0
}
