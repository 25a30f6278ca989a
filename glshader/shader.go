//go:build !tinygo && cgo

package glshader

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/soypat/glgl/v4.6-core/glgl"
)

// Program is the GL-backed [Uniforms] implementation. It compiles the
// embedded vertex/fragment pair once and caches uniform locations by name.
// Unknown names are cached as -1 and silently ignored by the GL driver,
// matching the best-effort contract of the scene script.
//
// All methods must run on the thread holding the GL context.
type Program struct {
	prog glgl.Program
	locs map[string]int32
}

// New compiles and links the scene shader program. Requires a current GL
// context.
func New() (*Program, error) {
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   vertexSource + "\x00",
		Fragment: fragmentSource + "\x00",
	})
	if err != nil {
		return nil, fmt.Errorf("compiling scene shader: %w", err)
	}
	return &Program{prog: prog, locs: make(map[string]int32)}, nil
}

// Bind makes the program current. Must be called before uniform writes.
func (p *Program) Bind() { p.prog.Bind() }

// Delete releases the GL program object.
func (p *Program) Delete() { p.prog.Delete() }

func (p *Program) loc(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc, err := p.prog.UniformLocation(name + "\x00")
	if err != nil {
		loc = -1
	}
	p.locs[name] = loc
	return loc
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.loc(name), 1, false, &m[0])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.loc(name), v.X(), v.Y(), v.Z(), v.W())
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.loc(name), v.X(), v.Y(), v.Z())
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.loc(name), v.X(), v.Y())
}

func (p *Program) SetFloat(name string, f float32) {
	gl.Uniform1f(p.loc(name), f)
}

func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.loc(name), i)
}

func (p *Program) SetBool(name string, b bool) {
	var i int32
	if b {
		i = 1
	}
	gl.Uniform1i(p.loc(name), i)
}
