// Package glshader wraps the scene's shader program behind a string-keyed
// uniform interface. Uniform names are the entire contract between the scene
// script and the rendering backend: the scene never touches GL state
// directly, it only writes named values.
package glshader

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names understood by the embedded shader program.
const (
	UniformModel       = "model"
	UniformView        = "view"
	UniformProjection  = "projection"
	UniformViewPos     = "viewPosition"
	UniformObjectColor = "objectColor"
	UniformTexture     = "objectTexture"
	UniformUseTexture  = "bUseTexture"
	UniformUseLighting = "bUseLighting"
	UniformUVScale     = "UVscale"
)

// Uniforms writes named values into a shader configuration. Implemented by
// [Program] for on-GPU rendering and by [Recorder] for tests.
type Uniforms interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec4(name string, v mgl32.Vec4)
	SetVec3(name string, v mgl32.Vec3)
	SetVec2(name string, v mgl32.Vec2)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
	SetBool(name string, b bool)
}

// Recorder is a [Uniforms] implementation that stores the last value written
// per uniform name along with the full write sequence. It lets scene logic be
// exercised without a GL context.
type Recorder struct {
	Values map[string]any
	Names  []string // every write, in order
}

func NewRecorder() *Recorder {
	return &Recorder{Values: make(map[string]any)}
}

func (r *Recorder) record(name string, v any) {
	r.Values[name] = v
	r.Names = append(r.Names, name)
}

func (r *Recorder) SetMat4(name string, m mgl32.Mat4) { r.record(name, m) }
func (r *Recorder) SetVec4(name string, v mgl32.Vec4) { r.record(name, v) }
func (r *Recorder) SetVec3(name string, v mgl32.Vec3) { r.record(name, v) }
func (r *Recorder) SetVec2(name string, v mgl32.Vec2) { r.record(name, v) }
func (r *Recorder) SetFloat(name string, f float32)   { r.record(name, f) }
func (r *Recorder) SetInt(name string, i int32)       { r.record(name, i) }
func (r *Recorder) SetBool(name string, b bool)       { r.record(name, b) }

// Mat4 returns the last matrix written to name, or false if none was.
func (r *Recorder) Mat4(name string) (mgl32.Mat4, bool) {
	m, ok := r.Values[name].(mgl32.Mat4)
	return m, ok
}

// Vec4 returns the last vec4 written to name, or false if none was.
func (r *Recorder) Vec4(name string) (mgl32.Vec4, bool) {
	v, ok := r.Values[name].(mgl32.Vec4)
	return v, ok
}

// Vec3 returns the last vec3 written to name, or false if none was.
func (r *Recorder) Vec3(name string) (mgl32.Vec3, bool) {
	v, ok := r.Values[name].(mgl32.Vec3)
	return v, ok
}

// Bool returns the last boolean written to name, or false if none was.
func (r *Recorder) Bool(name string) (bool, bool) {
	b, ok := r.Values[name].(bool)
	return b, ok
}
