//go:build tinygo || !cgo

package glshader

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var errNoCGO = errors.New("shader program requires CGo and is not supported on TinyGo")

// Program is unavailable without CGo. See the cgo build for documentation.
type Program struct{}

func New() (*Program, error) { return nil, errNoCGO }

func (p *Program) Bind()   {}
func (p *Program) Delete() {}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {}
func (p *Program) SetVec4(name string, v mgl32.Vec4) {}
func (p *Program) SetVec3(name string, v mgl32.Vec3) {}
func (p *Program) SetVec2(name string, v mgl32.Vec2) {}
func (p *Program) SetFloat(name string, f float32)   {}
func (p *Program) SetInt(name string, i int32)       {}
func (p *Program) SetBool(name string, b bool)       {}
