package glshader

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRecorderKeepsLastValue(t *testing.T) {
	r := NewRecorder()
	r.SetVec4(UniformObjectColor, mgl32.Vec4{1, 0, 0, 1})
	r.SetVec4(UniformObjectColor, mgl32.Vec4{0, 1, 0, 1})
	got, ok := r.Vec4(UniformObjectColor)
	if !ok {
		t.Fatal("objectColor was never recorded")
	}
	if got != (mgl32.Vec4{0, 1, 0, 1}) {
		t.Errorf("objectColor = %v, want last written value", got)
	}
	if len(r.Names) != 2 {
		t.Errorf("recorded %d writes, want 2", len(r.Names))
	}
}

func TestRecorderTypedAccessors(t *testing.T) {
	r := NewRecorder()
	if _, ok := r.Mat4(UniformModel); ok {
		t.Error("Mat4 reported a value before any write")
	}
	r.SetBool(UniformUseTexture, true)
	if b, ok := r.Bool(UniformUseTexture); !ok || !b {
		t.Errorf("Bool(%q) = %v, %v; want true, true", UniformUseTexture, b, ok)
	}
	// A write of the wrong type must not satisfy a typed accessor.
	if _, ok := r.Vec3(UniformUseTexture); ok {
		t.Error("Vec3 matched a bool-typed uniform")
	}
}
