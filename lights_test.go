package gymscene

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"gymscene/glshader"
)

func TestSetupLights(t *testing.T) {
	rec := glshader.NewRecorder()
	if err := SetupLights(rec, DefaultLights()); err != nil {
		t.Fatalf("SetupLights: %v", err)
	}
	if b, _ := rec.Bool(glshader.UniformUseLighting); !b {
		t.Error("bUseLighting not enabled")
	}
	if v, _ := rec.Vec3("pointLights[0].position"); v != (mgl32.Vec3{16, 25, 1.5}) {
		t.Errorf("light 0 position = %v", v)
	}
	if v, _ := rec.Vec3("pointLights[1].position"); v != (mgl32.Vec3{-14, 25, -10}) {
		t.Errorf("light 1 position = %v", v)
	}
	for i := 0; i < 2; i++ {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		if v, _ := rec.Vec3(prefix + "diffuse"); v != (mgl32.Vec3{0.7, 0.7, 0.8}) {
			t.Errorf("light %d diffuse = %v", i, v)
		}
		if b, _ := rec.Bool(prefix + "bActive"); !b {
			t.Errorf("light %d not active", i)
		}
	}
	// Unused slots must be explicitly switched off.
	for i := 2; i < glshader.MaxPointLights; i++ {
		b, ok := rec.Bool(fmt.Sprintf("pointLights[%d].bActive", i))
		if !ok || b {
			t.Errorf("slot %d not deactivated", i)
		}
	}
}

func TestSetupLightsTooMany(t *testing.T) {
	rec := glshader.NewRecorder()
	lights := make([]PointLight, glshader.MaxPointLights+1)
	if err := SetupLights(rec, lights); err == nil {
		t.Fatal("expected error for too many lights")
	}
	if len(rec.Names) != 0 {
		t.Fatalf("wrote %d uniforms despite error", len(rec.Names))
	}
}
