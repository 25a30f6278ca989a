package gymscene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"gymscene/glshader"
)

// PointLight is one of up to four scene lights, written to the shader once
// during setup and never moved afterwards.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
	Active   bool
}

// DefaultLights returns the gym's two overhead point lights.
func DefaultLights() []PointLight {
	return []PointLight{
		{
			Position: mgl32.Vec3{16.0, 25.0, 1.5},
			Ambient:  mgl32.Vec3{0.35, 0.35, 0.35},
			Diffuse:  mgl32.Vec3{0.7, 0.7, 0.8},
			Specular: mgl32.Vec3{0.5, 0.5, 0.6},
			Active:   true,
		},
		{
			Position: mgl32.Vec3{-14.0, 25.0, -10.0},
			Ambient:  mgl32.Vec3{0.35, 0.35, 0.35},
			Diffuse:  mgl32.Vec3{0.7, 0.7, 0.8},
			Specular: mgl32.Vec3{0.5, 0.5, 0.6},
			Active:   true,
		},
	}
}

// SetupLights enables lighting and writes up to [glshader.MaxPointLights]
// lights into the shader. Slots past len(lights) are explicitly deactivated
// so stale driver state can never light the scene.
func SetupLights(u glshader.Uniforms, lights []PointLight) error {
	if len(lights) > glshader.MaxPointLights {
		return fmt.Errorf("%d point lights configured, shader supports %d", len(lights), glshader.MaxPointLights)
	}
	u.SetBool(glshader.UniformUseLighting, true)
	for i := 0; i < glshader.MaxPointLights; i++ {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		if i >= len(lights) {
			u.SetBool(prefix+"bActive", false)
			continue
		}
		l := lights[i]
		u.SetVec3(prefix+"position", l.Position)
		u.SetVec3(prefix+"ambient", l.Ambient)
		u.SetVec3(prefix+"diffuse", l.Diffuse)
		u.SetVec3(prefix+"specular", l.Specular)
		u.SetBool(prefix+"bActive", l.Active)
	}
	return nil
}
