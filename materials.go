package gymscene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"gymscene/glshader"
)

// Material holds the Phong parameters for one surface class. Immutable
// after definition.
type Material struct {
	Tag             string
	Ambient         mgl32.Vec3
	AmbientStrength float32
	Diffuse         mgl32.Vec3
	Specular        mgl32.Vec3
	Shininess       float32
}

// MaterialTable maps tags to materials. Lookup is map-backed; the slice
// preserves definition order.
type MaterialTable struct {
	list  []Material
	index map[string]int
}

func NewMaterialTable() *MaterialTable {
	return &MaterialTable{index: make(map[string]int)}
}

// Define registers a material. Duplicate tags are an error so a lookup can
// never silently alias two definitions.
func (t *MaterialTable) Define(m Material) error {
	if _, exists := t.index[m.Tag]; exists {
		return fmt.Errorf("material %q: %w", m.Tag, ErrDuplicateTag)
	}
	t.index[m.Tag] = len(t.list)
	t.list = append(t.list, m)
	return nil
}

// DefineAll populates the table with the scene's four surface classes.
func (t *MaterialTable) DefineAll() error {
	for _, m := range []Material{
		{
			Tag:             "stoneMAT",
			Ambient:         mgl32.Vec3{0.4, 0.4, 0.4},
			AmbientStrength: 1.0,
			Diffuse:         mgl32.Vec3{0.8, 0.8, 0.8},
			Specular:        mgl32.Vec3{0.4, 0.4, 0.4},
			Shininess:       5.0,
		},
		{
			Tag:             "metalMAT",
			Ambient:         mgl32.Vec3{0.1, 0.1, 0.1},
			AmbientStrength: 1.0,
			Diffuse:         mgl32.Vec3{0.4, 0.4, 0.4},
			Specular:        mgl32.Vec3{0.8, 0.8, 0.8},
			Shininess:       15.0,
		},
		{
			Tag:             "woodMAT",
			Ambient:         mgl32.Vec3{0.3, 0.25, 0.1},
			AmbientStrength: 0.8,
			Diffuse:         mgl32.Vec3{0.6, 0.5, 0.2},
			Specular:        mgl32.Vec3{0.1, 0.2, 0.2},
			Shininess:       5.0,
		},
		{
			Tag:             "rubberMAT",
			Ambient:         mgl32.Vec3{0.05, 0.05, 0.05},
			AmbientStrength: 0.6,
			Diffuse:         mgl32.Vec3{0.1, 0.1, 0.1},
			Specular:        mgl32.Vec3{0.05, 0.05, 0.05},
			Shininess:       1.0,
		},
	} {
		if err := t.Define(m); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the material registered under tag.
func (t *MaterialTable) Lookup(tag string) (Material, bool) {
	i, ok := t.index[tag]
	if !ok {
		return Material{}, false
	}
	return t.list[i], true
}

// Len returns the number of defined materials.
func (t *MaterialTable) Len() int { return len(t.list) }

// Apply writes the material's shader-visible parameters. Ambient terms come
// from the lights, so only diffuse, specular and shininess cross the
// uniform boundary.
func (m Material) Apply(u glshader.Uniforms) {
	u.SetVec3("material.diffuseColor", m.Diffuse)
	u.SetVec3("material.specularColor", m.Specular)
	u.SetFloat("material.shininess", m.Shininess)
}
