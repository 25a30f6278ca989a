package gymscene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"gymscene/glshader"
)

// Shape selects one of the four canned primitive meshes.
type Shape uint8

const (
	ShapePlane Shape = iota
	ShapeBox
	ShapeCylinder
	ShapeSphere
	numShapes
)

func (s Shape) String() string {
	switch s {
	case ShapePlane:
		return "plane"
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeSphere:
		return "sphere"
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Object is one row of the scene table: a primitive placed by a transform
// with its surface parameters. An empty TextureTag draws untextured with
// the flat color; an empty MaterialTag skips the material upload. A zero
// UVScale inherits the previously set tiling, mirroring how the original
// scene leaves UV state between consecutive draws.
type Object struct {
	Name        string
	Shape       Shape
	Transform   Transform
	Color       mgl32.Vec4
	MaterialTag string
	TextureTag  string
	UVScale     mgl32.Vec2
}

// Drawer issues one primitive draw with the currently set uniforms.
// Satisfied by *glmesh.Mesh.
type Drawer interface {
	Draw()
}

// MeshSet holds the four primitives the scene draws.
type MeshSet struct {
	Plane    Drawer
	Box      Drawer
	Cylinder Drawer
	Sphere   Drawer
}

func (ms *MeshSet) mesh(s Shape) (Drawer, error) {
	switch s {
	case ShapePlane:
		return ms.Plane, nil
	case ShapeBox:
		return ms.Box, nil
	case ShapeCylinder:
		return ms.Cylinder, nil
	case ShapeSphere:
		return ms.Sphere, nil
	}
	return nil, fmt.Errorf("no mesh for %v", s)
}

// Scene ties the registry, material table, lights and object list to a
// uniform backend and a mesh set. Single-threaded; every method runs on the
// rendering thread.
type Scene struct {
	Uniforms glshader.Uniforms
	Registry *Registry
	Mats     *MaterialTable
	Meshes   MeshSet
	Lights   []PointLight

	objects []Object
	warned  map[string]bool
}

// NewScene assembles a scene over the given backends with the default gym
// object table and lights.
func NewScene(u glshader.Uniforms, reg *Registry, meshes MeshSet) *Scene {
	return &Scene{
		Uniforms: u,
		Registry: reg,
		Mats:     NewMaterialTable(),
		Meshes:   meshes,
		Lights:   DefaultLights(),
		objects:  GymObjects(),
		warned:   make(map[string]bool),
	}
}

// Objects exposes the scene table in draw order.
func (s *Scene) Objects() []Object { return s.objects }

// Prepare loads and binds the scene textures from texDir, defines the
// materials and writes the lights. Texture failures degrade visuals but do
// not abort preparation; any other failure does.
func (s *Scene) Prepare(texDir string) error {
	if err := s.Registry.LoadAll(texDir); err != nil {
		Logger().Warn("some textures unavailable, affected surfaces keep prior GPU state", "err", err)
	}
	if err := s.Registry.BindAll(); err != nil {
		return err
	}
	if err := s.Mats.DefineAll(); err != nil {
		return err
	}
	return SetupLights(s.Uniforms, s.Lights)
}

// RenderFrame walks the object table in order and draws every object. A
// missing material or texture tag logs once and leaves the previous uniform
// state in place; nothing here is fatal.
func (s *Scene) RenderFrame() error {
	for i := range s.objects {
		if err := s.drawObject(&s.objects[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) drawObject(o *Object) error {
	mesh, err := s.Meshes.mesh(o.Shape)
	if err != nil {
		return fmt.Errorf("object %q: %w", o.Name, err)
	}
	u := s.Uniforms
	u.SetMat4(glshader.UniformModel, o.Transform.Mat4())
	// Flat color first; a resolvable texture tag overrides it below.
	u.SetBool(glshader.UniformUseTexture, false)
	u.SetVec4(glshader.UniformObjectColor, o.Color)

	if o.MaterialTag != "" {
		if m, ok := s.Mats.Lookup(o.MaterialTag); ok {
			m.Apply(u)
		} else {
			s.warnOnce("material", o.MaterialTag, o.Name)
		}
	}
	if o.UVScale != (mgl32.Vec2{}) {
		u.SetVec2(glshader.UniformUVScale, o.UVScale)
	}
	if o.TextureTag != "" {
		if slot, ok := s.Registry.Slot(o.TextureTag); ok {
			u.SetBool(glshader.UniformUseTexture, true)
			u.SetInt(glshader.UniformTexture, int32(slot))
		} else {
			s.warnOnce("texture", o.TextureTag, o.Name)
		}
	}
	mesh.Draw()
	return nil
}

func (s *Scene) warnOnce(kind, tag, object string) {
	key := kind + ":" + tag
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	Logger().Warn("unknown "+kind+" tag, keeping previous GPU state",
		"tag", tag, "object", object)
}
