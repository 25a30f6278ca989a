package glmesh

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// Default tessellation of the curved primitives.
const (
	defaultSegments = 36
	defaultStacks   = 18
)

// NewPlane returns a unit ground plane spanning [-1,1] on X and Z at Y=0,
// facing +Y. UVs cover the full [0,1] range so UVscale controls tiling.
func NewPlane() *Mesh {
	m := &Mesh{name: "plane"}
	up := ms3.Vec{Y: 1}
	a := m.addVertex(ms3.Vec{X: -1, Z: 1}, up, 0, 0)
	b := m.addVertex(ms3.Vec{X: 1, Z: 1}, up, 1, 0)
	c := m.addVertex(ms3.Vec{X: 1, Z: -1}, up, 1, 1)
	d := m.addVertex(ms3.Vec{X: -1, Z: -1}, up, 0, 1)
	m.addQuad(a, b, c, d)
	return m
}

// NewBox returns a unit cube centered on the origin with per-face normals,
// so scaling it by the object transform yields crisp flat shading.
func NewBox() *Mesh {
	m := &Mesh{name: "box"}
	const h = 0.5
	faces := []struct {
		normal  ms3.Vec
		corners [4]ms3.Vec
	}{
		{ms3.Vec{Z: 1}, [4]ms3.Vec{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}}},
		{ms3.Vec{Z: -1}, [4]ms3.Vec{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}}},
		{ms3.Vec{X: 1}, [4]ms3.Vec{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}}},
		{ms3.Vec{X: -1}, [4]ms3.Vec{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}}},
		{ms3.Vec{Y: 1}, [4]ms3.Vec{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}}},
		{ms3.Vec{Y: -1}, [4]ms3.Vec{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, f := range faces {
		var idx [4]uint32
		for i, corner := range f.corners {
			idx[i] = m.addVertex(corner, f.normal, uvs[i][0], uvs[i][1])
		}
		m.addQuad(idx[0], idx[1], idx[2], idx[3])
	}
	return m
}

// NewCylinder returns a cylinder of radius 1 with its base at Y=0 and top at
// Y=1, with capped ends. segments <= 2 falls back to the default.
func NewCylinder(segments int) *Mesh {
	if segments <= 2 {
		segments = defaultSegments
	}
	m := &Mesh{name: "cylinder"}

	// Side wall: duplicate ring vertices so side normals stay radial.
	for i := 0; i <= segments; i++ {
		u := float32(i) / float32(segments)
		ang := 2 * math32.Pi * u
		sin, cos := math32.Sincos(ang)
		n := ms3.Vec{X: cos, Z: sin}
		m.addVertex(ms3.Vec{X: cos, Y: 0, Z: sin}, n, u, 0)
		m.addVertex(ms3.Vec{X: cos, Y: 1, Z: sin}, n, u, 1)
	}
	for i := 0; i < segments; i++ {
		b0 := uint32(2 * i)
		m.addQuad(b0, b0+2, b0+3, b0+1)
	}

	// Caps: center fan with axial normals.
	for _, end := range []struct {
		y      float32
		normal ms3.Vec
	}{
		{0, ms3.Vec{Y: -1}},
		{1, ms3.Vec{Y: 1}},
	} {
		center := m.addVertex(ms3.Vec{Y: end.y}, end.normal, 0.5, 0.5)
		var ring []uint32
		for i := 0; i <= segments; i++ {
			ang := 2 * math32.Pi * float32(i) / float32(segments)
			sin, cos := math32.Sincos(ang)
			ring = append(ring, m.addVertex(
				ms3.Vec{X: cos, Y: end.y, Z: sin},
				end.normal,
				0.5+cos/2, 0.5+sin/2,
			))
		}
		for i := 0; i < segments; i++ {
			if end.normal.Y > 0 {
				m.addTriangle(center, ring[i], ring[i+1])
			} else {
				m.addTriangle(center, ring[i+1], ring[i])
			}
		}
	}
	return m
}

// NewSphere returns a unit sphere centered on the origin built from
// latitude/longitude bands. stacks <= 1 or sectors <= 2 fall back to the
// defaults.
func NewSphere(stacks, sectors int) *Mesh {
	if stacks <= 1 {
		stacks = defaultStacks
	}
	if sectors <= 2 {
		sectors = defaultSegments
	}
	m := &Mesh{name: "sphere"}
	for y := 0; y <= stacks; y++ {
		v := float32(y) / float32(stacks)
		theta := math32.Pi * v
		sinT, cosT := math32.Sincos(theta)
		for x := 0; x <= sectors; x++ {
			u := float32(x) / float32(sectors)
			phi := 2 * math32.Pi * u
			sinP, cosP := math32.Sincos(phi)
			p := ms3.Vec{
				X: sinT * cosP,
				Y: cosT,
				Z: sinT * sinP,
			}
			// Unit sphere: the position doubles as the normal.
			m.addVertex(p, p, u, 1-v)
		}
	}
	ring := uint32(sectors + 1)
	for y := 0; y < stacks; y++ {
		for x := 0; x < sectors; x++ {
			a := uint32(y)*ring + uint32(x)
			b := a + ring
			if y != 0 {
				m.addTriangle(a, a+1, b)
			}
			if y != stacks-1 {
				m.addTriangle(a+1, b+1, b)
			}
		}
	}
	return m
}
