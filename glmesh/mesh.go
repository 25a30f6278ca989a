// Package glmesh provides the four canned primitive meshes drawn by the
// scene: plane, box, cylinder and sphere. Mesh construction is pure Go and
// testable; uploading and drawing require a GL context and live behind the
// cgo build tag.
package glmesh

import (
	"github.com/soypat/geometry/ms3"
)

// Vertex layout: interleaved position, normal, UV.
const (
	floatsPerVertex = 3 + 3 + 2
	// Stride is the byte size of one interleaved vertex.
	Stride = floatsPerVertex * 4
)

// Mesh holds interleaved vertex data and triangle indices for one primitive,
// plus the GL object names once uploaded.
type Mesh struct {
	name     string
	vertices []float32 // position(3) normal(3) uv(2)
	indices  []uint32

	vao, vbo, ebo uint32
	uploaded      bool
}

// Name identifies the primitive ("plane", "box", "cylinder", "sphere").
func (m *Mesh) Name() string { return m.name }

// VertexCount returns the number of interleaved vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) / floatsPerVertex }

// IndexCount returns the number of triangle indices.
func (m *Mesh) IndexCount() int { return len(m.indices) }

// Vertex returns position, normal and UV of vertex i.
func (m *Mesh) Vertex(i int) (pos, normal ms3.Vec, uv [2]float32) {
	v := m.vertices[i*floatsPerVertex : (i+1)*floatsPerVertex]
	pos = ms3.Vec{X: v[0], Y: v[1], Z: v[2]}
	normal = ms3.Vec{X: v[3], Y: v[4], Z: v[5]}
	uv = [2]float32{v[6], v[7]}
	return pos, normal, uv
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
func (m *Mesh) Bounds() ms3.Box {
	if m.VertexCount() == 0 {
		return ms3.Box{}
	}
	p0, _, _ := m.Vertex(0)
	bb := ms3.Box{Min: p0, Max: p0}
	for i := 1; i < m.VertexCount(); i++ {
		p, _, _ := m.Vertex(i)
		bb.Min = ms3.MinElem(bb.Min, p)
		bb.Max = ms3.MaxElem(bb.Max, p)
	}
	return bb
}

func (m *Mesh) addVertex(pos, normal ms3.Vec, u, v float32) uint32 {
	idx := uint32(m.VertexCount())
	m.vertices = append(m.vertices,
		pos.X, pos.Y, pos.Z,
		normal.X, normal.Y, normal.Z,
		u, v,
	)
	return idx
}

func (m *Mesh) addTriangle(a, b, c uint32) {
	m.indices = append(m.indices, a, b, c)
}

func (m *Mesh) addQuad(a, b, c, d uint32) {
	m.addTriangle(a, b, c)
	m.addTriangle(c, d, a)
}
