package glmesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

func TestPrimitiveCounts(t *testing.T) {
	for _, tc := range []struct {
		mesh      *Mesh
		wantVerts int
		wantIdx   int
	}{
		{NewPlane(), 4, 6},
		{NewBox(), 24, 36},
		// 8-segment cylinder: 2*(8+1) side + 2*(1 center + 9 ring) cap verts;
		// 8 side quads + 2*8 cap triangles.
		{NewCylinder(8), 38, 96},
		// 4x8 sphere: 5*9 grid verts; poles contribute one triangle per
		// sector, inner stacks two.
		{NewSphere(4, 8), 45, 144},
	} {
		if got := tc.mesh.VertexCount(); got != tc.wantVerts {
			t.Errorf("%s: VertexCount = %d, want %d", tc.mesh.Name(), got, tc.wantVerts)
		}
		if got := tc.mesh.IndexCount(); got != tc.wantIdx {
			t.Errorf("%s: IndexCount = %d, want %d", tc.mesh.Name(), got, tc.wantIdx)
		}
		if tc.mesh.IndexCount()%3 != 0 {
			t.Errorf("%s: index count %d is not a whole number of triangles", tc.mesh.Name(), tc.mesh.IndexCount())
		}
	}
}

func TestIndicesInRange(t *testing.T) {
	for _, m := range []*Mesh{NewPlane(), NewBox(), NewCylinder(0), NewSphere(0, 0)} {
		n := uint32(m.VertexCount())
		for _, idx := range m.indices {
			if idx >= n {
				t.Fatalf("%s: index %d out of range (%d vertices)", m.Name(), idx, n)
			}
		}
	}
}

func TestNormalsAreUnit(t *testing.T) {
	const tol = 1e-5
	for _, m := range []*Mesh{NewPlane(), NewBox(), NewCylinder(16), NewSphere(8, 16)} {
		for i := 0; i < m.VertexCount(); i++ {
			_, n, _ := m.Vertex(i)
			if d := math32.Abs(ms3.Norm(n) - 1); d > tol {
				t.Fatalf("%s: vertex %d normal %v is not unit length", m.Name(), i, n)
			}
		}
	}
}

func TestBounds(t *testing.T) {
	approx := func(a, b ms3.Vec) bool {
		d := ms3.Sub(a, b)
		return math32.Abs(d.X) < 1e-3 && math32.Abs(d.Y) < 1e-3 && math32.Abs(d.Z) < 1e-3
	}
	for _, tc := range []struct {
		mesh     *Mesh
		min, max ms3.Vec
	}{
		{NewPlane(), ms3.Vec{X: -1, Z: -1}, ms3.Vec{X: 1, Z: 1}},
		{NewBox(), ms3.Vec{X: -0.5, Y: -0.5, Z: -0.5}, ms3.Vec{X: 0.5, Y: 0.5, Z: 0.5}},
		{NewCylinder(64), ms3.Vec{X: -1, Y: 0, Z: -1}, ms3.Vec{X: 1, Y: 1, Z: 1}},
		{NewSphere(32, 64), ms3.Vec{X: -1, Y: -1, Z: -1}, ms3.Vec{X: 1, Y: 1, Z: 1}},
	} {
		bb := tc.mesh.Bounds()
		if !approx(bb.Min, tc.min) || !approx(bb.Max, tc.max) {
			t.Errorf("%s: Bounds = %v..%v, want %v..%v", tc.mesh.Name(), bb.Min, bb.Max, tc.min, tc.max)
		}
	}
}

func TestSphereUVRange(t *testing.T) {
	m := NewSphere(8, 16)
	for i := 0; i < m.VertexCount(); i++ {
		_, _, uv := m.Vertex(i)
		if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
			t.Fatalf("sphere vertex %d UV %v outside [0,1]", i, uv)
		}
	}
}
