package prim

import (
	"testing"

	"github.com/gazed/tracer/geom"
)

func TestNewMeshBoundingBoxIsVertexMinMax(t *testing.T) {
	verts := []geom.Vec3{
		{X: -1, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 0},
		{X: 0, Y: -1, Z: 3},
	}
	faces := []Face{{0, 1, 2}}
	m, err := NewMesh(verts, faces, stubMaterial{})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	box := m.Box()
	want := geom.Box{Min: geom.Vec3{X: -1, Y: -1, Z: 0}, Max: geom.Vec3{X: 1, Y: 2, Z: 3}}
	if !box.Min.Aeq(want.Min) || !box.Max.Aeq(want.Max) {
		t.Fatalf("box = %v, want %v", box, want)
	}
}

func TestNewMeshRejectsEmptyInputs(t *testing.T) {
	if _, err := NewMesh(nil, []Face{{0, 1, 2}}, stubMaterial{}); err == nil {
		t.Fatalf("expected error for no vertices")
	}
	if _, err := NewMesh([]geom.Vec3{{}}, nil, stubMaterial{}); err == nil {
		t.Fatalf("expected error for no faces")
	}
}

func TestMeshIntersectHitsSingleTriangle(t *testing.T) {
	verts := []geom.Vec3{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	m, err := NewMesh(verts, []Face{{0, 1, 2}}, stubMaterial{})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}

	ray, _ := geom.NewRay(geom.Vec3{X: 0, Y: 0, Z: 5}, geom.Vec3{X: 0, Y: 0, Z: -1})
	var hit Hit
	if !m.Intersect(ray, 0.001, 1e9, &hit) {
		t.Fatalf("expected hit through the triangle interior")
	}
	if hit.T < 4.999 || hit.T > 5.001 {
		t.Fatalf("hit.T = %v, want 5", hit.T)
	}
}

func TestMeshBackFaceCulled(t *testing.T) {
	verts := []geom.Vec3{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	m, err := NewMesh(verts, []Face{{0, 1, 2}}, stubMaterial{})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}

	// Approach from the opposite side: back-face culling must reject it.
	ray, _ := geom.NewRay(geom.Vec3{X: 0, Y: 0, Z: -5}, geom.Vec3{X: 0, Y: 0, Z: 1})
	var hit Hit
	if m.Intersect(ray, 0.001, 1e9, &hit) {
		t.Fatalf("expected back-face cull to reject the hit")
	}
}

func TestMeshMissOutsideTriangle(t *testing.T) {
	verts := []geom.Vec3{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	m, err := NewMesh(verts, []Face{{0, 1, 2}}, stubMaterial{})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	ray, _ := geom.NewRay(geom.Vec3{X: 5, Y: 5, Z: 5}, geom.Vec3{X: 0, Y: 0, Z: -1})
	var hit Hit
	if m.Intersect(ray, 0.001, 1e9, &hit) {
		t.Fatalf("expected miss: ray is outside the triangle's footprint")
	}
}

// TestMeshBuildsInternalAcceleratorOverManyFaces grounds the
// accel.PurposeMesh wiring: a grid of disjoint triangles large enough to
// force real subdivision, checked both for a non-trivial tree depth and for
// correct closest-hit results through that tree.
func TestMeshBuildsInternalAcceleratorOverManyFaces(t *testing.T) {
	var verts []geom.Vec3
	var faces []Face
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			x, y := float32(col)*3, float32(row)*3
			base := len(verts)
			verts = append(verts,
				geom.Vec3{X: x - 1, Y: y - 1, Z: 0},
				geom.Vec3{X: x + 1, Y: y - 1, Z: 0},
				geom.Vec3{X: x, Y: y + 1, Z: 0},
			)
			faces = append(faces, Face{base, base + 1, base + 2})
		}
	}
	m, err := NewMesh(verts, faces, stubMaterial{})
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	if m.tree.Depth() == 0 {
		t.Fatalf("expected the mesh's internal octree to subdivide over %d faces", len(faces))
	}

	// Aim squarely at the triangle centered on row=3, col=4.
	x, y := float32(4)*3, float32(3)*3
	ray, _ := geom.NewRay(geom.Vec3{X: x, Y: y, Z: 5}, geom.Vec3{X: 0, Y: 0, Z: -1})
	var hit Hit
	if !m.Intersect(ray, 0.001, 1e9, &hit) {
		t.Fatalf("expected hit on the targeted triangle")
	}
	if hit.T < 4.999 || hit.T > 5.001 {
		t.Fatalf("hit.T = %v, want 5", hit.T)
	}
}
