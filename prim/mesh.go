package prim

import (
	"fmt"

	"github.com/gazed/tracer/accel"
	"github.com/gazed/tracer/geom"
)

// Face is a triangle as three indices into a Mesh's shared vertex array.
type Face [3]int

// Mesh is a triangle mesh: a shared vertex array, an index array of
// triangles, and a single material. Only triangular faces are ever stored
// here — rejecting non-triangular topology is the loader's job (see
// loadobj), not the primitive's.
type Mesh struct {
	Vertices []geom.Vec3
	Faces    []Face
	Material Material

	box     geom.Box
	normals []geom.Vec3   // precomputed per-face normal, parallel to Faces
	tree    *accel.Octree // built with accel.PurposeMesh over the mesh's own faces
}

// NewMesh validates and constructs a Mesh. Its bounding box is computed
// once, from all vertices, at construction time, and its faces are indexed
// into an internal octree (accel.PurposeMesh: MAX_DEPTH=35, MIN_PRIMITIVES=20)
// so Intersect does not linearly scan every face of a large mesh.
func NewMesh(vertices []geom.Vec3, faces []Face, material Material) (*Mesh, error) {
	if len(vertices) == 0 || len(faces) == 0 {
		return nil, fmt.Errorf("prim: mesh needs at least one vertex and one face")
	}
	m := &Mesh{Vertices: vertices, Faces: faces, Material: material}
	box := geom.EmptyBox()
	for _, v := range vertices {
		box = box.AddPoint(v)
	}
	m.box = box
	m.normals = make([]geom.Vec3, len(faces))
	m.tree = accel.New(accel.PurposeMesh)
	for i, f := range faces {
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		ab := b.Sub(a)
		ac := c.Sub(a)
		m.normals[i] = ab.Cross(ac).Unit()

		faceBox := geom.EmptyBox().AddPoint(a).AddPoint(b).AddPoint(c)
		m.tree.Add(&meshFace{mesh: m, index: i, box: faceBox})
	}
	m.tree.Build()
	return m, nil
}

// Intersect delegates to the mesh's internal octree over its own faces,
// which amortises the per-face scan the way accel.PurposeMesh is tuned for.
func (m *Mesh) Intersect(ray geom.Ray, tMin, tMax float32, hit *Hit) bool {
	return m.tree.Intersect(ray, tMin, tMax, hit)
}

// meshFace is one triangle of a Mesh, adapted to accel.Primitive so the
// mesh's octree can index individual faces without the accelerator package
// knowing anything about meshes.
type meshFace struct {
	mesh  *Mesh
	index int
	box   geom.Box
}

func (f *meshFace) Intersect(ray geom.Ray, tMin, tMax float32, hit *Hit) bool {
	hit.T = tMax // intersectFace uses hit.T as a running cutoff on entry.
	return f.mesh.intersectFace(ray, tMin, f.mesh.Faces[f.index], f.mesh.normals[f.index], hit)
}

func (f *meshFace) BoxIntersect(box geom.Box) bool { return boxOverlap(f.box, box) }

func (f *meshFace) ExpandBox(box geom.Box) geom.Box { return box.AddBox(f.box) }

// intersectFace implements the Möller-style triangle test from the spec:
// M = cross(AB,AC), Dcr = -dot(M,d), then t/β/γ from cross(H,d) and H.
// hit.T is used as a running cutoff (the mesh's own t < hit.T culling).
func (m *Mesh) intersectFace(ray geom.Ray, tMin float32, f Face, normal geom.Vec3, hit *Hit) bool {
	a := m.Vertices[f[0]]
	b := m.Vertices[f[1]]
	c := m.Vertices[f[2]]
	ab := b.Sub(a)
	ac := c.Sub(a)

	if ray.Dir.Dot(normal) > 0 {
		return false // back-face culling.
	}

	mv := ab.Cross(ac)
	dcr := -mv.Dot(ray.Dir)
	if dcr > -1e-12 && dcr < 1e-12 {
		return false // degenerate triangle / ray parallel to its plane.
	}

	h := ray.Origin.Sub(a)
	t := mv.Dot(h) / dcr
	beta := h.Cross(ray.Dir).Dot(ac) / dcr
	gamma := -ab.Dot(h.Cross(ray.Dir)) / dcr

	if beta < 0 || gamma < 0 || beta+gamma > 1 {
		return false
	}
	if t <= tMin || t >= hit.T {
		return false
	}

	hit.T = t
	hit.P = ray.At(t)
	hit.Normal = normal
	hit.FrontFace = ray.Dir.Dot(normal) < 0
	hit.Material = m.Material
	return true
}

// BoxIntersect reports whether box overlaps the mesh's bounding box.
func (m *Mesh) BoxIntersect(box geom.Box) bool {
	return boxOverlap(m.box, box)
}

// ExpandBox grows box to contain the mesh's bounding box.
func (m *Mesh) ExpandBox(box geom.Box) geom.Box {
	return box.AddBox(m.box)
}

// Box returns the mesh's precomputed bounding box (the pointwise min/max
// of its vertices).
func (m *Mesh) Box() geom.Box { return m.box }
