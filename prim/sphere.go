package prim

import (
	"math"

	"github.com/gazed/tracer/geom"
)

// Sphere is a centre, radius, and material. Its bounding box is the
// enclosing axis-aligned cube.
type Sphere struct {
	Center   geom.Vec3
	Radius   float32
	Material Material
}

// Intersect solves a·t² + b·t + c = 0 for the ray/sphere intersection and
// reports only the nearer root — it never falls back to the farther root,
// so a ray originating inside the sphere is reported as a miss. This
// mirrors the reference implementation exactly; see the design notes on
// preserved known limitations.
func (s *Sphere) Intersect(ray geom.Ray, tMin, tMax float32, hit *Hit) bool {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Dir.Dot(ray.Dir)
	b := 2 * ray.Dir.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false
	}
	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t <= tMin || t >= tMax {
		return false
	}
	p := ray.At(t)
	outward := p.Sub(s.Center).Scale(1 / s.Radius)
	hit.T = t
	hit.P = p
	// The normal is always the outward normal, not flipped for rays
	// originating inside the sphere — a preserved known limitation.
	hit.Normal = outward
	hit.FrontFace = ray.Dir.Dot(outward) < 0
	hit.Material = s.Material
	return true
}

// BoxIntersect reports whether box overlaps the sphere's bounding cube.
func (s *Sphere) BoxIntersect(box geom.Box) bool {
	return boxOverlap(s.boundingBox(), box)
}

// ExpandBox grows box to contain the sphere's bounding cube.
func (s *Sphere) ExpandBox(box geom.Box) geom.Box {
	return box.AddBox(s.boundingBox())
}

func (s *Sphere) boundingBox() geom.Box {
	r := geom.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return geom.Box{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// boxOverlap is the default AABB-vs-AABB overlap test primitives use for
// BoxIntersect: two boxes overlap iff their intersection is non-empty.
func boxOverlap(a, b geom.Box) bool {
	return !a.Intersection(b).Empty()
}
