// Package prim implements the intersectable primitive hierarchy: spheres,
// triangle meshes, and instancers over shared sub-scenes.
package prim

import "github.com/gazed/tracer/geom"

// Hit is the shading record every primitive fills on a successful
// intersection. It is geom.Hit directly (not a locally redeclared type) so
// that every Primitive.Intersect method has the exact signature the
// accelerator package expects — see accel.Primitive.
type Hit = geom.Hit

// Material is the interface a hit's Material field satisfies; concrete
// implementations live in the sibling material package.
type Material = geom.Material

// Primitive is the capability set every intersectable object exposes.
type Primitive interface {
	// Intersect returns true iff ray hits the primitive within the open
	// interval (tMin, tMax), filling hit on success. hit is left untouched
	// on a false return; callers of a generic Primitive must not rely on
	// hit's contents before the call. (Mesh's own internal per-face adapter
	// uses hit.T as a running cutoff, but that is private to Mesh.Intersect
	// and invisible at this interface.)
	Intersect(ray geom.Ray, tMin, tMax float32, hit *Hit) bool

	// BoxIntersect reports whether the primitive's bounding volume
	// overlaps box.
	BoxIntersect(box geom.Box) bool

	// ExpandBox grows box to contain the primitive.
	ExpandBox(box geom.Box) geom.Box
}
