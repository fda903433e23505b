package prim

import "github.com/gazed/tracer/geom"

// Instance holds a shared reference to a primitive, a translation offset, a
// uniform scale, and optionally an overriding material. Many instances may
// share the same Primitive pointer — Go's garbage collector, not manual
// reference counting, keeps the shared payload alive for as long as any
// instance (or the scene root) still points to it.
type Instance struct {
	Primitive Primitive
	Offset    geom.Vec3
	Scale     float32
	// MaterialOverride, when non-nil, replaces the underlying primitive's
	// material for this instance only.
	MaterialOverride Material
}

// Intersect transforms ray into the instance's local frame — (o-offset)/scale,
// direction unchanged since scale is scalar and uniform so direction stays
// unit — and delegates to the wrapped primitive. The returned hit is left
// in local space: the hit point and normal are NOT transformed back to
// world space. This is a preserved known limitation (see design notes),
// not an oversight.
func (in *Instance) Intersect(ray geom.Ray, tMin, tMax float32, hit *Hit) bool {
	local := geom.Ray{
		Origin: ray.Origin.Sub(in.Offset).Scale(1 / in.Scale),
		Dir:    ray.Dir,
	}
	if !in.Primitive.Intersect(local, tMin, tMax, hit) {
		return false
	}
	if in.MaterialOverride != nil {
		hit.Material = in.MaterialOverride
	}
	return true
}

// BoxIntersect reports whether box overlaps the instance's transformed
// bounding box.
func (in *Instance) BoxIntersect(box geom.Box) bool {
	return boxOverlap(in.worldBox(), box)
}

// ExpandBox grows box to contain the instance's transformed bounding box.
func (in *Instance) ExpandBox(box geom.Box) geom.Box {
	return box.AddBox(in.worldBox())
}

// worldBox transforms the wrapped primitive's local bounding box into world
// space by the instance's offset and uniform scale.
func (in *Instance) worldBox() geom.Box {
	local := in.Primitive.ExpandBox(geom.EmptyBox())
	return geom.Box{
		Min: local.Min.Scale(in.Scale).Add(in.Offset),
		Max: local.Max.Scale(in.Scale).Add(in.Offset),
	}
}
