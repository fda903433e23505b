package geom

// Hit records everything a successful intersection needs to hand to the
// shading step: the parametric distance, the hit point, the surface
// normal, whether the ray struck the front face, and a non-owning
// reference to the material at the hit. A caller's Hit is only valid after
// an Intersect call returns true; on a false return it is left untouched.
//
// Hit (and Material, below) live in the geometry kernel rather than in the
// primitive or accelerator packages because both of those packages need
// the identical concrete type: the accelerator is generic over any
// primitive's Intersect method, and that method signature must match
// exactly for a primitive to satisfy the accelerator's Primitive interface.
type Hit struct {
	T         float32
	P         Vec3
	Normal    Vec3
	FrontFace bool
	Material  Material
}

// Material decides whether an incoming ray scatters at a hit point and, if
// so, in what direction with what attenuation. Concrete implementations
// live in the material package.
type Material interface {
	Shade(in Ray, hit Hit, src *Source) (attenuation Vec3, scattered Ray, ok bool)
}
