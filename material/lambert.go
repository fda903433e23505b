// Package material implements the three material variants the spec names:
// Lambertian diffuse, fuzzy metal, and dielectric. Each satisfies
// geom.Material by deciding whether an incoming ray scatters at a hit point
// and, if so, in what direction with what attenuation.
package material

import "github.com/gazed/tracer/geom"

// Lambert is a diffuse material: it always scatters, in a direction sampled
// about the surface normal, attenuating by its albedo regardless of the
// sampled direction (no cosine-weighted correction — the image this
// produces is brighter than a physically correct path tracer, by design).
type Lambert struct {
	Albedo geom.Vec3
}

// Shade samples a scatter direction normalize(hit.Normal + randomUnitSphere())
// and always reports ok.
func (l Lambert) Shade(in geom.Ray, hit geom.Hit, src *geom.Source) (attenuation geom.Vec3, scattered geom.Ray, ok bool) {
	dir := hit.Normal.Add(src.UnitSphere()).Unit()
	scattered, err := geom.NewRay(hit.P, dir)
	if err != nil {
		// dir degenerates only if hit.Normal and the sampled point cancel
		// exactly; fall back to the normal itself, which is always unit.
		scattered, _ = geom.NewRay(hit.P, hit.Normal)
	}
	return l.Albedo, scattered, true
}
