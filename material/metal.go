package material

import "github.com/gazed/tracer/geom"

// Metal reflects the incoming ray about the normal, perturbed by Fuzz times
// a uniform sample of the unit sphere. Fuzz is expected in [0, 1]; values
// outside that range are not rejected, they just produce a rougher or
// near-mirror reflection than the name implies.
type Metal struct {
	Albedo geom.Vec3
	Fuzz   float32
}

// Shade reflects in.Dir about hit.Normal, perturbs the result by Fuzz, and
// reports ok iff the perturbed direction still points away from the
// surface on the normal's side.
func (m Metal) Shade(in geom.Ray, hit geom.Hit, src *geom.Source) (attenuation geom.Vec3, scattered geom.Ray, ok bool) {
	reflected := in.Dir.Reflect(hit.Normal).Unit()
	dir := reflected.Add(src.UnitSphere().Scale(m.Fuzz)).Unit()
	if dir.Dot(hit.Normal) <= 0 {
		return m.Albedo, geom.Ray{}, false
	}
	scattered, err := geom.NewRay(hit.P, dir)
	if err != nil {
		return m.Albedo, geom.Ray{}, false
	}
	return m.Albedo, scattered, true
}
