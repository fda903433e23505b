package material

import (
	"math"

	"github.com/gazed/tracer/geom"
)

// Dielectric refracts or reflects according to the Schlick approximation
// of Fresnel reflectance and a total-internal-reflection test. Ior is the
// material's refractive index (e.g. ~1.5 for glass).
type Dielectric struct {
	Ior float32
}

// Shade always reports ok; attenuation is white, and the scatter direction
// is chosen between reflection and refraction by a Schlick-weighted coin
// flip. The effective index of refraction is 1/Ior on the front face (ray
// entering the medium) and Ior on the back face (ray exiting it).
func (d Dielectric) Shade(in geom.Ray, hit geom.Hit, src *geom.Source) (attenuation geom.Vec3, scattered geom.Ray, ok bool) {
	attenuation = geom.Vec3{X: 1, Y: 1, Z: 1}

	hitIor := d.Ior
	if hit.FrontFace {
		hitIor = 1 / d.Ior
	}

	cosTheta := in.Dir.Neg().Dot(hit.Normal)
	if cosTheta > 1 {
		cosTheta = 1
	}
	sinTheta := float32(math.Sqrt(float64(1 - cosTheta*cosTheta)))

	canRefract := hitIor*sinTheta <= 1

	var dir geom.Vec3
	if !canRefract || schlick(cosTheta, hitIor) > src.Float() {
		dir = in.Dir.Reflect(hit.Normal)
	} else {
		refracted, valid := in.Dir.Refract(hit.Normal, hitIor)
		if !valid {
			// Discriminant went negative despite the sinTheta test above —
			// numerical edge case right at the critical angle. Reflect.
			dir = in.Dir.Reflect(hit.Normal)
		} else {
			dir = refracted
		}
	}

	scattered, err := geom.NewRay(hit.P, dir.Unit())
	if err != nil {
		return attenuation, geom.Ray{}, false
	}
	return attenuation, scattered, true
}

// schlick is the Schlick approximation of Fresnel reflectance at the
// given cosine of the incidence angle and effective index of refraction.
func schlick(cosTheta, ior float32) float32 {
	r0 := (1 - ior) / (1 + ior)
	r0 = r0 * r0
	return r0 + (1-r0)*pow5(1-cosTheta)
}

func pow5(x float32) float32 {
	x2 := x * x
	return x2 * x2 * x
}
