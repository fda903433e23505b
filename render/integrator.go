package render

import (
	"math"

	"github.com/gazed/tracer/geom"
)

// MaxRayDepth is the hard recursion cap on the scatter chain.
const MaxRayDepth = 35

// shadowEpsilon is the minimum t accepted on an intersection query, large
// enough to step past self-intersection at the origin of a scattered ray.
const shadowEpsilon = 0.001

// Root is the scene root the integrator queries: the render driver always
// passes a *prim.Instancer, declared narrowly here so this package does not
// import prim.
type Root interface {
	Intersect(ray geom.Ray, tMin, tMax float32, hit *geom.Hit) bool
}

// colorCounting computes the radiance along ray, incrementing *traces once
// per root.Intersect query, and is what the driver calls for each pixel
// sample (depth starts at 0).
func colorCounting(ray geom.Ray, root Root, src *geom.Source, traces *int64) geom.Vec3 {
	return color(ray, root, src, 0, traces)
}

// color computes the radiance along ray by querying root for a hit, asking
// the hit's material whether and how the ray scatters, and recursing up to
// MaxRayDepth. A miss returns the sky gradient; a depth-exhausted or
// non-scattering path returns black.
func color(ray geom.Ray, root Root, src *geom.Source, depth int, traces *int64) geom.Vec3 {
	var hit geom.Hit
	*traces++
	if !root.Intersect(ray, shadowEpsilon, math.MaxFloat32, &hit) {
		return background(ray)
	}
	if depth >= MaxRayDepth {
		return geom.Vec3{}
	}
	attenuation, scattered, ok := hit.Material.Shade(ray, hit, src)
	if !ok {
		return geom.Vec3{}
	}
	return attenuation.Mul(color(scattered, root, src, depth+1, traces))
}

// background is the sky gradient returned on a miss: a linear blend from
// white at the horizon to (0.5, 0.7, 1.0) overhead, keyed on the ray's Y
// component.
func background(ray geom.Ray) geom.Vec3 {
	f := 0.5 * (ray.Dir.Y + 1)
	white := geom.Vec3{X: 1, Y: 1, Z: 1}
	sky := geom.Vec3{X: 0.5, Y: 0.7, Z: 1.0}
	return white.Scale(1 - f).Add(sky.Scale(f))
}
