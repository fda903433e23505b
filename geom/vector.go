// Package geom implements the vector, ray, and bounding-box math shared by
// every other package: the geometry kernel of the path tracer.
package geom

import "math"

// Vec3 is a 3 element single-precision vector. It is also used as a point
// and as a linear RGB color, depending on context.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the pointwise sum v+u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns the pointwise difference v-u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Mul returns the pointwise product v*u, used for attenuating colors.
func (v Vec3) Mul(u Vec3) Vec3 {
	return Vec3{v.X * u.X, v.Y * u.Y, v.Z * u.Z}
}

// Scale returns v scaled by the scalar t.
func (v Vec3) Scale(t float32) Vec3 {
	return Vec3{v.X * t, v.Y * t, v.Z * t}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and u.
func (v Vec3) Dot(u Vec3) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product v×u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// LengthSq returns the squared length of v, avoiding a sqrt.
func (v Vec3) LengthSq() float32 { return v.Dot(v) }

// Length returns the length of v.
func (v Vec3) Length() float32 { return float32(math.Sqrt(float64(v.LengthSq()))) }

// Unit returns v normalized to length 1. The zero vector is returned
// unchanged rather than producing NaNs.
func (v Vec3) Unit() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Min returns the componentwise minimum of v and u.
func (v Vec3) Min(u Vec3) Vec3 {
	return Vec3{fmin(v.X, u.X), fmin(v.Y, u.Y), fmin(v.Z, u.Z)}
}

// Max returns the componentwise maximum of v and u.
func (v Vec3) Max(u Vec3) Vec3 {
	return Vec3{fmax(v.X, u.X), fmax(v.Y, u.Y), fmax(v.Z, u.Z)}
}

// Aeq (~=) reports whether v and u are equal to within Epsilon per
// component. Used where a direct comparison is unlikely to hold for floats.
func (v Vec3) Aeq(u Vec3) bool {
	return aeq(v.X, u.X) && aeq(v.Y, u.Y) && aeq(v.Z, u.Z)
}

// Reflect returns the reflection of v about the surface normal n.
// n is expected to be unit length.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract bends v through a surface with normal n given the ratio of
// incident-over-transmitted refractive indices niOverNt. It returns the
// refracted direction and false when the ray undergoes total internal
// reflection (no valid refraction exists).
func (v Vec3) Refract(n Vec3, niOverNt float32) (Vec3, bool) {
	uv := v.Unit()
	dt := uv.Dot(n)
	discriminant := 1 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return Vec3{}, false
	}
	refracted := uv.Sub(n.Scale(dt)).Scale(niOverNt).Sub(n.Scale(float32(math.Sqrt(float64(discriminant)))))
	return refracted, true
}

// Epsilon is the tolerance used by Aeq and by the ray-unit-length invariant.
const Epsilon = 1e-3

func aeq(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < Epsilon
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
