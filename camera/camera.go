// Package camera implements a pinhole camera with look-at construction,
// the render driver's source of per-pixel rays.
package camera

import (
	"math"

	"github.com/gazed/tracer/geom"
)

// worldUp is the fixed up reference used to orthonormalize the camera
// basis; it only fails (degenerates to a zero right vector) when looking
// straight up or down, which callers are expected to avoid.
var worldUp = geom.Vec3{X: 0, Y: 1, Z: 0}

// Camera is a pinhole camera: origin, the right and up basis vectors, and
// the focal plane at unit distance in front of the origin (its lower-left
// corner and full horizontal and vertical spans), precomputed from the
// vertical field of view and aspect ratio.
type Camera struct {
	origin     geom.Vec3
	right, up  geom.Vec3
	llc        geom.Vec3 // lower-left corner of the focal plane.
	horizontal geom.Vec3 // 2w·right
	vertical   geom.Vec3 // 2h·up
}

// New builds a look-at camera. vfov is the vertical field of view in
// degrees; aspect is width/height.
func New(origin, target geom.Vec3, vfov, aspect float32) *Camera {
	theta := float64(vfov) * math.Pi / 180
	h := float32(math.Tan(theta / 2))
	w := aspect * h

	fwd := origin.Sub(target).Unit()
	right := worldUp.Cross(fwd).Unit()
	up := fwd.Cross(right)

	horizontal := right.Scale(2 * w)
	vertical := up.Scale(2 * h)
	llc := origin.Sub(right.Scale(w)).Sub(up.Scale(h)).Sub(fwd)

	return &Camera{
		origin:     origin,
		right:      right,
		up:         up,
		llc:        llc,
		horizontal: horizontal,
		vertical:   vertical,
	}
}

// GetRay returns the normalized ray from the camera origin through the
// point at (u, v) on the focal plane, u and v each typically in [0, 1].
func (c *Camera) GetRay(u, v float32) (geom.Ray, error) {
	target := c.llc.Add(c.horizontal.Scale(u)).Add(c.vertical.Scale(v))
	dir := target.Sub(c.origin).Unit()
	return geom.NewRay(c.origin, dir)
}
