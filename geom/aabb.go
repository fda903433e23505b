package geom

import "math"

// Box is an axis-aligned bounding box. The zero value is not empty: it is
// the single point at the origin. Start from EmptyBox (Min the
// all-positive-infinity point, Max the all-negative-infinity point) to grow
// a box with AddPoint and AddBox.
type Box struct {
	Min, Max Vec3
}

// EmptyBox returns a box with no volume, suitable as the starting point for
// a sequence of Add calls.
func EmptyBox() Box {
	inf := float32(math.Inf(1))
	return Box{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// Empty reports whether any Min component exceeds the corresponding Max
// component.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// AddPoint expands b to include p.
func (b Box) AddPoint(p Vec3) Box {
	return Box{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// AddBox expands b to include another box.
func (b Box) AddBox(o Box) Box {
	return Box{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Intersection returns the overlap of b and o. The result is Empty when the
// boxes do not overlap.
func (b Box) Intersection(o Box) Box {
	return Box{Min: b.Min.Max(o.Min), Max: b.Max.Min(o.Max)}
}

// octantCount is the number of children in the fixed canonical enumeration of the 8 octants used by
// both OctSplit and every accelerator that walks children by index: bit 0
// of the octant index selects the X half, bit 1 selects Y, bit 2 selects Z
// (0 = low half, 1 = high half).
const octantCount = 8

// OctSplit partitions b into 8 equal-volume child boxes by bisecting each
// axis about the centroid, in the fixed canonical octant order.
func (b Box) OctSplit() [octantCount]Box {
	mid := Vec3{
		(b.Min.X + b.Max.X) / 2,
		(b.Min.Y + b.Max.Y) / 2,
		(b.Min.Z + b.Max.Z) / 2,
	}
	var children [octantCount]Box
	for i := 0; i < octantCount; i++ {
		lo := Vec3{b.Min.X, b.Min.Y, b.Min.Z}
		hi := Vec3{mid.X, mid.Y, mid.Z}
		if i&1 != 0 {
			lo.X, hi.X = mid.X, b.Max.X
		} else {
			hi.X = mid.X
		}
		if i&2 != 0 {
			lo.Y, hi.Y = mid.Y, b.Max.Y
		} else {
			hi.Y = mid.Y
		}
		if i&4 != 0 {
			lo.Z, hi.Z = mid.Z, b.Max.Z
		} else {
			hi.Z = mid.Z
		}
		children[i] = Box{Min: lo, Max: hi}
	}
	return children
}

// Hit runs the slab test against r, reporting only whether the ray enters
// the box volume at some t >= 0 — no entry/exit parameter is returned.
func (b Box) Hit(r Ray) bool {
	tMin := float32(0)
	tMax := float32(math.Inf(1))
	mins := [3]float32{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float32{b.Max.X, b.Max.Y, b.Max.Z}
	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Dir.X, r.Dir.Y, r.Dir.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < mins[axis] || origin[axis] > maxs[axis] {
				return false
			}
			continue
		}
		invD := 1 / dir[axis]
		t0 := (mins[axis] - origin[axis]) * invD
		t1 := (maxs[axis] - origin[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		tMin = fmax(tMin, t0)
		tMax = fmin(tMax, t1)
		if tMax < tMin {
			return false
		}
	}
	return tMax >= fmax(tMin, 0)
}
