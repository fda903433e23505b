package prim

import (
	"github.com/gazed/tracer/accel"
	"github.com/gazed/tracer/geom"
)

// instancerThreshold is the instance count at or above which an Instancer
// builds an internal octree instead of falling back to a linear scan.
const instancerThreshold = 50

// Instancer is a set of Instances, each a transformed reference into a
// shared sub-scene. It is the usual scene root: the driver asks it for a
// hit and it either delegates to an accelerator (when it holds at least
// instancerThreshold instances) or linearly scans its instances, gated by a
// root-box rejection test either way.
type Instancer struct {
	Instances []*Instance

	box   geom.Box
	built bool
	tree  *accel.Octree
}

// Add registers an instance with the instancer. Call Build afterward,
// before rendering.
func (in *Instancer) Add(inst *Instance) {
	in.Instances = append(in.Instances, inst)
	in.built = false
}

// Built reports whether Build has run at least once since the last Add.
func (in *Instancer) Built() bool { return in.built }

// Build is the instancer's onBeforeRender hook: it (re)computes the root
// bounding box and, once there are at least instancerThreshold instances,
// builds an internal octree over them (accel.PurposeInstances: MAX_DEPTH=2,
// MIN_PRIMITIVES=20). Below the threshold it stays in linear-scan mode.
// Calling Build again after Add rebuilds cleanly.
func (in *Instancer) Build() {
	box := geom.EmptyBox()
	for _, inst := range in.Instances {
		box = inst.ExpandBox(box)
	}
	in.box = box

	if len(in.Instances) >= instancerThreshold {
		in.tree = accel.New(accel.PurposeInstances)
		for _, inst := range in.Instances {
			in.tree.Add(inst)
		}
		in.tree.Build()
	} else {
		in.tree = nil
	}
	in.built = true
}

// Intersect rejects against the root box first, then either delegates to
// the internal octree (>= instancerThreshold instances) or linearly scans
// every instance. Build must have been called at least once beforehand —
// the spec's concurrency model has the accelerator built once, single
// threaded, in onBeforeRender and never mutated during traversal by the
// render workers, so Intersect does not lazily build under concurrent use.
func (in *Instancer) Intersect(ray geom.Ray, tMin, tMax float32, hit *Hit) bool {
	if !in.box.Hit(ray) {
		return false
	}
	if in.tree != nil {
		return in.tree.Intersect(ray, tMin, tMax, hit)
	}

	closest := tMax
	found := false
	for _, inst := range in.Instances {
		var data Hit
		if inst.Intersect(ray, tMin, closest, &data) {
			if data.T < closest {
				*hit = data
				closest = data.T
				found = true
			}
		}
	}
	return found
}

// BoxIntersect reports whether box overlaps the instancer's root box.
func (in *Instancer) BoxIntersect(box geom.Box) bool {
	return boxOverlap(in.box, box)
}

// ExpandBox grows box to contain the instancer's root box.
func (in *Instancer) ExpandBox(box geom.Box) geom.Box {
	return box.AddBox(in.box)
}

// HasAccelerator reports whether the instancer built an internal octree —
// exposed for tests exercising the 49-vs-50 instance boundary scenario.
func (in *Instancer) HasAccelerator() bool { return in.tree != nil }
