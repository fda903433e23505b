// Package accel implements the spatial accelerator: an axis-aligned octree
// over a set of non-owning primitive references. The octree never owns the
// primitives it indexes — the scene graph does — so an Octree's lifetime
// must not outlive the primitives it was built from.
package accel

import "github.com/gazed/tracer/geom"

// Primitive is the subset of prim.Primitive the accelerator needs. It is
// declared locally (rather than imported) so this package has no
// dependency on the primitive hierarchy; any type satisfying this shape —
// notably every prim.Primitive, since the method signatures match exactly
// via the shared geom.Hit type — can be indexed.
type Primitive interface {
	Intersect(ray geom.Ray, tMin, tMax float32, hit *geom.Hit) bool
	BoxIntersect(box geom.Box) bool
	ExpandBox(box geom.Box) geom.Box
}

// Hit is the shading record filled by a successful Intersect.
type Hit = geom.Hit

// Purpose selects one of the two parameter presets named in the spec.
type Purpose int

const (
	// PurposeInstances is tuned for an instancer's set of instances. The
	// generic purpose table gives (5, 4) for "Instances", but the
	// Instancer's own prose is more specific — it names (2, 20) directly,
	// and the 49-vs-50 boundary scenario tests a resulting depth of at
	// most 2 — so that more specific, scenario-tested pair wins here.
	PurposeInstances Purpose = iota
	// PurposeMesh is tuned for a triangle mesh's faces.
	PurposeMesh
)

// params returns the (MAX_DEPTH, MIN_PRIMITIVES) preset for a Purpose.
func (p Purpose) params() (maxDepth, minPrimitives int) {
	switch p {
	case PurposeMesh:
		return 35, 20
	default: // PurposeInstances
		return 2, 20
	}
}

// noChild marks the absence of a child node in the arena.
const noChild = -1

// node is one octree node, stored by value in the Octree's arena. Child
// references are arena indices (noChild when absent) rather than pointers,
// keeping the accelerator's non-owning-reference nature explicit and the
// traversal cache-friendly.
type node struct {
	box      geom.Box
	children [8]int
	prims    []int // indices into Octree.prims; empty on internal nodes
}

func (n *node) isLeaf() bool { return n.children[0] == noChild }

// Octree is the spatial accelerator. The zero value is not usable; build
// one with New and populate it with Add before calling Build.
type Octree struct {
	purpose Purpose
	prims   []Primitive
	nodes   []node
	root    int // index into nodes, noChild before Build
}

// New returns an empty Octree tuned for the given Purpose.
func New(purpose Purpose) *Octree {
	return &Octree{purpose: purpose, root: noChild}
}

// Add registers a primitive to be indexed on the next Build call. It does
// not itself affect any previously built tree.
func (o *Octree) Add(p Primitive) {
	o.prims = append(o.prims, p)
}

// Built reports whether Build has produced a usable tree.
func (o *Octree) Built() bool { return o.root != noChild }

// Depth returns the tree's maximum leaf depth (0 for an unbuilt tree or one
// whose root is already a leaf). Exposed so callers and tests can verify a
// Purpose's MAX_DEPTH preset was actually honored, not just that some tree
// got built.
func (o *Octree) Depth() int {
	if !o.Built() {
		return 0
	}
	return o.depth(o.root)
}

func (o *Octree) depth(ni int) int {
	n := &o.nodes[ni]
	if n.isLeaf() {
		return 0
	}
	max := 0
	for _, c := range n.children {
		if d := o.depth(c); d > max {
			max = d
		}
	}
	return max + 1
}

// Build constructs the tree over every primitive added so far. Calling
// Build twice discards the previous tree cleanly and rebuilds in place —
// the accelerator is reusable, not single-shot.
func (o *Octree) Build() {
	maxDepth, minPrimitives := o.purpose.params()
	o.nodes = o.nodes[:0]

	rootBox := geom.EmptyBox()
	rootPrims := make([]int, len(o.prims))
	for i, p := range o.prims {
		rootBox = p.ExpandBox(rootBox)
		rootPrims[i] = i
	}

	o.root = o.newNode(rootBox, rootPrims)
	o.build(o.root, 0, maxDepth, minPrimitives)
}

// newNode appends a fresh node to the arena and returns its index.
func (o *Octree) newNode(box geom.Box, prims []int) int {
	n := node{box: box, prims: prims}
	for i := range n.children {
		n.children[i] = noChild
	}
	o.nodes = append(o.nodes, n)
	return len(o.nodes) - 1
}

// build recursively subdivides the node at index ni.
//
// A node becomes a leaf once currentDepth reaches maxDepth or it holds at
// most minPrimitives primitives. Otherwise its box is split into 8
// canonical octants and every primitive that overlaps a child's box is
// copied into that child (a primitive may land in more than one child when
// it straddles a split — expected for large primitives). If a child
// receives every one of its parent's primitives — no refinement occurred —
// it is forced to terminate as a leaf by recursing with depth = maxDepth+1,
// which prevents infinite subdivision when a single primitive encloses the
// region. Internal nodes end up holding no primitives: the node's own
// prims slice is cleared once its children are built.
func (o *Octree) build(ni, currentDepth, maxDepth, minPrimitives int) {
	parentPrims := o.nodes[ni].prims
	if currentDepth >= maxDepth || len(parentPrims) <= minPrimitives {
		return
	}

	childBoxes := o.nodes[ni].box.OctSplit()
	var children [8]int
	for c := 0; c < 8; c++ {
		var childPrims []int
		for _, pi := range parentPrims {
			if o.prims[pi].BoxIntersect(childBoxes[c]) {
				childPrims = append(childPrims, pi)
			}
		}
		childIdx := o.newNode(childBoxes[c], childPrims)
		children[c] = childIdx

		nextDepth := currentDepth + 1
		if len(childPrims) == len(parentPrims) {
			nextDepth = maxDepth + 1 // termination guard.
		}
		o.build(childIdx, nextDepth, maxDepth, minPrimitives)
	}
	o.nodes[ni].children = children
	o.nodes[ni].prims = nil // internal nodes own no primitives.
}

// Intersect queries the tree for the closest hit along ray within
// (tMin, tMax). Traversal visits the 8 children in the fixed canonical
// order — it is not sorted front-to-back by entry distance, trading some
// pruning efficiency for simplicity, per the design notes.
func (o *Octree) Intersect(ray geom.Ray, tMin, tMax float32, hit *Hit) bool {
	if !o.Built() {
		return false
	}
	return o.intersect(o.root, ray, tMin, tMax, hit)
}

func (o *Octree) intersect(ni int, ray geom.Ray, tMin, tMax float32, hit *Hit) bool {
	n := &o.nodes[ni]
	closest := tMax
	found := false

	if n.isLeaf() {
		for _, pi := range n.prims {
			var data Hit
			if o.prims[pi].Intersect(ray, tMin, closest, &data) {
				if data.T < closest {
					*hit = data
					closest = data.T
					found = true
				}
			}
		}
		return found
	}

	for _, childIdx := range n.children {
		if !o.nodes[childIdx].box.Hit(ray) {
			continue
		}
		var data Hit
		if o.intersect(childIdx, ray, tMin, closest, &data) {
			if data.T < closest {
				*hit = data
				closest = data.T
				found = true
			}
		}
	}
	return found
}
