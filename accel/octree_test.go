package accel_test

import (
	"testing"

	"github.com/gazed/tracer/accel"
	"github.com/gazed/tracer/geom"
	"github.com/gazed/tracer/prim"
)

type stubMaterial struct{}

func (stubMaterial) Shade(in geom.Ray, hit geom.Hit, src *geom.Source) (geom.Vec3, geom.Ray, bool) {
	return geom.Vec3{}, geom.Ray{}, false
}

func gridSpheres(n int) []*prim.Sphere {
	spheres := make([]*prim.Sphere, n)
	for i := 0; i < n; i++ {
		spheres[i] = &prim.Sphere{
			Center:   geom.Vec3{X: float32(i%10) * 3, Y: float32((i/10)%10) * 3, Z: float32(i/100) * 3},
			Radius:   1,
			Material: stubMaterial{},
		}
	}
	return spheres
}

func buildTree(spheres []*prim.Sphere) *accel.Octree {
	tree := accel.New(accel.PurposeInstances)
	for _, s := range spheres {
		tree.Add(s)
	}
	tree.Build()
	return tree
}

func linearScan(spheres []*prim.Sphere, ray geom.Ray, tMin, tMax float32) (geom.Hit, bool) {
	var best geom.Hit
	closest := tMax
	found := false
	for _, s := range spheres {
		var hit geom.Hit
		if s.Intersect(ray, tMin, closest, &hit) {
			best = hit
			closest = hit.T
			found = true
		}
	}
	return best, found
}

func TestOctreeMatchesLinearScanOverGrid(t *testing.T) {
	spheres := gridSpheres(1000)
	tree := buildTree(spheres)

	for x := -5; x <= 35; x += 5 {
		ray, err := geom.NewRay(geom.Vec3{X: float32(x), Y: 3, Z: -100}, geom.Vec3{X: 0, Y: 0, Z: 1})
		if err != nil {
			t.Fatalf("NewRay: %v", err)
		}
		var treeHit geom.Hit
		treeFound := tree.Intersect(ray, 0.001, 1e9, &treeHit)
		scanHit, scanFound := linearScan(spheres, ray, 0.001, 1e9)

		if treeFound != scanFound {
			t.Fatalf("x=%d: tree found=%v, scan found=%v", x, treeFound, scanFound)
		}
		if treeFound && treeHit.T > scanHit.T+1e-3 {
			t.Fatalf("x=%d: tree t=%v worse than scan t=%v", x, treeHit.T, scanHit.T)
		}
	}
}

func TestOctreeBuildTwiceIsIdempotent(t *testing.T) {
	spheres := gridSpheres(200)
	tree := buildTree(spheres)

	ray, _ := geom.NewRay(geom.Vec3{X: 0, Y: 0, Z: -100}, geom.Vec3{X: 0, Y: 0, Z: 1})
	var first geom.Hit
	firstFound := tree.Intersect(ray, 0.001, 1e9, &first)

	tree.Build() // rebuild over the same primitives.
	var second geom.Hit
	secondFound := tree.Intersect(ray, 0.001, 1e9, &second)

	if firstFound != secondFound {
		t.Fatalf("found changed across rebuild: %v vs %v", firstFound, secondFound)
	}
	if firstFound && first.T != second.T {
		t.Fatalf("hit.T changed across rebuild: %v vs %v", first.T, second.T)
	}
}

func TestOctreeUnbuiltReturnsFalse(t *testing.T) {
	tree := accel.New(accel.PurposeInstances)
	ray, _ := geom.NewRay(geom.Vec3{}, geom.Vec3{X: 0, Y: 0, Z: 1})
	var hit geom.Hit
	if tree.Intersect(ray, 0.001, 1e9, &hit) {
		t.Fatalf("expected false on an unbuilt tree")
	}
}

func TestOctreePurposeInstancesHonorsMaxDepthTwo(t *testing.T) {
	// 1000 spheres on a 10x10x10 grid leave far more than 4 primitives per
	// node at depth 2, so recursion would go past depth 2 under the generic
	// (5, 4) "Instances" preset from the
	// purpose table; PurposeInstances must instead cap at the Instancer's
	// own (2, 20) preset per the boundary scenario.
	tree := buildTree(gridSpheres(1000))
	if d := tree.Depth(); d > 2 {
		t.Fatalf("depth = %d, want <= 2 for accel.PurposeInstances", d)
	}
}

func TestOctreePurposeMeshAllowsDeeperRecursion(t *testing.T) {
	tree := accel.New(accel.PurposeMesh)
	for _, s := range gridSpheres(1000) {
		tree.Add(s)
	}
	tree.Build()
	if d := tree.Depth(); d <= 2 {
		t.Fatalf("depth = %d, want > 2 for accel.PurposeMesh over the same grid", d)
	}
}
