// Package scenebuild provides the fixed set of scene constructors the
// render frontend offers: no general scene description language, just the
// handful of scenes the boundary-scenario suite exercises.
package scenebuild

import (
	"fmt"

	"github.com/gazed/tracer/camera"
	"github.com/gazed/tracer/geom"
	"github.com/gazed/tracer/material"
	"github.com/gazed/tracer/prim"
)

// Spheres builds a small fixed scene: a unit sphere at the origin (the
// seed-suite boundary scenario), a large ground sphere, and a metal and a
// dielectric sphere alongside it, viewed by a camera at (0,0,5) looking at
// the origin.
func Spheres() (*prim.Instancer, *camera.Camera, error) {
	root := &prim.Instancer{}

	unit := &prim.Sphere{
		Center:   geom.Vec3{X: 0, Y: 0, Z: 0},
		Radius:   1,
		Material: material.Lambert{Albedo: geom.Vec3{X: 0.6, Y: 0.2, Z: 0.2}},
	}
	metal := &prim.Sphere{
		Center:   geom.Vec3{X: 2.2, Y: 0, Z: 0},
		Radius:   1,
		Material: material.Metal{Albedo: geom.Vec3{X: 0.8, Y: 0.8, Z: 0.8}, Fuzz: 0.1},
	}
	glass := &prim.Sphere{
		Center:   geom.Vec3{X: -2.2, Y: 0, Z: 0},
		Radius:   1,
		Material: material.Dielectric{Ior: 1.5},
	}
	ground := &prim.Sphere{
		Center:   geom.Vec3{X: 0, Y: -1001, Z: 0},
		Radius:   1000,
		Material: material.Lambert{Albedo: geom.Vec3{X: 0.5, Y: 0.5, Z: 0.5}},
	}

	for _, s := range []*prim.Sphere{unit, metal, glass, ground} {
		root.Add(&prim.Instance{Primitive: s, Offset: geom.Vec3{}, Scale: 1})
	}
	root.Build()

	cam := camera.New(geom.Vec3{X: 0, Y: 0, Z: 5}, geom.Vec3{X: 0, Y: 0, Z: 0}, 40, 1)
	return root, cam, nil
}

// InstancedGrid populates an Instancer with n sphere instances laid out on
// a cube-root-sized grid, exercising the >=50-instance octree threshold
// from the primitive instancer. n must be positive.
func InstancedGrid(n int) (*prim.Instancer, *camera.Camera, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("scenebuild: InstancedGrid: n must be positive, got %d", n)
	}

	shared := &prim.Sphere{
		Center:   geom.Vec3{},
		Radius:   0.4,
		Material: material.Lambert{Albedo: geom.Vec3{X: 0.4, Y: 0.6, Z: 0.8}},
	}

	side := 1
	for side*side*side < n {
		side++
	}

	root := &prim.Instancer{}
	spacing := float32(1.5)
	count := 0
	for x := 0; x < side && count < n; x++ {
		for y := 0; y < side && count < n; y++ {
			for z := 0; z < side && count < n; z++ {
				offset := geom.Vec3{
					X: (float32(x) - float32(side-1)/2) * spacing,
					Y: (float32(y) - float32(side-1)/2) * spacing,
					Z: (float32(z) - float32(side-1)/2) * spacing,
				}
				root.Add(&prim.Instance{Primitive: shared, Offset: offset, Scale: 1})
				count++
			}
		}
	}
	root.Build()

	cam := camera.New(geom.Vec3{X: 0, Y: 0, Z: 100}, geom.Vec3{}, 40, 1)
	return root, cam, nil
}
