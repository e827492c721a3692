package kernel

import (
	"github.com/guymor4/raytracer/bvh"
	"github.com/guymor4/raytracer/gpu"
	"github.com/guymor4/raytracer/scene"
)

// FlatScene is the device-facing scene: a flattened BVH over the scene's
// triangles plus the sphere list, tested outside the BVH by linear scan
// (SPEC_FULL section 4.4).
type FlatScene struct {
	Spheres         []scene.Sphere
	Triangles       []scene.Triangle
	Nodes           []gpu.FlatNode
	TriangleIndices []uint32
}

// BuildFlatScene runs the SAH BVH builder over sc's triangles and flattens
// the result, producing the scene representation the kernel traverses.
func BuildFlatScene(sc *scene.Scene) *FlatScene {
	items := make([]bvh.BoundedVolume, len(sc.Triangles))
	for i, tri := range sc.Triangles {
		items[i] = tri
	}
	arena, _ := bvh.Build(items)
	nodes, triIndices := bvh.Flatten(arena)

	return &FlatScene{
		Spheres:         sc.Spheres,
		Triangles:       sc.Triangles,
		Nodes:           nodes,
		TriangleIndices: triIndices,
	}
}
