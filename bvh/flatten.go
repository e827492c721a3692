package bvh

import "github.com/guymor4/raytracer/gpu"

// Flatten converts a builder node arena into the GPU-facing representation,
// per SPEC_FULL section 4.2/4.3. Since arena indices already are flat array
// indices, this is a single pass: node order is preserved (arena index i
// becomes flat index i, root still at 0) and every leaf's TriangleIndices
// are appended into one shared array, addressed by TriangleStart/Count.
func Flatten(nodes []Node) (flat []gpu.FlatNode, triangleIndices []uint32) {
	if len(nodes) == 0 {
		return nil, nil
	}

	flat = make([]gpu.FlatNode, len(nodes))
	triangleIndices = make([]uint32, 0)

	for i, n := range nodes {
		if n.IsLeaf() {
			start := uint32(len(triangleIndices))
			triangleIndices = append(triangleIndices, n.TriangleIndices...)
			flat[i] = gpu.FlatNode{
				Min: n.Box.Min, Max: n.Box.Max,
				IsLeaf: true,
				Slot0:  start,
				Slot1:  uint32(len(n.TriangleIndices)),
			}
			continue
		}
		flat[i] = gpu.FlatNode{
			Min: n.Box.Min, Max: n.Box.Max,
			IsLeaf: false,
			Slot0:  uint32(n.Left),
			Slot1:  uint32(n.Right),
		}
	}

	return flat, triangleIndices
}
