package bvh

import "github.com/guymor4/raytracer/types"

// WireVertex is one endpoint of a debug-overlay line segment (SPEC_FULL
// section 4.6). Color encodes the enclosing node's depth in the red
// channel; green/blue are left at zero.
type WireVertex struct {
	Position types.Vec3
	Color    types.Vec3
}

// boxEdges enumerates the 12 edges of an axis-aligned box as index pairs
// into its 8 corners, ordered lowest bit = x, then y, then z.
var boxEdges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4},
	{1, 3}, {1, 5},
	{2, 3}, {2, 6},
	{3, 7},
	{4, 5}, {4, 6},
	{5, 7},
	{6, 7},
}

// Wireframe walks the node arena from its root (index 0) and emits 24 line
// endpoints (12 edges) per visited node's box, inflated 1.01x about its
// minimum corner so coincident sibling faces don't z-fight. Descent stops
// once a node's depth reaches maxDepth, so maxDepth values at or above the
// tree's true depth draw every leaf (SPEC_FULL section 6a).
func Wireframe(nodes []Node, maxDepth int) []WireVertex {
	if len(nodes) == 0 {
		return nil
	}

	verts := make([]WireVertex, 0)
	treeMaxDepth := maxDepthOf(nodes)
	if treeMaxDepth == 0 {
		treeMaxDepth = 1
	}

	var walk func(idx int32)
	walk = func(idx int32) {
		n := nodes[idx]
		verts = append(verts, boxWireVerts(n.Box, n.Depth, treeMaxDepth)...)
		if n.IsLeaf() || int(n.Depth) >= maxDepth {
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(0)
	return verts
}

func boxWireVerts(box BoundingBox, depth uint32, treeMaxDepth uint32) []WireVertex {
	const inflate = 1.01
	extent := box.Max.Sub(box.Min).Mul(inflate)
	min := box.Min
	max := min.Add(extent)

	corners := [8]types.Vec3{
		types.XYZ(min[0], min[1], min[2]),
		types.XYZ(max[0], min[1], min[2]),
		types.XYZ(min[0], max[1], min[2]),
		types.XYZ(max[0], max[1], min[2]),
		types.XYZ(min[0], min[1], max[2]),
		types.XYZ(max[0], min[1], max[2]),
		types.XYZ(min[0], max[1], max[2]),
		types.XYZ(max[0], max[1], max[2]),
	}

	red := float32(depth) / float32(treeMaxDepth)
	color := types.XYZ(red, 0, 0)

	verts := make([]WireVertex, 0, len(boxEdges)*2)
	for _, edge := range boxEdges {
		verts = append(verts,
			WireVertex{Position: corners[edge[0]], Color: color},
			WireVertex{Position: corners[edge[1]], Color: color},
		)
	}
	return verts
}

// maxDepthOf returns the deepest Depth value in nodes. Every internal
// node's depth is strictly less than at least one of its descendant
// leaves', so the maximum over all nodes equals the maximum over leaves
// alone; scanning the whole arena avoids a separate tree walk.
func maxDepthOf(nodes []Node) uint32 {
	max := uint32(0)
	for _, n := range nodes {
		if n.Depth > max {
			max = n.Depth
		}
	}
	return max
}
