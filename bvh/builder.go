package bvh

import (
	"sort"

	"github.com/guymor4/raytracer/types"
)

// costIntersect is the assumed relative cost of intersecting one triangle,
// used when deciding whether a split is worth the two extra box tests it
// costs a traversal to reach two children instead of one leaf.
const costIntersect = 1.0

// costTraversal is the assumed relative cost of descending into an internal
// node (one extra AABB test).
const costTraversal = 1.0

// Stats summarizes a built tree, matching SPEC_FULL section 8's scenario 4.
type Stats struct {
	TotalNodes     int
	LeafNodes      int
	TotalTriangles int
	MaxDepth       uint32
}

// primInfo is the builder's working record for one input item: its
// original index into the caller's slice, its bounding box and its
// centroid. Only primInfo values are sorted/partitioned; the original
// items slice is never reordered.
type primInfo struct {
	index    uint32
	box      BoundingBox
	centroid types.Vec3
}

// builder owns the node arena under construction. A node is appended to
// nodes and its index reserved before its children are built, so the
// first node ever appended — the root — always ends up at index 0.
type builder struct {
	nodes []Node
	stats Stats
}

// Build constructs a Surface-Area-Heuristic binary tree over items, per
// SPEC_FULL section 4.2, returning the resulting node arena (root at index
// 0) and summary stats. The returned leaves reference items by their
// original index (position in the items slice), so triangleIndices values
// are stable regardless of how the builder partitions internally.
func Build(items []BoundedVolume) ([]Node, Stats) {
	prims := make([]primInfo, len(items))
	for i, it := range items {
		min, max := it.BBox()
		prims[i] = primInfo{
			index:    uint32(i),
			box:      BoundingBox{Min: min, Max: max},
			centroid: it.Center(),
		}
	}

	b := &builder{nodes: make([]Node, 0, 2*len(prims)+1)}
	b.partition(prims, 0)
	return b.nodes, b.stats
}

// partition appends the node for prims to the arena and returns its index.
// For an internal node, the index is reserved (via the append below) before
// the recursive calls run, so Left/Right can be backfilled with the real
// child indices once they're known.
func (b *builder) partition(prims []primInfo, depth uint32) int32 {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}
	box := boxOf(prims)

	if len(prims) <= 1 {
		return b.appendLeaf(prims, box, depth)
	}

	axis, splitAt, cost := bestSplit(prims)

	leafCost := costIntersect * float32(len(prims))
	if cost >= leafCost {
		return b.appendLeaf(prims, box, depth)
	}

	sortByAxis(prims, axis)
	left := prims[:splitAt]
	right := prims[splitAt:]

	// When no axis yields a valid split (the union box has zero surface
	// area), bestSplit reports splitAt 0 and one side comes out empty; that
	// degenerate partition falls back to a median split so the recursion
	// always makes progress.
	if len(left) == 0 || len(right) == 0 {
		mid := len(prims) / 2
		left, right = prims[:mid], prims[mid:]
	}

	nodeIndex := int32(len(b.nodes))
	b.nodes = append(b.nodes, Node{Box: box, Left: noChild, Right: noChild, Depth: depth})
	b.stats.TotalNodes++

	leftIndex := b.partition(left, depth+1)
	rightIndex := b.partition(right, depth+1)
	b.nodes[nodeIndex].Left = leftIndex
	b.nodes[nodeIndex].Right = rightIndex

	return nodeIndex
}

func (b *builder) appendLeaf(prims []primInfo, box BoundingBox, depth uint32) int32 {
	indices := make([]uint32, len(prims))
	for i, p := range prims {
		indices[i] = p.index
	}
	idx := int32(len(b.nodes))
	b.nodes = append(b.nodes, Node{Box: box, TriangleIndices: indices, Left: noChild, Right: noChild, Depth: depth})
	b.stats.TotalNodes++
	b.stats.LeafNodes++
	b.stats.TotalTriangles += len(indices)
	return idx
}

func boxOf(prims []primInfo) BoundingBox {
	if len(prims) == 0 {
		return BoundingBox{}
	}
	box := emptyBox()
	for _, p := range prims {
		box = box.Union(p.box)
	}
	return box
}

// axisScore is one axis's exact SAH optimum found by scoreAxis: the split
// index (into prims sorted along that axis) with the lowest cost, or
// valid=false if the axis's centroids are degenerate (zero parent area).
type axisScore struct {
	axis    int
	splitAt int
	cost    float32
	valid   bool
}

// bestSplit searches for the cheapest SAH split across all three axes,
// scoring each axis concurrently in its own goroutine and reducing the
// three results to the global minimum-cost candidate.
func bestSplit(prims []primInfo) (axis int, splitAt int, cost float32) {
	scores := make(chan axisScore, 3)
	for a := 0; a < 3; a++ {
		go func(axis int) {
			scores <- scoreAxis(prims, axis)
		}(a)
	}

	best := axisScore{cost: -1}
	for i := 0; i < 3; i++ {
		s := <-scores
		if !s.valid {
			continue
		}
		if best.cost < 0 || s.cost < best.cost {
			best = s
		}
	}
	return best.axis, best.splitAt, best.cost
}

// scoreAxis evaluates the SAH cost of every split position along axis,
// over a private sorted copy of prims, using prefix/suffix surface-area
// sums so each candidate split is scored in O(1) after the sort.
func scoreAxis(prims []primInfo, axis int) axisScore {
	work := make([]primInfo, len(prims))
	copy(work, prims)
	sortByAxis(work, axis)

	n := len(work)
	prefixArea := make([]float32, n+1)
	suffixArea := make([]float32, n+1)

	acc := emptyBox()
	for i := 0; i < n; i++ {
		acc = acc.Union(work[i].box)
		prefixArea[i+1] = acc.SurfaceArea()
	}
	acc = emptyBox()
	for i := n - 1; i >= 0; i-- {
		acc = acc.Union(work[i].box)
		suffixArea[i] = acc.SurfaceArea()
	}

	parentArea := prefixArea[n]
	if parentArea <= 0 {
		// Degenerate (zero-volume) parent box: report no valid split so the
		// caller falls back to another axis, or to the leaf-cost comparison.
		return axisScore{}
	}

	best := axisScore{axis: axis, cost: -1}
	for i := 1; i < n; i++ {
		leftCount := float32(i)
		rightCount := float32(n - i)
		c := costTraversal + costIntersect*(leftCount*prefixArea[i]+rightCount*suffixArea[i])/parentArea
		if best.cost < 0 || c < best.cost {
			best.cost = c
			best.splitAt = i
		}
	}
	best.valid = best.cost >= 0
	return best
}

func sortByAxis(prims []primInfo, axis int) {
	sort.Slice(prims, func(i, j int) bool {
		return prims[i].centroid[axis] < prims[j].centroid[axis]
	})
}
