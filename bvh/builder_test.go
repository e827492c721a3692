package bvh

import (
	"math"
	"math/rand"
	"testing"

	"github.com/guymor4/raytracer/types"
)

type testTriangle struct {
	v0, v1, v2 types.Vec3
}

func (t testTriangle) BBox() (min, max types.Vec3) {
	min = types.MinVec3(types.MinVec3(t.v0, t.v1), t.v2)
	max = types.MaxVec3(types.MaxVec3(t.v0, t.v1), t.v2)
	return min, max
}

func (t testTriangle) Center() types.Vec3 {
	return t.v0.Add(t.v1).Add(t.v2).Mul(1.0 / 3.0)
}

func containsBox(outer, inner BoundingBox) bool {
	for i := 0; i < 3; i++ {
		if inner.Min[i] < outer.Min[i]-1e-4 || inner.Max[i] > outer.Max[i]+1e-4 {
			return false
		}
	}
	return true
}

func containsPoint(box BoundingBox, p types.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < box.Min[i]-1e-4 || p[i] > box.Max[i]+1e-4 {
			return false
		}
	}
	return true
}

func randomTriangles(n int, seed int64) []BoundedVolume {
	r := rand.New(rand.NewSource(seed))
	randPoint := func() types.Vec3 {
		return types.XYZ(
			r.Float32()*20-10,
			r.Float32()*20-10,
			r.Float32()*20-10,
		)
	}
	items := make([]BoundedVolume, n)
	for i := 0; i < n; i++ {
		base := randPoint()
		items[i] = testTriangle{
			v0: base,
			v1: base.Add(types.XYZ(1, 0, 0)),
			v2: base.Add(types.XYZ(0, 1, 0)),
		}
	}
	return items
}

// verifyCoverage checks the "BVH coverage" invariant: every leaf's box
// contains every vertex of every triangle it references, and every
// internal node's box contains the union of its children's boxes.
func verifyCoverage(t *testing.T, nodes []Node, idx int32, items []BoundedVolume) {
	t.Helper()
	if len(nodes) == 0 {
		return
	}
	n := nodes[idx]
	if n.IsLeaf() {
		for _, triIdx := range n.TriangleIndices {
			min, max := items[triIdx].BBox()
			if !containsPoint(n.Box, min) || !containsPoint(n.Box, max) {
				t.Fatalf("leaf box does not contain triangle %d's bounds", triIdx)
			}
		}
		return
	}
	if !containsBox(n.Box, nodes[n.Left].Box) || !containsBox(n.Box, nodes[n.Right].Box) {
		t.Fatalf("internal node box does not contain both children's boxes")
	}
	verifyCoverage(t, nodes, n.Left, items)
	verifyCoverage(t, nodes, n.Right, items)
}

// verifyConservation checks the "BVH conservation" invariant: the multiset
// union of leaf triangle indices equals {0,...,N-1} exactly once.
func verifyConservation(t *testing.T, nodes []Node, root int32, n int) {
	t.Helper()
	seen := make([]bool, n)
	var walk func(int32)
	walk = func(idx int32) {
		node := nodes[idx]
		if node.IsLeaf() {
			for _, triIdx := range node.TriangleIndices {
				if seen[triIdx] {
					t.Fatalf("triangle %d referenced by more than one leaf", triIdx)
				}
				seen[triIdx] = true
			}
			return
		}
		walk(node.Left)
		walk(node.Right)
	}
	if len(nodes) > 0 {
		walk(root)
	}
	for i, s := range seen {
		if !s {
			t.Fatalf("triangle %d not referenced by any leaf", i)
		}
	}
}

func TestBuildCoverageAndConservation(t *testing.T) {
	items := randomTriangles(200, 1)
	nodes, _ := Build(items)
	verifyCoverage(t, nodes, 0, items)
	verifyConservation(t, nodes, 0, len(items))
}

// TestBuildDepthInvariant checks depth(child) = depth(parent)+1.
func TestBuildDepthInvariant(t *testing.T) {
	items := randomTriangles(64, 2)
	nodes, _ := Build(items)

	var walk func(int32)
	walk = func(idx int32) {
		n := nodes[idx]
		if n.IsLeaf() {
			return
		}
		left, right := nodes[n.Left], nodes[n.Right]
		if left.Depth != n.Depth+1 || right.Depth != n.Depth+1 {
			t.Fatalf("expected children depth = parent depth+1, got parent=%d left=%d right=%d",
				n.Depth, left.Depth, right.Depth)
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(0)
}

// TestBuildDegenerateCentroids builds over identical triangles: every
// triangle shares the same centroid and box, so no SAH split beats the leaf
// cost and the builder must still terminate and cover every triangle
// exactly once.
func TestBuildDegenerateCentroids(t *testing.T) {
	items := make([]BoundedVolume, 16)
	for i := range items {
		items[i] = testTriangle{
			v0: types.XYZ(0, 0, 0),
			v1: types.XYZ(1, 0, 0),
			v2: types.XYZ(0, 1, 0),
		}
	}
	nodes, _ := Build(items)
	verifyCoverage(t, nodes, 0, items)
	verifyConservation(t, nodes, 0, len(items))
}

func TestBuildEmpty(t *testing.T) {
	nodes, stats := Build(nil)
	if len(nodes) != 1 {
		t.Fatalf("expected a single root node even for an empty item list, got %d", len(nodes))
	}
	root := nodes[0]
	if !root.IsLeaf() || len(root.TriangleIndices) != 0 {
		t.Fatalf("expected empty leaf root, got %+v", root)
	}
	if stats.TotalTriangles != 0 {
		t.Fatalf("expected 0 total triangles, got %d", stats.TotalTriangles)
	}
}

// TestBuildThousandTriangles covers SPEC_FULL section 8 scenario 4: 1000
// randomly placed unit triangles in [-10,10]^3.
func TestBuildThousandTriangles(t *testing.T) {
	items := randomTriangles(1000, 42)
	nodes, stats := Build(items)
	verifyCoverage(t, nodes, 0, items)
	verifyConservation(t, nodes, 0, len(items))

	if stats.TotalTriangles != 1000 {
		t.Fatalf("expected 1000 total triangles, got %d", stats.TotalTriangles)
	}
	if stats.TotalNodes > 2*stats.LeafNodes-1 {
		t.Fatalf("expected totalNodes <= 2*leafNodes-1, got total=%d leaves=%d",
			stats.TotalNodes, stats.LeafNodes)
	}
	bound := uint32(math.Ceil(math.Log2(1000))) + 8
	if stats.MaxDepth > bound {
		t.Fatalf("expected maxDepth <= %d, got %d", bound, stats.MaxDepth)
	}
}
