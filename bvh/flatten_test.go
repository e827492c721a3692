package bvh

import "testing"

// TestFlattenRoundTrip checks that flattening preserves the tree's shape
// and every triangle's membership: walking the flat array from index 0
// following Slot0/Slot1 for internal nodes reaches the same triangle
// indices, in the same grouping, as the recursive tree.
func TestFlattenRoundTrip(t *testing.T) {
	items := randomTriangles(300, 7)
	arena, stats := Build(items)

	nodes, triIndices := Flatten(arena)
	if len(nodes) != stats.TotalNodes {
		t.Fatalf("expected %d flat nodes, got %d", stats.TotalNodes, len(nodes))
	}
	if len(triIndices) != stats.TotalTriangles {
		t.Fatalf("expected %d flat triangle indices, got %d", stats.TotalTriangles, len(triIndices))
	}

	seen := make([]bool, len(items))
	var walk func(idx uint32)
	walk = func(idx uint32) {
		n := nodes[idx]
		if n.IsLeaf {
			for i := uint32(0); i < n.Slot1; i++ {
				triIdx := triIndices[n.Slot0+i]
				if seen[triIdx] {
					t.Fatalf("triangle %d visited by more than one flat leaf", triIdx)
				}
				seen[triIdx] = true
			}
			return
		}
		walk(n.Slot0)
		walk(n.Slot1)
	}
	if len(nodes) > 0 {
		walk(0)
	}

	for i, s := range seen {
		if !s {
			t.Fatalf("triangle %d not reached from flat root", i)
		}
	}
}

func TestFlattenEmpty(t *testing.T) {
	nodes, tris := Flatten(nil)
	if nodes != nil || tris != nil {
		t.Fatalf("expected nil slices for an empty arena, got nodes=%v tris=%v", nodes, tris)
	}
}

func TestFlattenRootAtIndexZero(t *testing.T) {
	items := randomTriangles(3, 9)
	arena, _ := Build(items)
	nodes, tris := Flatten(arena)
	if len(nodes) == 0 {
		t.Fatal("expected at least one flat node")
	}
	if nodes[0].Min != arena[0].Box.Min || nodes[0].Max != arena[0].Box.Max {
		t.Fatalf("expected root at flat index 0 with matching box")
	}
	_ = tris
}
