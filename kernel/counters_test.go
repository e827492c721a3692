package kernel

import "testing"

func TestCountersSnapshotResets(t *testing.T) {
	var c Counters
	c.IntersectionTests.Add(5)
	c.IntersectionTests.Add(3)

	if got := c.Snapshot(); got != 8 {
		t.Fatalf("expected snapshot to return accumulated count 8, got %d", got)
	}
	if got := c.Snapshot(); got != 0 {
		t.Fatalf("expected snapshot to reset the counter, got %d", got)
	}
}
