package kernel

import "sync/atomic"

// Counters mirrors the GPU kernel's atomically-incremented performance
// counter buffer (SPEC_FULL section 4.4). renderer.Controller reads and
// resets them after every frame, not once per second, and reports
// throughput as that frame's count divided by its render time.
type Counters struct {
	IntersectionTests atomic.Uint64
}

// Snapshot returns the current counter value and resets it to zero.
func (c *Counters) Snapshot() (intersectionTests uint64) {
	return c.IntersectionTests.Swap(0)
}
