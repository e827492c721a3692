package renderer

import "time"

// FrameStats summarizes one produced frame, logged by cmd/render.go's
// displayFrameStats.
type FrameStats struct {
	FrameIndex        uint32
	RenderTime        time.Duration
	IntersectionTests uint64
	TestsPerSecond    float64
}
