// Package renderer drives the per-frame sequence: dispatch the kernel,
// blend the result into the progressive accumulator, optionally draw the
// BVH debug wireframe, and present the frame (SPEC_FULL sections 4.5, 4.6,
// 5, 6).
package renderer

// Options is the configuration surface populated from CLI flags in
// cmd/render.go (SPEC_FULL section 3a).
type Options struct {
	FrameW, FrameH uint32

	// SamplesPerPixel is clamped to [1,16] by Clamp.
	SamplesPerPixel uint32

	// NumBounces is the per-path bounce budget (default 6 when 0).
	NumBounces uint32

	// MinBouncesForRR is the bounce index from which Russian roulette is
	// considered.
	MinBouncesForRR uint32

	// BVHDebugDepth is clamped to >=0 by Clamp; values at or above the
	// tree's true depth draw every leaf.
	BVHDebugDepth uint32

	// EnableDebug toggles the wireframe overlay pass.
	EnableDebug bool
}

// Clamp applies the bounds named in SPEC_FULL section 6a and returns the
// adjusted options.
func (o Options) Clamp() Options {
	if o.SamplesPerPixel < 1 {
		o.SamplesPerPixel = 1
	}
	if o.SamplesPerPixel > 16 {
		o.SamplesPerPixel = 16
	}
	if o.NumBounces == 0 {
		o.NumBounces = 6
	}
	return o
}
