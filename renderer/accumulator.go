package renderer

import "github.com/guymor4/raytracer/types"

// Accumulator implements the progressive running-average blend of section
// 4.5: out = saturate(S*(1-w) + E*w), w = 1/(frameIndex+1). A zero-value
// Accumulator is ready to use.
type Accumulator struct {
	planes []types.Vec3
}

// Blend folds estimate (this frame's per-pixel path-traced mean, E) into
// the stored running average S and returns the new average. On the first
// call after construction or after Reset, S is treated as zero for every
// pixel, matching the "first-frame branch drops the stored value" rule.
func (a *Accumulator) Blend(estimate []types.Vec3, frameIndex uint32) []types.Vec3 {
	if a.planes == nil || len(a.planes) != len(estimate) {
		a.planes = make([]types.Vec3, len(estimate))
	}

	w := 1 / float32(frameIndex+1)
	out := make([]types.Vec3, len(estimate))
	for i, e := range estimate {
		s := types.Vec3{}
		if frameIndex >= 1 {
			s = a.planes[i]
		}
		out[i] = s.Mul(1 - w).Add(e.Mul(w)).Saturate()
		a.planes[i] = out[i]
	}
	return out
}

// Reset drops the stored running-average planes, matching "reset
// accumulation" taking effect once frameIndex is set back to 0 by the
// caller before the next Blend.
func (a *Accumulator) Reset() {
	a.planes = nil
}
