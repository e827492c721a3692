// Package kernel implements the path-tracing compute kernel: per-pixel ray
// generation, BVH-accelerated intersection, NEE+MIS direct lighting with
// Russian-roulette termination, and the deterministic per-pixel RNG that
// makes a frame's sample sequence reproducible (SPEC_FULL section 4.4).
package kernel

// RNG is a per-invocation pseudo-random stream. Determinism is part of the
// contract: the same (px, py, width, frameIndex) must always produce the
// same sequence of Float32 draws, and the order in which shade.go consumes
// draws within one bounce is load-bearing (it fixes sample sequences).
type RNG struct {
	state uint32
}

// wangHash is the standard 32 bit integer hash used to decorrelate the
// otherwise-sequential per-pixel seeds below.
func wangHash(seed uint32) uint32 {
	seed = (seed ^ 61) ^ (seed >> 16)
	seed *= 9
	seed ^= seed >> 4
	seed *= 0x27d4eb2d
	seed ^= seed >> 15
	return seed
}

// NewRNG seeds a per-pixel RNG from hash(py*width + px + frameIndex*12345),
// per SPEC_FULL section 4.4.
func NewRNG(px, py, width, frameIndex uint32) RNG {
	seed := py*width + px + frameIndex*12345
	state := wangHash(seed)
	if state == 0 {
		// A zero state is a fixed point of xorshift; nudge it so the
		// stream never degenerates to a constant sequence.
		state = 1
	}
	return RNG{state: state}
}

// Float32 advances the generator with an xorshift step and returns a
// uniform value in [0, 1).
func (r *RNG) Float32() float32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return float32(x) / float32(1<<32)
}
