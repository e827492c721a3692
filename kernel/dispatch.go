package kernel

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/guymor4/raytracer/gpu"
	"github.com/guymor4/raytracer/scene"
	"github.com/guymor4/raytracer/types"
)

// tileSize matches the compute kernel's 8x8 workgroup grid (SPEC_FULL
// section 4.4).
const tileSize = 8

// Dispatch runs one frame of path tracing over the resolution named in
// uniforms, writing the mean of samplesPerPixel paths per pixel into out.
// Work is split into 8x8 tiles distributed across a worker pool sized to
// runtime.GOMAXPROCS(0), standing in for the GPU's massively-parallel
// per-pixel invocations (SPEC_FULL section 5).
func Dispatch(fs *FlatScene, cam *scene.Camera, uniforms gpu.Uniforms, maxBounces, rrStartBounce uint32, out []types.Vec3, counters *Counters) {
	width, height := int(uniforms.ResW), int(uniforms.ResH)
	samples := uniforms.Samples
	if samples == 0 {
		samples = 1
	}

	type tile struct{ x0, y0, x1, y1 int }
	var tiles []tile
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, tile{
				x0: x, y0: y,
				x1: min(x+tileSize, width),
				y1: min(y+tileSize, height),
			})
		}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(tiles) {
		workers = len(tiles)
	}
	if workers < 1 {
		workers = 1
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				idx := int(next.Add(1)) - 1
				if idx >= len(tiles) {
					return
				}
				t := tiles[idx]
				renderTile(fs, cam, uniforms, maxBounces, rrStartBounce, samples, width, height, t.x0, t.y0, t.x1, t.y1, out, counters)
			}
		}()
	}
	wg.Wait()
}

func renderTile(fs *FlatScene, cam *scene.Camera, uniforms gpu.Uniforms, maxBounces, rrStartBounce, samples uint32, width, height, x0, y0, x1, y1 int, out []types.Vec3, counters *Counters) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			rng := NewRNG(uint32(x), uint32(y), uint32(width), uniforms.FrameIndex)

			var sum types.Vec3
			for s := uint32(0); s < samples; s++ {
				jitter := types.XY(rng.Float32()-0.5, rng.Float32()-0.5)
				ray := GenerateRay(cam, uint32(x), uint32(y), uint32(width), uint32(height), jitter)
				sample := TraceSample(fs, ray, &rng, maxBounces, rrStartBounce, counters)
				sum = sum.Add(sample)
			}
			out[y*width+x] = sum.Mul(1 / float32(samples))
		}
	}
}
