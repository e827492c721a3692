package renderer

import (
	"time"

	"github.com/guymor4/raytracer/bvh"
	"github.com/guymor4/raytracer/gpu"
	"github.com/guymor4/raytracer/kernel"
	"github.com/guymor4/raytracer/log"
	"github.com/guymor4/raytracer/scene"
	"github.com/guymor4/raytracer/types"
)

var logger = log.New("renderer")

// Controller is the single-threaded per-frame driver named in SPEC_FULL
// section 2 ("Controller"). Frame calls a plain Go function to completion
// before returning, which already satisfies section 5's
// compute-then-accumulate ordering requirement without extra
// synchronization.
type Controller struct {
	device gpu.Device
	opts   Options

	scene       *scene.Scene
	flatScene   *kernel.FlatScene
	bvhNodes    []bvh.Node
	accumulator Accumulator
	counters    kernel.Counters

	frameIndex     uint32
	lastRenderTime time.Duration
	testsAtLastTic uint64
}

// NewController wires a device and initial options into a Controller.
// Call LoadScene before the first Frame.
func NewController(device gpu.Device, opts Options) *Controller {
	return &Controller{device: device, opts: opts.Clamp()}
}

// LoadScene replaces the active scene, rebuilding its BVH, and resets
// accumulation (SPEC_FULL section 5, "scene reload tears down and
// recreates scene buffers, BVH buffers, and bind groups; pipelines
// survive").
func (c *Controller) LoadScene(sc *scene.Scene) {
	c.scene = sc
	items := make([]bvh.BoundedVolume, len(sc.Triangles))
	for i, tri := range sc.Triangles {
		items[i] = tri
	}
	arena, stats := bvh.Build(items)
	nodes, triIndices := bvh.Flatten(arena)

	c.bvhNodes = arena
	c.flatScene = &kernel.FlatScene{
		Spheres:         sc.Spheres,
		Triangles:       sc.Triangles,
		Nodes:           nodes,
		TriangleIndices: triIndices,
	}
	c.ResetAccumulation()
	logger.Noticef("scene loaded: %d spheres, %d triangles, bvh nodes=%d leaves=%d maxDepth=%d",
		len(sc.Spheres), len(sc.Triangles), stats.TotalNodes, stats.LeafNodes, stats.MaxDepth)
}

// ResetAccumulation sets frameIndex back to 0 and drops the accumulator's
// stored planes, taking effect on the next Frame call (SPEC_FULL section
// 5's producer-side reset flag).
func (c *Controller) ResetAccumulation() {
	c.frameIndex = 0
	c.accumulator.Reset()
}

// SetOptions replaces the controller's options, re-clamping them.
func (c *Controller) SetOptions(opts Options) {
	c.opts = opts.Clamp()
}

// Frame renders one progressive frame: dispatch the kernel over the
// current scene and blend into the accumulator. It does not present the
// result; it returns the blended pixel plane so callers (the interactive
// loop, or a batch "render --out" command) can present or write it out.
func (c *Controller) Frame() ([]types.Vec3, error) {
	if c.scene == nil {
		return nil, ErrSceneNotDefined
	}
	if c.scene.Camera.FOV <= 0 {
		return nil, ErrCameraNotDefined
	}
	if c.device == nil {
		return nil, ErrDeviceNotDefined
	}

	uniforms := buildUniforms(c.scene.Camera, c.opts, c.frameIndex)

	start := time.Now()
	out := make([]types.Vec3, int(c.opts.FrameW)*int(c.opts.FrameH))
	kernel.Dispatch(c.flatScene, &c.scene.Camera, uniforms, c.opts.NumBounces, c.opts.MinBouncesForRR, out, &c.counters)
	c.lastRenderTime = time.Since(start)

	// Snapshot resets the atomic counter, so this is this frame's count,
	// not a running total.
	c.testsAtLastTic = c.counters.Snapshot()

	blended := c.accumulator.Blend(out, c.frameIndex)
	c.frameIndex++

	return blended, nil
}

// Stats reports the frame just produced.
func (c *Controller) Stats() FrameStats {
	testsPerSecond := float64(0)
	if c.lastRenderTime > 0 {
		testsPerSecond = float64(c.testsAtLastTic) / c.lastRenderTime.Seconds()
	}
	return FrameStats{
		FrameIndex:        c.frameIndex,
		RenderTime:        c.lastRenderTime,
		IntersectionTests: c.testsAtLastTic,
		TestsPerSecond:    testsPerSecond,
	}
}

// Wireframe returns the BVH debug overlay geometry for the current scene at
// the controller's configured debug depth.
func (c *Controller) Wireframe() []bvh.WireVertex {
	if len(c.bvhNodes) == 0 {
		return nil
	}
	return bvh.Wireframe(c.bvhNodes, int(c.opts.BVHDebugDepth))
}
