package renderer

import (
	"github.com/guymor4/raytracer/gpu"
	"github.com/guymor4/raytracer/scene"
)

// buildUniforms packs the per-frame uniform block from the current camera,
// options and frame index (SPEC_FULL section 4.3).
func buildUniforms(cam scene.Camera, opts Options, frameIndex uint32) gpu.Uniforms {
	debug := uint32(0)
	if opts.EnableDebug {
		debug = 1
	}
	return gpu.Uniforms{
		CamPos:     cam.Position,
		CamRot:     cam.Rotation,
		FOV:        cam.FOV,
		Near:       cam.NearPlane,
		Far:        cam.FarPlane,
		FrameIndex: frameIndex,
		ResW:       opts.FrameW,
		ResH:       opts.FrameH,
		Samples:    opts.SamplesPerPixel,
		Debug:      debug,
	}
}
