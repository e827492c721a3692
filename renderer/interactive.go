package renderer

import (
	gl "github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/guymor4/raytracer/bvh"
	"github.com/guymor4/raytracer/gpu"
	"github.com/guymor4/raytracer/types"
	"github.com/guymor4/raytracer/ui"
)

// RunInteractive drives the controller in a GLFW window loop, presenting
// every produced frame and reacting to ui.Controls (SPEC_FULL section 6a):
// changing Scene reloads, ResetRequested zeroes accumulation, and the other
// fields feed straight into Options via SetOptions before the next frame.
func RunInteractive(window *glfw.Window, c *Controller, controls func() ui.Controls, loadScene func(path string) error) error {
	lastScenePath := ""

	for !window.ShouldClose() {
		glfw.PollEvents()

		ctl := controls()
		if ctl.Scene != "" && ctl.Scene != lastScenePath {
			if err := loadScene(ctl.Scene); err != nil {
				logger.Errorf("failed to load scene %q: %v", ctl.Scene, err)
			} else {
				lastScenePath = ctl.Scene
			}
		}

		opts := c.opts
		opts.SamplesPerPixel = ctl.SamplesPerPixel
		opts.EnableDebug = ctl.EnableDebug
		opts.BVHDebugDepth = ctl.BVHDepth
		c.SetOptions(opts)

		if ctl.ResetRequested {
			c.ResetAccumulation()
		}

		frame, err := c.Frame()
		if err != nil {
			return err
		}

		if err := presentFrame(c.device, frame, int(c.opts.FrameW), int(c.opts.FrameH)); err != nil {
			return err
		}

		if c.opts.EnableDebug {
			cam := c.scene.Camera
			aspect := float32(c.opts.FrameW) / float32(c.opts.FrameH)
			viewProj := buildViewProj(cam, cam.Position, cam.FOV, aspect, cam.NearPlane, cam.FarPlane)
			drawWireframe(c.Wireframe(), viewProj)
		}

		window.SwapBuffers()
	}
	return nil
}

func presentFrame(device gpu.Device, frame []types.Vec3, width, height int) error {
	tex := device.CreateTexture(width, height, 3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := frame[y*width+x]
			tex.WritePixel(x, y, []float32{p[0], p[1], p[2]})
		}
	}
	return device.Surface().Present(tex)
}

// drawWireframe loads the view*proj matrix construction given in SPEC_FULL
// section 4.6 into the fixed-function projection stack, then issues raw
// world-space GL_LINES for every wireframe vertex, color-per-vertex.
func drawWireframe(verts []bvh.WireVertex, viewProj types.Mat4) {
	if len(verts) == 0 {
		return
	}

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&viewProj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Begin(gl.LINES)
	for _, v := range verts {
		gl.Color3f(v.Color[0], v.Color[1], v.Color[2])
		gl.Vertex3f(v.Position[0], v.Position[1], v.Position[2])
	}
	gl.End()
}

// buildViewProj composes the camera's view matrix (SPEC_FULL section 4.6's
// right/up/-forward construction) with a standard perspective projection.
func buildViewProj(cam interface {
	Basis() (right, up, forward types.Vec3)
}, position types.Vec3, fovDegrees, aspect, near, far float32) types.Mat4 {
	right, up, forward := cam.Basis()
	view := types.ViewFromBasis(right, up, forward, position)
	proj := types.Perspective4(fovDegrees, aspect, near, far)
	return proj.Mul4(view)
}
