package renderer

import (
	"testing"

	"github.com/guymor4/raytracer/gpu"
	"github.com/guymor4/raytracer/scene"
	"github.com/guymor4/raytracer/types"
)

func testScene() *scene.Scene {
	return &scene.Scene{
		Camera: scene.Camera{
			Position:  types.XYZ(0, 0, 5),
			Rotation:  types.XYZ(0, 0, 0),
			FOV:       60,
			NearPlane: 0.1,
			FarPlane:  100,
		},
		Spheres: []scene.Sphere{
			{
				Center: types.XYZ(0, 0, 0),
				Radius: 1,
				Material: scene.Material{
					EmissionColor:    types.XYZ(1, 1, 1),
					EmissionStrength: 4,
				},
			},
		},
		Triangles: []scene.Triangle{
			{
				V0: types.XYZ(-5, -1, -5),
				V1: types.XYZ(5, -1, -5),
				V2: types.XYZ(0, -1, 5),
				Material: scene.Material{
					Color: types.XYZ(0.8, 0.8, 0.8),
				},
			},
		},
	}
}

func newTestController() *Controller {
	device := gpu.NewHeadlessDevice(8, 8)
	opts := Options{FrameW: 8, FrameH: 8, SamplesPerPixel: 1, NumBounces: 2, MinBouncesForRR: 2}
	return NewController(device, opts)
}

func TestControllerFrameWithoutSceneErrors(t *testing.T) {
	c := newTestController()
	if _, err := c.Frame(); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined, got %v", err)
	}
}

func TestControllerFrameWithoutDeviceErrors(t *testing.T) {
	c := NewController(nil, Options{FrameW: 4, FrameH: 4})
	c.LoadScene(testScene())
	if _, err := c.Frame(); err != ErrDeviceNotDefined {
		t.Fatalf("expected ErrDeviceNotDefined, got %v", err)
	}
}

func TestControllerFrameWithUndefinedCameraErrors(t *testing.T) {
	c := newTestController()
	sc := testScene()
	sc.Camera.FOV = 0
	c.LoadScene(sc)
	if _, err := c.Frame(); err != ErrCameraNotDefined {
		t.Fatalf("expected ErrCameraNotDefined, got %v", err)
	}
}

func TestControllerFrameProducesFullPlane(t *testing.T) {
	c := newTestController()
	c.LoadScene(testScene())

	frame, err := c.Frame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frame) != 8*8 {
		t.Fatalf("expected 64 pixels, got %d", len(frame))
	}
}

func TestControllerResetAccumulationZeroesFrameIndex(t *testing.T) {
	c := newTestController()
	c.LoadScene(testScene())

	if _, err := c.Frame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Frame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.frameIndex != 2 {
		t.Fatalf("expected frameIndex=2 after two frames, got %d", c.frameIndex)
	}

	c.ResetAccumulation()
	if c.frameIndex != 0 {
		t.Fatalf("expected frameIndex=0 after reset, got %d", c.frameIndex)
	}
}

func TestControllerStatsReportsIntersectionTests(t *testing.T) {
	c := newTestController()
	c.LoadScene(testScene())

	if _, err := c.Frame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats := c.Stats()
	if stats.FrameIndex != 1 {
		t.Fatalf("expected FrameIndex=1, got %d", stats.FrameIndex)
	}
	if stats.IntersectionTests == 0 {
		t.Fatalf("expected nonzero intersection tests for an 8x8 frame against a scene with geometry")
	}
	if stats.RenderTime <= 0 {
		t.Fatalf("expected nonzero render time")
	}
}

func TestControllerWireframeEmptyBeforeLoadScene(t *testing.T) {
	c := newTestController()
	if got := c.Wireframe(); got != nil {
		t.Fatalf("expected nil wireframe before LoadScene, got %v", got)
	}
}

func TestControllerWireframeAfterLoadScene(t *testing.T) {
	c := newTestController()
	c.SetOptions(Options{FrameW: 8, FrameH: 8, SamplesPerPixel: 1, NumBounces: 2, BVHDebugDepth: 5})
	c.LoadScene(testScene())

	verts := c.Wireframe()
	if len(verts) == 0 {
		t.Fatalf("expected wireframe vertices for a scene with a triangle")
	}
}
