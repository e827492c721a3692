package scene

import (
	"testing"

	"github.com/guymor4/raytracer/types"
)

func vecClose(a, b types.Vec3, eps float32) bool {
	d := a.Sub(b)
	return d.Len() < eps
}

func TestCameraForwardDefault(t *testing.T) {
	c := Camera{}
	f := c.Forward()
	if !vecClose(f, types.XYZ(0, 0, -1), 1e-5) {
		t.Fatalf("expected default forward (0,0,-1), got %v", f)
	}
}

// TestCameraForwardYawOnly90 covers SPEC_FULL section 8 scenario 6: a 90
// degree yaw rotation changes forward from (0,0,-1) to (-1,0,0).
func TestCameraForwardYawOnly90(t *testing.T) {
	c := Camera{Rotation: types.XYZ(0, 90, 0)}
	f := c.Forward()
	if !vecClose(f, types.XYZ(-1, 0, 0), 1e-5) {
		t.Fatalf("expected forward (-1,0,0) after 90deg yaw, got %v", f)
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	c := Camera{Rotation: types.XYZ(15, 42, 0)}
	right, up, forward := c.Basis()

	for _, v := range []types.Vec3{right, up, forward} {
		if l := v.Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("expected unit-length basis vector, got length %v", l)
		}
	}
	if d := right.Dot(up); d > 1e-4 || d < -1e-4 {
		t.Fatalf("expected right/up orthogonal, dot=%v", d)
	}
	if d := right.Dot(forward); d > 1e-4 || d < -1e-4 {
		t.Fatalf("expected right/forward orthogonal, dot=%v", d)
	}
}
