package kernel

import (
	"math"

	"github.com/guymor4/raytracer/scene"
	"github.com/guymor4/raytracer/types"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin, Dir types.Vec3
}

// PointAt returns the point at parameter t along the ray.
func (r Ray) PointAt(t float32) types.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

func degToRad32(deg float32) float32 {
	return deg * float32(math.Pi) / 180
}

// GenerateRay builds the camera ray for pixel (px, py) of a width x height
// frame with a half-pixel jitter, per SPEC_FULL section 4.4.
func GenerateRay(cam *scene.Camera, px, py, width, height uint32, jitter types.Vec2) Ray {
	right, up, forward := cam.Basis()

	u := (float32(px) + 0.5) / float32(width)
	v := (float32(py) + 0.5) / float32(height)
	u += jitter[0] / float32(width)
	v += jitter[1] / float32(height)

	aspect := float32(width) / float32(height)
	nx := (2*u - 1) * aspect
	ny := 1 - 2*v

	fovRad := degToRad32(cam.FOV)
	focalLength := 1 / float32(math.Tan(float64(fovRad)/2))

	dir := right.Mul(nx).Add(up.Mul(ny)).Add(forward.Mul(focalLength)).Normalize()

	return Ray{Origin: cam.Position, Dir: dir}
}
