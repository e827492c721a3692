package scene

import (
	"math"

	"github.com/guymor4/raytracer/types"
)

// worldUp is the fixed world-space up vector used to derive the camera
// basis (SPEC_FULL section 4.4).
var worldUp = types.XYZ(0, 1, 0)

// Camera is the scene camera (SPEC_FULL section 3). Rotation is in degrees;
// Rotation[1] is yaw, Rotation[0] is pitch, Rotation[2] (roll) is unused.
type Camera struct {
	Position  types.Vec3
	Rotation  types.Vec3
	FOV       float32
	NearPlane float32
	FarPlane  float32
}

func degToRad(deg float32) float32 {
	return deg * float32(math.Pi) / 180
}

// Forward returns the camera's forward direction:
// R_y(yaw) * R_x(pitch) * (0,0,-1).
func (c Camera) Forward() types.Vec3 {
	yaw := degToRad(c.Rotation[1])
	pitch := degToRad(c.Rotation[0])
	m := types.RotateY4(yaw).Mul4(types.RotateX4(pitch))
	return m.Mul4x1(types.XYZ(0, 0, -1).Vec4(0)).Vec3().Normalize()
}

// Right returns normalize(forward x worldUp).
func (c Camera) Right() types.Vec3 {
	return c.Forward().Cross(worldUp).Normalize()
}

// Up returns right x forward.
func (c Camera) Up() types.Vec3 {
	forward := c.Forward()
	return c.Right().Cross(forward)
}

// Basis returns (right, up, forward) computed from a single Forward() call,
// avoiding the redundant recomputation Right()/Up() would otherwise incur.
func (c Camera) Basis() (right, up, forward types.Vec3) {
	forward = c.Forward()
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}
