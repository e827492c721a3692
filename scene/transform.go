package scene

import "github.com/guymor4/raytracer/types"

// ModelMatrix builds a model->world affine transform as
// translate * rotateX * rotateY * rotateZ * scale (applied to a column
// vector), per SPEC_FULL section 4.1. rotationDeg components are in
// degrees.
func ModelMatrix(position, rotationDeg, scale types.Vec3) types.Mat4 {
	t := types.Translate4(position)
	rx := types.RotateX4(degToRad(rotationDeg[0]))
	ry := types.RotateY4(degToRad(rotationDeg[1]))
	rz := types.RotateZ4(degToRad(rotationDeg[2]))
	s := types.Scale4(scale)
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}
