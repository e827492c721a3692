package types

import "math"

// Mat4 is a column-major 4x4 matrix, stored as 16 consecutive floats
// (columns concatenated) to match the layout GPU uniform blocks expect.
type Mat4 [16]float32

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate4 returns a translation matrix.
func Translate4(t Vec3) Mat4 {
	m := Ident4()
	m[12], m[13], m[14] = t[0], t[1], t[2]
	return m
}

// Scale4 returns a non-uniform scale matrix.
func Scale4(s Vec3) Mat4 {
	m := Ident4()
	m[0], m[5], m[10] = s[0], s[1], s[2]
	return m
}

// RotateX4 returns a rotation matrix around the X axis, angle in radians.
func RotateX4(angle float32) Mat4 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	m := Ident4()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotateY4 returns a rotation matrix around the Y axis, angle in radians.
func RotateY4(angle float32) Mat4 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	m := Ident4()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// RotateZ4 returns a rotation matrix around the Z axis, angle in radians.
func RotateZ4(angle float32) Mat4 {
	s, c := float32(math.Sin(float64(angle))), float32(math.Cos(float64(angle)))
	m := Ident4()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Mul4 returns m*other (applies other first, then m, to a column vector).
func (m Mat4) Mul4(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Mul4x1 transforms a Vec4 by m.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// MulPoint transforms a point (w=1) by m and returns its Vec3.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return m.Mul4x1(v.Vec4(1)).Vec3()
}

// Perspective4 returns a right-handed perspective projection matrix.
// fovYDegrees is the vertical field of view in degrees.
func Perspective4(fovYDegrees, aspect, near, far float32) Mat4 {
	fovY := fovYDegrees * math.Pi / 180
	f := float32(1.0 / math.Tan(float64(fovY)/2))
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = (2 * far * near) / (near - far)
	return m
}

// ViewFromBasis builds a view matrix from an orthonormal right/up/forward
// basis and an eye position, per SPEC_FULL section 4.6:
//
//	[[right.x, up.x, -fwd.x, 0],
//	 [right.y, up.y, -fwd.y, 0],
//	 [right.z, up.z, -fwd.z, 0],
//	 [-right.pos, -up.pos, fwd.pos, 1]]
func ViewFromBasis(right, up, forward, position Vec3) Mat4 {
	return Mat4{
		right[0], up[0], -forward[0], 0,
		right[1], up[1], -forward[1], 0,
		right[2], up[2], -forward[2], 0,
		-right.Dot(position), -up.Dot(position), forward.Dot(position), 1,
	}
}

