// Package gpu defines the byte-exact resource layout the kernel reads and
// the minimal device/surface/buffer/texture/pipeline abstraction that
// stands in for a windowing and GPU-context collaborator (SPEC_FULL
// section 4.3).
package gpu

import (
	"encoding/binary"
	"math"

	"github.com/guymor4/raytracer/types"
)

// SphereSlotSize is the byte size of one packed Sphere slot.
const SphereSlotSize = 64

// TriangleSlotSize is the byte size of one packed Triangle slot.
const TriangleSlotSize = 96

// FlatNodeSlotSize is the byte size of one packed FlatNode slot.
const FlatNodeSlotSize = 48

// UniformsSize is the byte size of the packed Uniforms block.
const UniformsSize = 80

// FlatNode is the GPU-facing flattened BVH node (SPEC_FULL section 3, 4.2).
// Slot0/Slot1 are LeftChildIndex/RightChildIndex when IsLeaf is false, or
// TriangleStart/TriangleCount when IsLeaf is true.
type FlatNode struct {
	Min, Max     types.Vec3
	Slot0, Slot1 uint32
	IsLeaf       bool
}

// Uniforms is the per-frame uniform block written once per frame by the
// host (SPEC_FULL section 4.3).
type Uniforms struct {
	CamPos     types.Vec3
	CamRot     types.Vec3
	FOV        float32
	Near       float32
	Far        float32
	FrameIndex uint32
	ResW       uint32
	ResH       uint32
	Samples    uint32
	Debug      uint32
}

func putFloat32(buf []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
}

func putVec3(buf []byte, off int, v types.Vec3) {
	putFloat32(buf, off, v[0])
	putFloat32(buf, off+4, v[1])
	putFloat32(buf, off+4+4, v[2])
}

func putUint32(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:], v)
}

// PackedMaterial captures the plain-data fields shared by scene.Sphere and
// scene.Triangle material blocks so the packers below don't need to import
// the scene package themselves.
type PackedMaterial struct {
	Color               types.Vec3
	EmissionColor       types.Vec3
	EmissionStrength    float32
	Smoothness          float32
	SpecularProbability float32
}

// PackSphere writes a 64 byte Sphere slot into buf at off, per SPEC_FULL
// section 4.3: center(12), radius(4), color(12), smoothness(4),
// emissionColor(12), emissionStrength(4), specularProbability(4), padding(12).
func PackSphere(buf []byte, off int, center types.Vec3, radius float32, mat PackedMaterial) {
	_ = buf[off+SphereSlotSize-1]
	putVec3(buf, off+0, center)
	putFloat32(buf, off+12, radius)
	putVec3(buf, off+16, mat.Color)
	putFloat32(buf, off+28, mat.Smoothness)
	putVec3(buf, off+32, mat.EmissionColor)
	putFloat32(buf, off+44, mat.EmissionStrength)
	putFloat32(buf, off+48, mat.SpecularProbability)
	// bytes [52,64) are padding, left zero.
}

// PackTriangle writes a 96 byte Triangle slot into buf at off, per
// SPEC_FULL section 4.3: v0(12)+pad(4), v1(12)+pad(4), v2(12)+pad(4),
// color(12)+pad(4), emissionColor(12), emissionStrength(4), smoothness(4),
// specularProbability(4), pad(8).
func PackTriangle(buf []byte, off int, v0, v1, v2 types.Vec3, mat PackedMaterial) {
	_ = buf[off+TriangleSlotSize-1]
	putVec3(buf, off+0, v0)
	putVec3(buf, off+16, v1)
	putVec3(buf, off+32, v2)
	putVec3(buf, off+48, mat.Color)
	putVec3(buf, off+64, mat.EmissionColor)
	putFloat32(buf, off+76, mat.EmissionStrength)
	putFloat32(buf, off+80, mat.Smoothness)
	putFloat32(buf, off+84, mat.SpecularProbability)
	// bytes [88,96) are padding, left zero.
}

// PackFlatNode writes a 48 byte FlatNode slot into buf at off, per
// SPEC_FULL section 4.3: minBounds(12)+pad(4), maxBounds(12), slot0(4),
// slot1(4), isLeaf(4), pad(8).
func PackFlatNode(buf []byte, off int, n FlatNode) {
	_ = buf[off+FlatNodeSlotSize-1]
	putVec3(buf, off+0, n.Min)
	putVec3(buf, off+16, n.Max)
	putUint32(buf, off+28, n.Slot0)
	putUint32(buf, off+32, n.Slot1)
	isLeaf := uint32(0)
	if n.IsLeaf {
		isLeaf = 1
	}
	putUint32(buf, off+36, isLeaf)
	// bytes [40,48) are padding, left zero.
}

// PackUniforms writes an 80 byte Uniforms block into buf at off, per
// SPEC_FULL section 4.3: camPos(12)+pad(4), camRot(12)+pad(4), fov(4),
// near(4), far(4), pad(8), frameIndex(4), pad(4), resW(4), resH(4),
// samples(4), debug(4).
func PackUniforms(buf []byte, off int, u Uniforms) {
	_ = buf[off+UniformsSize-1]
	putVec3(buf, off+0, u.CamPos)
	putVec3(buf, off+16, u.CamRot)
	putFloat32(buf, off+32, u.FOV)
	putFloat32(buf, off+36, u.Near)
	putFloat32(buf, off+40, u.Far)
	putUint32(buf, off+52, u.FrameIndex)
	putUint32(buf, off+60, u.ResW)
	putUint32(buf, off+64, u.ResH)
	putUint32(buf, off+68, u.Samples)
	putUint32(buf, off+72, u.Debug)
}
