package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/guymor4/raytracer/types"
)

func f32At(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func u32At(buf []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(buf[off:])
}

func TestPackSphereLayout(t *testing.T) {
	buf := make([]byte, SphereSlotSize)
	PackSphere(buf, 0, types.XYZ(1, 2, 3), 4, PackedMaterial{
		Color:               types.XYZ(0.1, 0.2, 0.3),
		EmissionColor:       types.XYZ(0.4, 0.5, 0.6),
		EmissionStrength:    5,
		Smoothness:          0.7,
		SpecularProbability: 0.8,
	})

	if f32At(buf, 0) != 1 || f32At(buf, 4) != 2 || f32At(buf, 8) != 3 {
		t.Fatalf("expected center at offset 0")
	}
	if f32At(buf, 12) != 4 {
		t.Fatalf("expected radius at offset 12")
	}
	if f32At(buf, 16) != 0.1 {
		t.Fatalf("expected color at offset 16")
	}
	if f32At(buf, 28) != 0.7 {
		t.Fatalf("expected smoothness at offset 28")
	}
	if f32At(buf, 32) != 0.4 {
		t.Fatalf("expected emissionColor at offset 32")
	}
	if f32At(buf, 44) != 5 {
		t.Fatalf("expected emissionStrength at offset 44")
	}
	if f32At(buf, 48) != 0.8 {
		t.Fatalf("expected specularProbability at offset 48")
	}
	for i := 52; i < SphereSlotSize; i++ {
		if buf[i] != 0 {
			t.Fatalf("expected padding byte %d to be zero", i)
		}
	}
}

func TestPackTriangleLayout(t *testing.T) {
	buf := make([]byte, TriangleSlotSize)
	PackTriangle(buf, 0, types.XYZ(1, 0, 0), types.XYZ(0, 1, 0), types.XYZ(0, 0, 1), PackedMaterial{
		Color:               types.XYZ(1, 1, 1),
		EmissionColor:       types.XYZ(2, 2, 2),
		EmissionStrength:    3,
		Smoothness:          0.5,
		SpecularProbability: 0.25,
	})

	if f32At(buf, 0) != 1 {
		t.Fatalf("expected v0.x at offset 0")
	}
	if f32At(buf, 20) != 1 {
		t.Fatalf("expected v1.y at offset 20")
	}
	if f32At(buf, 32+8) != 1 {
		t.Fatalf("expected v2.z at offset 40")
	}
	if f32At(buf, 48) != 1 {
		t.Fatalf("expected color at offset 48")
	}
	if f32At(buf, 64) != 2 {
		t.Fatalf("expected emissionColor at offset 64")
	}
	if f32At(buf, 76) != 3 {
		t.Fatalf("expected emissionStrength at offset 76")
	}
	if f32At(buf, 80) != 0.5 {
		t.Fatalf("expected smoothness at offset 80")
	}
	if f32At(buf, 84) != 0.25 {
		t.Fatalf("expected specularProbability at offset 84")
	}
}

func TestPackFlatNodeLayout(t *testing.T) {
	buf := make([]byte, FlatNodeSlotSize)
	PackFlatNode(buf, 0, FlatNode{
		Min: types.XYZ(-1, -2, -3), Max: types.XYZ(1, 2, 3),
		Slot0: 7, Slot1: 9, IsLeaf: true,
	})

	if f32At(buf, 0) != -1 {
		t.Fatalf("expected min at offset 0")
	}
	if f32At(buf, 16) != 1 {
		t.Fatalf("expected max at offset 16")
	}
	if u32At(buf, 28) != 7 {
		t.Fatalf("expected slot0 at offset 28")
	}
	if u32At(buf, 32) != 9 {
		t.Fatalf("expected slot1 at offset 32")
	}
	if u32At(buf, 36) != 1 {
		t.Fatalf("expected isLeaf=1 at offset 36")
	}
}

func TestPackUniformsLayout(t *testing.T) {
	buf := make([]byte, UniformsSize)
	PackUniforms(buf, 0, Uniforms{
		CamPos: types.XYZ(1, 2, 3), CamRot: types.XYZ(10, 20, 0),
		FOV: 60, Near: 0.1, Far: 100,
		FrameIndex: 5, ResW: 800, ResH: 600, Samples: 4, Debug: 0,
	})

	if f32At(buf, 0) != 1 {
		t.Fatalf("expected camPos at offset 0")
	}
	if f32At(buf, 16) != 10 {
		t.Fatalf("expected camRot at offset 16")
	}
	if f32At(buf, 32) != 60 {
		t.Fatalf("expected fov at offset 32")
	}
	if f32At(buf, 36) != 0.1 {
		t.Fatalf("expected near at offset 36")
	}
	if f32At(buf, 40) != 100 {
		t.Fatalf("expected far at offset 40")
	}
	if u32At(buf, 52) != 5 {
		t.Fatalf("expected frameIndex at offset 52")
	}
	if u32At(buf, 60) != 800 {
		t.Fatalf("expected resW at offset 60")
	}
	if u32At(buf, 64) != 600 {
		t.Fatalf("expected resH at offset 64")
	}
	if u32At(buf, 68) != 4 {
		t.Fatalf("expected samples at offset 68")
	}
}

func TestPackAtNonzeroOffset(t *testing.T) {
	buf := make([]byte, 16+SphereSlotSize)
	PackSphere(buf, 16, types.XYZ(9, 9, 9), 1, PackedMaterial{})
	if f32At(buf, 16) != 9 {
		t.Fatalf("expected packing to respect a nonzero base offset")
	}
}
