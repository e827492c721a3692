package manifest

import (
	"strings"
	"testing"
)

const sampleManifest = `{
	"camera": {"position": [0,0,3], "rotation": [0,0,0], "fov": 60, "nearPlane": 0.1, "farPlane": 100},
	"spheres": [
		{"center": [0,0,0], "radius": 1, "color": [1,1,1], "emissionColor": [1,1,1], "emissionStrength": 5, "smoothness": 0, "specularProbability": 0}
	],
	"triangles": [],
	"models": [
		{"path": "mesh.obj", "position": [1,2,3], "rotation": [0,90,0], "color": [0.5,0.5,0.5], "emissionColor": [0,0,0], "emissionStrength": 0, "smoothness": 0.2, "specularProbability": 0.1}
	]
}`

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(sampleManifest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Camera.FOV != 60 {
		t.Fatalf("expected fov 60, got %v", m.Camera.FOV)
	}
	if len(m.Spheres) != 1 || m.Spheres[0].Radius != 1 {
		t.Fatalf("expected one sphere with radius 1, got %+v", m.Spheres)
	}
	if len(m.Models) != 1 {
		t.Fatalf("expected one model, got %d", len(m.Models))
	}

	// scale defaults to (1,1,1) when omitted
	if m.Models[0].Scale != (Vec3{1, 1, 1}) {
		t.Fatalf("expected default scale (1,1,1), got %v", m.Models[0].Scale)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse(strings.NewReader("not json"))
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
