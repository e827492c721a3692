// Package manifest parses the JSON scene manifest described in SPEC_FULL
// section 6: a camera, an explicit sphere/triangle list and an optional list
// of mesh model references with affine transforms.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
)

// Vec3 is the [x,y,z] wire representation used throughout the manifest.
type Vec3 [3]float32

// Camera is the wire representation of SPEC_FULL section 6's camera block.
type Camera struct {
	Position  Vec3    `json:"position"`
	Rotation  Vec3    `json:"rotation"`
	FOV       float32 `json:"fov"`
	NearPlane float32 `json:"nearPlane"`
	FarPlane  float32 `json:"farPlane"`
}

// Material is the wire representation of the shared material fields.
type Material struct {
	Color               Vec3    `json:"color"`
	EmissionColor       Vec3    `json:"emissionColor"`
	EmissionStrength    float32 `json:"emissionStrength"`
	Smoothness          float32 `json:"smoothness"`
	SpecularProbability float32 `json:"specularProbability"`
}

// Sphere is the wire representation of a manifest sphere entry.
type Sphere struct {
	Center Vec3    `json:"center"`
	Radius float32 `json:"radius"`
	Material
}

// Triangle is the wire representation of a manifest triangle entry.
type Triangle struct {
	V0 Vec3 `json:"v0"`
	V1 Vec3 `json:"v1"`
	V2 Vec3 `json:"v2"`
	Material
}

// Model is a reference to an external mesh plus the affine transform and
// material every triangle produced from it inherits.
type Model struct {
	Path     string  `json:"path"`
	Position Vec3    `json:"position"`
	Rotation Vec3    `json:"rotation"`
	Scale    Vec3    `json:"scale"`
	Material
}

// Manifest is the top-level parsed scene manifest.
type Manifest struct {
	Camera    Camera     `json:"camera"`
	Spheres   []Sphere   `json:"spheres"`
	Triangles []Triangle `json:"triangles"`
	Models    []Model    `json:"models"`
}

// Parse decodes a scene manifest from r.
func Parse(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := json.NewDecoder(r)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: parse error: %w", err)
	}
	for i := range m.Models {
		if m.Models[i].Scale == (Vec3{}) {
			m.Models[i].Scale = Vec3{1, 1, 1}
		}
	}
	return &m, nil
}
