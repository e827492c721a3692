package scene

import "github.com/guymor4/raytracer/types"

// Material is embedded in every Sphere and Triangle (SPEC_FULL section 3).
type Material struct {
	Color               types.Vec3
	EmissionColor       types.Vec3
	EmissionStrength    float32
	Smoothness          float32
	SpecularProbability float32
}

// IsEmissive reports whether the material contributes direct light.
func (m Material) IsEmissive() bool {
	return m.EmissionStrength > 0 && m.EmissionColor.MaxComponent() > 0
}
