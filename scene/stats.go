package scene

import "fmt"

// SceneStats summarizes a loaded scene for the inspect command
// (SPEC_FULL section 6b), rendered as a table by cmd/scene.go.
type SceneStats struct {
	Spheres            int
	Triangles          int
	EmissivePrimitives int
	CameraPosition     string
	CameraFOV          float32
}

// Stats computes the scene's SceneStats.
func (s *Scene) Stats() SceneStats {
	emissive := 0
	for _, tri := range s.Triangles {
		if tri.IsEmissive() {
			emissive++
		}
	}
	for _, sph := range s.Spheres {
		if sph.IsEmissive() {
			emissive++
		}
	}
	return SceneStats{
		Spheres:            len(s.Spheres),
		Triangles:          len(s.Triangles),
		EmissivePrimitives: emissive,
		CameraPosition:     fmt.Sprintf("%v", s.Camera.Position),
		CameraFOV:          s.Camera.FOV,
	}
}
