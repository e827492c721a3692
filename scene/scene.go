// Package scene holds the world-space scene data model (SPEC_FULL section
// 3) and the loader that produces it from a manifest and its referenced
// meshes (SPEC_FULL section 4.1).
package scene

// Scene is the fully resolved, world-space scene ready for BVH construction
// and GPU upload. Sphere and Triangle order is preserved from the manifest
// (spheres first, then explicit triangles, then model-derived triangles in
// model order) since it is observable through deterministic sampling
// indices (SPEC_FULL section 3).
type Scene struct {
	Camera    Camera
	Spheres   []Sphere
	Triangles []Triangle
}
