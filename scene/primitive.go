package scene

import "github.com/guymor4/raytracer/types"

// Sphere is a scene sphere primitive (SPEC_FULL section 3). Radius must be
// strictly positive.
type Sphere struct {
	Center types.Vec3
	Radius float32
	Material
}

// Triangle is a world-space scene triangle (SPEC_FULL section 3). Winding is
// counter-clockwise for the outward-facing normal.
type Triangle struct {
	V0, V1, V2 types.Vec3
	Material
}

// Normal returns the outward-facing triangle normal, computed as
// normalize((v1-v0) x (v2-v0)).
func (t Triangle) Normal() types.Vec3 {
	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)
	return e1.Cross(e2).Normalize()
}

// Centroid returns the arithmetic mean of the triangle's three vertices.
func (t Triangle) Centroid() types.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Mul(1.0 / 3.0)
}

// Area returns the triangle's surface area.
func (t Triangle) Area() float32 {
	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)
	return e1.Cross(e2).Len() * 0.5
}

// BBox returns the tight axis-aligned bounding box of the triangle's
// vertices, implementing bvh.BoundedVolume.
func (t Triangle) BBox() (min, max types.Vec3) {
	min = types.MinVec3(types.MinVec3(t.V0, t.V1), t.V2)
	max = types.MaxVec3(types.MaxVec3(t.V0, t.V1), t.V2)
	return min, max
}

// Center returns the triangle's centroid, implementing bvh.BoundedVolume.
func (t Triangle) Center() types.Vec3 {
	return t.Centroid()
}
