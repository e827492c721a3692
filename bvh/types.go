// Package bvh implements the Surface-Area-Heuristic bounding volume
// hierarchy builder, flattener and debug wireframe generator described in
// SPEC_FULL section 4.2.
package bvh

import "github.com/guymor4/raytracer/types"

// BoundedVolume is implemented by anything the BVH builder can partition:
// a triangle, a mesh instance, or any other bounded item.
type BoundedVolume interface {
	// BBox returns the tight axis-aligned bounding box of the volume.
	BBox() (min, max types.Vec3)
	// Center returns the volume's centroid, used for SAH partitioning.
	Center() types.Vec3
}

// BoundingBox is an axis-aligned box with Min <= Max componentwise. A
// degenerate box (no items) has Min = Max = 0.
type BoundingBox struct {
	Min, Max types.Vec3
}

// Union returns the smallest box containing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		Min: types.MinVec3(b.Min, other.Min),
		Max: types.MaxVec3(b.Max, other.Max),
	}
}

// Extend grows b to also contain the point p.
func (b BoundingBox) Extend(p types.Vec3) BoundingBox {
	return BoundingBox{Min: types.MinVec3(b.Min, p), Max: types.MaxVec3(b.Max, p)}
}

// SurfaceArea returns 2*(w*h + w*d + h*d) over the box's extents.
func (b BoundingBox) SurfaceArea() float32 {
	e := b.Max.Sub(b.Min)
	return 2 * (e[0]*e[1] + e[0]*e[2] + e[1]*e[2])
}

// emptyBox returns a box primed for accumulation via Extend/Union: any real
// box will replace it entirely.
func emptyBox() BoundingBox {
	const inf = float32(3.402823466e+38)
	return BoundingBox{
		Min: types.XYZ(inf, inf, inf),
		Max: types.XYZ(-inf, -inf, -inf),
	}
}

// noChild marks a Node's Left/Right field as having no child, distinguishing
// a leaf from an internal node whose child happens to sit at arena index 0.
const noChild int32 = -1

// Node is a build-time BVH tree node (SPEC_FULL section 3), stored in a
// single arena slice returned by Build; the root is always at index 0.
// Left and Right hold arena indices into that slice rather than pointers,
// so a Node is a fixed-size, self-contained value. A leaf has noChild in
// both and a non-empty TriangleIndices; an internal node has two real
// child indices and an empty TriangleIndices.
type Node struct {
	Box             BoundingBox
	TriangleIndices []uint32
	Left, Right     int32
	Depth           uint32
}

// IsLeaf reports whether n is a leaf node.
func (n Node) IsLeaf() bool {
	return n.Left == noChild && n.Right == noChild
}
