package kernel

import (
	"math"

	"github.com/guymor4/raytracer/gpu"
	"github.com/guymor4/raytracer/log"
	"github.com/guymor4/raytracer/scene"
	"github.com/guymor4/raytracer/types"
)

var logger = log.New("kernel")

// stackSize is the fixed BVH traversal stack depth. Overflow is clamped:
// the corresponding subtree is skipped, with a logged warning, rather than
// growing the stack (SPEC_FULL section 4.4).
const stackSize = 64

// hitEpsilon is the minimum positive t a triangle hit must exceed.
const hitEpsilon = 0.001

// sphereEpsilon is the minimum positive root a sphere hit must exceed.
const sphereEpsilon = 0.01

// Hit describes the closest ray-scene intersection found by Intersect.
type Hit struct {
	T                   float32
	Point               types.Vec3
	Normal              types.Vec3
	Color               types.Vec3
	EmissionColor       types.Vec3
	EmissionStrength    float32
	Smoothness          float32
	SpecularProbability float32
}

func materialHit(t float32, point, normal types.Vec3, mat scene.Material) Hit {
	return Hit{
		T:                   t,
		Point:               point,
		Normal:              normal,
		Color:               mat.Color,
		EmissionColor:       mat.EmissionColor,
		EmissionStrength:    mat.EmissionStrength,
		Smoothness:          mat.Smoothness,
		SpecularProbability: mat.SpecularProbability,
	}
}

// intersectTriangle implements Möller–Trumbore with back-face culling:
// dot(normal, ray.dir) > 0 misses.
func intersectTriangle(ray Ray, tri scene.Triangle) (Hit, bool) {
	normal := tri.Normal()
	if normal.Dot(ray.Dir) > 0 {
		return Hit{}, false
	}

	const epsilon = 1e-7
	e1 := tri.V1.Sub(tri.V0)
	e2 := tri.V2.Sub(tri.V0)
	pvec := ray.Dir.Cross(e2)
	det := e1.Dot(pvec)
	if det > -epsilon && det < epsilon {
		return Hit{}, false
	}
	invDet := 1 / det

	tvec := ray.Origin.Sub(tri.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	qvec := tvec.Cross(e1)
	v := ray.Dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	t := e2.Dot(qvec) * invDet
	if t <= hitEpsilon {
		return Hit{}, false
	}

	point := ray.PointAt(t)
	return materialHit(t, point, normal, tri.Material), true
}

// intersectSphere tests both quadratic roots and keeps the smaller root
// above sphereEpsilon.
//
// Preserved behavior: in the second-root branch (the smaller root t1 is
// not usable but the larger root t2 is), the hit point and normal are built
// from t1 rather than t2, while T itself is t2. This is a known discrepancy
// in the reference kernel and is intentionally not corrected here;
// TestIntersectSphere_SecondRootBug documents it.
func intersectSphere(ray Ray, sphere scene.Sphere) (Hit, bool) {
	oc := ray.Origin.Sub(sphere.Center)
	a := ray.Dir.Dot(ray.Dir)
	b := 2 * oc.Dot(ray.Dir)
	c := oc.Dot(oc) - sphere.Radius*sphere.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return Hit{}, false
	}
	sqrtDisc := float32(math.Sqrt(float64(disc)))
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	var chosenT float32
	switch {
	case t1 > sphereEpsilon:
		chosenT = t1
	case t2 > sphereEpsilon:
		chosenT = t2
	default:
		return Hit{}, false
	}

	point := ray.PointAt(t1)
	normal := point.Sub(sphere.Center).Normalize()
	return materialHit(chosenT, point, normal, sphere.Material), true
}

// slabIntersect returns whether ray hits the box, per the standard slab
// test with a near-plane clamp at 0.
func slabIntersect(box gpu.FlatNode, ray Ray) bool {
	tMin := float32(0)
	tMax := float32(math.MaxFloat32)

	for i := 0; i < 3; i++ {
		invD := 1 / ray.Dir[i]
		t0 := (box.Min[i] - ray.Origin[i]) * invD
		t1 := (box.Max[i] - ray.Origin[i]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Intersect walks the BVH with a fixed-size stack, tests triangles in the
// hit leaves via Möller–Trumbore, linearly scans spheres outside the BVH,
// and keeps the closer of the two hit sets (SPEC_FULL section 4.4).
func Intersect(fs *FlatScene, ray Ray) (Hit, bool) {
	var best Hit
	found := false

	if len(fs.Nodes) > 0 {
		var stack [stackSize]uint32
		sp := 0
		stack[sp] = 0
		sp++

		for sp > 0 {
			sp--
			nodeIdx := stack[sp]
			node := fs.Nodes[nodeIdx]

			if !slabIntersect(node, ray) {
				continue
			}

			if node.IsLeaf {
				for i := uint32(0); i < node.Slot1; i++ {
					triIdx := fs.TriangleIndices[node.Slot0+i]
					if hit, ok := intersectTriangle(ray, fs.Triangles[triIdx]); ok {
						if !found || hit.T < best.T {
							best = hit
							found = true
						}
					}
				}
				continue
			}

			left, right := node.Slot0, node.Slot1
			if sp+2 > stackSize {
				logger.Warningf("bvh traversal stack overflow, skipping subtree")
				continue
			}
			// Push right then left so left is processed first.
			stack[sp] = right
			sp++
			stack[sp] = left
			sp++
		}
	}

	for _, sph := range fs.Spheres {
		if hit, ok := intersectSphere(ray, sph); ok {
			if !found || hit.T < best.T {
				best = hit
				found = true
			}
		}
	}

	return best, found
}
