package kernel

import (
	"math"

	"github.com/guymor4/raytracer/types"
)

// sky is the miss color, per SPEC_FULL section 4.4.
var sky = types.XYZ(1, 1, 1).Mul(0.4)

// maxBounceCount is the default per-path bounce budget; renderer.Options
// may override it.
const maxBounceCount = 6

// defaultRRStartBounce is the bounce index (0-based) from which Russian
// roulette termination is considered.
const defaultRRStartBounce = 3

// pdfLightEstimate is a fixed stand-in for the true light-sampling pdf used
// when weighting a BRDF-sampled emissive hit via MIS.
//
// Preserved behavior: the correct weight would use the actual pdf of
// having sampled this light via NEE from the previous shading point, but
// the reference kernel substitutes this constant instead, biasing the
// result toward BRDF sampling. TestTraceSample_FixedLightPdfEstimateBug
// documents this.
const pdfLightEstimate = 0.001

func powerHeuristic(a, b float32) float32 {
	a2 := a * a
	b2 := b * b
	if a2+b2 == 0 {
		return 0
	}
	return a2 / (a2 + b2)
}

// cosineHemisphere draws a cosine-weighted direction about normal from two
// uniform samples in [0,1).
func cosineHemisphere(normal types.Vec3, u1, u2 float32) types.Vec3 {
	r := float32(math.Sqrt(float64(u1)))
	theta := 2 * float32(math.Pi) * u2
	x := r * float32(math.Cos(float64(theta)))
	y := r * float32(math.Sin(float64(theta)))
	z := float32(math.Sqrt(float64(1 - u1)))

	t, b := orthonormalBasis(normal)
	return t.Mul(x).Add(b.Mul(y)).Add(normal.Mul(z)).Normalize()
}

// orthonormalBasis builds an arbitrary tangent/bitangent pair perpendicular
// to n, using the standard branch-free construction.
func orthonormalBasis(n types.Vec3) (t, b types.Vec3) {
	sign := float32(1)
	if n[2] < 0 {
		sign = -1
	}
	a := -1 / (sign + n[2])
	c := n[0] * n[1] * a
	t = types.XYZ(1+sign*n[0]*n[0]*a, sign*c, -sign*n[0])
	b = types.XYZ(c, sign+n[1]*n[1]*a, -n[1])
	return t, b
}

// lightSample is one emissive triangle in the direct-lighting distribution.
type lightSample struct {
	index int
	power float32
}

// buildLightDistribution scans fs.Triangles once, per SPEC_FULL section
// 4.4's "single linear scan producing totals, then a second scan for
// selection".
func buildLightDistribution(fs *FlatScene) ([]lightSample, float32) {
	lights := make([]lightSample, 0)
	var total float32
	for i, tri := range fs.Triangles {
		if !tri.IsEmissive() {
			continue
		}
		power := tri.EmissionStrength * tri.Area() * tri.EmissionColor.Luminance()
		if power <= 0 {
			continue
		}
		lights = append(lights, lightSample{index: i, power: power})
		total += power
	}
	return lights, total
}

func selectLight(lights []lightSample, total float32, r float32) (int, float32) {
	target := r * total
	var acc float32
	for _, l := range lights {
		acc += l.power
		if acc >= target {
			return l.index, l.power
		}
	}
	last := lights[len(lights)-1]
	return last.index, last.power
}

// sampleTrianglePoint picks a uniform point on the triangle via the
// barycentric formula (1-sqrt(u), sqrt(u)*(1-v), sqrt(u)*v).
func sampleTrianglePoint(v0, v1, v2 types.Vec3, u, v float32) types.Vec3 {
	su := float32(math.Sqrt(float64(u)))
	b0 := 1 - su
	b1 := su * (1 - v)
	b2 := su * v
	return v0.Mul(b0).Add(v1.Mul(b1)).Add(v2.Mul(b2))
}

// occluded tests whether the segment from origin toward target (excluding
// the last 0.1 units) is blocked by any scene geometry.
func occluded(fs *FlatScene, origin, target types.Vec3) bool {
	toTarget := target.Sub(origin)
	dist := toTarget.Len()
	if dist < 1e-6 {
		return false
	}
	dir := toTarget.Mul(1 / dist)
	ray := Ray{Origin: origin, Dir: dir}
	hit, ok := Intersect(fs, ray)
	if !ok {
		return false
	}
	return hit.T < dist-0.1
}

// sampleDirectLight implements Next-Event Estimation with the power
// heuristic (SPEC_FULL section 4.4 step 2). It returns the additional
// radiance contribution for this bounce.
func sampleDirectLight(fs *FlatScene, lights []lightSample, totalPower float32, point, normal types.Vec3, rng *RNG) types.Vec3 {
	if len(lights) == 0 || totalPower <= 0 {
		return types.Vec3{}
	}

	lightIdx, power := selectLight(lights, totalPower, rng.Float32())
	light := fs.Triangles[lightIdx]

	u, v := rng.Float32(), rng.Float32()
	lightPoint := sampleTrianglePoint(light.V0, light.V1, light.V2, u, v)
	lightNormal := light.Normal()

	toLight := lightPoint.Sub(point)
	distance := toLight.Len()
	if distance < 1e-6 {
		return types.Vec3{}
	}
	dir := toLight.Mul(1 / distance)

	cosLight := lightNormal.Dot(dir.Neg())
	if cosLight <= 0 {
		return types.Vec3{}
	}

	shadowOrigin := point.Add(normal.Mul(0.01))
	if occluded(fs, shadowOrigin, lightPoint) {
		return types.Vec3{}
	}

	cosTheta := normal.Dot(dir)
	if cosTheta <= 0 {
		return types.Vec3{}
	}

	area := light.Area()
	pdfL := (distance * distance) / (area * cosLight) * (power / totalPower)
	if pdfL <= 0 {
		return types.Vec3{}
	}
	pdfB := cosTheta / float32(math.Pi)
	weight := powerHeuristic(pdfL, pdfB)

	brdf := cosTheta / float32(math.Pi)
	return light.EmissionColor.Mul(light.EmissionStrength).Mul(brdf * weight / pdfL)
}

// TraceSample runs one full path for the given camera ray, up to
// maxBounces bounces with Russian roulette starting at rrStartBounce, and
// returns the accumulated radiance (SPEC_FULL section 4.4's "one path, up
// to six bounces" state machine).
func TraceSample(fs *FlatScene, ray Ray, rng *RNG, maxBounces, rrStartBounce uint32, counters *Counters) types.Vec3 {
	if maxBounces == 0 {
		maxBounces = maxBounceCount
	}

	lights, totalPower := buildLightDistribution(fs)

	beta := types.XYZ(1, 1, 1)
	radiance := types.Vec3{}
	currentRay := ray
	specularBounce := true

	// prevNormal is the shading normal of the point currentRay.Dir was
	// sampled from, needed to reconstruct pdfB = max(0,cosTheta)/pi for an
	// emissive hit reached via BRDF sampling (the previous bounce's normal,
	// not this hit's). Seeded to the camera ray's own direction: its self
	// dot product is 1, so a primary ray landing directly on an emissive
	// surface gets the largest possible pdfB (1/pi) and a MIS weight within
	// 1e-5 of 1, matching the fact that NEE has no way to have already
	// sampled a light along the camera ray.
	prevNormal := ray.Dir

	for bounce := uint32(0); bounce < maxBounces; bounce++ {
		if counters != nil {
			counters.IntersectionTests.Add(1)
		}

		hit, ok := Intersect(fs, currentRay)
		if !ok {
			radiance = radiance.Add(beta.MulVec3(sky))
			break
		}

		if hit.EmissionStrength > 0 && specularBounce {
			cosTheta := prevNormal.Dot(currentRay.Dir)
			pdfB := float32(0)
			if cosTheta > 0 {
				pdfB = cosTheta / float32(math.Pi)
			}
			weight := powerHeuristic(pdfB, pdfLightEstimate)
			radiance = radiance.Add(beta.MulVec3(hit.EmissionColor).Mul(hit.EmissionStrength * weight))
		}

		direct := sampleDirectLight(fs, lights, totalPower, hit.Point, hit.Normal, rng)
		radiance = radiance.Add(beta.MulVec3(direct))

		beta = beta.MulVec3(hit.Color)

		if beta[0]+beta[1]+beta[2] < 0.01 {
			break
		}

		if bounce >= rrStartBounce {
			p := beta.Luminance()
			if p < 0.05 {
				p = 0.05
			} else if p > 0.95 {
				p = 0.95
			}
			if rng.Float32() > p {
				break
			}
			beta = beta.Mul(1 / p)
		}

		r := rng.Float32()
		isSpecular := r <= hit.SpecularProbability
		u1, u2 := rng.Float32(), rng.Float32()
		diffuseDir := cosineHemisphere(hit.Normal, u1, u2)
		specularDir := currentRay.Dir.Reflect(hit.Normal)

		mixT := float32(0)
		if isSpecular {
			mixT = hit.Smoothness
		}
		newDir := diffuseDir.Lerp(specularDir, mixT).Normalize()

		currentRay = Ray{Origin: hit.Point.Add(hit.Normal.Mul(0.01)), Dir: newDir}
		prevNormal = hit.Normal
		specularBounce = isSpecular
	}

	return radiance
}
