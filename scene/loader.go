package scene

import (
	"fmt"

	"github.com/guymor4/raytracer/asset/manifest"
	"github.com/guymor4/raytracer/asset/mesh"
	"github.com/guymor4/raytracer/log"
	"github.com/guymor4/raytracer/types"
)

var logger = log.New("scene loader")

func toVec3(v manifest.Vec3) types.Vec3 {
	return types.XYZ(v[0], v[1], v[2])
}

func toMaterial(m manifest.Material) Material {
	return Material{
		Color:               toVec3(m.Color),
		EmissionColor:       toVec3(m.EmissionColor),
		EmissionStrength:    m.EmissionStrength,
		Smoothness:          m.Smoothness,
		SpecularProbability: m.SpecularProbability,
	}
}

// Load fetches and parses the scene manifest at manifestPath, resolves every
// referenced model mesh, bakes model transforms into world-space triangles
// and returns the assembled Scene (SPEC_FULL section 4.1).
func Load(manifestPath string) (*Scene, error) {
	res, err := openResource(manifestPath, nil)
	if err != nil {
		return nil, fmt.Errorf("scene: loading manifest %q: %w", manifestPath, err)
	}
	defer res.Close()

	man, err := manifest.Parse(res)
	if err != nil {
		return nil, fmt.Errorf("scene: loading manifest %q: %w", manifestPath, err)
	}

	sc := &Scene{
		Camera: Camera{
			Position:  toVec3(man.Camera.Position),
			Rotation:  toVec3(man.Camera.Rotation),
			FOV:       man.Camera.FOV,
			NearPlane: man.Camera.NearPlane,
			FarPlane:  man.Camera.FarPlane,
		},
	}

	for _, s := range man.Spheres {
		sc.Spheres = append(sc.Spheres, Sphere{
			Center:   toVec3(s.Center),
			Radius:   s.Radius,
			Material: toMaterial(s.Material),
		})
	}

	for _, t := range man.Triangles {
		sc.Triangles = append(sc.Triangles, Triangle{
			V0:       toVec3(t.V0),
			V1:       toVec3(t.V1),
			V2:       toVec3(t.V2),
			Material: toMaterial(t.Material),
		})
	}

	for _, model := range man.Models {
		tris, err := loadModel(model, res)
		if err != nil {
			return nil, fmt.Errorf("scene: loading model %q: %w", model.Path, err)
		}
		sc.Triangles = append(sc.Triangles, tris...)
	}

	return sc, nil
}

// loadModel fetches a model's mesh (relative to the manifest resource),
// triangulates it and bakes the model's affine transform into world space.
func loadModel(model manifest.Model, manifestRes *resource) ([]Triangle, error) {
	meshRes, err := openResource(model.Path, manifestRes)
	if err != nil {
		return nil, err
	}
	defer meshRes.Close()

	raw, err := mesh.ParseOBJ(meshRes)
	if err != nil {
		return nil, err
	}

	scale := model.Scale
	if scale == (manifest.Vec3{}) {
		scale = manifest.Vec3{1, 1, 1}
	}
	modelMat := ModelMatrix(toVec3(model.Position), toVec3(model.Rotation), toVec3(scale))
	material := toMaterial(model.Material)

	tris := make([]Triangle, 0, len(raw.Faces))
	for _, face := range raw.Faces {
		if int(face.A) >= len(raw.Vertices) || int(face.B) >= len(raw.Vertices) || int(face.C) >= len(raw.Vertices) {
			logger.Warningf("skipping face with out-of-range vertex index in %q", model.Path)
			continue
		}
		tris = append(tris, Triangle{
			V0:       modelMat.MulPoint(raw.Vertices[face.A]),
			V1:       modelMat.MulPoint(raw.Vertices[face.B]),
			V2:       modelMat.MulPoint(raw.Vertices[face.C]),
			Material: material,
		})
	}
	return tris, nil
}
