package scene

import "github.com/lseper/raytracer/types"

// HitRecord describes the nearest ray-surface intersection found by a hit
// test. Records are transient values; they are recomputed for every test.
type HitRecord struct {
	Point  types.Vec3
	Normal types.Vec3
	T      float32

	// Surface coordinates at the hit point.
	U, V float32

	// True if the ray hit the outside of the surface.
	FrontFace bool

	// A copy of the material of the hit surface.
	Material Material
}

// Orient the outward unit normal against the incoming ray and record which
// side of the surface was hit.
func (rec *HitRecord) SetFaceNormal(ray types.Ray, outwardNormal types.Vec3) {
	rec.FrontFace = ray.Dir.Dot(outwardNormal) < 0
	if rec.FrontFace {
		rec.Normal = outwardNormal
	} else {
		rec.Normal = outwardNormal.Neg()
	}
}
