package scene

import (
	"math"

	"github.com/lseper/raytracer/types"
)

type PrimitiveType uint8

const (
	SpherePrimitive PrimitiveType = iota
	MovingSpherePrimitive
)

func (t PrimitiveType) String() string {
	switch t {
	case SpherePrimitive:
		return "sphere"
	case MovingSpherePrimitive:
		return "moving_sphere"
	}
	return "unknown"
}

// Defines a scene primitive. Primitives are immutable once created; their
// bounding box is computed by the constructors.
type Primitive struct {
	// The primitive type.
	Type PrimitiveType

	// Sphere center at time 0.
	Center types.Vec3

	// Center displacement between time 0 and time 1 (moving spheres only).
	Motion types.Vec3

	Radius float32

	// The primitive material.
	Material Material

	bbox AABB
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float32, material Material) Primitive {
	rvec := types.Vec3{radius, radius, radius}
	return Primitive{
		Type:     SpherePrimitive,
		Center:   center,
		Radius:   radius,
		Material: material,
		bbox:     NewAABB(center.Sub(rvec), center.Add(rvec)),
	}
}

// Create new sphere primitive that moves linearly from center1 (time 0) to
// center2 (time 1).
func NewMovingSphere(center1, center2 types.Vec3, radius float32, material Material) Primitive {
	rvec := types.Vec3{radius, radius, radius}
	return Primitive{
		Type:     MovingSpherePrimitive,
		Center:   center1,
		Motion:   center2.Sub(center1),
		Radius:   radius,
		Material: material,
		bbox: UnionAABB(
			NewAABB(center1.Sub(rvec), center1.Add(rvec)),
			NewAABB(center2.Sub(rvec), center2.Add(rvec)),
		),
	}
}

// Get the sphere center at the given time.
func (p *Primitive) CenterAt(time float32) types.Vec3 {
	if p.Type != MovingSpherePrimitive {
		return p.Center
	}
	return p.Center.Add(p.Motion.Mul(time))
}

// Get the precomputed primitive bounding box.
func (p *Primitive) BBox() AABB {
	return p.bbox
}

// Find the nearest intersection of the ray with the primitive whose
// parametric distance lies inside ti.
func (p *Primitive) Hit(ray types.Ray, ti types.Interval) (HitRecord, bool) {
	center := p.CenterAt(ray.Time)
	oc := ray.Origin.Sub(center)
	a := ray.Dir.LenSquared()
	halfB := oc.Dot(ray.Dir)
	c := oc.LenSquared() - p.Radius*p.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := float32(math.Sqrt(float64(discriminant)))

	// Try the nearest root first
	root := (-halfB - sqrtD) / a
	if !ti.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !ti.Contains(root) {
			return HitRecord{}, false
		}
	}

	rec := HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: p.Material,
	}
	outwardNormal := rec.Point.Sub(center).Div(p.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	return rec, true
}

// Map a point on the unit sphere to (u, v) in [0, 1]: u is the angle around
// the y axis starting from -x, v is the angle from -y to +y.
func sphereUV(p types.Vec3) (u, v float32) {
	theta := math.Acos(math.Max(-1, math.Min(1, float64(-p[1]))))
	phi := math.Atan2(float64(-p[2]), float64(p[0])) + math.Pi
	return float32(phi / (2 * math.Pi)), float32(theta / math.Pi)
}
