package types

// A ray with a time stamp in [0, 1) that is used for sampling moving
// primitives.
type Ray struct {
	Origin Vec3
	Dir    Vec3
	Time   float32
}

// Create a new ray at time 0.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// Get the point at parametric distance t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
