package types

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vectors with a length below this threshold are treated as zero-length.
const floatCmpEpsilon = 1e-8

type Vec2 f32.Vec2
type Vec3 f32.Vec3

// Define a 2 component vector.
func XY(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Define a 3 component vector.
func XYZ(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Add a vector.
func (v Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Multiply a 3 component vector with a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Multiply two vectors component-wise. Used for attenuating colors.
func (v Vec3) MulVec(v2 Vec3) Vec3 {
	return Vec3{v[0] * v2[0], v[1] * v2[1], v[2] * v2[2]}
}

// Divide a 3 component vector by a scalar.
func (v Vec3) Div(s float32) Vec3 {
	return v.Mul(1.0 / s)
}

// Negate vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Get 3 component vector squared length.
func (v Vec3) LenSquared() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Get 3 component vector length.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.LenSquared())))
}

// Normalize 3 component vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < floatCmpEpsilon {
		return Vec3{}
	}
	return v.Mul(1.0 / l)
}

// Returns true if all vector components are close to zero.
func (v Vec3) NearZero() bool {
	return math.Abs(float64(v[0])) < floatCmpEpsilon &&
		math.Abs(float64(v[1])) < floatCmpEpsilon &&
		math.Abs(float64(v[2])) < floatCmpEpsilon
}

// Calculate dot product of 2 vectors
func (v Vec2) Dot(v2 Vec2) float32 {
	return v[0]*v2[0] + v[1]*v2[1]
}

// Calculate dot product of 2 vectors
func (v Vec3) Dot(v2 Vec3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vec3) Cross(v2 Vec3) Vec3 {
	return Vec3{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Linearly interpolate between v and v2.
func (v Vec3) Lerp(v2 Vec3, t float32) Vec3 {
	return v.Mul(1.0 - t).Add(v2.Mul(t))
}

// Reflect v around the unit normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract the unit vector uv through a surface with unit normal n. The
// etaRatio param is the ratio of the refractive indices (incident / transmitted).
func Refract(uv, n Vec3, etaRatio float32) Vec3 {
	cosTheta := float32(math.Min(float64(uv.Neg().Dot(n)), 1.0))
	outPerp := uv.Add(n.Mul(cosTheta)).Mul(etaRatio)
	outParallel := n.Mul(-float32(math.Sqrt(math.Abs(float64(1.0 - outPerp.LenSquared())))))
	return outPerp.Add(outParallel)
}

// Calc min component from two vectors
func MinVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] < out[0] {
		out[0] = v2[0]
	}
	if v2[1] < out[1] {
		out[1] = v2[1]
	}
	if v2[2] < out[2] {
		out[2] = v2[2]
	}
	return out
}

// Calc maxcomponent from two vectors
func MaxVec3(v1, v2 Vec3) Vec3 {
	out := v1
	if v2[0] > out[0] {
		out[0] = v2[0]
	}
	if v2[1] > out[1] {
		out[1] = v2[1]
	}
	if v2[2] > out[2] {
		out[2] = v2[2]
	}
	return out
}
