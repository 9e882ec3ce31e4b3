package types

import "github.com/go-gl/mathgl/mgl32"

// Quat wraps an mgl32 quaternion so it can operate on our vector types.
type Quat mgl32.Quat

// Create identity quaternion.
func QuatIdent() Quat {
	return Quat(mgl32.QuatIdent())
}

// Create a quaternion from an axis vector and an angle in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	return Quat(mgl32.QuatRotate(angle, mgl32.Vec3(axis.Normalize())))
}

// Rotates a vector by the rotation this quaternion represents.
func (q1 Quat) Rotate(v Vec3) Vec3 {
	return Vec3(mgl32.Quat(q1).Rotate(mgl32.Vec3(v)))
}

// Multiplies two quaternions. Multiplication is not commutative; q1.Mul(q2)
// applies q2 first and then q1.
func (q1 Quat) Mul(q2 Quat) Quat {
	return Quat(mgl32.Quat(q1).Mul(mgl32.Quat(q2)))
}

// Normalizes the quaternion, returning its versor (unit quaternion).
func (q1 Quat) Normalize() Quat {
	return Quat(mgl32.Quat(q1).Normalize())
}
