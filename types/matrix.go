package types

import "github.com/go-gl/mathgl/mgl32"

// A column-major 4x4 matrix.
type Mat4 mgl32.Mat4

// Create identity matrix.
func Ident4() Mat4 {
	return Mat4(mgl32.Ident4())
}

// Create a view matrix for a camera at eye looking at center.
//
// The first three rows of the returned matrix hold the camera basis vectors:
// row 0 points right, row 1 points up and row 2 points backwards (away from
// center).
func LookAtV(eye, center, up Vec3) Mat4 {
	return Mat4(mgl32.LookAtV(mgl32.Vec3(eye), mgl32.Vec3(center), mgl32.Vec3(up)))
}

// Get the xyz components of a matrix row.
func (m Mat4) Row3(row int) Vec3 {
	r := mgl32.Mat4(m).Row(row)
	return Vec3{r[0], r[1], r[2]}
}
