package scene

import (
	"fmt"

	"github.com/lseper/raytracer/types"
)

// AABB is an axis-aligned bounding box defined as the cartesian product of
// three intervals. Each axis satisfies Min <= Max.
type AABB struct {
	X types.Interval `json:"x"`
	Y types.Interval `json:"y"`
	Z types.Interval `json:"z"`
}

// Get the empty AABB: a degenerate box at the origin with zero extent. It is
// the bounding box of an empty object set.
func EmptyAABB() AABB {
	return AABB{}
}

// Axes of boxes built from corner points are padded to at least this width so
// that flat or point-like boxes can still be hit by the slab test.
const minAxisWidth float32 = 1e-4

// Create an AABB from two corner points. The points can be supplied in any
// order.
func NewAABB(a, b types.Vec3) AABB {
	min := types.MinVec3(a, b)
	max := types.MaxVec3(a, b)
	return AABB{
		X: padInterval(types.Interval{Min: min[0], Max: max[0]}),
		Y: padInterval(types.Interval{Min: min[1], Max: max[1]}),
		Z: padInterval(types.Interval{Min: min[2], Max: max[2]}),
	}
}

func padInterval(i types.Interval) types.Interval {
	if i.Size() >= minAxisWidth {
		return i
	}
	mid := (i.Min + i.Max) * 0.5
	return types.Interval{Min: mid - minAxisWidth*0.5, Max: mid + minAxisWidth*0.5}
}

// Create the smallest AABB enclosing both a and b.
func UnionAABB(a, b AABB) AABB {
	return AABB{
		X: types.UnionInterval(a.X, b.X),
		Y: types.UnionInterval(a.Y, b.Y),
		Z: types.UnionInterval(a.Z, b.Z),
	}
}

// Get the interval for axis 0 (x), 1 (y) or 2 (z).
func (b AABB) Axis(axis int) types.Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// Get the min corner.
func (b AABB) Min() types.Vec3 {
	return types.Vec3{b.X.Min, b.Y.Min, b.Z.Min}
}

// Get the max corner.
func (b AABB) Max() types.Vec3 {
	return types.Vec3{b.X.Max, b.Y.Max, b.Z.Max}
}

// Get the box center.
func (b AABB) Center() types.Vec3 {
	return b.Min().Add(b.Max()).Mul(0.5)
}

// Test whether the ray passes through the box within the given interval using
// the slab method. The test only culls; it does not produce a hit record.
//
// The interval is narrowed axis by axis and the test exits as soon as it
// becomes empty. A zero direction component yields an infinite inverse with the
// sign of the zero so parallel rays are handled without special cases.
func (b AABB) Hit(ray types.Ray, ti types.Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := b.Axis(axis)
		if slab.Max <= slab.Min {
			// Only EmptyAABB has a zero-width axis; boxes built by
			// NewAABB are padded.
			return false
		}
		invD := 1.0 / ray.Dir[axis]
		orig := ray.Origin[axis]

		t0 := (slab.Min - orig) * invD
		t1 := (slab.Max - orig) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		// A parallel ray whose origin lies exactly on a slab plane yields
		// 0 * Inf = NaN; Narrow ignores NaN bounds.
		ti = ti.Narrow(t0, t1)
		if ti.Max <= ti.Min {
			return false
		}
	}
	return true
}

func (b AABB) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min(), b.Max())
}
