package cpu

import (
	"math/rand"

	"github.com/lseper/raytracer/scene"
	"github.com/lseper/raytracer/types"
)

// Scattered rays start their hit tests at this distance to avoid
// re-intersecting the surface they left.
const hitEpsilon float32 = 0.001

var (
	skyHorizon = types.Vec3{1.0, 1.0, 1.0}
	skyZenith  = types.Vec3{0.5, 0.7, 1.0}
)

// The Hitter interface is implemented by the scene acceleration structures
// (*scene.BvhNode and *scene.ObjectList).
type Hitter interface {
	Hit(ray types.Ray, ti types.Interval) (scene.HitRecord, bool)
}

// Estimate the radiance arriving along ray.
//
// The path is followed for at most maxDepth hit tests. The product of the
// material attenuations is accumulated as the path bounces; a path that
// escapes the scene picks up the sky color while paths that are absorbed or
// exceed maxDepth contribute black.
func RayColor(ray types.Ray, world Hitter, maxDepth uint32, rng *rand.Rand) types.Vec3 {
	throughput := types.Vec3{1, 1, 1}
	for depth := uint32(0); depth < maxDepth; depth++ {
		rec, hit := world.Hit(ray, types.IntervalFrom(hitEpsilon))
		if !hit {
			return throughput.MulVec(skyColor(ray))
		}

		attenuation, scattered, ok := rec.Material.Scatter(ray, &rec, rng)
		if !ok {
			return types.Vec3{}
		}
		throughput = throughput.MulVec(attenuation)
		ray = scattered
	}

	return types.Vec3{}
}

// Vertical white to blue gradient.
func skyColor(ray types.Ray) types.Vec3 {
	t := 0.5 * (ray.Dir.Normalize()[1] + 1.0)
	return skyHorizon.Lerp(skyZenith, t)
}
