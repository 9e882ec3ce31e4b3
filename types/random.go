package types

import "math/rand"

// Get a random value in [min, max).
func RandomRange(rng *rand.Rand, min, max float32) float32 {
	return min + (max-min)*rng.Float32()
}

// Get a vector whose components are random values in [min, max).
func RandomVec3(rng *rand.Rand, min, max float32) Vec3 {
	return Vec3{
		RandomRange(rng, min, max),
		RandomRange(rng, min, max),
		RandomRange(rng, min, max),
	}
}

// Sample a point inside the unit sphere using rejection sampling.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3(rng, -1, 1)
		if p.LenSquared() < 1 {
			return p
		}
	}
}

// Sample a random direction on the unit sphere.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	for {
		p := RandomInUnitSphere(rng)
		if !p.NearZero() {
			return p.Normalize()
		}
	}
}

// Sample a point inside the unit disk lying on the z = 0 plane.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{RandomRange(rng, -1, 1), RandomRange(rng, -1, 1), 0}
		if p.LenSquared() < 1 {
			return p
		}
	}
}
