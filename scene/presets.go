package scene

import (
	"math/rand"

	"github.com/lseper/raytracer/types"
)

// Get the built-in scene that is used when a scene document cannot be
// loaded: a single diffuse sphere in front of the default camera.
func DefaultScene() *Scene {
	sc := NewScene()
	sc.AspectRatio = 3.0 / 2.0
	sc.ImageWidth = 300
	sc.ImageHeight = 200
	sc.SamplesPerPixel = 20
	sc.MaxDepth = DefaultMaxDepth
	sc.SetCamera(NewCamera(90))
	sc.AddPrimitive(NewSphere(types.Vec3{0, 0, -1}, 0.5, NewLambertian(types.Vec3{0.5, 0.5, 0.5})))
	return sc
}

// Generate the classic "many spheres" scene: a large ground sphere, a grid of
// small randomized spheres and three large feature spheres. When moving is set
// the small diffuse spheres bounce upwards during the exposure. When checker
// is set the ground uses a checker texture.
func RandomScene(rng *rand.Rand, moving, checker bool) *Scene {
	sc := NewScene()
	sc.AspectRatio = 3.0 / 2.0
	sc.ImageWidth = 300
	sc.ImageHeight = 200
	sc.SamplesPerPixel = 20
	sc.MaxDepth = DefaultMaxDepth

	cam := NewCamera(20)
	cam.Position = types.Vec3{13, 2, 3}
	cam.LookAt = types.Vec3{0, 0, 0}
	cam.Aperture = 0.1
	cam.FocusDist = 10
	sc.SetCamera(cam)

	ground := NewLambertian(types.Vec3{0.5, 0.5, 0.5})
	if checker {
		ground = NewTexturedLambertian(NewChecker(0.32, types.Vec3{0.2, 0.3, 0.1}, types.Vec3{0.9, 0.9, 0.9}))
	}
	sc.AddPrimitive(NewSphere(types.Vec3{0, -1000, 0}, 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := rng.Float32()
			center := types.Vec3{float32(a) + 0.9*rng.Float32(), 0.2, float32(b) + 0.9*rng.Float32()}
			if center.Sub(types.Vec3{4, 0.2, 0}).Len() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := types.RandomVec3(rng, 0, 1).MulVec(types.RandomVec3(rng, 0, 1))
				mat := NewLambertian(albedo)
				if moving {
					center2 := center.Add(types.Vec3{0, types.RandomRange(rng, 0, 0.5), 0})
					sc.AddPrimitive(NewMovingSphere(center, center2, 0.2, mat))
				} else {
					sc.AddPrimitive(NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.95:
				albedo := types.RandomVec3(rng, 0.5, 1)
				fuzz := types.RandomRange(rng, 0, 0.5)
				sc.AddPrimitive(NewSphere(center, 0.2, NewMetal(albedo, fuzz)))
			default:
				sc.AddPrimitive(NewSphere(center, 0.2, NewDielectric(1.5)))
			}
		}
	}

	sc.AddPrimitive(NewSphere(types.Vec3{0, 1, 0}, 1.0, NewDielectric(1.5)))
	sc.AddPrimitive(NewSphere(types.Vec3{-4, 1, 0}, 1.0, NewLambertian(types.Vec3{0.4, 0.2, 0.1})))
	sc.AddPrimitive(NewSphere(types.Vec3{4, 1, 0}, 1.0, NewMetal(types.Vec3{0.7, 0.6, 0.5}, 0)))
	return sc
}
