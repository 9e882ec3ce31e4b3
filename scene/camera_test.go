package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lseper/raytracer/types"
)

func TestCameraRays(t *testing.T) {
	cam := NewCamera(90)
	cam.SetupProjection(2)
	rng := rand.New(rand.NewSource(1))

	specs := []struct {
		s, t   float32
		expDir types.Vec3
	}{
		{0.5, 0.5, types.Vec3{0, 0, -1}},
		{0, 0, types.Vec3{-2, -1, -1}},
		{1, 1, types.Vec3{2, 1, -1}},
		{1, 0, types.Vec3{2, -1, -1}},
	}

	for specIndex, spec := range specs {
		ray := cam.Ray(spec.s, spec.t, rng)
		if ray.Origin != cam.Position {
			t.Fatalf("[spec %d] expected pinhole ray to start at %v; got %v", specIndex, cam.Position, ray.Origin)
		}
		if !approxVec3(ray.Dir, spec.expDir, 1e-5) {
			t.Fatalf("[spec %d] expected ray direction %v; got %v", specIndex, spec.expDir, ray.Dir)
		}
		if ray.Time < 0 || ray.Time >= 1 {
			t.Fatalf("[spec %d] expected ray time in [0, 1); got %f", specIndex, ray.Time)
		}
	}
}

func TestCameraDefocus(t *testing.T) {
	cam := NewCamera(40)
	cam.Position = types.Vec3{0, 0, 5}
	cam.LookAt = types.Vec3{0, 0, 0}
	cam.Aperture = 0.5
	cam.FocusDist = 5
	cam.SetupProjection(1)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		ray := cam.Ray(0.5, 0.5, rng)
		if d := ray.Origin.Sub(cam.Position); d.Len() > 0.25 || d[2] != 0 {
			t.Fatalf("expected ray origin to lie on the lens disk; got offset %v", d)
		}

		// All rays through the viewport center converge on the focus plane.
		focus := ray.Origin.Add(ray.Dir)
		if !approxVec3(focus, types.Vec3{0, 0, 0}, 1e-5) {
			t.Fatalf("expected ray to pass through the focus point; got %v", focus)
		}
	}
}

func TestCameraYaw(t *testing.T) {
	cam := NewCamera(90)
	cam.Yaw = math.Pi / 2
	cam.Update()

	// Turning left by 90 degrees makes the camera look down -x.
	if !approxVec3(cam.w, types.Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("expected backward vector (1, 0, 0); got %v", cam.w)
	}
	if !approxVec3(cam.v, types.Vec3{0, 1, 0}, 1e-5) {
		t.Fatalf("expected up vector (0, 1, 0); got %v", cam.v)
	}
}
