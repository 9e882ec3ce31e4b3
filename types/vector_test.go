package types

import (
	"math"
	"math/rand"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestVectorOps(t *testing.T) {
	v1 := XYZ(1, 2, 3)
	v2 := XYZ(4, -5, 6)

	if got := v1.Dot(v2); got != 12 {
		t.Fatalf("expected dot product 12; got %f", got)
	}
	if got, exp := v1.Cross(v2), XYZ(27, 6, -13); got != exp {
		t.Fatalf("expected cross product %v; got %v", exp, got)
	}
	if got, exp := v1.MulVec(v2), XYZ(4, -10, 18); got != exp {
		t.Fatalf("expected component-wise product %v; got %v", exp, got)
	}
	if got, exp := v1.Lerp(v2, 0.5), XYZ(2.5, -1.5, 4.5); got != exp {
		t.Fatalf("expected lerp %v; got %v", exp, got)
	}
	if got, exp := MinVec3(v1, v2), XYZ(1, -5, 3); got != exp {
		t.Fatalf("expected min %v; got %v", exp, got)
	}
	if got, exp := MaxVec3(v1, v2), XYZ(4, 2, 6); got != exp {
		t.Fatalf("expected max %v; got %v", exp, got)
	}
}

func TestNormalize(t *testing.T) {
	specs := []struct {
		in  Vec3
		exp Vec3
	}{
		{XYZ(3, 0, 0), XYZ(1, 0, 0)},
		{XYZ(0, -2, 0), XYZ(0, -1, 0)},
		{XYZ(0, 0, 0), XYZ(0, 0, 0)},
	}

	for specIndex, spec := range specs {
		if got := spec.in.Normalize(); got != spec.exp {
			t.Fatalf("[spec %d] expected %v; got %v", specIndex, spec.exp, got)
		}
	}
}

func TestReflectRefract(t *testing.T) {
	n := XYZ(0, 1, 0)
	if got, exp := Reflect(XYZ(1, -1, 0), n), XYZ(1, 1, 0); got != exp {
		t.Fatalf("expected reflected vector %v; got %v", exp, got)
	}

	// Matching indices leave the direction untouched.
	in := XYZ(1, -1, 0).Normalize()
	got := Refract(in, n, 1)
	for i := 0; i < 3; i++ {
		if !approx(got[i], in[i]) {
			t.Fatalf("expected refracted vector %v; got %v", in, got)
		}
	}
}

func TestRandomSampling(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		if p := RandomInUnitSphere(rng); p.LenSquared() >= 1 {
			t.Fatalf("expected point inside the unit sphere; got %v", p)
		}
		if p := RandomUnitVector(rng); !approx(p.Len(), 1) {
			t.Fatalf("expected unit vector; got %v with length %f", p, p.Len())
		}
		if p := RandomInUnitDisk(rng); p.LenSquared() >= 1 || p[2] != 0 {
			t.Fatalf("expected point inside the unit disk; got %v", p)
		}
		if v := RandomRange(rng, -2, 3); v < -2 || v >= 3 {
			t.Fatalf("expected value in [-2, 3); got %f", v)
		}
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(XYZ(1, 1, 1), XYZ(0, 0, -2))
	if got, exp := r.At(1.5), XYZ(1, 1, -2); got != exp {
		t.Fatalf("expected %v; got %v", exp, got)
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(XYZ(0, 1, 0), math.Pi/2)
	got := q.Rotate(XYZ(0, 0, -1))
	exp := XYZ(-1, 0, 0)
	for i := 0; i < 3; i++ {
		if !approx(got[i], exp[i]) {
			t.Fatalf("expected rotated vector %v; got %v", exp, got)
		}
	}
}
