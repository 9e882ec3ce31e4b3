package scene

import (
	"testing"

	"github.com/lseper/raytracer/types"
)

func TestObjectListHit(t *testing.T) {
	red := NewLambertian(types.Vec3{1, 0, 0})
	green := NewLambertian(types.Vec3{0, 1, 0})
	blue := NewLambertian(types.Vec3{0, 0, 1})

	list := NewObjectList(
		NewPrimitiveObject(NewSphere(types.Vec3{0, 0, -10}, 1, red)),
		NewPrimitiveObject(NewSphere(types.Vec3{0, 0, -5}, 1, green)),
		NewBoxObject(NewAABB(types.Vec3{-1, -1, -3}, types.Vec3{1, 1, -2})),
		NewPrimitiveObject(NewSphere(types.Vec3{0, 0, -5}, 1, blue)),
	)

	ray := types.NewRay(types.Vec3{}, types.Vec3{0, 0, -1})
	rec, hit := list.Hit(ray, types.IntervalFrom(0.001))
	if !hit {
		t.Fatal("expected ray to hit the list")
	}
	if rec.T != 4 {
		t.Fatalf("expected closest hit at t=4; got %f", rec.T)
	}
	// Two spheres share the closest distance; the first one wins.
	if rec.Material != green {
		t.Fatalf("expected the earlier object to win the tie; got material %v", rec.Material.Albedo.Color)
	}

	miss := types.NewRay(types.Vec3{0, 5, 0}, types.Vec3{0, 0, -1})
	if _, hit = list.Hit(miss, types.IntervalFrom(0.001)); hit {
		t.Fatal("expected ray to miss the list")
	}
}

func TestObjectListBBox(t *testing.T) {
	list := NewObjectList()
	if list.BBox() != EmptyAABB() {
		t.Fatalf("expected empty list to have the empty bbox; got %s", list.BBox())
	}
	if _, hit := list.Hit(types.NewRay(types.Vec3{}, types.Vec3{0, 0, -1}), types.IntervalFrom(0)); hit {
		t.Fatal("expected empty list to never report a hit")
	}

	mat := NewLambertian(types.Vec3{1, 1, 1})
	list.Add(NewPrimitiveObject(NewSphere(types.Vec3{5, 5, 5}, 1, mat)))
	if list.BBox().Min() != (types.Vec3{4, 4, 4}) {
		t.Fatalf("expected bbox of first object not to include the origin; got %s", list.BBox())
	}

	list.Add(NewPrimitiveObject(NewSphere(types.Vec3{-5, 0, 0}, 1, mat)))
	expMin, expMax := types.Vec3{-6, -1, -1}, types.Vec3{6, 6, 6}
	if list.BBox().Min() != expMin || list.BBox().Max() != expMax {
		t.Fatalf("expected bbox [%v - %v]; got %s", expMin, expMax, list.BBox())
	}
}

func TestObjectListClone(t *testing.T) {
	mat := NewLambertian(types.Vec3{1, 1, 1})
	list := NewObjectList(NewPrimitiveObject(NewSphere(types.Vec3{0, 0, -5}, 1, mat)))

	clone := list.Clone()
	clone.Add(NewPrimitiveObject(NewSphere(types.Vec3{0, 0, -2}, 0.5, mat)))
	clone.Objects[0].Primitive.Radius = 3

	if len(list.Objects) != 1 {
		t.Fatalf("expected original list to keep 1 object; got %d", len(list.Objects))
	}
	if list.Objects[0].Primitive.Radius != 1 {
		t.Fatal("expected clone modifications not to leak into the original list")
	}
}
