package scene

import (
	"encoding/json"
	"fmt"

	"github.com/lseper/raytracer/types"
)

type ObjectKind uint8

const (
	// A renderable primitive.
	PrimitiveObject ObjectKind = iota

	// A bounding box. Boxes contribute their bounds but never report a hit.
	BoxObject
)

// Object is the closed set of entities that can be placed in a scene. All
// hit testing is dispatched by switching on Kind.
type Object struct {
	Kind      ObjectKind
	Primitive Primitive
	Box       AABB
}

// Wrap a primitive into an object.
func NewPrimitiveObject(prim Primitive) Object {
	return Object{Kind: PrimitiveObject, Primitive: prim}
}

// Wrap a bounding box into an object.
func NewBoxObject(box AABB) Object {
	return Object{Kind: BoxObject, Box: box}
}

// Get the object bounding box.
func (o *Object) BBox() AABB {
	switch o.Kind {
	case PrimitiveObject:
		return o.Primitive.BBox()
	default:
		return o.Box
	}
}

// Find the nearest intersection with the object inside ti.
func (o *Object) Hit(ray types.Ray, ti types.Interval) (HitRecord, bool) {
	switch o.Kind {
	case PrimitiveObject:
		return o.Primitive.Hit(ray, ti)
	default:
		return HitRecord{}, false
	}
}

type objectDoc struct {
	Type     string      `json:"type"`
	Center   *types.Vec3 `json:"center,omitempty"`
	Center2  *types.Vec3 `json:"center2,omitempty"`
	Radius   float32     `json:"radius,omitempty"`
	Material *Material   `json:"material,omitempty"`
	Min      *types.Vec3 `json:"min,omitempty"`
	Max      *types.Vec3 `json:"max,omitempty"`
}

func (o Object) MarshalJSON() ([]byte, error) {
	var doc objectDoc
	switch o.Kind {
	case PrimitiveObject:
		prim := o.Primitive
		doc = objectDoc{
			Center:   &prim.Center,
			Radius:   prim.Radius,
			Material: &prim.Material,
		}
		switch prim.Type {
		case SpherePrimitive:
			doc.Type = "sphere"
		case MovingSpherePrimitive:
			doc.Type = "moving_sphere"
			center2 := prim.CenterAt(1)
			doc.Center2 = &center2
		default:
			return nil, fmt.Errorf("scene: unknown primitive type %d", prim.Type)
		}
	case BoxObject:
		min, max := o.Box.Min(), o.Box.Max()
		doc = objectDoc{Type: "box", Min: &min, Max: &max}
	default:
		return nil, fmt.Errorf("scene: unknown object kind %d", o.Kind)
	}
	return json.Marshal(doc)
}

func (o *Object) UnmarshalJSON(data []byte) error {
	var doc objectDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	switch doc.Type {
	case "sphere", "moving_sphere":
		if doc.Center == nil {
			return fmt.Errorf("scene: %s object is missing its center", doc.Type)
		}
		if doc.Radius <= 0 {
			return fmt.Errorf("scene: %s radius must be positive; got %f", doc.Type, doc.Radius)
		}
		mat := NewLambertian(types.Vec3{0.5, 0.5, 0.5})
		if doc.Material != nil {
			mat = *doc.Material
		}
		if doc.Type == "sphere" {
			*o = NewPrimitiveObject(NewSphere(*doc.Center, doc.Radius, mat))
			return nil
		}
		if doc.Center2 == nil {
			return fmt.Errorf("scene: moving_sphere object is missing center2")
		}
		*o = NewPrimitiveObject(NewMovingSphere(*doc.Center, *doc.Center2, doc.Radius, mat))
	case "box":
		if doc.Min == nil || doc.Max == nil {
			return fmt.Errorf("scene: box object requires min and max corners")
		}
		*o = NewBoxObject(NewAABB(*doc.Min, *doc.Max))
	default:
		return fmt.Errorf("scene: unknown object type %q", doc.Type)
	}
	return nil
}
