package scene

import "github.com/lseper/raytracer/types"

// ObjectList is a flat collection of objects that is hit-tested with a linear
// scan. It serves as the fallback acceleration structure and as the reference
// result for BVH queries.
type ObjectList struct {
	Objects []Object
	bbox    AABB
}

// Create a new list containing the given objects.
func NewObjectList(objects ...Object) *ObjectList {
	l := &ObjectList{Objects: make([]Object, 0, len(objects))}
	for _, obj := range objects {
		l.Add(obj)
	}
	return l
}

// Append an object to the list.
func (l *ObjectList) Add(obj Object) {
	if len(l.Objects) == 0 {
		l.bbox = obj.BBox()
	} else {
		l.bbox = UnionAABB(l.bbox, obj.BBox())
	}
	l.Objects = append(l.Objects, obj)
}

// Get the bounding box of all objects in the list. An empty list has the
// empty AABB.
func (l *ObjectList) BBox() AABB {
	return l.bbox
}

// Create a deep copy of the list. Objects are values so copying the slice is
// sufficient.
func (l *ObjectList) Clone() *ObjectList {
	objects := make([]Object, len(l.Objects))
	copy(objects, l.Objects)
	return &ObjectList{Objects: objects, bbox: l.bbox}
}

// Find the nearest hit among all objects. On equal distances the object that
// appears first in the list wins.
func (l *ObjectList) Hit(ray types.Ray, ti types.Interval) (HitRecord, bool) {
	var (
		closest     HitRecord
		hitAnything bool
	)
	for i := range l.Objects {
		rec, ok := l.Objects[i].Hit(ray, ti)
		if !ok || (hitAnything && rec.T >= closest.T) {
			continue
		}
		hitAnything = true
		closest = rec
		ti.Max = rec.T
	}
	return closest, hitAnything
}
