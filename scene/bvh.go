package scene

import "github.com/lseper/raytracer/types"

type BvhNodeKind uint8

const (
	// The sentinel node of a BVH built from an empty object set.
	BvhEmpty BvhNodeKind = iota
	BvhLeaf
	BvhInternal
)

// Initial capacity of the traversal worklist. Median-split trees stay far
// below this depth; deeper trees grow the worklist on the heap.
const bvhStackSize = 64

// BvhNode is a node of a bounding volume hierarchy. Leafs hold a single object
// and its exact bounding box; internal nodes hold the union of their children
// boxes. Trees are immutable once built.
type BvhNode struct {
	Kind BvhNodeKind
	BBox AABB

	// Set for leaf nodes.
	Object Object

	// Set for internal nodes.
	Left  *BvhNode
	Right *BvhNode
}

// Create the sentinel node for an empty object set. It never reports a hit.
func NewEmptyBvhNode() *BvhNode {
	return &BvhNode{Kind: BvhEmpty, BBox: EmptyAABB()}
}

// Create a leaf node for a single object.
func NewBvhLeaf(obj Object) *BvhNode {
	return &BvhNode{Kind: BvhLeaf, BBox: obj.BBox(), Object: obj}
}

// Create an internal node. Its box is the union of the children boxes.
func NewBvhInternal(left, right *BvhNode) *BvhNode {
	return &BvhNode{
		Kind:  BvhInternal,
		BBox:  UnionAABB(left.BBox, right.BBox),
		Left:  left,
		Right: right,
	}
}

// Find the nearest intersection in the tree whose distance lies inside ti.
//
// Nodes are visited depth-first, left before right. Every hit tightens the
// upper bound of the interval so boxes further than the best hit are culled.
// A later hit replaces the current best only if it is strictly closer, which
// makes the left subtree win exact ties.
func (n *BvhNode) Hit(ray types.Ray, ti types.Interval) (HitRecord, bool) {
	var (
		closest     HitRecord
		hitAnything bool
		stackBuf    [bvhStackSize]*BvhNode
	)

	stack := append(stackBuf[:0], n)
	for len(stack) != 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch node.Kind {
		case BvhLeaf:
			rec, ok := node.Object.Hit(ray, ti)
			if !ok || (hitAnything && rec.T >= closest.T) {
				continue
			}
			hitAnything = true
			closest = rec
			ti.Max = rec.T
		case BvhInternal:
			if !node.BBox.Hit(ray, ti) {
				continue
			}
			stack = append(stack, node.Right, node.Left)
		}
	}

	return closest, hitAnything
}

// Get the number of nodes in the tree.
func (n *BvhNode) Count() int {
	if n.Kind != BvhInternal {
		return 1
	}
	return 1 + n.Left.Count() + n.Right.Count()
}

// Get the tree depth. A single leaf has depth 1.
func (n *BvhNode) Depth() int {
	if n.Kind != BvhInternal {
		return 1
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if l > r {
		return l + 1
	}
	return r + 1
}
