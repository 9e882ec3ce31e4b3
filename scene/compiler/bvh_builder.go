package compiler

import (
	"math/rand"
	"sort"
	"time"

	"github.com/lseper/raytracer/log"
	"github.com/lseper/raytracer/scene"
)

type bvhStats struct {
	totalItems int
	nodes      int
	leafs      int
	maxDepth   int
}

type bvhBuilder struct {
	logger log.Logger

	// Source for the split axis selection. Each builder owns its source so
	// concurrent builds never share state.
	rng *rand.Rand

	// Stats
	stats bvhStats
}

// Construct a BVH over a list of objects.
//
// At every level the builder picks a random split axis, sorts the work list
// by the minimum bound of each object along that axis and splits it at the
// midpoint. Single objects become leafs; pairs become an internal node with
// two leafs. An empty list yields a BvhEmpty node that is never hit.
//
// The supplied slice is copied and never modified.
func BuildBVH(objects []scene.Object, rng *rand.Rand) *scene.BvhNode {
	builder := &bvhBuilder{
		logger: log.New("bvhBuilder"),
		rng:    rng,
		stats: bvhStats{
			totalItems: len(objects),
		},
	}

	if len(objects) == 0 {
		builder.logger.Debug("BVH build requested for empty object list")
		return scene.NewEmptyBvhNode()
	}

	workList := make([]scene.Object, len(objects))
	copy(workList, objects)

	start := time.Now()
	root := builder.partition(workList, 0)
	builder.logger.Debugf(
		"BVH tree build time: %d ms, items: %d, maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		builder.stats.totalItems, builder.stats.maxDepth, builder.stats.nodes, builder.stats.leafs,
	)
	return root
}

// Partition a non-empty work list and return the subtree root.
func (b *bvhBuilder) partition(workList []scene.Object, depth int) *scene.BvhNode {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}

	switch len(workList) {
	case 1:
		return b.createLeaf(workList[0])
	case 2:
		b.stats.nodes++
		if depth+1 > b.stats.maxDepth {
			b.stats.maxDepth = depth + 1
		}
		return scene.NewBvhInternal(b.createLeaf(workList[0]), b.createLeaf(workList[1]))
	}

	axis := b.rng.Intn(3)
	sort.SliceStable(workList, func(i, j int) bool {
		return workList[i].BBox().Axis(axis).Min < workList[j].BBox().Axis(axis).Min
	})

	mid := len(workList) / 2
	b.stats.nodes++
	left := b.partition(workList[:mid], depth+1)
	right := b.partition(workList[mid:], depth+1)
	return scene.NewBvhInternal(left, right)
}

func (b *bvhBuilder) createLeaf(obj scene.Object) *scene.BvhNode {
	b.stats.leafs++
	b.stats.nodes++
	return scene.NewBvhLeaf(obj)
}
