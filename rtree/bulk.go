package rtree

import (
	"math"
	"sort"

	"github.com/purpleposeidon/spade"
)

// BulkLoad builds a new tree from items in one pass, producing
// shallower, less-overlapping nodes than repeated Insert calls. It
// generalizes the sort-tile-recursive scheme of
// _examples/daniel-cohen-simplefeatures/rtree/bulk.go — which hardcodes
// 2/3/4-way splits around a fixed M=4,Min=2 — into an arbitrary-fanout
// recursive partition driven by cfg.M/cfg.Min, and replaces that file's
// custom LCG-based quickPartition (a microoptimization to avoid a full
// sort) with a plain sort.Slice, since BulkLoad's cost is dominated by
// recursion depth, not by partition selection, at the sizes this
// package targets.
func BulkLoad[S spade.Scalar, T spade.SpatialObject[S]](items []T) *RTree[S, T] {
	return BulkLoadWithConfig[S, T](items, DefaultConfig())
}

// BulkLoadWithConfig is BulkLoad with an explicit Config.
func BulkLoadWithConfig[S spade.Scalar, T spade.SpatialObject[S]](items []T, cfg Config) *RTree[S, T] {
	cfg = cfg.validate()
	t := &RTree[S, T]{cfg: cfg, size: len(items)}
	if len(items) == 0 {
		t.root = &node[S, T]{isLeaf: true}
		return t
	}

	cp := make([]T, len(items))
	copy(cp, items)
	levels := calculateLevels(len(cp), cfg.M)
	t.root = bulkInsert[S, T](cp, levels, cfg, 0)
	t.root.depth = levels - 1
	return t
}

// calculateLevels returns how many levels of fan-out (1 = a single
// leaf) are needed to hold numItems entries at most M per node.
func calculateLevels(numItems, m int) int {
	if m < 2 {
		m = 2
	}
	levels := 1
	count := m
	for count < numItems {
		count *= m
		levels++
	}
	return levels
}

func bulkInsert[S spade.Scalar, T spade.SpatialObject[S]](items []T, levels int, cfg Config, axis int) *node[S, T] {
	if levels == 1 {
		leaf := &node[S, T]{isLeaf: true, items: items}
		leaf.recomputeMBR()
		return leaf
	}

	groups := partitionForLevel(items, levels, cfg, axis)
	children := make([]*node[S, T], len(groups))
	for i, g := range groups {
		children[i] = bulkInsert[S, T](g, levels-1, cfg, 1-axis)
		children[i].depth = levels - 2
	}
	n := &node[S, T]{children: children}
	n.recomputeMBR()
	return n
}

// partitionForLevel splits items into a number of roughly equal
// groups appropriate for one step of recursion toward leaves, sorted
// along axis first so that each group is spatially coherent (the
// "tile" step of sort-tile-recursive loading).
func partitionForLevel[S spade.Scalar, T spade.SpatialObject[S]](items []T, levels int, cfg Config, axis int) [][]T {
	sortByAxis(items, axis)

	// Each child subtree should hold at most cfg.M^(levels-1) items;
	// the number of groups is the smallest count of such subtrees that
	// covers all of items, clamped into [Min, M].
	subtreeCap := int(math.Pow(float64(cfg.M), float64(levels-1)))
	if subtreeCap < 1 {
		subtreeCap = 1
	}
	groupCount := (len(items) + subtreeCap - 1) / subtreeCap
	if groupCount < cfg.Min {
		groupCount = cfg.Min
	}
	if groupCount > cfg.M {
		groupCount = cfg.M
	}
	if groupCount > len(items) {
		groupCount = len(items)
	}
	if groupCount < 1 {
		groupCount = 1
	}

	groups := make([][]T, 0, groupCount)
	base := len(items) / groupCount
	extra := len(items) % groupCount
	start := 0
	for i := 0; i < groupCount; i++ {
		size := base
		if i < extra {
			size++
		}
		if size == 0 {
			continue
		}
		groups = append(groups, items[start:start+size])
		start += size
	}
	return groups
}

func sortByAxis[S spade.Scalar, T spade.SpatialObject[S]](items []T, axis int) {
	sort.Slice(items, func(i, j int) bool {
		ci := rectOf[S](items[i]).Center()
		cj := rectOf[S](items[j]).Center()
		if axis == 0 {
			return ci.X < cj.X
		}
		return ci.Y < cj.Y
	})
}
