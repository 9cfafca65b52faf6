// Package rtree implements a bulk-loadable R*-tree spatial index over
// spade.SpatialObject values, per SPEC_FULL.md §4. The overflow
// treatment (forced reinsertion before splitting), split axis/distribution
// selection (margin sum, then overlap, then area), and best-first nearest
// neighbor search follow the R*-tree paper as grounded in
// _examples/original_source/src/rtree.rs; the node/tree shape and the
// Stop-sentinel RangeSearch convention are grounded in
// _examples/missinglink-simplefeatures/rtree/rtree.go.
package rtree

import (
	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/boundingrect"
)

// node is a directory or leaf node of the tree. Directory nodes hold
// children with their own cached MBRs; leaf nodes hold the indexed
// items directly. Unlike the teacher's flat index-array DCEL-style
// storage, nodes here are pointer-linked: R*-style forced reinsertion
// needs to walk back up from an arbitrary leaf to its ancestors, which
// is awkward to express over a flat arena without also threading
// parent indices through every mutation.
type node[S spade.Scalar, T spade.SpatialObject[S]] struct {
	mbr      boundingrect.Rect[S]
	depth    int // 0 at the leaves, increasing toward the root
	isLeaf   bool
	items    []T          // populated when isLeaf
	children []*node[S, T] // populated when !isLeaf
}

func (n *node[S, T]) mbrOf(i int) boundingrect.Rect[S] {
	if n.isLeaf {
		lower, upper := n.items[i].MBR2()
		return boundingrect.FromCorners(lower, upper)
	}
	return n.children[i].mbr
}

func (n *node[S, T]) count() int {
	if n.isLeaf {
		return len(n.items)
	}
	return len(n.children)
}

// recomputeMBR rebuilds n's cached bounding rectangle from its
// children or items. Callers must call this after any mutation of
// n.items/n.children.
func (n *node[S, T]) recomputeMBR() {
	c := n.count()
	if c == 0 {
		var zero S
		n.mbr = boundingrect.FromPoint(spade.NewPoint(zero, zero))
		return
	}
	r := n.mbrOf(0)
	for i := 1; i < c; i++ {
		r.AddRect(n.mbrOf(i))
	}
	n.mbr = r
}

// RTree is a dynamic, bulk-loadable spatial index over items of type
// T satisfying spade.SpatialObject[S].
type RTree[S spade.Scalar, T spade.SpatialObject[S]] struct {
	root *node[S, T]
	cfg  Config
	size int
}

// New returns an empty tree configured with DefaultConfig.
func New[S spade.Scalar, T spade.SpatialObject[S]]() *RTree[S, T] {
	return NewWithConfig[S, T](DefaultConfig())
}

// NewWithConfig returns an empty tree using cfg, after clamping any
// invalid fields to a sane default.
func NewWithConfig[S spade.Scalar, T spade.SpatialObject[S]](cfg Config) *RTree[S, T] {
	return &RTree[S, T]{
		root: &node[S, T]{isLeaf: true},
		cfg:  cfg.validate(),
	}
}

// Size returns the number of items currently indexed.
func (t *RTree[S, T]) Size() int { return t.size }

// IsEmpty reports whether the tree holds no items.
func (t *RTree[S, T]) IsEmpty() bool { return t.size == 0 }

// Root returns the tree's root MBR, the bounding rectangle of every
// indexed item. Calling it on an empty tree returns a degenerate
// rectangle at the origin.
func (t *RTree[S, T]) Root() boundingrect.Rect[S] { return t.root.mbr }

// Extent returns the bounding rectangle of every indexed item, and
// true, or the zero Rect and false if the tree is empty — the
// (T, bool) missing-result idiom applied to a whole-tree MBR query,
// useful for callers seeding a BoundingRect-based locate grid.
func (t *RTree[S, T]) Extent() (boundingrect.Rect[S], bool) {
	if t.IsEmpty() {
		var zero boundingrect.Rect[S]
		return zero, false
	}
	return t.root.mbr, true
}

func rectOf[S spade.Scalar, T spade.SpatialObject[S]](item T) boundingrect.Rect[S] {
	lower, upper := item.MBR2()
	return boundingrect.FromCorners(lower, upper)
}

// RangeSearch visits every item whose MBR intersects query, in no
// particular order, calling visit on each. Any non-nil error from
// visit is returned by RangeSearch and ends the traversal early,
// except for the sentinel Stop, which also ends the traversal early
// but is not itself reported as an error (RangeSearch returns nil).
func (t *RTree[S, T]) RangeSearch(query boundingrect.Rect[S], visit func(T) error) error {
	err := rangeSearch(t.root, query, visit)
	if err == Stop {
		return nil
	}
	return err
}

func rangeSearch[S spade.Scalar, T spade.SpatialObject[S]](n *node[S, T], query boundingrect.Rect[S], visit func(T) error) error {
	if !n.mbr.Intersects(query) {
		return nil
	}
	if n.isLeaf {
		for _, item := range n.items {
			if !rectOf[S](item).Intersects(query) {
				continue
			}
			if err := visit(item); err != nil {
				return err
			}
		}
		return nil
	}
	for _, c := range n.children {
		if err := rangeSearch(c, query, visit); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the first item found containing p exactly, and true.
// It returns the zero value and false if no indexed item contains p.
func (t *RTree[S, T]) Lookup(p spade.Point[S]) (T, bool) {
	var found T
	ok := false
	_ = lookup(t.root, p, &found, &ok)
	return found, ok
}

func lookup[S spade.Scalar, T spade.SpatialObject[S]](n *node[S, T], p spade.Point[S], found *T, ok *bool) bool {
	if !n.mbr.ContainsPoint(p) {
		return false
	}
	if n.isLeaf {
		for _, item := range n.items {
			if item.Contains(p) {
				*found = item
				*ok = true
				return true
			}
		}
		return false
	}
	for _, c := range n.children {
		if lookup(c, p, found, ok) {
			return true
		}
	}
	return false
}

// Walk visits every item in the tree, in no particular order.
func (t *RTree[S, T]) Walk(visit func(T)) {
	walk(t.root, visit)
}

func walk[S spade.Scalar, T spade.SpatialObject[S]](n *node[S, T], visit func(T)) {
	if n.isLeaf {
		for _, item := range n.items {
			visit(item)
		}
		return
	}
	for _, c := range n.children {
		walk(c, visit)
	}
}
