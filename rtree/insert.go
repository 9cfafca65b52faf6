package rtree

import (
	"sort"

	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/boundingrect"
)

// Insert adds item to the tree, performing R*-style forced
// reinsertion before splitting on overflow, per SPEC_FULL.md §4.5.
func (t *RTree[S, T]) Insert(item T) {
	treated := map[int]bool{}
	t.insert(item, treated)
	t.size++
}

// insert is the shared entry point for both a fresh top-level Insert
// and the reinsertions it triggers; treated tracks, per tree level,
// whether forced reinsertion has already been attempted once during
// the enclosing top-level call (R*-tree allows it only once per level
// per Insert, falling back to a split thereafter).
func (t *RTree[S, T]) insert(item T, treated map[int]bool) {
	path := []*node[S, T]{t.root}
	n := t.root
	for !n.isLeaf {
		n = chooseSubtree[S, T](n, item)
		path = append(path, n)
	}

	leaf := path[len(path)-1]
	leaf.items = append(leaf.items, item)
	leaf.recomputeMBR()

	t.insertFixup(path, treated)
}

// chooseSubtree picks the child of n that item should descend into:
// at the level directly above the leaves it minimizes overlap
// enlargement (breaking ties by area enlargement, then area); at
// higher levels it minimizes area enlargement (breaking ties by area).
func chooseSubtree[S spade.Scalar, T spade.SpatialObject[S]](n *node[S, T], item T) *node[S, T] {
	itemRect := rectOf[S](item)
	leafLevel := n.children[0].isLeaf

	best := 0
	if leafLevel {
		bestOverlap, bestAreaEnl, bestArea := overlapEnlargement(n, 0, itemRect), areaEnlargement(n.children[0].mbr, itemRect), n.children[0].mbr.Area()
		for i := 1; i < len(n.children); i++ {
			ov := overlapEnlargement(n, i, itemRect)
			ae := areaEnlargement(n.children[i].mbr, itemRect)
			a := n.children[i].mbr.Area()
			if ov < bestOverlap ||
				(ov == bestOverlap && ae < bestAreaEnl) ||
				(ov == bestOverlap && ae == bestAreaEnl && a < bestArea) {
				best, bestOverlap, bestAreaEnl, bestArea = i, ov, ae, a
			}
		}
	} else {
		bestAreaEnl, bestArea := areaEnlargement(n.children[0].mbr, itemRect), n.children[0].mbr.Area()
		for i := 1; i < len(n.children); i++ {
			ae := areaEnlargement(n.children[i].mbr, itemRect)
			a := n.children[i].mbr.Area()
			if ae < bestAreaEnl || (ae == bestAreaEnl && a < bestArea) {
				best, bestAreaEnl, bestArea = i, ae, a
			}
		}
	}
	return n.children[best]
}

func areaEnlargement[S spade.Scalar](r boundingrect.Rect[S], added boundingrect.Rect[S]) S {
	enlarged := r
	enlarged.AddRect(added)
	return enlarged.Area() - r.Area()
}

// overlapEnlargement returns how much enlarging n.children[i] by added
// grows its total overlap with n's other children.
func overlapEnlargement[S spade.Scalar, T spade.SpatialObject[S]](n *node[S, T], i int, added boundingrect.Rect[S]) S {
	before := overlapOf(n, i, n.children[i].mbr)
	enlarged := n.children[i].mbr
	enlarged.AddRect(added)
	after := overlapOf(n, i, enlarged)
	return after - before
}

func overlapOf[S spade.Scalar, T spade.SpatialObject[S]](n *node[S, T], i int, rect boundingrect.Rect[S]) S {
	var sum S
	for j, c := range n.children {
		if j == i {
			continue
		}
		sum += rect.Intersect(c.mbr).Area()
	}
	return sum
}

// insertFixup walks path from the leaf back to the root, resolving
// overflow at each level via forced reinsertion (once per level per
// top-level Insert) or, failing that, a split; it keeps ancestor MBRs
// in sync along the way.
func (t *RTree[S, T]) insertFixup(path []*node[S, T], treated map[int]bool) {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		isRoot := i == 0

		if n.count() <= t.cfg.M {
			n.recomputeMBR()
			continue
		}

		if !isRoot && n.isLeaf && !treated[n.depth] {
			treated[n.depth] = true
			removed := forcedReinsert(n, t.cfg.P)
			n.recomputeMBR()
			for j := i; j >= 0; j-- {
				path[j].recomputeMBR()
			}
			for _, r := range removed {
				t.insert(r, treated)
			}
			continue
		}

		sibling := split(n, t.cfg)
		n.recomputeMBR()
		sibling.depth = n.depth

		if isRoot {
			newRoot := &node[S, T]{
				isLeaf:   false,
				depth:    n.depth + 1,
				children: []*node[S, T]{n, sibling},
			}
			newRoot.recomputeMBR()
			t.root = newRoot
			return
		}

		parent := path[i-1]
		parent.children = append(parent.children, sibling)
		parent.recomputeMBR()
		// Continue the loop at the parent's level, which may itself
		// now be overflowing.
	}
}

// forcedReinsert removes the p entries of n farthest from n's center
// (by distance between entry-MBR center and n's MBR center) and
// returns their items, leaving the rest in n. Only meaningful for leaf
// nodes: directory-level overflow always falls through to a split in
// this implementation, since reinserting a whole subtree is
// equivalent to reinserting its leaves one at a time and is simpler
// to reason about than re-homing an internal node mid-tree.
func forcedReinsert[S spade.Scalar, T spade.SpatialObject[S]](n *node[S, T], p int) []T {
	if !n.isLeaf || p <= 0 || p >= len(n.items) {
		return nil
	}
	center := n.mbr.Center()
	type scored struct {
		item T
		d2   S
	}
	scored_ := make([]scored, len(n.items))
	for i, it := range n.items {
		c := rectOf[S](it).Center()
		scored_[i] = scored{it, c.Distance2(center)}
	}
	sort.Slice(scored_, func(a, b int) bool { return scored_[a].d2 > scored_[b].d2 })

	removed := make([]T, p)
	for i := 0; i < p; i++ {
		removed[i] = scored_[i].item
	}
	kept := make([]T, 0, len(n.items)-p)
	for i := p; i < len(scored_); i++ {
		kept = append(kept, scored_[i].item)
	}
	n.items = kept
	return removed
}

// split partitions n's overflowing entries into n (kept in place) and
// a new sibling node, choosing the axis that minimizes the summed
// margin over all valid distributions, then the distribution within
// that axis that minimizes overlap (ties broken by area), per the
// R*-tree split algorithm.
func split[S spade.Scalar, T spade.SpatialObject[S]](n *node[S, T], cfg Config) *node[S, T] {
	count := n.count()
	type entry struct {
		rect boundingrect.Rect[S]
		item T
		kid  *node[S, T]
	}
	entries := make([]entry, count)
	for i := 0; i < count; i++ {
		if n.isLeaf {
			entries[i] = entry{rect: rectOf[S](n.items[i]), item: n.items[i]}
		} else {
			entries[i] = entry{rect: n.children[i].mbr, kid: n.children[i]}
		}
	}

	bestAxis, bestIndex := chooseSplitAxisAndIndex(entries, cfg, func(e entry) boundingrect.Rect[S] { return e.rect })

	sortEntries(entries, bestAxis, func(e entry) boundingrect.Rect[S] { return e.rect })

	groupA := entries[:bestIndex]
	groupB := entries[bestIndex:]

	sibling := &node[S, T]{isLeaf: n.isLeaf}
	if n.isLeaf {
		n.items = n.items[:0]
		for _, e := range groupA {
			n.items = append(n.items, e.item)
		}
		for _, e := range groupB {
			sibling.items = append(sibling.items, e.item)
		}
	} else {
		n.children = n.children[:0]
		for _, e := range groupA {
			n.children = append(n.children, e.kid)
		}
		for _, e := range groupB {
			sibling.children = append(sibling.children, e.kid)
		}
	}
	return sibling
}

// chooseSplitAxisAndIndex implements the R*-tree ChooseSplitAxis and
// ChooseSplitIndex algorithms: for each axis, sort by lower then by
// upper bound and sum HalfMargin over the M-2*Min+2 valid
// distributions; the axis with the smaller sum wins. Within the
// winning axis, the distribution minimizing overlap (ties by area)
// determines the split index.
func chooseSplitAxisAndIndex[E any, S spade.Scalar](entries []E, cfg Config, rectOf func(E) boundingrect.Rect[S]) (axis, index int) {
	n := len(entries)
	minSplit := cfg.Min
	if minSplit < 1 {
		minSplit = 1
	}
	maxSplit := n - minSplit
	if maxSplit < minSplit {
		maxSplit = minSplit
	}

	bestAxis := 0
	var bestMarginSum S
	bestMarginSet := false

	for axisCandidate := 0; axisCandidate < 2; axisCandidate++ {
		cp := make([]E, n)
		copy(cp, entries)
		sortEntries(cp, axisCandidate, rectOf)

		var sum S
		for k := minSplit; k <= maxSplit; k++ {
			a := groupRect(cp[:k], rectOf)
			b := groupRect(cp[k:], rectOf)
			sum += a.HalfMargin() + b.HalfMargin()
		}
		if !bestMarginSet || sum < bestMarginSum {
			bestMarginSet = true
			bestMarginSum = sum
			bestAxis = axisCandidate
		}
	}

	cp := make([]E, n)
	copy(cp, entries)
	sortEntries(cp, bestAxis, rectOf)

	bestIndex := minSplit
	bestOverlapSet := false
	var bestOverlap, bestArea S
	for k := minSplit; k <= maxSplit; k++ {
		a := groupRect(cp[:k], rectOf)
		b := groupRect(cp[k:], rectOf)
		overlap := a.Intersect(b).Area()
		area := a.Area() + b.Area()
		if !bestOverlapSet || overlap < bestOverlap || (overlap == bestOverlap && area < bestArea) {
			bestOverlapSet = true
			bestOverlap, bestArea = overlap, area
			bestIndex = k
		}
	}

	return bestAxis, bestIndex
}

func groupRect[E any, S spade.Scalar](es []E, rectOf func(E) boundingrect.Rect[S]) boundingrect.Rect[S] {
	r := rectOf(es[0])
	for _, e := range es[1:] {
		r.AddRect(rectOf(e))
	}
	return r
}

func sortEntries[E any, S spade.Scalar](es []E, axis int, rectOf func(E) boundingrect.Rect[S]) {
	sort.Slice(es, func(i, j int) bool {
		ri, rj := rectOf(es[i]), rectOf(es[j])
		if axis == 0 {
			if ri.Lower().X != rj.Lower().X {
				return ri.Lower().X < rj.Lower().X
			}
			return ri.Upper().X < rj.Upper().X
		}
		if ri.Lower().Y != rj.Lower().Y {
			return ri.Lower().Y < rj.Lower().Y
		}
		return ri.Upper().Y < rj.Upper().Y
	})
}
