package rtree

import (
	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/boundingrect"
)

// Delete removes the first item for which equals(item, target) holds,
// reporting whether anything was removed. Underflowing nodes along the
// deletion path are removed from the tree and their surviving entries
// reinserted from the root, the standard R-tree CondenseTree
// treatment.
func (t *RTree[S, T]) Delete(target T, equals func(a, b T) bool) bool {
	path, idx, ok := findLeafPath(t.root, rectOf[S](target), equals, target)
	if !ok {
		return false
	}
	leaf := path[len(path)-1]
	leaf.items = append(leaf.items[:idx], leaf.items[idx+1:]...)
	t.size--

	var orphans []T
	for i := len(path) - 1; i > 0; i-- {
		n := path[i]
		parent := path[i-1]
		if n.count() >= t.cfg.Min {
			n.recomputeMBR()
			continue
		}
		collectItems(n, &orphans)
		removeChild(parent, n)
	}
	t.root.recomputeMBR()

	// The root is special: it may legally hold fewer than Min entries.
	// If it has collapsed to a single directory child, promote that
	// child to be the new root to keep tree height minimal.
	for !t.root.isLeaf && len(t.root.children) == 1 {
		t.root = t.root.children[0]
	}

	treated := map[int]bool{}
	for _, item := range orphans {
		t.insert(item, treated)
	}
	return true
}

func removeChild[S spade.Scalar, T spade.SpatialObject[S]](parent *node[S, T], child *node[S, T]) {
	for i, c := range parent.children {
		if c == child {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			return
		}
	}
}

func collectItems[S spade.Scalar, T spade.SpatialObject[S]](n *node[S, T], out *[]T) {
	if n.isLeaf {
		*out = append(*out, n.items...)
		return
	}
	for _, c := range n.children {
		collectItems(c, out)
	}
}

// findLeafPath locates the leaf node holding an item matching target
// under rect, returning the root-to-leaf path and the item's index
// within the leaf.
func findLeafPath[S spade.Scalar, T spade.SpatialObject[S]](n *node[S, T], rect boundingrect.Rect[S], equals func(a, b T) bool, target T) ([]*node[S, T], int, bool) {
	if !n.mbr.Intersects(rect) {
		return nil, 0, false
	}
	if n.isLeaf {
		for i, item := range n.items {
			if equals(item, target) {
				return []*node[S, T]{n}, i, true
			}
		}
		return nil, 0, false
	}
	for _, c := range n.children {
		if path, idx, ok := findLeafPath(c, rect, equals, target); ok {
			return append([]*node[S, T]{n}, path...), idx, true
		}
	}
	return nil, 0, false
}
