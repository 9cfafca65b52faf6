package rtree

import (
	"container/heap"

	"github.com/purpleposeidon/spade"
)

// entryHeap is a best-first priority queue of tree entries ordered by
// ascending distance bound to the query point, grounded on the
// entriesQueue pattern in
// _examples/missinglink-simplefeatures/rtree/nearest.go, generalized
// from that file's fixed leaf/branch entry union to a generic node/item
// union via the isItem flag.
type entryHeap[S spade.Scalar, T spade.SpatialObject[S]] struct {
	items []entryHeapItem[S, T]
}

type entryHeapItem[S spade.Scalar, T spade.SpatialObject[S]] struct {
	dist2  S
	node   *node[S, T]
	item   T
	isItem bool
}

func (h *entryHeap[S, T]) Len() int            { return len(h.items) }
func (h *entryHeap[S, T]) Less(i, j int) bool  { return h.items[i].dist2 < h.items[j].dist2 }
func (h *entryHeap[S, T]) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *entryHeap[S, T]) Push(x interface{})  { h.items = append(h.items, x.(entryHeapItem[S, T])) }
func (h *entryHeap[S, T]) Pop() interface{} {
	old := h.items
	n := len(old)
	last := old[n-1]
	h.items = old[:n-1]
	return last
}

// NearestNeighbor returns the indexed item closest to p (by MBR
// MinDist2), and true, or the zero value and false if the tree is
// empty. It is a best-first branch-and-bound search: directory nodes
// are expanded in order of their MinDist2 lower bound, so the first
// item popped off the queue is guaranteed nearest.
func (t *RTree[S, T]) NearestNeighbor(p spade.Point[S]) (T, bool) {
	it := t.NearestNeighborIterator(p)
	it.pruneSiblings = true
	return it.Next()
}

// NearestNeighborIterator returns items in non-decreasing distance
// order from p, one at a time, without materializing the full
// ordering up front. It prunes no subtree, so every item is produced.
func (t *RTree[S, T]) NearestNeighborIterator(p spade.Point[S]) *NearestNeighborIter[S, T] {
	h := &entryHeap[S, T]{}
	heap.Init(h)
	if t.root.count() > 0 {
		heap.Push(h, entryHeapItem[S, T]{dist2: t.root.mbr.MinDist2(p), node: t.root})
	}
	return &NearestNeighborIter[S, T]{heap: h, query: p}
}

// NearestNeighborIter is a lazy, resumable nearest-neighbor walk.
type NearestNeighborIter[S spade.Scalar, T spade.SpatialObject[S]] struct {
	heap  *entryHeap[S, T]
	query spade.Point[S]
	// pruneSiblings enables min_max_dist2 pruning; only NearestNeighbor,
	// which stops after the first item, sets it.
	pruneSiblings bool
}

// Next returns the next-nearest item, and true, or the zero value and
// false once every item has been produced.
func (it *NearestNeighborIter[S, T]) Next() (T, bool) {
	for it.heap.Len() > 0 {
		top := heap.Pop(it.heap).(entryHeapItem[S, T])
		if top.isItem {
			return top.item, true
		}
		n := top.node
		if n.isLeaf {
			for _, item := range n.items {
				d2 := rectOf[S](item).MinDist2(it.query)
				heap.Push(it.heap, entryHeapItem[S, T]{dist2: d2, item: item, isItem: true})
			}
			continue
		}

		// min_max_dist2 pruning (spec.md §4.5), applied only when
		// pruneSiblings is set: a child whose MinDist2 exceeds the
		// smallest MinMaxDist2 among its siblings cannot hold anything
		// closer than a candidate already guaranteed to exist within
		// that sibling's subtree, so it is discarded without ever being
		// pushed onto the heap. Pruning would drop items from a full
		// walk, so the iterator leaves it off.
		bound := n.children[0].mbr.MinMaxDist2(it.query)
		for _, c := range n.children[1:] {
			if b := c.mbr.MinMaxDist2(it.query); b < bound {
				bound = b
			}
		}
		for _, c := range n.children {
			d2 := c.mbr.MinDist2(it.query)
			if it.pruneSiblings && d2 > bound {
				continue
			}
			heap.Push(it.heap, entryHeapItem[S, T]{dist2: d2, node: c})
		}
	}
	var zero T
	return zero, false
}

// PrioritySearch visits items in non-decreasing distance order from p,
// calling visit on each, until every item has been visited or visit
// returns a non-nil error. The sentinel Stop ends the traversal early
// without being reported as an error (PrioritySearch returns nil).
func (t *RTree[S, T]) PrioritySearch(p spade.Point[S], visit func(T) error) error {
	it := t.NearestNeighborIterator(p)
	for {
		item, ok := it.Next()
		if !ok {
			return nil
		}
		if err := visit(item); err != nil {
			if err == Stop {
				return nil
			}
			return err
		}
	}
}
