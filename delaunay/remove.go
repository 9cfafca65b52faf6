package delaunay

import (
	"github.com/purpleposeidon/spade/dcel"
	"github.com/purpleposeidon/spade/predicate"
)

// VertexRemovalResult reports the payload removed from a vertex, and,
// if the underlying swap-remove relocated a different vertex into the
// freed slot, the handle that vertex had before the removal (it now
// answers to the removed vertex's handle) — mirroring
// dcel.VertexRemovalResult for callers working at this package's level.
type VertexRemovalResult[V any] struct {
	UpdatedVertex dcel.VertexHandle
	Data          V
}

// Remove deletes v from the triangulation via ring-capture (every
// incident face is merged into one polygon by repeated RemoveEdge)
// followed by ear-cutting retriangulation of the resulting hole, per
// SPEC_FULL.md §4.3. The ear-cutting pass picks any convex ear rather
// than ranking ears by in_circle magnitude — predicate.InCircle
// exposes only a three-valued Sign, not the determinant itself, so
// ranking "smallest in-circle value" isn't expressible against that
// oracle. Full Delaunay-ness of the hole is instead restored
// afterward by running the same edge-flip legalize pass Insert uses:
// any two triangulations sharing a fixed outer boundary are connected
// by a sequence of diagonal flips, so this reaches the same fixpoint
// the original's magnitude-ranked ear choice was chasing.
func (t *DelaunayTriangulation[S, V]) Remove(v dcel.VertexHandle) VertexRemovalResult[V] {
	neighbors := t.ringNeighbors(v)

	remainingFace := dcel.OuterFace
	if out, ok := t.mesh.VertexOutEdge(v); ok {
		remainingFace = t.mesh.Face(out)
	}

	result := t.mesh.RemoveVertex(v, remainingFace)

	if len(neighbors) >= 4 {
		t.retriangulateHole(neighbors)
	}
	// The hint may now point at a stale or relabeled face; fall back
	// to a fresh walk on the next Locate rather than risk a handle
	// that now names an unrelated face.
	t.lastFace = dcel.OuterFace

	return VertexRemovalResult[V]{UpdatedVertex: result.UpdatedVertex, Data: result.Data}
}

func (t *DelaunayTriangulation[S, V]) ringNeighbors(v dcel.VertexHandle) []dcel.VertexHandle {
	outs := t.mesh.CollectCCWOutEdges(v)
	neighbors := make([]dcel.VertexHandle, len(outs))
	for i, e := range outs {
		neighbors[i] = t.mesh.To(e)
	}
	return neighbors
}

// retriangulateHole ear-clips the polygon bounded by ring (given in
// CCW order) down to a single triangle, adding one diagonal per ear
// cut, then legalizes every new diagonal.
func (t *DelaunayTriangulation[S, V]) retriangulateHole(ring []dcel.VertexHandle) {
	remaining := append([]dcel.VertexHandle(nil), ring...)
	var diagonals []dcel.EdgeHandle

	for len(remaining) > 3 {
		n := len(remaining)
		idx := 0
		for i := 0; i < n; i++ {
			p0 := remaining[(i-1+n)%n]
			p1 := remaining[i]
			p2 := remaining[(i+1)%n]
			if t.orient(t.Position(p0), t.Position(p1), t.Position(p2)) == predicate.Positive {
				idx = i
				break
			}
		}

		n = len(remaining)
		p0 := remaining[(idx-1+n)%n]
		p1 := remaining[idx]
		p2 := remaining[(idx+1)%n]

		eA, okA := t.mesh.EdgeFromNeighbors(p0, p1)
		eB, okB := t.mesh.EdgeFromNeighbors(p1, p2)
		if !okA || !okB {
			// Degenerate ring (duplicate points, or a collapsed
			// boundary); stop rather than operate on a missing edge.
			break
		}
		diag := t.mesh.CreateFace(eB, eA)
		diagonals = append(diagonals, diag)

		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	t.legalize(diagonals)
}
