package delaunay

import (
	"github.com/purpleposeidon/spade/dcel"
	"github.com/purpleposeidon/spade/predicate"
)

// legalize is the edge-flip restoration pass of SPEC_FULL.md §4.3:
// repeatedly pop a candidate edge, flip it if doing so is legal and
// the in_circle test shows the current two triangles it borders
// violate the Delaunay condition, and push the edges of the freshly
// reshaped triangles back on for re-checking. It is Lawson's
// algorithm, applied after every Insert dispatch.
func (t *DelaunayTriangulation[S, V]) legalize(stack []dcel.EdgeHandle) {
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !t.CanBeFlipped(e) {
			continue
		}

		a, b := t.mesh.From(e), t.mesh.To(e)
		apex := t.mesh.To(t.mesh.ONext(e))
		opposite := t.mesh.To(t.mesh.ONext(t.mesh.Sym(e)))

		if t.inCircle(t.Position(a), t.Position(b), t.Position(apex), t.Position(opposite)) != predicate.Positive {
			continue
		}

		t.mesh.FlipCW(e)
		twin := t.mesh.Sym(e)
		stack = append(stack,
			t.mesh.ONext(e), t.mesh.OPrev(e),
			t.mesh.ONext(twin), t.mesh.OPrev(twin),
		)
	}
}
