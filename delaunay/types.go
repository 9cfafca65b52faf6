// Package delaunay implements a dynamic 2D Delaunay triangulation with
// optional constrained-edge support (CDT), built on package dcel's
// half-edge mesh. The incremental insert/remove/flip algorithms are
// ported from _examples/original_source/src/delaunay/dcel.rs and the
// sibling files in that crate's delaunay module, rendered as ordinary
// Go methods on a generic DelaunayTriangulation instead of the
// original's trait-bound kernel type.
package delaunay

import (
	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/dcel"
	"github.com/purpleposeidon/spade/predicate"
)

// vertexData couples a vertex's position (which the kernel's geometric
// predicates depend on) with the caller's payload.
type vertexData[S spade.Scalar, V any] struct {
	pos     spade.Point[S]
	payload V
}

// edgeData carries the one per-half-edge bit the kernel needs: whether
// an edge is a CDT constraint and therefore exempt from flipping. Plain
// (non-constrained) triangulations simply never set it.
type edgeData struct {
	constrained bool
}

// DelaunayTriangulation is a dynamic Delaunay triangulation over
// points with payload type V. The zero value is not usable; construct
// with New.
type DelaunayTriangulation[S spade.Scalar, V any] struct {
	mesh     *dcel.Mesh[vertexData[S, V], edgeData]
	lastFace dcel.FaceHandle

	// chainTailEdge and chainTail track the growing end of the
	// collinear bootstrap chain before the first triangle exists; see
	// insertDegenerate.
	chainTailEdge dcel.EdgeHandle
	chainTail     dcel.VertexHandle
}

// New returns an empty triangulation.
func New[S spade.Scalar, V any]() *DelaunayTriangulation[S, V] {
	return &DelaunayTriangulation[S, V]{
		mesh:     dcel.New[vertexData[S, V], edgeData](),
		lastFace: dcel.OuterFace,
	}
}

// NumVertices returns the number of points currently in the triangulation.
func (t *DelaunayTriangulation[S, V]) NumVertices() int { return t.mesh.NumVertices() }

// NumTriangles returns the number of bounded (non-outer) faces.
func (t *DelaunayTriangulation[S, V]) NumTriangles() int {
	n := t.mesh.NumFaces()
	if n == 0 {
		return 0
	}
	return n - 1
}

// Position returns the position stored at v.
func (t *DelaunayTriangulation[S, V]) Position(v dcel.VertexHandle) spade.Point[S] {
	return t.mesh.VertexData(v).pos
}

// Data returns the payload stored at v.
func (t *DelaunayTriangulation[S, V]) Data(v dcel.VertexHandle) V {
	return t.mesh.VertexData(v).payload
}

// SetData overwrites the payload stored at v without touching its position.
func (t *DelaunayTriangulation[S, V]) SetData(v dcel.VertexHandle, data V) {
	vd := t.mesh.VertexData(v)
	vd.payload = data
	t.mesh.SetVertexData(v, vd)
}

// Mesh exposes the underlying half-edge mesh for callers that need
// direct DCEL access (face walks, edge adjacency) beyond this
// package's own surface.
func (t *DelaunayTriangulation[S, V]) Mesh() *dcel.Mesh[vertexData[S, V], edgeData] {
	return t.mesh
}

func (t *DelaunayTriangulation[S, V]) orient(a, b, p spade.Point[S]) predicate.Sign {
	return predicate.Orient2D(a, b, p)
}

func (t *DelaunayTriangulation[S, V]) inCircle(a, b, c, p spade.Point[S]) predicate.Sign {
	return predicate.InCircle(a, b, c, p)
}

// IsDegenerate reports whether the triangulation has fewer than 3
// vertices forming a real triangle yet — i.e. it is still in the
// zero/one/two-point or fully-collinear bootstrap stage described by
// SPEC_FULL.md §4.3's Insert dispatch.
func (t *DelaunayTriangulation[S, V]) IsDegenerate() bool {
	return t.mesh.NumFaces() <= 1
}

// CanBeFlipped reports whether e borders two proper triangles on
// neither side of which it is a CDT constraint — the precondition
// FlipCW itself assumes but does not check.
func (t *DelaunayTriangulation[S, V]) CanBeFlipped(e dcel.EdgeHandle) bool {
	if t.mesh.EdgeData(e).constrained {
		return false
	}
	twin := t.mesh.Sym(e)
	if t.mesh.Face(e) == dcel.OuterFace || t.mesh.Face(twin) == dcel.OuterFace {
		return false
	}
	return len(t.mesh.CollectFaceEdges(e)) == 3 && len(t.mesh.CollectFaceEdges(twin)) == 3
}
