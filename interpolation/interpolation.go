// Package interpolation implements the four natural-neighbor-family
// scattered-data interpolants described for DelaunayTriangulation:
// barycentric (the degenerate fast path), plain Sibson natural-neighbor,
// Sibson's gradient-blended C1 correction, and Farin's cubic
// Bezier-triangle C1 fit. All four return a zero value and false for a
// query point outside the triangulation's convex hull, ported from the
// `Option`-returning interpolation entry points of
// _examples/original_source/examples/nninterpolation/src/interpolation.rs
// (the trait there only calls the methods; the area-stealing and
// Bezier-triangle math below follow the textbook natural-neighbor and
// Clough-Tocher constructions those calls assume).
package interpolation

import (
	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/dcel"
	"github.com/purpleposeidon/spade/delaunay"
)

// ValueFunc supplies the scalar value associated with a triangulation
// vertex, mirroring the `|v| v.height` closures in the reference
// interpolation example.
type ValueFunc[S spade.Scalar] func(v dcel.VertexHandle) S

// GradientFunc supplies the estimated gradient at v for the purposes of
// interpolating toward neighbor — the core never estimates gradients
// itself, matching the `|_, v| v.gradient` closures in the reference
// example.
type GradientFunc[S spade.Scalar] func(v, neighbor dcel.VertexHandle) [2]S

// neighborWeight pairs a natural-neighbor vertex with its normalized
// Sibson coordinate (or, for the barycentric fast path, its ordinary
// barycentric weight).
type neighborWeight[S spade.Scalar] struct {
	Vertex dcel.VertexHandle
	Weight S
}

// Barycentric interpolates value linearly over the triangle (or edge,
// or vertex) containing q, ignoring every other vertex in the
// triangulation. This is the degenerate fast path mentioned alongside
// the other three interpolants: exact when the underlying field truly
// is piecewise-linear over the triangulation, and always a single
// straight-walk locate plus O(1) arithmetic.
func Barycentric[S spade.Scalar, V any](t *delaunay.DelaunayTriangulation[S, V], q spade.Point[S], value ValueFunc[S]) (S, bool) {
	var zero S
	loc := t.Locate(q)
	switch loc.Kind {
	case delaunay.OutsideConvexHull:
		return zero, false
	case delaunay.OnVertex:
		return value(loc.Vertex), true
	case delaunay.OnEdge:
		mesh := t.Mesh()
		a, b := mesh.From(loc.Edge), mesh.To(loc.Edge)
		wa, wb := edgeWeights(t.Position(a), t.Position(b), q)
		return wa*value(a) + wb*value(b), true
	default:
		weights, ok := barycentricWeightsOf(t, loc.Face, q)
		if !ok {
			return zero, false
		}
		var sum S
		for _, nw := range weights {
			sum += nw.Weight * value(nw.Vertex)
		}
		return sum, true
	}
}

// NaturalNeighbor interpolates value at q using Sibson's natural-neighbor
// coordinates: the fraction of each neighbor's Voronoi cell that q's
// insertion would steal, computed without mutating the triangulation.
func NaturalNeighbor[S spade.Scalar, V any](t *delaunay.DelaunayTriangulation[S, V], q spade.Point[S], value ValueFunc[S]) (S, bool) {
	var zero S
	weights, ok := naturalNeighborWeights(t, q)
	if !ok {
		return zero, false
	}
	var sum S
	for _, nw := range weights {
		sum += nw.Weight * value(nw.Vertex)
	}
	return sum, true
}
