package interpolation

import (
	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/delaunay"
)

// FarinC1 fits a cubic Bezier triangle (the classic Clough-Tocher
// construction) over the triangle containing q, using each corner's
// value and caller-supplied gradient to build the patch's edge control
// points, and the standard averaged-edges rule for its single interior
// control point. Unlike SibsonC1 this only consults the three vertices
// of the containing triangle, not the full natural-neighbor set — the
// patch is defined per-triangle, matching how a Bezier triangle mesh is
// normally built.
func FarinC1[S spade.Scalar, V any](t *delaunay.DelaunayTriangulation[S, V], q spade.Point[S], value ValueFunc[S], gradient GradientFunc[S]) (S, bool) {
	var zero S
	loc := t.Locate(q)
	switch loc.Kind {
	case delaunay.OutsideConvexHull:
		return zero, false
	case delaunay.OnVertex:
		return value(loc.Vertex), true
	}

	weights, ok := barycentricWeightsOf(t, loc.Face, q)
	if !ok || len(weights) != 3 {
		return zero, false
	}
	v0, v1, v2 := weights[0].Vertex, weights[1].Vertex, weights[2].Vertex
	u, v, w := weights[0].Weight, weights[1].Weight, weights[2].Weight

	p0, p1, p2 := t.Position(v0), t.Position(v1), t.Position(v2)
	z0, z1, z2 := value(v0), value(v1), value(v2)
	g0, g1, g2 := gradient(v0, v0), gradient(v1, v1), gradient(v2, v2)

	third := spade.One[S]() / S(3)
	edgeDeriv := func(z S, g [2]S, from, to spade.Point[S]) S {
		return z + third*(g[0]*(to.X-from.X)+g[1]*(to.Y-from.Y))
	}

	b300, b030, b003 := z0, z1, z2
	b210 := edgeDeriv(z0, g0, p0, p1)
	b201 := edgeDeriv(z0, g0, p0, p2)
	b120 := edgeDeriv(z1, g1, p1, p0)
	b021 := edgeDeriv(z1, g1, p1, p2)
	b102 := edgeDeriv(z2, g2, p2, p0)
	b012 := edgeDeriv(z2, g2, p2, p1)

	edgeAvg := (b210 + b120 + b021 + b012 + b102 + b201) / S(6)
	vertexAvg := (z0 + z1 + z2) / S(3)
	b111 := edgeAvg + (edgeAvg-vertexAvg)/S(2)

	uu, vv, ww := u*u, v*v, w*w
	uuu, vvv, www := uu*u, vv*v, ww*w

	result := b300*uuu + b030*vvv + b003*www +
		3*b210*uu*v + 3*b120*u*vv +
		3*b021*vv*w + 3*b012*v*ww +
		3*b102*u*ww + 3*b201*uu*w +
		6*b111*u*v*w

	return result, true
}
