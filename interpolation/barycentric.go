package interpolation

import (
	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/dcel"
	"github.com/purpleposeidon/spade/delaunay"
)

// barycentricWeightsOf returns the three vertices of face and p's
// barycentric weight against each, or false if face is not a proper
// triangle.
func barycentricWeightsOf[S spade.Scalar, V any](t *delaunay.DelaunayTriangulation[S, V], face dcel.FaceHandle, p spade.Point[S]) ([]neighborWeight[S], bool) {
	mesh := t.Mesh()
	adj, ok := mesh.FaceAdjacentEdge(face)
	if !ok {
		return nil, false
	}
	edges := mesh.CollectFaceEdges(adj)
	if len(edges) != 3 {
		return nil, false
	}
	va, vb, vc := mesh.From(edges[0]), mesh.From(edges[1]), mesh.From(edges[2])
	a, b, c := t.Position(va), t.Position(vb), t.Position(vc)
	wa, wb, wc, ok := baryCoords(a, b, c, p)
	if !ok {
		return nil, false
	}
	return []neighborWeight[S]{{va, wa}, {vb, wb}, {vc, wc}}, true
}
