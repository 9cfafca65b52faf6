package interpolation

import (
	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/dcel"
	"github.com/purpleposeidon/spade/delaunay"
	"github.com/purpleposeidon/spade/predicate"
)

// naturalNeighborWeights computes q's natural-neighbor (Sibson)
// coordinates by simulating q's insertion without mutating the
// triangulation: it finds the cavity of triangles whose circumcircle
// would be destroyed by inserting q (exactly the Bowyer-Watson cavity),
// then measures, for every vertex on the cavity's boundary ring, the
// area its Voronoi cell loses to q's new cell. Grounded on the
// area-stealing description in spec.md §4.4 step 2; the reference crate
// (_examples/original_source) keeps this algorithm in a part of the
// source tree that wasn't retrieved, so the cavity/circumcenter
// construction below follows the standard natural-neighbor-via-Voronoi
// derivation rather than a specific file in the pack.
func naturalNeighborWeights[S spade.Scalar, V any](t *delaunay.DelaunayTriangulation[S, V], q spade.Point[S]) ([]neighborWeight[S], bool) {
	loc := t.Locate(q)
	switch loc.Kind {
	case delaunay.OutsideConvexHull:
		return nil, false
	case delaunay.OnVertex:
		return []neighborWeight[S]{{loc.Vertex, spade.One[S]()}}, true
	case delaunay.OnEdge:
		mesh := t.Mesh()
		a, b := mesh.From(loc.Edge), mesh.To(loc.Edge)
		wa, wb := edgeWeights(t.Position(a), t.Position(b), q)
		return []neighborWeight[S]{{a, wa}, {b, wb}}, true
	}

	mesh := t.Mesh()
	cavity := cavityFaces(t, loc.Face, q)
	if len(cavity) == 0 {
		return barycentricWeightsOf(t, loc.Face, q)
	}
	ring := ringFromCavity(mesh, cavity)
	if len(ring) < 3 {
		return barycentricWeightsOf(t, loc.Face, q)
	}

	n := len(ring)
	newCenters := make([]spade.Point[S], n)
	for i, e := range ring {
		v0, v1 := mesh.From(e), mesh.To(e)
		c, ok := circumcenter(q, t.Position(v0), t.Position(v1))
		if !ok {
			return barycentricWeightsOf(t, loc.Face, q)
		}
		newCenters[i] = c
	}

	faceCenter := map[dcel.FaceHandle]spade.Point[S]{}
	centerOf := func(f dcel.FaceHandle) (spade.Point[S], bool) {
		if c, ok := faceCenter[f]; ok {
			return c, true
		}
		adj, ok := mesh.FaceAdjacentEdge(f)
		if !ok {
			return spade.Point[S]{}, false
		}
		edges := mesh.CollectFaceEdges(adj)
		if len(edges) != 3 {
			return spade.Point[S]{}, false
		}
		a := t.Position(mesh.From(edges[0]))
		b := t.Position(mesh.From(edges[1]))
		c := t.Position(mesh.From(edges[2]))
		center, ok := circumcenter(a, b, c)
		if !ok {
			return spade.Point[S]{}, false
		}
		faceCenter[f] = center
		return center, true
	}

	weights := make([]neighborWeight[S], 0, n)
	var total S
	for i, e := range ring {
		v := mesh.From(e)
		polygon := []spade.Point[S]{newCenters[i]}

		oe := e
		for {
			f := mesh.Face(oe)
			if !cavity[f] {
				break
			}
			c, ok := centerOf(f)
			if !ok {
				return barycentricWeightsOf(t, loc.Face, q)
			}
			polygon = append(polygon, c)
			oe = mesh.CCW(oe)
			if oe == e {
				break
			}
		}
		polygon = append(polygon, newCenters[(i-1+n)%n])

		w := polygonArea(polygon)
		weights = append(weights, neighborWeight[S]{Vertex: v, Weight: w})
		total += w
	}

	if total <= 0 {
		return barycentricWeightsOf(t, loc.Face, q)
	}
	for i := range weights {
		weights[i].Weight /= total
	}
	return weights, true
}

// cavityFaces returns the set of triangular faces whose circumcircle
// strictly contains q, flood-filled from start across face-adjacency,
// never crossing the outer face.
func cavityFaces[S spade.Scalar, V any](t *delaunay.DelaunayTriangulation[S, V], start dcel.FaceHandle, q spade.Point[S]) map[dcel.FaceHandle]bool {
	mesh := t.Mesh()
	cavity := map[dcel.FaceHandle]bool{}
	stack := []dcel.FaceHandle{start}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cavity[f] || f == dcel.OuterFace {
			continue
		}
		adj, ok := mesh.FaceAdjacentEdge(f)
		if !ok {
			continue
		}
		edges := mesh.CollectFaceEdges(adj)
		if len(edges) != 3 {
			continue
		}
		a := t.Position(mesh.From(edges[0]))
		b := t.Position(mesh.From(edges[1]))
		c := t.Position(mesh.From(edges[2]))
		if predicate.InCircle(a, b, c, q) != predicate.Positive {
			continue
		}
		cavity[f] = true
		for _, e := range edges {
			nf := mesh.Face(mesh.Sym(e))
			if nf != dcel.OuterFace && !cavity[nf] {
				stack = append(stack, nf)
			}
		}
	}
	return cavity
}

// ringFromCavity walks the boundary of cavity (every half-edge inside a
// cavity face whose twin's face is outside the cavity) into a single
// ordered cycle of half-edges v_i -> v_{i+1}.
func ringFromCavity[V, E any](mesh *dcel.Mesh[V, E], cavity map[dcel.FaceHandle]bool) []dcel.EdgeHandle {
	boundary := map[dcel.VertexHandle]dcel.EdgeHandle{}
	for f := range cavity {
		adj, ok := mesh.FaceAdjacentEdge(f)
		if !ok {
			continue
		}
		for _, e := range mesh.CollectFaceEdges(adj) {
			if !cavity[mesh.Face(mesh.Sym(e))] {
				boundary[mesh.From(e)] = e
			}
		}
	}
	if len(boundary) == 0 {
		return nil
	}

	var start dcel.EdgeHandle
	for _, e := range boundary {
		start = e
		break
	}

	ring := make([]dcel.EdgeHandle, 0, len(boundary))
	cur := start
	for {
		ring = append(ring, cur)
		next, ok := boundary[mesh.To(cur)]
		if !ok {
			break
		}
		cur = next
		if cur == start {
			break
		}
	}
	return ring
}
