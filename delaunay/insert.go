package delaunay

import (
	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/dcel"
	"github.com/purpleposeidon/spade/predicate"
)

// Insert adds p with the given payload to the triangulation, updating
// it to stay Delaunay, and returns the new (or, if p coincides with an
// existing point, the existing) vertex handle. This is the dispatch
// described in SPEC_FULL.md §4.3: locate p, then handle one of
// OnVertex/OnEdge/InFace/OutsideConvexHull, followed by edge-flip
// restoration.
func (t *DelaunayTriangulation[S, V]) Insert(p spade.Point[S], data V) dcel.VertexHandle {
	switch t.mesh.NumVertices() {
	case 0:
		return t.mesh.InsertVertex(vertexData[S, V]{pos: p, payload: data})
	case 1:
		return t.insertSecondVertex(p, data)
	}

	if t.IsDegenerate() {
		if v, ok := t.insertDegenerate(p, data); ok {
			return v
		}
		// Not reached: insertDegenerate reports true for every input.
	}

	loc := t.Locate(p)
	switch loc.Kind {
	case OnVertex:
		t.SetData(loc.Vertex, data)
		return loc.Vertex
	case OnEdge:
		return t.insertOnEdge(p, data, loc.Edge)
	case InFace:
		return t.insertInFace(p, data, loc.Face)
	default: // OutsideConvexHull
		return t.insertOutsideHull(p, data, loc.Edge)
	}
}

func (t *DelaunayTriangulation[S, V]) insertSecondVertex(p spade.Point[S], data V) dcel.VertexHandle {
	v0 := dcel.VertexHandle(0)
	if t.Position(v0).Equals(p) {
		t.SetData(v0, data)
		return v0
	}
	v1 := t.mesh.InsertVertex(vertexData[S, V]{pos: p, payload: data})
	e := t.mesh.ConnectTwoIsolatedVertices(v0, v1, dcel.OuterFace)
	t.chainTailEdge = e
	t.chainTail = v1
	return v1
}

// insertDegenerate handles the bootstrap stage before the first
// triangle exists: the mesh is a single chain of collinear points.
// When p is itself collinear with the chain it is appended to
// whichever end chainTailEdge currently points at; when it is not,
// insertDegenerate itself forms the first triangle using the most
// recently added chain edge as its base, per SPEC_FULL.md §4.3's
// Insert dispatch note on degenerate construction. It reports true in
// every case.
func (t *DelaunayTriangulation[S, V]) insertDegenerate(p spade.Point[S], data V) (dcel.VertexHandle, bool) {
	for v := 0; v < t.mesh.NumVertices(); v++ {
		if t.Position(dcel.VertexHandle(v)).Equals(p) {
			t.SetData(dcel.VertexHandle(v), data)
			return dcel.VertexHandle(v), true
		}
	}

	prevV := t.mesh.From(t.chainTailEdge)
	lastV := t.chainTail
	a, b := t.Position(prevV), t.Position(lastV)

	if t.orient(a, b, p) == predicate.Zero {
		newV := t.mesh.InsertVertex(vertexData[S, V]{pos: p, payload: data})
		e := t.mesh.ConnectEdgeToIsolatedVertex(t.chainTailEdge, newV)
		t.chainTailEdge = e
		t.chainTail = newV
		return newV, true
	}

	e01 := t.chainTailEdge
	if t.orient(a, b, p) == predicate.Negative {
		e01 = t.mesh.Sym(e01)
	}
	newV := t.mesh.InsertVertex(vertexData[S, V]{pos: p, payload: data})
	e2 := t.mesh.ConnectEdgeToIsolatedVertex(e01, newV)
	d := t.mesh.CreateFace(e2, e01)
	t.lastFace = t.mesh.Face(d)
	return newV, true
}

// fanNewVertex inserts a new isolated vertex at p, splices it into the
// mesh via prevBoundary (an edge whose destination is the fan's first
// vertex), and closes one triangle per entry of ring — the shared
// wiring behind both insertInFace (ring = the other two edges of the
// containing triangle) and insertOutsideHull (ring = every visible
// hull edge), per SPEC_FULL.md §4.3.
func (t *DelaunayTriangulation[S, V]) fanNewVertex(prevBoundary dcel.EdgeHandle, ring []dcel.EdgeHandle, p spade.Point[S], data V) (dcel.VertexHandle, []dcel.EdgeHandle) {
	newV := t.mesh.InsertVertex(vertexData[S, V]{pos: p, payload: data})
	ext := t.mesh.ConnectEdgeToIsolatedVertex(prevBoundary, newV)
	nextConn := t.mesh.Sym(ext)

	legalizeStack := make([]dcel.EdgeHandle, 0, len(ring))
	var lastFace dcel.FaceHandle
	for _, e := range ring {
		d := t.mesh.CreateFace(e, nextConn)
		lastFace = t.mesh.Face(d)
		legalizeStack = append(legalizeStack, e)
		nextConn = t.mesh.Sym(d)
	}
	t.lastFace = lastFace
	return newV, legalizeStack
}

func (t *DelaunayTriangulation[S, V]) insertInFace(p spade.Point[S], data V, face dcel.FaceHandle) dcel.VertexHandle {
	adj, _ := t.mesh.FaceAdjacentEdge(face)
	edges := t.mesh.CollectFaceEdges(adj)
	newV, stack := t.fanNewVertex(edges[2], edges[:2], p, data)
	t.legalize(append(stack, edges[2]))
	return newV
}

// insertOutsideHull extends the convex hull to include p, fan-
// triangulating every currently-visible hull edge (the contiguous run
// of boundary edges p lies on the outer side of), per SPEC_FULL.md
// §4.3's note on hull extension.
func (t *DelaunayTriangulation[S, V]) insertOutsideHull(p spade.Point[S], data V, hullEdge dcel.EdgeHandle) dcel.VertexHandle {
	allHullEdges := t.mesh.CollectFaceEdges(hullEdge)
	n := len(allHullEdges)

	idx := 0
	for i, e := range allHullEdges {
		if e == hullEdge {
			idx = i
			break
		}
	}
	visible := func(e dcel.EdgeHandle) bool {
		return t.orient(t.Position(t.mesh.From(e)), t.Position(t.mesh.To(e)), p) == predicate.Positive
	}

	lo, hi := idx, idx
	for i := 0; i < n-1; i++ {
		prev := (lo - 1 + n) % n
		if !visible(allHullEdges[prev]) {
			break
		}
		lo = prev
	}
	for i := 0; i < n-1; i++ {
		next := (hi + 1) % n
		if next == lo || !visible(allHullEdges[next]) {
			break
		}
		hi = next
	}

	visibleEdges := make([]dcel.EdgeHandle, 0, n)
	for i := lo; ; i = (i + 1) % n {
		visibleEdges = append(visibleEdges, allHullEdges[i])
		if i == hi {
			break
		}
	}
	prevBoundary := allHullEdges[(lo-1+n)%n]

	newV, stack := t.fanNewVertex(prevBoundary, visibleEdges, p, data)
	t.legalize(stack)
	return newV
}

// insertOnEdge splits edge (and the two triangles it borders) around
// a new vertex placed exactly on its supporting line, then adds the
// two diagonals needed to re-triangulate both halves, per
// SPEC_FULL.md §4.3.
func (t *DelaunayTriangulation[S, V]) insertOnEdge(p spade.Point[S], data V, edge dcel.EdgeHandle) dcel.VertexHandle {
	newV := t.mesh.InsertVertex(vertexData[S, V]{pos: p, payload: data})
	newEdge := t.mesh.SplitEdge(edge, newV)

	twinHandle := t.mesh.Sym(edge)
	bc := t.mesh.ONext(newEdge)
	ca := t.mesh.ONext(bc)
	ad := t.mesh.ONext(twinHandle)
	db := t.mesh.ONext(ad)

	diagC := t.mesh.CreateFace(bc, newEdge)
	diagD := t.mesh.CreateFace(ad, twinHandle)

	t.lastFace = t.mesh.Face(diagC)
	t.legalize([]dcel.EdgeHandle{ca, bc, ad, db})
	_ = diagD
	return newV
}

// Lookup returns the vertex positioned exactly at p, and true, or the
// zero handle and false.
func (t *DelaunayTriangulation[S, V]) Lookup(p spade.Point[S]) (dcel.VertexHandle, bool) {
	loc := t.Locate(p)
	if loc.Kind == OnVertex {
		return loc.Vertex, true
	}
	return dcel.NoVertex, false
}
