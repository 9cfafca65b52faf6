// Package dcel implements a doubly-connected edge list: the half-edge
// mesh primitive the Delaunay kernel performs local surgery on.
//
// The data model is three dense, swap-remove arenas addressed by
// plain int handles — the same "flat slice of records indexed by int"
// idiom _examples/missinglink-simplefeatures/rtree/rtree.go uses for
// its node arena — rather than the pointer/map-based half-edge graph
// _examples/missinglink-simplefeatures/geom/doubly_connected_edge_list.go
// builds for static polygon overlay. The surgery operations themselves
// (ConnectTwoIsolatedVertices, ConnectEdgeToIsolatedVertex,
// ConnectEdgeToEdge, CreateFace, SplitEdge, RemoveEdge, FlipCW) are
// ported field-for-field from the reference implementation at
// _examples/original_source/src/delaunay/dcel.rs.
package dcel

// VertexHandle, EdgeHandle and FaceHandle are dense indices into their
// respective arenas. They are "fixed" handles in the sense of
// SPEC_FULL.md §4.1: valid for storage, but invalidated by removal
// operations that swap the highest-indexed element into the removed
// slot (see Mesh.RemoveVertex / Mesh.RemoveEdge).
type VertexHandle int

// EdgeHandle indexes into the half-edge arena. Half-edges are always
// allocated in twin pairs at consecutive indices: for any handle e,
// e^1 (e XOR 1) is NOT guaranteed to be its twin after removals —
// twins are tracked explicitly via the twin field, never inferred
// from parity.
type EdgeHandle int

// FaceHandle indexes into the face arena. Face 0 is always the
// unbounded outer face.
type FaceHandle int

// NoEdge, NoVertex and NoFace are the sentinel "no handle" value core
// operations use in place of Option<Handle>, since handles are plain
// ints rather than a sum type. -1 can never be a valid dense index.
const (
	NoEdge   EdgeHandle   = -1
	NoVertex VertexHandle = -1
	NoFace   FaceHandle   = -1
)

// OuterFace is the handle of the mesh's single unbounded face, always
// present, per SPEC_FULL.md §3.4.
const OuterFace FaceHandle = 0

type vertexEntry[V any] struct {
	data    V
	outEdge EdgeHandle
}

type faceEntry struct {
	adjacentEdge EdgeHandle
}

type halfEdgeEntry[E any] struct {
	next, prev, twin EdgeHandle
	origin           VertexHandle
	face             FaceHandle
	data             E
}

// Mesh is the half-edge arena itself: a planar subdivision whose
// vertices carry V and whose half-edges carry E (e.g. a constrained
// bit for CDT). Its zero value is not usable; construct with New.
type Mesh[V any, E any] struct {
	vertices []vertexEntry[V]
	faces    []faceEntry
	edges    []halfEdgeEntry[E]
}

// New returns an empty mesh: no vertices or edges, and a single
// boundless outer face with no adjacent edge.
func New[V any, E any]() *Mesh[V, E] {
	return &Mesh[V, E]{
		faces: []faceEntry{{adjacentEdge: NoEdge}},
	}
}

// NumVertices returns the number of live vertices.
func (m *Mesh[V, E]) NumVertices() int { return len(m.vertices) }

// NumEdges returns the number of live undirected edges (half-edge
// pairs count once).
func (m *Mesh[V, E]) NumEdges() int { return len(m.edges) / 2 }

// NumFaces returns the number of live faces, including the outer face.
func (m *Mesh[V, E]) NumFaces() int { return len(m.faces) }

// VertexData returns the payload stored at handle v.
func (m *Mesh[V, E]) VertexData(v VertexHandle) V { return m.vertices[v].data }

// SetVertexData overwrites the payload stored at handle v.
func (m *Mesh[V, E]) SetVertexData(v VertexHandle, data V) { m.vertices[v].data = data }

// EdgeData returns the payload stored on half-edge e.
func (m *Mesh[V, E]) EdgeData(e EdgeHandle) E { return m.edges[e].data }

// SetEdgeData overwrites the payload stored on half-edge e.
func (m *Mesh[V, E]) SetEdgeData(e EdgeHandle, data E) { m.edges[e].data = data }

// VertexOutEdge returns an arbitrary outgoing half-edge of v, and
// false if v is isolated.
func (m *Mesh[V, E]) VertexOutEdge(v VertexHandle) (EdgeHandle, bool) {
	e := m.vertices[v].outEdge
	return e, e != NoEdge
}

// FaceAdjacentEdge returns an arbitrary half-edge bordering f, and
// false if f has no boundary (only ever true for the outer face of an
// empty mesh).
func (m *Mesh[V, E]) FaceAdjacentEdge(f FaceHandle) (EdgeHandle, bool) {
	e := m.faces[f].adjacentEdge
	return e, e != NoEdge
}

// InsertVertex appends an isolated vertex holding data. O(1).
func (m *Mesh[V, E]) InsertVertex(data V) VertexHandle {
	m.vertices = append(m.vertices, vertexEntry[V]{data: data, outEdge: NoEdge})
	return VertexHandle(len(m.vertices) - 1)
}

// EdgeFromNeighbors returns the half-edge from `from` to `to`, if one
// exists, by scanning from's outgoing edges.
func (m *Mesh[V, E]) EdgeFromNeighbors(from, to VertexHandle) (EdgeHandle, bool) {
	start, ok := m.VertexOutEdge(from)
	if !ok {
		return NoEdge, false
	}
	e := start
	for {
		if m.To(e) == to {
			return e, true
		}
		e = m.CW(e)
		if e == start {
			return NoEdge, false
		}
	}
}

// ConnectTwoIsolatedVertices creates a pair of antiparallel half-edges
// between v0 and v1 — a "dangling spoke" whose next/prev point to
// each other — both lying in face. Both vertices must be isolated and
// face must have no adjacent edge yet. O(1).
func (m *Mesh[V, E]) ConnectTwoIsolatedVertices(v0, v1 VertexHandle, face FaceHandle) EdgeHandle {
	if m.vertices[v0].outEdge != NoEdge {
		panic("dcel: ConnectTwoIsolatedVertices: v0 is not isolated")
	}
	if m.vertices[v1].outEdge != NoEdge {
		panic("dcel: ConnectTwoIsolatedVertices: v1 is not isolated")
	}
	if m.faces[face].adjacentEdge != NoEdge {
		panic("dcel: ConnectTwoIsolatedVertices: face must not contain any adjacent edges")
	}

	edgeIndex := EdgeHandle(len(m.edges))
	twinIndex := edgeIndex + 1

	m.edges = append(m.edges,
		halfEdgeEntry[E]{next: twinIndex, prev: twinIndex, twin: twinIndex, origin: v0, face: face},
		halfEdgeEntry[E]{next: edgeIndex, prev: edgeIndex, twin: edgeIndex, origin: v1, face: face},
	)

	m.vertices[v0].outEdge = edgeIndex
	m.vertices[v1].outEdge = twinIndex
	m.faces[face].adjacentEdge = edgeIndex

	return edgeIndex
}

// ConnectEdgeToIsolatedVertex splices a dangling edge starting at
// prev.To() into the face that owns prev, ending at the previously
// isolated vertex. O(1).
func (m *Mesh[V, E]) ConnectEdgeToIsolatedVertex(prev EdgeHandle, vertex VertexHandle) EdgeHandle {
	if m.vertices[vertex].outEdge != NoEdge {
		panic("dcel: ConnectEdgeToIsolatedVertex: given vertex is not isolated")
	}
	prevEntry := m.edges[prev]

	edgeIndex := EdgeHandle(len(m.edges))
	twinIndex := edgeIndex + 1

	edge := halfEdgeEntry[E]{
		next:   twinIndex,
		prev:   prev,
		twin:   twinIndex,
		origin: m.edges[prevEntry.twin].origin,
		face:   prevEntry.face,
	}
	twin := halfEdgeEntry[E]{
		next:   prevEntry.next,
		prev:   edgeIndex,
		twin:   edgeIndex,
		origin: vertex,
		face:   prevEntry.face,
	}
	m.edges = append(m.edges, edge, twin)

	m.edges[prev].next = edgeIndex
	m.edges[prevEntry.next].prev = twinIndex

	m.vertices[vertex].outEdge = twinIndex
	return edgeIndex
}

// ConnectEdgeToEdge adds an edge inside a face from prev.To() to
// next.From(), without yet subdividing the face. O(1).
func (m *Mesh[V, E]) ConnectEdgeToEdge(prev, next EdgeHandle) EdgeHandle {
	edgeIndex := EdgeHandle(len(m.edges))
	twinIndex := edgeIndex + 1

	nextEntry := m.edges[next]
	prevEntry := m.edges[prev]

	edge := halfEdgeEntry[E]{
		next:   next,
		prev:   prev,
		twin:   twinIndex,
		origin: m.edges[prevEntry.twin].origin,
		face:   nextEntry.face,
	}
	twin := halfEdgeEntry[E]{
		next:   prevEntry.next,
		prev:   nextEntry.prev,
		twin:   edgeIndex,
		origin: nextEntry.origin,
		face:   nextEntry.face,
	}
	m.edges = append(m.edges, edge, twin)

	m.edges[next].prev = edgeIndex
	m.edges[prev].next = edgeIndex
	m.edges[nextEntry.prev].next = twinIndex
	m.edges[prevEntry.next].prev = twinIndex

	return edgeIndex
}

// CreateFace performs the same splice as ConnectEdgeToEdge, then
// walks the new edge's next-ring, relabels every edge in it with a
// freshly appended face, and updates the old face's adjacent edge to
// a surviving half-edge. O(k) in the new face's boundary size.
func (m *Mesh[V, E]) CreateFace(prev, next EdgeHandle) EdgeHandle {
	edgeIndex := m.ConnectEdgeToEdge(prev, next)

	newFace := FaceHandle(m.NumFaces())
	m.faces = append(m.faces, faceEntry{adjacentEdge: edgeIndex})

	cur := edgeIndex
	for {
		m.edges[cur].face = newFace
		cur = m.edges[cur].next
		if cur == edgeIndex {
			break
		}
	}

	twin := m.edges[edgeIndex].twin
	m.faces[m.edges[twin].face].adjacentEdge = twin

	return edgeIndex
}

// SplitEdge inserts the isolated vertex isolatedV into the middle of
// e, yielding two collinear half-edge pairs sharing the same two
// faces e used to. Handles the degenerate case where e is its own
// next (a dangling spoke). O(1).
func (m *Mesh[V, E]) SplitEdge(e EdgeHandle, isolatedV VertexHandle) EdgeHandle {
	if m.vertices[isolatedV].outEdge != NoEdge {
		panic("dcel: SplitEdge: given vertex must be isolated")
	}
	edge := m.edges[e]
	twin := m.edges[edge.twin]

	isIsolated := edge.next == edge.twin

	newEdgeIndex := EdgeHandle(len(m.edges))
	newTwinIndex := newEdgeIndex + 1

	var newEdgeNext, newTwinPrev EdgeHandle
	if isIsolated {
		newEdgeNext, newTwinPrev = newTwinIndex, newEdgeIndex
	} else {
		newEdgeNext, newTwinPrev = edge.next, twin.prev
	}

	newEdge := halfEdgeEntry[E]{next: newEdgeNext, prev: e, twin: newTwinIndex, origin: isolatedV, face: edge.face}
	newTwin := halfEdgeEntry[E]{next: edge.twin, prev: newTwinPrev, twin: newEdgeIndex, origin: twin.origin, face: twin.face}

	if !isIsolated {
		m.edges[edge.next].prev = newEdgeIndex
		m.edges[twin.prev].next = newTwinIndex
	}
	m.edges[edge.twin].prev = newTwinIndex
	m.edges[e].next = newEdgeIndex
	m.edges[edge.twin].origin = isolatedV

	m.vertices[twin.origin].outEdge = newTwinIndex
	m.vertices[isolatedV].outEdge = newEdgeIndex

	m.edges = append(m.edges, newEdge, newTwin)
	return newEdgeIndex
}

// RemoveEdge merges the two faces incident to e into one. If
// remainingFace is given it must be one of e's two incident faces and
// that face survives; otherwise the non-outer face survives. O(k) in
// the merged face's boundary size.
func (m *Mesh[V, E]) RemoveEdge(e EdgeHandle, remainingFace FaceHandle) {
	edge := m.edges[e]
	twin := m.edges[edge.twin]
	if remainingFace == NoFace && edge.face == OuterFace {
		remainingFace = twin.face
	}

	m.edges[edge.prev].next = twin.next
	m.edges[twin.next].prev = edge.prev
	m.edges[edge.next].prev = twin.prev
	m.edges[twin.prev].next = edge.next

	var toRemove, toKeep halfEdgeEntry[E]
	if remainingFace != NoFace && remainingFace == twin.face {
		toRemove, toKeep = edge, twin
	} else {
		toRemove, toKeep = twin, edge
	}

	if edge.prev == edge.twin && edge.next == edge.twin {
		m.faces[toKeep.face].adjacentEdge = NoEdge
	} else {
		newAdjacent := edge.prev
		if edge.prev == edge.twin {
			newAdjacent = edge.next
		}
		m.faces[toKeep.face].adjacentEdge = newAdjacent
		m.edges[newAdjacent].face = toKeep.face
	}

	if edge.prev == edge.twin {
		m.vertices[edge.origin].outEdge = NoEdge
	} else {
		m.vertices[edge.origin].outEdge = twin.next
	}
	if edge.next == edge.twin {
		m.vertices[twin.origin].outEdge = NoEdge
	} else {
		m.vertices[twin.origin].outEdge = edge.next
	}

	// Remove the larger index first so the other survives unaffected.
	if e > edge.twin {
		m.swapRemoveEdge(e)
		m.swapRemoveEdge(edge.twin)
	} else {
		m.swapRemoveEdge(edge.twin)
		m.swapRemoveEdge(e)
	}

	if edge.face != twin.face {
		neighs := m.collectONext(m.faces[toKeep.face].adjacentEdge)
		for _, n := range neighs {
			m.edges[n].face = toKeep.face
		}
		m.removeFace(toRemove.face)
	}
}

// RemoveEdgeAuto merges the two faces incident to e, letting the
// non-outer face survive by default — the common case called out in
// SPEC_FULL.md §4.1.
func (m *Mesh[V, E]) RemoveEdgeAuto(e EdgeHandle) {
	twinFace := m.edges[m.edges[e].twin].face
	remaining := m.edges[e].face
	if remaining == OuterFace {
		remaining = twinFace
	}
	m.RemoveEdge(e, remaining)
}

func (m *Mesh[V, E]) removeFace(face FaceHandle) {
	last := FaceHandle(len(m.faces) - 1)
	m.faces[face] = m.faces[last]
	m.faces = m.faces[:last]
	if FaceHandle(len(m.faces)) > face {
		for _, n := range m.collectONext(m.faces[face].adjacentEdge) {
			m.edges[n].face = face
		}
	}
}

func (m *Mesh[V, E]) swapRemoveEdge(e EdgeHandle) {
	last := EdgeHandle(len(m.edges) - 1)
	m.edges[e] = m.edges[last]
	m.edges = m.edges[:last]
	if EdgeHandle(len(m.edges)) > e {
		oldHandle := EdgeHandle(len(m.edges))
		edge := m.edges[e]
		m.edges[edge.next].prev = e
		m.edges[edge.prev].next = e
		m.edges[edge.twin].twin = e

		if m.vertices[edge.origin].outEdge == oldHandle {
			m.vertices[edge.origin].outEdge = e
		}
		m.faces[edge.face].adjacentEdge = e
	}
}

// collectONext returns every half-edge handle reachable by following
// next starting from start (inclusive), or nil if start is NoEdge.
func (m *Mesh[V, E]) collectONext(start EdgeHandle) []EdgeHandle {
	if start == NoEdge {
		return nil
	}
	var out []EdgeHandle
	cur := start
	for {
		out = append(out, cur)
		cur = m.edges[cur].next
		if cur == start {
			break
		}
	}
	return out
}

// FlipCW rotates the diagonal e clockwise. e and its twin must both
// border triangular faces. O(1).
func (m *Mesh[V, E]) FlipCW(e EdgeHandle) {
	en := m.edges[e].next
	ep := m.edges[e].prev
	t := m.edges[e].twin
	tn := m.edges[t].next
	tp := m.edges[t].prev

	m.edges[en].next = e
	m.edges[en].prev = tp
	m.edges[e].next = tp
	m.edges[e].prev = en
	m.edges[tp].next = en
	m.edges[tp].prev = e

	m.edges[tn].next = t
	m.edges[tn].prev = ep
	m.edges[t].next = ep
	m.edges[t].prev = tn
	m.edges[ep].next = tn
	m.edges[ep].prev = t

	m.vertices[m.edges[e].origin].outEdge = tn
	m.vertices[m.edges[t].origin].outEdge = en

	m.edges[e].origin = m.edges[ep].origin
	m.edges[t].origin = m.edges[tp].origin

	m.faces[m.edges[e].face].adjacentEdge = e
	m.faces[m.edges[t].face].adjacentEdge = t

	m.edges[tp].face = m.edges[e].face
	m.edges[ep].face = m.edges[t].face
}

// VertexRemovalResult reports the data removed from a vertex, and —
// if the swap-remove relocated a different vertex into the freed
// slot — the handle that relocated vertex had before the removal, so
// callers can patch external references (the vertex formerly at
// UpdatedVertex now answers to the removed vertex's handle).
type VertexRemovalResult[V any] struct {
	UpdatedVertex VertexHandle // NoVertex if nothing was relocated
	Data          V
}

// RemoveVertex removes every edge incident to v (merging their faces
// toward remainingFace, see RemoveEdge), then swap-removes v itself.
func (m *Mesh[V, E]) RemoveVertex(v VertexHandle, remainingFace FaceHandle) VertexRemovalResult[V] {
	for {
		out, ok := m.VertexOutEdge(v)
		if !ok {
			break
		}
		m.RemoveEdge(out, remainingFace)
	}

	data := m.vertices[v].data
	last := VertexHandle(len(m.vertices) - 1)
	m.vertices[v] = m.vertices[last]
	m.vertices = m.vertices[:last]

	result := VertexRemovalResult[V]{UpdatedVertex: NoVertex, Data: data}
	if VertexHandle(len(m.vertices)) > v {
		for _, e := range m.CollectCCWOutEdges(v) {
			m.edges[e].origin = v
		}
		result.UpdatedVertex = VertexHandle(len(m.vertices))
	}
	return result
}
