package dcel

// From returns e's origin vertex.
func (m *Mesh[V, E]) From(e EdgeHandle) VertexHandle {
	return m.edges[e].origin
}

// To returns e's destination vertex (the origin of its twin).
func (m *Mesh[V, E]) To(e EdgeHandle) VertexHandle {
	return m.From(m.Sym(e))
}

// Face returns the face to the left of e.
func (m *Mesh[V, E]) Face(e EdgeHandle) FaceHandle {
	return m.edges[e].face
}

// Sym returns e's twin (mirror) half-edge.
func (m *Mesh[V, E]) Sym(e EdgeHandle) EdgeHandle {
	return m.edges[e].twin
}

// ONext returns the oriented next edge: the successor of e when
// walking e's face in oriented (counterclockwise, for a right-handed
// coordinate system) order.
func (m *Mesh[V, E]) ONext(e EdgeHandle) EdgeHandle {
	return m.edges[e].next
}

// OPrev returns the oriented previous edge: the predecessor of e when
// walking e's face in oriented order.
func (m *Mesh[V, E]) OPrev(e EdgeHandle) EdgeHandle {
	return m.edges[e].prev
}

// CW returns the next edge clockwise around e's origin vertex:
// cw = sym.next.
func (m *Mesh[V, E]) CW(e EdgeHandle) EdgeHandle {
	return m.edges[m.Sym(e)].next
}

// CCW returns the next edge counter-clockwise around e's origin
// vertex: ccw = prev.sym.
func (m *Mesh[V, E]) CCW(e EdgeHandle) EdgeHandle {
	return m.Sym(m.edges[e].prev)
}

// ONextIterator walks the half-edges bordering a single face in
// oriented order, starting from and including start. It walks forward
// only: Next follows o_next, and there is no Prev method.
type ONextIterator[V any, E any] struct {
	mesh       *Mesh[V, E]
	start, cur EdgeHandle
	done       bool
}

// FaceEdges returns an iterator over every half-edge bordering the
// face to the left of start, in oriented order.
func (m *Mesh[V, E]) FaceEdges(start EdgeHandle) *ONextIterator[V, E] {
	return &ONextIterator[V, E]{mesh: m, start: start, cur: start}
}

// Next returns the next half-edge in the walk, and false once every
// edge of the face has been visited exactly once.
func (it *ONextIterator[V, E]) Next() (EdgeHandle, bool) {
	if it.done {
		return NoEdge, false
	}
	e := it.cur
	next := it.mesh.ONext(it.cur)
	if next == it.start {
		it.done = true
	}
	it.cur = next
	return e, true
}

// CCWIterator walks the half-edges leaving a single vertex in
// counter-clockwise order, starting from and including start. It walks
// forward only: Next follows ccw, and there is no Prev method.
type CCWIterator[V any, E any] struct {
	mesh       *Mesh[V, E]
	start, cur EdgeHandle
	done       bool
}

// OutEdges returns an iterator over every half-edge leaving the
// origin vertex of start, in counter-clockwise order.
func (m *Mesh[V, E]) OutEdges(start EdgeHandle) *CCWIterator[V, E] {
	return &CCWIterator[V, E]{mesh: m, start: start, cur: start}
}

// Next returns the next outgoing half-edge in the walk, and false
// once every out-edge of the vertex has been visited exactly once.
func (it *CCWIterator[V, E]) Next() (EdgeHandle, bool) {
	if it.done {
		return NoEdge, false
	}
	e := it.cur
	next := it.mesh.CCW(it.cur)
	if next == it.start {
		it.done = true
	}
	it.cur = next
	return e, true
}

// CollectFaceEdges returns every half-edge bordering the face to the
// left of start as a slice, in oriented order.
func (m *Mesh[V, E]) CollectFaceEdges(start EdgeHandle) []EdgeHandle {
	if start == NoEdge {
		return nil
	}
	it := m.FaceEdges(start)
	var out []EdgeHandle
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out = append(out, e)
	}
	return out
}

// CollectCCWOutEdges returns every half-edge leaving v as a slice, in
// counter-clockwise order. v must not be isolated.
func (m *Mesh[V, E]) CollectCCWOutEdges(v VertexHandle) []EdgeHandle {
	start, ok := m.VertexOutEdge(v)
	if !ok {
		return nil
	}
	it := m.OutEdges(start)
	var out []EdgeHandle
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out = append(out, e)
	}
	return out
}
