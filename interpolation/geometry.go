package interpolation

import "github.com/purpleposeidon/spade"

// circumcenter returns the center of the circle through a, b, c, and
// false if the three points are collinear (no finite circumcenter).
// The division this needs has no robust-predicate analogue in package
// predicate, so it is computed directly in float64 and converted back
// to S, the same round-trip spade.Sqrt uses.
func circumcenter[S spade.Scalar](a, b, c spade.Point[S]) (spade.Point[S], bool) {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return spade.Point[S]{}, false
	}

	aa := ax*ax + ay*ay
	bb := bx*bx + by*by
	cc := cx*cx + cy*cy

	ux := (aa*(by-cy) + bb*(cy-ay) + cc*(ay-by)) / d
	uy := (aa*(cx-bx) + bb*(ax-cx) + cc*(bx-ax)) / d

	return spade.Point[S]{X: S(ux), Y: S(uy)}, true
}

// polygonArea returns the unsigned area of the simple polygon with the
// given vertices in order, via the shoelace formula.
func polygonArea[S spade.Scalar](pts []spade.Point[S]) S {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += float64(pts[i].X)*float64(pts[j].Y) - float64(pts[j].X)*float64(pts[i].Y)
	}
	if sum < 0 {
		sum = -sum
	}
	return S(sum / 2)
}

// edgeWeights returns the linear-interpolation weights for q along the
// segment a-b, assuming q lies on the line through a and b (clamped to
// the segment to stay well-defined if q falls slightly outside it due
// to floating-point slop at the segment's own endpoints).
func edgeWeights[S spade.Scalar](a, b, q spade.Point[S]) (S, S) {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	denom := dx*dx + dy*dy
	if denom == 0 {
		return 1, 0
	}
	t := (float64(q.X-a.X)*dx + float64(q.Y-a.Y)*dy) / denom
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return S(1 - t), S(t)
}

// baryCoords returns the barycentric coordinates of p with respect to
// triangle a, b, c, and false if the triangle is degenerate.
func baryCoords[S spade.Scalar](a, b, c, p spade.Point[S]) (S, S, S, bool) {
	denom := float64((b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y))
	if denom == 0 {
		return 0, 0, 0, false
	}
	wa := (float64((b.Y-c.Y))*float64(p.X-c.X) + float64(c.X-b.X)*float64(p.Y-c.Y)) / denom
	wb := (float64(c.Y-a.Y)*float64(p.X-c.X) + float64(a.X-c.X)*float64(p.Y-c.Y)) / denom
	wc := 1 - wa - wb
	return S(wa), S(wb), S(wc), true
}
