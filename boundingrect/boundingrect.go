// Package boundingrect implements axis-aligned minimum bounding
// rectangles over spade.Point, ported from
// _examples/original_source/src/boundingrect.rs (the `BoundingRect<V>`
// type of the spade crate) into idiomatic Go generics.
package boundingrect

import "github.com/purpleposeidon/spade"

// Rect is a pair (lower, upper) with lower[i] <= upper[i] for each
// axis, per SPEC_FULL.md §3.3. It is never shrunk in place: Intersect
// returns a new, possibly degenerate rect rather than mutating either
// operand.
type Rect[S spade.Scalar] struct {
	lower, upper spade.Point[S]
}

// FromPoint creates a rectangle containing exactly one point.
func FromPoint[S spade.Scalar](p spade.Point[S]) Rect[S] {
	return Rect[S]{lower: p, upper: p}
}

// FromCorners creates a rectangle that contains both given points,
// regardless of their relative ordering.
func FromCorners[S spade.Scalar](a, b spade.Point[S]) Rect[S] {
	return Rect[S]{lower: a.Min(b), upper: a.Max(b)}
}

// FromPoints creates a rectangle bounding every point in pts. It
// panics on an empty slice — SPEC_FULL.md §7 classifies empty-input
// construction as an abort, not a recoverable error; callers are
// expected to guard.
func FromPoints[S spade.Scalar](pts []spade.Point[S]) Rect[S] {
	if len(pts) == 0 {
		panic("boundingrect: FromPoints: empty input")
	}
	r := FromPoint(pts[0])
	for _, p := range pts[1:] {
		r.AddPoint(p)
	}
	return r
}

// Lower returns the rectangle's lower corner (smallest coordinates).
func (r Rect[S]) Lower() spade.Point[S] { return r.lower }

// Upper returns the rectangle's upper corner (largest coordinates).
func (r Rect[S]) Upper() spade.Point[S] { return r.upper }

// ContainsPoint reports whether p lies within the closed rectangle.
func (r Rect[S]) ContainsPoint(p spade.Point[S]) bool {
	return r.lower.X <= p.X && r.lower.Y <= p.Y &&
		r.upper.X >= p.X && r.upper.Y >= p.Y
}

// ContainsRect reports whether other is entirely contained within r.
func (r Rect[S]) ContainsRect(other Rect[S]) bool {
	return r.ContainsPoint(other.lower) && r.ContainsPoint(other.upper)
}

// AddPoint enlarges r in place, monotonically, to also contain p.
func (r *Rect[S]) AddPoint(p spade.Point[S]) {
	r.lower = r.lower.Min(p)
	r.upper = r.upper.Max(p)
}

// AddRect enlarges r in place, monotonically, to also contain other.
func (r *Rect[S]) AddRect(other Rect[S]) {
	r.lower = r.lower.Min(other.lower)
	r.upper = r.upper.Max(other.upper)
}

// Area returns the rectangle's area. A degenerate rectangle (from an
// empty Intersect) has area zero.
func (r Rect[S]) Area() S {
	dx := spade.Max(r.upper.X-r.lower.X, 0)
	dy := spade.Max(r.upper.Y-r.lower.Y, 0)
	return dx * dy
}

// HalfMargin returns half the rectangle's margin, i.e. width + height.
// R*-tree split selection compares the sum of HalfMargin over
// candidate distributions (SPEC_FULL.md §4.5).
func (r Rect[S]) HalfMargin() S {
	dx := spade.Max(r.upper.X-r.lower.X, 0)
	dy := spade.Max(r.upper.Y-r.lower.Y, 0)
	return dx + dy
}

// Center returns the rectangle's geometric center.
func (r Rect[S]) Center() spade.Point[S] {
	two := spade.One[S]() + spade.One[S]()
	return r.lower.Add(r.upper.Sub(r.lower).Scale(1 / two))
}

// Intersect returns the intersection of r and other. If they are
// disjoint on some axis, the result is a degenerate rectangle (area
// and margin zero) whose distance metrics remain well defined, per
// SPEC_FULL.md §3.3.
func (r Rect[S]) Intersect(other Rect[S]) Rect[S] {
	return Rect[S]{
		lower: r.lower.Max(other.lower),
		upper: r.upper.Min(other.upper),
	}
}

// Intersects reports whether r and other overlap, including the case
// where they merely touch along one side.
func (r Rect[S]) Intersects(other Rect[S]) bool {
	return r.lower.X <= other.upper.X && r.lower.Y <= other.upper.Y &&
		r.upper.X >= other.lower.X && r.upper.Y >= other.lower.Y
}

// clampToRect clamps point componentwise into [lower, upper].
func (r Rect[S]) clampToRect(p spade.Point[S]) spade.Point[S] {
	return r.upper.Min(r.lower.Max(p))
}

// MinDist2 returns the squared distance from p to the nearest point
// of the closed rectangle.
func (r Rect[S]) MinDist2(p spade.Point[S]) S {
	return r.clampToRect(p).Sub(p).Length2()
}

// MaxDist2 returns the squared distance from p to the farthest corner
// of the rectangle.
func (r Rect[S]) MaxDist2(p spade.Point[S]) S {
	d1 := spade.Point[S]{X: spade.Abs(r.lower.X - p.X), Y: spade.Abs(r.lower.Y - p.Y)}
	d2 := spade.Point[S]{X: spade.Abs(r.upper.X - p.X), Y: spade.Abs(r.upper.Y - p.Y)}
	return d1.Max(d2).Length2()
}

// MinMaxDist2 returns, for each axis, the squared distance to the box
// face on that axis opposite p's nearest face, minimized over axes.
// It is the R-Tree best-first-search pruning upper bound described in
// SPEC_FULL.md §3.3 and §4.5 (Roussopoulos/Kelley-Vincent MINMAXDIST),
// ported verbatim from the min_max_dist2 algorithm in
// _examples/original_source/src/boundingrect.rs.
func (r Rect[S]) MinMaxDist2(p spade.Point[S]) S {
	l := r.lower.Sub(p)
	u := r.upper.Sub(p)

	var min, max spade.Point[S]
	if spade.Abs(l.X) < spade.Abs(u.X) {
		min.X, max.X = l.X, u.X
	} else {
		min.X, max.X = u.X, l.X
	}
	if spade.Abs(l.Y) < spade.Abs(u.Y) {
		min.Y, max.Y = l.Y, u.Y
	} else {
		min.Y, max.Y = u.Y, l.Y
	}

	// Axis 0 (X): only the X component takes the "max" value.
	px := spade.Point[S]{X: max.X, Y: min.Y}
	resultX := px.Length2()

	// Axis 1 (Y): only the Y component takes the "max" value.
	py := spade.Point[S]{X: min.X, Y: max.Y}
	resultY := py.Length2()

	return spade.Min(resultX, resultY)
}

// MBR2 implements spade.SpatialObject, so a Rect can itself be
// indexed directly by an R-Tree of rectangles.
func (r Rect[S]) MBR2() (lower, upper spade.Point[S]) {
	return r.lower, r.upper
}

// Distance2 implements spade.SpatialObject.
func (r Rect[S]) Distance2(p spade.Point[S]) S {
	return r.MinDist2(p)
}

// Contains implements spade.SpatialObject.
func (r Rect[S]) Contains(p spade.Point[S]) bool {
	return r.ContainsPoint(p)
}
