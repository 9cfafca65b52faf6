// Package spade implements a two-dimensional computational-geometry core:
// a dynamically updatable Delaunay triangulation with constrained-edge
// support, and a bulk-loadable R-Tree spatial index. See the dcel,
// delaunay, interpolation and rtree subpackages for the bulk of the
// implementation; this file and point.go hold the generic numeric and
// point abstractions shared by all of them.
package spade

import "math"

// Scalar is the numeric field every geometric computation is
// monomorphized over. It is satisfied by float64 and float32 (or any
// named type with one of those as its underlying type), matching the
// way the rest of this corpus constrains numeric type parameters
// (e.g. lvlath's weighted graphs) rather than reaching for an
// interface with virtual dispatch — a vtable-based Scalar would
// measurably slow the in-circle tests this package's correctness
// hinges on.
type Scalar interface {
	~float64 | ~float32
}

// Zero returns the additive identity for S.
func Zero[S Scalar]() S { return S(0) }

// One returns the multiplicative identity for S.
func One[S Scalar]() S { return S(1) }

// Abs returns the absolute value of x.
func Abs[S Scalar](x S) S {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns the square root of x, computed in float64 and converted
// back to S. Scalar has no native sqrt operator, so this is the one
// place a Scalar value round-trips through float64.
func Sqrt[S Scalar](x S) S {
	return S(math.Sqrt(float64(x)))
}

// Epsilon returns the machine epsilon appropriate to S. The predicate
// package does not call it: its filters use their own fixed
// error-bound constants.
func Epsilon[S Scalar]() S {
	var zero S
	switch any(zero).(type) {
	case float32:
		return S(1.1920929e-7)
	default:
		return S(2.220446049250313e-16)
	}
}

// Min returns the smaller of a and b.
func Min[S Scalar](a, b S) S {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[S Scalar](a, b S) S {
	if a > b {
		return a
	}
	return b
}
