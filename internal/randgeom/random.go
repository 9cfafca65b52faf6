// Package randgeom generates deterministic point fixtures for tests and
// the demo command, seeded from a caller-supplied *rand.Rand rather
// than a package-global source so fixtures stay reproducible across
// runs. Grounded on
// _examples/missinglink-simplefeatures/generate/{random,circle,perlin}.go's
// same "seeded rnd in, geometry out" shape, rendered over spade.Point
// instead of that package's geom.XY.
package randgeom

import (
	"math"
	"math/rand"

	"github.com/purpleposeidon/spade"
)

// Point returns a uniformly random point in [0, max) x [0, max), built
// through Vec2 so the mathgl-backed construction path is the one
// actually exercised by every float64 point this package hands out.
func Point(rnd *rand.Rand, max float64) spade.Point[float64] {
	return spade.NewVec2(rnd.Float64()*max, rnd.Float64()*max).Point()
}

// PointOnGrid returns a random point on the integer grid within
// [min, max) on both axes, matching RandomXYOnGrid's grid-snapped
// coordinates (useful for exercising exact predicate ties and
// coincident-point handling that continuous coordinates rarely hit).
func PointOnGrid(rnd *rand.Rand, min, max int) spade.Point[float64] {
	x := rnd.Intn(max-min) + min
	y := rnd.Intn(max-min) + min
	return spade.NewVec2(float64(x), float64(y)).Point()
}

// Points returns n independent uniformly random points in
// [0, max) x [0, max).
func Points(rnd *rand.Rand, n int, max float64) []spade.Point[float64] {
	pts := make([]spade.Point[float64], n)
	for i := range pts {
		pts[i] = Point(rnd, max)
	}
	return pts
}

// RegularPolygon returns the sides vertices of a regular polygon
// circumscribed by a circle with the given center and radius, in CCW
// order, adapted from RegularPolygon's angle-stepping construction.
// Useful for exercising the cocircular-insertion edge case (every
// vertex shares the same circumcircle) with a chosen vertex count.
func RegularPolygon(center spade.Point[float64], radius float64, sides int) []spade.Point[float64] {
	if sides < 3 {
		panic("randgeom: RegularPolygon: sides must be at least 3")
	}
	pts := make([]spade.Point[float64], sides)
	for i := 0; i < sides; i++ {
		angle := math.Pi/2 + float64(i)/float64(sides)*2*math.Pi
		pts[i] = spade.NewVec2(
			center.X+math.Cos(angle)*radius,
			center.Y+math.Sin(angle)*radius,
		).Point()
	}
	return pts
}
