package predicate_test

import (
	"math/rand"
	"testing"

	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/predicate"
)

func TestOrient2DBasic(t *testing.T) {
	ccw := predicate.Orient2D(spade.NewPoint(0.0, 0.0), spade.NewPoint(1.0, 0.0), spade.NewPoint(0.0, 1.0))
	if ccw != predicate.Positive {
		t.Errorf("expected Positive for CCW triangle, got %v", ccw)
	}
	cw := predicate.Orient2D(spade.NewPoint(0.0, 0.0), spade.NewPoint(0.0, 1.0), spade.NewPoint(1.0, 0.0))
	if cw != predicate.Negative {
		t.Errorf("expected Negative for CW triangle, got %v", cw)
	}
	colinear := predicate.Orient2D(spade.NewPoint(0.0, 0.0), spade.NewPoint(1.0, 1.0), spade.NewPoint(2.0, 2.0))
	if colinear != predicate.Zero {
		t.Errorf("expected Zero for colinear points, got %v", colinear)
	}
}

func TestInCircleBasic(t *testing.T) {
	a := spade.NewPoint(0.0, 0.0)
	b := spade.NewPoint(1.0, 0.0)
	c := spade.NewPoint(0.0, 1.0)

	inside := predicate.InCircle(a, b, c, spade.NewPoint(0.1, 0.1))
	if inside != predicate.Positive {
		t.Errorf("expected Positive for a point near the centroid, got %v", inside)
	}

	outside := predicate.InCircle(a, b, c, spade.NewPoint(10.0, 10.0))
	if outside != predicate.Negative {
		t.Errorf("expected Negative for a far point, got %v", outside)
	}
}

// TestInCircleFourCocircular is scenario
// Delaunay-insert-four-cocircular from SPEC_FULL.md §8: the square
// (0,0),(1,0),(1,1),(0,1) is exactly cocircular, so in_circle on the
// fourth point given the other three as a triangle must return
// exactly Zero.
func TestInCircleFourCocircular(t *testing.T) {
	p00 := spade.NewPoint(0.0, 0.0)
	p10 := spade.NewPoint(1.0, 0.0)
	p11 := spade.NewPoint(1.0, 1.0)
	p01 := spade.NewPoint(0.0, 1.0)

	got := predicate.InCircle(p00, p10, p11, p01)
	if got != predicate.Zero {
		t.Errorf("expected Zero for cocircular unit square, got %v", got)
	}
}

func TestOrient2DAntisymmetric(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := spade.NewPoint(rnd.Float64()*10-5, rnd.Float64()*10-5)
		b := spade.NewPoint(rnd.Float64()*10-5, rnd.Float64()*10-5)
		c := spade.NewPoint(rnd.Float64()*10-5, rnd.Float64()*10-5)
		fwd := predicate.Orient2D(a, b, c)
		rev := predicate.Orient2D(a, c, b)
		if fwd != -rev {
			t.Fatalf("orient2d(a,b,c)=%v, orient2d(a,c,b)=%v, expected opposites", fwd, rev)
		}
	}
}
