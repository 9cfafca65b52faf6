package boundingrect_test

import (
	"testing"

	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/boundingrect"
)

// TestFromPoints is scenario BB1 from SPEC_FULL.md §8.
func TestFromPoints(t *testing.T) {
	pts := []spade.Point[float64]{
		spade.NewPoint(0.0, 1.0),
		spade.NewPoint(1.0, 0.5),
		spade.NewPoint(2.0, -2.0),
		spade.NewPoint(0.0, 0.0),
	}
	r := boundingrect.FromPoints(pts)
	if got, want := r.Lower(), spade.NewPoint(0.0, -2.0); got != want {
		t.Errorf("lower = %v, want %v", got, want)
	}
	if got, want := r.Upper(), spade.NewPoint(2.0, 1.0); got != want {
		t.Errorf("upper = %v, want %v", got, want)
	}
}

// TestDistance2 is scenario BB2 from SPEC_FULL.md §8.
func TestDistance2(t *testing.T) {
	r := boundingrect.FromCorners(spade.NewPoint(0.0, 0.0), spade.NewPoint(1.0, 1.0))
	for _, tt := range []struct {
		p    spade.Point[float64]
		want float64
	}{
		{spade.NewPoint(0.0, -1.0), 1.0},
		{spade.NewPoint(2.0, 2.0), 2.0},
		{spade.NewPoint(2.0, 0.5), 1.0},
		{spade.NewPoint(0.2, 0.7), 0.0},
	} {
		if got := r.MinDist2(tt.p); got != tt.want {
			t.Errorf("MinDist2(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestFromPointsEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty input")
		}
	}()
	boundingrect.FromPoints([]spade.Point[float64]{})
}

func TestIntersectDisjointIsDegenerate(t *testing.T) {
	a := boundingrect.FromCorners(spade.NewPoint(0.0, 0.0), spade.NewPoint(1.0, 1.0))
	b := boundingrect.FromCorners(spade.NewPoint(5.0, 5.0), spade.NewPoint(6.0, 6.0))
	got := a.Intersect(b)
	if got.Area() != 0 {
		t.Errorf("Area() = %v, want 0", got.Area())
	}
	if got.HalfMargin() != 0 {
		t.Errorf("HalfMargin() = %v, want 0", got.HalfMargin())
	}
	// Distance metrics remain well defined on the degenerate rect.
	_ = got.MinDist2(spade.NewPoint(0.0, 0.0))
}

func TestMinMaxDist2(t *testing.T) {
	r := boundingrect.FromCorners(spade.NewPoint(0.0, 0.0), spade.NewPoint(10.0, 10.0))
	p := spade.NewPoint(-1.0, 5.0)
	got := r.MinMaxDist2(p)
	if got <= 0 {
		t.Errorf("MinMaxDist2 = %v, want > 0", got)
	}
	// MinMaxDist2 is always an upper bound on the distance to some
	// point within the rect, so it must be >= MinDist2.
	if got < r.MinDist2(p) {
		t.Errorf("MinMaxDist2 (%v) < MinDist2 (%v)", got, r.MinDist2(p))
	}
}

func TestContainsAndIntersects(t *testing.T) {
	outer := boundingrect.FromCorners(spade.NewPoint(0.0, 0.0), spade.NewPoint(10.0, 10.0))
	inner := boundingrect.FromCorners(spade.NewPoint(2.0, 2.0), spade.NewPoint(3.0, 3.0))
	if !outer.ContainsRect(inner) {
		t.Error("expected outer to contain inner")
	}
	touching := boundingrect.FromCorners(spade.NewPoint(10.0, 10.0), spade.NewPoint(20.0, 20.0))
	if !outer.Intersects(touching) {
		t.Error("expected touching rects to intersect")
	}
}
