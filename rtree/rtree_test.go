package rtree_test

import (
	"math/rand"
	"testing"

	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/internal/randgeom"
	"github.com/purpleposeidon/spade/rtree"
)

func pt(x, y float64) spade.PointObject[float64] {
	return spade.PointObject[float64]{Point: spade.NewPoint(x, y)}
}

func TestInsertAndLookup(t *testing.T) {
	tr := rtree.New[float64, spade.PointObject[float64]]()
	pts := []spade.PointObject[float64]{pt(0, 0), pt(1, 1), pt(2, 5), pt(-3, 4), pt(10, 10)}
	for _, p := range pts {
		tr.Insert(p)
	}
	if tr.Size() != len(pts) {
		t.Fatalf("Size = %d, want %d", tr.Size(), len(pts))
	}
	for _, p := range pts {
		got, ok := tr.Lookup(p.Point)
		if !ok {
			t.Fatalf("Lookup(%v) not found", p.Point)
		}
		if !got.Point.Equals(p.Point) {
			t.Errorf("Lookup(%v) = %v", p.Point, got.Point)
		}
	}
	if _, ok := tr.Lookup(spade.NewPoint(99.0, 99.0)); ok {
		t.Error("Lookup of absent point should fail")
	}
}

func TestInsertManyMaintainsInvariant(t *testing.T) {
	tr := rtree.New[float64, spade.PointObject[float64]]()
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		tr.Insert(pt(rnd.Float64()*1000-500, rnd.Float64()*1000-500))
	}
	if tr.Size() != 500 {
		t.Fatalf("Size = %d, want 500", tr.Size())
	}
}

// TestNearestNeighborAgreesWithBruteForce is scenario RTree-NN from
// SPEC_FULL.md §8: insert 1000 random points, run 100 random
// nearest-neighbor queries, and check the best-first result against
// brute force. Fixtures come from internal/randgeom, the shared
// generator SPEC_FULL.md §8 names for this scenario.
func TestNearestNeighborAgreesWithBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	tr := rtree.New[float64, spade.PointObject[float64]]()
	pts := randgeom.Points(rnd, 1000, 2000)
	for i := range pts {
		pts[i] = pts[i].Sub(spade.NewPoint(1000.0, 1000.0))
		tr.Insert(spade.PointObject[float64]{Point: pts[i]})
	}

	for q := 0; q < 100; q++ {
		query := randgeom.Point(rnd, 2000).Sub(spade.NewPoint(1000.0, 1000.0))

		var bestD2 float64
		var bestP spade.Point[float64]
		for i, p := range pts {
			d2 := p.Distance2(query)
			if i == 0 || d2 < bestD2 {
				bestD2, bestP = d2, p
			}
		}

		got, ok := tr.NearestNeighbor(query)
		if !ok {
			t.Fatalf("query %d: NearestNeighbor found nothing", q)
		}
		gotD2 := got.Point.Distance2(query)
		if gotD2 != bestD2 {
			t.Fatalf("query %d: best-first dist2=%v pt=%v, brute force dist2=%v pt=%v",
				q, gotD2, got.Point, bestD2, bestP)
		}
	}
}

func TestBulkLoadMatchesInsert(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	var pts []spade.PointObject[float64]
	for i := 0; i < 300; i++ {
		pts = append(pts, pt(rnd.Float64()*100, rnd.Float64()*100))
	}

	bulk := rtree.BulkLoad[float64](pts)
	if bulk.Size() != len(pts) {
		t.Fatalf("bulk Size = %d, want %d", bulk.Size(), len(pts))
	}
	for _, p := range pts {
		if _, ok := bulk.Lookup(p.Point); !ok {
			t.Fatalf("bulk-loaded tree missing point %v", p.Point)
		}
	}

	query := spade.NewPoint(50.0, 50.0)
	got, ok := bulk.NearestNeighbor(query)
	if !ok {
		t.Fatal("NearestNeighbor on bulk-loaded tree found nothing")
	}
	var bestD2 float64
	for i, p := range pts {
		d2 := p.Point.Distance2(query)
		if i == 0 || d2 < bestD2 {
			bestD2 = d2
		}
	}
	if got.Point.Distance2(query) != bestD2 {
		t.Error("bulk-loaded tree NearestNeighbor disagrees with brute force")
	}
}

func TestDeleteShrinksTree(t *testing.T) {
	tr := rtree.New[float64, spade.PointObject[float64]]()
	rnd := rand.New(rand.NewSource(3))
	var pts []spade.PointObject[float64]
	for i := 0; i < 200; i++ {
		p := pt(rnd.Float64()*100, rnd.Float64()*100)
		pts = append(pts, p)
		tr.Insert(p)
	}

	eq := func(a, b spade.PointObject[float64]) bool { return a.Point.Equals(b.Point) }
	for i := 0; i < 150; i++ {
		if !tr.Delete(pts[i], eq) {
			t.Fatalf("Delete(%v) reported not found", pts[i].Point)
		}
	}
	if tr.Size() != 50 {
		t.Fatalf("Size after deletes = %d, want 50", tr.Size())
	}
	for i := 150; i < 200; i++ {
		if _, ok := tr.Lookup(pts[i].Point); !ok {
			t.Errorf("surviving point %v missing after deletes", pts[i].Point)
		}
	}
}

func TestRangeSearchStopsEarly(t *testing.T) {
	tr := rtree.New[float64, spade.PointObject[float64]]()
	for i := 0; i < 20; i++ {
		tr.Insert(pt(float64(i), float64(i)))
	}
	count := 0
	err := tr.RangeSearch(tr.Root(), func(spade.PointObject[float64]) error {
		count++
		if count == 3 {
			return rtree.Stop
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RangeSearch err = %v, want nil (Stop is swallowed)", err)
	}
	if count != 3 {
		t.Fatalf("visited %d items before stopping, want 3", count)
	}
}

func TestExtentReportsWholeTreeMBR(t *testing.T) {
	tr := rtree.New[float64, spade.PointObject[float64]]()
	if _, ok := tr.Extent(); ok {
		t.Error("Extent on an empty tree should report false")
	}

	for _, p := range []spade.PointObject[float64]{pt(-3, 4), pt(10, -2), pt(5, 5)} {
		tr.Insert(p)
	}
	extent, ok := tr.Extent()
	if !ok {
		t.Fatal("Extent reported false on a non-empty tree")
	}
	if extent.Lower().X != -3 || extent.Lower().Y != -2 || extent.Upper().X != 10 || extent.Upper().Y != 5 {
		t.Errorf("Extent = [%v, %v], want [(-3,-2), (10,5)]", extent.Lower(), extent.Upper())
	}
}

func TestPrioritySearchVisitsInDistanceOrderAndHonorsStop(t *testing.T) {
	tr := rtree.New[float64, spade.PointObject[float64]]()
	for i := 0; i < 10; i++ {
		tr.Insert(pt(float64(i), 0))
	}

	var seen []float64
	err := tr.PrioritySearch(spade.NewPoint(0.0, 0.0), func(p spade.PointObject[float64]) error {
		seen = append(seen, p.Point.X)
		if len(seen) == 4 {
			return rtree.Stop
		}
		return nil
	})
	if err != nil {
		t.Fatalf("PrioritySearch err = %v, want nil (Stop is swallowed)", err)
	}
	want := []float64{0, 1, 2, 3}
	if len(seen) != len(want) {
		t.Fatalf("visited %v, want %v", seen, want)
	}
	for i, x := range want {
		if seen[i] != x {
			t.Errorf("seen[%d] = %v, want %v", i, seen[i], x)
		}
	}
}
