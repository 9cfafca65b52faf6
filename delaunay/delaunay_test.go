package delaunay_test

import (
	"math/rand"
	"testing"

	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/delaunay"
	"github.com/purpleposeidon/spade/internal/randgeom"
)

func TestBootstrapTriangle(t *testing.T) {
	tri := delaunay.New[float64, string]()
	v0 := tri.Insert(spade.NewPoint(0.0, 0.0), "a")
	v1 := tri.Insert(spade.NewPoint(1.0, 0.0), "b")
	v2 := tri.Insert(spade.NewPoint(0.0, 1.0), "c")

	if tri.NumVertices() != 3 {
		t.Fatalf("NumVertices = %d, want 3", tri.NumVertices())
	}
	if tri.NumTriangles() != 1 {
		t.Fatalf("NumTriangles = %d, want 1", tri.NumTriangles())
	}
	if tri.IsDegenerate() {
		t.Fatal("triangulation should no longer be degenerate")
	}

	if got := tri.Data(v0); got != "a" {
		t.Errorf("Data(v0) = %q", got)
	}
	if got := tri.Data(v1); got != "b" {
		t.Errorf("Data(v1) = %q", got)
	}
	if got := tri.Data(v2); got != "c" {
		t.Errorf("Data(v2) = %q", got)
	}
}

func TestLocateOnVertex(t *testing.T) {
	tri := delaunay.New[float64, int]()
	tri.Insert(spade.NewPoint(0.0, 0.0), 0)
	tri.Insert(spade.NewPoint(2.0, 0.0), 1)
	v2 := tri.Insert(spade.NewPoint(0.0, 2.0), 2)

	loc := tri.Locate(spade.NewPoint(0.0, 2.0))
	if loc.Kind != delaunay.OnVertex || loc.Vertex != v2 {
		t.Fatalf("Locate on existing point = %+v, want OnVertex %d", loc, v2)
	}
}

// TestInsertFourCocircular is scenario Delaunay-insert-four-cocircular
// from SPEC_FULL.md §8: inserting the four corners of a unit square —
// exactly cocircular — must still leave the mesh with 2 valid
// triangles and no crash in the flip-restoration pass, since InCircle
// returns Zero (not Positive) for an exactly cocircular configuration.
func TestInsertFourCocircular(t *testing.T) {
	tri := delaunay.New[float64, int]()
	tri.Insert(spade.NewPoint(0.0, 0.0), 0)
	tri.Insert(spade.NewPoint(1.0, 0.0), 1)
	tri.Insert(spade.NewPoint(1.0, 1.0), 2)
	tri.Insert(spade.NewPoint(0.0, 1.0), 3)

	if got := tri.NumVertices(); got != 4 {
		t.Fatalf("NumVertices = %d, want 4", got)
	}
	if got := tri.NumTriangles(); got != 2 {
		t.Fatalf("NumTriangles = %d, want 2", got)
	}
}

// TestInsertManyRandomPointsStaysConsistent uses the shared
// internal/randgeom generator SPEC_FULL.md §8 names for this kind of
// fixture, seeded for reproducibility.
func TestInsertManyRandomPointsStaysConsistent(t *testing.T) {
	tri := delaunay.New[float64, int]()
	rnd := rand.New(rand.NewSource(11))
	pts := randgeom.Points(rnd, 200, 100)
	for i, p := range pts {
		tri.Insert(p, i)
	}
	if tri.NumVertices() != 200 {
		t.Fatalf("NumVertices = %d, want 200", tri.NumVertices())
	}
	// Euler's formula for a triangulated point set with h hull edges:
	// triangles = 2*vertices - h - 2. Sanity bound: must be positive
	// and not wildly larger than 2*vertices.
	if tri.NumTriangles() <= 0 || tri.NumTriangles() > 2*tri.NumVertices() {
		t.Fatalf("NumTriangles = %d looks inconsistent for %d vertices", tri.NumTriangles(), tri.NumVertices())
	}
}

func TestInsertOutsideHullExtendsTriangulation(t *testing.T) {
	tri := delaunay.New[float64, int]()
	tri.Insert(spade.NewPoint(0.0, 0.0), 0)
	tri.Insert(spade.NewPoint(1.0, 0.0), 1)
	tri.Insert(spade.NewPoint(0.0, 1.0), 2)

	before := tri.NumTriangles()
	tri.Insert(spade.NewPoint(5.0, 5.0), 3)
	after := tri.NumTriangles()
	if after <= before {
		t.Fatalf("NumTriangles after hull-extending insert = %d, want more than %d", after, before)
	}
}

func TestInsertOnEdgeSplitsBothTriangles(t *testing.T) {
	tri := delaunay.New[float64, int]()
	tri.Insert(spade.NewPoint(0.0, 0.0), 0)
	tri.Insert(spade.NewPoint(2.0, 0.0), 1)
	tri.Insert(spade.NewPoint(1.0, 1.0), 2)
	tri.Insert(spade.NewPoint(1.0, -1.0), 3)

	before := tri.NumTriangles()
	tri.Insert(spade.NewPoint(1.0, 0.0), 4) // lies exactly on edge (0,0)-(2,0)
	after := tri.NumTriangles()
	if after != before+2 {
		t.Fatalf("NumTriangles after on-edge insert = %d, want %d", after, before+2)
	}
}

func TestRemoveInteriorVertex(t *testing.T) {
	tri := delaunay.New[float64, int]()
	tri.Insert(spade.NewPoint(0.0, 0.0), 0)
	tri.Insert(spade.NewPoint(4.0, 0.0), 1)
	tri.Insert(spade.NewPoint(4.0, 4.0), 2)
	tri.Insert(spade.NewPoint(0.0, 4.0), 3)
	center := tri.Insert(spade.NewPoint(2.0, 2.0), 4)

	before := tri.NumTriangles()
	result := tri.Remove(center)
	if result.Data != 4 {
		t.Errorf("removed data = %v, want 4", result.Data)
	}
	if got := tri.NumVertices(); got != 4 {
		t.Fatalf("NumVertices after remove = %d, want 4", got)
	}
	if tri.NumTriangles() >= before {
		t.Errorf("NumTriangles after remove = %d, want fewer than %d", tri.NumTriangles(), before)
	}
}
