package interpolation_test

import (
	"math"
	"testing"

	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/dcel"
	"github.com/purpleposeidon/spade/delaunay"
	"github.com/purpleposeidon/spade/interpolation"
)

// planarTriangulation builds a triangulation of a 4x4 square plus a
// vertex at its center (four triangles meeting there), with a height
// field linear in x — exact for
// barycentric and natural-neighbor interpolation alike, since both
// reduce to an affine blend over a piecewise-linear field.
func planarTriangulation(t *testing.T) (*delaunay.DelaunayTriangulation[float64, float64], map[dcel.VertexHandle]float64) {
	t.Helper()
	tri := delaunay.New[float64, float64]()
	heights := map[dcel.VertexHandle]float64{}

	corners := [][2]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}}
	for _, c := range corners {
		v := tri.Insert(spade.NewPoint(c[0], c[1]), c[0])
		heights[v] = c[0]
	}
	return tri, heights
}

func valueFunc(heights map[dcel.VertexHandle]float64) interpolation.ValueFunc[float64] {
	return func(v dcel.VertexHandle) float64 { return heights[v] }
}

func TestBarycentricMatchesLinearField(t *testing.T) {
	tri, heights := planarTriangulation(t)
	got, ok := interpolation.Barycentric(tri, spade.NewPoint(1.0, 1.0), valueFunc(heights))
	if !ok {
		t.Fatal("Barycentric returned false for an interior point")
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Barycentric(1,1) = %v, want 1.0", got)
	}
}

func TestBarycentricOutsideHull(t *testing.T) {
	tri, heights := planarTriangulation(t)
	_, ok := interpolation.Barycentric(tri, spade.NewPoint(100.0, 100.0), valueFunc(heights))
	if ok {
		t.Error("Barycentric should report false outside the convex hull")
	}
}

func TestNaturalNeighborMatchesLinearField(t *testing.T) {
	tri, heights := planarTriangulation(t)
	for _, p := range [][2]float64{{1, 1}, {3, 1}, {2, 3}, {0.5, 0.5}} {
		got, ok := interpolation.NaturalNeighbor(tri, spade.NewPoint(p[0], p[1]), valueFunc(heights))
		if !ok {
			t.Fatalf("NaturalNeighbor(%v) returned false", p)
		}
		if math.Abs(got-p[0]) > 1e-6 {
			t.Errorf("NaturalNeighbor(%v) = %v, want %v", p, got, p[0])
		}
	}
}

func TestNaturalNeighborOutsideHull(t *testing.T) {
	tri, heights := planarTriangulation(t)
	_, ok := interpolation.NaturalNeighbor(tri, spade.NewPoint(-5.0, -5.0), valueFunc(heights))
	if ok {
		t.Error("NaturalNeighbor should report false outside the convex hull")
	}
}

func TestNaturalNeighborOnVertexReturnsExactValue(t *testing.T) {
	tri, heights := planarTriangulation(t)
	loc := tri.Locate(spade.NewPoint(2.0, 2.0))
	if loc.Kind != delaunay.OnVertex {
		t.Fatal("expected center point to locate exactly on a vertex")
	}
	got, ok := interpolation.NaturalNeighbor(tri, spade.NewPoint(2.0, 2.0), valueFunc(heights))
	if !ok || got != heights[loc.Vertex] {
		t.Errorf("NaturalNeighbor on vertex = %v, %v, want %v, true", got, ok, heights[loc.Vertex])
	}
}

func unitXGradient(dcel.VertexHandle, dcel.VertexHandle) [2]float64 { return [2]float64{1, 0} }

func TestSibsonC1MatchesLinearFieldWithMatchingGradient(t *testing.T) {
	tri, heights := planarTriangulation(t)
	got, ok := interpolation.SibsonC1(tri, spade.NewPoint(1.0, 1.0), 1.0, valueFunc(heights), unitXGradient)
	if !ok {
		t.Fatal("SibsonC1 returned false for an interior point")
	}
	if math.Abs(got-1.0) > 1e-6 {
		t.Errorf("SibsonC1(1,1) = %v, want close to 1.0", got)
	}
}

func TestFarinC1MatchesLinearFieldWithMatchingGradient(t *testing.T) {
	tri, heights := planarTriangulation(t)
	got, ok := interpolation.FarinC1(tri, spade.NewPoint(1.0, 1.0), valueFunc(heights), unitXGradient)
	if !ok {
		t.Fatal("FarinC1 returned false for an interior point")
	}
	if math.Abs(got-1.0) > 1e-6 {
		t.Errorf("FarinC1(1,1) = %v, want close to 1.0", got)
	}
}
