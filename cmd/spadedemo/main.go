// Command spadedemo builds a random Delaunay triangulation and R-Tree
// over the same point set and reports a few statistics, exercising both
// packages end to end. Its flag/seed handling follows
// _examples/missinglink-simplefeatures/cmd/gen/main.go.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/dcel"
	"github.com/purpleposeidon/spade/delaunay"
	"github.com/purpleposeidon/spade/internal/randgeom"
	"github.com/purpleposeidon/spade/interpolation"
	"github.com/purpleposeidon/spade/rtree"
)

// indexedPoint indexes a plain point by its position in the generated
// slice, so the r-tree side of the demo can report which input point a
// query landed on.
type indexedPoint struct {
	spade.PointObject[float64]
	index int
}

func main() {
	seed := flag.Int64("seed", 0, "seed (0 will cause the current unix nano epoch to be used)")
	count := flag.Int("count", 500, "number of random points to generate")
	extent := flag.Float64("extent", 1000, "points are drawn from [0, extent) x [0, extent)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed: %d", *seed)
	rnd := rand.New(rand.NewSource(*seed))

	pts := randgeom.Points(rnd, *count, *extent)
	field := randgeom.NewPerlinField(rnd, 0, 0, *extent, *extent)

	tri := delaunay.New[float64, float64]()
	heights := map[dcel.VertexHandle]float64{}
	for _, p := range pts {
		h := field.Sample(p)
		v := tri.Insert(p, h)
		heights[v] = h
	}
	log.Printf("triangulation: %d vertices, %d triangles", tri.NumVertices(), tri.NumTriangles())

	items := make([]indexedPoint, len(pts))
	for i, p := range pts {
		items[i] = indexedPoint{PointObject: spade.PointObject[float64]{Point: p}, index: i}
	}
	index := rtree.BulkLoad[float64](items)
	log.Printf("r-tree: %d items, bulk-loaded", index.Size())

	query := randgeom.Point(rnd, *extent)
	if nearest, ok := index.NearestNeighbor(query); ok {
		log.Printf("nearest indexed point to %v: input index %d at %v", query, nearest.index, nearest.Point)
	}

	value, ok := interpolation.NaturalNeighbor(tri, query, func(v dcel.VertexHandle) float64 {
		return heights[v]
	})
	if ok {
		log.Printf("natural-neighbor height at %v: %.4f", query, value)
	} else {
		log.Printf("query point %v lies outside the triangulation's convex hull", query)
	}
}
