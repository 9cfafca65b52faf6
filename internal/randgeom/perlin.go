package randgeom

import (
	"math"
	"math/rand"

	"github.com/purpleposeidon/spade"
)

// PerlinField samples smooth pseudo-random noise over a bounded region,
// ported from PerlinGenerator to produce synthetic height fields for
// interpolation demos and tests — a scattered-data field with no exact
// piecewise-linear structure, unlike the planar fields the interpolation
// package's own correctness tests use.
type PerlinField struct {
	minX, minY float64
	gradients  [][]spade.Point[float64]
	originX    int
	originY    int
}

// NewPerlinField builds a noise field covering [minX, maxX] x [minY, maxY]
// with gradients seeded from rnd.
func NewPerlinField(rnd *rand.Rand, minX, minY, maxX, maxY float64) *PerlinField {
	loX, loY := math.Floor(minX)-1, math.Floor(minY)-1
	hiX, hiY := math.Ceil(maxX)+1, math.Ceil(maxY)+1

	gridw := int(hiX) - int(loX) + 1
	gridh := int(hiY) - int(loY) + 1

	gradients := make([][]spade.Point[float64], gridw)
	for i := range gradients {
		gradients[i] = make([]spade.Point[float64], gridh)
		for j := range gradients[i] {
			angle := rnd.Float64() * math.Pi * 2
			gradients[i][j] = spade.NewPoint(math.Sin(angle), math.Cos(angle))
		}
	}
	return &PerlinField{minX: loX, minY: loY, gradients: gradients, originX: int(loX), originY: int(loY)}
}

// Sample returns the field's value at p.
func (f *PerlinField) Sample(p spade.Point[float64]) float64 {
	x0 := int(p.X - f.minX)
	x1 := x0 + 1
	y0 := int(p.Y - f.minY)
	y1 := y0 + 1

	n0 := f.dotGridGradient(x0, y0, p)
	n1 := f.dotGridGradient(x1, y0, p)
	n2 := f.dotGridGradient(x0, y1, p)
	n3 := f.dotGridGradient(x1, y1, p)

	sx := p.X - float64(x0+f.originX)
	sy := p.Y - float64(y0+f.originY)

	lerp := func(a, b, w float64) float64 { return (1-w)*a + w*b }
	return lerp(lerp(n0, n1, sx), lerp(n2, n3, sx), sy)
}

func (f *PerlinField) dotGridGradient(x, y int, p spade.Point[float64]) float64 {
	dx := p.X - float64(x+f.originX)
	dy := p.Y - float64(y+f.originY)
	g := f.gradients[x][y]
	return dx*g.X + dy*g.Y
}

// Gradient returns the field's finite-difference gradient estimate at
// p, suitable for plugging into interpolation.GradientFunc.
func (f *PerlinField) Gradient(p spade.Point[float64]) [2]float64 {
	const h = 1e-3
	dx := (f.Sample(spade.NewPoint(p.X+h, p.Y)) - f.Sample(spade.NewPoint(p.X-h, p.Y))) / (2 * h)
	dy := (f.Sample(spade.NewPoint(p.X, p.Y+h)) - f.Sample(spade.NewPoint(p.X, p.Y-h))) / (2 * h)
	return [2]float64{dx, dy}
}
