package delaunay_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purpleposeidon/spade"
	"github.com/purpleposeidon/spade/delaunay"
)

func TestCDTInsertConstraintSurvivesFlips(t *testing.T) {
	cdt := delaunay.NewCDT[float64, int]()
	a := cdt.Insert(spade.NewPoint(0.0, 0.0), 0)
	cdt.Insert(spade.NewPoint(4.0, 0.0), 1)
	c := cdt.Insert(spade.NewPoint(4.0, 4.0), 2)
	cdt.Insert(spade.NewPoint(0.0, 4.0), 3)

	require.True(t, cdt.InsertConstraint(a, c), "diagonal constraint should be installable")

	e, ok := cdt.Mesh().EdgeFromNeighbors(a, c)
	require.True(t, ok, "constrained edge should exist after InsertConstraint")
	require.True(t, cdt.IsConstraintEdge(e))

	// Inserting a point that would otherwise trigger a flip of a-c must
	// leave the constraint in place.
	cdt.Insert(spade.NewPoint(2.0, 2.01), 4)

	e2, ok := cdt.Mesh().EdgeFromNeighbors(a, c)
	require.True(t, ok, "constrained edge must survive further insertion")
	require.True(t, cdt.IsConstraintEdge(e2))
}

func TestCDTInsertConstraintAlreadyDirect(t *testing.T) {
	cdt := delaunay.NewCDT[float64, int]()
	a := cdt.Insert(spade.NewPoint(0.0, 0.0), 0)
	b := cdt.Insert(spade.NewPoint(1.0, 0.0), 1)
	cdt.Insert(spade.NewPoint(0.0, 1.0), 2)

	require.True(t, cdt.InsertConstraint(a, b), "direct edge constraint")
	e, ok := cdt.Mesh().EdgeFromNeighbors(a, b)
	require.True(t, ok)
	require.True(t, cdt.IsConstraintEdge(e))
}

func TestCDTNonConstrainedEdgeRemainsFlippable(t *testing.T) {
	cdt := delaunay.NewCDT[float64, int]()
	a := cdt.Insert(spade.NewPoint(0.0, 0.0), 0)
	b := cdt.Insert(spade.NewPoint(4.0, 0.0), 1)
	c := cdt.Insert(spade.NewPoint(4.0, 4.0), 2)
	d := cdt.Insert(spade.NewPoint(0.0, 4.0), 3)

	e, ok := cdt.Mesh().EdgeFromNeighbors(a, c)
	if !ok {
		e, ok = cdt.Mesh().EdgeFromNeighbors(b, d)
	}
	require.True(t, ok, "square bootstrap should leave one diagonal present")
	require.False(t, cdt.IsConstraintEdge(e))
	require.True(t, cdt.CanBeFlipped(e), "an unconstrained interior diagonal should be flippable")
}
