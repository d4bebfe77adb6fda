package lattice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinmimo/lattice"
)

// TestHoneycomb_Scale1: the smallest hexagon is the 7-cell flower with a
// degree-6 center, 12 interference pairs, and the two far corners absent.
func TestHoneycomb_Scale1(t *testing.T) {
	l, err := lattice.Honeycomb(1)
	require.NoError(t, err)

	require.Equal(t, 7, l.NumNodes())
	require.Equal(t, 12, l.NumEdges())

	center := lattice.Coord{X: 1, Y: 1}
	require.Equal(t, 6, l.Degree(center))
	require.False(t, l.Has(lattice.Coord{X: 2, Y: 0}))
	require.False(t, l.Has(lattice.Coord{X: 0, Y: 2}))

	require.Equal(t, []lattice.Coord{
		{X: 0, Y: 0}, {X: 0, Y: 1},
		{X: 1, Y: 0}, {X: 1, Y: 2},
		{X: 2, Y: 1}, {X: 2, Y: 2},
	}, l.Neighbors(center))
}

// TestHoneycomb_Scale2: node and edge counts follow the hexagonal closed
// forms 3L²+3L+1 and 9L²+3L.
func TestHoneycomb_Scale2(t *testing.T) {
	l, err := lattice.Honeycomb(2)
	require.NoError(t, err)
	require.Equal(t, 19, l.NumNodes())
	require.Equal(t, 42, l.NumEdges())
	require.Equal(t, 6, l.Degree(lattice.Coord{X: 2, Y: 2}))
	// A hexagon corner touches three cells.
	require.Equal(t, 3, l.Degree(lattice.Coord{X: 0, Y: 0}))
}

func TestHoneycomb_BadScale(t *testing.T) {
	for _, scale := range []int{0, -3} {
		_, err := lattice.Honeycomb(scale)
		if !errors.Is(err, lattice.ErrBadScale) {
			t.Errorf("Honeycomb(%d) error = %v; want ErrBadScale", scale, err)
		}
	}
}

func TestLattice_ManualConstruction(t *testing.T) {
	l := lattice.New()
	a, b, c := lattice.Coord{X: 0, Y: 0}, lattice.Coord{X: 1, Y: 0}, lattice.Coord{X: 9, Y: 9}
	l.AddNode(a)
	l.AddNode(b)
	l.AddNode(a) // idempotent

	require.NoError(t, l.AddEdge(a, b))
	require.NoError(t, l.AddEdge(b, a)) // duplicate edge is a no-op
	require.Equal(t, 2, l.NumNodes())
	require.Equal(t, 1, l.NumEdges())
	require.True(t, l.HasEdge(a, b))
	require.Equal(t, []lattice.Coord{b}, l.Neighbors(a))

	if err := l.AddEdge(a, a); !errors.Is(err, lattice.ErrSelfEdge) {
		t.Errorf("AddEdge self error = %v; want ErrSelfEdge", err)
	}
	if err := l.AddEdge(a, c); !errors.Is(err, lattice.ErrMissingNode) {
		t.Errorf("AddEdge missing error = %v; want ErrMissingNode", err)
	}
	require.Nil(t, l.Neighbors(c))
	require.Equal(t, 0, l.Degree(c))
}
