// Package dijkstra_test contains unit tests for the grid Dijkstra implementation.
// These tests validate input checks, cost values under the terrain model,
// MaxDistance, and path reconstruction.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func at(x, y int) gridgraph.Coordinate { return gridgraph.Coordinate{X: x, Y: y} }

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_SourceNotSet(t *testing.T) {
	g, _ := gridgraph.New(2, 2)
	_, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotSet)

	// Missing Source has priority over a nil grid.
	_, err = dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotSet)
}

func TestDijkstra_NilGrid(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, dijkstra.Source(at(0, 0)))
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

func TestDijkstra_TypedNilGrid(t *testing.T) {
	var g *gridgraph.Grid
	assert.NotPanics(t, func() {
		_, err := dijkstra.Dijkstra(g, dijkstra.Source(at(0, 0)))
		assert.ErrorIs(t, err, dijkstra.ErrNilGrid)
	})
}

func TestDijkstra_BadSource(t *testing.T) {
	g, _ := gridgraph.New(2, 2)
	require.NoError(t, g.Block(1, 1))

	_, err := dijkstra.Dijkstra(g, dijkstra.Source(at(5, 0)))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfBounds)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source(at(1, 1)))
	assert.ErrorIs(t, err, dijkstra.ErrSourceBlocked)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 2. Cost values
// ------------------------------------------------------------------------

func TestDijkstra_OpenGridCosts(t *testing.T) {
	g, _ := gridgraph.New(4, 4)
	field, err := dijkstra.Dijkstra(g, dijkstra.Source(at(0, 0)))
	require.NoError(t, err)

	assert.Equal(t, 16, field.Len(), "every cell is reachable")
	assert.Equal(t, at(0, 0), field.Source())

	d, ok := field.Dist(at(0, 0))
	assert.True(t, ok)
	assert.Zero(t, d)

	d, _ = field.Dist(at(3, 0))
	assert.InDelta(t, 3, d, eps)

	d, _ = field.Dist(at(3, 3))
	assert.InDelta(t, 3*math.Sqrt2, d, eps)

	d, _ = field.Dist(at(3, 1))
	assert.InDelta(t, math.Sqrt2+2, d, eps)
}

func TestDijkstra_TerrainPenalties(t *testing.T) {
	// Row 0: S ^ .   moving right through Heavy costs 6, the detour via row 1 costs 1+√2.
	// Row 1: . . .
	g, _ := gridgraph.New(2, 3)
	require.NoError(t, g.SetCell(1, 0, gridgraph.Heavy))

	field, err := dijkstra.Dijkstra(g, dijkstra.Source(at(0, 0)), dijkstra.WithReturnPath())
	require.NoError(t, err)

	d, _ := field.Dist(at(2, 0))
	assert.InDelta(t, 2*math.Sqrt2, d, eps, "diagonal down then diagonal up")

	d, _ = field.Dist(at(1, 0))
	assert.InDelta(t, 6, d, eps, "entering the heavy cell costs 6 from any side")

	path, err := field.PathTo(at(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coordinate{at(0, 0), at(1, 1), at(2, 0)}, path)
}

func TestDijkstra_BlockedWall(t *testing.T) {
	g, _ := gridgraph.New(3, 3)
	for y := 0; y < 3; y++ {
		require.NoError(t, g.Block(1, y))
	}
	field, err := dijkstra.Dijkstra(g, dijkstra.Source(at(0, 0)), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, 3, field.Len())
	d, ok := field.Dist(at(2, 2))
	assert.False(t, ok)
	assert.True(t, math.IsInf(d, 1))

	_, err = field.PathTo(at(2, 2))
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

// ------------------------------------------------------------------------
// 3. MaxDistance and path tracking
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g, _ := gridgraph.New(1, 5)
	field, err := dijkstra.Dijkstra(g, dijkstra.Source(at(0, 0)), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)

	for x, want := range []bool{true, true, true, false, false} {
		_, ok := field.Dist(at(x, 0))
		assert.Equal(t, want, ok, "cell %d", x)
	}
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g, _ := gridgraph.New(2, 2)
	field, err := dijkstra.Dijkstra(g, dijkstra.Source(at(1, 1)), dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, 1, field.Len(), "only the source itself")
}

func TestField_PathNotTracked(t *testing.T) {
	g, _ := gridgraph.New(2, 2)
	field, err := dijkstra.Dijkstra(g, dijkstra.Source(at(0, 0)))
	require.NoError(t, err)

	_, err = field.PathTo(at(1, 1))
	assert.ErrorIs(t, err, dijkstra.ErrPathNotTracked)
}

func TestField_PathToSource(t *testing.T) {
	g, _ := gridgraph.New(2, 2)
	field, err := dijkstra.Dijkstra(g, dijkstra.Source(at(1, 0)), dijkstra.WithReturnPath())
	require.NoError(t, err)

	path, err := field.PathTo(at(1, 0))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coordinate{at(1, 0)}, path)
}
