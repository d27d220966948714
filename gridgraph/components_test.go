// File: gridgraph/components_test.go
package gridgraph

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromRows builds a Grid from ASCII rows using the Glyph alphabet
// ('.' is accepted as Open for readability).
func fromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := New(len(rows), len(rows[0]))
	require.NoError(t, err)
	for y, row := range rows {
		require.Len(t, row, g.Cols(), "row %d", y)
		for x := 0; x < len(row); x++ {
			var k CellKind
			switch row[x] {
			case '.', ' ':
				k = Open
			case '>':
				k = Light
			case '^':
				k = Heavy
			case 'X':
				k = Blocked
			case 'S':
				k = Start
			case 'F':
				k = Finish
			default:
				t.Fatalf("unknown glyph %q at (%d,%d)", row[x], x, y)
			}
			require.NoError(t, g.SetCell(x, y, k))
		}
	}
	return g
}

// TestIndexCoordinateRoundTrip checks index/Coordinate on a non-square grid.
func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := New(3, 7)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			assert.Equal(t, Coordinate{X: x, Y: y}, g.Coordinate(g.index(x, y)))
		}
	}
}

// TestRegions_WallSplits tests a vertical wall splitting the grid in two.
//
//	. X .
//	. X .
//	. X .
//
// Expected: 2 regions of 3 cells each.
func TestRegions_WallSplits(t *testing.T) {
	g := fromRows(t,
		".X.",
		".X.",
		".X.",
	)
	comps := g.Regions()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 3)
	assert.Len(t, comps[1], 3)
	assert.Equal(t, Coordinate{X: 0, Y: 0}, comps[0][0])
	assert.Equal(t, Coordinate{X: 2, Y: 0}, comps[1][0])
}

// TestRegions_DiagonalGap verifies that two passable cells touching only at a
// corner are connected under 8-connectivity.
//
//	. X
//	X .
func TestRegions_DiagonalGap(t *testing.T) {
	g := fromRows(t,
		".X",
		"X.",
	)
	comps := g.Regions()
	require.Len(t, comps, 1)
	got := comps[0]
	sort.Slice(got, func(i, j int) bool { return got[i].Y < got[j].Y })
	assert.Equal(t, []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}}, got)
}

// TestRegions_AllBlocked yields no regions; markers and penalties are passable.
func TestRegions_AllBlocked(t *testing.T) {
	assert.Empty(t, fromRows(t, "XX", "XX").Regions())

	comps := fromRows(t, "S^", ">F").Regions()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 4)
}

// TestConnected covers enclosed targets, blocked endpoints and out-of-bounds input.
func TestConnected(t *testing.T) {
	g := fromRows(t,
		"S....",
		"...XX",
		"...XF",
	)
	s := Coordinate{X: 0, Y: 0}
	f := Coordinate{X: 4, Y: 2}

	assert.False(t, g.Connected(s, f), "finish is walled off")
	assert.True(t, g.Connected(s, Coordinate{X: 4, Y: 0}))
	assert.True(t, g.Connected(s, s))
	assert.False(t, g.Connected(s, Coordinate{X: 3, Y: 1}), "blocked endpoint")
	assert.False(t, g.Connected(s, Coordinate{X: 9, Y: 9}), "out of bounds")

	require.NoError(t, g.SetCell(4, 1, Heavy))
	assert.True(t, g.Connected(s, f), "opening a heavy cell reconnects finish")
}

// TestConcurrentReads runs Neighbors, Regions and SetCell from many goroutines
// to exercise the RWMutex under the race detector.
func TestConcurrentReads(t *testing.T) {
	g, err := New(16, 16)
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(2 * workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.Neighbors(Coordinate{X: id % 16, Y: (id * 7) % 16})
			require.NoError(t, err)
			_ = g.Regions()
		}(i)
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.SetCell(id%16, id/16, Light))
		}(i)
	}
	wg.Wait()

	c, err := g.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Light, c.Kind)
}
