package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// randomGrid builds an n×n grid with roughly 20% Blocked and 20% Heavy cells.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	g, err := gridgraph.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch r := rng.Intn(10); {
			case r < 2:
				_ = g.Block(x, y)
			case r < 4:
				_ = g.SetCell(x, y, gridgraph.Heavy)
			}
		}
	}
	return g
}

// BenchmarkRegions measures Regions on a random 500×500 grid.
// Complexity: O(R×C×8)
func BenchmarkRegions(b *testing.B) {
	g := randomGrid(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions()
	}
}

// BenchmarkNeighbors measures a full sweep of Neighbors over a 500×500 grid.
func BenchmarkNeighbors(b *testing.B) {
	g := randomGrid(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := 0; y < g.Rows(); y++ {
			for x := 0; x < g.Cols(); x++ {
				_, _ = g.Neighbors(gridgraph.Coordinate{X: x, Y: y})
			}
		}
	}
}
