package heuristic

import (
	"math"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Func estimates the remaining cost from a to b.
type Func func(a, b gridgraph.Coordinate) float64

// deltas returns |ax-bx| and |ay-by|.
func deltas(a, b gridgraph.Coordinate) (dx, dy int) {
	dx, dy = a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx, dy
}

// Octile returns the octile distance between a and b.
func Octile(a, b gridgraph.Coordinate) float64 {
	dx, dy := deltas(a, b)
	lo, hi := min(dx, dy), max(dx, dy)

	return math.Sqrt2*float64(lo) + float64(hi-lo)
}

// Chebyshev returns max(|dx|, |dy|).
func Chebyshev(a, b gridgraph.Coordinate) float64 {
	dx, dy := deltas(a, b)
	return float64(max(dx, dy))
}

// Zero always returns 0; with it A* degenerates to uniform-cost search.
func Zero(_, _ gridgraph.Coordinate) float64 { return 0 }
