package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/heuristic"
)

// ExampleOctile estimates the cost from (1,1) to (9,4): three diagonal steps
// and five straight ones.
func ExampleOctile() {
	a := gridgraph.Coordinate{X: 1, Y: 1}
	b := gridgraph.Coordinate{X: 9, Y: 4}
	fmt.Printf("octile=%.4f chebyshev=%.0f\n", heuristic.Octile(a, b), heuristic.Chebyshev(a, b))

	// Output:
	// octile=9.2426 chebyshev=8
}
