package gridgraph

import (
	"fmt"
	"sync"
)

// CellKind classifies the terrain of a single cell.
// Start and Finish are markers; each is held by at most one cell at a time.
type CellKind int

const (
	// Open is ordinary terrain, cost 1.
	Open CellKind = iota
	// Light is penalized-light terrain ("easy" road), cost 1.
	// It is kept distinct from Open for map texture.
	Light
	// Heavy is penalized-heavy terrain ("hard" ground), cost 6.
	Heavy
	// Blocked is impassable.
	Blocked
	// Start marks the search origin, cost 1 when stepped on.
	Start
	// Finish marks the goal, cost 3.
	Finish
)

// String returns the kind's name.
func (k CellKind) String() string {
	switch k {
	case Open:
		return "open"
	case Light:
		return "light"
	case Heavy:
		return "heavy"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case Finish:
		return "finish"
	default:
		return fmt.Sprintf("CellKind(%d)", int(k))
	}
}

// Glyph returns the single character used for ASCII maps.
func (k CellKind) Glyph() byte {
	switch k {
	case Light:
		return '>'
	case Heavy:
		return '^'
	case Blocked:
		return 'X'
	case Start:
		return 'S'
	case Finish:
		return 'F'
	default:
		return ' '
	}
}

// valid reports whether k belongs to the closed set of kinds.
func (k CellKind) valid() bool {
	return k >= Open && k <= Finish
}

// Coordinate addresses a cell: X is the column, Y is the row, both zero-based.
type Coordinate struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell is a read-only view of one grid cell.
type Cell struct {
	Coordinate
	Kind CellKind
}

// Grid is a rectangular terrain matrix with cached Start/Finish coordinates.
// Cells are stored row-major: kinds[y*cols+x].
// The zero value is not usable; construct with New.
type Grid struct {
	mu     sync.RWMutex
	rows   int
	cols   int
	kinds  []CellKind
	start  Coordinate
	finish Coordinate
	// hasStart and hasFinish track whether the cached markers are set.
	hasStart  bool
	hasFinish bool
}

// neighborOffsets enumerates the 3×3 neighborhood minus the center,
// row-major: dy = -1, 0, 1 and within each row dx = -1, 0, 1.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
