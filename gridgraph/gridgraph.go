package gridgraph

import (
	"fmt"
)

// New constructs a rows×cols Grid with every cell Open and no markers set.
// Returns ErrInvalidDimension if rows < 1 or cols < 1.
// Algorithmic complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimension, rows, cols)
	}
	// make zero-fills, and Open is the zero CellKind.
	return &Grid{
		rows:  rows,
		cols:  cols,
		kinds: make([]CellKind, rows*cols),
	}, nil
}

// Rows returns the number of rows (the Y extent).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (the X extent).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// checkBounds returns a wrapped ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) checkBounds(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %d rows × %d cols", ErrOutOfBounds, x, y, g.rows, g.cols)
	}
	return nil
}

// index maps (x,y) to a row-major index: y*cols + x.
func (g *Grid) index(x, y int) int {
	return y*g.cols + x
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.cols, Y: idx / g.cols}
}

// SetCell overwrites the kind of cell (x,y).
//
// Marker handling keeps Start and Finish unique:
//   - Setting Start (Finish) reverts the previous Start (Finish) cell, if any, to Open.
//   - Overwriting the current Start (Finish) cell with another kind clears that marker.
//
// Returns ErrOutOfBounds or ErrUnknownKind and leaves the grid unchanged on failure.
func (g *Grid) SetCell(x, y int, kind CellKind) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	if !kind.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	at := Coordinate{X: x, Y: y}
	i := g.index(x, y)
	switch g.kinds[i] {
	case Start:
		if kind != Start {
			g.hasStart = false
		}
	case Finish:
		if kind != Finish {
			g.hasFinish = false
		}
	}

	switch kind {
	case Start:
		if g.hasStart && g.start != at {
			g.kinds[g.index(g.start.X, g.start.Y)] = Open
		}
		g.start, g.hasStart = at, true
	case Finish:
		if g.hasFinish && g.finish != at {
			g.kinds[g.index(g.finish.X, g.finish.Y)] = Open
		}
		g.finish, g.hasFinish = at, true
	}
	g.kinds[i] = kind

	return nil
}

// Block marks (x,y) impassable.
func (g *Grid) Block(x, y int) error {
	return g.SetCell(x, y, Blocked)
}

// SetStart moves the Start marker to (x,y).
func (g *Grid) SetStart(x, y int) error {
	return g.SetCell(x, y, Start)
}

// SetFinish moves the Finish marker to (x,y).
func (g *Grid) SetFinish(x, y int) error {
	return g.SetCell(x, y, Finish)
}

// Cell returns a copy of cell (x,y), or ErrOutOfBounds.
func (g *Grid) Cell(x, y int) (Cell, error) {
	if err := g.checkBounds(x, y); err != nil {
		return Cell{}, err
	}
	g.mu.RLock()
	k := g.kinds[g.index(x, y)]
	g.mu.RUnlock()

	return Cell{Coordinate: Coordinate{X: x, Y: y}, Kind: k}, nil
}

// Start returns the cached Start coordinate and whether it is set.
func (g *Grid) Start() (Coordinate, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.start, g.hasStart
}

// Finish returns the cached Finish coordinate and whether it is set.
func (g *Grid) Finish() (Coordinate, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.finish, g.hasFinish
}

// Neighbors returns the in-bounds cells at Chebyshev distance 1 from c,
// in row-major order of the 3×3 neighborhood. A corner yields 3 cells,
// an edge 5, an interior cell 8; a 1×1 grid yields none.
// Returns ErrOutOfBounds if c itself lies outside the grid.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coordinate) ([]Cell, error) {
	if err := g.checkBounds(c.X, c.Y); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		out = append(out, Cell{Coordinate: Coordinate{X: nx, Y: ny}, Kind: g.kinds[g.index(nx, ny)]})
	}

	return out, nil
}
