package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/heuristic"
)

// FindPath computes a lowest-cost path on g from the start to the finish.
//
// Endpoints default to the grid's Start and Finish markers; From and To
// override them individually. The grid is never modified.
//
// Preconditions and validation (in order):
//  1. g must be non-nil, including a nil *gridgraph.Grid (ErrNilGrid).
//  2. Both endpoints must be known (ErrMissingMarker).
//  3. Both endpoints must be in bounds and not Blocked (ErrUnreachableEndpoint;
//     out-of-bounds endpoints also match gridgraph.ErrOutOfBounds).
//  4. With WithReachabilityCheck, both endpoints must share a region (ErrNoPathExists).
//
// When start equals finish the result is a single-element path of cost 0.
func FindPath(g Grid, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate grid
	if isNilGrid(g) {
		return Result{}, ErrNilGrid
	}

	// 3) Resolve endpoints, explicit overrides first
	start, finish, err := resolveEndpoints(g, cfg)
	if err != nil {
		return Result{}, err
	}

	// 4) Validate endpoints
	startCell, err := endpointCell(g, "start", start)
	if err != nil {
		return Result{}, err
	}
	if _, err = endpointCell(g, "finish", finish); err != nil {
		return Result{}, err
	}

	// 5) Optional flood-fill pre-check
	if cfg.ReachabilityCheck {
		if c, ok := g.(connector); ok && !c.Connected(start, finish) {
			return Result{}, fmt.Errorf("%w: %v and %v lie in different regions", ErrNoPathExists, start, finish)
		}
	}

	// 6) Run the search
	r := &runner{
		g:        g,
		h:        cfg.Heuristic,
		finish:   finish,
		gScore:   make(map[gridgraph.Coordinate]float64),
		cameFrom: make(map[gridgraph.Coordinate]gridgraph.Coordinate),
		closed:   make(map[gridgraph.Coordinate]bool),
	}
	r.init(startCell)

	return r.process()
}

// isNilGrid reports whether g is a nil interface or a nil *gridgraph.Grid.
func isNilGrid(g Grid) bool {
	if g == nil {
		return true
	}
	gg, ok := g.(*gridgraph.Grid)
	return ok && gg == nil
}

// resolveEndpoints picks the start and finish coordinates for a search.
func resolveEndpoints(g Grid, cfg Options) (start, finish gridgraph.Coordinate, err error) {
	start, finish = cfg.From, cfg.To
	if !cfg.hasFrom {
		var ok bool
		if start, ok = g.Start(); !ok {
			return start, finish, fmt.Errorf("%w: no start", ErrMissingMarker)
		}
	}
	if !cfg.hasTo {
		var ok bool
		if finish, ok = g.Finish(); !ok {
			return start, finish, fmt.Errorf("%w: no finish", ErrMissingMarker)
		}
	}

	return start, finish, nil
}

// endpointCell fetches the cell at c and checks that it can be stood on.
func endpointCell(g Grid, role string, c gridgraph.Coordinate) (gridgraph.Cell, error) {
	cell, err := g.Cell(c.X, c.Y)
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("%w: %s %v: %w", ErrUnreachableEndpoint, role, c, err)
	}
	if _, ok := gridgraph.MovementCost(cell.Kind); !ok {
		return gridgraph.Cell{}, fmt.Errorf("%w: %s %v is %s", ErrUnreachableEndpoint, role, c, cell.Kind)
	}

	return cell, nil
}

// runner holds the mutable state of a single FindPath call.
type runner struct {
	g        Grid                                          // read-only input
	h        heuristic.Func                                // remaining-cost estimate
	start    gridgraph.Coordinate                          // search origin
	finish   gridgraph.Coordinate                          // goal
	gScore   map[gridgraph.Coordinate]float64              // best known cost from start; absent = +∞
	cameFrom map[gridgraph.Coordinate]gridgraph.Coordinate // best predecessor
	closed   map[gridgraph.Coordinate]bool                 // finalized cells
	open     openSet                                       // frontier
	seq      uint64                                        // next insertion number
	expanded int                                           // cells closed so far
}

// init seeds the open set with the start cell at g = 0.
func (r *runner) init(start gridgraph.Cell) {
	r.start = start.Coordinate
	r.gScore[r.start] = 0
	heap.Init(&r.open)
	r.push(start, 0)
}

// push inserts cell with cost-so-far g into the open set.
func (r *runner) push(cell gridgraph.Cell, g float64) {
	h := r.h(cell.Coordinate, r.finish)
	heap.Push(&r.open, &nodeItem{cell: cell, g: g, h: h, f: g + h, seq: r.seq})
	r.seq++
}

// process is the main A* loop. It pops the most promising cell, returns when
// the finish is popped, and otherwise closes the cell and relaxes its
// neighbors. An empty open set means no path exists.
func (r *runner) process() (Result, error) {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*nodeItem)
		cur := item.cell.Coordinate

		// Stale duplicate from a lazy decrease-key.
		if r.closed[cur] || item.g > r.gScore[cur] {
			continue
		}

		if cur == r.finish {
			return r.result(), nil
		}

		r.closed[cur] = true
		r.expanded++

		if err := r.relax(item); err != nil {
			return Result{}, err
		}
	}

	return Result{}, fmt.Errorf("%w: from %v to %v after %d expansions", ErrNoPathExists, r.start, r.finish, r.expanded)
}

// relax tries to improve the cost of every open neighbor of item.
func (r *runner) relax(item *nodeItem) error {
	neighbors, err := r.g.Neighbors(item.cell.Coordinate)
	if err != nil {
		return fmt.Errorf("astar: failed to get neighbors of %v: %w", item.cell.Coordinate, err)
	}

	for _, n := range neighbors {
		if r.closed[n.Coordinate] {
			continue
		}
		step, ok := gridgraph.StepCost(item.cell, n)
		if !ok {
			continue // Blocked
		}
		tentative := item.g + step
		if known, seen := r.gScore[n.Coordinate]; seen && tentative >= known {
			continue
		}
		r.gScore[n.Coordinate] = tentative
		r.cameFrom[n.Coordinate] = item.cell.Coordinate
		r.push(n, tentative)
	}

	return nil
}

// result walks cameFrom back from the finish and reverses the walk.
func (r *runner) result() Result {
	path := []gridgraph.Coordinate{r.finish}
	for cur := r.finish; cur != r.start; {
		prev, ok := r.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	costs := make([]float64, len(path))
	for i, c := range path {
		costs[i] = r.gScore[c]
	}

	return Result{
		Path:     path,
		Costs:    costs,
		Cost:     costs[len(costs)-1],
		Expanded: r.expanded,
	}
}
