// Package dijkstra implements Dijkstra's algorithm over a terrain grid.
//
// Dijkstra computes the minimum cost from a single source cell to every
// reachable cell, using the same step-cost model as the astar package
// (gridgraph.StepCost). The resulting Field is a full cost map: useful for
// flow-field style navigation, for reachability analysis, and as an exact
// reference for heuristic searches.
//
// Complexity:
//
//   - Time:  O(N log N), N = rows×cols; each cell has at most 8 neighbors.
//   - Space: O(N) for distances, predecessors and the heap.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Dijkstra computes the cost field of g from the Source option.
//
// Preconditions and validation (in order):
//  1. Source must be supplied (ErrSourceNotSet).
//  2. g must be non-nil (ErrNilGrid).
//  3. Source must be in bounds (ErrSourceOutOfBounds).
//  4. Source must not be Blocked (ErrSourceBlocked).
//
// Options customization:
//
//   - WithReturnPath(): keep predecessors for Field.PathTo.
//   - WithMaxDistance(x): cells with cost > x are not explored (x ≥ 0).
func Dijkstra(g Grid, opts ...Option) (*Field, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided
	if !cfg.hasSource {
		return nil, ErrSourceNotSet
	}

	// 3) Validate grid is non-nil
	if gg, ok := g.(*gridgraph.Grid); g == nil || (ok && gg == nil) {
		return nil, ErrNilGrid
	}

	// 4) Validate Source cell
	src, err := g.Cell(cfg.Source.X, cfg.Source.Y)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrSourceOutOfBounds, cfg.Source, err)
	}
	if _, ok := gridgraph.MovementCost(src.Kind); !ok {
		return nil, fmt.Errorf("%w: %v", ErrSourceBlocked, cfg.Source)
	}

	// 5) Prepare state and run
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[gridgraph.Coordinate]float64),
		visited: make(map[gridgraph.Coordinate]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[gridgraph.Coordinate]gridgraph.Coordinate)
	}
	r.init(src)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Field{source: cfg.Source, dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Grid                                          // read-only input
	options Options                                       // Source, thresholds
	dist    map[gridgraph.Coordinate]float64              // best known cost; absent = +∞
	prev    map[gridgraph.Coordinate]gridgraph.Coordinate // predecessors, nil unless ReturnPath
	visited map[gridgraph.Coordinate]bool                 // finalized cells
	pq      nodePQ                                        // lazy min-heap
}

// init sets dist[source] = 0 and pushes the source onto the heap.
func (r *runner) init(src gridgraph.Cell) {
	r.dist[src.Coordinate] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{cell: src, dist: 0})
}

// process repeatedly extracts the closest unfinalized cell and relaxes its
// neighbors until the heap is empty or the frontier passes MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell.Coordinate

		// Skip stale heap entry.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(item); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each neighbor of item and records strictly cheaper costs.
func (r *runner) relax(item *nodeItem) error {
	neighbors, err := r.g.Neighbors(item.cell.Coordinate)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", item.cell.Coordinate, err)
	}

	for _, v := range neighbors {
		if r.visited[v.Coordinate] {
			continue
		}
		w, ok := gridgraph.StepCost(item.cell, v)
		if !ok {
			continue // impassable
		}
		newDist := item.dist + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[v.Coordinate]; seen && newDist >= old {
			continue
		}
		r.dist[v.Coordinate] = newDist
		if r.prev != nil {
			r.prev[v.Coordinate] = item.cell.Coordinate
		}
		heap.Push(&r.pq, &nodeItem{cell: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	cell gridgraph.Cell
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
