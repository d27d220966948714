// Package astar finds a lowest-cost path between two cells of a terrain grid
// with the A* algorithm.
//
// Overview:
//
//   - The grid is 8-connected. Moving onto a cell costs the destination's
//     movement cost (see gridgraph.MovementCost) times the step length, 1 for
//     orthogonal and √2 for diagonal moves. A diagonal step onto a cell thus
//     costs √2 times a straight step onto the same cell, which keeps every
//     step at least as expensive as its octile length. Blocked cells are
//     never entered.
//   - The default heuristic is the octile distance, which is admissible and
//     consistent under that cost model, so the first time a cell is popped
//     from the open set its cost is final and it is never re-opened.
//   - The open set is a binary heap ordered by f = g + h, ties broken by lower
//     h and then by insertion order, so results are deterministic.
//
// API:
//
//	func FindPath(g Grid, opts ...Option) (Result, error)
//
//	  - g:    any read-only grid; *gridgraph.Grid satisfies Grid.
//	  - opts: From(c) / To(c) override the grid's Start / Finish markers,
//	          WithHeuristic(h) swaps the estimate,
//	          WithReachabilityCheck() rejects disconnected endpoints before searching.
//
// Errors (sentinel):
//
//   - ErrNilGrid:             g is nil or a nil *gridgraph.Grid.
//   - ErrMissingMarker:       no override given and the grid lacks Start or Finish.
//   - ErrUnreachableEndpoint: an endpoint is out of bounds or Blocked.
//   - ErrNoPathExists:        the open set was exhausted without reaching the finish.
//
// Complexity:
//
//   - Time:  O(N log N) where N = rows×cols; each cell has at most 8 neighbors.
//   - Space: O(N) for g-scores, predecessors, the closed set and the heap.
//
// Thread safety:
//
//   - FindPath keeps all search state local to the call. Concurrent calls on the
//     same grid are safe as long as the grid is not being modified.
package astar
