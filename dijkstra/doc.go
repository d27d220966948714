// Package dijkstra computes single-source cost fields over a terrain grid.
//
// Overview:
//
//   - Dijkstra finds the minimum-cost route from one source cell to every
//     reachable cell of a gridgraph.Grid, using the grid's 8-connected step-cost
//     model (destination movement cost × step length; Blocked is impassable).
//   - It relies on a min-heap (priority queue) to always expand the next-closest cell.
//   - Supports optional path reconstruction and a distance cap.
//
// When to use:
//
//   - You need costs to many targets at once (flow fields, influence maps).
//   - As the exact reference against which heuristic searches such as
//     astar.FindPath are checked.
//
// Error handling (sentinel errors):
//
//   - ErrSourceNotSet:      no Source option was given.
//   - ErrNilGrid:           nil grid, including a nil *gridgraph.Grid.
//   - ErrSourceOutOfBounds: Source outside the grid (also matches gridgraph.ErrOutOfBounds).
//   - ErrSourceBlocked:     Source on Blocked terrain.
//   - ErrBadMaxDistance:    raised via panic by WithMaxDistance on negative input.
//   - ErrPathNotTracked / ErrUnreachable: returned by Field.PathTo.
//
// API reference:
//
//	func Dijkstra(g Grid, opts ...Option) (*Field, error)
//
//	  - opts: Source(c) (required), WithReturnPath(), WithMaxDistance(d).
//	  - Field.Dist(c):   cost of the cheapest route to c, +Inf and false if unreached.
//	  - Field.PathTo(c): the route itself when WithReturnPath was set.
//
// Thread safety:
//
//   - Each call owns its state. Concurrent calls on one grid are safe while the
//     grid is not being modified.
package dijkstra
