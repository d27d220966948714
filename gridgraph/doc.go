// Package gridgraph models a rectangular terrain grid as an 8-connected graph,
// the read-only input of the astar and dijkstra searches.
//
// What:
//
//   - Grid holds rows×cols cells, each tagged with a CellKind (Open, Light,
//     Heavy, Blocked, Start, Finish), plus cached Start/Finish coordinates.
//   - MovementCost maps every CellKind to the cost of standing on it, or
//     reports it impassable.
//   - StepCost prices one move between adjacent cells: the destination's
//     movement cost times the geometric step length (1 or √2).
//   - Neighbors enumerates the in-bounds 3×3 neighborhood in row-major order.
//   - Regions / Connected label 8-connected components of passable cells.
//
// Why:
//
//   - Game maps: terrain with roads, swamps and walls.
//   - Robot planning on occupancy grids with soft penalties.
//
// Complexity:
//
//   - New:        O(R×C) time and memory.
//   - SetCell:    O(1).
//   - Neighbors:  O(1) (at most 8 cells).
//   - Regions:    O(R×C×8), Memory: O(R×C).
//
// Errors:
//
//   - ErrInvalidDimension: New called with a zero or negative dimension.
//   - ErrOutOfBounds:      coordinate outside the grid.
//   - ErrUnknownKind:      SetCell with a CellKind outside the closed set.
//
// Concurrency:
//
//   - All methods are safe for concurrent use; reads share an RWMutex read lock.
package gridgraph
