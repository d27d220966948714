// Package gridroute finds cheapest routes across weighted terrain maps.
//
// 🚀 What is gridroute?
//
//	A small, thread-safe library for A* pathfinding on 8-connected grids:
//		• Terrain grid: Open, Light, Heavy and Blocked cells plus unique Start/Finish markers
//		• Cost model: destination movement cost × step length (1 straight, √2 diagonal)
//		• Heuristics: Octile (default), Chebyshev, Zero
//		• Search: A* with deterministic tie-breaking and optional reachability pre-check
//		• Cost fields: single-source Dijkstra over the same cost model
//
// Under the hood, everything is organized under a few subpackages:
//
//	gridgraph/     — Grid, CellKind, Coordinate, neighbors, costs, connected regions
//	heuristic/     — admissible distance estimates between coordinates
//	astar/         — FindPath: the lowest-cost route between two cells
//	dijkstra/      — Dijkstra: the full cost field from one source
//	cmd/gridroute/ — demo: lays out the classic 10×20 map and prints the route
//
// Quick ASCII example (S start, F finish, X blocked, ^ heavy, * route):
//
//	|--------|
//	| S      |
//	|  *X    |
//	|  *X ^  |
//	|   ***F |
//	|--------|
//
//	go run github.com/katalvlaran/gridroute/cmd/gridroute
package gridroute
