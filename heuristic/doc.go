// Package heuristic provides distance estimates between grid coordinates for
// informed searches over 8-connected grids.
//
// Octile is the exact length of an unobstructed 8-directional path where an
// orthogonal step has length 1 and a diagonal step has length √2:
//
//	octile(a, b) = √2·min(dx, dy) + (max(dx, dy) − min(dx, dy))
//
// It is symmetric, zero on equal inputs and obeys the triangle inequality, so
// it is admissible and consistent for any step cost that is at least the step's
// geometric length (see gridgraph.StepCost).
//
// Chebyshev, max(dx, dy), counts the minimum number of king moves and is a
// weaker lower bound for the same cost model.
package heuristic
