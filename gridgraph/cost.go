package gridgraph

import "math"

// Movement costs per CellKind.
const (
	costOpen   = 1.0
	costLight  = 1.0
	costHeavy  = 6.0
	costStart  = 1.0
	costFinish = 3.0
)

// MovementCost returns the cost of standing on a cell of the given kind and
// whether the kind is traversable at all. Blocked and any kind outside the
// closed set report (0, false).
func MovementCost(kind CellKind) (float64, bool) {
	switch kind {
	case Open:
		return costOpen, true
	case Light:
		return costLight, true
	case Heavy:
		return costHeavy, true
	case Start:
		return costStart, true
	case Finish:
		return costFinish, true
	case Blocked:
		return 0, false
	default:
		return 0, false
	}
}

// StepCost prices a single move from one cell onto an adjacent one.
// The price is attributed to the destination: MovementCost(to.Kind) times the
// step length, 1 for orthogonal and √2 for diagonal moves. Every step therefore
// costs at least its octile length, which keeps the octile heuristic admissible
// and consistent.
//
// Reports false when the destination is impassable or the cells are not
// adjacent (including from == to).
func StepCost(from, to Cell) (float64, bool) {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
		return 0, false
	}
	c, ok := MovementCost(to.Kind)
	if !ok {
		return 0, false
	}
	if dx != 0 && dy != 0 {
		return c * math.Sqrt2, true
	}
	return c, true
}
