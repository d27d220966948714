package gridgraph

// Regions finds all 8-connected regions of passable cells (every kind except
// Blocked). Regions are ordered by their first cell in row-major order, and the
// cells of each region are listed in BFS order from that first cell.
//
// Time:   O(R·C·8).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions() [][]Coordinate {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := g.rows * g.cols
	seen := make([]bool, total)
	var comps [][]Coordinate

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !g.passableAt(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []Coordinate

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			uc := g.Coordinate(u)
			comp = append(comp, uc)
			for _, d := range neighborOffsets {
				vx, vy := uc.X+d[0], uc.Y+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if !seen[vi] && g.passableAt(vi) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether a and b are both passable and lie in the same
// 8-connected region. Out-of-bounds or Blocked endpoints yield false.
// The flood fill stops as soon as b is reached.
func (g *Grid) Connected(a, b Coordinate) bool {
	if !g.InBounds(a.X, a.Y) || !g.InBounds(b.X, b.Y) {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	src, dst := g.index(a.X, a.Y), g.index(b.X, b.Y)
	if !g.passableAt(src) || !g.passableAt(dst) {
		return false
	}
	if src == dst {
		return true
	}

	seen := make([]bool, g.rows*g.cols)
	seen[src] = true
	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		uc := g.Coordinate(queue[qi])
		for _, d := range neighborOffsets {
			vx, vy := uc.X+d[0], uc.Y+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			vi := g.index(vx, vy)
			if seen[vi] || !g.passableAt(vi) {
				continue
			}
			if vi == dst {
				return true
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	return false
}

// passableAt reports whether the cell at row-major index i can be entered.
// Callers hold g.mu.
func (g *Grid) passableAt(i int) bool {
	_, ok := MovementCost(g.kinds[i])
	return ok
}
