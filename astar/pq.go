package astar

import "github.com/katalvlaran/gridroute/gridgraph"

// nodeItem is one entry of the open set.
type nodeItem struct {
	cell gridgraph.Cell
	g    float64 // cost from start
	h    float64 // estimate to finish
	f    float64 // g + h
	seq  uint64  // insertion order, last tie-break
}

// openSet is a min-heap of *nodeItem ordered by (f, h, seq).
// Decrease-key is lazy: an improved cell is pushed again and the stale entry
// is skipped when popped because the cell is already closed.
type openSet []*nodeItem

// Len returns the number of items in the heap.
func (pq openSet) Len() int { return len(pq) }

// Less orders by f, then by h (closer to the goal first), then by insertion.
func (pq openSet) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *openSet) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *openSet) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
