// Package dijkstra defines the configuration options, sentinel errors and
// result type of the uniform-cost search over a terrain grid.
//
// Options:
//
//	– Source:      coordinate of the origin cell (required).
//	– ReturnPath:  if true, record predecessors so Field.PathTo works.
//	– MaxDistance: optional cap; cells farther than this stay unreached.
//
// Errors (sentinel):
//
//	– ErrNilGrid           if the provided grid is nil.
//	– ErrSourceNotSet      if Source was never given.
//	– ErrSourceOutOfBounds if Source lies outside the grid.
//	– ErrSourceBlocked     if Source is a Blocked cell.
//	– ErrBadMaxDistance    if MaxDistance < 0 (raised via panic).
//	– ErrPathNotTracked    if PathTo is called without ReturnPath.
//	– ErrUnreachable       if PathTo targets a cell that was never reached.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridroute/gridgraph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceNotSet indicates that no Source option was supplied.
	ErrSourceNotSet = errors.New("dijkstra: source coordinate not set")

	// ErrSourceOutOfBounds indicates that the source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source coordinate out of bounds")

	// ErrSourceBlocked indicates that the source cell is impassable.
	ErrSourceBlocked = errors.New("dijkstra: source cell is blocked")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrPathNotTracked indicates PathTo was called on a Field computed without ReturnPath.
	ErrPathNotTracked = errors.New("dijkstra: predecessors were not recorded")

	// ErrUnreachable indicates that the requested cell was not reached.
	ErrUnreachable = errors.New("dijkstra: cell not reachable from source")
)

// Grid is the read-only grid view Dijkstra needs. *gridgraph.Grid implements it.
type Grid interface {
	Cell(x, y int) (gridgraph.Cell, error)
	Neighbors(c gridgraph.Coordinate) ([]gridgraph.Cell, error)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – origin cell (must be set, in bounds and passable).
// ReturnPath  – if true, the Field keeps predecessors for PathTo.
// MaxDistance – cells whose cost would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      gridgraph.Coordinate
	ReturnPath  bool
	MaxDistance float64

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the origin coordinate. Must be supplied.
func Source(c gridgraph.Coordinate) Option {
	return func(o *Options) {
		o.Source, o.hasSource = c, true
	}
}

// WithReturnPath enables predecessor tracking for Field.PathTo.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no source, no path tracking and no
// distance cap.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
	}
}

// Field is the cost field produced by Dijkstra: the cheapest cost from the
// source to every reached cell, plus optional predecessors.
type Field struct {
	source gridgraph.Coordinate
	dist   map[gridgraph.Coordinate]float64
	prev   map[gridgraph.Coordinate]gridgraph.Coordinate // nil unless ReturnPath
}

// Source returns the origin of the field.
func (f *Field) Source() gridgraph.Coordinate { return f.source }

// Len returns the number of reached cells, the source included.
func (f *Field) Len() int { return len(f.dist) }

// Dist returns the cheapest cost from the source to c and whether c was reached.
func (f *Field) Dist(c gridgraph.Coordinate) (float64, bool) {
	d, ok := f.dist[c]
	if !ok {
		return math.Inf(1), false
	}
	return d, true
}

// PathTo rebuilds the cheapest path from the source to c, both inclusive.
// Requires WithReturnPath.
func (f *Field) PathTo(c gridgraph.Coordinate) ([]gridgraph.Coordinate, error) {
	if f.prev == nil {
		return nil, ErrPathNotTracked
	}
	if _, ok := f.dist[c]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, c)
	}

	path := []gridgraph.Coordinate{c}
	for cur := c; cur != f.source; {
		cur = f.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
