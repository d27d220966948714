package astar

import (
	"errors"

	"github.com/katalvlaran/gridroute/gridgraph"
	"github.com/katalvlaran/gridroute/heuristic"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrMissingMarker indicates that the grid has no Start or no Finish marker
	// and no explicit endpoint was supplied.
	ErrMissingMarker = errors.New("astar: start or finish marker not set")

	// ErrUnreachableEndpoint indicates that the start or finish lies outside
	// the grid or on Blocked terrain.
	ErrUnreachableEndpoint = errors.New("astar: endpoint is out of bounds or blocked")

	// ErrNoPathExists indicates that the search space was exhausted without
	// reaching the finish.
	ErrNoPathExists = errors.New("astar: no path exists")

	// ErrNilHeuristic is the panic message of WithHeuristic(nil).
	ErrNilHeuristic = errors.New("astar: heuristic must not be nil")
)

// Grid is the read-only view of a terrain grid consumed by FindPath.
// *gridgraph.Grid implements it.
type Grid interface {
	// Cell returns the cell at (x,y) or an error wrapping gridgraph.ErrOutOfBounds.
	Cell(x, y int) (gridgraph.Cell, error)
	// Neighbors returns the in-bounds cells around c in a fixed order.
	Neighbors(c gridgraph.Coordinate) ([]gridgraph.Cell, error)
	// Start returns the cached Start marker.
	Start() (gridgraph.Coordinate, bool)
	// Finish returns the cached Finish marker.
	Finish() (gridgraph.Coordinate, bool)
}

// connector is implemented by grids that can answer reachability queries
// cheaply; WithReachabilityCheck uses it when available.
type connector interface {
	Connected(a, b gridgraph.Coordinate) bool
}

// Options configures a FindPath call.
//
// From / To         – explicit endpoints; when unset the grid markers are used.
// Heuristic         – remaining-cost estimate; default heuristic.Octile.
// ReachabilityCheck – if true and the grid implements Connected, endpoints in
// different regions fail with ErrNoPathExists before searching.
type Options struct {
	From              gridgraph.Coordinate
	To                gridgraph.Coordinate
	Heuristic         heuristic.Func
	ReachabilityCheck bool

	hasFrom bool
	hasTo   bool
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// From sets the start coordinate, overriding the grid's Start marker.
func From(c gridgraph.Coordinate) Option {
	return func(o *Options) {
		o.From, o.hasFrom = c, true
	}
}

// To sets the finish coordinate, overriding the grid's Finish marker.
func To(c gridgraph.Coordinate) Option {
	return func(o *Options) {
		o.To, o.hasTo = c, true
	}
}

// WithHeuristic replaces the octile heuristic. Only admissible, consistent
// estimates keep the returned path optimal. Panics on nil.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// WithReachabilityCheck enables a flood-fill pre-check of the endpoints.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// DefaultOptions returns the options used when none are given:
// grid markers as endpoints, octile heuristic, no pre-check.
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.Octile,
	}
}

// Result is the outcome of a successful search.
//
// Path     – coordinates from start to finish, both inclusive.
// Costs    – Costs[i] is the cumulative cost of reaching Path[i]; Costs[0] == 0.
// Cost     – total cost, equal to the last element of Costs.
// Expanded – number of cells closed before the finish was popped.
type Result struct {
	Path     []gridgraph.Coordinate
	Costs    []float64
	Cost     float64
	Expanded int
}
