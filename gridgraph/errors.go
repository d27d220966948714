package gridgraph

import "errors"

var (
	// ErrInvalidDimension indicates a grid was requested with a zero or negative size.
	ErrInvalidDimension = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrUnknownKind indicates a CellKind outside the closed set of terrain kinds.
	ErrUnknownKind = errors.New("gridgraph: unknown cell kind")
)
