package lattice

import "errors"

var (
	// ErrBadScale indicates a non-positive honeycomb scale.
	ErrBadScale = errors.New("lattice: scale must be at least 1")

	// ErrSelfEdge indicates an edge from a node to itself; cells do not
	// interfere with themselves.
	ErrSelfEdge = errors.New("lattice: self-edges are not allowed")

	// ErrMissingNode indicates an edge endpoint that was never added.
	ErrMissingNode = errors.New("lattice: edge endpoint is not a node")
)
