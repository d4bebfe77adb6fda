package ising

import "errors"

var (
	// ErrDimensionMismatch indicates (h, J) arrays with incompatible
	// shapes: J must be square with one row per linear coefficient.
	ErrDimensionMismatch = errors.New("ising: h/J dimension mismatch")

	// ErrIncompleteRelabel indicates a relabeling that does not cover every
	// variable of the source model. Partial relabels are rejected outright:
	// silently keeping old labels invites cross-model collisions.
	ErrIncompleteRelabel = errors.New("ising: relabel mapping does not cover all variables")

	// ErrDuplicateLabel indicates a relabeling that maps two distinct
	// variables onto the same target label.
	ErrDuplicateLabel = errors.New("ising: relabel mapping is not injective")

	// ErrMissingVariable indicates an energy evaluation over a sample that
	// does not assign every model variable.
	ErrMissingVariable = errors.New("ising: sample does not cover all variables")
)
