package filter

import "errors"

var (
	// ErrUnsupportedMethod indicates an estimator method outside the closed
	// set {ZeroForcing, MatchedFilter, MMSE}.
	// Usage: if errors.Is(err, ErrUnsupportedMethod) { /* pick a method */ }.
	ErrUnsupportedMethod = errors.New("filter: unsupported linear method")

	// ErrBadParameter indicates a non-positive power or SNR ratio where a
	// positive one is required (PoverNt under a square root, SNRoverNt as a
	// divisor).
	ErrBadParameter = errors.New("filter: parameter must be positive")

	// ErrFactorization indicates the SVD backing a pseudo-inverse failed to
	// converge.
	ErrFactorization = errors.New("filter: SVD factorization failed")
)
