package channel

import "errors"

var (
	// ErrInvalidSNR indicates a non-positive (or NaN) finite SNRb request.
	// Usage: if errors.Is(err, ErrInvalidSNR) { /* fix the SNR target */ }.
	ErrInvalidSNR = errors.New("channel: signal-to-noise ratio must be positive")

	// ErrBadDistribution indicates an unrecognized channel distribution
	// shape or domain.
	ErrBadDistribution = errors.New("channel: unknown distribution shape/domain")

	// ErrBadDimension indicates a non-positive receiver or transmitter count.
	ErrBadDimension = errors.New("channel: dimensions must be positive")

	// ErrNilRand indicates a stochastic generator was invoked without a
	// random source. Callers must seed one explicitly (reproducibility is
	// part of the contract; there is no hidden global fallback).
	ErrNilRand = errors.New("channel: rng is required")

	// ErrShape indicates a supplied vector's shape conflicts with the
	// channel matrix (wrong length or not a single column).
	ErrShape = errors.New("channel: shape mismatch")
)
