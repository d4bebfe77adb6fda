package constellation

import "errors"

var (
	// ErrUnsupportedModulation indicates a modulation value outside the
	// closed set handled by the requested operation. Note that the tiers are
	// asymmetric: Properties knows QAM256 but not QAM128, while the marginal
	// estimator in package filter knows QAM128 but not QAM256.
	// Usage: if errors.Is(err, ErrUnsupportedModulation) { /* pick a supported scheme */ }.
	ErrUnsupportedModulation = errors.New("constellation: unsupported modulation")

	// ErrDimensionMismatch indicates a spin-vector length incompatible with
	// the declared transmitter count and modulation encoding width, or an
	// implied bit-plane count beyond the 64-plane encoding guard.
	// Usage: if errors.Is(err, ErrDimensionMismatch) { /* fix lengths */ }.
	ErrDimensionMismatch = errors.New("constellation: spin/transmitter dimension mismatch")

	// ErrInvalidSymbol indicates a symbol component off the constellation
	// grid (components must be odd integers within the amplitude range).
	// Usage: if errors.Is(err, ErrInvalidSymbol) { /* validate symbols */ }.
	ErrInvalidSymbol = errors.New("constellation: symbol not on constellation grid")
)
