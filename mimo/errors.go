package mimo

import "errors"

var (
	// ErrUnderspecified indicates a configuration from which the antenna
	// counts cannot be inferred: no explicit counts and no matrices to read
	// dimensions from.
	ErrUnderspecified = errors.New("mimo: transmitter/receiver counts are underspecified")

	// ErrInconsistentDimensions indicates supplied matrices or explicit
	// counts that disagree with each other.
	ErrInconsistentDimensions = errors.New("mimo: supplied dimensions are inconsistent")

	// ErrUnsupportedConfiguration indicates an option combination outside
	// the composer's contract, e.g. supplied matrices or amplitude-modulated
	// schemes in cooperative composition.
	ErrUnsupportedConfiguration = errors.New("mimo: unsupported configuration")

	// ErrBadLattice indicates a nil or empty interference lattice.
	ErrBadLattice = errors.New("mimo: lattice must contain at least one cell")
)
