package filter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinmimo/constellation"
)

// maxAmplitude returns the largest constellation component magnitude of
// the clipping tier. QAM128 is supported here (and only here); QAM256 has
// no marginal tier, mirroring the asymmetric catalog.
func maxAmplitude(m constellation.Modulation) (float64, error) {
	switch m {
	case constellation.BPSK, constellation.QPSK:
		return 1, nil
	case constellation.QAM16:
		return 3, nil
	case constellation.QAM64:
		return 7, nil
	case constellation.QAM128:
		return 15, nil
	default:
		return 0, fmt.Errorf("%s: %w", m, constellation.ErrUnsupportedModulation)
	}
}

// MarginalEstimate rounds a continuous symbol estimate (e.g. W·y from
// LinearFilter) to the nearest valid constellation point per real
// dimension: nearest odd integer, clipped to the modulation's maximum
// amplitude magnitude. BPSK keeps only the real part.
//
// Returns ErrUnsupportedModulation for tiers without a clipping bound.
// Complexity: O(len(x)).
func MarginalEstimate(x []complex128, m constellation.Modulation) ([]complex128, error) {
	maxAbs, err := maxAmplitude(m)
	if err != nil {
		return nil, fmt.Errorf("MarginalEstimate: %w", err)
	}

	nearest := func(c float64) float64 {
		r := 2*math.Round((c-1)/2) + 1
		if r < -maxAbs {
			return -maxAbs
		}
		if r > maxAbs {
			return maxAbs
		}

		return r
	}

	out := make([]complex128, len(x))
	for i, c := range x {
		if m == constellation.BPSK {
			out[i] = complex(nearest(real(c)), 0)
			continue
		}
		out[i] = complex(nearest(real(c)), nearest(imag(c)))
	}

	return out, nil
}
