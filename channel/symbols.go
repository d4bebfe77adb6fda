package channel

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// CreateTransmittedSymbols draws a numTransmitters×1 symbol vector with
// each real component i.i.d. uniform over the signed amplitude set
// {±amps[0], ±amps[1], …}; when quadrature is true the imaginary component
// is drawn independently the same way, otherwise it is zero.
//
// Amplitudes are the positive levels from constellation.Properties; the
// power per symbol is deliberately unnormalized (integer-valued real and
// imaginary parts).
//
// Returns ErrBadDimension for a non-positive count or empty amplitude set
// and ErrNilRand for a nil source. Complexity: O(numTransmitters).
func CreateTransmittedSymbols(numTransmitters int, amps []float64, quadrature bool, rng *rand.Rand) (*mat.CDense, error) {
	if numTransmitters <= 0 || len(amps) == 0 {
		return nil, fmt.Errorf("CreateTransmittedSymbols: n=%d, %d amplitudes: %w",
			numTransmitters, len(amps), ErrBadDimension)
	}
	if rng == nil {
		return nil, fmt.Errorf("CreateTransmittedSymbols: %w", ErrNilRand)
	}

	component := func() float64 {
		sign := float64(2*rng.Intn(2) - 1)
		return sign * amps[rng.Intn(len(amps))]
	}

	v := mat.NewCDense(numTransmitters, 1, nil)
	for i := 0; i < numTransmitters; i++ {
		re := component()
		im := 0.0
		if quadrature {
			im = component()
		}
		v.Set(i, 0, complex(re, im))
	}

	return v, nil
}
