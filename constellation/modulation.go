package constellation

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Modulation enumerates the supported constellation (symbol set) choices.
// The zero value is BPSK. QAM128 and QAM256 are catalog-only tiers: they
// appear in lookup tables but have no spin encoding.
type Modulation int

const (
	// BPSK transmits real-valued ±1 symbols; one spin per transmitter.
	BPSK Modulation = iota
	// QPSK transmits ±1±1j; one spin per real dimension.
	QPSK
	// QAM16 transmits components from {±1,±3}; two spins per real dimension.
	QAM16
	// QAM64 transmits components from {±1,±3,±5,±7}; three spins per real dimension.
	QAM64
	// QAM128 is catalog-only (marginal-estimator clipping tier).
	QAM128
	// QAM256 is catalog-only (Properties tier; no spin encoding).
	QAM256
)

// String returns the conventional name of the modulation scheme.
func (m Modulation) String() string {
	switch m {
	case BPSK:
		return "BPSK"
	case QPSK:
		return "QPSK"
	case QAM16:
		return "16QAM"
	case QAM64:
		return "64QAM"
	case QAM128:
		return "128QAM"
	case QAM256:
		return "256QAM"
	default:
		return fmt.Sprintf("Modulation(%d)", int(m))
	}
}

// Valid reports whether m is a member of the closed modulation set.
func (m Modulation) Valid() bool {
	return m >= BPSK && m <= QAM256
}

// Quadrature reports whether the scheme carries an imaginary component.
// BPSK is the only purely real scheme.
func (m Modulation) Quadrature() bool {
	return m != BPSK
}

// Baseline bit counts underlying Properties: quadrature schemes scale
// the QPSK baseline by their amplitude plane count.
const (
	bitsBPSK       = 1
	bitsQuadrature = 2 // one bit per real dimension
)

// Properties returns the static constellation constants for m:
// bits per symbol, the positive amplitude levels, and the constellation
// mean power 2·mean(amps²) (1 for BPSK, which is real with unit amplitude).
// The amplitude slice is freshly allocated; callers may mutate it.
//
// Returns ErrUnsupportedModulation for QAM128 and out-of-range values.
// Complexity: O(len(amps)).
func Properties(m Modulation) (bitsPerSymbol int, amps []float64, meanPower float64, err error) {
	if m == BPSK {
		return bitsBPSK, []float64{1}, 1, nil
	}

	bitsPerSymbol = bitsQuadrature
	switch m {
	case QPSK:
		amps = amplitudeLevels(1)
	case QAM16:
		amps = amplitudeLevels(2)
		bitsPerSymbol *= 2
	case QAM64:
		amps = amplitudeLevels(4)
		bitsPerSymbol *= 3
	case QAM256:
		amps = amplitudeLevels(8)
		bitsPerSymbol *= 4
	default:
		return 0, nil, 0, fmt.Errorf("Properties: %s: %w", m, ErrUnsupportedModulation)
	}

	// Mean power of a uniformly sampled symbol: both quadrature components
	// contribute, hence the factor 2.
	sq := make([]float64, len(amps))
	for i, a := range amps {
		sq[i] = a * a
	}
	meanPower = 2 * stat.Mean(sq, nil)

	return bitsPerSymbol, amps, meanPower, nil
}

// amplitudeLevels returns the first n positive odd integers {1,3,...,2n−1}.
func amplitudeLevels(n int) []float64 {
	amps := make([]float64, n)
	for i := range amps {
		amps[i] = float64(1 + 2*i)
	}

	return amps
}
