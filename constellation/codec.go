package constellation

import (
	"fmt"
	"math"
)

// maxBitPlanes guards the linear spin encoding: the per-plane weights are
// powers of two, so more than 64 planes cannot be represented exactly.
const maxBitPlanes = 64

// spinsPerRealSymbol is the bit-plane count of each encodable modulation.
func spinsPerRealSymbol(m Modulation) int {
	switch m {
	case BPSK, QPSK:
		return 1
	case QAM16:
		return 2
	case QAM64:
		return 3
	default:
		return 0
	}
}

// Sign-tuple lookup tables, precomputed once per modulation: they map each
// odd integer c = Σ sᵢ·2ⁱ to its spin tuple (s₀,…,s_{k−1}), least-significant
// plane first.
var (
	qam16Spins = buildSpinTable(2)
	qam64Spins = buildSpinTable(3)
)

// buildSpinTable enumerates all 2^k sign patterns and inverts the weighted
// sum Σ sᵢ·2ⁱ. The resulting keys are exactly the odd integers in
// [−(2^k−1), 2^k−1].
func buildSpinTable(k int) map[int][]float64 {
	table := make(map[int][]float64, 1<<k)
	for mask := 0; mask < 1<<k; mask++ {
		tuple := make([]float64, k)
		sum := 0
		for i := 0; i < k; i++ {
			s := -1
			if mask&(1<<i) != 0 {
				s = 1
			}
			tuple[i] = float64(s)
			sum += s << i
		}
		table[sum] = tuple
	}

	return table
}

// spinTuple resolves one real symbol component through the table,
// rejecting components that are not odd integers on the grid.
func spinTuple(table map[int][]float64, c float64) ([]float64, error) {
	key := int(math.Round(c))
	tuple, ok := table[key]
	if !ok || float64(key) != c {
		return nil, fmt.Errorf("symbol component %v: %w", c, ErrInvalidSymbol)
	}

	return tuple, nil
}

// SymbolsToSpins converts modulated symbols to spins under the linear
// bit-plane encoding.
//
// BPSK returns the (real) symbols unchanged — spin and symbol coincide.
// QPSK concatenates real and imaginary parts. QAM16/QAM64 decompose each
// real dimension into 2/3 spins via the precomputed sign-tuple table;
// planes are emitted least-significant first, each plane holding all real
// parts followed by all imaginary parts.
//
// Returns ErrUnsupportedModulation for catalog-only schemes and
// ErrInvalidSymbol for components off the constellation grid.
// Complexity: O(len(symbols)·planes).
func SymbolsToSpins(symbols []complex128, m Modulation) ([]float64, error) {
	switch m {
	case BPSK:
		spins := make([]float64, len(symbols))
		for i, s := range symbols {
			spins[i] = real(s)
		}

		return spins, nil

	case QPSK:
		spins := make([]float64, 0, 2*len(symbols))
		for _, s := range symbols {
			spins = append(spins, real(s))
		}
		for _, s := range symbols {
			spins = append(spins, imag(s))
		}

		return spins, nil

	case QAM16, QAM64:
		table := qam16Spins
		if m == QAM64 {
			table = qam64Spins
		}
		planes := spinsPerRealSymbol(m)

		spins := make([]float64, 0, 2*planes*len(symbols))
		for p := 0; p < planes; p++ {
			for _, s := range symbols {
				tuple, err := spinTuple(table, real(s))
				if err != nil {
					return nil, fmt.Errorf("SymbolsToSpins: %w", err)
				}
				spins = append(spins, tuple[p])
			}
			for _, s := range symbols {
				tuple, err := spinTuple(table, imag(s))
				if err != nil {
					return nil, fmt.Errorf("SymbolsToSpins: %w", err)
				}
				spins = append(spins, tuple[p])
			}
		}

		return spins, nil

	default:
		return nil, fmt.Errorf("SymbolsToSpins: %s: %w", m, ErrUnsupportedModulation)
	}
}

// SpinsToSymbols inverts SymbolsToSpins: the spin vector is reshaped into
// bit planes of width 2·numTransmitters, plane p is weighted by 2^p, and
// real/imaginary planes are summed separately into integer-valued complex
// symbols.
//
// Returns ErrDimensionMismatch when numTransmitters is non-positive, the
// spin count is not divisible by 2·numTransmitters, or the implied plane
// count exceeds the 64-plane encoding guard.
// Complexity: O(len(spins)).
func SpinsToSymbols(spins []float64, m Modulation, numTransmitters int) ([]complex128, error) {
	if numTransmitters <= 0 {
		return nil, fmt.Errorf("SpinsToSymbols: numTransmitters=%d: %w",
			numTransmitters, ErrDimensionMismatch)
	}

	switch m {
	case BPSK:
		if len(spins) != numTransmitters {
			return nil, fmt.Errorf("SpinsToSymbols: %d spins for %d BPSK transmitters: %w",
				len(spins), numTransmitters, ErrDimensionMismatch)
		}
		symbols := make([]complex128, numTransmitters)
		for i, s := range spins {
			symbols[i] = complex(s, 0)
		}

		return symbols, nil

	case QPSK, QAM16, QAM64:
		width := 2 * numTransmitters
		planes, rem := len(spins)/width, len(spins)%width
		if rem != 0 || planes == 0 {
			return nil, fmt.Errorf("SpinsToSymbols: %d spins not divisible into planes of %d: %w",
				len(spins), width, ErrDimensionMismatch)
		}
		if planes > maxBitPlanes {
			return nil, fmt.Errorf("SpinsToSymbols: %d bit planes exceeds the %d-plane encoding width: %w",
				planes, maxBitPlanes, ErrDimensionMismatch)
		}

		symbols := make([]complex128, numTransmitters)
		for p := 0; p < planes; p++ {
			w := float64(uint64(1) << p)
			row := spins[p*width : (p+1)*width]
			for j := 0; j < numTransmitters; j++ {
				symbols[j] += complex(w*row[j], w*row[numTransmitters+j])
			}
		}

		return symbols, nil

	default:
		return nil, fmt.Errorf("SpinsToSymbols: %s: %w", m, ErrUnsupportedModulation)
	}
}
