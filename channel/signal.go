package channel

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/spinmimo/cmat"
	"github.com/katalvlaran/spinmimo/constellation"
)

// isRealMat reports whether every entry of a carries a zero imaginary part.
func isRealMat(a *mat.CDense) bool {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if imag(a.At(i, j)) != 0 {
				return false
			}
		}
	}

	return true
}

// column validates that a is a rows×1 column vector.
func column(a *mat.CDense, rows int, name string) error {
	r, c := a.Dims()
	if c != 1 || r != rows {
		return fmt.Errorf("%s is %d×%d, want %d×1: %w", name, r, c, rows, ErrShape)
	}

	return nil
}

// CreateSignal synthesizes a received signal y = F·v + n.
//
// A nil transmittedSymbols vector is generated from the modulation's
// constellation (quadrature for everything but BPSK). When SNRb is +Inf the
// signal is noiseless and channelNoise passes through untouched; for a
// finite SNRb the noise is drawn (unless supplied) with per-component
// standard deviation σ = √(N0/2), where N0 = Eb/SNRb and the energy per bit
// is Eb = channelPower·meanPower/bitsPerSymbol. Noise is circularly
// symmetric complex, degrading to real-only when both F and the symbols are
// numerically real. A non-positive channelPower falls back to the
// transmitter count.
//
// Returns the signal together with the (possibly generated) symbols and
// noise so callers can evaluate ground-truth energies afterwards.
//
// Errors: ErrInvalidSNR for SNRb ≤ 0 or NaN, ErrShape for mismatched
// vector shapes, ErrNilRand when a needed draw has no source, and catalog
// errors for unsupported modulations.
// Complexity: O(numReceivers·numTransmitters).
func CreateSignal(
	F *mat.CDense,
	transmittedSymbols, channelNoise *mat.CDense,
	SNRb float64,
	m constellation.Modulation,
	channelPower float64,
	rng *rand.Rand,
) (y, v, n *mat.CDense, err error) {
	if SNRb <= 0 || math.IsNaN(SNRb) {
		return nil, nil, nil, fmt.Errorf("CreateSignal: SNRb=%v: %w", SNRb, ErrInvalidSNR)
	}

	numReceivers, numTransmitters := F.Dims()
	if channelPower <= 0 {
		// Conventional normalization E[|F_ij|²] = 1.
		channelPower = float64(numTransmitters)
	}

	bitsPerSymbol, amps, meanPower, err := constellation.Properties(m)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("CreateSignal: %w", err)
	}

	v = transmittedSymbols
	if v == nil {
		if v, err = CreateTransmittedSymbols(numTransmitters, amps, m.Quadrature(), rng); err != nil {
			return nil, nil, nil, fmt.Errorf("CreateSignal: %w", err)
		}
	} else if err = column(v, numTransmitters, "transmittedSymbols"); err != nil {
		return nil, nil, nil, fmt.Errorf("CreateSignal: %w", err)
	}

	y = cmat.Mul(F, v)

	if math.IsInf(SNRb, 1) {
		// Noiseless channel: y = F·v exactly.
		return y, v, channelNoise, nil
	}

	// Eb/N0 = SNRb; N0 is the one-sided power spectral density, split
	// evenly between the two noise components.
	Eb := channelPower * meanPower / float64(bitsPerSymbol)
	N0 := Eb / SNRb
	sigma := math.Sqrt(N0 / 2)

	n = channelNoise
	if n == nil {
		if rng == nil {
			return nil, nil, nil, fmt.Errorf("CreateSignal: %w", ErrNilRand)
		}
		normal := distuv.Normal{Mu: 0, Sigma: sigma, Src: rng}
		n = mat.NewCDense(numReceivers, 1, nil)
		if isRealMat(F) && isRealMat(v) {
			// The imaginary component would never be observed.
			for i := 0; i < numReceivers; i++ {
				n.Set(i, 0, complex(normal.Rand(), 0))
			}
		} else {
			for i := 0; i < numReceivers; i++ {
				n.Set(i, 0, complex(normal.Rand(), normal.Rand()))
			}
		}
	} else if err = column(n, numReceivers, "channelNoise"); err != nil {
		return nil, nil, nil, fmt.Errorf("CreateSignal: %w", err)
	}

	for i := 0; i < numReceivers; i++ {
		y.Set(i, 0, y.At(i, 0)+n.At(i, 0))
	}

	return y, v, n, nil
}
