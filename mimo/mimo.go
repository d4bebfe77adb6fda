package mimo

import (
	"fmt"

	"github.com/katalvlaran/spinmimo/channel"
	"github.com/katalvlaran/spinmimo/constellation"
	"github.com/katalvlaran/spinmimo/ising"
	"github.com/katalvlaran/spinmimo/qform"
)

// SpinEncodedMIMO builds the spin model whose ground states are the
// maximum-likelihood decodings of a multi-antenna transmission. Every
// stage is overridable: supply any of channel, symbols, noise, and signal
// through options, and the missing pieces are synthesized from the
// modulation, counts, SNR, and random source.
//
// Model variables are integers 0..n−1, ordered transmitter-major: real
// components first, then (for quadrature schemes) imaginary components,
// then higher amplitude bit planes for 16QAM/64QAM.
//
// Errors: ErrUnderspecified when antenna counts cannot be inferred,
// ErrInconsistentDimensions for disagreeing inputs, and wrapped channel /
// constellation errors for invalid SNR or modulations without a spin
// encoding.
// Complexity: O(numReceivers·n²) for n model variables.
func SpinEncodedMIMO(m constellation.Modulation, opts ...Option) (*ising.Model[int], error) {
	cfg := apply(opts)

	numTransmitters, numReceivers, err := inferCounts(&cfg)
	if err != nil {
		return nil, fmt.Errorf("SpinEncodedMIMO: %w", err)
	}

	rng := cfg.source()

	dist := cfg.dist
	if !cfg.distSet {
		dist = channel.DefaultDistribution(m)
	}

	F := cfg.chanMatrix
	channelPower := float64(numTransmitters)
	if F == nil {
		if F, channelPower, err = channel.CreateChannel(numReceivers, numTransmitters, dist, rng); err != nil {
			return nil, fmt.Errorf("SpinEncodedMIMO: %w", err)
		}
	}

	y := cfg.receivedSignal
	if y == nil {
		if y, _, _, err = channel.CreateSignal(
			F, cfg.transmittedSymbols, cfg.channelNoise,
			cfg.snrOverBit, m, channelPower, rng,
		); err != nil {
			return nil, fmt.Errorf("SpinEncodedMIMO: %w", err)
		}
	}

	h, J, offset, err := qform.SpinForm(y, F, m)
	if err != nil {
		return nil, fmt.Errorf("SpinEncodedMIMO: %w", err)
	}

	if !cfg.useOffset {
		// The diagonal and ‖y‖² only shift energies by a constant on the
		// spin domain; drop both for a cleaner model.
		for i := range h {
			J.Set(i, i, 0)
		}
		offset = 0
	}

	model, err := ising.FromQuadraticForm(h, J, offset)
	if err != nil {
		return nil, fmt.Errorf("SpinEncodedMIMO: %w", err)
	}

	return model, nil
}

// inferCounts resolves the antenna counts from explicit options and the
// dimensions of any supplied matrices, checking them against each other.
func inferCounts(cfg *config) (numTransmitters, numReceivers int, err error) {
	numTransmitters, numReceivers = cfg.numTransmitters, cfg.numReceivers

	if F := cfg.chanMatrix; F != nil {
		r, c := F.Dims()
		if (numTransmitters != 0 && numTransmitters != c) ||
			(numReceivers != 0 && numReceivers != r) {
			return 0, 0, fmt.Errorf("channel is %d×%d, explicit counts %d receivers / %d transmitters: %w",
				r, c, numReceivers, numTransmitters, ErrInconsistentDimensions)
		}
		numReceivers, numTransmitters = r, c
	}

	if v := cfg.transmittedSymbols; v != nil {
		r, c := v.Dims()
		if c != 1 || (numTransmitters != 0 && numTransmitters != r) {
			return 0, 0, fmt.Errorf("transmitted symbols are %d×%d, want %d×1: %w",
				r, c, numTransmitters, ErrInconsistentDimensions)
		}
		numTransmitters = r
	}

	if n := cfg.channelNoise; n != nil {
		r, c := n.Dims()
		if c != 1 || (numReceivers != 0 && numReceivers != r) {
			return 0, 0, fmt.Errorf("channel noise is %d×%d, want %d×1: %w",
				r, c, numReceivers, ErrInconsistentDimensions)
		}
		numReceivers = r
	}

	if y := cfg.receivedSignal; y != nil {
		r, c := y.Dims()
		if c != 1 || (numReceivers != 0 && numReceivers != r) {
			return 0, 0, fmt.Errorf("received signal is %d×%d with %d receivers: %w",
				r, c, numReceivers, ErrInconsistentDimensions)
		}
		numReceivers = r
	}

	if numTransmitters < 1 || numReceivers < 1 {
		return 0, 0, fmt.Errorf("%d receivers / %d transmitters: %w",
			numReceivers, numTransmitters, ErrUnderspecified)
	}

	return numTransmitters, numReceivers, nil
}
