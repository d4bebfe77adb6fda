package mimo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinmimo/constellation"
	"github.com/katalvlaran/spinmimo/ising"
	"github.com/katalvlaran/spinmimo/lattice"
)

// CellVar labels one spin of a cooperative joint model: the cell the
// transmitter belongs to, the transmitter's index within that cell, and
// the quadrature component (Imag is always false for BPSK).
//
// A transmitter heard by several basestations carries the same CellVar in
// each of their local models, which is exactly what makes the summed
// joint model couple the cells.
type CellVar struct {
	Node  lattice.Coord
	Index int
	Imag  bool
}

// String renders "(x,y):i" with a "j" suffix for imaginary components.
func (v CellVar) String() string {
	if v.Imag {
		return fmt.Sprintf("%v:%dj", v.Node, v.Index)
	}

	return fmt.Sprintf("%v:%d", v.Node, v.Index)
}

// SpinEncodedCoMP builds the joint spin model of cooperating basestations
// on an interference lattice. Each cell hears its own transmitters plus
// those of every neighboring cell, so its local composition runs with
// numTransmitters·(1+degree) transmitters; the local models are relabeled
// onto CellVar and summed coefficient-wise.
//
// Option semantics shift accordingly: WithNumTransmitters is the per-cell
// user count (default 1), WithNumReceivers the per-basestation antenna
// count (default 1), and a finite WithSNRb is deflated by the mean
// interference factor 1 + 2·edges/cells before reaching the cells. All
// cells draw from one random stream in sorted cell order.
//
// Only BPSK and QPSK are supported, and matrices cannot be supplied: a
// shared y, F, v, or noise vector has no meaning across cells. Both yield
// ErrUnsupportedConfiguration; a nil or empty lattice yields
// ErrBadLattice.
func SpinEncodedCoMP(lat *lattice.Lattice, m constellation.Modulation, opts ...Option) (*ising.Model[CellVar], error) {
	if lat == nil || lat.NumNodes() == 0 {
		return nil, fmt.Errorf("SpinEncodedCoMP: %w", ErrBadLattice)
	}
	if m != constellation.BPSK && m != constellation.QPSK {
		return nil, fmt.Errorf("SpinEncodedCoMP: %s: %w", m, ErrUnsupportedConfiguration)
	}

	cfg := apply(opts)
	if cfg.receivedSignal != nil || cfg.chanMatrix != nil ||
		cfg.transmittedSymbols != nil || cfg.channelNoise != nil {
		return nil, fmt.Errorf("SpinEncodedCoMP: supplied matrices: %w", ErrUnsupportedConfiguration)
	}

	ownTransmitters := cfg.numTransmitters
	if ownTransmitters == 0 {
		ownTransmitters = 1
	}
	numReceivers := cfg.numReceivers
	if numReceivers == 0 {
		numReceivers = 1
	}

	// Each transmitter is heard by its own cell and, on average,
	// 2·edges/cells neighboring cells; deflating the per-bit SNR keeps the
	// total received energy comparable to the single-cell setting.
	snrOverBit := cfg.snrOverBit
	if !math.IsInf(snrOverBit, 1) {
		snrOverBit /= 1 + 2*float64(lat.NumEdges())/float64(lat.NumNodes())
	}

	rng := cfg.source()

	joint := ising.New[CellVar]()
	for _, node := range lat.Nodes() {
		neighbors := lat.Neighbors(node)
		localTransmitters := ownTransmitters * (1 + len(neighbors))

		cellOpts := []Option{
			WithNumTransmitters(localTransmitters),
			WithNumReceivers(numReceivers),
			WithRand(rng),
			WithOffset(cfg.useOffset),
		}
		if !math.IsInf(snrOverBit, 1) {
			cellOpts = append(cellOpts, WithSNRb(snrOverBit))
		}
		if cfg.distSet {
			cellOpts = append(cellOpts, WithDistribution(cfg.dist))
		}

		cell, err := SpinEncodedMIMO(m, cellOpts...)
		if err != nil {
			return nil, fmt.Errorf("SpinEncodedCoMP: cell %v: %w", node, err)
		}

		relabeled, err := ising.Relabel(cell, cellMapping(cell.NumVariables(), node, neighbors, ownTransmitters, localTransmitters))
		if err != nil {
			return nil, fmt.Errorf("SpinEncodedCoMP: cell %v: %w", node, err)
		}
		joint.Add(relabeled)
	}

	return joint, nil
}

// cellMapping maps a cell's integer spin labels onto CellVar. Local
// transmitter order is the composing cell's own users first, then each
// sorted neighbor's users; spins beyond one transmitter sweep are the
// imaginary components.
func cellMapping(numSpins int, node lattice.Coord, neighbors []lattice.Coord, own, local int) map[int]CellVar {
	mapping := make(map[int]CellVar, numSpins)
	for s := 0; s < numSpins; s++ {
		t := s % local
		owner, index := node, t
		if t >= own {
			owner = neighbors[(t-own)/own]
			index = (t - own) % own
		}
		mapping[s] = CellVar{Node: owner, Index: index, Imag: s/local == 1}
	}

	return mapping
}

// HoneycombCoMP is SpinEncodedCoMP over the hexagonal cell layout of the
// given scale. The canonical cooperative benchmark: scale 1 is the
// 7-cell flower.
func HoneycombCoMP(scale int, m constellation.Modulation, opts ...Option) (*ising.Model[CellVar], error) {
	lat, err := lattice.Honeycomb(scale)
	if err != nil {
		return nil, fmt.Errorf("HoneycombCoMP: %w", err)
	}

	return SpinEncodedCoMP(lat, m, opts...)
}
