package channel

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CreateChannel draws a numReceivers×numTransmitters channel matrix F with
// i.i.d. entries from dist and returns it together with the channel power,
// the expected squared signal magnitude per receiver for unit-power symbols:
// numTransmitters, doubled for complex-domain channels (each entry then
// carries two unit-variance components, keeping total expected energy
// invariant across the domain choice).
//
// Returns ErrBadDimension, ErrNilRand, or ErrBadDistribution on invalid
// arguments. Complexity: O(numReceivers·numTransmitters).
func CreateChannel(numReceivers, numTransmitters int, dist Distribution, rng *rand.Rand) (*mat.CDense, float64, error) {
	if numReceivers <= 0 || numTransmitters <= 0 {
		return nil, 0, fmt.Errorf("CreateChannel: %d×%d: %w",
			numReceivers, numTransmitters, ErrBadDimension)
	}
	if rng == nil {
		return nil, 0, fmt.Errorf("CreateChannel: %w", ErrNilRand)
	}

	var draw func() float64
	switch dist.Shape {
	case Normal:
		// *rand.Rand satisfies rand.Source, so the one explicit source
		// also feeds the distuv sampler.
		normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
		draw = normal.Rand
	case Binary:
		draw = func() float64 { return float64(1 - 2*rng.Intn(2)) }
	default:
		return nil, 0, fmt.Errorf("CreateChannel: shape %v: %w", dist.Shape, ErrBadDistribution)
	}

	channelPower := float64(numTransmitters)
	F := mat.NewCDense(numReceivers, numTransmitters, nil)
	switch dist.Domain {
	case Real:
		for i := 0; i < numReceivers; i++ {
			for j := 0; j < numTransmitters; j++ {
				F.Set(i, j, complex(draw(), 0))
			}
		}
	case Complex:
		// One draw per component; expected |F_ij|² doubles.
		channelPower *= 2
		for i := 0; i < numReceivers; i++ {
			for j := 0; j < numTransmitters; j++ {
				F.Set(i, j, complex(draw(), draw()))
			}
		}
	default:
		return nil, 0, fmt.Errorf("CreateChannel: domain %v: %w", dist.Domain, ErrBadDistribution)
	}

	return F, channelPower, nil
}
