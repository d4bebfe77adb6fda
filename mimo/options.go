package mimo

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinmimo/channel"
)

// defaultSeed feeds the random source when neither WithSeed nor WithRand
// is given, so the zero configuration is still deterministic.
const defaultSeed uint64 = 42

// config is the immutable per-call composer configuration; it exists only
// for the duration of one composition.
type config struct {
	receivedSignal     *mat.CDense
	chanMatrix         *mat.CDense
	transmittedSymbols *mat.CDense
	channelNoise       *mat.CDense

	numTransmitters int
	numReceivers    int
	snrOverBit      float64
	dist            channel.Distribution
	distSet         bool
	seed            uint64
	rng             *rand.Rand
	useOffset       bool
}

// Option mutates the composer configuration. Constructors panic on
// programmer error; data-dependent validation happens at composition time.
type Option func(*config)

// defaultConfig returns the baseline: noiseless channel, generated
// matrices, fixed seed, offset dropped.
func defaultConfig() config {
	return config{
		snrOverBit: math.Inf(1),
		seed:       defaultSeed,
	}
}

// apply folds opts over the defaults.
func apply(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns the configured random source, constructing one from the
// seed when WithRand was not given.
func (c *config) source() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(c.seed))
}

// WithReceivedSignal supplies the observed signal vector y instead of
// synthesizing one; requires WithChannel. Panics on nil.
func WithReceivedSignal(y *mat.CDense) Option {
	if y == nil {
		panic("mimo: WithReceivedSignal(nil)")
	}

	return func(c *config) { c.receivedSignal = y }
}

// WithChannel supplies the channel matrix F instead of drawing one.
// Panics on nil.
func WithChannel(F *mat.CDense) Option {
	if F == nil {
		panic("mimo: WithChannel(nil)")
	}

	return func(c *config) { c.chanMatrix = F }
}

// WithTransmittedSymbols supplies the ground-truth symbol vector used for
// signal synthesis. Panics on nil.
func WithTransmittedSymbols(v *mat.CDense) Option {
	if v == nil {
		panic("mimo: WithTransmittedSymbols(nil)")
	}

	return func(c *config) { c.transmittedSymbols = v }
}

// WithChannelNoise supplies the additive noise vector used for signal
// synthesis, overriding the SNR-scaled draw. Panics on nil.
func WithChannelNoise(n *mat.CDense) Option {
	if n == nil {
		panic("mimo: WithChannelNoise(nil)")
	}

	return func(c *config) { c.channelNoise = n }
}

// WithNumTransmitters sets the transmit antenna count. In cooperative
// composition this is the per-cell user count. Panics unless n ≥ 1.
func WithNumTransmitters(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("mimo: WithNumTransmitters(%d)", n))
	}

	return func(c *config) { c.numTransmitters = n }
}

// WithNumReceivers sets the receive antenna count. Panics unless n ≥ 1.
func WithNumReceivers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("mimo: WithNumReceivers(%d)", n))
	}

	return func(c *config) { c.numReceivers = n }
}

// WithSNRb sets the signal-to-noise ratio per bit (Eb/N0, linear scale).
// +Inf selects a noiseless channel and is the default. Panics on NaN or
// non-positive values.
func WithSNRb(snr float64) Option {
	if math.IsNaN(snr) || snr <= 0 {
		panic(fmt.Sprintf("mimo: WithSNRb(%v)", snr))
	}

	return func(c *config) { c.snrOverBit = snr }
}

// WithDistribution overrides the modulation's default channel entry
// distribution.
func WithDistribution(d channel.Distribution) Option {
	return func(c *config) {
		c.dist = d
		c.distSet = true
	}
}

// WithSeed seeds the internal random source. Ignored when WithRand is
// also given.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRand supplies an external random source, e.g. to share one stream
// across several compositions. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("mimo: WithRand(nil)")
	}

	return func(c *config) { c.rng = rng }
}

// WithOffset keeps the constant ‖y‖² term and the coupler diagonal in the
// model, so ground-truth spin assignments evaluate to the exact residual
// energy ‖y − F·v‖². When false (the default) the diagonal is dropped and
// the offset zeroed; minima are unchanged, absolute energies shift.
func WithOffset(keep bool) Option {
	return func(c *config) { c.useOffset = keep }
}
