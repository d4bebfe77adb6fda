package channel

import "github.com/katalvlaran/spinmimo/constellation"

// Shape selects the marginal distribution of channel entries.
type Shape int

const (
	// Normal draws i.i.d. standard-normal entries.
	Normal Shape = iota
	// Binary draws i.i.d. ±1 entries (integer-valued models).
	Binary
)

// String returns the conventional shape name.
func (s Shape) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Binary:
		return "Binary"
	default:
		return "Shape(?)"
	}
}

// Domain selects whether channel entries live on the real line or in the
// complex plane (one independent draw per component).
type Domain int

const (
	// Real restricts entries to the real line.
	Real Domain = iota
	// Complex draws real and imaginary components independently.
	Complex
)

// String returns the conventional domain name.
func (d Domain) String() string {
	switch d {
	case Real:
		return "Real"
	case Complex:
		return "Complex"
	default:
		return "Domain(?)"
	}
}

// Distribution pairs an entry shape with a value domain.
type Distribution struct {
	Shape  Shape
	Domain Domain
}

// DefaultDistribution returns the conventional channel distribution for a
// modulation: Normal/Complex, except BPSK whose real symbols force a real
// channel.
func DefaultDistribution(m constellation.Modulation) Distribution {
	if m == constellation.BPSK {
		return Distribution{Shape: Normal, Domain: Real}
	}

	return Distribution{Shape: Normal, Domain: Complex}
}
