package qform

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinmimo/cmat"
)

// QuadraticForm expands the least-squares objective ||y − F·v||² into a
// complex quadratic form:
//
//	offset = yᴴy (real), h = −2·Fᴴy, J = FᴴF.
//
// y must be a single column and F's row count must equal y's length;
// ErrShape otherwise. Inputs are not mutated.
// Complexity: O(numReceivers·numTransmitters²) dominated by FᴴF.
func QuadraticForm(y, F *mat.CDense) (offset float64, h, J *mat.CDense, err error) {
	yr, yc := y.Dims()
	if yc != 1 {
		return 0, nil, nil, fmt.Errorf("QuadraticForm: y is %d×%d, want a single column: %w",
			yr, yc, ErrShape)
	}
	fr, fc := F.Dims()
	if fr != yr {
		return 0, nil, nil, fmt.Errorf("QuadraticForm: F is %d×%d but y has %d rows: %w",
			fr, fc, yr, ErrShape)
	}

	for i := 0; i < yr; i++ {
		v := y.At(i, 0)
		offset += real(v)*real(v) + imag(v)*imag(v)
	}

	h = cmat.Mul(F.H(), y)
	cmplxs.Scale(-2, h.RawCMatrix().Data)

	J = cmat.Mul(F.H(), F)

	return offset, h, J, nil
}
