package qform

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinmimo/constellation"
)

// RealProjection unwraps a quadratic form on complex variables onto the
// concatenated real variables [Re v; Im v].
//
// For BPSK the variables are already real and only the real parts are kept
// (the imaginary residue of valid inputs is numerically negligible). For
// every other modulation the n-dimensional complex form doubles:
//
//	hR = [Re h; Im h]
//	JR = ⎡Re J   Im Jᵀ⎤
//	     ⎣Im J   Re J ⎦
//
// This block layout is the one that preserves the energy: for Hermitian J
// the cross term of Re(vᴴJv) is −2·vRᵀ·Im(J)·vI, which the Im J / Im Jᵀ
// placement reproduces exactly.
// Complexity: O(n²).
func RealProjection(h, J *mat.CDense, m constellation.Modulation) (hR []float64, JR *mat.Dense) {
	n, _ := h.Dims()

	if m == constellation.BPSK {
		hR = make([]float64, n)
		for i := 0; i < n; i++ {
			hR[i] = real(h.At(i, 0))
		}
		JR = mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				JR.Set(i, j, real(J.At(i, j)))
			}
		}

		return hR, JR
	}

	hR = make([]float64, 2*n)
	for i := 0; i < n; i++ {
		hR[i] = real(h.At(i, 0))
		hR[n+i] = imag(h.At(i, 0))
	}

	JR = mat.NewDense(2*n, 2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			re, im := real(J.At(i, j)), imag(J.At(i, j))
			JR.Set(i, j, re)
			JR.Set(n+i, n+j, re)
			JR.Set(n+i, j, im)
			JR.Set(j, n+i, im) // Im Jᵀ in the upper-right block
		}
	}

	return hR, JR
}

// planeWeights returns the bit-plane weight vector of an amplitude-
// modulated scheme: {1,2} for QAM16, {1,2,4} for QAM64.
func planeWeights(m constellation.Modulation) []float64 {
	switch m {
	case constellation.QAM16:
		return []float64{1, 2}
	case constellation.QAM64:
		return []float64{1, 2, 4}
	default:
		return nil
	}
}

// AmplitudeExpand lifts a single-spin quadratic form to the multi-bit-plane
// spin space of an amplitude-modulated scheme via the Kronecker products
//
//	h' = w ⊗ h,  J' = (w·wᵀ) ⊗ J,
//
// where w is the plane weight vector. Each spin's physical weight equals
// its amplitude coefficient; the least-significant plane (weight 1) comes
// first, so the top-left block of J' is J itself. BPSK and QPSK already
// carry one spin per real dimension and pass through unchanged.
//
// Returns ErrUnsupportedModulation (wrapped from package constellation) for
// schemes without a spin encoding.
// Complexity: O(planes²·n²).
func AmplitudeExpand(hR []float64, JR *mat.Dense, m constellation.Modulation) ([]float64, *mat.Dense, error) {
	switch m {
	case constellation.BPSK, constellation.QPSK:
		return hR, JR, nil
	case constellation.QAM16, constellation.QAM64:
	default:
		return nil, nil, fmt.Errorf("AmplitudeExpand: %s: %w",
			m, constellation.ErrUnsupportedModulation)
	}

	w := planeWeights(m)
	n := len(hR)

	hA := make([]float64, len(w)*n)
	for p, weight := range w {
		block := hA[p*n : (p+1)*n]
		copy(block, hR)
		floats.Scale(weight, block)
	}

	wVec := mat.NewVecDense(len(w), w)
	outer := mat.NewDense(len(w), len(w), nil)
	outer.Outer(1, wVec, wVec)

	var JA mat.Dense
	JA.Kronecker(outer, JR)

	return hA, &JA, nil
}

// SpinForm runs the full pipeline: complex quadratic form, real projection,
// amplitude expansion. The returned h and J are ready for spin-model
// construction; offset is the constant yᴴy term.
func SpinForm(y, F *mat.CDense, m constellation.Modulation) (h []float64, J *mat.Dense, offset float64, err error) {
	offset, hc, Jc, err := QuadraticForm(y, F)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("SpinForm: %w", err)
	}

	hR, JR := RealProjection(hc, Jc, m)

	h, J, err = AmplitudeExpand(hR, JR, m)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("SpinForm: %w", err)
	}

	return h, J, offset, nil
}
