package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinmimo/cmat"
)

// Method enumerates the supported linear estimators.
type Method int

const (
	// ZeroForcing applies the Moore–Penrose pseudo-inverse of the channel.
	ZeroForcing Method = iota
	// MatchedFilter applies Fᴴ/√(P/Nt).
	MatchedFilter
	// MMSE applies Fᴴ·(FFᴴ + I/(SNR/Nt))⁻¹/√(P/Nt); as SNR/Nt → ∞ it
	// converges to zero-forcing.
	MMSE
)

// String returns the conventional method name.
func (m Method) String() string {
	switch m {
	case ZeroForcing:
		return "zero_forcing"
	case MatchedFilter:
		return "matched_filter"
	case MMSE:
		return "MMSE"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// LinearFilter constructs the estimation matrix W for the chosen method,
// such that W·y estimates the transmitted signal. SNRoverNt is the
// intensive ratio (P/Nt)/N0 (only the MMSE method reads it; +Inf is
// allowed and degenerates to zero-forcing on full-row-rank channels);
// PoverNt is the per-transmitter signal power (matched filter and MMSE
// normalization; pass 1 for unnormalized symbols).
//
// Returns ErrUnsupportedMethod for unknown methods, ErrBadParameter for
// non-positive ratios, and ErrFactorization if the backing SVD fails.
// Complexity: O(max(Nr,Nt)³) dominated by the pseudo-inverse.
func LinearFilter(F *mat.CDense, method Method, SNRoverNt, PoverNt float64) (*mat.CDense, error) {
	switch method {
	case ZeroForcing:
		W, err := Pinv(F)
		if err != nil {
			return nil, fmt.Errorf("LinearFilter: %w", err)
		}

		return W, nil

	case MatchedFilter, MMSE:
		if PoverNt <= 0 || math.IsNaN(PoverNt) {
			return nil, fmt.Errorf("LinearFilter: PoverNt=%v: %w", PoverNt, ErrBadParameter)
		}
		norm := complex(1/math.Sqrt(PoverNt), 0)

		if method == MatchedFilter {
			W := conjTranspose(F)
			cmplxs.Scale(norm, W.RawCMatrix().Data)

			return W, nil
		}

		if SNRoverNt <= 0 || math.IsNaN(SNRoverNt) {
			return nil, fmt.Errorf("LinearFilter: SNRoverNt=%v: %w", SNRoverNt, ErrBadParameter)
		}
		numReceivers, _ := F.Dims()

		// G = F·Fᴴ + I/SNRoverNt; the regularizer vanishes at SNRoverNt=+Inf.
		G := cmat.Mul(F, F.H())
		if !math.IsInf(SNRoverNt, 1) {
			reg := complex(1/SNRoverNt, 0)
			for i := 0; i < numReceivers; i++ {
				G.Set(i, i, G.At(i, i)+reg)
			}
		}

		Ginv, err := Pinv(G)
		if err != nil {
			return nil, fmt.Errorf("LinearFilter: %w", err)
		}

		W := cmat.Mul(F.H(), Ginv)
		cmplxs.Scale(norm, W.RawCMatrix().Data)

		return W, nil

	default:
		return nil, fmt.Errorf("LinearFilter: %v: %w", method, ErrUnsupportedMethod)
	}
}

// conjTranspose materializes Fᴴ as a fresh CDense.
func conjTranspose(F *mat.CDense) *mat.CDense {
	r, c := F.Dims()
	W := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			W.Set(j, i, cmplx.Conj(F.At(i, j)))
		}
	}

	return W
}

// Pinv computes the Moore–Penrose pseudo-inverse of a complex matrix via
// the real block embedding and gonum's SVD.
// Complexity: O((2·max(r,c))³).
func Pinv(a *mat.CDense) (*mat.CDense, error) {
	r, c := a.Dims()

	// ρ(A) = [[Re, −Im], [Im, Re]] ∈ ℝ^{2r×2c}.
	embedded := mat.NewDense(2*r, 2*c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			re, im := real(a.At(i, j)), imag(a.At(i, j))
			embedded.Set(i, j, re)
			embedded.Set(r+i, c+j, re)
			embedded.Set(r+i, j, im)
			embedded.Set(i, c+j, -im)
		}
	}

	p, err := pinvReal(embedded)
	if err != nil {
		return nil, err
	}

	// pinv(ρ(A)) = ρ(pinv(A)): read the blocks back.
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			out.Set(i, j, complex(p.At(i, j), p.At(c+i, j)))
		}
	}

	return out, nil
}

// pinvReal computes the real pseudo-inverse V·Σ⁺·Uᵀ from a thin SVD,
// zeroing singular values below the conventional cutoff
// max(r,c)·eps·σmax.
func pinvReal(a *mat.Dense) (*mat.Dense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, ErrFactorization
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	r, c := a.Dims()
	tol := float64(max(r, c)) * epsilon * s[0]

	inv := make([]float64, len(s))
	for i, sv := range s {
		if sv > tol {
			inv[i] = 1 / sv
		}
	}

	var tmp, p mat.Dense
	tmp.Mul(&v, mat.NewDiagDense(len(inv), inv))
	p.Mul(&tmp, u.T())

	return &p, nil
}

// epsilon is the double-precision machine epsilon used in the singular
// value cutoff.
const epsilon = 2.220446049250313e-16
