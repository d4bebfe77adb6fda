package filter_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinmimo/channel"
	"github.com/katalvlaran/spinmimo/cmat"
	"github.com/katalvlaran/spinmimo/constellation"
	"github.com/katalvlaran/spinmimo/filter"
)

// requireCApproxEqual asserts entrywise closeness of two complex matrices.
func requireCApproxEqual(t *testing.T, want, got *mat.CDense, tol float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr)
	require.Equal(t, wc, gc)
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			d := want.At(i, j) - got.At(i, j)
			require.LessOrEqual(t, math.Hypot(real(d), imag(d)), tol,
				"entry (%d,%d): want %v, got %v", i, j, want.At(i, j), got.At(i, j))
		}
	}
}

// requireLeftInverse multiplies W·F and asserts the product approximates identity.
func requireLeftInverse(t *testing.T, W, F *mat.CDense, tol float64) {
	t.Helper()
	prod := cmat.Mul(W, F)
	n, _ := prod.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := complex128(0)
			if i == j {
				want = 1
			}
			d := prod.At(i, j) - want
			require.LessOrEqual(t, math.Hypot(real(d), imag(d)), tol)
		}
	}
}

// TestLinearFilter_ZeroForcingInvertsSquare: the pseudo-inverse of an
// invertible square channel is its inverse, in both real and complex
// domains.
func TestLinearFilter_ZeroForcingInvertsSquare(t *testing.T) {
	real2 := mat.NewCDense(2, 2, []complex128{2, 1, 1, 1})
	complex2 := mat.NewCDense(2, 2, []complex128{
		complex(1, 1), complex(0, -1),
		complex(2, -1), complex(1, 2),
	})
	for name, F := range map[string]*mat.CDense{"Real": real2, "Complex": complex2} {
		t.Run(name, func(t *testing.T) {
			W, err := filter.LinearFilter(F, filter.ZeroForcing, math.Inf(1), 1)
			require.NoError(t, err)
			requireLeftInverse(t, W, F, 1e-12)
		})
	}
}

// TestLinearFilter_MatchedFilter pins W = Fᴴ/√PoverNt.
func TestLinearFilter_MatchedFilter(t *testing.T) {
	F := mat.NewCDense(2, 1, []complex128{complex(1, 2), complex(3, -4)})
	W, err := filter.LinearFilter(F, filter.MatchedFilter, math.Inf(1), 4)
	require.NoError(t, err)
	require.Equal(t, complex(0.5, -1), W.At(0, 0))
	require.Equal(t, complex(1.5, 2), W.At(0, 1))
}

// TestLinearFilter_MMSEConvergesToZF: with the noise term vanishing
// (SNRoverNt=+Inf) MMSE reduces to the zero-forcing filter.
func TestLinearFilter_MMSEConvergesToZF(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	F, _, err := channel.CreateChannel(3, 4, channel.DefaultDistribution(constellation.QPSK), rng)
	require.NoError(t, err)

	zf, err := filter.LinearFilter(F, filter.ZeroForcing, math.Inf(1), 1)
	require.NoError(t, err)
	mmse, err := filter.LinearFilter(F, filter.MMSE, math.Inf(1), 1)
	require.NoError(t, err)

	requireCApproxEqual(t, zf, mmse, 1e-9)
}

func TestLinearFilter_Errors(t *testing.T) {
	F := mat.NewCDense(2, 2, []complex128{1, 0, 0, 1})
	cases := []struct {
		name   string
		method filter.Method
		snr    float64
		power  float64
		want   error
	}{
		{"UnknownMethod", filter.Method(17), 1, 1, filter.ErrUnsupportedMethod},
		{"NonPositivePower", filter.MatchedFilter, 1, 0, filter.ErrBadParameter},
		{"NonPositiveSNR", filter.MMSE, -1, 1, filter.ErrBadParameter},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := filter.LinearFilter(F, tc.method, tc.snr, tc.power)
			if !errors.Is(err, tc.want) {
				t.Errorf("LinearFilter error = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestPinv_Rectangular checks the defining property A·A⁺·A = A on a wide
// complex channel.
func TestPinv_Rectangular(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	F, _, err := channel.CreateChannel(2, 5, channel.DefaultDistribution(constellation.QPSK), rng)
	require.NoError(t, err)

	P, err := filter.Pinv(F)
	require.NoError(t, err)

	FPF := cmat.Mul(cmat.Mul(F, P), F)
	requireCApproxEqual(t, F, FPF, 1e-9)
}

func TestMarginalEstimate(t *testing.T) {
	// 16QAM: nearest odd integer, clipped at ±3.
	got, err := filter.MarginalEstimate([]complex128{complex(2.2, -9), complex(-0.4, 0.9)}, constellation.QAM16)
	require.NoError(t, err)
	require.Equal(t, []complex128{complex(3, -3), complex(-1, 1)}, got)

	// BPSK drops the imaginary part entirely.
	got, err = filter.MarginalEstimate([]complex128{complex(-0.2, 5)}, constellation.BPSK)
	require.NoError(t, err)
	require.Equal(t, []complex128{complex(-1, 0)}, got)

	// QAM256 has no marginal tier.
	_, err = filter.MarginalEstimate([]complex128{1}, constellation.QAM256)
	if !errors.Is(err, constellation.ErrUnsupportedModulation) {
		t.Errorf("MarginalEstimate error = %v; want ErrUnsupportedModulation", err)
	}
}
