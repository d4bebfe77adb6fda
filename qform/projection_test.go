package qform_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinmimo/channel"
	"github.com/katalvlaran/spinmimo/constellation"
	"github.com/katalvlaran/spinmimo/qform"
)

// TestRealProjection_BPSK keeps the real parts and the original dimension.
func TestRealProjection_BPSK(t *testing.T) {
	h := mat.NewCDense(2, 1, []complex128{3, -1})
	J := mat.NewCDense(2, 2, []complex128{2, 1, 1, 2})

	hR, JR := qform.RealProjection(h, J, constellation.BPSK)
	require.Equal(t, []float64{3, -1}, hR)
	r, c := JR.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 2.0, JR.At(0, 0))
}

// TestRealProjection_EnergyPreserved: for random Hermitian J = FᴴF and
// complex v, the projected real form must reproduce Re(vᴴJv) + Re(hᴴv)
// exactly on the stacked vector [Re v; Im v].
func TestRealProjection_EnergyPreserved(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	const n = 3

	F, _, err := channel.CreateChannel(4, n, channel.DefaultDistribution(constellation.QPSK), rng)
	require.NoError(t, err)
	y, v, _, err := channel.CreateSignal(F, nil, nil, math.Inf(1), constellation.QPSK, 0, rng)
	require.NoError(t, err)

	offset, h, J, err := qform.QuadraticForm(y, F)
	require.NoError(t, err)
	hR, JR := qform.RealProjection(h, J, constellation.QPSK)

	// Complex-domain energy: vᴴJv + Re(hᴴv) + offset = ||y − Fv||² = 0.
	var quad, lin complex128
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			quad += cmplx.Conj(v.At(i, 0)) * J.At(i, j) * v.At(j, 0)
		}
		lin += cmplx.Conj(h.At(i, 0)) * v.At(i, 0)
	}
	complexEnergy := real(quad) + real(lin) + offset
	require.InDelta(t, 0, complexEnergy, 1e-9)

	// Real-domain energy on the stacked spins must agree.
	s := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		s[i] = real(v.At(i, 0))
		s[n+i] = imag(v.At(i, 0))
	}
	realEnergy := offset
	for i := 0; i < 2*n; i++ {
		realEnergy += hR[i] * s[i]
		for j := 0; j < 2*n; j++ {
			realEnergy += s[i] * JR.At(i, j) * s[j]
		}
	}
	require.InDelta(t, complexEnergy, realEnergy, 1e-9)
}

// TestAmplitudeExpand_Shape16QAM: for an n×n input the expanded coupling
// must be 2n×2n with the original J as its weight-1 top-left block.
func TestAmplitudeExpand_Shape16QAM(t *testing.T) {
	const n = 3
	h := []float64{1, -2, 3}
	J := mat.NewDense(n, n, []float64{
		1, 2, 3,
		2, 4, 5,
		3, 5, 6,
	})

	hA, JA, err := qform.AmplitudeExpand(h, J, constellation.QAM16)
	require.NoError(t, err)

	r, c := JA.Dims()
	require.Equal(t, 2*n, r)
	require.Equal(t, 2*n, c)
	require.Len(t, hA, 2*n)

	for i := 0; i < n; i++ {
		require.Equal(t, h[i], hA[i])
		require.Equal(t, 2*h[i], hA[n+i])
		for j := 0; j < n; j++ {
			require.Equal(t, J.At(i, j), JA.At(i, j))       // weight 1·1
			require.Equal(t, 2*J.At(i, j), JA.At(i, n+j))   // weight 1·2
			require.Equal(t, 4*J.At(i, j), JA.At(n+i, n+j)) // weight 2·2
		}
	}
}

// TestAmplitudeExpand_PassThrough: BPSK/QPSK forms are returned unchanged.
func TestAmplitudeExpand_PassThrough(t *testing.T) {
	h := []float64{1, 2}
	J := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	for _, m := range []constellation.Modulation{constellation.BPSK, constellation.QPSK} {
		hA, JA, err := qform.AmplitudeExpand(h, J, m)
		require.NoError(t, err)
		require.Equal(t, h, hA)
		require.Same(t, J, JA)
	}
}

func TestAmplitudeExpand_Unsupported(t *testing.T) {
	_, _, err := qform.AmplitudeExpand([]float64{1}, mat.NewDense(1, 1, nil), constellation.QAM256)
	if !errors.Is(err, constellation.ErrUnsupportedModulation) {
		t.Errorf("AmplitudeExpand error = %v; want ErrUnsupportedModulation", err)
	}
}

// BenchmarkSpinForm measures the full pipeline on a 64-user QAM16 cell.
func BenchmarkSpinForm(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	F, _, err := channel.CreateChannel(48, 64, channel.DefaultDistribution(constellation.QAM16), rng)
	if err != nil {
		b.Fatal(err)
	}
	y, _, _, err := channel.CreateSignal(F, nil, nil, 5, constellation.QAM16, 0, rng)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := qform.SpinForm(y, F, constellation.QAM16); err != nil {
			b.Fatal(err)
		}
	}
}
