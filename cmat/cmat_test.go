package cmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spinmimo/cmat"
)

// TestMul_HandComputed pins a 2×2 · 2×1 complex product entry by entry.
func TestMul_HandComputed(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		complex(1, 1), complex(0, -1),
		complex(2, 0), complex(1, 2),
	})
	b := mat.NewCDense(2, 1, []complex128{complex(1, -1), complex(3, 0)})

	got := cmat.Mul(a, b)
	r, c := got.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 1, c)
	// (1+1j)(1−1j) + (−1j)·3 = 2 − 3j
	require.Equal(t, complex(2, -3), got.At(0, 0))
	// 2(1−1j) + (1+2j)·3 = 5 + 4j
	require.Equal(t, complex(5, 4), got.At(1, 0))
}

// TestMul_ConjugateTransposeView: Aᴴ·A through the H() view is Hermitian
// with the squared column norms on the diagonal.
func TestMul_ConjugateTransposeView(t *testing.T) {
	a := mat.NewCDense(3, 2, []complex128{
		complex(1, 1), complex(0, 2),
		complex(2, -1), complex(1, 0),
		complex(0, 0), complex(3, -3),
	})

	got := cmat.Mul(a.H(), a)
	r, c := got.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	// Diagonal: Σ|a_ij|² per column.
	require.Equal(t, complex(7, 0), got.At(0, 0))
	require.Equal(t, complex(23, 0), got.At(1, 1))
	// Hermitian off-diagonal pair.
	off := got.At(0, 1)
	require.Equal(t, complex(real(off), -imag(off)), got.At(1, 0))
}

// TestMul_Identity: multiplying by I returns the operand unchanged.
func TestMul_Identity(t *testing.T) {
	eye := mat.NewCDense(2, 2, []complex128{1, 0, 0, 1})
	a := mat.NewCDense(2, 2, []complex128{
		complex(4, 1), complex(-2, 3),
		complex(0, -5), complex(7, 0),
	})

	got := cmat.Mul(eye, a)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, a.At(i, j), got.At(i, j))
		}
	}
}

func TestMul_PanicsOnShapeMismatch(t *testing.T) {
	a := mat.NewCDense(2, 3, nil)
	b := mat.NewCDense(2, 2, nil)
	require.Panics(t, func() { cmat.Mul(a, b) })
}
