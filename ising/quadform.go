package ising

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromQuadraticForm builds an integer-labeled spin model from dense
// coefficient arrays: linear biases h, coupler matrix J, and a constant
// offset. Variables are 0..len(h)-1. The two J orientations (i,j) and
// (j,i) accumulate into a single coupler; diagonal entries fold into the
// offset.
//
// Returns ErrDimensionMismatch unless J is square with len(h) rows.
// Complexity: O(n²) for n = len(h).
func FromQuadraticForm(h []float64, J mat.Matrix, offset float64) (*Model[int], error) {
	n := len(h)
	r, c := J.Dims()
	if r != n || c != n {
		return nil, fmt.Errorf("FromQuadraticForm: h has %d entries, J is %d×%d: %w",
			n, r, c, ErrDimensionMismatch)
	}

	m := New[int]()
	m.AddOffset(offset)
	for i := 0; i < n; i++ {
		m.AddLinear(i, h[i])
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				m.AddOffset(J.At(i, i))
				continue
			}
			if w := J.At(i, j) + J.At(j, i); w != 0 {
				m.AddQuadratic(i, j, w)
			}
		}
	}

	return m, nil
}
