// Package cmat supplies the dense complex matrix product that gonum's mat
// package stops short of: CMatrix support there covers storage and
// conjugate-transpose views only, with no arithmetic.
package cmat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Mul returns the product a·b as a freshly allocated CDense. Inputs may
// be any CMatrix implementations, conjugate-transpose views included.
//
// Panics when the inner dimensions disagree: shape agreement between the
// operands is a caller invariant, not user input.
// Complexity: O(r·k·c).
func Mul(a, b mat.CMatrix) *mat.CDense {
	ar, ak := a.Dims()
	bk, bc := b.Dims()
	if ak != bk {
		panic(fmt.Sprintf("cmat: Mul dimension mismatch: %d×%d · %d×%d", ar, ak, bk, bc))
	}

	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var sum complex128
			for k := 0; k < ak; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}

	return out
}
