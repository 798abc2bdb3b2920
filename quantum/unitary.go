// Package quantum provides the complex-matrix helpers used by unitary
// instructions.
package quantum

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is the numerical tolerance used by the unitarity check
// when no explicit tolerance is given.
const DefaultTolerance = 1e-8

// Identity returns the dim x dim identity matrix.
func Identity(dim int) *mat.CDense {
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Clone returns an independent copy of m with fresh backing storage.
func Clone(m *mat.CDense) *mat.CDense {
	if m == nil {
		return nil
	}
	r, c := m.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(i, j))
		}
	}
	return out
}

// IsUnitary reports whether m is square and satisfies m * m^H = I within
// the given elementwise tolerance.
func IsUnitary(m *mat.CDense, tol float64) bool {
	r, c := m.Dims()
	if r != c {
		return false
	}
	// mat.CDense has no Mul method, so compute m * m^H through the
	// underlying BLAS routine.
	prod := mat.NewCDense(r, r, nil)
	cblas128.Gemm(blas.NoTrans, blas.ConjTrans, 1, m.RawCMatrix(), m.RawCMatrix(), 0, prod.RawCMatrix())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(prod.At(i, j)-want) > tol {
				return false
			}
		}
	}
	return true
}

// Equal reports whether a and b have the same shape and identical entries
// within tol.
func Equal(a, b *mat.CDense, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if cmplx.Abs(a.At(i, j)-b.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

// DimForQubits returns the matrix dimension required for an n-qubit
// unitary, or 0 if n would overflow the representable dimension.
func DimForQubits(n uint32) int {
	if n > 30 {
		return 0
	}
	return 1 << n
}
