package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestIdentityIsUnitary(t *testing.T) {
	for _, dim := range []int{1, 2, 4, 8, 16} {
		assert.True(t, IsUnitary(Identity(dim), DefaultTolerance), "dim %d", dim)
	}
}

func TestHadamardIsUnitary(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	h := mat.NewCDense(2, 2, []complex128{s, s, s, -s})
	assert.True(t, IsUnitary(h, DefaultTolerance))
}

func TestNonUnitaryRejected(t *testing.T) {
	// two identical rows
	m := mat.NewCDense(2, 2, []complex128{1, 1, 1, 1})
	assert.False(t, IsUnitary(m, DefaultTolerance))

	// not square
	rect := mat.NewCDense(2, 4, nil)
	assert.False(t, IsUnitary(rect, DefaultTolerance))

	// scaled identity
	scaled := mat.NewCDense(2, 2, []complex128{2, 0, 0, 2})
	assert.False(t, IsUnitary(scaled, DefaultTolerance))
}

func TestToleranceBoundary(t *testing.T) {
	m := mat.NewCDense(2, 2, []complex128{1 + 1e-10, 0, 0, 1})
	assert.True(t, IsUnitary(m, DefaultTolerance))
	assert.False(t, IsUnitary(m, 1e-12))
}

func TestCloneIndependence(t *testing.T) {
	m := Identity(2)
	c := Clone(m)
	c.Set(0, 0, 42)
	assert.Equal(t, complex128(1), m.At(0, 0))
	assert.Equal(t, complex128(42), c.At(0, 0))
	assert.Nil(t, Clone(nil))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Identity(4), Identity(4), 0))
	assert.False(t, Equal(Identity(4), Identity(2), 0))
	m := Identity(2)
	m.Set(1, 0, 1e-6)
	assert.False(t, Equal(m, Identity(2), 1e-9))
	assert.True(t, Equal(m, Identity(2), 1e-3))
}

func TestDimForQubits(t *testing.T) {
	assert.Equal(t, 2, DimForQubits(1))
	assert.Equal(t, 4, DimForQubits(2))
	assert.Equal(t, 8, DimForQubits(3))
	assert.Equal(t, 0, DimForQubits(31))
}
