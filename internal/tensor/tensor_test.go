package tensor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

func ket(values ...float64) *Tensor { return Vector(Up, values...) }
func bra(values ...float64) *Tensor { return Vector(Down, values...) }

func mustStack(t *testing.T, v Variance, elems ...*Tensor) *Tensor {
	t.Helper()
	s, err := Stack(v, elems...)
	require.NoError(t, err)
	return s
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{1, 1, 1}, 1},  // Ones
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.shape.NumElements(), "Shape%v.NumElements()", tt.shape)
	}
}

func TestShapeValidation(t *testing.T) {
	for _, s := range []Shape{{1}, {3, 4}, {2, 3, 4}} {
		assert.NoError(t, s.Validate(), "Shape%v", s)
	}
	for _, s := range []Shape{{0}, {3, 0}, {-1}, {3, -4}} {
		assert.ErrorIs(t, s.Validate(), ErrInvalidShape, "Shape%v", s)
	}
}

func TestShapeValidationRejectsOverflow(t *testing.T) {
	huge := Shape{1 << 32, 1 << 32}
	assert.ErrorIs(t, huge.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{2, math.MaxInt/2 + 1}.Validate(), ErrInvalidShape)
	assert.NoError(t, Shape{2, math.MaxInt / 2}.Validate())

	_, err := FromSlice(nil, huge, Variances{Up, Up})
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = Zeros(huge, Variances{Up, Up})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Equal(t, []int{}, Shape{}.ComputeStrides())
}

// Construction Tests

func TestFromSlice(t *testing.T) {
	data := []float64{1, 0, 0, 1}
	id, err := FromSlice(data, Shape{2, 2}, Variances{Down, Up})
	require.NoError(t, err)

	data[0] = 42 // must not leak into the tensor
	assert.Equal(t, 1.0, id.At(0, 0))
	assert.Equal(t, "Bra[2]Ket[2]", id.Signature())
	assert.True(t, Equal(id, Identity(2)))
}

func TestFromSliceErrors(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}, Variances{Down, Up})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromSlice([]float64{1, 2}, Shape{2}, Variances{Down, Up})
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = FromSlice(nil, Shape{0}, Variances{Up})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestVectorPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { Vector(Up) })
}

func TestStack(t *testing.T) {
	basis := mustStack(t, Down, ket(1, 0), ket(0, 1))
	assert.Equal(t, Shape{2, 2}, basis.Shape())
	assert.Equal(t, Variances{Down, Up}, basis.Variances())
	assert.True(t, Equal(ket(0, 1), basis.Element(1)))

	_, err := Stack(Down, ket(1, 0), ket(1, 0, 0))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Stack(Down, ket(1, 0), bra(1, 0))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Stack(Up)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestScalar(t *testing.T) {
	s := Scalar(2.5)
	assert.True(t, s.IsScalar())
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 2.5, s.Item())
	assert.Equal(t, "Scalar", s.Signature())
	assert.Panics(t, func() { s.Head() })
	assert.Panics(t, func() { ket(1, 2).Item() })
}

func TestElementAndAt(t *testing.T) {
	m, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, Variances{Down, Up})
	require.NoError(t, err)

	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, []float64{4, 5, 6}, m.Element(1).Data())
	assert.Equal(t, 5.0, m.Element(1).Element(1).Item())
	assert.Len(t, m.Elements(), 2)

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0) })
	assert.Panics(t, func() { m.Element(-1) })
}

func TestString(t *testing.T) {
	basis := mustStack(t, Down, ket(1, 0), ket(0, 1))
	assert.Equal(t, "Bra(Ket(1, 0), Ket(0, 1))", basis.String())
	assert.Equal(t, "Ket(Bra(1, 0), Bra(0, 1))", basis.T().String())
	assert.Equal(t, "0.5", Scalar(0.5).String())
}

func TestClone(t *testing.T) {
	a := ket(1, 2)
	b := a.Clone()
	assert.True(t, Equal(a, b))
	assert.NotSame(t, a, b)
}

func TestVarianceDual(t *testing.T) {
	assert.Equal(t, Down, Up.Dual())
	assert.Equal(t, Up, Down.Dual())
	assert.Equal(t, "Ket", Up.String())
	assert.Equal(t, "Bra", Down.String())
	assert.Equal(t, Variances{Down, Up}, Variances{Up, Down}.Dual())
}

func TestErrorsCarryShapes(t *testing.T) {
	_, err := Add(ket(1, 2), ket(1, 2, 3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.Contains(t, err.Error(), "Ket[2]")
	assert.Contains(t, err.Error(), "Ket[3]")
}
