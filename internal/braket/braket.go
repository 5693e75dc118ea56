// Package braket specialises the tensor algebra to kets (state vectors), bras
// (their duals) and the operators built from them.
package braket

import (
	"fmt"

	"github.com/born-ml/qubit/internal/tensor"
)

// NewKet creates a column vector of scalar amplitudes.
func NewKet(values ...float64) *tensor.Tensor {
	return tensor.Vector(tensor.Up, values...)
}

// NewBra creates a row vector of scalar amplitudes.
func NewBra(values ...float64) *tensor.Tensor {
	return tensor.Vector(tensor.Down, values...)
}

// KetOf nests equally shaped elements into a Ket.
func KetOf(elems ...*tensor.Tensor) (*tensor.Tensor, error) {
	return tensor.Stack(tensor.Up, elems...)
}

// BraOf nests equally shaped elements into a Bra.
// A Bra of N Kets of dimension N is a square operator whose columns are the Kets.
func BraOf(elems ...*tensor.Tensor) (*tensor.Tensor, error) {
	return tensor.Stack(tensor.Down, elems...)
}

// IsKet reports whether the outermost axis of t is a Ket axis.
func IsKet(t *tensor.Tensor) bool {
	return !t.IsScalar() && t.Head() == tensor.Up
}

// IsBra reports whether the outermost axis of t is a Bra axis.
func IsBra(t *tensor.Tensor) bool {
	return !t.IsScalar() && t.Head() == tensor.Down
}

// Inner computes ⟨bra|ket⟩. The product must reduce to a scalar.
func Inner(bra, ket *tensor.Tensor) (float64, error) {
	if !IsBra(bra) || !IsKet(ket) {
		return 0, fmt.Errorf("%w: inner product needs Bra × Ket, got %s × %s",
			tensor.ErrShapeMismatch, bra.Signature(), ket.Signature())
	}
	s, err := tensor.Mul(bra, ket)
	if err != nil {
		return 0, err
	}
	if !s.IsScalar() {
		return 0, fmt.Errorf("%w: %s × %s gives %s", tensor.ErrNotScalar, bra.Signature(), ket.Signature(), s.Signature())
	}
	return s.Item(), nil
}

// Projector forms the operator |ket⟩⟨bra| as a Bra of Kets.
// Column j of the result is ket scaled by bra[j].
func Projector(ket, bra *tensor.Tensor) (*tensor.Tensor, error) {
	if !IsKet(ket) || !IsBra(bra) || ket.Rank() != 1 || bra.Rank() != 1 {
		return nil, fmt.Errorf("%w: projector needs a flat Ket and Bra, got %s and %s",
			tensor.ErrShapeMismatch, ket.Signature(), bra.Signature())
	}
	return tensor.Outer(bra, ket), nil
}

// Apply multiplies a fixed-size operator against a state vector.
//
// The operator is a Bra of Kets (its columns) and the result is a flat Ket of
// the same dimension as state.
//
// Example:
//
//	x, _ := braket.BraOf(braket.NewKet(0, 1), braket.NewKet(1, 0))
//	flipped, _ := braket.Apply(x, braket.NewKet(1, 0)) // Ket(0, 1)
func Apply(op, state *tensor.Tensor) (*tensor.Tensor, error) {
	if op.Rank() != 2 || !IsBra(op) || !IsKet(state) || state.Rank() != 1 {
		return nil, fmt.Errorf("%w: apply needs Bra[N]Ket[M] × Ket[N], got %s × %s",
			tensor.ErrShapeMismatch, op.Signature(), state.Signature())
	}
	out, err := tensor.Mul(op, state)
	if err != nil {
		return nil, err
	}
	if out.Len() != state.Len() {
		return nil, fmt.Errorf("%w: operator %s is not square", tensor.ErrShapeMismatch, op.Signature())
	}
	return out, nil
}

// Compose is the Kronecker composition of two kets, bras or operators.
// The first operand's factor is the most significant.
func Compose(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return tensor.Kron(a, b)
}
