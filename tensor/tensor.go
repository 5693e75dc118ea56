// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/qubit/internal/tensor"
)

// Type aliases for public API

// Tensor is an immutable variance-tagged tensor of float64 leaves.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 2} with Variances{Down, Up} is a Bra of two Kets.
type Shape = tensor.Shape

// Variance tags an axis as Ket (Up) or Bra (Down).
type Variance = tensor.Variance

// Variances holds one Variance per axis.
type Variances = tensor.Variances

// Transposable is implemented by anything with a transpose.
type Transposable = tensor.Transposable

// Variance constants.
const (
	Up   Variance = tensor.Up
	Down Variance = tensor.Down
)

// Errors.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrInvalidShape  = tensor.ErrInvalidShape
	ErrNotScalar     = tensor.ErrNotScalar
	ErrZeroNorm      = tensor.ErrZeroNorm
)

// Scalar creates a rank-0 tensor.
func Scalar(v float64) *Tensor {
	return tensor.Scalar(v)
}

// FromSlice creates a tensor from row-major leaves.
func FromSlice(data []float64, shape Shape, vs Variances) (*Tensor, error) {
	return tensor.FromSlice(data, shape, vs)
}

// Vector creates a rank-1 tensor with the given variance.
func Vector(v Variance, values ...float64) *Tensor {
	return tensor.Vector(v, values...)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, vs Variances) (*Tensor, error) {
	return tensor.Zeros(shape, vs)
}

// Stack nests equally shaped elements under a new outermost axis.
func Stack(v Variance, elems ...*Tensor) (*Tensor, error) {
	return tensor.Stack(v, elems...)
}

// Identity creates the n×n identity operator as a Bra of Kets.
func Identity(n int) *Tensor {
	return tensor.Identity(n)
}

// Add adds two tensors of identical shape and variances.
func Add(a, b *Tensor) (*Tensor, error) {
	return tensor.Add(a, b)
}

// Mul is the algebra's product. See the package documentation.
func Mul(a, b *Tensor) (*Tensor, error) {
	return tensor.Mul(a, b)
}

// Outer returns the outer product; its rank is the sum of both ranks.
func Outer(a, b *Tensor) *Tensor {
	return tensor.Outer(a, b)
}

// Flatten merges axis and axis+1, which must share a variance.
func Flatten(t *Tensor, axis int) (*Tensor, error) {
	return tensor.Flatten(t, axis)
}

// Kron returns the Kronecker product of a and b.
func Kron(a, b *Tensor) (*Tensor, error) {
	return tensor.Kron(a, b)
}

// Transpose returns x.T().
func Transpose(x Transposable) *Tensor {
	return tensor.Transpose(x)
}

// Equal reports exact equality of shape, variances and leaves.
func Equal(a, b *Tensor) bool {
	return tensor.Equal(a, b)
}

// ApproxEqual is Equal with an absolute tolerance on every leaf.
func ApproxEqual(a, b *Tensor, tol float64) bool {
	return tensor.ApproxEqual(a, b, tol)
}
