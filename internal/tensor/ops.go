package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Add performs element-wise addition.
// Both operands must have the same shape and variances.
//
// Example:
//
//	a := tensor.Vector(tensor.Up, 1, 2)
//	b := tensor.Vector(tensor.Up, 3, 4)
//	c, _ := tensor.Add(a, b) // Ket(4, 6)
func Add(a, b *Tensor) (*Tensor, error) {
	if !a.shape.Equal(b.shape) || !a.variance.Equal(b.variance) {
		return nil, mismatch("add", a, b)
	}
	out := make([]float64, len(a.data))
	floats.AddTo(out, a.data, b.data)
	return newTensor(out, a.shape.Clone(), a.variance.Clone()), nil
}

// Scale multiplies every leaf by s.
func (t *Tensor) Scale(s float64) *Tensor {
	out := make([]float64, len(t.data))
	floats.ScaleTo(out, s, t.data)
	return newTensor(out, t.shape.Clone(), t.variance.Clone())
}

// Map applies f to every leaf.
func (t *Tensor) Map(f func(float64) float64) *Tensor {
	out := make([]float64, len(t.data))
	for i, v := range t.data {
		out[i] = f(v)
	}
	return newTensor(out, t.shape.Clone(), t.variance.Clone())
}

// Mul is the algebra's product.
//
// Rules, tried in order:
//   - Scalar × T and T × Scalar scale T.
//   - Bra × Ket of equal length contracts: Σ_i Mul(a_i, b_i).
//   - Ket × X distributes: Ket(Mul(a_0, X), Mul(a_1, X), ...).
//
// Anything else is a shape mismatch. In particular Bra × Ket of scalar leaves
// is the inner product, a Bra of Kets times a Ket is an operator applied to a
// state, and the transpose of a basis times a state projects the state onto
// every basis vector.
func Mul(a, b *Tensor) (*Tensor, error) {
	switch {
	case a.IsScalar():
		return b.Scale(a.data[0]), nil
	case b.IsScalar():
		return a.Scale(b.data[0]), nil
	case a.variance[0] == Down && b.variance[0] == Up:
		return contract(a, b)
	case a.variance[0] == Up:
		elems := make([]*Tensor, a.shape[0])
		for i := range elems {
			e, err := Mul(a.Element(i), b)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return Stack(Up, elems...)
	default:
		return nil, mismatch("mul", a, b)
	}
}

func contract(a, b *Tensor) (*Tensor, error) {
	if a.shape[0] != b.shape[0] {
		return nil, mismatch("contract", a, b)
	}
	if a.Rank() == 1 && b.Rank() == 1 {
		return Scalar(floats.Dot(a.data, b.data)), nil
	}

	var acc *Tensor
	for i := 0; i < a.shape[0]; i++ {
		term, err := Mul(a.Element(i), b.Element(i))
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = term
			continue
		}
		if acc, err = Add(acc, term); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// Norm returns the L2 norm over all leaves.
func (t *Tensor) Norm() float64 {
	return floats.Norm(t.data, 2)
}

// Normalize returns the tensor scaled to unit L2 norm.
func (t *Tensor) Normalize() (*Tensor, error) {
	n := t.Norm()
	if n == 0 {
		return nil, fmt.Errorf("%w: cannot normalize %s", ErrZeroNorm, t.Signature())
	}
	return t.Scale(1 / n), nil
}

// Equal reports whether both tensors have identical shape, variances and leaves.
func Equal(a, b *Tensor) bool {
	return a.shape.Equal(b.shape) && a.variance.Equal(b.variance) && floats.Equal(a.data, b.data)
}

// ApproxEqual is Equal with an absolute tolerance on every leaf.
func ApproxEqual(a, b *Tensor, tol float64) bool {
	return a.shape.Equal(b.shape) && a.variance.Equal(b.variance) && floats.EqualApprox(a.data, b.data, tol)
}
