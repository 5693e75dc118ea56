package tensor

// Transposable is implemented by every value that has a dual representation.
type Transposable interface {
	T() *Tensor
}

var _ Transposable = (*Tensor)(nil)

// T returns the dual of the tensor: every Ket axis becomes a Bra axis and vice
// versa, recursively through the nesting. Scalars are self-dual.
//
// The leaves are not reordered. A Bra of Kets (a row of columns) and the Ket of
// Bras it transposes into (a column of rows) index the same buffer with the
// outer index read as column or row respectively, which is exactly the matrix
// transpose. T is therefore an exact involution: t.T().T() equals t.
//
// Example:
//
//	ket := tensor.Vector(tensor.Up, 1, 2)
//	bra := ket.T() // Bra(1, 2)
func (t *Tensor) T() *Tensor {
	if t.IsScalar() {
		return t
	}
	return &Tensor{
		data:     t.data,
		shape:    t.shape.Clone(),
		variance: t.variance.Dual(),
		stride:   append([]int(nil), t.stride...),
	}
}

// Transpose returns x.T().
func Transpose(x Transposable) *Tensor {
	return x.T()
}
