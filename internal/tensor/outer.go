package tensor

import "fmt"

// Outer returns the outer product of a and b.
//
// The result has rank a.Rank()+b.Rank(): its axes are a's axes followed by b's,
// and the leaf at (i, j) is a[i]*b[j], stored at flat index i*M+j where M is the
// number of leaves of b. Two vectors therefore give a rank-2 tensor; use Flatten
// (or Kron) to obtain a flat vector of length N*M.
//
// Example:
//
//	a := tensor.Vector(tensor.Up, 1, 2)
//	b := tensor.Vector(tensor.Up, 3, 4)
//	c := tensor.Outer(a, b) // Ket(Ket(3, 4), Ket(6, 8))
func Outer(a, b *Tensor) *Tensor {
	m := len(b.data)
	out := make([]float64, len(a.data)*m)
	for i, av := range a.data {
		row := out[i*m : (i+1)*m]
		for j, bv := range b.data {
			row[j] = av * bv
		}
	}

	shape := append(a.shape.Clone(), b.shape...)
	vs := append(a.variance.Clone(), b.variance...)
	return newTensor(out, shape, vs)
}

// Flatten merges axis and axis+1 into a single axis of their combined length.
// Both axes must share a variance. Leaves keep their row-major order, so the
// element at (i, j) of the merged pair lands at index i*M+j.
//
// Example:
//
//	nested := tensor.Outer(tensor.Vector(tensor.Up, 1, 2), tensor.Vector(tensor.Up, 3, 4))
//	flat, _ := tensor.Flatten(nested, 0) // Ket(3, 4, 6, 8)
func Flatten(t *Tensor, axis int) (*Tensor, error) {
	if axis < 0 || axis+1 >= t.Rank() {
		return nil, fmt.Errorf("%w: cannot flatten axis %d of %s", ErrInvalidShape, axis, t.Signature())
	}
	if t.variance[axis] != t.variance[axis+1] {
		return nil, fmt.Errorf("%w: cannot flatten %s axis %d into %s axis %d",
			ErrShapeMismatch, t.variance[axis], axis, t.variance[axis+1], axis+1)
	}

	shape := make(Shape, 0, t.Rank()-1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, t.shape[axis]*t.shape[axis+1])
	shape = append(shape, t.shape[axis+2:]...)

	vs := make(Variances, 0, t.Rank()-1)
	vs = append(vs, t.variance[:axis+1]...)
	vs = append(vs, t.variance[axis+2:]...)

	return newTensor(t.Data(), shape, vs), nil
}

// Kron returns the Kronecker product of a and b.
//
// The operands are aligned on their innermost axes. When ranks differ, the
// lower-rank operand is padded with leading axes of size 1 that take the
// partner's variance, so a Ket composed with a Bra of Kets composes the Ket with
// every column. Aligned axes must share a variance. Result axis k has size
// a_k*b_k and the index pair (i_k, j_k) maps to i_k*b_k + j_k, which keeps the
// first operand's factor most significant.
//
// Example:
//
//	a := tensor.Vector(tensor.Up, 1, 2)
//	b := tensor.Vector(tensor.Up, 3, 4)
//	c, _ := tensor.Kron(a, b) // Ket(3, 4, 6, 8)
//
//	id, _ := tensor.Kron(tensor.Identity(2), tensor.Identity(2)) // 4x4 identity
func Kron(a, b *Tensor) (*Tensor, error) {
	rank := max(a.Rank(), b.Rank())
	aShape, aVar := pad(a, b, rank)
	bShape, bVar := pad(b, a, rank)

	for k := 0; k < rank; k++ {
		if aVar[k] != bVar[k] {
			return nil, mismatch("kron", a, b)
		}
	}

	shape := make(Shape, rank)
	for k := range shape {
		shape[k] = aShape[k] * bShape[k]
	}

	aStrides := aShape.ComputeStrides()
	bStrides := bShape.ComputeStrides()
	outStrides := shape.ComputeStrides()
	out := make([]float64, shape.NumElements())

	ai := make([]int, rank)
	bi := make([]int, rank)
	for ia, av := range a.data {
		unravel(ia, aStrides, ai)
		for ib, bv := range b.data {
			unravel(ib, bStrides, bi)
			offset := 0
			for k := 0; k < rank; k++ {
				offset += (ai[k]*bShape[k] + bi[k]) * outStrides[k]
			}
			out[offset] = av * bv
		}
	}

	return newTensor(out, shape, aVar.Clone()), nil
}

// pad left-pads t's shape with size-1 axes up to rank, borrowing partner's variances.
func pad(t, partner *Tensor, rank int) (Shape, Variances) {
	missing := rank - t.Rank()
	shape := make(Shape, 0, rank)
	vs := make(Variances, 0, rank)
	for k := 0; k < missing; k++ {
		shape = append(shape, 1)
		vs = append(vs, partner.variance[k])
	}
	shape = append(shape, t.shape...)
	vs = append(vs, t.variance...)
	return shape, vs
}
