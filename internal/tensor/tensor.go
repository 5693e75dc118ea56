package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// Tensor is an immutable real-valued tensor.
//
// The buffer is row-major: the leaf at multi-index (i0, i1, ...) lives at
// Σ i_k*stride_k. Axis 0 is the outermost container, so for a Bra of Kets
// axis 0 is the Bra index and axis 1 the Ket index.
//
// Operations never mutate their receivers or arguments. Views returned by
// Element share the parent's buffer, which is safe because nothing writes to it
// after construction.
type Tensor struct {
	data     []float64
	shape    Shape
	variance Variances
	stride   []int
}

func newTensor(data []float64, shape Shape, vs Variances) *Tensor {
	return &Tensor{
		data:     data,
		shape:    shape,
		variance: vs,
		stride:   shape.ComputeStrides(),
	}
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape.Clone()
}

// Variances returns a copy of the per-axis variances.
func (t *Tensor) Variances() Variances {
	return t.variance.Clone()
}

// Rank returns the number of axes (the tensor's order). Scalars have rank 0.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Len returns the size of the outermost axis, or 0 for a scalar.
func (t *Tensor) Len() int {
	if len(t.shape) == 0 {
		return 0
	}
	return t.shape[0]
}

// NumElements returns the total number of scalar leaves.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// IsScalar reports whether the tensor has rank 0.
func (t *Tensor) IsScalar() bool {
	return len(t.shape) == 0
}

// Head returns the variance of the outermost axis.
// Panics on a scalar, which has no axes.
func (t *Tensor) Head() Variance {
	if t.IsScalar() {
		panic("Head() called on a scalar")
	}
	return t.variance[0]
}

// Signature renders the nesting of the tensor, e.g. "Bra[2]Ket[2]".
func (t *Tensor) Signature() string {
	return signature(t.shape, t.variance)
}

// Data returns a copy of the flat row-major leaves.
func (t *Tensor) Data() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}

// Item returns the value of a scalar tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor) Item() float64 {
	if !t.IsScalar() {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got %s", t.Signature()))
	}
	return t.data[0]
}

// At returns the leaf at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return t.data[offset]
}

// Element returns the i-th element of the outermost axis, a tensor of rank Rank()-1.
// For a rank-1 tensor the element is a scalar.
// Panics if the tensor is a scalar or i is out of range.
func (t *Tensor) Element(i int) *Tensor {
	if t.IsScalar() {
		panic("Element() called on a scalar")
	}
	if i < 0 || i >= t.shape[0] {
		panic(fmt.Sprintf("element %d out of bounds (size %d)", i, t.shape[0]))
	}
	size := t.stride[0]
	return &Tensor{
		data:     t.data[i*size : (i+1)*size : (i+1)*size],
		shape:    t.shape[1:],
		variance: t.variance[1:],
		stride:   t.stride[1:],
	}
}

// Elements returns every element of the outermost axis.
func (t *Tensor) Elements() []*Tensor {
	elems := make([]*Tensor, t.Len())
	for i := range elems {
		elems[i] = t.Element(i)
	}
	return elems
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return newTensor(t.Data(), t.shape.Clone(), t.variance.Clone())
}

// String renders the tensor as nested Ket(...)/Bra(...) literals.
func (t *Tensor) String() string {
	var b strings.Builder
	t.format(&b)
	return b.String()
}

func (t *Tensor) format(b *strings.Builder) {
	if t.IsScalar() {
		b.WriteString(strconv.FormatFloat(t.data[0], 'g', 6, 64))
		return
	}
	b.WriteString(t.variance[0].String())
	b.WriteByte('(')
	for i := 0; i < t.shape[0]; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		t.Element(i).format(b)
	}
	b.WriteByte(')')
}
