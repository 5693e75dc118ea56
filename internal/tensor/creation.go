package tensor

import "fmt"

// Scalar creates a rank-0 tensor.
func Scalar(v float64) *Tensor {
	return newTensor([]float64{v}, Shape{}, Variances{})
}

// FromSlice creates a tensor from row-major leaves.
// The slice is copied into the tensor's memory.
//
// Example:
//
//	// 2x2 identity as a Bra of two Kets.
//	id, err := tensor.FromSlice([]float64{1, 0, 0, 1}, Shape{2, 2}, Variances{Down, Up})
func FromSlice(data []float64, shape Shape, vs Variances) (*Tensor, error) {
	if len(shape) != len(vs) {
		return nil, fmt.Errorf("%w: %d dimensions but %d variances", ErrInvalidShape, len(shape), len(vs))
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}

	buf := make([]float64, len(data))
	copy(buf, data)
	return newTensor(buf, shape.Clone(), vs.Clone()), nil
}

// Vector creates a rank-1 tensor with the given variance.
// Panics if no values are given, since a zero-length axis is never valid.
//
// Example:
//
//	ket := tensor.Vector(tensor.Up, 1, 0)
func Vector(v Variance, values ...float64) *Tensor {
	t, err := FromSlice(values, Shape{len(values)}, Variances{v})
	if err != nil {
		panic(err)
	}
	return t
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, vs Variances) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return FromSlice(make([]float64, shape.NumElements()), shape, vs)
}

// Stack builds a tensor of rank O+1 from equally shaped rank-O elements.
// The new outermost axis gets the given variance.
//
// Example:
//
//	x := tensor.Vector(tensor.Up, 1, 0)
//	y := tensor.Vector(tensor.Up, 0, 1)
//	basis, _ := tensor.Stack(tensor.Down, x, y) // Bra(Ket(1, 0), Ket(0, 1))
func Stack(v Variance, elems ...*Tensor) (*Tensor, error) {
	if len(elems) == 0 {
		return nil, fmt.Errorf("%w: stack needs at least one element", ErrInvalidShape)
	}

	first := elems[0]
	data := make([]float64, 0, len(elems)*first.NumElements())
	for _, e := range elems {
		if !e.shape.Equal(first.shape) || !e.variance.Equal(first.variance) {
			return nil, mismatch("stack", first, e)
		}
		data = append(data, e.data...)
	}

	shape := append(Shape{len(elems)}, first.shape...)
	vs := append(Variances{v}, first.variance...)
	return newTensor(data, shape, vs), nil
}

// Identity creates the n×n identity operator as a Bra of n basis Kets.
//
// Example:
//
//	id := tensor.Identity(2) // Bra(Ket(1, 0), Ket(0, 1))
func Identity(n int) *Tensor {
	if n <= 0 {
		panic(fmt.Sprintf("identity size must be > 0, got %d", n))
	}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return newTensor(data, Shape{n, n}, Variances{Down, Up})
}
