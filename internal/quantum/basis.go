// Package quantum implements qubits, multi-qubit systems, measurement bases and
// gates on top of the bra-ket algebra.
package quantum

import (
	"fmt"
	"math"

	"github.com/born-ml/qubit/internal/braket"
	"github.com/born-ml/qubit/internal/tensor"
)

// Named polarisation bases.
var (
	Deg0  = mustBasis(braket.NewKet(1, 0), braket.NewKet(0, 1))
	Deg45 = mustBasis(braket.NewKet(math.Sqrt2/2, -math.Sqrt2/2), braket.NewKet(math.Sqrt2/2, math.Sqrt2/2))
	Deg90 = mustBasis(braket.NewKet(0, 1), braket.NewKet(1, 0))
)

// Basis is a change-of-basis operator: a Bra of N Kets of dimension N.
// Vector 0 is the "off" outcome and vector N-1 the "on" outcome of a 2-dimensional basis.
type Basis struct {
	bra *tensor.Tensor
}

// NewBasis builds a 2-dimensional basis from its off and on vectors.
// Orthonormality is not checked; see Validate.
func NewBasis(off, on *tensor.Tensor) (Basis, error) {
	return BasisOf(off, on)
}

// BasisOf builds an N-dimensional basis from N flat Kets of dimension N.
// Orthonormality is not checked; see Validate.
func BasisOf(vectors ...*tensor.Tensor) (Basis, error) {
	for i, v := range vectors {
		if !braket.IsKet(v) || v.Rank() != 1 || v.Len() != len(vectors) {
			return Basis{}, fmt.Errorf("%w: basis vector %d is %s, want Ket[%d]",
				tensor.ErrShapeMismatch, i, v.Signature(), len(vectors))
		}
	}
	bra, err := braket.BraOf(vectors...)
	if err != nil {
		return Basis{}, err
	}
	return Basis{bra: bra}, nil
}

// FromRadians returns the rotation basis [[cosθ, -sinθ], [sinθ, cosθ]].
func FromRadians(theta float64) Basis {
	sin, cos := math.Sincos(theta)
	return mustBasis(braket.NewKet(cos, -sin), braket.NewKet(sin, cos))
}

func mustBasis(vectors ...*tensor.Tensor) Basis {
	b, err := BasisOf(vectors...)
	if err != nil {
		panic(err)
	}
	return b
}

// Dim returns the dimension N of the basis.
func (b Basis) Dim() int {
	return b.bra.Len()
}

// Bra returns the basis as a Bra of Kets.
func (b Basis) Bra() *tensor.Tensor {
	return b.bra
}

// Dual returns the transposed basis, a Ket of Bras. Multiplying it against a
// state yields the state's amplitude along every basis vector.
func (b Basis) Dual() *tensor.Tensor {
	return b.bra.T()
}

// Vector returns the i-th basis vector.
func (b Basis) Vector(i int) *tensor.Tensor {
	return b.bra.Element(i)
}

// Off returns the first basis vector.
func (b Basis) Off() *tensor.Tensor {
	return b.Vector(0)
}

// On returns the last basis vector.
func (b Basis) On() *tensor.Tensor {
	return b.Vector(b.Dim() - 1)
}

// Project returns the amplitudes of state along every basis vector.
func (b Basis) Project(state *tensor.Tensor) (*tensor.Tensor, error) {
	if !braket.IsKet(state) || state.Rank() != 1 || state.Len() != b.Dim() {
		return nil, fmt.Errorf("%w: cannot project %s onto a %d-dimensional basis",
			tensor.ErrShapeMismatch, state.Signature(), b.Dim())
	}
	return tensor.Mul(b.Dual(), state)
}

// Kron composes two bases into the basis of the joint space.
func (b Basis) Kron(other Basis) (Basis, error) {
	bra, err := braket.Compose(b.bra, other.bra)
	if err != nil {
		return Basis{}, err
	}
	return Basis{bra: bra}, nil
}

// Validate checks that the basis vectors are orthonormal within 1e-9.
func (b Basis) Validate() error {
	n := b.Dim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dot, err := braket.Inner(b.Vector(i).T(), b.Vector(j))
			if err != nil {
				return err
			}
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(dot-want) > 1e-9 {
				return fmt.Errorf("%w: ⟨%d|%d⟩ = %g", ErrNotOrthonormal, i, j, dot)
			}
		}
	}
	return nil
}

// String returns the basis as a Bra of Kets literal.
func (b Basis) String() string {
	return b.bra.String()
}
