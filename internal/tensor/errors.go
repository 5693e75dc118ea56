package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrInvalidShape  = errors.New("invalid shape")
	ErrNotScalar     = errors.New("tensor is not a scalar")
	ErrZeroNorm      = errors.New("zero norm")
)

// mismatch wraps ErrShapeMismatch with the operation name and both operand signatures.
func mismatch(op string, a, b *Tensor) error {
	return fmt.Errorf("%w: %s %s and %s", ErrShapeMismatch, op, a.Signature(), b.Signature())
}
