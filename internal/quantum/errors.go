package quantum

import "errors"

// Common errors.
var (
	ErrInvalidQubitIndex  = errors.New("invalid qubit index")
	ErrNotPowerOfTwo      = errors.New("dimension is not a power of two")
	ErrNormalizationDrift = errors.New("probabilities do not sum to 1")
	ErrNotOrthonormal     = errors.New("basis is not orthonormal")
)
