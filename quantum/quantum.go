// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package quantum

import (
	"github.com/rs/zerolog"

	"github.com/born-ml/qubit/internal/braket"
	"github.com/born-ml/qubit/internal/quantum"
	"github.com/born-ml/qubit/internal/random"
	"github.com/born-ml/qubit/internal/serialization"
	"github.com/born-ml/qubit/tensor"
)

// Type aliases for public API

// Basis is a change-of-basis operator.
type Basis = quantum.Basis

// Qubit is a single 2-dimensional unit-norm state.
type Qubit = quantum.Qubit

// System is the joint state of k qubits.
type System = quantum.System

// Outcome is the single-qubit result of a system measurement.
type Outcome = quantum.Outcome

// Filter is a counting polarisation filter.
type Filter = quantum.Filter

// Source supplies the randomness used by measurement.
type Source = random.Source

// Fixed is a Source that replays scripted outcomes.
type Fixed = random.Fixed

// Named bases.
var (
	Deg0  = quantum.Deg0
	Deg45 = quantum.Deg45
	Deg90 = quantum.Deg90
)

// Gates.
var (
	CNOT     = quantum.CNOT
	PauliX   = quantum.PauliX
	Hadamard = quantum.Hadamard
)

// Errors.
var (
	ErrInvalidQubitIndex  = quantum.ErrInvalidQubitIndex
	ErrNotPowerOfTwo      = quantum.ErrNotPowerOfTwo
	ErrNormalizationDrift = quantum.ErrNormalizationDrift
	ErrNotOrthonormal     = quantum.ErrNotOrthonormal
)

// NewSource returns a PCG-backed Source. A negative seed draws a random one.
func NewSource(seed int64) Source {
	return random.New(random.Config{Seed: seed})
}

// SetLogger installs the logger used for measurement tracing and drift warnings.
func SetLogger(l zerolog.Logger) {
	quantum.SetLogger(l)
}

// NewKet creates a column vector of amplitudes.
func NewKet(values ...float64) *tensor.Tensor {
	return braket.NewKet(values...)
}

// NewBra creates a row vector of amplitudes.
func NewBra(values ...float64) *tensor.Tensor {
	return braket.NewBra(values...)
}

// NewBasis builds a 2-dimensional basis from its off and on vectors.
func NewBasis(off, on *tensor.Tensor) (Basis, error) {
	return quantum.NewBasis(off, on)
}

// BasisOf builds an N-dimensional basis from N Kets of dimension N.
func BasisOf(vectors ...*tensor.Tensor) (Basis, error) {
	return quantum.BasisOf(vectors...)
}

// FromRadians returns the rotation basis for theta.
func FromRadians(theta float64) Basis {
	return quantum.FromRadians(theta)
}

// NewQubit creates a qubit from explicit, already normalised amplitudes.
func NewQubit(a, b float64) Qubit {
	return quantum.NewQubit(a, b)
}

// RandomQubit draws a random unit qubit.
func RandomQubit(src Source) Qubit {
	return quantum.RandomQubit(src)
}

// Zero returns |0⟩.
func Zero() Qubit { return quantum.Zero() }

// One returns |1⟩.
func One() Qubit { return quantum.One() }

// Plus returns (|0⟩ + |1⟩)/√2.
func Plus() Qubit { return quantum.Plus() }

// NewSystem creates a normalised system from 2^k amplitudes.
func NewSystem(amplitudes ...float64) (*System, error) {
	return quantum.NewSystem(amplitudes...)
}

// FromKet creates a normalised system from a flat Ket.
func FromKet(ket *tensor.Tensor) (*System, error) {
	return quantum.FromKet(ket)
}

// RandomSystem draws a random unit system of k qubits.
func RandomSystem(qubits int, src Source) (*System, error) {
	return quantum.RandomSystem(qubits, src)
}

// Identity returns the identity operator on n dimensions.
func Identity(n int) *tensor.Tensor {
	return quantum.Identity(n)
}

// Lift embeds a single-qubit gate on target into a system of k qubits.
func Lift(gate *tensor.Tensor, target, qubits int) (*tensor.Tensor, error) {
	return quantum.Lift(gate, target, qubits)
}

// ApplyCNOT applies CNOT to a 2-qubit system.
func ApplyCNOT(s *System) (*System, error) {
	return quantum.ApplyCNOT(s)
}

// NewFilter creates a filter over basis that passes the given outcome.
func NewFilter(basis Basis, allow bool) *Filter {
	return quantum.NewFilter(basis, allow)
}

// SaveSystem writes s to a .qbit snapshot at path.
func SaveSystem(path string, s *System, metadata map[string]string) error {
	return serialization.SaveSystem(path, s, metadata)
}

// LoadSystem reads a .qbit snapshot written by SaveSystem.
func LoadSystem(path string) (*System, map[string]string, error) {
	return serialization.LoadSystem(path)
}
