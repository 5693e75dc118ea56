package quantum

import (
	"fmt"
	"math"

	"github.com/born-ml/qubit/internal/braket"
	"github.com/born-ml/qubit/internal/tensor"
)

// Gates are Bras of column Kets: Apply(gate, |i⟩) is column i.
var (
	// CNOT flips qubit 1 when qubit 0 is on.
	CNOT = mustOperator(
		braket.NewKet(1, 0, 0, 0),
		braket.NewKet(0, 1, 0, 0),
		braket.NewKet(0, 0, 0, 1),
		braket.NewKet(0, 0, 1, 0),
	)

	// PauliX swaps |0⟩ and |1⟩.
	PauliX = mustOperator(braket.NewKet(0, 1), braket.NewKet(1, 0))

	// Hadamard maps |0⟩ to (|0⟩+|1⟩)/√2 and |1⟩ to (|0⟩-|1⟩)/√2.
	Hadamard = mustOperator(
		braket.NewKet(math.Sqrt2/2, math.Sqrt2/2),
		braket.NewKet(math.Sqrt2/2, -math.Sqrt2/2),
	)
)

func mustOperator(columns ...*tensor.Tensor) *tensor.Tensor {
	op, err := braket.BraOf(columns...)
	if err != nil {
		panic(err)
	}
	return op
}

// Identity returns the identity operator on n dimensions.
func Identity(n int) *tensor.Tensor {
	return tensor.Identity(n)
}

// Lift embeds a single-qubit gate acting on target into a system of the given
// number of qubits: I ⊗ … ⊗ gate ⊗ … ⊗ I.
func Lift(gate *tensor.Tensor, target, qubits int) (*tensor.Tensor, error) {
	if target < 0 || target >= qubits {
		return nil, fmt.Errorf("%w: gate target %d of a %d-qubit system", ErrInvalidQubitIndex, target, qubits)
	}
	if gate.Rank() != 2 || gate.Len() != 2 {
		return nil, fmt.Errorf("%w: lift needs a single-qubit gate, got %s",
			tensor.ErrShapeMismatch, gate.Signature())
	}

	op := tensor.Scalar(1)
	for q := range qubits {
		factor := tensor.Identity(2)
		if q == target {
			factor = gate
		}
		next, err := braket.Compose(op, factor)
		if err != nil {
			return nil, err
		}
		op = next
	}
	return op, nil
}

// ApplyCNOT applies CNOT to a 2-qubit system with qubit 0 as control.
func ApplyCNOT(s *System) (*System, error) {
	if s.Qubits() != 2 {
		return nil, fmt.Errorf("%w: CNOT needs 2 qubits, system has %d", ErrInvalidQubitIndex, s.Qubits())
	}
	return s.Apply(CNOT)
}
