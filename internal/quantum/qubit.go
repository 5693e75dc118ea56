package quantum

import (
	"fmt"
	"math"

	"github.com/born-ml/qubit/internal/braket"
	"github.com/born-ml/qubit/internal/random"
	"github.com/born-ml/qubit/internal/tensor"
)

// Qubit is a single 2-dimensional unit-norm state.
//
// Qubits are values. Measure returns the collapsed qubit instead of mutating
// the receiver.
type Qubit struct {
	state *tensor.Tensor
}

// NewQubit creates a qubit from explicit amplitudes.
// The amplitudes are used as given: callers must supply a unit vector.
func NewQubit(a, b float64) Qubit {
	return Qubit{state: braket.NewKet(a, b)}
}

// RandomQubit draws a random unit state from src.
func RandomQubit(src random.Source) Qubit {
	v := src.UnitVector(2)
	return NewQubit(v[0], v[1])
}

// Zero returns |0⟩.
func Zero() Qubit { return NewQubit(1, 0) }

// One returns |1⟩.
func One() Qubit { return NewQubit(0, 1) }

// Plus returns the 45° state (|0⟩ + |1⟩)/√2.
func Plus() Qubit { return NewQubit(math.Sqrt2/2, math.Sqrt2/2) }

func qubitFromKet(ket *tensor.Tensor) Qubit {
	return Qubit{state: ket}
}

// State returns the amplitude Ket.
func (q Qubit) State() *tensor.Tensor {
	return q.state
}

// Amplitudes returns the two amplitudes.
func (q Qubit) Amplitudes() (float64, float64) {
	return q.state.At(0), q.state.At(1)
}

// ProbabilityAmplitudes projects the state onto the basis vectors.
func (q Qubit) ProbabilityAmplitudes(basis Basis) (*tensor.Tensor, error) {
	return basis.Project(q.state)
}

// Probabilities returns the Born-rule probability of every basis outcome.
func (q Qubit) Probabilities(basis Basis) (*tensor.Tensor, error) {
	amps, err := q.ProbabilityAmplitudes(basis)
	if err != nil {
		return nil, err
	}
	return amps.Map(square), nil
}

// Measure measures the qubit in a 2-dimensional basis.
//
// It samples the "on" outcome with its Born probability and returns the qubit
// collapsed onto the matching basis vector together with the outcome. Measuring
// the returned qubit again in the same basis always repeats the outcome.
func (q Qubit) Measure(basis Basis, src random.Source) (Qubit, bool, error) {
	if basis.Dim() != 2 {
		return q, false, fmt.Errorf("%w: qubit measured in a %d-dimensional basis",
			tensor.ErrShapeMismatch, basis.Dim())
	}
	probs, err := q.Probabilities(basis)
	if err != nil {
		return q, false, err
	}

	_, onP := checkNormalization(probs.At(0), probs.At(1))
	on := src.Bernoulli(onP)

	logger.Debug().
		Float64("p_on", onP).
		Bool("on", on).
		Msg("measured qubit")

	return outcomeQubit(basis, on), on, nil
}

// System lifts the qubit into a 1-qubit system.
func (q Qubit) System() *System {
	return &System{state: q.state, qubits: 1}
}

// String returns the state as a Ket literal.
func (q Qubit) String() string {
	return q.state.String()
}

func outcomeQubit(basis Basis, on bool) Qubit {
	if on {
		return qubitFromKet(basis.On())
	}
	return qubitFromKet(basis.Off())
}

func square(v float64) float64 { return v * v }
