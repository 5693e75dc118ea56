package quantum

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/born-ml/qubit/internal/braket"
	"github.com/born-ml/qubit/internal/random"
	"github.com/born-ml/qubit/internal/tensor"
)

// System is the joint state of k qubits: a flat Ket of N = 2^k amplitudes.
//
// Amplitudes are in tensor-product order with qubit 0 as the most significant
// factor, so qubit q corresponds to bit k-q-1 of the flat index.
//
// Systems are immutable. Composition, gate application and measurement return
// new systems and leave their inputs untouched, so a failed call never damages
// the state it was given.
type System struct {
	state  *tensor.Tensor
	qubits int
}

// Outcome is the resolved single-qubit result of a measurement.
type Outcome struct {
	Qubit Qubit // The basis vector the measured qubit collapsed onto.
	On    bool  // Whether the "on" basis vector was selected.
}

// NewSystem creates a system from explicit amplitudes.
// The number of amplitudes must be a power of two; the state is normalised.
//
// Example:
//
//	bell, _ := quantum.NewSystem(1, 0, 0, 1) // (|00⟩ + |11⟩)/√2
func NewSystem(amplitudes ...float64) (*System, error) {
	if len(amplitudes) == 0 {
		return nil, fmt.Errorf("%w: no amplitudes", ErrNotPowerOfTwo)
	}
	return FromKet(braket.NewKet(amplitudes...))
}

// FromKet creates a system from a flat Ket whose length is a power of two.
// The state is normalised.
func FromKet(ket *tensor.Tensor) (*System, error) {
	if !braket.IsKet(ket) || ket.Rank() != 1 {
		return nil, fmt.Errorf("%w: system state must be a flat Ket, got %s",
			tensor.ErrShapeMismatch, ket.Signature())
	}
	n := ket.Len()
	if n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d amplitudes", ErrNotPowerOfTwo, n)
	}
	state, err := ket.Normalize()
	if err != nil {
		return nil, err
	}
	return &System{state: state, qubits: bits.TrailingZeros(uint(n))}, nil
}

// RandomSystem draws a random unit state of the given number of qubits.
func RandomSystem(qubits int, src random.Source) (*System, error) {
	if qubits < 0 || qubits > 30 {
		return nil, fmt.Errorf("%w: cannot build a system of %d qubits", ErrInvalidQubitIndex, qubits)
	}
	return NewSystem(src.UnitVector(1 << qubits)...)
}

// Qubits returns the number of qubits k.
func (s *System) Qubits() int {
	return s.qubits
}

// Dim returns the number of amplitudes N = 2^k.
func (s *System) Dim() int {
	return s.state.Len()
}

// State returns the amplitude Ket.
func (s *System) State() *tensor.Tensor {
	return s.state
}

// Amplitudes returns a copy of the amplitudes.
func (s *System) Amplitudes() []float64 {
	return s.state.Data()
}

// Norm returns the L2 norm of the amplitudes.
func (s *System) Norm() float64 {
	return s.state.Norm()
}

// Qubit narrows a 1-qubit system back to a Qubit.
func (s *System) Qubit() (Qubit, error) {
	if s.qubits != 1 {
		return Qubit{}, fmt.Errorf("%w: %d-qubit system is not a single qubit", ErrInvalidQubitIndex, s.qubits)
	}
	return qubitFromKet(s.state), nil
}

// String returns the state as a Ket literal.
func (s *System) String() string {
	return s.state.String()
}

// AddSystem composes s with other by tensor product. The qubits of s come
// first in the result.
func (s *System) AddSystem(other *System) (*System, error) {
	state, err := braket.Compose(s.state, other.state)
	if err != nil {
		return nil, err
	}
	return &System{state: state, qubits: s.qubits + other.qubits}, nil
}

// Apply multiplies a gate (a Bra of N Kets of dimension N) against the state.
func (s *System) Apply(gate *tensor.Tensor) (*System, error) {
	state, err := braket.Apply(gate, s.state)
	if err != nil {
		return nil, err
	}
	return FromKet(state)
}

func (s *System) checkQubit(qubit int) error {
	if qubit < 0 || qubit >= s.qubits {
		return fmt.Errorf("%w: qubit %d of a %d-qubit system", ErrInvalidQubitIndex, qubit, s.qubits)
	}
	return nil
}

// mask returns the flat-index bit that encodes qubit.
func (s *System) mask(qubit int) int {
	return 1 << (s.qubits - qubit - 1)
}

// SumAbsProbabilityAmplitudes reduces the state to a 2-vector for one qubit.
//
// The amplitudes are split by the qubit's bit in the flat index; the absolute
// amplitudes of each half are summed and the pair is normalised to unit length.
func (s *System) SumAbsProbabilityAmplitudes(qubit int) (float64, float64, error) {
	if err := s.checkQubit(qubit); err != nil {
		return 0, 0, err
	}

	m := s.mask(qubit)
	var off, on float64
	for i, a := range s.state.Data() {
		if i&m == 0 {
			off += math.Abs(a)
		} else {
			on += math.Abs(a)
		}
	}

	n := math.Hypot(off, on)
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: system has no amplitude", tensor.ErrZeroNorm)
	}
	return off / n, on / n, nil
}

// ProbabilityAmplitudes projects the reduced 2-vector of qubit onto a 2-dimensional basis.
func (s *System) ProbabilityAmplitudes(qubit int, basis Basis) (*tensor.Tensor, error) {
	off, on, err := s.SumAbsProbabilityAmplitudes(qubit)
	if err != nil {
		return nil, err
	}
	return basis.Project(braket.NewKet(off, on))
}

// Probabilities returns the Born-rule probabilities of measuring qubit in basis.
func (s *System) Probabilities(qubit int, basis Basis) (*tensor.Tensor, error) {
	amps, err := s.ProbabilityAmplitudes(qubit, basis)
	if err != nil {
		return nil, err
	}
	return amps.Map(square), nil
}

// Measure measures one qubit and returns the collapsed system of the remaining
// qubits together with the outcome.
//
// The outcome is sampled with the "on" probability from Probabilities. The
// amplitudes of s whose qubit bit matches the outcome are then gathered in
// flat-index order and renormalised to unit length. The basis only decides the
// outcome and the returned outcome qubit; the gathered half always comes from
// the computational amplitudes.
//
// A rotated basis can select a half that holds no amplitude. The measured qubit
// is then a product factor of s, so the remaining qubits are taken from the
// other half.
//
// s itself is never modified, whether or not the measurement succeeds.
func (s *System) Measure(qubit int, basis Basis, src random.Source) (*System, Outcome, error) {
	if basis.Dim() != 2 {
		return nil, Outcome{}, fmt.Errorf("%w: qubit measured in a %d-dimensional basis",
			tensor.ErrShapeMismatch, basis.Dim())
	}
	probs, err := s.Probabilities(qubit, basis)
	if err != nil {
		return nil, Outcome{}, err
	}

	_, onP := checkNormalization(probs.At(0), probs.At(1))
	on := src.Bernoulli(onP)

	amps := s.state.Data()
	m := s.mask(qubit)
	var halves [2][]float64
	for i, a := range amps {
		bit := 0
		if i&m != 0 {
			bit = 1
		}
		halves[bit] = append(halves[bit], a)
	}

	pick := 0
	if on {
		pick = 1
	}
	collapsed, err := braket.NewKet(halves[pick]...).Normalize()
	if err != nil {
		collapsed, err = braket.NewKet(halves[1-pick]...).Normalize()
	}
	if err != nil {
		return nil, Outcome{}, fmt.Errorf("%w: qubit %d has no amplitude", ErrNormalizationDrift, qubit)
	}

	logger.Debug().
		Int("qubit", qubit).
		Int("qubits", s.qubits).
		Float64("p_on", onP).
		Bool("on", on).
		Msg("measured system qubit")

	rest := &System{state: collapsed, qubits: s.qubits - 1}
	return rest, Outcome{Qubit: outcomeQubit(basis, on), On: on}, nil
}
