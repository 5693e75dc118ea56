package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/qubit/internal/braket"
	"github.com/born-ml/qubit/internal/random"
	"github.com/born-ml/qubit/internal/tensor"
)

func TestMeasureEigenstateIsCertain(t *testing.T) {
	src := random.New(random.Config{Seed: 1})
	for i := 0; i < 100; i++ {
		q, on, err := Zero().Measure(Deg0, src)
		require.NoError(t, err)
		assert.False(t, on)
		assert.True(t, tensor.Equal(braket.NewKet(1, 0), q.State()))

		q, on, err = One().Measure(Deg0, src)
		require.NoError(t, err)
		assert.True(t, on)
		assert.True(t, tensor.Equal(braket.NewKet(0, 1), q.State()))

		_, on, err = Plus().Measure(Deg45, src)
		require.NoError(t, err)
		assert.True(t, on)
	}
}

func TestMeasureRepeats(t *testing.T) {
	src := random.New(random.Config{Seed: 2})
	for i := 0; i < 200; i++ {
		q := RandomQubit(src)
		first, on, err := q.Measure(Deg45, src)
		require.NoError(t, err)

		again, onAgain, err := first.Measure(Deg45, src)
		require.NoError(t, err)
		assert.Equal(t, on, onAgain)
		assert.True(t, tensor.ApproxEqual(first.State(), again.State(), 1e-12))
	}
}

func TestMeasureDoesNotTouchInput(t *testing.T) {
	q := Plus()
	before := q.State().Data()
	_, _, err := q.Measure(Deg0, &random.Fixed{Outcomes: []bool{true}})
	require.NoError(t, err)
	assert.Equal(t, before, q.State().Data())
}

func TestProbabilitiesSumToOne(t *testing.T) {
	src := random.New(random.Config{Seed: 3})
	bases := []Basis{Deg0, Deg45, Deg90, FromRadians(2 * math.Pi / 3), FromRadians(4 * math.Pi / 3)}
	for i := 0; i < 50; i++ {
		q := RandomQubit(src)
		a, b := q.Amplitudes()
		assert.InDelta(t, 1, math.Hypot(a, b), 1e-9)

		for _, basis := range bases {
			p, err := q.Probabilities(basis)
			require.NoError(t, err)
			assert.InDelta(t, 1, p.At(0)+p.At(1), 1e-9)
		}
	}
}

func TestMeasureFrequency(t *testing.T) {
	// |0⟩ in the 45° basis is on with probability 1/2.
	src := random.New(random.Config{Seed: 4})
	n, on := 20000, 0
	for i := 0; i < n; i++ {
		_, got, err := Zero().Measure(Deg45, src)
		require.NoError(t, err)
		if got {
			on++
		}
	}
	assert.InDelta(t, 0.5, float64(on)/float64(n), 0.02)
}

func TestMeasureRejectsLargeBasis(t *testing.T) {
	joint, err := Deg0.Kron(Deg0)
	require.NoError(t, err)
	_, _, err = Zero().Measure(joint, &random.Fixed{})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestQubitToSystem(t *testing.T) {
	s := Plus().System()
	assert.Equal(t, 1, s.Qubits())
	assert.Equal(t, 2, s.Dim())

	q, err := s.Qubit()
	require.NoError(t, err)
	assert.True(t, tensor.Equal(Plus().State(), q.State()))
}
