package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/qubit/internal/random"
)

func TestIsEntangled(t *testing.T) {
	assert.True(t, bell(t).IsEntangled())

	product, err := Plus().System().AddSystem(Zero().System())
	require.NoError(t, err)
	assert.False(t, product.IsEntangled())

	assert.False(t, Plus().System().IsEntangled())

	ghz, err := NewSystem(1, 0, 0, 0, 0, 0, 0, 1)
	require.NoError(t, err)
	assert.True(t, ghz.IsEntangled())

	// Bell pair on qubits 1 and 2, qubit 0 separate.
	partial, err := One().System().AddSystem(bell(t))
	require.NoError(t, err)
	assert.True(t, partial.IsEntangled())
}

func TestRandomProductsAreSeparable(t *testing.T) {
	src := random.New(random.Config{Seed: 6})
	for i := 0; i < 20; i++ {
		s := RandomQubit(src).System()
		for j := 0; j < 2; j++ {
			var err error
			s, err = s.AddSystem(RandomQubit(src).System())
			require.NoError(t, err)
		}
		assert.False(t, s.IsEntangled(), "state %s", s)
	}
}

func TestMeasurementDisentangles(t *testing.T) {
	rest, _, err := bell(t).Measure(0, Deg0, &random.Fixed{Outcomes: []bool{true}})
	require.NoError(t, err)
	assert.False(t, rest.IsEntangled())
}
