package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/qubit/internal/random"
	"github.com/born-ml/qubit/internal/tensor"
)

func TestFilterCounts(t *testing.T) {
	f := NewFilter(Deg0, true)
	assert.Zero(t, f.Rate())

	src := &random.Fixed{Outcomes: []bool{true, false, true}}
	q, ok, err := f.Pass(Plus(), src)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, tensor.Equal(Deg0.On(), q.State()))

	_, ok, err = f.Pass(Plus(), src)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = f.Pass(Plus(), src)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, uint64(2), f.Passed())
	assert.Equal(t, uint64(3), f.Total())
	assert.InDelta(t, 2.0/3.0, f.Rate(), 1e-12)

	f.Reset()
	assert.Zero(t, f.Passed())
	assert.Zero(t, f.Total())
}

func TestFilterBlocksOrthogonal(t *testing.T) {
	src := random.New(random.Config{Seed: 8})
	vertical := NewFilter(Deg0, true)
	horizontal := NewFilter(Deg90, true)
	for i := 0; i < 1000; i++ {
		q, ok, err := vertical.Pass(RandomQubit(src), src)
		require.NoError(t, err)
		if !ok {
			continue
		}
		_, ok, err = horizontal.Pass(q, src)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Positive(t, horizontal.Total())
	assert.Zero(t, horizontal.Passed())
}

func TestFilterDiagonalLetsAQuarterThrough(t *testing.T) {
	src := random.New(random.Config{Seed: 9})
	chain := []*Filter{NewFilter(Deg45, true), NewFilter(Deg90, true)}
	n, through := 20000, 0
	for i := 0; i < n; i++ {
		// One() is what a vertical filter lets through.
		q, ok := One(), true
		for _, f := range chain {
			var err error
			q, ok, err = f.Pass(q, src)
			require.NoError(t, err)
			if !ok {
				break
			}
		}
		if ok {
			through++
		}
	}
	// Starting vertical: 1/2 through the 45° filter, then 1/2 of those through 90°.
	assert.InDelta(t, 0.25, float64(through)/float64(n), 0.02)
}
