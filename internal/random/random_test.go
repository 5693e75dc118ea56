package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestBernoulliEdges(t *testing.T) {
	g := New(Config{Seed: 42})
	for i := 0; i < 100; i++ {
		assert.False(t, g.Bernoulli(0))
		assert.True(t, g.Bernoulli(1))
		assert.False(t, g.Bernoulli(-0.5), "negative p is clamped to 0")
		assert.True(t, g.Bernoulli(1.00001), "p above 1 is clamped to 1")
	}
}

func TestBernoulliFrequency(t *testing.T) {
	g := New(Config{Seed: 7})
	n, hits := 20000, 0
	for i := 0; i < n; i++ {
		if g.Bernoulli(0.25) {
			hits++
		}
	}
	assert.InDelta(t, 0.25, float64(hits)/float64(n), 0.02)
}

func TestSeedReproducible(t *testing.T) {
	a := New(Config{Seed: 123})
	b := New(Config{Seed: 123})
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.UnitVector(4), b.UnitVector(4))
		assert.Equal(t, a.Bernoulli(0.5), b.Bernoulli(0.5))
	}
}

func TestUnitVector(t *testing.T) {
	g := New(DefaultConfig())
	for _, dim := range []int{1, 2, 4, 8} {
		v := g.UnitVector(dim)
		assert.Len(t, v, dim)
		assert.InDelta(t, 1.0, floats.Norm(v, 2), 1e-9)
		for _, x := range v {
			assert.LessOrEqual(t, x, 1.0)
			assert.GreaterOrEqual(t, x, -1.0)
		}
	}
	assert.Panics(t, func() { g.UnitVector(0) })
}

func TestFixed(t *testing.T) {
	f := &Fixed{
		Outcomes: []bool{true, false},
		Vectors:  [][]float64{{0.6, 0.8}},
	}
	assert.True(t, f.Bernoulli(0))
	assert.False(t, f.Bernoulli(1))
	assert.Panics(t, func() { f.Bernoulli(0.5) })

	assert.Equal(t, []float64{0.6, 0.8}, f.UnitVector(2))
	assert.Panics(t, func() { f.UnitVector(2) })

	g := &Fixed{Vectors: [][]float64{{1}}}
	assert.Panics(t, func() { g.UnitVector(2) })
}
