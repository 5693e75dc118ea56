// Package random provides the injectable randomness consumed by measurement and
// random state preparation.
package random

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source supplies the two random draws the simulator needs.
type Source interface {
	// Bernoulli returns true with probability p.
	Bernoulli(p float64) bool

	// UnitVector returns a random vector of length dim with unit L2 norm.
	UnitVector(dim int) []float64
}

// Config configures a Gonum source.
type Config struct {
	// Seed for reproducibility. Negative = random.
	Seed int64
}

// DefaultConfig returns a randomly seeded configuration.
func DefaultConfig() Config {
	return Config{Seed: -1}
}

// Gonum is a Source backed by a PCG generator and gonum distributions.
// It is not safe for concurrent use; give every goroutine its own.
type Gonum struct {
	src     rand.Source
	uniform distuv.Uniform
}

var _ Source = (*Gonum)(nil)

// New creates a Gonum source.
func New(cfg Config) *Gonum {
	seed := uint64(cfg.Seed) //nolint:gosec // G115: negative seeds are replaced below.
	if cfg.Seed < 0 {
		seed = rand.Uint64()
	}
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)

	return &Gonum{
		src:     src,
		uniform: distuv.Uniform{Min: -1, Max: 1, Src: src},
	}
}

// Bernoulli returns true with probability p, clamped to [0, 1].
func (g *Gonum) Bernoulli(p float64) bool {
	if math.IsNaN(p) || p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return distuv.Bernoulli{P: p, Src: g.src}.Rand() == 1
}

// UnitVector draws every component uniformly from [-1, 1] and normalises.
//
// The resulting direction is not uniform on the sphere (corners of the cube are
// over-represented); that is acceptable for preparing demo and test states.
// Draws with a vanishing norm are repeated.
func (g *Gonum) UnitVector(dim int) []float64 {
	if dim <= 0 {
		panic("unit vector dimension must be > 0")
	}
	v := make([]float64, dim)
	for {
		for i := range v {
			v[i] = g.uniform.Rand()
		}
		if n := floats.Norm(v, 2); n > 1e-12 {
			floats.Scale(1/n, v)
			return v
		}
	}
}
