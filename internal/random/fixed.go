package random

import "fmt"

// Fixed replays scripted draws. It is meant for tests that need a particular
// measurement outcome regardless of the probabilities involved.
//
// Bernoulli ignores p and returns the next scripted outcome; UnitVector returns
// the next scripted vector. Running out of script panics.
type Fixed struct {
	Outcomes []bool
	Vectors  [][]float64
}

var _ Source = (*Fixed)(nil)

// Bernoulli returns the next scripted outcome.
func (f *Fixed) Bernoulli(_ float64) bool {
	if len(f.Outcomes) == 0 {
		panic("random.Fixed: no outcomes left")
	}
	out := f.Outcomes[0]
	f.Outcomes = f.Outcomes[1:]
	return out
}

// UnitVector returns the next scripted vector, which must have length dim.
func (f *Fixed) UnitVector(dim int) []float64 {
	if len(f.Vectors) == 0 {
		panic("random.Fixed: no vectors left")
	}
	v := f.Vectors[0]
	if len(v) != dim {
		panic(fmt.Sprintf("random.Fixed: scripted vector has length %d, want %d", len(v), dim))
	}
	f.Vectors = f.Vectors[1:]
	return append([]float64(nil), v...)
}
