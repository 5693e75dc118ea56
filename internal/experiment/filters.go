package experiment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/qubit/internal/quantum"
	"github.com/born-ml/qubit/internal/random"
)

// Stage is one polariser in a chain.
type Stage struct {
	Name  string
	Basis quantum.Basis
}

// StageAt returns a polariser rotated by the given angle in degrees.
func StageAt(degrees float64) Stage {
	return Stage{
		Name:  fmt.Sprintf("%g°", degrees),
		Basis: quantum.FromRadians(degrees * math.Pi / 180),
	}
}

// Named polarisers.
var (
	Vertical   = Stage{Name: "0°", Basis: quantum.Deg0}
	Diagonal   = Stage{Name: "45°", Basis: quantum.Deg45}
	Horizontal = Stage{Name: "90°", Basis: quantum.Deg90}
)

// ChainResult counts what made it through a filter chain.
type ChainResult struct {
	Chain    string
	Sent     uint64 // Random qubits sent into the first filter.
	Passed   []uint64
	Expected float64 // Ideal fraction of Sent that passes every filter.
}

// Rate returns the fraction of Sent that passed every filter.
func (r ChainResult) Rate() float64 {
	if r.Sent == 0 || len(r.Passed) == 0 {
		return 0
	}
	return float64(r.Passed[len(r.Passed)-1]) / float64(r.Sent)
}

// FilterChain sends cfg.Trials random qubits through the stages in order and
// counts how many pass each one. A qubit that is stopped is not offered to
// later stages.
func FilterChain(ctx context.Context, cfg Config, stages ...Stage) (ChainResult, error) {
	if len(stages) == 0 {
		return ChainResult{}, ErrEmptyChain
	}

	parts, err := run(ctx, cfg, func(src random.Source, filters *[]*quantum.Filter) error {
		if *filters == nil {
			for _, st := range stages {
				*filters = append(*filters, quantum.NewFilter(st.Basis, true))
			}
		}
		q := quantum.RandomQubit(src)
		for _, f := range *filters {
			next, ok, err := f.Pass(q, src)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			q = next
		}
		return nil
	})
	if err != nil {
		return ChainResult{}, err
	}

	res := ChainResult{
		Chain:    chainName(stages),
		Sent:     uint64(cfg.Trials),
		Passed:   make([]uint64, len(stages)),
		Expected: expectedChainRate(stages),
	}
	for _, filters := range parts {
		for i, f := range filters {
			res.Passed[i] += f.Passed()
		}
	}

	l := cfg.logger()
	l.Info().
		Str("chain", res.Chain).
		Uint64("sent", res.Sent).
		Float64("rate", res.Rate()).
		Float64("expected", res.Expected).
		Msg("filter chain finished")
	return res, nil
}

// PolarizedFilters runs the classic demonstration: crossed polarisers block
// everything, and a diagonal one in between lets an eighth of the light through.
func PolarizedFilters(ctx context.Context, cfg Config) ([]ChainResult, error) {
	chains := [][]Stage{
		{Vertical, Horizontal},
		{Vertical, Diagonal, Horizontal},
	}
	out := make([]ChainResult, 0, len(chains))
	for _, chain := range chains {
		r, err := FilterChain(ctx, cfg, chain...)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func chainName(stages []Stage) string {
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name
	}
	return "[" + strings.Join(names, " → ") + "]"
}

// expectedChainRate is 1/2 for the first filter (random input) times the
// Born probability of every later filter's on vector given the previous one.
func expectedChainRate(stages []Stage) float64 {
	rate := 0.5
	for i := 1; i < len(stages); i++ {
		dot := floats.Dot(stages[i-1].Basis.On().Data(), stages[i].Basis.On().Data())
		rate *= dot * dot
	}
	return rate
}
