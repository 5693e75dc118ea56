package experiment

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/qubit/internal/parallel"
)

// SweepPoint is the pass rate of [0° → θ → 90°] for one middle angle θ.
type SweepPoint struct {
	Degrees  float64
	Rate     float64
	Expected float64
}

// Sweep rotates the middle filter of a vertical/horizontal pair through
// steps+1 evenly spaced angles in [from, to] degrees and measures each chain.
// The ideal curve is cos²θ·sin²θ/2, peaking at 45°.
//
// Angles are spread over the workers; each angle then runs its trials
// sequentially. Chunk seeds do not depend on that choice, so the points match
// a fully sequential run.
func Sweep(ctx context.Context, cfg Config, from, to float64, steps int) ([]SweepPoint, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: sweep needs at least one step, got %d", ErrNoTrials, steps)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	angles := make([]float64, steps+1)
	floats.Span(angles, from, to)

	points := make([]SweepPoint, len(angles))
	errs := make([]error, len(angles))

	outer := cfg.Parallel
	outer.MinChunkSize = 1
	parallel.For(len(angles), func(i int) {
		angleCfg := cfg
		angleCfg.Logger = nil
		angleCfg.Parallel.Enabled = false
		// Chunk seeds are Seed+chunk; keep every angle in its own range.
		if cfg.Seed >= 0 {
			angleCfg.Seed = cfg.Seed + int64(i)<<32
		}
		r, err := FilterChain(ctx, angleCfg, Vertical, StageAt(angles[i]), Horizontal)
		if err != nil {
			errs[i] = err
			return
		}
		points[i] = SweepPoint{Degrees: angles[i], Rate: r.Rate(), Expected: r.Expected}
	}, outer)

	l := cfg.logger()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("sweep at %g°: %w", angles[i], err)
		}
		l.Debug().
			Float64("degrees", points[i].Degrees).
			Float64("rate", points[i].Rate).
			Float64("expected", points[i].Expected).
			Msg("sweep point")
	}
	l.Info().Int("points", len(points)).Int("trials", cfg.Trials).Msg("sweep finished")
	return points, nil
}
