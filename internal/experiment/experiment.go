// Package experiment runs the polarisation and entanglement experiments built
// on the simulator: filter chains, an angle sweep of a three-filter chain and
// Bell's inequality.
//
// Every experiment repeats independent trials. Trials are split into chunks
// with the parallel package and every chunk owns its random source, seeded
// from Config.Seed and the chunk index, so a fixed seed and worker layout
// always reproduce the same counts.
package experiment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/born-ml/qubit/internal/parallel"
	"github.com/born-ml/qubit/internal/random"
)

// Common errors.
var (
	ErrNoTrials   = errors.New("experiment needs at least one trial")
	ErrEmptyChain = errors.New("filter chain has no filters")
)

// Config controls how many trials run and how.
type Config struct {
	Trials   int
	Seed     int64 // Negative = random
	Parallel parallel.Config
	Logger   *zerolog.Logger // nil disables logging
}

// DefaultConfig returns 100000 randomly seeded trials on every CPU.
func DefaultConfig() Config {
	return Config{
		Trials:   100_000,
		Seed:     -1,
		Parallel: parallel.DefaultConfig(),
	}
}

func (c Config) validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: got %d", ErrNoTrials, c.Trials)
	}
	return nil
}

func (c Config) logger() zerolog.Logger {
	if c.Logger == nil {
		return zerolog.Nop()
	}
	return *c.Logger
}

// source returns the random source owned by one chunk.
func (c Config) source(chunk int) random.Source {
	if c.Seed < 0 {
		return random.New(random.DefaultConfig())
	}
	return random.New(random.Config{Seed: c.Seed + int64(chunk)})
}

// run executes trial once per trial index, collecting one T per chunk.
// Partial results come back in chunk order so that merging is deterministic.
func run[T any](ctx context.Context, cfg Config, trial func(src random.Source, acc *T) error) ([]T, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	chunks := parallel.Split(cfg.Trials, cfg.Parallel)
	parts := make([]T, len(chunks))
	err := parallel.ForChunks(ctx, cfg.Trials, func(ctx context.Context, c parallel.Chunk) error {
		src := cfg.source(c.Index)
		acc := &parts[c.Index]
		for i := c.Start; i < c.End; i++ {
			if i%4096 == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}
			if err := trial(src, acc); err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
		}
		return nil
	}, cfg.Parallel)
	if err != nil {
		return nil, err
	}
	return parts, nil
}
