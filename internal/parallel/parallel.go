// Package parallel provides the chunked fan-out used to run independent
// simulation trials on several goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1024, // A trial is a handful of tiny tensor ops.
	}
}

// Chunk is the half-open index range [Start, End) handled by one worker.
type Chunk struct {
	Index int
	Start int
	End   int
}

// Len returns the number of items in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Split cuts [0, n) into contiguous chunks.
//
// The layout depends only on n, NumWorkers and MinChunkSize, never on Enabled,
// so work that seeds per chunk gives the same answer sequentially and in parallel.
func Split(n int, cfg Config) []Chunk {
	if n <= 0 {
		return nil
	}
	workers := max(cfg.NumWorkers, 1)
	size := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

	chunks := make([]Chunk, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		chunks = append(chunks, Chunk{Index: len(chunks), Start: start, End: min(start+size, n)})
	}
	return chunks
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	for _, c := range Split(n, cfg) {
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(c.Start, c.End)
	}
	wg.Wait()
}

// ForChunks runs f once per chunk of [0, n) and returns the first error.
//
// Chunks run concurrently, at most NumWorkers at a time, when parallelism is
// enabled. Once a chunk fails or ctx is cancelled the context passed to the
// remaining chunks is cancelled; f should check it between items.
func ForChunks(ctx context.Context, n int, f func(ctx context.Context, c Chunk) error, cfg Config) error {
	chunks := Split(n, cfg)
	if !cfg.Enabled || len(chunks) < 2 {
		for _, c := range chunks {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f(ctx, c); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.NumWorkers, 1))
	for _, c := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return f(ctx, c)
		})
	}
	return g.Wait()
}
