package betedge

import (
	"log/slog"

	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/ashler-herrick/betedge/internal/engine"
)

// Stats reports what a run consumed and produced. See WithStats.
type Stats = engine.Stats

// Option adjusts how a run executes.
type Option func(*runConfig)

type runConfig struct {
	parallelism int
	logger      *slog.Logger
	alloc       memory.Allocator
	stats       *Stats
}

// WithParallelism filters contracts with up to n concurrent workers.
// Values below 2 keep the run sequential. Artifact bytes are identical
// either way.
func WithParallelism(n int) Option {
	return func(c *runConfig) { c.parallelism = n }
}

// WithLogger routes run logs to l instead of slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) { c.logger = l }
}

// WithAllocator builds Arrow buffers with mem instead of the default
// Go allocator.
func WithAllocator(mem memory.Allocator) Option {
	return func(c *runConfig) { c.alloc = mem }
}

// WithStats fills st with run counters when the run succeeds.
func WithStats(st *Stats) Option {
	return func(c *runConfig) { c.stats = st }
}

func buildOptions(opts []Option) engine.Options {
	var c runConfig
	for _, opt := range opts {
		opt(&c)
	}
	return engine.Options{
		Parallelism: c.parallelism,
		Logger:      c.logger,
		Alloc:       c.alloc,
		Stats:       c.stats,
	}
}
