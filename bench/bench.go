// Package bench implements the concurrent memory-throughput engine:
// buffer partitioning, synchronized worker start, sequential and random
// read/write loops, and aggregation of per-worker tallies into a single
// result.
package bench

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// WordSize is the size in bytes of one buffer element.
const WordSize = 8

// Defaults mirror the configuration the benchmark shipped with before
// it grew a flag surface.
const (
	DefaultBufferBytes = 512 * 1024 * 1024
	DefaultThreads     = 8
	DefaultIterations  = 10
	DefaultSeed        = 0xC0FFEE
)

// Pattern selects how each worker orders its visits within a pass.
type Pattern int

const (
	// Sequential visits partition indices in ascending order.
	Sequential Pattern = iota
	// Random draws uniform indices, with replacement, from the
	// worker's own generator.
	Random
)

func (p Pattern) String() string {
	switch p {
	case Sequential:
		return "Sequential"
	case Random:
		return "Random"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// Config controls a single benchmark run.
type Config struct {
	BufferBytes uint64
	Threads     int
	Iterations  int
	Pattern     Pattern
	Seed        uint64
}

// Words returns the number of buffer elements the configured size
// yields.
func (c Config) Words() uint64 {
	return c.BufferBytes / WordSize
}

// Validate rejects configurations that cannot produce a meaningful
// run. It is called before any buffer is allocated or worker spawned.
func (c Config) Validate() error {
	if c.Threads <= 0 {
		return fmt.Errorf("thread count must be positive, got %d", c.Threads)
	}

	if c.Iterations <= 0 {
		return fmt.Errorf("iteration count must be positive, got %d", c.Iterations)
	}

	words := c.Words()
	if words == 0 {
		return fmt.Errorf(
			"buffer size %d bytes yields no %d-byte words", c.BufferBytes, WordSize,
		)
	}

	if words < uint64(c.Threads) {
		return fmt.Errorf(
			"buffer of %d words cannot give each of %d threads at least one word",
			words, c.Threads,
		)
	}

	return nil
}

// Runner owns the shared buffer for the duration of a run and
// orchestrates the workers over it.
type Runner struct {
	cfg    Config
	logger *slog.Logger
}

// NewRunner validates cfg and creates a Runner for it.
func NewRunner(cfg Config, logger *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Runner{cfg: cfg, logger: logger}, nil
}

// Run allocates the buffer, executes one full benchmark and returns the
// aggregated result. The timed region starts immediately before the
// start gate is released, so generator setup and goroutine spawn cost
// stay out of the throughput figure.
func (r *Runner) Run() *Result {
	words := r.cfg.Words()
	buf := make([]uint64, words)
	parts := partitions(words, r.cfg.Threads)

	gate := NewStartGate()
	results := make([]workerResult, r.cfg.Threads)

	var wg sync.WaitGroup
	for id, p := range parts {
		id := id
		// Each worker gets a capacity-clamped view of its own
		// partition; it cannot index outside it.
		view := buf[p.begin:p.end:p.end]

		wg.Add(1)
		go func() {
			defer wg.Done()
			runWorker(id, view, r.cfg, gate, &results[id])
		}()
	}

	r.logger.Debug("workers spawned",
		slog.Int("threads", r.cfg.Threads),
		slog.Uint64("words", words),
	)

	start := time.Now()
	gate.Release()
	wg.Wait()
	elapsed := time.Since(start)

	var totalBytes, checksum uint64
	for _, wr := range results {
		totalBytes += wr.bytesProcessed
		// XOR is order-independent, so thread interleaving cannot
		// change the combined value.
		checksum ^= wr.checksum
	}

	seconds := elapsed.Seconds()

	return &Result{
		Pattern:        r.cfg.Pattern.String(),
		BufferBytes:    r.cfg.BufferBytes,
		Words:          words,
		Threads:        r.cfg.Threads,
		Iterations:     r.cfg.Iterations,
		TotalBytes:     totalBytes,
		ElapsedSeconds: seconds,
		ThroughputMBps: throughputMBps(totalBytes, seconds),
		Checksum:       checksum,
	}
}

// throughputMBps converts a byte total and elapsed wall-clock seconds
// into MB/s. A run whose elapsed time rounds to zero reports 0 rather
// than infinity.
func throughputMBps(totalBytes uint64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}

	return float64(totalBytes) / (1024 * 1024) / seconds
}

// partition is a half-open word-index range [begin, end) owned by
// exactly one worker.
type partition struct {
	begin, end uint64
}

// partitions splits the word index space evenly across n workers, the
// last partition absorbing the remainder. The returned ranges are
// contiguous, non-overlapping, and cover [0, words) exactly once.
func partitions(words uint64, n int) []partition {
	per := words / uint64(n)
	parts := make([]partition, n)

	for i := range parts {
		begin := uint64(i) * per
		end := begin + per
		if i == n-1 {
			end = words
		}

		parts[i] = partition{begin: begin, end: end}
	}

	return parts
}
