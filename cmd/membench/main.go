// Package main provides the CLI entry point for membench, a concurrent
// memory bandwidth saturation benchmark.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/zgrigoryan/Bandwidth-saturation-test/bench"
	"github.com/zgrigoryan/Bandwidth-saturation-test/report"
	"github.com/zgrigoryan/Bandwidth-saturation-test/sysinfo"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var (
		random     bool
		sizeMB     uint64
		threads    int
		iterations int
		seed       uint64
		outputJSON bool
	)

	root := &cobra.Command{
		Use:   "membench",
		Short: "Concurrent memory bandwidth saturation benchmark",
		Long: `Membench measures achievable memory read/write throughput under
concurrent access. It partitions a large buffer across worker goroutines,
releases them simultaneously and times repeated sequential or random
read/write passes over each partition.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			pattern := bench.Sequential
			if random {
				pattern = bench.Random
			}

			return runBenchmark(logger, bench.Config{
				BufferBytes: sizeMB * 1024 * 1024,
				Threads:     threads,
				Iterations:  iterations,
				Pattern:     pattern,
				Seed:        seed,
			}, outputJSON)
		},
	}

	flags := root.Flags()
	flags.BoolVarP(&random, "random", "r", false,
		"Use the random access pattern instead of sequential")
	flags.Uint64Var(&sizeMB, "size-mb", bench.DefaultBufferBytes/(1024*1024),
		"Buffer size in MiB")
	flags.IntVar(&threads, "threads", bench.DefaultThreads,
		"Number of worker goroutines")
	flags.IntVar(&iterations, "iterations", bench.DefaultIterations,
		"Passes over each partition")
	flags.Uint64Var(&seed, "seed", bench.DefaultSeed,
		"Base seed for the per-worker random generators")
	flags.BoolVar(&outputJSON, "json", false,
		"Output the result as JSON instead of text")

	return root
}

func runBenchmark(logger *slog.Logger, cfg bench.Config, outputJSON bool) error {
	runner, err := bench.NewRunner(cfg, logger)
	if err != nil {
		return err
	}

	if !outputJSON {
		host := sysinfo.Collect(logger)
		report.Banner(os.Stdout, cfg, host)
	}

	logger.Info("starting benchmark",
		slog.Uint64("buffer_bytes", cfg.BufferBytes),
		slog.Int("threads", cfg.Threads),
		slog.Int("iterations", cfg.Iterations),
		slog.String("pattern", cfg.Pattern.String()),
		slog.Uint64("seed", cfg.Seed),
	)

	res := runner.Run()

	logger.Info("benchmark complete",
		slog.Float64("elapsed_seconds", res.ElapsedSeconds),
		slog.Float64("throughput_mbps", res.ThroughputMBps),
	)

	if outputJSON {
		return report.GenerateJSON(os.Stdout, res)
	}

	return report.Generate(os.Stdout, res)
}
