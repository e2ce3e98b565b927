// Package report formats benchmark configuration and results for
// standard output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/zgrigoryan/Bandwidth-saturation-test/bench"
	"github.com/zgrigoryan/Bandwidth-saturation-test/sysinfo"
)

// Banner writes the pre-run header: what will be measured and on what
// host. Host fields that failed to probe are omitted.
func Banner(w io.Writer, cfg bench.Config, host sysinfo.Info) {
	fmt.Fprintln(w, "Memory Stress Test")
	fmt.Fprintln(w, "------------------")

	if host.CPUModel != "" {
		fmt.Fprintf(w, "CPU            : %s (%d cores)\n",
			host.CPUModel, host.Cores)
	}

	if host.TotalMemory > 0 {
		fmt.Fprintf(w, "System memory  : %s total, %s available\n",
			formatBytes(host.TotalMemory),
			formatBytes(host.AvailableMemory))
	}

	fmt.Fprintf(w, "Buffer size    : %d bytes (%s)\n",
		cfg.BufferBytes, formatBytes(cfg.BufferBytes))
	fmt.Fprintf(w, "Iterations     : %d\n", cfg.Iterations)
	fmt.Fprintf(w, "Threads        : %d\n", cfg.Threads)
	fmt.Fprintf(w, "Access pattern : %s\n", cfg.Pattern)
	fmt.Fprintln(w)
}

// Generate writes the human-readable post-run report.
func Generate(w io.Writer, res *bench.Result) error {
	if res == nil {
		return fmt.Errorf("no result to report")
	}

	fmt.Fprintf(w, "Total bytes processed : %d bytes\n", res.TotalBytes)
	fmt.Fprintf(w, "Elapsed time          : %.2f s\n", res.ElapsedSeconds)
	fmt.Fprintf(w, "Throughput            : %.2f MB/s\n", res.ThroughputMBps)
	fmt.Fprintf(w, "Checksum              : 0x%x\n", res.Checksum)

	return nil
}

// GenerateJSON writes the result as indented JSON to w.
func GenerateJSON(w io.Writer, res *bench.Result) error {
	if res == nil {
		return fmt.Errorf("no result to report")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(res)
}

func formatBytes(b uint64) string {
	if b == 0 {
		return "-"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + " " + units[unit]
}
