// Package sysinfo gathers host facts for the startup banner.
package sysinfo

import (
	"log/slog"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
	gmem "github.com/shirou/gopsutil/v4/mem"
)

// Info describes the host the benchmark runs on. Fields stay zero when
// the platform probe fails.
type Info struct {
	CPUModel        string
	Cores           int
	TotalMemory     uint64
	AvailableMemory uint64
}

// Collect probes CPU and memory facts. Probe failures are logged and
// leave the corresponding fields zero; the banner must never abort a
// run.
func Collect(logger *slog.Logger) Info {
	var info Info

	cpus, err := gcpu.Info()
	switch {
	case err != nil:
		logger.Warn("unable to read CPU info",
			slog.String("error", err.Error()),
		)
	case len(cpus) == 0:
		logger.Warn("no CPU info reported by the platform")
	default:
		info.CPUModel = cpus[0].ModelName
		info.Cores = int(cpus[0].Cores)
	}

	vm, err := gmem.VirtualMemory()
	if err != nil {
		logger.Warn("unable to read memory info",
			slog.String("error", err.Error()),
		)
	} else {
		info.TotalMemory = vm.Total
		info.AvailableMemory = vm.Available
	}

	return info
}
