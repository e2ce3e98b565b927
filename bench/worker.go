package bench

import (
	mrand "math/rand"
)

// Mixing constants for the read-fold and write-back steps. The
// checksum fold depends on both the loaded value and the prior sum, so
// the loads stay observable; the write masks flip the stored bits each
// visit.
const (
	seqWriteMask  = 0xA5A5A5A5A5A5A5A5
	randWriteMask = 0xDEADBEEFCAFEBABE
	randSumGamma  = 0x9E3779B97F4A7C15
)

// workerResult is the per-worker tally, written once after the loop
// into a slot owned exclusively by that worker's index.
type workerResult struct {
	bytesProcessed uint64
	checksum       uint64
}

// runWorker executes the timed loop over the worker's partition view.
// All indexing is relative to part, so a worker cannot touch another
// worker's words. Generator setup happens before the gate wait and is
// excluded from the timed region.
func runWorker(id int, part []uint64, cfg Config, gate *StartGate, out *workerResult) {
	// Distinct seed per worker; a shared generator would need a lock
	// in the hot loop.
	rng := mrand.New(mrand.NewSource(int64(cfg.Seed ^ uint64(id)<<32)))

	gate.Wait()

	var sum, bytes uint64
	n := len(part)

	for it := 0; it < cfg.Iterations; it++ {
		switch cfg.Pattern {
		case Random:
			// Uniform draws with replacement, one per partition word.
			for k := 0; k < n; k++ {
				i := rng.Intn(n)
				v := part[i]
				sum += v + randSumGamma
				part[i] = v ^ randWriteMask
			}

		default:
			for i := 0; i < n; i++ {
				v := part[i]
				sum += v ^ (sum << 1)
				part[i] = v ^ seqWriteMask
			}
		}

		// One read and one write per visited word.
		bytes += uint64(n) * WordSize * 2
	}

	out.bytesProcessed = bytes
	out.checksum = sum
}
