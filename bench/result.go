package bench

// Result holds the aggregate outcome of one benchmark run.
type Result struct {
	Pattern        string  `json:"pattern"`
	BufferBytes    uint64  `json:"buffer_bytes"`
	Words          uint64  `json:"words"`
	Threads        int     `json:"threads"`
	Iterations     int     `json:"iterations"`
	TotalBytes     uint64  `json:"total_bytes"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	ThroughputMBps float64 `json:"throughput_mbps"`
	Checksum       uint64  `json:"checksum"`
}
