package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/zgrigoryan/Bandwidth-saturation-test/bench"
	"github.com/zgrigoryan/Bandwidth-saturation-test/sysinfo"
)

func TestGenerate(t *testing.T) {
	res := &bench.Result{
		Pattern:        "Sequential",
		BufferBytes:    512 * 1024 * 1024,
		Words:          64 * 1024 * 1024,
		Threads:        8,
		Iterations:     10,
		TotalBytes:     10737418240,
		ElapsedSeconds: 1.5,
		ThroughputMBps: 6826.666,
		Checksum:       0xdeadbeef,
	}

	var buf bytes.Buffer
	if err := Generate(&buf, res); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "10737418240 bytes") {
		t.Error("expected total bytes in output")
	}
	if !strings.Contains(output, "1.50 s") {
		t.Error("expected elapsed time with two decimals")
	}
	if !strings.Contains(output, "6826.67 MB/s") {
		t.Error("expected throughput with two decimals")
	}
	if !strings.Contains(output, "0xdeadbeef") {
		t.Error("expected checksum in hex")
	}
}

func TestGenerateNilResult(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, nil); err == nil {
		t.Error("expected error for nil result")
	}
}

func TestGenerateJSON(t *testing.T) {
	res := &bench.Result{
		Pattern:        "Random",
		BufferBytes:    1024,
		Words:          128,
		Threads:        2,
		Iterations:     1,
		TotalBytes:     2048,
		ElapsedSeconds: 0.01,
		ThroughputMBps: 195.31,
		Checksum:       42,
	}

	var buf bytes.Buffer
	if err := GenerateJSON(&buf, res); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed bench.Result
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if parsed != *res {
		t.Errorf("round trip mismatch: %+v vs %+v", parsed, *res)
	}
}

func TestBanner(t *testing.T) {
	cfg := bench.Config{
		BufferBytes: 512 * 1024 * 1024,
		Threads:     8,
		Iterations:  10,
		Pattern:     bench.Random,
	}
	host := sysinfo.Info{
		CPUModel:        "Test CPU",
		Cores:           4,
		TotalMemory:     16 * 1024 * 1024 * 1024,
		AvailableMemory: 8 * 1024 * 1024 * 1024,
	}

	var buf bytes.Buffer
	Banner(&buf, cfg, host)

	output := buf.String()

	for _, want := range []string{
		"Test CPU", "4 cores", "16 GB", "8 GB",
		"536870912 bytes", "512 MB", "Random",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("banner missing %q:\n%s", want, output)
		}
	}
}

func TestBannerOmitsUnknownHost(t *testing.T) {
	cfg := bench.Config{
		BufferBytes: 1024,
		Threads:     1,
		Iterations:  1,
		Pattern:     bench.Sequential,
	}

	var buf bytes.Buffer
	Banner(&buf, cfg, sysinfo.Info{})

	output := buf.String()

	if strings.Contains(output, "CPU            :") {
		t.Error("banner should omit the CPU line when the probe failed")
	}
	if strings.Contains(output, "System memory") {
		t.Error("banner should omit the memory line when the probe failed")
	}
	if !strings.Contains(output, "Sequential") {
		t.Error("banner missing access pattern")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input uint64
		want  string
	}{
		{0, "-"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{536870912, "512 MB"},
		{1073741824, "1 GB"},
	}

	for _, tt := range tests {
		got := formatBytes(tt.input)
		if got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
