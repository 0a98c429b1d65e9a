package device

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestSummaryFallsBackToNA(t *testing.T) {
	t.Parallel()

	lines := Info{}.Summary()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines for empty info, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "n/a") {
			t.Fatalf("expected n/a placeholder in %q", line)
		}
	}
}

func TestProbeFillsPlatform(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	info, _ := Probe(ctx)
	if info.Platform == "" {
		t.Fatalf("expected platform to be populated")
	}
	if info.CPUCores <= 0 {
		t.Fatalf("expected positive core count, got %d", info.CPUCores)
	}
}

func TestSummaryIncludesMemory(t *testing.T) {
	t.Parallel()

	lines := Info{Hostname: "rig", CPUModel: "Zen", CPUCores: 8, MemoryTotal: 16 << 30}.Summary()
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Memory: 16 GiB") {
		t.Fatalf("expected humanized memory line, got %q", joined)
	}
	if !strings.Contains(joined, "Zen (8 cores)") {
		t.Fatalf("expected cpu line with cores, got %q", joined)
	}
}
