package boost

import (
	"math/rand/v2"
	"testing"
	"time"

	"gamebooster-tui/internal/telemetry"
)

func TestFinishForcesTargetsRegardlessOfSteps(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	for run := 0; run < 20; run++ {
		c := NewController(DefaultTargets())
		snap := telemetry.Initial()
		snap.Charging = run%2 == 0
		token, ok := c.Trigger(snap, "")
		if !ok {
			t.Fatalf("run %d: trigger from idle failed", run)
		}
		for i := 0; i < run; i++ {
			snap, _ = c.Step(token, snap, rng)
		}
		battery := snap.Battery
		after, result, ok := c.Finish(token, snap)
		if !ok {
			t.Fatalf("run %d: finish rejected", run)
		}
		if c.Boosting() {
			t.Fatalf("run %d: still boosting after finish", run)
		}
		want := DefaultTargets().Apply(snap)
		if after != want {
			t.Fatalf("run %d: got %+v want %+v", run, after, want)
		}
		if after.Battery != battery || after.Charging != snap.Charging {
			t.Fatalf("run %d: battery state changed by boost", run)
		}
		if result.Steps != run {
			t.Fatalf("run %d: recorded %d steps", run, result.Steps)
		}
	}
}

func TestTriggerWhileBoostingIsNoop(t *testing.T) {
	t.Parallel()

	c := NewController(DefaultTargets())
	snap := telemetry.Initial()
	first, ok := c.Trigger(snap, "PUBG Mobile")
	if !ok {
		t.Fatalf("expected first trigger to start")
	}
	for i := 0; i < 10; i++ {
		again, ok := c.Trigger(snap, "Free Fire")
		if ok {
			t.Fatalf("trigger %d started a second boost", i)
		}
		if again != first {
			t.Fatalf("token changed while boosting: %d -> %d", first, again)
		}
	}
	if c.Game() != "PUBG Mobile" {
		t.Fatalf("game overwritten by repeated trigger: %q", c.Game())
	}

	completions := 0
	for i := 0; i < 5; i++ {
		if _, _, ok := c.Finish(first, snap); ok {
			completions++
		}
	}
	if completions != 1 {
		t.Fatalf("expected exactly one completion, got %d", completions)
	}
}

func TestStaleTokenIgnored(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(9, 9))
	c := NewController(DefaultTargets())
	snap := telemetry.Initial()
	old, _ := c.Trigger(snap, "")
	if !c.Cancel() {
		t.Fatalf("cancel should stop a running boost")
	}
	current, ok := c.Trigger(snap, "")
	if !ok || current == old {
		t.Fatalf("expected fresh token after cancel, got %d (old %d)", current, old)
	}
	if next, ok := c.Step(old, snap, rng); ok || next != snap {
		t.Fatalf("stale step should be ignored")
	}
	if _, _, ok := c.Finish(old, snap); ok {
		t.Fatalf("stale finish should be ignored")
	}
	if !c.Boosting() {
		t.Fatalf("current boost ended by stale token")
	}
}

func TestNudgeRespectsBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(5, 6))
	snap := telemetry.Initial()
	for i := 0; i < 500; i++ {
		prev := snap
		snap = Nudge(snap, rng)
		if snap.FPS < prev.FPS || snap.FPS > maxFPS {
			t.Fatalf("fps moved the wrong way: %d -> %d", prev.FPS, snap.FPS)
		}
		if snap.CPUUsage > prev.CPUUsage || snap.CPUUsage < minCPUUsage {
			t.Fatalf("cpu usage out of bounds: %d -> %d", prev.CPUUsage, snap.CPUUsage)
		}
		if snap.RAMUsage < minRAMUsage || snap.CPUTemp < minCPUTemp || snap.GPUTemp < minGPUTemp || snap.Ping < minPing {
			t.Fatalf("metric below floor: %+v", snap)
		}
		if snap.Battery != prev.Battery {
			t.Fatalf("nudge changed battery")
		}
	}
}

func TestResultDurationAndGain(t *testing.T) {
	t.Parallel()

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewController(DefaultTargets())
	c.now = func() time.Time { return clock }
	snap := telemetry.Initial()
	token, _ := c.Trigger(snap, "Genshin Impact")
	clock = clock.Add(3 * time.Second)
	_, result, ok := c.Finish(token, snap)
	if !ok {
		t.Fatalf("finish rejected")
	}
	if result.Duration() != 3*time.Second {
		t.Fatalf("unexpected duration %s", result.Duration())
	}
	if result.FPSGain() != 60 {
		t.Fatalf("expected fps gain 60, got %d", result.FPSGain())
	}
	if result.Game != "Genshin Impact" {
		t.Fatalf("unexpected game %q", result.Game)
	}
}
