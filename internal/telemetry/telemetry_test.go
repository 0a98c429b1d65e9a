package telemetry

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestNextStaysWithinRanges(t *testing.T) {
	t.Parallel()

	ranges := DefaultRanges()
	rng := rand.New(rand.NewPCG(7, 11))
	snap := Initial()
	for tick := 0; tick < 5000; tick++ {
		snap = Next(snap, ranges, rng)
		checks := []struct {
			name  string
			value int
			rng   Range
		}{
			{"fps", snap.FPS, ranges.FPS},
			{"cpu_temp", snap.CPUTemp, ranges.CPUTemp},
			{"gpu_temp", snap.GPUTemp, ranges.GPUTemp},
			{"cpu_usage", snap.CPUUsage, ranges.CPUUsage},
			{"gpu_usage", snap.GPUUsage, ranges.GPUUsage},
			{"ram_usage", snap.RAMUsage, ranges.RAMUsage},
			{"ping", snap.Ping, ranges.Ping},
		}
		for _, check := range checks {
			if !check.rng.Contains(check.value) {
				t.Fatalf("tick %d: %s=%d outside [%d,%d]", tick, check.name, check.value, check.rng.Min, check.rng.Max())
			}
		}
		if snap.Battery < 0 || snap.Battery > 100 {
			t.Fatalf("tick %d: battery %d outside [0,100]", tick, snap.Battery)
		}
	}
}

func TestNextIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a := NewSimulator(DefaultRanges(), 42)
	b := NewSimulator(DefaultRanges(), 42)
	snapA, snapB := Initial(), Initial()
	for i := 0; i < 50; i++ {
		snapA = a.Tick(snapA)
		snapB = b.Tick(snapB)
		if snapA != snapB {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, snapA, snapB)
		}
	}
}

func TestNextBatteryDrift(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	charging := Snapshot{Battery: 100, Charging: true}
	if got := Next(charging, DefaultRanges(), rng).Battery; got != 100 {
		t.Fatalf("charging battery should cap at 100, got %d", got)
	}

	drain := Snapshot{Battery: 50}
	for i := 0; i < 200; i++ {
		next := Next(drain, DefaultRanges(), rng)
		if next.Battery > drain.Battery || drain.Battery-next.Battery > 1 {
			t.Fatalf("battery moved from %d to %d", drain.Battery, next.Battery)
		}
		drain = next
	}
}

func TestRangesValidate(t *testing.T) {
	t.Parallel()

	if err := DefaultRanges().Validate(); err != nil {
		t.Fatalf("default ranges invalid: %v", err)
	}

	bad := DefaultRanges()
	bad.Ping.Span = 0
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "ping") {
		t.Fatalf("expected ping span error, got %v", err)
	}

	bad = DefaultRanges()
	bad.RAMUsage = Range{Min: 90, Span: 20}
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "exceeds 100") {
		t.Fatalf("expected percent overflow error, got %v", err)
	}
}

func TestGrades(t *testing.T) {
	t.Parallel()

	if DeviceTempStatus(38) != "Optimal" || DeviceTempStatus(45) != "Normal" || DeviceTempStatus(50) != "Hot" {
		t.Fatalf("unexpected device temperature labels")
	}
	if TempGrade(70) != GradePoor || TempGrade(55) != GradeFair || TempGrade(54) != GradeGood {
		t.Fatalf("unexpected overlay temperature grades")
	}
	if FPSGrade(55) != GradeGood || FPSGrade(30) != GradeFair || FPSGrade(29) != GradePoor {
		t.Fatalf("unexpected fps grades")
	}
}
