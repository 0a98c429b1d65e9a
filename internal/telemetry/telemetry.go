package telemetry

import (
	"fmt"
	"math/rand/v2"
)

// Snapshot is the simulated device reading shown on the home screen and the overlay.
type Snapshot struct {
	FPS      int  `json:"fps"`
	CPUTemp  int  `json:"cpu_temp"`
	GPUTemp  int  `json:"gpu_temp"`
	CPUUsage int  `json:"cpu_usage"`
	GPUUsage int  `json:"gpu_usage"`
	RAMUsage int  `json:"ram_usage"`
	Battery  int  `json:"battery"`
	Ping     int  `json:"ping"`
	Charging bool `json:"charging"`
}

// Range produces values in [Min, Min+Span-1].
type Range struct {
	Min  int `json:"min" yaml:"min"`
	Span int `json:"span" yaml:"span"`
}

func (r Range) Max() int {
	if r.Span <= 0 {
		return r.Min
	}
	return r.Min + r.Span - 1
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max()
}

func (r Range) sample(rng *rand.Rand) int {
	if r.Span <= 1 {
		return r.Min
	}
	return r.Min + rng.IntN(r.Span)
}

type Ranges struct {
	FPS      Range `json:"fps" yaml:"fps"`
	CPUTemp  Range `json:"cpu_temp" yaml:"cpu_temp"`
	GPUTemp  Range `json:"gpu_temp" yaml:"gpu_temp"`
	CPUUsage Range `json:"cpu_usage" yaml:"cpu_usage"`
	GPUUsage Range `json:"gpu_usage" yaml:"gpu_usage"`
	RAMUsage Range `json:"ram_usage" yaml:"ram_usage"`
	Ping     Range `json:"ping" yaml:"ping"`
}

func DefaultRanges() Ranges {
	return Ranges{
		FPS:      Range{Min: 55, Span: 10},
		CPUTemp:  Range{Min: 40, Span: 20},
		GPUTemp:  Range{Min: 38, Span: 18},
		CPUUsage: Range{Min: 25, Span: 50},
		GPUUsage: Range{Min: 30, Span: 45},
		RAMUsage: Range{Min: 50, Span: 30},
		Ping:     Range{Min: 15, Span: 30},
	}
}

func (r Ranges) Validate() error {
	fields := []struct {
		name    string
		rng     Range
		percent bool
	}{
		{"fps", r.FPS, false},
		{"cpu_temp", r.CPUTemp, false},
		{"gpu_temp", r.GPUTemp, false},
		{"cpu_usage", r.CPUUsage, true},
		{"gpu_usage", r.GPUUsage, true},
		{"ram_usage", r.RAMUsage, true},
		{"ping", r.Ping, false},
	}
	for _, field := range fields {
		if field.rng.Min < 0 {
			return fmt.Errorf("telemetry range %s: min must be non-negative", field.name)
		}
		if field.rng.Span <= 0 {
			return fmt.Errorf("telemetry range %s: span must be positive", field.name)
		}
		if field.percent && field.rng.Max() > 100 {
			return fmt.Errorf("telemetry range %s: max %d exceeds 100%%", field.name, field.rng.Max())
		}
	}
	return nil
}

// Initial is the reading shown before the first tick.
func Initial() Snapshot {
	return Snapshot{
		FPS:      60,
		CPUTemp:  45,
		GPUTemp:  42,
		CPUUsage: 35,
		GPUUsage: 40,
		RAMUsage: 55,
		Battery:  78,
		Ping:     23,
	}
}

// Next replaces every ranged field with a fresh sample. Battery drifts by at
// most one point per tick depending on the charging flag.
func Next(prev Snapshot, ranges Ranges, rng *rand.Rand) Snapshot {
	next := prev
	next.FPS = ranges.FPS.sample(rng)
	next.CPUTemp = ranges.CPUTemp.sample(rng)
	next.GPUTemp = ranges.GPUTemp.sample(rng)
	next.CPUUsage = ranges.CPUUsage.sample(rng)
	next.GPUUsage = ranges.GPUUsage.sample(rng)
	next.RAMUsage = ranges.RAMUsage.sample(rng)
	next.Ping = ranges.Ping.sample(rng)

	switch {
	case prev.Charging:
		next.Battery = clampInt(prev.Battery+1, 0, 100)
	case rng.IntN(10) == 0:
		next.Battery = clampInt(prev.Battery-1, 0, 100)
	default:
		next.Battery = clampInt(prev.Battery, 0, 100)
	}
	return next
}

type Simulator struct {
	ranges Ranges
	rng    *rand.Rand
}

func NewSimulator(ranges Ranges, seed uint64) *Simulator {
	return &Simulator{
		ranges: ranges,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *Simulator) Ranges() Ranges {
	return s.ranges
}

func (s *Simulator) Tick(prev Snapshot) Snapshot {
	return Next(prev, s.ranges, s.rng)
}

// Rand exposes the simulator's source so boost nudges share one seeded stream.
func (s *Simulator) Rand() *rand.Rand {
	return s.rng
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
