package boost

import (
	"math/rand/v2"
	"time"

	"gamebooster-tui/internal/telemetry"
)

type State int

const (
	Idle State = iota
	Boosting
)

// Token identifies one boost run. Step and Finish calls carrying an older
// token are ignored.
type Token uint64

// Targets are the values forced when a boost completes.
type Targets struct {
	FPS      int `json:"fps" yaml:"fps"`
	CPUUsage int `json:"cpu_usage" yaml:"cpu_usage"`
	GPUUsage int `json:"gpu_usage" yaml:"gpu_usage"`
	RAMUsage int `json:"ram_usage" yaml:"ram_usage"`
	CPUTemp  int `json:"cpu_temp" yaml:"cpu_temp"`
	GPUTemp  int `json:"gpu_temp" yaml:"gpu_temp"`
	Ping     int `json:"ping" yaml:"ping"`
}

func DefaultTargets() Targets {
	return Targets{
		FPS:      120,
		CPUUsage: 25,
		GPUUsage: 30,
		RAMUsage: 42,
		CPUTemp:  38,
		GPUTemp:  36,
		Ping:     18,
	}
}

func (t Targets) Apply(snap telemetry.Snapshot) telemetry.Snapshot {
	snap.FPS = t.FPS
	snap.CPUUsage = t.CPUUsage
	snap.GPUUsage = t.GPUUsage
	snap.RAMUsage = t.RAMUsage
	snap.CPUTemp = t.CPUTemp
	snap.GPUTemp = t.GPUTemp
	snap.Ping = t.Ping
	return snap
}

const (
	maxFPS      = 120
	minCPUUsage = 20
	minGPUUsage = 25
	minRAMUsage = 30
	minCPUTemp  = 35
	minGPUTemp  = 32
	minPing     = 10
)

// Nudge moves every metric one random step toward a better value.
func Nudge(snap telemetry.Snapshot, rng *rand.Rand) telemetry.Snapshot {
	snap.FPS = minInt(maxFPS, snap.FPS+rng.IntN(10))
	snap.CPUUsage = maxInt(minCPUUsage, snap.CPUUsage-rng.IntN(5))
	snap.GPUUsage = maxInt(minGPUUsage, snap.GPUUsage-rng.IntN(5))
	snap.RAMUsage = maxInt(minRAMUsage, snap.RAMUsage-rng.IntN(8))
	snap.CPUTemp = maxInt(minCPUTemp, snap.CPUTemp-rng.IntN(3))
	snap.GPUTemp = maxInt(minGPUTemp, snap.GPUTemp-rng.IntN(3))
	snap.Ping = maxInt(minPing, snap.Ping-rng.IntN(3))
	return snap
}

// Result summarises one completed boost.
type Result struct {
	Game       string             `json:"game,omitempty"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	Steps      int                `json:"steps"`
	Before     telemetry.Snapshot `json:"before"`
	After      telemetry.Snapshot `json:"after"`
}

func (r Result) FPSGain() int {
	return r.After.FPS - r.Before.FPS
}

func (r Result) Duration() time.Duration {
	if r.FinishedAt.Before(r.StartedAt) {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// Controller is the single boost state machine: Idle -> Boosting on Trigger,
// Boosting -> Idle on Finish or Cancel.
type Controller struct {
	targets Targets
	now     func() time.Time

	state   State
	current Token
	game    string
	started time.Time
	before  telemetry.Snapshot
	steps   int
}

func NewController(targets Targets) *Controller {
	return &Controller{targets: targets, now: time.Now}
}

func (c *Controller) Boosting() bool {
	return c.state == Boosting
}

func (c *Controller) Token() Token {
	return c.current
}

func (c *Controller) Game() string {
	return c.game
}

// Trigger starts a boost. While a boost is already running it does nothing and
// returns false.
func (c *Controller) Trigger(snap telemetry.Snapshot, game string) (Token, bool) {
	if c.state == Boosting {
		return c.current, false
	}
	c.current++
	c.state = Boosting
	c.game = game
	c.started = c.now()
	c.before = snap
	c.steps = 0
	return c.current, true
}

func (c *Controller) Step(token Token, snap telemetry.Snapshot, rng *rand.Rand) (telemetry.Snapshot, bool) {
	if c.state != Boosting || token != c.current {
		return snap, false
	}
	c.steps++
	return Nudge(snap, rng), true
}

func (c *Controller) Finish(token Token, snap telemetry.Snapshot) (telemetry.Snapshot, Result, bool) {
	if c.state != Boosting || token != c.current {
		return snap, Result{}, false
	}
	after := c.targets.Apply(snap)
	result := Result{
		Game:       c.game,
		StartedAt:  c.started,
		FinishedAt: c.now(),
		Steps:      c.steps,
		Before:     c.before,
		After:      after,
	}
	c.state = Idle
	c.game = ""
	return after, result, true
}

// Cancel abandons a running boost without applying targets.
func (c *Controller) Cancel() bool {
	if c.state != Boosting {
		return false
	}
	c.current++
	c.state = Idle
	c.game = ""
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
