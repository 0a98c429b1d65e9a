package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gamebooster-tui/internal/boost"
	"gamebooster-tui/internal/overlay"
	"gamebooster-tui/internal/router"
	"gamebooster-tui/internal/telemetry"
)

type Config struct {
	StartTab  string          `json:"start_tab" yaml:"start_tab"`
	Seed      uint64          `json:"seed" yaml:"seed"`
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry"`
	Boost     BoostConfig     `json:"boost" yaml:"boost"`
	Chat      ChatConfig      `json:"chat" yaml:"chat"`
	Music     MusicConfig     `json:"music" yaml:"music"`
	Splash    SplashConfig    `json:"splash" yaml:"splash"`
	Overlay   OverlayConfig   `json:"overlay" yaml:"overlay"`
}

type TelemetryConfig struct {
	IntervalMS int              `json:"interval_ms" yaml:"interval_ms"`
	Ranges     telemetry.Ranges `json:"ranges" yaml:"ranges"`
	Charging   bool             `json:"charging" yaml:"charging"`
}

type BoostConfig struct {
	StepIntervalMS int           `json:"step_interval_ms" yaml:"step_interval_ms"`
	DurationMS     int           `json:"duration_ms" yaml:"duration_ms"`
	Targets        boost.Targets `json:"targets" yaml:"targets"`
}

type ChatConfig struct {
	ReplyDelayMS int      `json:"reply_delay_ms" yaml:"reply_delay_ms"`
	MaxMessages  int      `json:"max_messages" yaml:"max_messages"`
	Responses    []string `json:"responses" yaml:"responses"`
}

type MusicConfig struct {
	TickMS int `json:"tick_ms" yaml:"tick_ms"`
}

type SplashConfig struct {
	Skip       bool `json:"skip" yaml:"skip"`
	DurationMS int  `json:"duration_ms" yaml:"duration_ms"`
}

type OverlayConfig struct {
	Visible bool          `json:"visible" yaml:"visible"`
	Compact bool          `json:"compact" yaml:"compact"`
	Origin  overlay.Point `json:"origin" yaml:"origin"`
	Mode    string        `json:"mode" yaml:"mode"`
}

func DefaultConfig() Config {
	return Config{
		StartTab: router.Home.ID(),
		Telemetry: TelemetryConfig{
			IntervalMS: 1500,
			Ranges:     telemetry.DefaultRanges(),
		},
		Boost: BoostConfig{
			StepIntervalMS: 200,
			DurationMS:     3000,
			Targets:        boost.DefaultTargets(),
		},
		Chat: ChatConfig{
			ReplyDelayMS: 1500,
			MaxMessages:  1000,
		},
		Music: MusicConfig{
			TickMS: 500,
		},
		Splash: SplashConfig{
			DurationMS: 3000,
		},
		Overlay: OverlayConfig{
			Origin: overlay.Point{X: 4, Y: 3},
			Mode:   overlay.ModeBalanced.String(),
		},
	}
}

func (c Config) Validate() error {
	var errs []error
	positive := []struct {
		name  string
		value int
	}{
		{"telemetry.interval_ms", c.Telemetry.IntervalMS},
		{"boost.step_interval_ms", c.Boost.StepIntervalMS},
		{"boost.duration_ms", c.Boost.DurationMS},
		{"chat.reply_delay_ms", c.Chat.ReplyDelayMS},
		{"music.tick_ms", c.Music.TickMS},
	}
	for _, field := range positive {
		if field.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", field.name))
		}
	}
	if c.Boost.StepIntervalMS > 0 && c.Boost.DurationMS > 0 && c.Boost.StepIntervalMS > c.Boost.DurationMS {
		errs = append(errs, fmt.Errorf("boost.step_interval_ms must not exceed boost.duration_ms"))
	}
	if c.Splash.DurationMS < 0 {
		errs = append(errs, fmt.Errorf("splash.duration_ms must not be negative"))
	}
	if c.Chat.MaxMessages < 0 {
		errs = append(errs, fmt.Errorf("chat.max_messages must not be negative"))
	}
	for idx, response := range c.Chat.Responses {
		if strings.TrimSpace(response) == "" {
			errs = append(errs, fmt.Errorf("chat.responses[%d] is blank", idx))
		}
	}
	if _, err := router.Parse(c.StartTab); err != nil {
		errs = append(errs, fmt.Errorf("start_tab: %w", err))
	}
	if _, err := overlay.ParsePerformanceMode(c.Overlay.Mode); err != nil {
		errs = append(errs, fmt.Errorf("overlay.mode: %w", err))
	}
	if err := c.Telemetry.Ranges.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) TelemetryInterval() time.Duration {
	return time.Duration(c.Telemetry.IntervalMS) * time.Millisecond
}

func (c Config) BoostStepInterval() time.Duration {
	return time.Duration(c.Boost.StepIntervalMS) * time.Millisecond
}

func (c Config) BoostDuration() time.Duration {
	return time.Duration(c.Boost.DurationMS) * time.Millisecond
}

func (c Config) ChatReplyDelay() time.Duration {
	return time.Duration(c.Chat.ReplyDelayMS) * time.Millisecond
}

func (c Config) MusicTick() time.Duration {
	return time.Duration(c.Music.TickMS) * time.Millisecond
}

func (c Config) SplashDuration() time.Duration {
	return time.Duration(c.Splash.DurationMS) * time.Millisecond
}
