package music

import (
	"math/rand/v2"
	"testing"
	"time"
)

func TestAdvanceOnlyWhilePlaying(t *testing.T) {
	t.Parallel()

	p := NewPlayer(DefaultTrack, rand.New(rand.NewPCG(1, 2)))
	p.Advance()
	if p.Progress != 0 {
		t.Fatalf("paused player advanced to %.1f", p.Progress)
	}
	p.TogglePlay()
	for i := 0; i < 10; i++ {
		p.Advance()
	}
	if p.Progress != 5 {
		t.Fatalf("expected progress 5, got %.1f", p.Progress)
	}
	for _, bar := range p.Bars() {
		if bar < 0.2 || bar > 0.9 {
			t.Fatalf("spectrum bar out of range: %f", bar)
		}
	}
}

func TestEndOfTrack(t *testing.T) {
	t.Parallel()

	p := NewPlayer(DefaultTrack, rand.New(rand.NewPCG(1, 2)))
	p.TogglePlay()
	p.Progress = 99.5
	p.Advance()
	if p.Progress != 0 || p.Playing {
		t.Fatalf("expected stop at end without repeat, got progress=%.1f playing=%v", p.Progress, p.Playing)
	}

	p.TogglePlay()
	p.ToggleRepeat()
	p.Progress = 99.5
	p.Advance()
	if p.Progress != 0 || !p.Playing {
		t.Fatalf("expected wrap with repeat, got progress=%.1f playing=%v", p.Progress, p.Playing)
	}
}

func TestSeekAndClock(t *testing.T) {
	t.Parallel()

	p := NewPlayer(DefaultTrack, rand.New(rand.NewPCG(1, 2)))
	p.SeekBack()
	if p.Progress != 0 {
		t.Fatalf("seek back below zero: %.1f", p.Progress)
	}
	p.Seek(50)
	if got := FormatClock(p.Elapsed()); got != "2:00" {
		t.Fatalf("expected 2:00 at half way, got %s", got)
	}
	if FormatClock(DefaultTrack.Duration) != "4:00" {
		t.Fatalf("unexpected track length format")
	}
	if p.SetVolume(140) != 100 || p.SetVolume(-3) != 0 {
		t.Fatalf("volume should clamp to [0,100]")
	}
	if FormatClock(65*time.Second) != "1:05" {
		t.Fatalf("unexpected clock format")
	}
}
