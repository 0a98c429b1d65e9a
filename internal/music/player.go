package music

import (
	"fmt"
	"math/rand/v2"
	"time"
)

type Track struct {
	Title    string
	Artist   string
	Duration time.Duration
}

var DefaultTrack = Track{
	Title:    "Huling Sandali",
	Artist:   "December Avenue",
	Duration: 4 * time.Minute,
}

const (
	progressStep = 0.5
	seekStep     = 5.0
	SpectrumBars = 32
)

// Player tracks playback progress as a percentage of the track.
type Player struct {
	Track    Track
	Playing  bool
	Progress float64
	Volume   int
	Shuffle  bool
	Repeat   bool

	bars []float64
	rng  *rand.Rand
}

func NewPlayer(track Track, rng *rand.Rand) *Player {
	return &Player{
		Track:  track,
		Volume: 80,
		bars:   make([]float64, SpectrumBars),
		rng:    rng,
	}
}

func (p *Player) TogglePlay() bool {
	p.Playing = !p.Playing
	return p.Playing
}

func (p *Player) ToggleShuffle() bool {
	p.Shuffle = !p.Shuffle
	return p.Shuffle
}

func (p *Player) ToggleRepeat() bool {
	p.Repeat = !p.Repeat
	return p.Repeat
}

// Advance moves playback one tick forward and refreshes the spectrum. At the
// end of the track it wraps when repeating and stops otherwise.
func (p *Player) Advance() {
	if !p.Playing {
		return
	}
	p.Progress += progressStep
	if p.Progress >= 100 {
		p.Progress = 0
		if !p.Repeat {
			p.Playing = false
		}
	}
	for idx := range p.bars {
		p.bars[idx] = 0.2 + p.rng.Float64()*0.7
	}
}

func (p *Player) Seek(delta float64) {
	p.Progress = clampFloat(p.Progress+delta, 0, 100)
}

func (p *Player) SeekForward() {
	p.Seek(seekStep)
}

func (p *Player) SeekBack() {
	p.Seek(-seekStep)
}

func (p *Player) SetVolume(v int) int {
	p.Volume = int(clampFloat(float64(v), 0, 100))
	return p.Volume
}

func (p *Player) Bars() []float64 {
	return append([]float64(nil), p.bars...)
}

func (p *Player) Elapsed() time.Duration {
	return time.Duration(float64(p.Track.Duration) * p.Progress / 100)
}

func FormatClock(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func clampFloat(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
