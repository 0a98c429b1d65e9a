package overlay

import "fmt"

type PerformanceMode int

const (
	ModeBattery PerformanceMode = iota
	ModeBalanced
	ModePerformance
)

func (m PerformanceMode) String() string {
	switch m {
	case ModeBattery:
		return "battery"
	case ModePerformance:
		return "performance"
	default:
		return "balanced"
	}
}

func ParsePerformanceMode(raw string) (PerformanceMode, error) {
	switch raw {
	case "battery":
		return ModeBattery, nil
	case "balanced", "":
		return ModeBalanced, nil
	case "performance":
		return ModePerformance, nil
	default:
		return ModeBalanced, fmt.Errorf("unknown performance mode %q", raw)
	}
}

type Network int

const (
	NetworkWiFi Network = iota
	NetworkMobile
)

func (n Network) String() string {
	if n == NetworkMobile {
		return "Data"
	}
	return "WiFi"
}

var (
	fullSize     = Size{W: 36, H: 14}
	expandedSize = Size{W: 36, H: 20}
	compactSize  = Size{W: 28, H: 3}
)

const levelStep = 10

// Panel is the floating overlay: position, display mode and quick toggles.
type Panel struct {
	Visible    bool
	Compact    bool
	Expanded   bool
	Position   Point
	Mode       PerformanceMode
	DND        bool
	Recording  bool
	Network    Network
	Brightness int
	Volume     int

	drag Dragger
}

func NewPanel(origin Point) *Panel {
	return &Panel{
		Position:   origin,
		Mode:       ModeBalanced,
		Brightness: 80,
		Volume:     70,
	}
}

func (p *Panel) Size() Size {
	switch {
	case p.Compact:
		return compactSize
	case p.Expanded:
		return expandedSize
	default:
		return fullSize
	}
}

// Handle is the row the pointer must grab to drag the panel.
func (p *Panel) Handle() Rect {
	return Rect{Point: p.Position, Size: Size{W: p.Size().W, H: 1}}
}

func (p *Panel) Dragging() bool {
	return p.drag.Dragging()
}

func (p *Panel) Show(viewport Size) {
	p.Visible = true
	p.Reclamp(viewport)
}

// Hide closes the panel and drops any drag in progress.
func (p *Panel) Hide() {
	p.Visible = false
	p.drag.Release()
}

func (p *Panel) Toggle(viewport Size) {
	if p.Visible {
		p.Hide()
		return
	}
	p.Show(viewport)
}

func (p *Panel) PointerDown(at Point) bool {
	if !p.Visible {
		return false
	}
	return p.drag.Press(at, p.Position, p.Handle())
}

func (p *Panel) PointerMove(at Point, viewport Size) bool {
	pos, ok := p.drag.Move(at, p.Size(), viewport)
	if !ok {
		return false
	}
	p.Position = pos
	return true
}

func (p *Panel) PointerUp() bool {
	return p.drag.Release()
}

// Nudge moves the panel by (dx, dy) cells, clamped to the viewport.
func (p *Panel) Nudge(dx, dy int, viewport Size) {
	p.Position = Clamp(Point{X: p.Position.X + dx, Y: p.Position.Y + dy}, p.Size(), viewport)
}

func (p *Panel) Reclamp(viewport Size) {
	if viewport.W <= 0 || viewport.H <= 0 {
		return
	}
	p.Position = Clamp(p.Position, p.Size(), viewport)
}

func (p *Panel) SetCompact(compact bool, viewport Size) {
	p.Compact = compact
	p.Reclamp(viewport)
}

func (p *Panel) ToggleExpanded(viewport Size) {
	p.Expanded = !p.Expanded
	p.Reclamp(viewport)
}

func (p *Panel) CycleMode() PerformanceMode {
	p.Mode = (p.Mode + 1) % 3
	return p.Mode
}

func (p *Panel) ToggleNetwork() Network {
	if p.Network == NetworkWiFi {
		p.Network = NetworkMobile
	} else {
		p.Network = NetworkWiFi
	}
	return p.Network
}

func (p *Panel) AdjustBrightness(steps int) int {
	p.Brightness = clampInt(p.Brightness+steps*levelStep, 0, 100)
	return p.Brightness
}

func (p *Panel) AdjustVolume(steps int) int {
	p.Volume = clampInt(p.Volume+steps*levelStep, 0, 100)
	return p.Volume
}
