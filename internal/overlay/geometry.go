package overlay

type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type Size struct {
	W int
	H int
}

type Rect struct {
	Point
	Size
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Clamp keeps a panel of size panel fully inside viewport. A viewport smaller
// than the panel pins it to the origin.
func Clamp(pos Point, panel, viewport Size) Point {
	maxX := maxInt(0, viewport.W-panel.W)
	maxY := maxInt(0, viewport.H-panel.H)
	return Point{
		X: clampInt(pos.X, 0, maxX),
		Y: clampInt(pos.Y, 0, maxY),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
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
