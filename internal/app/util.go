package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func fitTextHeight(text string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func wrapLineToWidth(line string, width int) []string {
	width = maxInt(1, width)
	runes := []rune(line)
	if len(runes) == 0 {
		return []string{""}
	}
	if len(runes) <= width {
		return []string{line}
	}
	segments := make([]string, 0, (len(runes)/width)+1)
	start := 0
	for start < len(runes) {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		segments = append(segments, string(runes[start:end]))
		start = end
	}
	return segments
}

func truncateText(raw string, maxLen int) string {
	if maxLen < 4 {
		maxLen = 4
	}
	if len([]rune(raw)) <= maxLen {
		return raw
	}
	return string([]rune(raw)[:maxLen-3]) + "..."
}

// placeOver paints fg onto bg with its top-left cell at (x, y). Both may carry
// ANSI styling; cells outside bg are padded with spaces.
func placeOver(bg, fg string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}
	for idx, fgLine := range fgLines {
		row := y + idx
		base := bgLines[row]
		if width := ansi.StringWidth(base); width < x {
			base += strings.Repeat(" ", x-width)
		}
		left := ansi.Truncate(base, x, "")
		right := ansi.TruncateLeft(base, x+ansi.StringWidth(fgLine), "")
		bgLines[row] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
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

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
