package app

import (
	"math"
	"strings"

	"gamebooster-tui/internal/telemetry"

	"github.com/charmbracelet/lipgloss"
)

var (
	chromeBG        = lipgloss.Color("#05090C")
	chromeFG        = lipgloss.Color("#E8F0F2")
	panelBorder     = lipgloss.Color("#2D6A80")
	accentPrimary   = lipgloss.Color("#50E3C2")
	accentSecondary = lipgloss.Color("#F6AE2D")
	mutedText       = lipgloss.Color("#8CA1AE")
	warningText     = lipgloss.Color("#FF6B6B")
	goodText        = lipgloss.Color("#44E7AE")
	waveformLow     = lipgloss.Color("#2B4C5B")
	waveformBandBG  = lipgloss.Color("#13232C")
	fpsWavePalette  = []lipgloss.Color{
		lipgloss.Color("#2B7EA1"),
		lipgloss.Color("#20B6D9"),
		lipgloss.Color("#44E7AE"),
		lipgloss.Color("#D8F26F"),
		lipgloss.Color("#F6AE2D"),
		lipgloss.Color("#FF6B6B"),
	}
	cpuWavePalette = []lipgloss.Color{
		lipgloss.Color("#1E7E9A"),
		lipgloss.Color("#2DBBD3"),
		lipgloss.Color("#6AE18A"),
		lipgloss.Color("#C8EE63"),
		lipgloss.Color("#F0C74B"),
		lipgloss.Color("#FF8E53"),
	}
	tempWavePalette = []lipgloss.Color{
		lipgloss.Color("#287B8E"),
		lipgloss.Color("#30BFA5"),
		lipgloss.Color("#72DF7A"),
		lipgloss.Color("#C6EB5A"),
		lipgloss.Color("#EFB94D"),
		lipgloss.Color("#FF8A65"),
	}
)

var (
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(accentPrimary)

	subHeaderStyle = lipgloss.NewStyle().
			Foreground(mutedText)

	statusStyle = lipgloss.NewStyle().
			Foreground(accentSecondary).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(warningText).
			Bold(true)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(accentPrimary).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(panelBorder).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedText)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(chromeBG).
			Background(accentPrimary).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(mutedText).
				Padding(0, 1)

	selectedLineStyle = lipgloss.NewStyle().
				Foreground(accentPrimary).
				Bold(true)

	botBubbleStyle = lipgloss.NewStyle().
			Foreground(accentPrimary)

	userBubbleStyle = lipgloss.NewStyle().
			Foreground(accentSecondary).
			Bold(true)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentSecondary).
			Background(lipgloss.Color("#0B141A")).
			Foreground(chromeFG)

	overlayDragStyle = overlayStyle.
				BorderForeground(accentPrimary)

	splashStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(accentPrimary).
			Padding(1, 3)
)

func renderPanel(title, body string, width, height int, focused bool) string {
	borderColor := panelBorder
	if focused {
		borderColor = accentSecondary
	}
	style := panelStyle.
		BorderForeground(borderColor).
		Width(width).
		Height(height)

	titleLine := panelTitleStyle.Render(title)
	return style.Render(titleLine + "\n" + body)
}

func mutedTextStyle(text string) string {
	return lipgloss.NewStyle().Foreground(mutedText).Render(text)
}

func gradeStyle(grade telemetry.Grade) lipgloss.Style {
	switch grade {
	case telemetry.GradeGood:
		return lipgloss.NewStyle().Foreground(goodText)
	case telemetry.GradeFair:
		return lipgloss.NewStyle().Foreground(accentSecondary)
	default:
		return lipgloss.NewStyle().Foreground(warningText)
	}
}

func renderUsageMeter(percent float64, width int) string {
	width = maxInt(4, width)
	p := clampFloat(percent, 0, 100)
	filled := int(math.Round((p / 100.0) * float64(width)))
	filled = clampInt(filled, 0, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

const (
	waveformPadRune            = '▁'
	waveformGlyphsRaw          = "▁▂▃▄▅▆▇█"
	waveformTopPad             = ' '
	waveformContinuationPrefix = "     "
	historySamples             = 160
)

func renderUsageWaveform(samples []float64, width int, phase float64, palette []lipgloss.Color) string {
	_, bottom := renderUsageWaveformRows(samples, width, phase, palette)
	return bottom
}

func renderUsageWaveformRows(samples []float64, width int, phase float64, palette []lipgloss.Color) (string, string) {
	width = maxInt(4, width)
	styles := waveformStyles(palette)
	waveGlyphs := []rune(waveformGlyphsRaw)
	baseTopStyle := lipgloss.NewStyle().Background(waveformBandBG)
	baseBottomStyle := lipgloss.NewStyle().
		Foreground(waveformLow).
		Background(waveformBandBG)
	top := make([]string, width)
	bottom := make([]string, width)
	for idx := 0; idx < width; idx++ {
		top[idx] = baseTopStyle.Render(string(waveformTopPad))
		bottom[idx] = baseBottomStyle.Render(string(waveformPadRune))
	}
	if len(samples) == 0 {
		return strings.Join(top, ""), strings.Join(bottom, "")
	}

	window := samples
	if len(window) > width {
		window = window[len(window)-width:]
	}
	start := width - len(window)
	maxLevel := len(waveGlyphs) - 1
	for idx := 0; idx < len(window); idx++ {
		signal := clampFloat(window[idx], 0, 100) / 100.0

		wobble := math.Sin(float64(idx)*0.92+phase*1.85) * 0.08
		levelValue := clampFloat(signal+wobble*signal, 0, 1)
		totalLevel := clampInt(int(math.Round(levelValue*float64(maxLevel*2+1))), 0, maxLevel*2+1)

		lowerLevel := totalLevel
		upperLevel := 0
		if totalLevel > maxLevel {
			lowerLevel = maxLevel
			upperLevel = totalLevel - maxLevel
		}

		colorIdx := clampInt(int(math.Round(signal*float64(len(styles)-1))), 0, len(styles)-1)
		style := styles[colorIdx]

		bottom[start+idx] = style.Render(string(waveGlyphs[clampInt(lowerLevel, 0, maxLevel)]))
		if upperLevel > 0 {
			top[start+idx] = style.Render(string(waveGlyphs[clampInt(upperLevel-1, 0, maxLevel)]))
		}
	}
	return strings.Join(top, ""), strings.Join(bottom, "")
}

func waveformStyles(palette []lipgloss.Color) []lipgloss.Style {
	if len(palette) == 0 {
		palette = fpsWavePalette
	}
	styles := make([]lipgloss.Style, len(palette))
	for idx, color := range palette {
		styles[idx] = lipgloss.NewStyle().
			Foreground(color).
			Background(waveformBandBG)
	}
	return styles
}

func appendUsageSample(history []float64, value float64, maxLen int) []float64 {
	if maxLen <= 0 {
		maxLen = historySamples
	}
	history = append(history, clampFloat(value, 0, 100))
	if len(history) > maxLen {
		history = history[len(history)-maxLen:]
	}
	return history
}

// renderSpectrum draws one glyph per bar, heights in 0..1.
func renderSpectrum(bars []float64) string {
	waveGlyphs := []rune(waveformGlyphsRaw)
	var builder strings.Builder
	for _, bar := range bars {
		level := clampInt(int(math.Round(clampFloat(bar, 0, 1)*float64(len(waveGlyphs)-1))), 0, len(waveGlyphs)-1)
		builder.WriteRune(waveGlyphs[level])
	}
	return lipgloss.NewStyle().Foreground(accentPrimary).Render(builder.String())
}
