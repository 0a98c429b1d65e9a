package app

import (
	"fmt"
	"strings"

	"gamebooster-tui/internal/catalog"
	"gamebooster-tui/internal/router"
	"gamebooster-tui/internal/telemetry"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const splashBarWidth = 32

func (m Model) View() string {
	if !m.ready {
		return "Booting game booster..."
	}
	if m.splashActive {
		return m.renderSplash()
	}

	innerWidth := m.innerWidth()
	innerHeight := m.innerHeight()

	header := headerStyle.Render("Game Booster") + subHeaderStyle.Render(fmt.Sprintf("mode %s | %s", m.panel.Mode, m.panel.Network))

	statusPrefix := "*"
	if m.booster.Boosting() {
		statusPrefix = m.spinner.View()
	}
	statusBody := strings.TrimSpace(m.statusText)
	if statusBody == "" {
		statusBody = "Ready"
	}
	statusLine := statusStyle.Render(statusPrefix + " " + statusBody)
	if strings.TrimSpace(m.errorText) != "" {
		statusLine = errorStyle.Render(m.errorText)
	}

	body := renderPanel(
		m.screen.tab.Label(),
		fitTextHeight(m.renderScreen(), m.bodyHeight()-1),
		m.bodyWidth()-2,
		m.bodyHeight(),
		m.screen.tab == router.AI && m.screen.chatInput.Focused(),
	)

	m.help.Width = innerWidth
	parts := []string{header, statusLine, m.renderTabBar(), body, helpStyle.Render(m.help.View(m.keys))}
	page := lipgloss.NewStyle().
		Background(chromeBG).
		Foreground(chromeFG).
		Width(innerWidth).
		Height(innerHeight).
		Padding(0, 1).
		Render(fitTextHeight(strings.Join(parts, "\n"), innerHeight))

	if !m.panel.Visible {
		return page
	}
	return placeOver(page, m.renderOverlay(), m.panel.Position.X, m.panel.Position.Y)
}

func (m Model) renderTabBar() string {
	tabs := make([]string, 0, len(router.All()))
	for idx, tab := range router.All() {
		label := fmt.Sprintf("%d %s", idx+1, tab.Label())
		if tab == m.ActiveTab() {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, inactiveTabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderSplash() string {
	filled := clampInt(int(m.splashProgress*splashBarWidth+0.5), 0, splashBarWidth)
	bar := lipgloss.NewStyle().Foreground(accentPrimary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(waveformLow).Render(strings.Repeat("░", splashBarWidth-filled))
	card := splashStyle.Render(strings.Join([]string{
		panelTitleStyle.Render("GAME BOOSTER"),
		subHeaderStyle.Render("Optimizing your device..."),
		"",
		bar,
		"",
		mutedTextStyle("press any key to skip"),
	}, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) renderOverlay() string {
	size := m.panel.Size()
	innerW := size.W - 2
	innerH := size.H - 1

	style := overlayStyle
	if m.panel.Dragging() {
		style = overlayDragStyle
	}
	style = style.BorderTop(false).Width(innerW).Height(innerH)

	var lines []string
	if m.panel.Compact {
		lines = m.overlayCompactLines()
	} else {
		lines = m.overlayFullLines(innerW)
	}
	for idx, line := range lines {
		lines[idx] = ansi.Truncate(line, innerW, "")
	}
	return style.Render(fitTextHeight(strings.Join(lines, "\n"), innerH))
}

func (m Model) overlayCompactLines() []string {
	stats := m.stats
	return []string{
		statusStyle.Render("::") + fmt.Sprintf(" %d FPS  %d°C  %dms", stats.FPS, stats.CPUTemp, stats.Ping),
		mutedTextStyle(fmt.Sprintf("%s | C expand | o close", m.panel.Mode)),
	}
}

func (m Model) overlayFullLines(innerW int) []string {
	stats := m.stats
	meterW := maxInt(4, innerW-18)
	onOff := func(label string, v bool) string {
		if v {
			return statusStyle.Render(label)
		}
		return mutedTextStyle(label)
	}

	boostLine := statusStyle.Render("[B] boost ready")
	if m.booster.Boosting() {
		boostLine = statusStyle.Render(fmt.Sprintf("%s boosting %3.0f%%", m.spinner.View(), clampFloat(m.boostProgress, 0, 1)*100))
	}

	lines := []string{
		statusStyle.Render(":: Game Booster") + mutedTextStyle("  drag here"),
		fmt.Sprintf("FPS %s  Ping %dms  Bat %d%%",
			gradeStyle(telemetry.FPSGrade(stats.FPS)).Render(fmt.Sprintf("%3d", stats.FPS)), stats.Ping, stats.Battery),
		fmt.Sprintf("CPU %s %3d%% %s",
			gradeStyle(telemetry.TempGrade(stats.CPUTemp)).Render(fmt.Sprintf("%2d°C", stats.CPUTemp)),
			stats.CPUUsage, renderUsageMeter(float64(stats.CPUUsage), meterW)),
		fmt.Sprintf("GPU %s %3d%% %s",
			gradeStyle(telemetry.TempGrade(stats.GPUTemp)).Render(fmt.Sprintf("%2d°C", stats.GPUTemp)),
			stats.GPUUsage, renderUsageMeter(float64(stats.GPUUsage), meterW)),
		fmt.Sprintf("RAM      %3d%% %s", stats.RAMUsage, renderUsageMeter(float64(stats.RAMUsage), meterW)),
		"",
		"Mode: " + panelTitleStyle.Render(m.panel.Mode.String()),
		onOff("DND", m.panel.DND) + "  " + onOff("REC", m.panel.Recording) + "  " + m.panel.Network.String(),
		fmt.Sprintf("Bright %3d%%  Vol %3d%%", m.panel.Brightness, m.panel.Volume),
		boostLine,
	}
	if m.panel.Expanded {
		lines = append(lines, "", panelTitleStyle.Render("Recent games"))
		for _, name := range catalog.RecentGames() {
			lines = append(lines, "  "+name)
		}
	}
	lines = append(lines, mutedTextStyle("C compact E more M mode"))
	return lines
}

func (m Model) innerWidth() int {
	return maxInt(40, m.width-2)
}

func (m Model) innerHeight() int {
	return maxInt(12, m.height-1)
}

// bodyWidth is the width available inside the page padding.
func (m Model) bodyWidth() int {
	return m.innerWidth() - 2
}

// bodyHeight is the height of the screen panel, title row included.
func (m Model) bodyHeight() int {
	helpLines := 1
	if m.help.ShowAll {
		helpLines = 7
	}
	return maxInt(6, m.innerHeight()-3-helpLines-2)
}
