package app

import (
	"fmt"
	"strings"
	"time"

	"gamebooster-tui/internal/catalog"
	"gamebooster-tui/internal/chat"
	"gamebooster-tui/internal/device"
	"gamebooster-tui/internal/music"
	"gamebooster-tui/internal/router"
	"gamebooster-tui/internal/storage"
	"gamebooster-tui/internal/telemetry"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/dustin/go-humanize"
)

const recentBoostsShown = 5

// screen is the state owned by the mounted tab. It is rebuilt from scratch on
// every mount.
type screen struct {
	tab   router.Tab
	mount uint64

	gameCursor int

	conversation *chat.Conversation
	chatInput    textinput.Model
	chatLog      viewport.Model

	player   *music.Player
	musicGen uint64

	profileView   viewport.Model
	historyCursor int
	bundle        *storage.BoostBundle
	device        device.Info
	deviceErr     error
	deviceReady   bool
}

func (m Model) newScreen(tab router.Tab, mount uint64) screen {
	s := screen{tab: tab, mount: mount}
	switch tab {
	case router.AI:
		s.conversation = chat.NewConversation(m.cfg.Chat.MaxMessages)
		input := textinput.New()
		input.Prompt = "> "
		input.Placeholder = "Ask about performance..."
		input.CharLimit = 500
		input.Width = 60
		input.Focus()
		s.chatInput = input
		s.chatLog = viewport.New(60, 10)
	case router.Music:
		s.player = music.NewPlayer(music.DefaultTrack, m.sim.Rand())
	case router.Profile:
		s.profileView = viewport.New(60, 12)
	}
	return s
}

func (m *Model) resizeScreen() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	innerW := maxInt(30, m.bodyWidth()-4)
	innerH := maxInt(4, m.bodyHeight()-1)
	switch m.screen.tab {
	case router.AI:
		m.screen.chatInput.Width = maxInt(10, innerW-4)
		m.screen.chatLog.Width = innerW
		m.screen.chatLog.Height = maxInt(3, innerH-3)
		m.refreshChatLog()
	case router.Profile:
		m.screen.profileView.Width = innerW
		m.screen.profileView.Height = innerH
		m.refreshProfileView()
	}
}

func (m *Model) refreshChatLog() {
	conv := m.screen.conversation
	if conv == nil {
		return
	}
	width := maxInt(10, m.screen.chatLog.Width)
	lines := make([]string, 0, conv.Len()*2)
	for _, msg := range conv.Messages() {
		speaker := userBubbleStyle.Render("You")
		if msg.IsBot {
			speaker = botBubbleStyle.Render("Booster AI")
		}
		lines = append(lines, speaker+" "+mutedTextStyle(msg.Timestamp.Format("15:04")))
		for _, segment := range wrapLineToWidth(msg.Text, width-2) {
			lines = append(lines, "  "+segment)
		}
	}
	if conv.Typing() {
		lines = append(lines, mutedTextStyle("Booster AI is typing..."))
	}
	m.screen.chatLog.SetContent(strings.Join(lines, "\n"))
	m.screen.chatLog.GotoBottom()
}

func (m *Model) refreshProfileView() {
	if m.screen.tab != router.Profile {
		return
	}
	m.screen.profileView.SetContent(m.renderProfileBody())
}

func (m Model) renderScreen() string {
	switch m.screen.tab {
	case router.Games:
		return m.renderGames()
	case router.AI:
		return m.renderChat()
	case router.Music:
		return m.renderMusic()
	case router.Profile:
		if m.screen.bundle != nil {
			return m.renderBoostDetail(m.screen.bundle)
		}
		return m.screen.profileView.View()
	default:
		return m.renderHome()
	}
}

func (m Model) renderHome() string {
	stats := m.stats
	innerW := maxInt(30, m.bodyWidth()-4)
	meterW := clampInt(innerW-24, 8, 30)
	trendW := maxInt(10, innerW-6)

	tempLabel := telemetry.DeviceTempStatus(stats.CPUTemp)
	tempLine := fmt.Sprintf("Device  %s  %d°C",
		gradeStyle(telemetry.DeviceTempGrade(stats.CPUTemp)).Render(tempLabel), stats.CPUTemp)
	battery := fmt.Sprintf("Battery %d%%", stats.Battery)
	if stats.Charging {
		battery += " (charging)"
	}
	batteryLine := gradeStyle(telemetry.BatteryGrade(stats.Battery)).Render(battery)

	fpsLine := fmt.Sprintf("FPS  %3d  %s  ping %dms",
		stats.FPS, gradeStyle(telemetry.FPSGrade(stats.FPS)).Render(telemetry.FPSGrade(stats.FPS).String()), stats.Ping)

	lines := []string{
		tempLine + "   " + batteryLine,
		fpsLine,
		fmt.Sprintf("CPU  %3d%% %s %d°C", stats.CPUUsage, renderUsageMeter(float64(stats.CPUUsage), meterW), stats.CPUTemp),
		fmt.Sprintf("GPU  %3d%% %s %d°C", stats.GPUUsage, renderUsageMeter(float64(stats.GPUUsage), meterW), stats.GPUTemp),
		fmt.Sprintf("RAM  %3d%% %s", stats.RAMUsage, renderUsageMeter(float64(stats.RAMUsage), meterW)),
	}
	fpsTop, fpsBottom := renderUsageWaveformRows(m.fpsHistory, trendW, 0, fpsWavePalette)
	lines = append(lines,
		"fps~ "+fpsTop,
		waveformContinuationPrefix+fpsBottom,
		"cpu~ "+renderUsageWaveform(m.cpuHistory, trendW, 1.3, cpuWavePalette),
		"tmp~ "+renderUsageWaveform(m.tempHistory, trendW, 2.1, tempWavePalette),
		"",
		m.renderBoostCard(meterW),
		"",
		"Quick actions: "+mutedTextStyle(strings.Join(catalog.QuickActions(), " | ")),
	)
	return strings.Join(lines, "\n")
}

func (m Model) renderBoostCard(meterW int) string {
	if m.booster.Boosting() {
		label := "Boosting"
		if game := m.booster.Game(); game != "" {
			label += " " + game
		}
		return statusStyle.Render(m.spinner.View()+" "+label) + " " +
			renderUsageMeter(m.boostProgress*100, meterW) +
			fmt.Sprintf(" %3.0f%%", clampFloat(m.boostProgress, 0, 1)*100)
	}
	line := statusStyle.Render("[ BOOST ]") + mutedTextStyle("  press b or enter")
	if m.lastResult != nil {
		line += "\n" + fmt.Sprintf("Last boost: %d -> %d FPS (+%d), %s",
			m.lastResult.Before.FPS, m.lastResult.After.FPS, m.lastResult.FPSGain(),
			m.lastResult.Duration().Round(100*time.Millisecond))
	}
	return line
}

func (m Model) renderGames() string {
	lines := []string{subHeaderStyle.Render("Game library  (up/down select, enter boost)"), ""}
	for idx, game := range m.games {
		lastPlayed := humanize.Time(m.startedAt.Add(-game.LastPlayed))
		line := fmt.Sprintf("%-16s %-14s +%d FPS  %s boosts",
			game.Name, lastPlayed, game.FPSGain, humanize.Comma(int64(game.BoostCount)))
		if idx == m.screen.gameCursor {
			lines = append(lines, selectedLineStyle.Render("> "+line))
			continue
		}
		lines = append(lines, "  "+line)
	}
	if m.booster.Boosting() {
		lines = append(lines, "", statusStyle.Render(m.spinner.View()+" Boosting "+m.booster.Game()))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderChat() string {
	hint := "enter send | esc stop typing"
	if !m.screen.chatInput.Focused() {
		hint = "i or enter to type | up/down scroll"
	}
	return strings.Join([]string{
		m.screen.chatLog.View(),
		m.screen.chatInput.View(),
		mutedTextStyle(hint),
	}, "\n")
}

func (m Model) renderMusic() string {
	player := m.screen.player
	if player == nil {
		return ""
	}
	innerW := maxInt(30, m.bodyWidth()-4)
	state := "Paused"
	if player.Playing {
		state = "Playing"
	}
	bars := player.Bars()
	if !player.Playing {
		for idx := range bars {
			bars[idx] = 0
		}
	}
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	return strings.Join([]string{
		panelTitleStyle.Render(player.Track.Title),
		subHeaderStyle.Render(player.Track.Artist),
		"",
		renderSpectrum(bars),
		"",
		fmt.Sprintf("%s %s %s",
			music.FormatClock(player.Elapsed()),
			renderUsageMeter(player.Progress, clampInt(innerW-16, 8, 48)),
			music.FormatClock(player.Track.Duration)),
		statusStyle.Render(state) + fmt.Sprintf("  shuffle %s  repeat %s  volume %d%%",
			onOff(player.Shuffle), onOff(player.Repeat), player.Volume),
		"",
		mutedTextStyle("space play/pause | s shuffle | r repeat | left/right seek | +/- volume"),
	}, "\n")
}

func (m Model) renderProfileBody() string {
	p := m.profile
	lines := []string{
		panelTitleStyle.Render(p.Name),
		subHeaderStyle.Render(fmt.Sprintf("%s - Level %d", p.Title, p.Level)),
		"",
		fmt.Sprintf("Boosts: %s   Games boosted: %d   FPS gained: %s   Time saved: %.1fh",
			humanize.Comma(int64(m.totals.Boosts)),
			m.totals.GamesBoosted,
			humanize.SIWithDigits(float64(m.totals.FPSGained), 1, ""),
			m.totals.TimeSaved.Hours()),
		"",
		panelTitleStyle.Render("Socials"),
	}
	for _, link := range p.Socials {
		lines = append(lines, fmt.Sprintf("  %-9s %-14s %s", link.Name, link.Handle, mutedTextStyle(link.URL)))
	}
	lines = append(lines, "", panelTitleStyle.Render("Partners"))
	for _, link := range p.Brands {
		lines = append(lines, fmt.Sprintf("  %-11s %s", link.Name, mutedTextStyle(link.URL)))
	}

	lines = append(lines, "", panelTitleStyle.Render("Device"))
	switch {
	case m.probe == nil:
		lines = append(lines, "  n/a")
	case !m.screen.deviceReady:
		lines = append(lines, mutedTextStyle("  probing..."))
	default:
		for _, line := range m.screen.device.Summary() {
			lines = append(lines, "  "+line)
		}
		if m.screen.deviceErr != nil {
			lines = append(lines, mutedTextStyle("  (partial: "+truncateText(m.screen.deviceErr.Error(), 48)+")"))
		}
	}

	lines = append(lines, "", panelTitleStyle.Render("Recent boosts")+mutedTextStyle("  up/down select, enter details"))
	if len(m.historyItems) == 0 {
		lines = append(lines, mutedTextStyle("  No saved boosts yet."))
	}
	for idx, item := range m.historyItems {
		if idx >= recentBoostsShown {
			break
		}
		when := item.SavedAt
		if savedAt, err := time.Parse(time.RFC3339Nano, item.SavedAt); err == nil {
			when = humanize.Time(savedAt)
		}
		game := item.Game
		if game == "" {
			game = "system"
		}
		line := fmt.Sprintf("%-16s %3d -> %3d FPS  %s", truncateText(game, 16), item.FPSBefore, item.FPSAfter, when)
		if idx == m.screen.historyCursor {
			lines = append(lines, selectedLineStyle.Render("> "+line))
			continue
		}
		lines = append(lines, "  "+line)
	}
	return strings.Join(lines, "\n")
}

// renderBoostDetail shows one saved boost with the telemetry curve recorded
// while it ran.
func (m Model) renderBoostDetail(bundle *storage.BoostBundle) string {
	summary := bundle.Summary
	game := summary.Game
	if game == "" {
		game = "system"
	}
	when := summary.SavedAt
	if savedAt, err := time.Parse(time.RFC3339Nano, summary.SavedAt); err == nil {
		when = savedAt.Local().Format("2006-01-02 15:04:05") + " (" + humanize.Time(savedAt) + ")"
	}
	trendW := maxInt(10, m.bodyWidth()-10)

	fps := make([]float64, 0, len(bundle.Samples))
	cpu := make([]float64, 0, len(bundle.Samples))
	temp := make([]float64, 0, len(bundle.Samples))
	for _, snap := range bundle.Samples {
		fps = append(fps, float64(snap.FPS)*100/float64(maxInt(1, m.cfg.Boost.Targets.FPS)))
		cpu = append(cpu, float64(snap.CPUUsage))
		temp = append(temp, float64(snap.CPUTemp))
	}

	lines := []string{
		panelTitleStyle.Render("Boost " + truncateText(summary.BoostID, 8)),
		subHeaderStyle.Render(game + " - " + when),
		"",
		fmt.Sprintf("FPS      %3d -> %3d  (+%d)", summary.FPSBefore, summary.FPSAfter, summary.FPSGain),
		fmt.Sprintf("CPU temp %3d -> %3d°C", bundle.Result.Before.CPUTemp, bundle.Result.After.CPUTemp),
		fmt.Sprintf("Ping     %3d -> %3dms", bundle.Result.Before.Ping, bundle.Result.After.Ping),
		fmt.Sprintf("Duration %s  steps %d  samples %d",
			(time.Duration(summary.DurationMS) * time.Millisecond).Round(100*time.Millisecond), summary.Steps, len(bundle.Samples)),
		"",
	}
	if len(bundle.Samples) == 0 {
		lines = append(lines, mutedTextStyle("No samples recorded."))
	} else {
		fpsTop, fpsBottom := renderUsageWaveformRows(fps, trendW, 0, fpsWavePalette)
		lines = append(lines,
			"fps~ "+fpsTop,
			waveformContinuationPrefix+fpsBottom,
			"cpu~ "+renderUsageWaveform(cpu, trendW, 1.3, cpuWavePalette),
			"tmp~ "+renderUsageWaveform(temp, trendW, 2.1, tempWavePalette),
		)
	}
	lines = append(lines, "", mutedTextStyle("esc back"))
	return strings.Join(lines, "\n")
}
