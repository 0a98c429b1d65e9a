package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gamebooster-tui/internal/boost"
	"gamebooster-tui/internal/catalog"
	"gamebooster-tui/internal/chat"
	"gamebooster-tui/internal/device"
	"gamebooster-tui/internal/overlay"
	"gamebooster-tui/internal/router"
	"gamebooster-tui/internal/storage"
	"gamebooster-tui/internal/telemetry"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

type ModelOptions struct {
	Config     Config
	ConfigPath string
	Store      *storage.Store
	// Probe reads host details for the profile screen. Nil disables the card.
	Probe func(ctx context.Context) (device.Info, error)
	Now   func() time.Time
}

type Model struct {
	cfg   Config
	store *storage.Store
	probe func(ctx context.Context) (device.Info, error)

	sim       *telemetry.Simulator
	booster   *boost.Controller
	router    *router.Router
	panel     *overlay.Panel
	responder *chat.Responder
	profile   catalog.Profile
	games     []catalog.Game

	ready  bool
	width  int
	height int

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	splashActive   bool
	splashStarted  time.Time
	splashProgress float64
	splashVel      float64
	splashSpring   harmonica.Spring

	boostProgress float64
	boostVel      float64
	boostSpring   harmonica.Spring
	boostSamples  []telemetry.Snapshot
	lastResult    *boost.Result

	stats       telemetry.Snapshot
	fpsHistory  []float64
	cpuHistory  []float64
	tempHistory []float64

	screen screen

	historyItems []storage.BoostSummary
	totals       storage.Totals

	statusText string
	errorText  string
	startedAt  time.Time
}

func NewModelWithOptions(opts ModelOptions) Model {
	cfg := opts.Config
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(now().UnixNano())
	}

	startTab, err := router.Parse(cfg.StartTab)
	if err != nil {
		startTab = router.Home
	}
	mode, err := overlay.ParsePerformanceMode(cfg.Overlay.Mode)
	if err != nil {
		mode = overlay.ModeBalanced
	}

	sim := telemetry.NewSimulator(cfg.Telemetry.Ranges, seed)
	panel := overlay.NewPanel(cfg.Overlay.Origin)
	panel.Visible = cfg.Overlay.Visible
	panel.Compact = cfg.Overlay.Compact
	panel.Mode = mode

	responses := cfg.Chat.Responses
	if len(responses) == 0 {
		responses = chat.DefaultResponses
	}

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = lipgloss.NewStyle().Foreground(accentSecondary)

	stats := telemetry.Initial()
	stats.Charging = cfg.Telemetry.Charging

	stepFPS := 5
	if step := cfg.BoostStepInterval(); step > 0 {
		stepFPS = maxInt(1, int(time.Second/step))
	}

	m := Model{
		cfg:          cfg,
		store:        opts.Store,
		probe:        opts.Probe,
		sim:          sim,
		booster:      boost.NewController(cfg.Boost.Targets),
		router:       router.New(startTab),
		panel:        panel,
		responder:    chat.NewResponder(responses, sim.Rand()),
		profile:      catalog.DefaultProfile(),
		games:        catalog.Games(),
		keys:         defaultKeyMap(),
		help:         help.New(),
		spinner:      spin,
		splashActive: !cfg.Splash.Skip && cfg.Splash.DurationMS > 0,
		splashSpring: harmonica.NewSpring(harmonica.FPS(30), 8.0, 0.72),
		boostSpring:  harmonica.NewSpring(harmonica.FPS(stepFPS), 6.0, 1.0),
		stats:        stats,
		statusText:   "Ready. Press b to boost.",
		startedAt:    now(),
	}
	m.splashStarted = m.startedAt
	if strings.TrimSpace(opts.ConfigPath) != "" {
		m.statusText = "Loaded config from " + opts.ConfigPath
	}
	m.recordSample(stats)
	m.screen = m.newScreen(m.router.Active(), m.router.Mount())
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		telemetryTickCmd(m.cfg.TelemetryInterval()),
		loadHistoryCmd(m.store),
		m.mountCmd(),
	}
	if m.splashActive {
		cmds = append(cmds, splashTickCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.panel.Reclamp(m.viewportSize())
		m.resizeScreen()
		return m, nil

	case splashTickMsg:
		if !m.splashActive {
			return m, nil
		}
		m.splashProgress, m.splashVel = m.splashSpring.Update(m.splashProgress, m.splashVel, 1.0)
		if msg.at.Sub(m.splashStarted) >= m.cfg.SplashDuration() && m.splashProgress >= 0.995 {
			m.dismissSplash()
			return m, nil
		}
		return m, splashTickCmd()

	case spinner.TickMsg:
		if !m.booster.Boosting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case telemetryTickMsg:
		if !m.booster.Boosting() {
			m.stats = m.sim.Tick(m.stats)
			m.recordSample(m.stats)
		}
		return m, telemetryTickCmd(m.cfg.TelemetryInterval())

	case boostStepMsg:
		snap, ok := m.booster.Step(msg.token, m.stats, m.sim.Rand())
		if !ok {
			return m, nil
		}
		m.stats = snap
		m.recordSample(snap)
		m.boostSamples = append(m.boostSamples, snap)
		target := float64(len(m.boostSamples)) * float64(m.cfg.Boost.StepIntervalMS) / float64(maxInt(1, m.cfg.Boost.DurationMS))
		m.boostProgress, m.boostVel = m.boostSpring.Update(m.boostProgress, m.boostVel, clampFloat(target, 0, 1))
		return m, boostStepCmd(msg.token, m.cfg.BoostStepInterval())

	case boostDoneMsg:
		snap, result, ok := m.booster.Finish(msg.token, m.stats)
		if !ok {
			return m, nil
		}
		m.stats = snap
		m.recordSample(snap)
		m.boostSamples = append(m.boostSamples, snap)
		m.boostProgress, m.boostVel = 1, 0
		m.lastResult = &result
		m.errorText = ""
		m.statusText = fmt.Sprintf("Boost complete: %d -> %d FPS", result.Before.FPS, result.After.FPS)
		if result.Game != "" {
			m.statusText += " for " + result.Game
		}
		log.Printf("boost finished game=%q steps=%d gain=%d", result.Game, result.Steps, result.FPSGain())
		return m, saveBoostCmd(m.store, result, m.boostSamples)

	case boostSavedMsg:
		if msg.err != nil {
			m.errorText = "Failed to save boost: " + msg.err.Error()
			return m, nil
		}
		m.statusText = "Boost saved as " + msg.summary.BoostID
		return m, loadHistoryCmd(m.store)

	case historyLoadedMsg:
		if msg.err != nil {
			m.errorText = "Failed to load boost history: " + msg.err.Error()
			return m, nil
		}
		m.historyItems = append([]storage.BoostSummary(nil), msg.items...)
		m.totals = storage.Summarize(m.historyItems)
		m.screen.historyCursor = clampInt(m.screen.historyCursor, 0, maxInt(0, m.recentBoostCount()-1))
		m.refreshProfileView()
		return m, nil

	case chatReplyMsg:
		if m.screen.tab != router.AI || msg.mount != m.screen.mount || m.screen.conversation == nil {
			return m, nil
		}
		if _, ok := m.screen.conversation.Reply(msg.pending, m.responder.Pick()); ok {
			m.refreshChatLog()
		}
		return m, nil

	case musicTickMsg:
		player := m.screen.player
		if player == nil || msg.mount != m.screen.mount || msg.gen != m.screen.musicGen {
			return m, nil
		}
		player.Advance()
		if !player.Playing {
			m.statusText = "Playback finished"
			return m, nil
		}
		return m, musicTickCmd(m.screen.mount, m.screen.musicGen, m.cfg.MusicTick())

	case bundleLoadedMsg:
		if msg.mount != m.screen.mount || m.screen.tab != router.Profile {
			return m, nil
		}
		if msg.err != nil {
			m.errorText = "Failed to load boost: " + msg.err.Error()
			return m, nil
		}
		m.errorText = ""
		m.screen.bundle = msg.bundle
		m.statusText = "Loaded boost " + truncateText(msg.bundle.Summary.BoostID, 8)
		return m, nil

	case deviceProbedMsg:
		if msg.mount != m.screen.mount || m.screen.tab != router.Profile {
			return m, nil
		}
		m.screen.device = msg.info
		m.screen.deviceErr = msg.err
		m.screen.deviceReady = true
		if msg.err != nil {
			log.Printf("device probe: %v", msg.err)
		}
		m.refreshProfileView()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.screen.tab == router.AI {
		var cmd tea.Cmd
		m.screen.chatInput, cmd = m.screen.chatInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		cmd := m.quit()
		return m, cmd
	}
	if m.splashActive {
		m.dismissSplash()
		return m, nil
	}

	if m.screen.tab == router.AI && m.screen.chatInput.Focused() {
		switch {
		case key.Matches(msg, m.keys.Blur):
			m.screen.chatInput.Blur()
			return m, nil
		case key.Matches(msg, m.keys.Launch):
			cmd := m.submitChat()
			return m, cmd
		case key.Matches(msg, m.keys.TabNext):
			m.router.Next()
			cmd := m.remount()
			return m, cmd
		case key.Matches(msg, m.keys.TabPrev):
			m.router.Prev()
			cmd := m.remount()
			return m, cmd
		}
		var cmd tea.Cmd
		m.screen.chatInput, cmd = m.screen.chatInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		cmd := m.quit()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil
	case key.Matches(msg, m.keys.TabNext):
		m.router.Next()
		cmd := m.remount()
		return m, cmd
	case key.Matches(msg, m.keys.TabPrev):
		m.router.Prev()
		cmd := m.remount()
		return m, cmd
	case key.Matches(msg, m.keys.Boost):
		cmd := m.triggerBoost("")
		return m, cmd
	case key.Matches(msg, m.keys.Overlay):
		m.panel.Toggle(m.viewportSize())
		return m, nil
	}
	if idx, ok := m.keys.tabIndex(msg); ok {
		cmd := m.switchTab(router.All()[idx])
		return m, cmd
	}
	if m.panel.Visible {
		if handled := m.handleOverlayKey(msg); handled {
			return m, nil
		}
	}
	return m.handleScreenKey(msg)
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) bool {
	viewport := m.viewportSize()
	switch {
	case key.Matches(msg, m.keys.OverlayMin):
		m.panel.SetCompact(!m.panel.Compact, viewport)
	case key.Matches(msg, m.keys.OverlayExpand):
		m.panel.ToggleExpanded(viewport)
	case key.Matches(msg, m.keys.OverlayMode):
		m.statusText = "Performance mode: " + m.panel.CycleMode().String()
	case key.Matches(msg, m.keys.OverlayDND):
		m.panel.DND = !m.panel.DND
	case key.Matches(msg, m.keys.OverlayRec):
		m.panel.Recording = !m.panel.Recording
	case key.Matches(msg, m.keys.OverlayNet):
		m.statusText = "Network: " + m.panel.ToggleNetwork().String()
	case key.Matches(msg, m.keys.BrightDown):
		m.panel.AdjustBrightness(-1)
	case key.Matches(msg, m.keys.BrightUp):
		m.panel.AdjustBrightness(1)
	case key.Matches(msg, m.keys.OverlayVolDn):
		m.panel.AdjustVolume(-1)
	case key.Matches(msg, m.keys.OverlayVolUp):
		m.panel.AdjustVolume(1)
	case key.Matches(msg, m.keys.NudgeUp):
		m.panel.Nudge(0, -1, viewport)
	case key.Matches(msg, m.keys.NudgeDown):
		m.panel.Nudge(0, 1, viewport)
	case key.Matches(msg, m.keys.NudgeLeft):
		m.panel.Nudge(-1, 0, viewport)
	case key.Matches(msg, m.keys.NudgeRight):
		m.panel.Nudge(1, 0, viewport)
	default:
		return false
	}
	return true
}

func (m Model) handleScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen.tab {
	case router.Home:
		if key.Matches(msg, m.keys.Launch) {
			cmd := m.triggerBoost("")
			return m, cmd
		}

	case router.Games:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.screen.gameCursor = clampInt(m.screen.gameCursor-1, 0, len(m.games)-1)
		case key.Matches(msg, m.keys.Down):
			m.screen.gameCursor = clampInt(m.screen.gameCursor+1, 0, len(m.games)-1)
		case key.Matches(msg, m.keys.Launch):
			if len(m.games) == 0 {
				return m, nil
			}
			cmd := m.triggerBoost(m.games[m.screen.gameCursor].Name)
			return m, cmd
		}

	case router.AI:
		switch {
		case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Launch):
			cmd := m.screen.chatInput.Focus()
			return m, cmd
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.screen.chatLog, cmd = m.screen.chatLog.Update(msg)
			return m, cmd
		}

	case router.Music:
		cmd := m.handleMusicKey(msg)
		return m, cmd

	case router.Profile:
		switch {
		case key.Matches(msg, m.keys.Refresh):
			m.statusText = "Reloading boost history..."
			return m, loadHistoryCmd(m.store)
		case m.screen.bundle != nil:
			if key.Matches(msg, m.keys.Blur) {
				m.screen.bundle = nil
			}
			return m, nil
		case key.Matches(msg, m.keys.Launch):
			if len(m.historyItems) == 0 {
				return m, nil
			}
			item := m.historyItems[m.screen.historyCursor]
			return m, loadBundleCmd(m.store, m.screen.mount, item.Directory)
		case key.Matches(msg, m.keys.Up) && len(m.historyItems) > 0:
			m.screen.historyCursor = clampInt(m.screen.historyCursor-1, 0, m.recentBoostCount()-1)
			m.refreshProfileView()
			return m, nil
		case key.Matches(msg, m.keys.Down) && len(m.historyItems) > 0:
			m.screen.historyCursor = clampInt(m.screen.historyCursor+1, 0, m.recentBoostCount()-1)
			m.refreshProfileView()
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.screen.profileView, cmd = m.screen.profileView.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) handleMusicKey(msg tea.KeyMsg) tea.Cmd {
	player := m.screen.player
	if player == nil {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Play):
		if !player.TogglePlay() {
			m.screen.musicGen++
			return nil
		}
		m.screen.musicGen++
		return musicTickCmd(m.screen.mount, m.screen.musicGen, m.cfg.MusicTick())
	case key.Matches(msg, m.keys.Shuffle):
		player.ToggleShuffle()
	case key.Matches(msg, m.keys.Repeat):
		player.ToggleRepeat()
	case key.Matches(msg, m.keys.SeekBack):
		player.SeekBack()
	case key.Matches(msg, m.keys.SeekFwd):
		player.SeekForward()
	case key.Matches(msg, m.keys.VolUp):
		player.SetVolume(player.Volume + 10)
	case key.Matches(msg, m.keys.VolDown):
		player.SetVolume(player.Volume - 10)
	}
	return nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.splashActive {
		return m, nil
	}
	at := overlay.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.panel.PointerDown(at) {
			return m, nil
		}
	case tea.MouseActionMotion:
		if m.panel.PointerMove(at, m.viewportSize()) {
			return m, nil
		}
	case tea.MouseActionRelease:
		if m.panel.PointerUp() {
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.screen.tab {
	case router.AI:
		m.screen.chatLog, cmd = m.screen.chatLog.Update(msg)
	case router.Profile:
		m.screen.profileView, cmd = m.screen.profileView.Update(msg)
	}
	return m, cmd
}

func (m *Model) triggerBoost(game string) tea.Cmd {
	token, ok := m.booster.Trigger(m.stats, game)
	if !ok {
		m.statusText = "Boost already running"
		return nil
	}
	m.boostSamples = []telemetry.Snapshot{m.stats}
	m.boostProgress, m.boostVel = 0, 0
	m.errorText = ""
	m.statusText = "Boosting..."
	if game != "" {
		m.statusText = "Boosting " + game + "..."
	}
	log.Printf("boost started game=%q token=%d", game, token)
	return tea.Batch(
		boostStepCmd(token, m.cfg.BoostStepInterval()),
		boostDoneCmd(token, m.cfg.BoostDuration()),
		m.spinner.Tick,
	)
}

func (m *Model) submitChat() tea.Cmd {
	conv := m.screen.conversation
	if conv == nil {
		return nil
	}
	_, pending, ok := conv.Submit(m.screen.chatInput.Value())
	if !ok {
		return nil
	}
	m.screen.chatInput.Reset()
	m.refreshChatLog()
	return chatReplyCmd(m.screen.mount, pending, m.cfg.ChatReplyDelay())
}

func (m *Model) switchTab(t router.Tab) tea.Cmd {
	if !m.router.Switch(t) {
		return nil
	}
	return m.remount()
}

// remount replaces the screen state after the router changed tabs. Timers
// still in flight carry the old mount and are dropped on arrival.
func (m *Model) remount() tea.Cmd {
	if m.screen.mount == m.router.Mount() {
		return nil
	}
	m.screen = m.newScreen(m.router.Active(), m.router.Mount())
	m.resizeScreen()
	return m.mountCmd()
}

func (m Model) mountCmd() tea.Cmd {
	switch m.screen.tab {
	case router.AI:
		return textinput.Blink
	case router.Profile:
		return tea.Batch(loadHistoryCmd(m.store), probeDeviceCmd(m.screen.mount, m.probe))
	}
	return nil
}

func (m *Model) dismissSplash() {
	m.splashActive = false
	m.splashProgress, m.splashVel = 1, 0
}

func (m *Model) quit() tea.Cmd {
	m.booster.Cancel()
	m.panel.Hide()
	return tea.Quit
}

func (m *Model) recordSample(snap telemetry.Snapshot) {
	m.fpsHistory = appendUsageSample(m.fpsHistory, float64(snap.FPS)*100/float64(maxInt(1, m.cfg.Boost.Targets.FPS)), historySamples)
	m.cpuHistory = appendUsageSample(m.cpuHistory, float64(snap.CPUUsage), historySamples)
	m.tempHistory = appendUsageSample(m.tempHistory, float64(snap.CPUTemp), historySamples)
}

func (m Model) recentBoostCount() int {
	if len(m.historyItems) < recentBoostsShown {
		return len(m.historyItems)
	}
	return recentBoostsShown
}

func (m Model) viewportSize() overlay.Size {
	return overlay.Size{W: m.width, H: m.height}
}

// Stats returns the current telemetry snapshot.
func (m Model) Stats() telemetry.Snapshot {
	return m.stats
}

func (m Model) ActiveTab() router.Tab {
	return m.router.Active()
}

func (m Model) Boosting() bool {
	return m.booster.Boosting()
}
