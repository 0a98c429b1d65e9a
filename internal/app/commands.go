package app

import (
	"context"
	"log"
	"time"

	"gamebooster-tui/internal/boost"
	"gamebooster-tui/internal/device"
	"gamebooster-tui/internal/storage"
	"gamebooster-tui/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	splashFrameInterval = time.Second / 30
	deviceProbeTimeout  = 2 * time.Second
	historyListLimit    = 200
)

type splashTickMsg struct {
	at time.Time
}

type telemetryTickMsg struct {
	at time.Time
}

type boostStepMsg struct {
	token boost.Token
}

type boostDoneMsg struct {
	token boost.Token
}

type chatReplyMsg struct {
	mount   uint64
	pending uint64
}

type musicTickMsg struct {
	mount uint64
	gen   uint64
}

type historyLoadedMsg struct {
	items []storage.BoostSummary
	err   error
}

type boostSavedMsg struct {
	summary storage.BoostSummary
	err     error
}

type bundleLoadedMsg struct {
	mount  uint64
	bundle *storage.BoostBundle
	err    error
}

type deviceProbedMsg struct {
	mount uint64
	info  device.Info
	err   error
}

func splashTickCmd() tea.Cmd {
	return tea.Tick(splashFrameInterval, func(at time.Time) tea.Msg {
		return splashTickMsg{at: at}
	})
}

func telemetryTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return telemetryTickMsg{at: at}
	})
}

func boostStepCmd(token boost.Token, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return boostStepMsg{token: token}
	})
}

func boostDoneCmd(token boost.Token, duration time.Duration) tea.Cmd {
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return boostDoneMsg{token: token}
	})
}

func chatReplyCmd(mount, pending uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return chatReplyMsg{mount: mount, pending: pending}
	})
}

func musicTickCmd(mount, gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return musicTickMsg{mount: mount, gen: gen}
	})
}

func loadHistoryCmd(store *storage.Store) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		items, err := store.List(historyListLimit)
		return historyLoadedMsg{items: items, err: err}
	}
}

func saveBoostCmd(store *storage.Store, result boost.Result, samples []telemetry.Snapshot) tea.Cmd {
	if store == nil {
		return nil
	}
	samples = append([]telemetry.Snapshot(nil), samples...)
	return func() tea.Msg {
		summary, err := store.SaveBoost(result, samples)
		if err != nil {
			log.Printf("save boost: %v", err)
		}
		return boostSavedMsg{summary: summary, err: err}
	}
}

func loadBundleCmd(store *storage.Store, mount uint64, directory string) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		bundle, err := store.LoadBundle(directory)
		return bundleLoadedMsg{mount: mount, bundle: bundle, err: err}
	}
}

type probeFunc func(ctx context.Context) (device.Info, error)

func probeDeviceCmd(mount uint64, probe probeFunc) tea.Cmd {
	if probe == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deviceProbeTimeout)
		defer cancel()
		info, err := probe(ctx)
		return deviceProbedMsg{mount: mount, info: info, err: err}
	}
}
