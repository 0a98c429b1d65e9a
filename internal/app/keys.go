package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Quit    key.Binding
	TabNext key.Binding
	TabPrev key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	Tab4    key.Binding
	Tab5    key.Binding
	Help    key.Binding
	Boost   key.Binding
	Up      key.Binding
	Down    key.Binding
	Launch  key.Binding
	Focus   key.Binding
	Blur    key.Binding

	Play     key.Binding
	Shuffle  key.Binding
	Repeat   key.Binding
	SeekBack key.Binding
	SeekFwd  key.Binding
	VolUp    key.Binding
	VolDown  key.Binding
	Refresh  key.Binding

	Overlay       key.Binding
	OverlayMin    key.Binding
	OverlayExpand key.Binding
	OverlayMode   key.Binding
	OverlayDND    key.Binding
	OverlayRec    key.Binding
	OverlayNet    key.Binding
	BrightDown    key.Binding
	BrightUp      key.Binding
	OverlayVolDn  key.Binding
	OverlayVolUp  key.Binding
	NudgeUp       key.Binding
	NudgeDown     key.Binding
	NudgeLeft     key.Binding
	NudgeRight    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		TabNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		TabPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Tab1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1-5", "jump to tab")),
		Tab2:    key.NewBinding(key.WithKeys("2")),
		Tab3:    key.NewBinding(key.WithKeys("3")),
		Tab4:    key.NewBinding(key.WithKeys("4")),
		Tab5:    key.NewBinding(key.WithKeys("5")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Boost:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "boost")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Launch:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "launch/send")),
		Focus:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "type message")),
		Blur:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		Play:     key.NewBinding(key.WithKeys(" ", "space", "p"), key.WithHelp("space", "play/pause")),
		Shuffle:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Repeat:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "repeat")),
		SeekBack: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left", "seek -5%")),
		SeekFwd:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right", "seek +5%")),
		VolUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
		VolDown:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "volume down")),
		Refresh:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload history")),

		Overlay:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "overlay")),
		OverlayMin:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "compact overlay")),
		OverlayExpand: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "expand overlay")),
		OverlayMode:   key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "performance mode")),
		OverlayDND:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "do not disturb")),
		OverlayRec:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "record")),
		OverlayNet:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "wifi/data")),
		BrightDown:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "brightness -")),
		BrightUp:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "brightness +")),
		OverlayVolDn:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "overlay volume -")),
		OverlayVolUp:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "overlay volume +")),
		NudgeUp:       key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+arrows", "move overlay")),
		NudgeDown:     key.NewBinding(key.WithKeys("shift+down")),
		NudgeLeft:     key.NewBinding(key.WithKeys("shift+left")),
		NudgeRight:    key.NewBinding(key.WithKeys("shift+right")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TabNext, k.Boost, k.Overlay, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TabNext, k.TabPrev, k.Tab1, k.Boost, k.Help, k.Quit},
		{k.Up, k.Down, k.Launch, k.Focus, k.Blur, k.Refresh},
		{k.Play, k.Shuffle, k.Repeat, k.SeekBack, k.SeekFwd, k.VolUp, k.VolDown},
		{k.Overlay, k.OverlayMin, k.OverlayExpand, k.OverlayMode, k.OverlayDND, k.OverlayRec},
		{k.OverlayNet, k.BrightDown, k.BrightUp, k.OverlayVolDn, k.OverlayVolUp, k.NudgeUp},
	}
}

// tabIndex maps the digit shortcuts onto tab positions.
func (k keyMap) tabIndex(msg tea.KeyMsg) (int, bool) {
	for idx, binding := range []key.Binding{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Tab5} {
		if key.Matches(msg, binding) {
			return idx, true
		}
	}
	return 0, false
}
