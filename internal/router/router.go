package router

import (
	"fmt"
	"strings"
)

type Tab int

const (
	Home Tab = iota
	Games
	AI
	Music
	Profile
)

var tabs = []Tab{Home, Games, AI, Music, Profile}

func All() []Tab {
	return append([]Tab(nil), tabs...)
}

func (t Tab) ID() string {
	switch t {
	case Home:
		return "home"
	case Games:
		return "games"
	case AI:
		return "ai"
	case Music:
		return "music"
	case Profile:
		return "profile"
	default:
		return "unknown"
	}
}

func (t Tab) Label() string {
	switch t {
	case Home:
		return "Home"
	case Games:
		return "Games"
	case AI:
		return "AI Bot"
	case Music:
		return "Music"
	case Profile:
		return "Profile"
	default:
		return "Unknown"
	}
}

func (t Tab) String() string {
	return t.ID()
}

func (t Tab) Valid() bool {
	return t >= Home && t <= Profile
}

// Parse accepts a tab id or label, case-insensitively.
func Parse(raw string) (Tab, error) {
	clean := strings.ToLower(strings.TrimSpace(raw))
	for _, tab := range tabs {
		if clean == tab.ID() || clean == strings.ToLower(tab.Label()) {
			return tab, nil
		}
	}
	return Home, fmt.Errorf("unknown tab %q", raw)
}

// Router holds the active screen. Every change bumps the mount generation so
// screen state and pending timers from the previous screen can be discarded.
type Router struct {
	active Tab
	mount  uint64
}

func New(initial Tab) *Router {
	if !initial.Valid() {
		initial = Home
	}
	return &Router{active: initial, mount: 1}
}

func (r *Router) Active() Tab {
	return r.active
}

func (r *Router) Mount() uint64 {
	return r.mount
}

// Switch makes t active. It reports false when t is invalid or already active.
func (r *Router) Switch(t Tab) bool {
	if !t.Valid() || t == r.active {
		return false
	}
	r.active = t
	r.mount++
	return true
}

func (r *Router) Next() Tab {
	r.Switch(tabs[(int(r.active)+1)%len(tabs)])
	return r.active
}

func (r *Router) Prev() Tab {
	r.Switch(tabs[(int(r.active)-1+len(tabs))%len(tabs)])
	return r.active
}
