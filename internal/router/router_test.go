package router

import "testing"

func TestCycleReturnsToStart(t *testing.T) {
	t.Parallel()

	r := New(Home)
	seen := map[Tab]bool{}
	for i := 0; i < len(All()); i++ {
		seen[r.Next()] = true
	}
	if r.Active() != Home {
		t.Fatalf("expected to land back on home, got %s", r.Active())
	}
	if len(seen) != len(All()) {
		t.Fatalf("expected to visit every tab, visited %d", len(seen))
	}

	for i := 0; i < len(All()); i++ {
		r.Prev()
	}
	if r.Active() != Home {
		t.Fatalf("reverse cycle ended on %s", r.Active())
	}
}

func TestSwitchBumpsMountOnlyOnChange(t *testing.T) {
	t.Parallel()

	r := New(Home)
	start := r.Mount()
	if r.Switch(Home) {
		t.Fatalf("switching to the active tab should report no change")
	}
	if r.Mount() != start {
		t.Fatalf("redundant switch remounted the screen")
	}
	if !r.Switch(Music) {
		t.Fatalf("expected switch to music")
	}
	if r.Active() != Music || r.Mount() != start+1 {
		t.Fatalf("unexpected router state: active=%s mount=%d", r.Active(), r.Mount())
	}
	if r.Switch(Tab(42)) {
		t.Fatalf("invalid tab accepted")
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := map[string]Tab{
		"home":    Home,
		" GAMES ": Games,
		"ai":      AI,
		"AI Bot":  AI,
		"music":   Music,
		"Profile": Profile,
	}
	for raw, want := range cases {
		got, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("Parse(%q) = %s, want %s", raw, got, want)
		}
	}
	if _, err := Parse("settings"); err == nil {
		t.Fatalf("expected error for unknown tab")
	}
}
