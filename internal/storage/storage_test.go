package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gamebooster-tui/internal/boost"
	"gamebooster-tui/internal/telemetry"
)

func sampleResult(game string, start time.Time) boost.Result {
	before := telemetry.Initial()
	after := boost.DefaultTargets().Apply(before)
	return boost.Result{
		Game:       game,
		StartedAt:  start,
		FinishedAt: start.Add(3 * time.Second),
		Steps:      15,
		Before:     before,
		After:      after,
	}
}

func TestSaveBoostAndList(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	first, err := store.SaveBoost(sampleResult("PUBG Mobile", clock), []telemetry.Snapshot{telemetry.Initial()})
	if err != nil {
		t.Fatalf("SaveBoost returned error: %v", err)
	}
	clock = clock.Add(time.Minute)
	second, err := store.SaveBoost(sampleResult("", clock), nil)
	if err != nil {
		t.Fatalf("SaveBoost returned error: %v", err)
	}

	if first.FPSGain != 60 || first.DurationMS != 3000 || first.TempDrop != 7 {
		t.Fatalf("unexpected summary: %+v", first)
	}

	items, err := store.List(0)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(items))
	}
	if items[0].BoostID != second.BoostID {
		t.Fatalf("expected newest first, got %s", items[0].BoostID)
	}

	limited, err := store.List(1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit to apply, got %d", len(limited))
	}
}

func TestLoadBundleFallsBackToParts(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	summary, err := store.SaveBoost(sampleResult("Free Fire", time.Now()), []telemetry.Snapshot{telemetry.Initial()})
	if err != nil {
		t.Fatalf("SaveBoost returned error: %v", err)
	}
	if err := os.Remove(filepath.Join(summary.Directory, "bundle.json")); err != nil {
		t.Fatalf("remove bundle: %v", err)
	}

	bundle, err := store.LoadBundle(filepath.Base(summary.Directory))
	if err != nil {
		t.Fatalf("LoadBundle returned error: %v", err)
	}
	if bundle.Result.Game != "Free Fire" || len(bundle.Samples) != 1 {
		t.Fatalf("unexpected bundle: %+v", bundle)
	}
	if bundle.Summary.Directory != summary.Directory {
		t.Fatalf("directory mismatch: %q vs %q", bundle.Summary.Directory, summary.Directory)
	}

	if _, err := store.LoadBundle("  "); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}

func TestTotals(t *testing.T) {
	t.Parallel()

	totals := Summarize([]BoostSummary{
		{Game: "PUBG Mobile", FPSGain: 30},
		{Game: "pubg mobile", FPSGain: 10},
		{Game: "Free Fire", FPSGain: -5},
		{FPSGain: 20},
	})
	if totals.Boosts != 4 || totals.GamesBoosted != 2 || totals.FPSGained != 60 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals.TimeSaved != time.Hour {
		t.Fatalf("unexpected time saved: %s", totals.TimeSaved)
	}
}
