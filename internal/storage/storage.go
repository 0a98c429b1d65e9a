package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gamebooster-tui/internal/boost"
	"gamebooster-tui/internal/telemetry"

	"github.com/google/uuid"
)

type Store struct {
	rootDir   string
	boostsDir string
	now       func() time.Time
}

type BoostSummary struct {
	BoostID    string `json:"boost_id"`
	SavedAt    string `json:"saved_at"`
	Game       string `json:"game"`
	FPSBefore  int    `json:"fps_before"`
	FPSAfter   int    `json:"fps_after"`
	FPSGain    int    `json:"fps_gain"`
	TempDrop   int    `json:"temp_drop"`
	DurationMS int64  `json:"duration_ms"`
	Steps      int    `json:"steps"`
	Directory  string `json:"directory"`
}

type BoostBundle struct {
	Summary BoostSummary         `json:"summary"`
	Result  boost.Result         `json:"result"`
	Samples []telemetry.Snapshot `json:"samples"`
}

// Totals aggregates the saved history for the profile screen.
type Totals struct {
	Boosts       int
	GamesBoosted int
	FPSGained    int
	TimeSaved    time.Duration
}

func NewStore(rootDir string) (*Store, error) {
	boostsDir := filepath.Join(rootDir, "boosts")
	if err := os.MkdirAll(boostsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create boosts dir: %w", err)
	}
	return &Store{rootDir: rootDir, boostsDir: boostsDir, now: time.Now}, nil
}

func (s *Store) BoostsDir() string {
	return s.boostsDir
}

// SaveBoost writes one completed boost as a bundle directory and returns its summary.
func (s *Store) SaveBoost(result boost.Result, samples []telemetry.Snapshot) (BoostSummary, error) {
	boostID := uuid.NewString()
	now := s.now().UTC()
	stamp := now.Format("20060102-150405")
	dirName := fmt.Sprintf("%s-%s", stamp, boostID[:8])
	dirPath := filepath.Join(s.boostsDir, dirName)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return BoostSummary{}, fmt.Errorf("create boost bundle dir: %w", err)
	}

	summary := BoostSummary{
		BoostID:    boostID,
		SavedAt:    now.Format(time.RFC3339Nano),
		Game:       strings.TrimSpace(result.Game),
		FPSBefore:  result.Before.FPS,
		FPSAfter:   result.After.FPS,
		FPSGain:    result.FPSGain(),
		TempDrop:   result.Before.CPUTemp - result.After.CPUTemp,
		DurationMS: result.Duration().Milliseconds(),
		Steps:      result.Steps,
		Directory:  dirPath,
	}
	if samples == nil {
		samples = []telemetry.Snapshot{}
	}

	if err := writeJSON(filepath.Join(dirPath, "summary.json"), summary); err != nil {
		return BoostSummary{}, err
	}
	if err := writeJSON(filepath.Join(dirPath, "result.json"), result); err != nil {
		return BoostSummary{}, err
	}
	if err := writeJSON(filepath.Join(dirPath, "samples.json"), samples); err != nil {
		return BoostSummary{}, err
	}

	bundle := BoostBundle{
		Summary: summary,
		Result:  result,
		Samples: samples,
	}
	if err := writeJSON(filepath.Join(dirPath, "bundle.json"), bundle); err != nil {
		return BoostSummary{}, err
	}
	return summary, nil
}

func (s *Store) List(limit int) ([]BoostSummary, error) {
	entries, err := os.ReadDir(s.boostsDir)
	if err != nil {
		return nil, fmt.Errorf("read boosts dir: %w", err)
	}

	summaries := make([]BoostSummary, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		var summary BoostSummary
		if err := readJSON(filepath.Join(s.boostsDir, entry.Name(), "summary.json"), &summary); err != nil {
			continue
		}
		if summary.Directory == "" {
			summary.Directory = filepath.Join(s.boostsDir, entry.Name())
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].SavedAt > summaries[j].SavedAt
	})

	if limit > 0 && len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

func (s *Store) LoadBundle(directory string) (*BoostBundle, error) {
	dir := strings.TrimSpace(directory)
	if dir == "" {
		return nil, fmt.Errorf("directory is required")
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.boostsDir, dir)
	}

	var bundle BoostBundle
	if err := readJSON(filepath.Join(dir, "bundle.json"), &bundle); err == nil {
		if bundle.Summary.Directory == "" {
			bundle.Summary.Directory = dir
		}
		return &bundle, nil
	}

	var summary BoostSummary
	if err := readJSON(filepath.Join(dir, "summary.json"), &summary); err != nil {
		return nil, err
	}
	var result boost.Result
	if err := readJSON(filepath.Join(dir, "result.json"), &result); err != nil {
		return nil, err
	}
	var samples []telemetry.Snapshot
	_ = readJSON(filepath.Join(dir, "samples.json"), &samples)

	summary.Directory = dir
	return &BoostBundle{Summary: summary, Result: result, Samples: samples}, nil
}

// Summarize folds summaries into totals. Time saved counts one minute per
// frame-per-second gained, the same rough figure the profile card shows.
func Summarize(summaries []BoostSummary) Totals {
	totals := Totals{Boosts: len(summaries)}
	games := map[string]bool{}
	for _, summary := range summaries {
		if summary.Game != "" {
			games[strings.ToLower(summary.Game)] = true
		}
		if summary.FPSGain > 0 {
			totals.FPSGained += summary.FPSGain
		}
	}
	totals.GamesBoosted = len(games)
	totals.TimeSaved = time.Duration(totals.FPSGained) * time.Minute
	return totals
}

func writeJSON(path string, value any) error {
	blob, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json for %s: %w", path, err)
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, out any) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(blob, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
