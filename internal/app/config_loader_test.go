package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigFileSuccess(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"boost":{"duration_ms":5000}}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, resolved, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile returned error: %v", err)
	}

	wantResolved, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("filepath.Abs: %v", err)
	}
	if resolved != wantResolved {
		t.Fatalf("resolved path mismatch: got %q want %q", resolved, wantResolved)
	}
	if _, ok := cfg["boost"].(map[string]any); !ok {
		t.Fatalf("expected boost object, got: %#v", cfg["boost"])
	}
}

func TestLoadConfigFileRejectsNonObjectJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`["not","an","object"]`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, _, err := LoadConfigFile(path)
	if err == nil {
		t.Fatalf("expected error for non-object JSON")
	}
	if !strings.Contains(err.Error(), "top-level object") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadConfigFileRejectsURL(t *testing.T) {
	t.Parallel()

	_, _, err := LoadConfigFile("https://example.com/config.json")
	if err == nil {
		t.Fatalf("expected URL rejection error")
	}
	if !strings.Contains(err.Error(), "local filesystem paths") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadConfigYAMLOverridesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "booster.yaml")
	body := strings.Join([]string{
		"start_tab: music",
		"boost:",
		"  duration_ms: 4500",
		"  targets:",
		"    fps: 144",
		"telemetry:",
		"  ranges:",
		"    fps:",
		"      min: 80",
		"      span: 20",
		"overlay:",
		"  mode: performance",
		"",
	}, "\n")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.StartTab != "music" {
		t.Fatalf("unexpected start tab %q", cfg.StartTab)
	}
	if cfg.BoostDuration() != 4500*time.Millisecond {
		t.Fatalf("unexpected boost duration %s", cfg.BoostDuration())
	}
	if cfg.Boost.Targets.FPS != 144 || cfg.Boost.Targets.CPUUsage != 25 {
		t.Fatalf("targets not layered over defaults: %+v", cfg.Boost.Targets)
	}
	if cfg.Telemetry.Ranges.FPS.Min != 80 || cfg.Telemetry.Ranges.Ping.Min != 15 {
		t.Fatalf("ranges not layered over defaults: %+v", cfg.Telemetry.Ranges)
	}
	if cfg.TelemetryInterval() != 1500*time.Millisecond {
		t.Fatalf("default telemetry interval lost: %s", cfg.TelemetryInterval())
	}
}

func TestDecodeConfigValidation(t *testing.T) {
	t.Parallel()

	_, err := DecodeConfig(map[string]any{
		"start_tab": "settings",
		"boost":     map[string]any{"step_interval_ms": 0},
		"chat":      map[string]any{"responses": []any{"ok", "  "}},
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{"start_tab", "boost.step_interval_ms", "chat.responses[1]"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in error: %v", want, err)
		}
	}
}

func TestFormatConfigJSONDefaults(t *testing.T) {
	t.Parallel()

	text, err := FormatConfigJSON(DefaultConfig())
	if err != nil {
		t.Fatalf("FormatConfigJSON returned error: %v", err)
	}
	if !strings.Contains(text, `"interval_ms": 1500`) {
		t.Fatalf("unexpected formatted text: %q", text)
	}
}

func TestLoadConfigKeepsLargeSeedExact(t *testing.T) {
	t.Parallel()

	const seed uint64 = 18446744073709551557
	dir := t.TempDir()
	files := map[string]string{
		"config.json": `{"seed": 18446744073709551557}`,
		"config.yaml": "seed: 18446744073709551557\n",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write file: %v", err)
		}
		cfg, _, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig(%s) returned error: %v", name, err)
		}
		if cfg.Seed != seed {
			t.Fatalf("%s: seed lost precision: got %d want %d", name, cfg.Seed, seed)
		}
	}
}

func TestLoadConfigFileRejectsTrailingJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"seed": 1} {"seed": 2}`), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, _, err := LoadConfigFile(path); err == nil {
		t.Fatalf("expected error for trailing JSON data")
	}
}
