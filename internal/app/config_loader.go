package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfigFile reads a local JSON or YAML config file and requires a top-level object.
func LoadConfigFile(path string) (map[string]any, string, error) {
	rawPath := strings.TrimSpace(path)
	if rawPath == "" {
		return nil, "", fmt.Errorf("config file path is required")
	}
	if strings.Contains(rawPath, "://") {
		return nil, "", fmt.Errorf("only local filesystem paths are supported")
	}

	resolvedPath, err := filepath.Abs(rawPath)
	if err != nil {
		return nil, "", fmt.Errorf("resolve config path %q: %w", rawPath, err)
	}

	blob, err := os.ReadFile(resolvedPath)
	if err != nil {
		return nil, resolvedPath, fmt.Errorf("read config file %q: %w", resolvedPath, err)
	}

	var parsed any
	switch strings.ToLower(filepath.Ext(resolvedPath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(blob, &parsed); err != nil {
			return nil, resolvedPath, fmt.Errorf("parse config YAML %q: %w", resolvedPath, err)
		}
	default:
		// Numbers stay json.Number so large seeds survive the re-encode in DecodeConfig.
		dec := json.NewDecoder(bytes.NewReader(blob))
		dec.UseNumber()
		if err := dec.Decode(&parsed); err != nil {
			return nil, resolvedPath, fmt.Errorf("parse config JSON %q: %w", resolvedPath, err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, resolvedPath, fmt.Errorf("parse config JSON %q: unexpected data after top-level value", resolvedPath)
		}
	}

	cfg, ok := parsed.(map[string]any)
	if !ok {
		return nil, resolvedPath, fmt.Errorf("config must be a top-level object")
	}
	return cfg, resolvedPath, nil
}

// LoadConfig reads path and layers it over DefaultConfig.
func LoadConfig(path string) (Config, string, error) {
	raw, resolvedPath, err := LoadConfigFile(path)
	if err != nil {
		return Config{}, resolvedPath, err
	}
	cfg, err := DecodeConfig(raw)
	if err != nil {
		return Config{}, resolvedPath, fmt.Errorf("config %q: %w", resolvedPath, err)
	}
	return cfg, resolvedPath, nil
}

// DecodeConfig applies raw on top of the defaults and validates the result.
func DecodeConfig(raw map[string]any) (Config, error) {
	cfg := DefaultConfig()
	if len(raw) > 0 {
		blob, err := json.Marshal(raw)
		if err != nil {
			return Config{}, fmt.Errorf("normalize config: %w", err)
		}
		if err := json.Unmarshal(blob, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FormatConfigJSON renders the effective config as pretty-printed JSON.
func FormatConfigJSON(cfg Config) (string, error) {
	blob, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render config JSON: %w", err)
	}
	return string(blob), nil
}
