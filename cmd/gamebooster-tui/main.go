package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gamebooster-tui/internal/app"
	"gamebooster-tui/internal/device"
	"gamebooster-tui/internal/storage"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON or YAML config file")
	dataDir := flag.String("data", "", "directory for boost history (default: working directory)")
	seed := flag.Uint64("seed", 0, "telemetry seed, 0 picks one from the clock")
	logPath := flag.String("log", "", "write debug logs to this file")
	noSplash := flag.Bool("no-splash", false, "skip the splash screen")
	printConfig := flag.Bool("print-config", false, "print the effective config as JSON and exit")
	flag.Parse()

	cfg, source, err := resolveStartupConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *noSplash {
		cfg.Splash.Skip = true
	}

	if *printConfig {
		text, err := app.FormatConfigJSON(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to render config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(text)
		return
	}

	if strings.TrimSpace(*logPath) != "" {
		logFile, err := tea.LogToFile(*logPath, "gamebooster")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	rootDir := strings.TrimSpace(*dataDir)
	if rootDir == "" {
		rootDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to determine working directory: %v\n", err)
			os.Exit(1)
		}
	}
	rootDir, _ = filepath.Abs(rootDir)

	store, err := storage.NewStore(rootDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize boost storage: %v\n", err)
		os.Exit(1)
	}
	log.Printf("boost history at %s", store.BoostsDir())

	model := app.NewModelWithOptions(app.ModelOptions{
		Config:     cfg,
		ConfigPath: source,
		Store:      store,
		Probe:      device.Probe,
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui exited with error: %v\n", err)
		os.Exit(1)
	}
}

// resolveStartupConfig returns the defaults when path is empty.
func resolveStartupConfig(path string) (app.Config, string, error) {
	if strings.TrimSpace(path) == "" {
		return app.DefaultConfig(), "", nil
	}
	return app.LoadConfig(path)
}
