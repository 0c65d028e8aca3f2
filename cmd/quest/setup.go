package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pharmacy-quest/internal/config"
	"github.com/vovakirdan/pharmacy-quest/internal/leaderboard"
	"github.com/vovakirdan/pharmacy-quest/internal/quest"
)

// loadConfig reads the application config and applies flag overrides.
func loadConfig() (config.AppConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLeaderboard != "" {
		cfg.Leaderboard.Path = flagLeaderboard
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, nil
}

// loadCatalog returns the custom level catalog when --levels is set,
// the built-in one otherwise.
func loadCatalog() (*quest.Catalog, error) {
	if flagLevels == "" {
		return quest.DefaultCatalog(), nil
	}
	return quest.LoadCatalogFile(flagLevels)
}

// openLeaderboard builds the file store from the config.
func openLeaderboard(cfg config.AppConfig) (*leaderboard.FileStore, error) {
	path, err := config.ExpandHome(cfg.Leaderboard.Path)
	if err != nil {
		return nil, err
	}
	return leaderboard.NewFileStore(path, cfg.Leaderboard.UnitLabel), nil
}

// settingsFrom maps the config onto engine rules.
func settingsFrom(cfg config.AppConfig) quest.Settings {
	s := quest.DefaultSettings()
	s.TransitionDelay = cfg.Timing.TransitionDelay()
	s.BlinkInterval = cfg.Timing.BlinkInterval()
	s.RecentLimit = cfg.Leaderboard.RecentLimit
	return s
}

// newLogger builds the logger used by every command.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "quest",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openLogFile opens the log file for appending. The TUI owns the terminal,
// so the interactive game never logs to stderr.
func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}
