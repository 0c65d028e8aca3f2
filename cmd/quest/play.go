package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pharmacy-quest/internal/core"
	"github.com/vovakirdan/pharmacy-quest/internal/platform/tui"
	"github.com/vovakirdan/pharmacy-quest/internal/quest"
	"github.com/vovakirdan/pharmacy-quest/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Mouse click     - Pick an item, press a button
  Up/Down, Enter  - Menu navigation
  Enter           - Save your name
  Esc/B           - Back from the leaderboard
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit (only Ctrl+C while typing a name)

Examples:
  quest play
  quest play --levels ./my-levels.yaml
  quest play --leaderboard ./scores.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// A malformed catalog is fatal before the terminal is taken over.
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("level catalog: %w", err)
	}

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(cfg.Log.Path); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, cfg.Log.Level)

	board, err := openLeaderboard(cfg)
	if err != nil {
		return err
	}

	engine := quest.NewEngine(catalog, board, settingsFrom(cfg), logger)

	if cfg.History.Enabled {
		store, err := storage.Open(cfg.History.Path)
		if err != nil {
			// Continue without the archive - the leaderboard file still works
			logger.Warn("could not open history database", "error", err, "path", cfg.History.Path)
		} else {
			defer store.Close()
			engine.SetArchive(store)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}

	logger.Info("starting", "levels", catalog.Count(), "items", catalog.TotalItems(),
		"leaderboard", board.Path())

	if err := tui.Run(engine, rc, logger); err != nil {
		logger.Error("terminal host failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
