package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagLimit int

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show recent leaderboard lines",
	Long: `Prints the last lines of the leaderboard file, oldest first,
exactly as they were written.

Examples:
  quest leaderboard
  quest leaderboard --limit 3
  quest leaderboard --leaderboard ./scores.txt`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().IntVar(&flagLimit, "limit", 0, "Number of lines (0 = from config)")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	board, err := openLeaderboard(cfg)
	if err != nil {
		return err
	}

	limit := flagLimit
	if limit <= 0 {
		limit = cfg.Leaderboard.RecentLimit
	}

	lines, err := board.ReadRecent(limit)
	if err != nil {
		return fmt.Errorf("reading leaderboard: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(lines) == 0 {
		fmt.Fprintln(out, "No results recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'quest play' to set the first one!")
		return nil
	}

	for _, line := range lines {
		// Lines keep their own newline.
		fmt.Fprint(out, line)
	}
	return nil
}
