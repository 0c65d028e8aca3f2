// quest is a hidden-object game played in the terminal: find the medicines
// on the pharmacy shelves across three levels and sign the leaderboard.
//
// Usage:
//
//	quest                      - Play (same as quest play)
//	quest play                 - Play the game
//	quest levels               - List the level catalog
//	quest leaderboard          - Show the most recent leaderboard lines
//	quest history              - Show the archived sessions
//
// Global flags:
//
//	--config <path>       - Application config YAML
//	--levels <path>       - Custom level catalog YAML
//	--leaderboard <path>  - Leaderboard file (default: ~/.pharmacy-quest/leaderboard.txt)
//	--fps <rate>          - Tick rate
//	--seed <value>        - Seed for the scene clutter
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig      string
	flagLevels      string
	flagLeaderboard string
	flagFPS         int
	flagSeed        int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "Аптечный квест - find the medicines hidden in the pharmacy",
	Long: `Аптечный квест is a hidden-object game for the terminal.
Click the medicines listed on the left panel; every find is worth 100 points.
Clear three levels and write your name into the leaderboard.

Available commands:
  play         - Play the game (default)
  levels       - Show the level catalog
  leaderboard  - Show recent leaderboard lines
  history      - Show archived sessions

Examples:
  quest
  quest play --fps 30
  quest levels --levels ./my-levels.yaml
  quest leaderboard --limit 5
  quest history --top`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to application config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to a custom level catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboard, "leaderboard", "", "Path to the leaderboard file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Scene clutter seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(historyCmd)
}
