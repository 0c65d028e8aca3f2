package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pharmacy-quest/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryTop   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show archived sessions",
	Long: `Lists the sessions archived in the history database.
By default the most recent sessions are shown oldest first;
--top sorts by score, faster sessions first on ties.

Examples:
  quest history
  quest history --limit 20
  quest history --top`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of sessions")
	historyCmd.Flags().BoolVar(&flagHistoryTop, "top", false, "Sort by score instead of time")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	var records []storage.SessionRecord
	if flagHistoryTop {
		records, err = store.TopResults(flagHistoryLimit)
	} else {
		records, err = store.RecentResults(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No sessions archived yet.")
		if !cfg.History.Enabled {
			fmt.Fprintln(os.Stderr, "History is disabled in the config.")
		}
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-20s  %-6s  %-5s  %s\n", "#", "Name", "Score", "Time", "Finished")
	fmt.Fprintf(out, "  %-4s  %-20s  %-6s  %-5s  %s\n", "-", "----", "-----", "----", "--------")
	for i, r := range records {
		e := r.Entry()
		fmt.Fprintf(out, "  %-4d  %-20s  %-6d  %02d:%02d  %s\n",
			i+1, e.Name, e.Score, e.Minutes, e.Seconds, r.FinishedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Sessions: %d  Best: %d (%02d:%02d)  Average: %.0f\n",
		stats.Sessions, stats.BestScore, stats.FastestSecs/60, stats.FastestSecs%60, stats.AvgScore)
	return nil
}
