package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagHistoryMode  string
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear match history",
	Long: `List finished matches, newest first. The most recent matches are
kept; older ones are dropped.

Examples:
  snake history
  snake history --mode timed
  snake history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryMode, "mode", "all", "Only show one mode")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all history")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if flagHistoryMode != "all" && flagHistoryMode != "" {
		if err := checkMode(flagHistoryMode); err != nil {
			return err
		}
	}

	store, closeAll, err := openCLIStore()
	if err != nil {
		return err
	}
	defer closeAll()

	out := cmd.OutOrStdout()
	if flagHistoryClear {
		if err := store.ClearHistory(); err != nil {
			return fmt.Errorf("error clearing history: %w", err)
		}
		fmt.Fprintln(out, "History cleared.")
		return nil
	}

	records, err := store.History()
	if err != nil {
		return fmt.Errorf("error retrieving history: %w", err)
	}
	records = storage.FilterHistory(records, flagHistoryMode)

	if len(records) == 0 {
		fmt.Fprintln(out, "No matches recorded yet.")
		return nil
	}

	best := 0
	if flagHistoryMode != "all" && flagHistoryMode != "" {
		best, err = store.HighScore(flagHistoryMode)
		if err != nil {
			return fmt.Errorf("error retrieving high score: %w", err)
		}
	}

	printRecords(cmd, records, best)
	return nil
}
