package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Without a mode, display the best score of every mode.
With a mode, also list its top matches from the history.

Examples:
  snake scores
  snake scores classic
  snake scores timed --limit 5`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeModes,
	RunE:              runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of top matches to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := checkMode(args[0]); err != nil {
			return err
		}
	}

	store, closeAll, err := openCLIStore()
	if err != nil {
		return err
	}
	defer closeAll()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, "High Scores")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-10s  %s\n", "Mode", "Best")
		fmt.Fprintf(out, "  %-10s  %s\n", "----", "----")
		for _, m := range registry.List() {
			best, err := store.HighScore(m.ID)
			if err != nil {
				return fmt.Errorf("error retrieving high score: %w", err)
			}
			fmt.Fprintf(out, "  %-10s  %d\n", m.Title, best)
		}

		last, ok, err := store.GetEntry(storage.KeyGameHistory)
		if err != nil {
			return fmt.Errorf("error retrieving history: %w", err)
		}
		if ok && !last.UpdatedAt.IsZero() {
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Last played: %s\n", last.UpdatedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	}

	modeID := args[0]
	best, err := store.HighScore(modeID)
	if err != nil {
		return fmt.Errorf("error retrieving high score: %w", err)
	}
	top, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", modeID)
	fmt.Fprintln(out)

	if len(top) == 0 {
		fmt.Fprintln(out, "No matches recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'snake play %s' to set the first high score!\n", modeID)
		return nil
	}

	printRecords(cmd, top, best)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", best)
	return nil
}

// printRecords prints records as a table, starring rows that match best.
func printRecords(cmd *cobra.Command, records []storage.HistoryRecord, best int) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s  %-10s  %-7s  %-6s  %-6s  %s\n", "#", "Mode", "Score", "Length", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-7s  %-6s  %-6s  %s\n", "-", "----", "-----", "------", "----", "----")

	for i, r := range records {
		mark := ""
		if best > 0 && r.Score == best {
			mark = " *"
		}
		fmt.Fprintf(out, "  %-4d  %-10s  %-7d  %-6d  %-6s  %s%s\n",
			i+1,
			r.Mode,
			r.Score,
			r.SnakeLength,
			fmt.Sprintf("%d:%02d", r.Duration/60, r.Duration%60),
			r.Date.Local().Format("2006-01-02 15:04"),
			mark,
		)
	}
}
