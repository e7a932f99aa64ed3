package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexcorrupt/internal/platform/tui"
	"github.com/vovakirdan/hexcorrupt/internal/storage"
)

var (
	flagScoresPlayer string
	flagPlain        bool
	flagClear        bool
	flagLimit        int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Browse recorded runs, best first. Tab switches between everyone's
best runs and your own.

With --plain the table is printed instead, which also works when stdout is
not a terminal.

Examples:
  hexcorrupt scores
  hexcorrupt scores --plain --limit 20
  hexcorrupt scores --player ada --plain
  hexcorrupt scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", os.Getenv("USER"), "Player whose runs are shown as \"mine\"")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the browser")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Rows to print with --plain")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintln(out, "Run history cleared.")
		return nil
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagPlain && termErr == nil {
		return tui.RunScoreboard(store, flagScoresPlayer, width, height)
	}
	return printRuns(cmd, store)
}

func printRuns(cmd *cobra.Command, store *storage.Store) error {
	out := cmd.OutOrStdout()

	var (
		runs []storage.Run
		err  error
	)
	if cmd.Flags().Changed("player") {
		runs, err = store.PlayerRuns(flagScoresPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintln(out, "Best Runs - Hexcorrupt")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'hexcorrupt play' to set the first record!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-12s  %-5s  %-10s  %-5s  %s\n", "Rank", "Player", "Stage", "Level", "Turns", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-5s  %-10s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	for i, r := range runs {
		level := fmt.Sprintf("%d %s", r.Level, phaseLabel(r.Phase))
		fmt.Fprintf(out, "  %-4d  %-12s  %-5d  %-10s  %-5d  %s\n",
			i+1, r.Player, r.Score, level, r.Turns, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil && stats.Runs > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d   Best stage: %d   Average: %.1f   Absorbed: %d\n",
			stats.Runs, stats.BestScore, stats.AvgScore, stats.Captured)
	}
	return nil
}

func phaseLabel(p int) string {
	if p == 1 {
		return "shrink"
	}
	return "grow"
}
