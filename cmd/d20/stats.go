package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-d20/internal/dice"
	"github.com/vovakirdan/tui-d20/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Per-face counts and a uniformity check",
	Long: `Summarise all persisted rolls: how often each face came up, the mean,
the number of critical rolls and a chi-square goodness-of-fit test
against a fair die (19 degrees of freedom).

Examples:
  d20 stats
  d20 stats --db ./rolls.db`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	cfg := loadConfig(newLogger("d20"))
	store := mustOpenHistory(cfg)
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	counts, err := store.Counts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving counts: %v\n", err)
		os.Exit(1)
	}

	printStats(os.Stdout, stats, counts)
}

func printStats(w io.Writer, stats *storage.RollStats, counts [dice.Sides]int) {
	fmt.Fprintln(w, "Roll Statistics")
	fmt.Fprintln(w)

	if stats.Total == 0 {
		fmt.Fprintln(w, "No rolls recorded yet.")
		return
	}

	peak := 0
	for _, c := range counts {
		peak = max(peak, c)
	}
	for i, c := range counts {
		bar := 0
		if peak > 0 {
			bar = c * 40 / peak
		}
		fmt.Fprintf(w, "  %2d  %-40s  %d\n", i+1, strings.Repeat("█", bar), c)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Rolls:     %d in %d session(s)\n", stats.Total, stats.Sessions)
	fmt.Fprintf(w, "Mean:      %.2f (fair die: 10.50)\n", stats.Mean)
	fmt.Fprintf(w, "Critical:  %d failure(s), %d success(es)\n", stats.CriticalFailures, stats.CriticalSuccess)
	if !stats.LastRolled.IsZero() {
		fmt.Fprintf(w, "Last roll: %s\n", stats.LastRolled.Format("2006-01-02 15:04"))
	}

	chi := dice.ChiSquare(counts[:])
	verdict := "consistent with a fair die"
	if chi > dice.CriticalChiSquare {
		verdict = "unlikely for a fair die"
	}
	fmt.Fprintf(w, "Chi-square: %.2f (%s, p=0.001 threshold %.2f)\n", chi, verdict, dice.CriticalChiSquare)
}
