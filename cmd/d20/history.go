package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-d20/internal/platform/tui"
	"github.com/vovakirdan/tui-d20/internal/storage"
)

var (
	flagHistoryLimit   int
	flagHistorySession string
	flagInteractive    bool
	flagClear          bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent rolls",
	Long: `Display the most recent persisted rolls, newest first.

Examples:
  d20 history
  d20 history --limit 50
  d20 history --session 6f1c...     # rolls of one session
  d20 history -i                    # browse in a table
  d20 history --clear               # delete the whole history`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of rolls to show")
	historyCmd.Flags().StringVar(&flagHistorySession, "session", "", "Only show rolls of this session id")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rolls")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig(newLogger("d20"))
	store := mustOpenHistory(cfg)
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRolls(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return

	case flagInteractive:
		width, height := terminalSize()
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var (
		rolls []storage.RollEntry
		err   error
	)
	if flagHistorySession != "" {
		rolls, err = store.SessionRolls(flagHistorySession, flagHistoryLimit)
	} else {
		rolls, err = store.RecentRolls(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rolls: %v\n", err)
		os.Exit(1)
	}

	printHistory(os.Stdout, rolls)
}

func printHistory(w io.Writer, rolls []storage.RollEntry) {
	fmt.Fprintln(w, "Recent Rolls")
	fmt.Fprintln(w)

	if len(rolls) == 0 {
		fmt.Fprintln(w, "No rolls recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'd20' and roll the die to start a history!")
		return
	}

	fmt.Fprintf(w, "  %-6s  %-4s  %-36s  %s\n", "ID", "Roll", "Session", "Date")
	fmt.Fprintf(w, "  %-6s  %-4s  %-36s  %s\n", "--", "----", "-------", "----")

	for _, r := range rolls {
		fmt.Fprintf(w, "  %-6d  %-4d  %-36s  %s\n",
			r.ID, r.Value, r.SessionID, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
