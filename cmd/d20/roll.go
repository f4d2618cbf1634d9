package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-d20/internal/config"
	"github.com/vovakirdan/tui-d20/internal/dice"
	"github.com/vovakirdan/tui-d20/internal/face"
	"github.com/vovakirdan/tui-d20/internal/platform/tui"
	"github.com/vovakirdan/tui-d20/internal/storage"
)

var flagOnce bool

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Open the roll screen",
	Long: `Open the full-screen roll screen.

Controls:
  Space/Enter/R  - Roll
  Click [ Roll ] - Roll
  ?              - Toggle help
  Q/Ctrl+C       - Quit

The wheel pauses while the terminal window is unfocused.

Examples:
  d20 roll
  d20 roll --fps 60
  d20 roll --once            # print a single roll and exit`,
	Run: runRoll,
}

func init() {
	rollCmd.Flags().BoolVar(&flagOnce, "once", false, "Roll once, print the result and exit")
}

func runRoll(_ *cobra.Command, _ []string) {
	logger := newLogger("d20")
	cfg := loadConfig(logger)

	store := openHistory(cfg, logger)
	var rec *storage.Recorder
	if store != nil {
		// The screen owns the terminal; history errors stay silent
		rec = storage.NewRecorder(store, nil)
	}

	var runErr error
	if flagOnce {
		rollOnce(os.Stdout, cfg, rec)
	} else {
		width, height := terminalSize()
		opts := screenOptions(cfg, width, height)
		opts.Recorder = rec
		runErr = tui.Run(opts)
	}

	if store != nil {
		//nolint:errcheck // Best-effort close before exit
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running roll screen: %v\n", runErr)
		os.Exit(1)
	}
}

// rollOnce rolls a fresh die and prints the face.
func rollOnce(w io.Writer, cfg config.Config, rec *storage.Recorder) int {
	state := dice.New(nil)
	if rec != nil {
		defer rec.Attach(state)()
	}
	v := state.Roll()
	printFace(w, face.NewRenderer(cfg.FaceStrings(), cfg.Images()).Render(v))
	return v
}

func printFace(w io.Writer, d face.Display) {
	for _, row := range d.Art {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintf(w, "rolled %s (%s)\n", d.Description, d.ImageID)
	if d.Message != "" {
		fmt.Fprintln(w, d.Message)
	}
}
