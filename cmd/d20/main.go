// d20 is a terminal dice roller: a twenty-sided die over a spinning wheel
// of numbered labels.
//
// Usage:
//
//	d20                 - Open the roll screen
//	d20 roll            - Open the roll screen (or --once to print one roll)
//	d20 serve           - Start SSH server for remote rolling
//	d20 history         - Show recent rolls
//	d20 stats           - Per-face counts and a uniformity check
//	d20 export          - Render the wheel to PNG or animated GIF
//	d20 config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Wheel frame rate (default: from config, 30)
//	--config <path>     - Custom config YAML
//	--db <path>         - History database (default: ~/.d20/history.db)
//	--no-history        - Do not record rolls
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-d20/internal/config"
	"github.com/vovakirdan/tui-d20/internal/core"
	"github.com/vovakirdan/tui-d20/internal/platform/tui"
	"github.com/vovakirdan/tui-d20/internal/storage"
)

var (
	// Global flags
	flagFPS       int
	flagConfig    string
	flagDBPath    string
	flagNoHistory bool
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "d20",
	Short: "d20 - Roll a twenty-sided die in your terminal",
	Long: `d20 rolls a fair twenty-sided die. The face of the last roll is shown
in the middle of the screen while a wheel of numbered labels turns
behind it.

Available commands:
  roll     - Open the roll screen (default)
  serve    - Start SSH server for remote rolling
  history  - Show recent rolls
  stats    - Per-face counts and a uniformity check
  export   - Render the wheel to an image
  config   - Print the effective configuration

Examples:
  d20
  d20 roll --once
  d20 serve --ssh :2222
  d20 history --limit 50
  d20 export --out wheel.gif`,
	Run: runRoll,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Wheel frame rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (empty = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record rolls")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the CLI logger at the level chosen by --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig(logger *log.Logger) config.Config {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", src)
	return applyFlags(cfg)
}

// applyFlags overrides config values with the global flags that were set.
func applyFlags(cfg config.Config) config.Config {
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.History.DBPath = flagDBPath
	}
	if flagNoHistory {
		cfg.History.Enabled = false
	}
	return cfg
}

// historyPath returns the database path, or "" when history is disabled.
func historyPath(cfg config.Config) string {
	if !cfg.History.Enabled {
		return ""
	}
	return cfg.History.DBPath
}

// openHistory opens the history database. Failures are reported and the
// caller continues without history.
func openHistory(cfg config.Config, logger *log.Logger) *storage.Store {
	path := historyPath(cfg)
	if path == "" {
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return nil
	}
	return store
}

// mustOpenHistory opens the history database or exits.
func mustOpenHistory(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// screenOptions builds the roll screen options from the configuration.
func screenOptions(cfg config.Config, width, height int) tui.Options {
	opts := tui.DefaultOptions()
	opts.Runtime = core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
	}
	opts.Period = cfg.Period()
	opts.Wheel = cfg.WheelOptions()
	opts.CellAspect = cfg.Display.CellAspect
	opts.Strings = cfg.FaceStrings()
	opts.Images = cfg.Images()
	return opts
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
