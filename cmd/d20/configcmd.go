package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-d20/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration d20 would run with, after the search order
(--config, ~/.d20/config.yaml, ./configs/d20.yaml, built-in default)
and the global flags are applied.

Examples:
  d20 config
  d20 config --default > ~/.d20/config.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaultConfig {
		//nolint:errcheck // Best-effort write to stdout
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(applyFlags(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", src)
	//nolint:errcheck // Best-effort write to stdout
	os.Stdout.Write(data)
}
