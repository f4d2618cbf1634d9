package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-d20/internal/config"
	"github.com/vovakirdan/tui-d20/internal/core"
	"github.com/vovakirdan/tui-d20/internal/export"
)

var (
	flagOut    string
	flagSize   int
	flagAngle  float64
	flagGIFFPS int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the wheel to PNG or animated GIF",
	Long: `Render the numbered wheel with real font metrics.

The output format follows the file extension: .gif writes one full turn
as a looping animation, anything else writes a single PNG frame at
--angle degrees.

Examples:
  d20 export --out wheel.png
  d20 export --out wheel.png --angle 90 --size 1024
  d20 export --out wheel.gif --gif-fps 15`,
	Run: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "wheel.png", "Output file (.png or .gif)")
	exportCmd.Flags().IntVar(&flagSize, "size", 512, "Image side in pixels")
	exportCmd.Flags().Float64Var(&flagAngle, "angle", 0, "Rotation in degrees (PNG only)")
	exportCmd.Flags().IntVar(&flagGIFFPS, "gif-fps", 12, "Frames per second (GIF only)")
}

func runExport(_ *cobra.Command, _ []string) {
	logger := newLogger("d20")
	cfg := loadConfig(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := writeExport(ctx, cfg, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting wheel: %v\n", err)
		os.Exit(1)
	}
	logger.Info("wheel exported", "file", flagOut)
}

// writeExport renders the wheel into path; the extension picks the format.
func writeExport(ctx context.Context, cfg config.Config, path string) (err error) {
	if flagSize <= 0 {
		return fmt.Errorf("size must be positive, got %d", flagSize)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("cannot close %s: %w", path, cerr)
		}
		if err != nil {
			//nolint:errcheck // Best-effort cleanup of a partial file
			os.Remove(path)
		}
	}()

	if strings.EqualFold(filepath.Ext(path), ".gif") {
		return export.WriteGIF(ctx, f, export.GIFOptions{
			Size:   flagSize,
			FPS:    flagGIFFPS,
			Period: cfg.Period(),
			Wheel:  cfg.WheelOptions(),
		})
	}
	return export.WritePNG(f, flagSize, core.NormalizeDegrees(flagAngle), cfg.WheelOptions())
}
