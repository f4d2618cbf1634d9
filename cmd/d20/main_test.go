package main

import (
	"bytes"
	"context"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-d20/internal/config"
	"github.com/vovakirdan/tui-d20/internal/dice"
	"github.com/vovakirdan/tui-d20/internal/storage"
)

func TestApplyFlags(t *testing.T) {
	defer func() { flagFPS, flagDBPath, flagNoHistory = 0, "", false }()

	cfg := applyFlags(config.DefaultConfig())
	if cfg.Display.FPS != 30 || !cfg.History.Enabled {
		t.Errorf("unset flags must keep config values, got %+v", cfg)
	}

	flagFPS, flagDBPath, flagNoHistory = 60, "/tmp/x.db", true
	cfg = applyFlags(config.DefaultConfig())
	if cfg.Display.FPS != 60 {
		t.Errorf("expected fps 60, got %d", cfg.Display.FPS)
	}
	if cfg.History.DBPath != "/tmp/x.db" {
		t.Errorf("expected db override, got %q", cfg.History.DBPath)
	}
	if historyPath(cfg) != "" {
		t.Error("--no-history must disable the database")
	}
}

func TestScreenOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.FPS = 24
	cfg.Strings.Roll = "Throw"

	opts := screenOptions(cfg, 100, 40)
	if opts.Runtime.ScreenW != 100 || opts.Runtime.ScreenH != 40 || opts.Runtime.TickRate != 24 {
		t.Errorf("unexpected runtime config: %+v", opts.Runtime)
	}
	if opts.Period != 8*time.Second {
		t.Errorf("expected period 8s, got %v", opts.Period)
	}
	if opts.Strings.Roll != "Throw" {
		t.Errorf("expected button label override, got %q", opts.Strings.Roll)
	}
}

func TestRollOnceRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	rec := storage.NewRecorder(store, nil)

	var buf bytes.Buffer
	v := rollOnce(&buf, config.DefaultConfig(), rec)
	if !dice.Valid(v) {
		t.Fatalf("rolled %d", v)
	}
	if !strings.Contains(buf.String(), "(d20_") {
		t.Errorf("output lacks the image id:\n%s", buf.String())
	}

	rolls, err := store.SessionRolls(rec.Session(), 10)
	if err != nil {
		t.Fatalf("SessionRolls() failed: %v", err)
	}
	if len(rolls) != 1 || rolls[0].Value != v {
		t.Errorf("expected one recorded roll of %d, got %v", v, rolls)
	}
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, nil)
	if !strings.Contains(buf.String(), "No rolls recorded yet.") {
		t.Errorf("unexpected empty output:\n%s", buf.String())
	}

	buf.Reset()
	printHistory(&buf, []storage.RollEntry{
		{ID: 7, SessionID: "abc", Value: 20, CreatedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
	})
	out := buf.String()
	for _, want := range []string{"abc", "20", "2024-05-01 10:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, &storage.RollStats{}, [dice.Sides]int{})
	if !strings.Contains(buf.String(), "No rolls recorded yet.") {
		t.Errorf("unexpected empty output:\n%s", buf.String())
	}

	var counts [dice.Sides]int
	for i := range counts {
		counts[i] = 5
	}
	buf.Reset()
	printStats(&buf, &storage.RollStats{Total: 100, Sessions: 2, Mean: 10.5}, counts)
	out := buf.String()
	if !strings.Contains(out, "Chi-square: 0.00 (consistent with a fair die") {
		t.Errorf("unexpected verdict:\n%s", out)
	}

	counts[19] = 500
	buf.Reset()
	printStats(&buf, &storage.RollStats{Total: 595, Sessions: 1, Mean: 18}, counts)
	if !strings.Contains(buf.String(), "unlikely for a fair die") {
		t.Errorf("loaded die not flagged:\n%s", buf.String())
	}
}

func TestWriteExport(t *testing.T) {
	defer func(size, fps int) { flagSize, flagGIFFPS = size, fps }(flagSize, flagGIFFPS)
	flagSize, flagGIFFPS = 64, 1

	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Wheel.PeriodMS = 2000

	pngPath := filepath.Join(dir, "wheel.png")
	if err := writeExport(context.Background(), cfg, pngPath); err != nil {
		t.Fatalf("png export failed: %v", err)
	}
	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(f)
	f.Close()
	if err != nil {
		t.Fatalf("png decode failed: %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Errorf("expected width 64, got %d", img.Bounds().Dx())
	}

	gifPath := filepath.Join(dir, "wheel.GIF")
	if err := writeExport(context.Background(), cfg, gifPath); err != nil {
		t.Fatalf("gif export failed: %v", err)
	}
	f, err = os.Open(gifPath)
	if err != nil {
		t.Fatal(err)
	}
	anim, err := gif.DecodeAll(f)
	f.Close()
	if err != nil {
		t.Fatalf("gif decode failed: %v", err)
	}
	if len(anim.Image) != 2 {
		t.Errorf("expected 2 frames, got %d", len(anim.Image))
	}
}

func TestWriteExportRemovesPartialFile(t *testing.T) {
	defer func(fps int) { flagGIFFPS = fps }(flagGIFFPS)
	flagGIFFPS = 0

	path := filepath.Join(t.TempDir(), "bad.gif")
	if err := writeExport(context.Background(), config.DefaultConfig(), path); err == nil {
		t.Fatal("expected error for zero fps")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("partial file was left behind")
	}
}
