// Package config provides YAML-based configuration loading for the dice
// roller: display timing, wheel geometry, texts, face art and history.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-d20/internal/dice"
	"github.com/vovakirdan/tui-d20/internal/face"
	"github.com/vovakirdan/tui-d20/internal/wheel"
)

// Config is the complete application configuration.
type Config struct {
	Display DisplayConfig    `yaml:"display"`
	Wheel   WheelConfig      `yaml:"wheel"`
	Strings StringsConfig    `yaml:"strings"`
	Faces   map[int][]string `yaml:"faces"`
	History HistoryConfig    `yaml:"history"`
	Server  ServerConfig     `yaml:"server"`
}

// DisplayConfig defines frame timing and terminal geometry.
type DisplayConfig struct {
	FPS        int     `yaml:"fps"`
	CellAspect float64 `yaml:"cell_aspect"` // terminal cell height / width
}

// WheelConfig defines the spinning wheel.
type WheelConfig struct {
	PeriodMS     int     `yaml:"period_ms"`
	Labels       int     `yaml:"labels"`
	Offset       int     `yaml:"offset"`
	RadiusFactor float64 `yaml:"radius_factor"`
	StrokeWidth  float64 `yaml:"stroke_width"`
}

// StringsConfig holds the user-visible texts.
type StringsConfig struct {
	CriticalFailure string `yaml:"critical_failure"`
	CriticalSuccess string `yaml:"critical_success"`
	Roll            string `yaml:"roll"`
}

// HistoryConfig controls roll persistence.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("config: display.fps must be within [1,240], got %d", c.Display.FPS)
	}
	if c.Display.CellAspect <= 0 {
		return fmt.Errorf("config: display.cell_aspect must be positive, got %g", c.Display.CellAspect)
	}
	if c.Wheel.PeriodMS <= 0 {
		return fmt.Errorf("config: wheel.period_ms must be positive, got %d", c.Wheel.PeriodMS)
	}
	if c.Wheel.Labels <= 0 {
		return fmt.Errorf("config: wheel.labels must be positive, got %d", c.Wheel.Labels)
	}
	if c.Wheel.RadiusFactor <= 0 || c.Wheel.RadiusFactor > 1 {
		return fmt.Errorf("config: wheel.radius_factor must be within (0,1], got %g", c.Wheel.RadiusFactor)
	}
	for v, art := range c.Faces {
		if !dice.Valid(v) {
			return fmt.Errorf("config: faces: no die value %d", v)
		}
		if len(art) == 0 {
			return fmt.Errorf("config: faces: empty art for %d", v)
		}
	}
	return nil
}

// Period returns the duration of one wheel turn.
func (c Config) Period() time.Duration {
	return time.Duration(c.Wheel.PeriodMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMinutes) * time.Minute
}

// WheelOptions converts the wheel section.
func (c Config) WheelOptions() wheel.Options {
	return wheel.Options{
		Labels:       c.Wheel.Labels,
		Offset:       c.Wheel.Offset,
		RadiusFactor: c.Wheel.RadiusFactor,
		StrokeWidth:  c.Wheel.StrokeWidth,
	}
}

// FaceStrings converts the strings section, falling back to the built-in
// text for any entry left empty.
func (c Config) FaceStrings() face.Strings {
	s := face.DefaultStrings()
	if c.Strings.CriticalFailure != "" {
		s.CriticalFailure = c.Strings.CriticalFailure
	}
	if c.Strings.CriticalSuccess != "" {
		s.CriticalSuccess = c.Strings.CriticalSuccess
	}
	if c.Strings.Roll != "" {
		s.Roll = c.Strings.Roll
	}
	return s
}

// Images returns the default face art with configured overrides applied.
func (c Config) Images() *face.ImageSet {
	images := face.DefaultImages()
	for v := dice.Min; v <= dice.Max; v++ {
		if art, ok := c.Faces[v]; ok {
			images = images.WithArt(v, art)
		}
	}
	return images
}
