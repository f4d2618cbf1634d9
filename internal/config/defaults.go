package config

import (
	_ "embed"
)

//go:embed defaults/d20.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration.
// It matches defaults/d20.yaml and backs it up if the embed fails to parse.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			FPS:        30,
			CellAspect: 2.0,
		},
		Wheel: WheelConfig{
			PeriodMS:     8000,
			Labels:       100,
			Offset:       5,
			RadiusFactor: 0.95,
			StrokeWidth:  4,
		},
		Strings: StringsConfig{
			CriticalFailure: "Critical failure!",
			CriticalSuccess: "Critical success!",
			Roll:            "Roll",
		},
		Faces: map[int][]string{},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "~/.d20/history.db",
		},
		Server: ServerConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
