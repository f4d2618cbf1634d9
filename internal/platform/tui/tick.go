// Package tui provides the Bubble Tea integration for the dice roller.
// It handles the terminal UI loop, input mapping, and the wheel frame loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance the wheel animation.
// Gen is the animator generation that scheduled the frame.
type FrameMsg struct {
	Gen  int
	Time time.Time
}

// frameCmd returns a Bubble Tea command that delivers one frame after interval.
func frameCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}
