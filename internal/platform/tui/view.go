package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-d20/internal/core"
	"github.com/vovakirdan/tui-d20/internal/face"
	"github.com/vovakirdan/tui-d20/internal/wheel"
)

// Smallest terminal that still fits the compact layout.
const (
	MinWidth  = 24
	MinHeight = 14
)

// screenLayout holds the positions of everything drawn over the wheel.
type screenLayout struct {
	width, height int // drawing area above the help footer
	box           core.Rect
	compact       bool // too little room for the art; show the value instead
	messageY      int
	idY           int
	button        core.Rect
}

// layout places the face, texts and button centred on the drawing area.
func (m Model) layout() screenLayout {
	d := m.Display()
	helpH := lipgloss.Height(m.help.View(m.keys))

	l := screenLayout{
		width:  m.config.ScreenW,
		height: max(m.config.ScreenH-helpH, 0),
	}

	artW := face.Image{Art: d.Art}.Width()
	boxW, boxH := artW+4, len(d.Art)+2
	if boxW > l.width-2 || boxH+4 > l.height {
		l.compact = true
		boxW, boxH = max(utf8.RuneCountInString(d.Description)+6, 9), 3
	}

	// box, message, id line, gap, button
	top := core.Clamp((l.height-(boxH+4))/2, 0, l.height)
	l.box = core.NewRect((l.width-boxW)/2, top, boxW, boxH)
	l.messageY = l.box.Bottom()
	l.idY = l.messageY + 1

	label := m.buttonLabel()
	n := utf8.RuneCountInString(label)
	l.button = core.NewRect((l.width-n)/2, l.idY+2, n, 1)
	return l
}

func (m Model) buttonLabel() string {
	return "[ " + m.renderer.Strings().Roll + " ]"
}

// tooSmall reports whether only the size hint fits on screen.
func (m Model) tooSmall() bool {
	return m.config.ScreenW < MinWidth || m.config.ScreenH < MinHeight
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		hint := fmt.Sprintf("Terminal too small\n%dx%d, need %dx%d",
			m.config.ScreenW, m.config.ScreenH, MinWidth, MinHeight)
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, hint)
	}

	l := m.layout()
	m.screen.Resize(l.width, l.height)
	m.screen.Clear()

	// Wheel first, everything else on top of it
	wheel.DrawFitted(m.canvas, m.anim.Angle(), m.wheel)
	m.drawFace(l, m.Display())

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// drawFace draws the boxed face, the message, the image line and the button.
func (m Model) drawFace(l screenLayout, d face.Display) {
	accent := kindColor(d.Kind)

	m.screen.FillRect(l.box, ' ')
	m.screen.DrawBox(l.box, accent)
	if l.compact {
		m.label(l.box.Y+1, d.Description, core.ColorBrightWhite)
	} else {
		for i, row := range d.Art {
			m.screen.DrawTextColored(l.box.X+2, l.box.Y+1+i, row, core.ColorBrightWhite)
		}
	}

	if d.Message != "" {
		m.label(l.messageY, d.Message, accent)
	}
	m.label(l.idY, fmt.Sprintf("rolled %s · %s", d.Description, d.ImageID), core.ColorGray)
	m.label(l.button.Y, m.buttonLabel(), core.ColorBrightYellow)
}

// label writes centred text with a blank margin so wheel marks don't touch it.
func (m Model) label(y int, text string, c core.Color) {
	n := utf8.RuneCountInString(text)
	x := (m.screen.Width() - n) / 2
	m.screen.FillRect(core.NewRect(x-1, y, n+2, 1), ' ')
	m.screen.DrawTextCentered(y, text, c)
}

func kindColor(k face.Kind) core.Color {
	switch k {
	case face.KindCriticalFailure:
		return core.ColorBrightRed
	case face.KindCriticalSuccess:
		return core.ColorBrightGreen
	default:
		return core.ColorWhite
	}
}
