package wheel

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-d20/internal/core"
)

// DefaultCellAspect is the usual height-to-width ratio of a terminal cell.
const DefaultCellAspect = 2.0

// CellCanvas draws onto a core.Screen. One canvas unit is one cell wide and
// 1/aspect of a cell tall, so circles stay round on screen.
type CellCanvas struct {
	screen     *core.Screen
	aspect     float64
	RingColor  core.Color
	LabelColor core.Color
}

// NewCellCanvas wraps screen. Non-positive aspect uses DefaultCellAspect.
func NewCellCanvas(screen *core.Screen, aspect float64) *CellCanvas {
	if aspect <= 0 {
		aspect = DefaultCellAspect
	}
	return &CellCanvas{
		screen:     screen,
		aspect:     aspect,
		RingColor:  core.ColorGray,
		LabelColor: core.ColorGray,
	}
}

// Bounds returns the screen size in canvas units.
func (c *CellCanvas) Bounds() (float64, float64) {
	return float64(c.screen.Width()), float64(c.screen.Height()) * c.aspect
}

// Cell converts a canvas point to the screen cell that contains it.
func (c *CellCanvas) Cell(p core.Point) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y / c.aspect))
}

// StrokeCircle plots the outline cell by cell. Wide strokes use a heavier dot.
func (c *CellCanvas) StrokeCircle(center core.Point, radius, width float64) {
	if radius <= 0 {
		return
	}
	dot := '·'
	if width >= 3 {
		dot = '•'
	}

	// Two samples per unit of circumference leave no gaps between cells.
	steps := int(math.Ceil(4 * math.Pi * radius))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x, y := c.Cell(center.Polar(radius, a))
		c.screen.SetColored(x, y, dot, c.RingColor)
	}
}

// MeasureText reports one unit per rune and a full cell of ascent.
func (c *CellCanvas) MeasureText(s string) TextMetrics {
	return TextMetrics{
		Width:   float64(utf8.RuneCountInString(s)),
		Ascent:  c.aspect,
		Descent: 0,
	}
}

// DrawText writes s on the row whose bottom edge is nearest the baseline.
func (c *CellCanvas) DrawText(s string, origin core.Point) {
	x := int(math.Round(origin.X))
	y := int(math.Round(origin.Y/c.aspect)) - 1
	c.screen.DrawTextColored(x, y, s, c.LabelColor)
}
