package wheel

import (
	"strconv"

	"github.com/vovakirdan/tui-d20/internal/core"
)

// TextMetrics describes a measured string. Ascent and Descent are positive
// distances above and below the baseline.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Canvas is a drawing surface with square units and Y growing downwards.
type Canvas interface {
	// Bounds returns the drawable width and height.
	Bounds() (w, h float64)
	// StrokeCircle draws a circle outline.
	StrokeCircle(center core.Point, radius, width float64)
	// MeasureText returns the rendered extent of s.
	MeasureText(s string) TextMetrics
	// DrawText draws s with its baseline starting at origin.
	DrawText(s string, origin core.Point)
}

// Fit returns the center and radius of the largest ring the canvas holds.
func Fit(c Canvas) (core.Point, float64) {
	w, h := c.Bounds()
	return core.Pt(w/2, h/2), min(w, h) / 2
}

// TextOrigin returns the baseline origin that centres text with metrics m
// on p, both horizontally and vertically.
func TextOrigin(p core.Point, m TextMetrics) core.Point {
	return core.Pt(p.X-m.Width/2, p.Y+(m.Ascent-m.Descent)/2)
}

// Draw renders the ring and its labels rotated by thetaDeg degrees.
func Draw(c Canvas, center core.Point, radius, thetaDeg float64, opts Options) {
	opts = opts.withDefaults()
	c.StrokeCircle(center, radius, opts.StrokeWidth)

	for i := 1; i <= opts.Labels; i++ {
		label := strconv.Itoa(i)
		p := LabelPoint(center, radius, i, thetaDeg, opts)
		c.DrawText(label, TextOrigin(p, c.MeasureText(label)))
	}
}

// DrawFitted renders the wheel as large as the canvas allows.
func DrawFitted(c Canvas, thetaDeg float64, opts Options) {
	center, radius := Fit(c)
	Draw(c, center, radius, thetaDeg, opts)
}
