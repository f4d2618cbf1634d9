// Package export renders the wheel to raster images: a single PNG frame or
// an animated GIF of one full turn.
package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/tui-d20/internal/core"
	"github.com/vovakirdan/tui-d20/internal/wheel"
)

var (
	colorBackground = color.White
	colorInk        = color.Black
)

// ImageCanvas is a wheel.Canvas backed by a gg raster context.
type ImageCanvas struct {
	dc      *gg.Context
	metrics font.Metrics
}

// NewImageCanvas creates a white w x h canvas with a Go Regular face of the
// given size in pixels.
func NewImageCanvas(w, h int, fontSize float64) (*ImageCanvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("export: invalid canvas size %dx%d", w, h)
	}

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("export: cannot parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		Hinting: font.HintingFull,
	})

	dc := gg.NewContext(w, h)
	dc.SetColor(colorBackground)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetColor(colorInk)

	return &ImageCanvas{dc: dc, metrics: face.Metrics()}, nil
}

// Bounds returns the image size in pixels.
func (c *ImageCanvas) Bounds() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

// StrokeCircle strokes a circle outline.
func (c *ImageCanvas) StrokeCircle(center core.Point, radius, width float64) {
	c.dc.SetColor(colorInk)
	c.dc.SetLineWidth(width)
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.dc.Stroke()
}

// MeasureText returns the advance width of s and the face's ascent and descent.
func (c *ImageCanvas) MeasureText(s string) wheel.TextMetrics {
	w, _ := c.dc.MeasureString(s)
	return wheel.TextMetrics{
		Width:   w,
		Ascent:  fixedToFloat(c.metrics.Ascent),
		Descent: fixedToFloat(c.metrics.Descent),
	}
}

// DrawText draws s with its baseline starting at origin.
func (c *ImageCanvas) DrawText(s string, origin core.Point) {
	c.dc.SetColor(colorInk)
	c.dc.DrawString(s, origin.X, origin.Y)
}

// Image returns the rendered image.
func (c *ImageCanvas) Image() image.Image {
	return c.dc.Image()
}

// LabelSize returns the font size matching a wheel of the given radius.
func LabelSize(radius float64) float64 {
	return radius / 20
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
