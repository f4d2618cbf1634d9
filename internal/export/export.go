package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-d20/internal/wheel"
)

// Frame renders the wheel rotated by thetaDeg on a size x size image.
func Frame(size int, thetaDeg float64, opts wheel.Options) (image.Image, error) {
	c, err := NewImageCanvas(size, size, LabelSize(float64(size)/2))
	if err != nil {
		return nil, err
	}
	wheel.DrawFitted(c, thetaDeg, opts)
	return c.Image(), nil
}

// WritePNG encodes a single frame as PNG.
func WritePNG(w io.Writer, size int, thetaDeg float64, opts wheel.Options) error {
	img, err := Frame(size, thetaDeg, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: cannot encode png: %w", err)
	}
	return nil
}

// GIFOptions configures an animated export of one full turn.
type GIFOptions struct {
	Size   int           // image side in pixels
	FPS    int           // frames per second
	Period time.Duration // duration of one turn
	Wheel  wheel.Options
}

// FrameCount returns how many frames one turn takes at o.FPS.
func (o GIFOptions) FrameCount() int {
	period := o.Period
	if period <= 0 {
		period = wheel.DefaultPeriod
	}
	n := int(period.Seconds() * float64(o.FPS))
	return max(n, 1)
}

// grayPalette holds 16 evenly spaced grays, enough for anti-aliased ink on white.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 16)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i * 17)}
	}
	return p
}()

// WriteGIF renders one full turn and encodes it as a looping GIF.
// Frames are rendered in parallel.
func WriteGIF(ctx context.Context, w io.Writer, o GIFOptions) error {
	if o.FPS <= 0 {
		return fmt.Errorf("export: fps must be positive, got %d", o.FPS)
	}
	if o.Period <= 0 {
		o.Period = wheel.DefaultPeriod
	}

	frames := o.FrameCount()
	step := o.Period / time.Duration(frames)
	images := make([]*image.Paletted, frames)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			theta := wheel.AngleAt(time.Duration(i)*step, o.Period)
			img, err := Frame(o.Size, theta, o.Wheel)
			if err != nil {
				return err
			}
			bounds := img.Bounds()
			paletted := image.NewPaletted(bounds, grayPalette)
			draw.Draw(paletted, bounds, img, bounds.Min, draw.Src)
			images[i] = paletted
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	delays := frameDelays(frames, o.Period)

	if err := gif.EncodeAll(w, &gif.GIF{Image: images, Delay: delays}); err != nil {
		return fmt.Errorf("export: cannot encode gif: %w", err)
	}
	return nil
}

// frameDelays splits period into per-frame delays in centiseconds whose
// sum is the period rounded to the nearest centisecond.
func frameDelays(frames int, period time.Duration) []int {
	total := int((period + 5*time.Millisecond) / (10 * time.Millisecond))
	delays := make([]int, frames)
	for i := range delays {
		delays[i] = (i+1)*total/frames - i*total/frames
	}
	return delays
}
