package export

import (
	"bytes"
	"context"
	"image/gif"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-d20/internal/core"
	"github.com/vovakirdan/tui-d20/internal/wheel"
)

func TestImageCanvasMetrics(t *testing.T) {
	c, err := NewImageCanvas(200, 100, 12)
	require.NoError(t, err)

	w, h := c.Bounds()
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 100.0, h)

	one := c.MeasureText("1")
	hundred := c.MeasureText("100")
	assert.Greater(t, one.Width, 0.0)
	assert.Greater(t, hundred.Width, one.Width, "wider text measures wider")
	assert.Greater(t, one.Ascent, 0.0)
	assert.GreaterOrEqual(t, one.Descent, 0.0)
	assert.Equal(t, one.Ascent, hundred.Ascent, "ascent is a property of the face")

	// Centring on a point puts the origin left of and below it.
	o := wheel.TextOrigin(core.Pt(100, 50), hundred)
	assert.Less(t, o.X, 100.0)
	assert.Greater(t, o.Y, 50.0)
}

func TestNewImageCanvasRejectsEmpty(t *testing.T) {
	_, err := NewImageCanvas(0, 10, 12)
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, 120, 45, wheel.DefaultOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 120, img.Bounds().Dy())
}

func TestWriteGIF(t *testing.T) {
	opts := GIFOptions{
		Size:   64,
		FPS:    2,
		Period: 2 * time.Second,
		Wheel:  wheel.DefaultOptions(),
	}
	assert.Equal(t, 4, opts.FrameCount())

	var buf bytes.Buffer
	require.NoError(t, WriteGIF(context.Background(), &buf, opts))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.Len(t, g.Image, 4)
	for _, d := range g.Delay {
		assert.Equal(t, 50, d)
	}
}

func TestWriteGIFValidation(t *testing.T) {
	var buf bytes.Buffer
	err := WriteGIF(context.Background(), &buf, GIFOptions{Size: 32, FPS: 0})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = WriteGIF(ctx, &buf, GIFOptions{Size: 32, FPS: 1, Period: time.Second})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFrameCountDefaults(t *testing.T) {
	assert.Equal(t, 200, GIFOptions{FPS: 25}.FrameCount(), "default 8s period")
	assert.Equal(t, 1, GIFOptions{FPS: 0, Period: time.Second}.FrameCount())
}

func TestFrameDelaysSumToPeriod(t *testing.T) {
	opts := GIFOptions{FPS: 12, Period: wheel.DefaultPeriod}
	delays := frameDelays(opts.FrameCount(), opts.Period)
	require.Len(t, delays, 96)

	sum := 0
	for _, d := range delays {
		assert.Contains(t, []int{8, 9}, d)
		sum += d
	}
	assert.Equal(t, 800, sum)

	assert.Equal(t, []int{33, 33, 34}, frameDelays(3, time.Second))
}
