package wheel

import (
	"math"

	"github.com/vovakirdan/tui-d20/internal/core"
)

// Options are the cosmetic parameters of the wheel.
type Options struct {
	Labels       int     // number of labels around the ring
	Offset       int     // label sitting at angle 0 before rotation
	RadiusFactor float64 // label distance from the center as a fraction of the radius
	StrokeWidth  float64 // ring outline width in canvas units
}

// DefaultOptions returns the standard wheel: 100 labels, label 5 at angle 0,
// labels at 95% of the radius.
func DefaultOptions() Options {
	return Options{
		Labels:       100,
		Offset:       5,
		RadiusFactor: 0.95,
		StrokeWidth:  4,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Labels <= 0 {
		o.Labels = d.Labels
	}
	if o.RadiusFactor <= 0 {
		o.RadiusFactor = d.RadiusFactor
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = d.StrokeWidth
	}
	return o
}

// BaseAngle returns the unrotated position of label i in radians:
// (i - Offset) / Labels of a full turn.
func BaseAngle(i int, opts Options) float64 {
	opts = opts.withDefaults()
	return float64(i-opts.Offset) * 2 * math.Pi / float64(opts.Labels)
}

// LabelAngle returns the position of label i in radians once the wheel is
// rotated by thetaDeg degrees.
func LabelAngle(i int, thetaDeg float64, opts Options) float64 {
	return BaseAngle(i, opts) + core.Radians(thetaDeg)
}

// LabelPoint returns the point the label i is centred on.
func LabelPoint(center core.Point, radius float64, i int, thetaDeg float64, opts Options) core.Point {
	opts = opts.withDefaults()
	return center.Polar(radius*opts.RadiusFactor, LabelAngle(i, thetaDeg, opts))
}
