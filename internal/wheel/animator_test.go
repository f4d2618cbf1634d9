package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAngleAtIsPeriodic(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{2000 * time.Millisecond, 90},
		{4000 * time.Millisecond, 180},
		{6000 * time.Millisecond, 270},
		{8000 * time.Millisecond, 0},
		{12000 * time.Millisecond, 180},
		{16000 * time.Millisecond, 0},
	}

	for _, tc := range tests {
		got := AngleAt(tc.elapsed, DefaultPeriod)
		assert.InDelta(t, tc.want, got, 1e-9, "elapsed %v", tc.elapsed)
	}
}

func TestAngleAtRange(t *testing.T) {
	for ms := 0; ms < 24000; ms += 7 {
		got := AngleAt(time.Duration(ms)*time.Millisecond, DefaultPeriod)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestAngleAtIsLinear(t *testing.T) {
	// Equal time steps give equal angle steps within one cycle.
	step := 100 * time.Millisecond
	prev := AngleAt(0, DefaultPeriod)
	for e := step; e < DefaultPeriod; e += step {
		cur := AngleAt(e, DefaultPeriod)
		assert.InDelta(t, 4.5, cur-prev, 1e-9)
		prev = cur
	}
}

func TestAngleAtEdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, AngleAt(-time.Second, DefaultPeriod), "negative elapsed clamps to 0")
	assert.InDelta(t, 180, AngleAt(4*time.Second, 0), 1e-9, "zero period uses default")
}

func TestAnimatorLifecycle(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a := NewAnimator(0)

	assert.Equal(t, DefaultPeriod, a.Period())
	assert.False(t, a.Running())
	assert.Equal(t, 0.0, a.Advance(start.Add(time.Second)), "stopped animator does not move")

	gen := a.Start(start)
	assert.True(t, a.Running())
	assert.True(t, a.Accepts(gen))
	assert.InDelta(t, 180, a.Advance(start.Add(4*time.Second)), 1e-9)
	assert.InDelta(t, 0, a.Advance(start.Add(8*time.Second)), 1e-9)
	assert.InDelta(t, 45, a.Advance(start.Add(9*time.Second)), 1e-9)

	a.Stop()
	assert.False(t, a.Running())
	assert.False(t, a.Accepts(gen), "frames from before Stop are stale")
	assert.InDelta(t, 45, a.Advance(start.Add(10*time.Second)), 1e-9, "angle freezes")
	assert.InDelta(t, 45, a.Angle(), 1e-9)

	restart := start.Add(time.Minute)
	gen2 := a.Start(restart)
	assert.NotEqual(t, gen, gen2)
	assert.Equal(t, 0.0, a.Angle(), "a new cycle starts at 0")
	assert.False(t, a.Accepts(gen))
	assert.InDelta(t, 90, a.Advance(restart.Add(2*time.Second)), 1e-9)
}

func TestAnimatorStopIsIdempotent(t *testing.T) {
	a := NewAnimator(time.Second)
	a.Start(time.Now())
	a.Stop()
	gen := a.Generation()
	a.Stop()
	assert.Equal(t, gen, a.Generation())
}
