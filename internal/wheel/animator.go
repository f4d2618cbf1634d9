// Package wheel draws the decorative ring of numbered labels and drives its
// endless rotation.
package wheel

import "time"

// DefaultPeriod is the time of one full turn.
const DefaultPeriod = 8000 * time.Millisecond

// AngleAt returns the rotation in degrees after elapsed time of a linear,
// restarting animation with the given period. The result lies in [0, 360).
func AngleAt(elapsed, period time.Duration) float64 {
	if period <= 0 {
		period = DefaultPeriod
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return 360 * float64(elapsed%period) / float64(period)
}

// Animator tracks the rotation angle of the wheel.
//
// It is driven by frame callbacks: the owner calls Advance with the frame
// time and schedules the next frame only while Running. Every Start and
// Stop bumps the generation so frames scheduled under an older generation
// can be recognised and dropped.
type Animator struct {
	period     time.Duration
	start      time.Time
	angle      float64
	running    bool
	generation int
}

// NewAnimator creates a stopped animator. Non-positive periods use DefaultPeriod.
func NewAnimator(period time.Duration) *Animator {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Animator{period: period}
}

// Period returns the duration of one full turn.
func (a *Animator) Period() time.Duration {
	return a.period
}

// Start begins a new cycle at angle 0 and returns its generation.
func (a *Animator) Start(now time.Time) int {
	a.generation++
	a.start = now
	a.angle = 0
	a.running = true
	return a.generation
}

// Stop cancels the animation. The angle freezes and pending frames go stale.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.generation++
}

// Running reports whether frames should still be scheduled.
func (a *Animator) Running() bool {
	return a.running
}

// Generation identifies the current Start/Stop epoch.
func (a *Animator) Generation() int {
	return a.generation
}

// Accepts reports whether a frame scheduled under generation gen is current.
func (a *Animator) Accepts(gen int) bool {
	return a.running && gen == a.generation
}

// Advance moves the angle to its value at now and returns it.
// A stopped animator keeps its last angle.
func (a *Animator) Advance(now time.Time) float64 {
	if !a.running {
		return a.angle
	}
	a.angle = AngleAt(now.Sub(a.start), a.period)
	return a.angle
}

// Angle returns the last computed rotation in degrees.
func (a *Animator) Angle() float64 {
	return a.angle
}
