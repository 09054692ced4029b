package engine

import (
	"time"

	"github.com/DJLougen/IllusoryLineMotion/core"
)

// AnimationClock turns elapsed wall time into a line-draw progress
// fraction. Created fresh on every LineAnimation entry; it captures the
// phase's generation token so a tick that outlives its phase can be
// recognized and dropped before it draws stale content.
type AnimationClock struct {
	start    time.Time
	duration time.Duration
	token    uint64

	// instant marks center-origin trials: the line is fully formed on
	// the first frame while the phase still holds for its duration
	instant bool
}

func newAnimationClock(start time.Time, duration time.Duration, token uint64, origin core.LineOrigin) *AnimationClock {
	return &AnimationClock{
		start:    start,
		duration: duration,
		token:    token,
		instant:  origin == core.OriginCenter,
	}
}

// Progress returns the [0,1] completion at the given sample time.
// Non-decreasing in time; reaches exactly 1 at or after the duration.
func (a *AnimationClock) Progress(now time.Time) float64 {
	if a.instant || a.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(a.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= a.duration {
		return 1
	}
	return float64(elapsed) / float64(a.duration)
}

// Token returns the generation token of the phase that owns this clock
func (a *AnimationClock) Token() uint64 {
	return a.token
}
