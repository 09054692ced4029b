package engine

import (
	"time"

	"github.com/DJLougen/IllusoryLineMotion/core"
	"github.com/DJLougen/IllusoryLineMotion/input"
)

// Recorder captures the single qualifying keypress of a Response phase.
// Armed on phase entry; the first key in the configured 2-key set is
// captured with its reaction time, every other key is inert.
type Recorder struct {
	keys input.KeyMap

	armedAt  time.Time
	captured bool
	key      string
	rt       time.Duration
	dir      core.ResponseDirection
}

// NewRecorder creates a recorder for the configured key bindings
func NewRecorder(keys input.KeyMap) *Recorder {
	return &Recorder{keys: keys}
}

// Arm resets the recorder at Response entry and starts the reaction-time
// clock
func (r *Recorder) Arm(now time.Time) {
	r.armedAt = now
	r.captured = false
	r.key = ""
	r.rt = 0
	r.dir = core.DirectionNone
}

// Capture offers a keypress. Returns true when the key qualifies and ends
// the response window; non-qualifying keys leave all state untouched.
func (r *Recorder) Capture(key string, now time.Time) bool {
	if r.captured {
		return false
	}
	dir, ok := r.keys.Direction(key)
	if !ok {
		return false
	}
	r.captured = true
	r.key = input.Normalize(key)
	r.rt = now.Sub(r.armedAt)
	r.dir = dir
	return true
}

// Result builds the immutable trial record. With no captured key (the
// window timed out) the response fields stay zero-valued.
func (r *Recorder) Result(cond core.TrialCondition) core.TrialResult {
	res := core.TrialResult{
		TrialIndex:  cond.Index,
		Cue:         cond.Cue,
		Origin:      cond.Origin,
		DistanceDeg: cond.DistanceDeg,
	}
	if r.captured {
		res.Responded = true
		res.Key = r.key
		res.ReactionTime = r.rt
		res.Direction = r.dir
	}
	return res
}
