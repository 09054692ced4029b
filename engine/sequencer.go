package engine

import (
	"fmt"
	"time"

	"github.com/DJLougen/IllusoryLineMotion/conditions"
	"github.com/DJLougen/IllusoryLineMotion/core"
	"github.com/DJLougen/IllusoryLineMotion/parameter"
)

// Sequencer is the per-trial phase state machine. Transitions are strictly
// forward and driven by elapsed time, except Response, which also ends on
// the first qualifying keypress. All methods must be called from the one
// event-loop goroutine that owns the run; the sequencer never blocks and
// never schedules work of its own.
type Sequencer struct {
	cfg      *ExperimentConfig
	clock    TimeProvider
	provider *conditions.Provider
	recorder *Recorder

	phase      core.Phase
	cond       core.TrialCondition
	phaseStart time.Time

	// token is bumped on every phase entry. Animation clocks carry the
	// token of the phase that spawned them; a tick whose token no longer
	// matches is stale and must not draw.
	token uint64
	anim  *AnimationClock

	// lineShown records whether a frame at progress >= 1 was rendered
	// during the current line phase; linePending holds the completion
	// frame back for one Frame call when the deadline passed before any
	// such frame, so the fully formed line is always shown once.
	lineShown   bool
	linePending bool

	results core.ResultLog
	aborted bool

	// TimeoutFn, when set, runs each time a bounded response window
	// closes with no qualifying key (used for the optional feedback tone)
	TimeoutFn func()
}

// FrameState is what the renderer needs for one frame
type FrameState struct {
	Phase     core.Phase
	Progress  float64
	Condition core.TrialCondition
}

// NewSequencer validates the configuration and the condition sequence,
// then builds a sequencer over it. Bad inputs are rejected here, at
// construction time, never clamped mid-run.
func NewSequencer(cfg *ExperimentConfig, clock TimeProvider, provider *conditions.Provider) (*Sequencer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// The loader guards these, but a programmatically built list can
	// still carry values that would produce negative phase durations
	for _, cond := range provider.Conditions() {
		if cond.DistanceDeg <= 0 {
			return nil, &ConfigError{"conditions",
				fmt.Sprintf("trial %d: distance must be positive, got %g", cond.Index, cond.DistanceDeg)}
		}
		if cond.SOAOverrideMs != 0 && cond.SOAOverrideMs < parameter.CueMs {
			return nil, &ConfigError{"conditions",
				fmt.Sprintf("trial %d: soa override %dms is below the %dms cue duration", cond.Index, cond.SOAOverrideMs, parameter.CueMs)}
		}
	}
	return &Sequencer{
		cfg:      cfg,
		clock:    clock,
		provider: provider,
		recorder: NewRecorder(cfg.KeyMap()),
		phase:    core.PhaseComplete,
	}, nil
}

// Start pulls the first condition and enters its Fixation phase
func (s *Sequencer) Start() {
	s.nextTrial(s.clock.Now())
}

// Frame advances every transition due at now and returns the render state
// for this display refresh. Progress is taken from the animation clock
// only when its generation token is still current. A line phase whose
// deadline fell between frames yields one final frame at progress 1
// before the next phase is shown.
func (s *Sequencer) Frame(now time.Time) FrameState {
	s.Advance(now)

	if s.linePending {
		s.linePending = false
		return FrameState{Phase: core.PhaseLineAnimation, Progress: 1, Condition: s.cond}
	}

	fs := FrameState{Phase: s.phase, Condition: s.cond}
	if s.phase == core.PhaseLineAnimation && s.anim != nil {
		if p, ok := s.SampleAnimation(s.anim, now); ok {
			fs.Progress = p
			if p >= 1 {
				s.lineShown = true
			}
		}
	}
	return fs
}

// Advance processes all phase deadlines that have passed. Each transition
// is entered at its exact deadline rather than at the sample time, so
// phase durations stay exact even when a frame arrives late.
func (s *Sequencer) Advance(now time.Time) {
	for s.phase != core.PhaseComplete {
		deadline, bounded := s.deadline()
		if !bounded || now.Before(deadline) {
			return
		}
		s.leavePhase(deadline)
	}
}

// HandleKey offers a keypress to the current phase. Abort keys stop the
// run at once; response keys only matter during Response; everything else
// is inert everywhere.
func (s *Sequencer) HandleKey(key string, now time.Time) {
	s.Advance(now)

	if s.cfg.KeyMap().IsAbort(key) {
		s.Abort()
		return
	}
	if s.phase != core.PhaseResponse {
		return
	}
	if s.recorder.Capture(key, now) {
		s.results.Append(s.trialResult())
		s.enterPhase(core.PhaseInterTrialInterval, now)
	}
}

// Abort ends the run immediately. No result is recorded for the in-flight
// trial; previously completed results remain in the log.
func (s *Sequencer) Abort() {
	if s.phase == core.PhaseComplete {
		return
	}
	s.aborted = true
	s.phase = core.PhaseComplete
	s.token++
	s.anim = nil
	s.linePending = false
}

// SampleAnimation returns the clock's progress, or false when the clock
// belongs to a phase that has already ended. Stale ticks are expected
// during phase handoff and are discarded silently.
func (s *Sequencer) SampleAnimation(clock *AnimationClock, now time.Time) (float64, bool) {
	if clock == nil || clock.Token() != s.token {
		return 0, false
	}
	return clock.Progress(now), true
}

// --- Accessors ---

// Phase returns the current phase
func (s *Sequencer) Phase() core.Phase { return s.phase }

// Condition returns the in-flight trial's condition
func (s *Sequencer) Condition() core.TrialCondition { return s.cond }

// Token returns the current phase's generation token
func (s *Sequencer) Token() uint64 { return s.token }

// Animation returns the line-phase clock, nil outside LineAnimation
func (s *Sequencer) Animation() *AnimationClock { return s.anim }

// Results returns the completed-trial log in execution order
func (s *Sequencer) Results() []core.TrialResult { return s.results.Entries() }

// Completed returns the number of trials that finished their Response phase
func (s *Sequencer) Completed() int { return s.results.Len() }

// Aborted reports whether the run was stopped by the operator
func (s *Sequencer) Aborted() bool { return s.aborted }

// --- Transitions ---

// deadline returns the absolute end of the current phase. The second
// return is false when the phase has no timed end (an unbounded response
// window, or the terminal state).
func (s *Sequencer) deadline() (time.Time, bool) {
	var d time.Duration
	switch s.phase {
	case core.PhaseFixation:
		d = s.cfg.FixationDuration()
	case core.PhaseCue:
		d = s.cfg.CueDuration()
	case core.PhaseBlank:
		d = s.cfg.BlankDuration(s.cond)
	case core.PhaseLineAnimation:
		d = s.cfg.LineDuration(s.cond)
	case core.PhaseResponse:
		window, bounded := s.cfg.ResponseWindow()
		if !bounded {
			return time.Time{}, false
		}
		d = window
	case core.PhaseInterTrialInterval:
		d = s.cfg.ITIDuration()
	default:
		return time.Time{}, false
	}
	return s.phaseStart.Add(d), true
}

// leavePhase performs the unconditional forward transition out of the
// current phase at the given instant
func (s *Sequencer) leavePhase(at time.Time) {
	switch s.phase {
	case core.PhaseFixation:
		s.enterPhase(core.PhaseCue, at)
	case core.PhaseCue:
		s.enterPhase(core.PhaseBlank, at)
	case core.PhaseBlank:
		s.enterPhase(core.PhaseLineAnimation, at)
	case core.PhaseLineAnimation:
		if !s.lineShown {
			s.linePending = true
		}
		s.enterPhase(core.PhaseResponse, at)
	case core.PhaseResponse:
		// Bounded window elapsed with no qualifying key
		result := s.trialResult()
		if !result.Responded && s.TimeoutFn != nil {
			s.TimeoutFn()
		}
		s.results.Append(result)
		s.enterPhase(core.PhaseInterTrialInterval, at)
	case core.PhaseInterTrialInterval:
		s.nextTrial(at)
	}
}

// enterPhase records the phase start, invalidates outstanding animation
// ticks by bumping the token, and arms phase-entry state
func (s *Sequencer) enterPhase(p core.Phase, at time.Time) {
	s.phase = p
	s.phaseStart = at
	s.token++
	s.anim = nil

	switch p {
	case core.PhaseLineAnimation:
		s.anim = newAnimationClock(at, s.cfg.LineDuration(s.cond), s.token, s.cond.Origin)
		s.lineShown = false
	case core.PhaseResponse:
		s.recorder.Arm(at)
	}
}

// trialResult builds the in-flight trial's record, stamped with the
// effective SOA it ran at
func (s *Sequencer) trialResult() core.TrialResult {
	res := s.recorder.Result(s.cond)
	res.SOAMs = int(s.cfg.SOAFor(s.cond) / time.Millisecond)
	return res
}

// nextTrial pulls the next condition, or completes the run when the
// sequence is exhausted
func (s *Sequencer) nextTrial(at time.Time) {
	cond, ok := s.provider.Next()
	if !ok {
		s.phase = core.PhaseComplete
		s.token++
		s.anim = nil
		return
	}
	s.cond = cond
	s.enterPhase(core.PhaseFixation, at)
}
