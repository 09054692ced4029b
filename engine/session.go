package engine

import (
	"time"

	"github.com/DJLougen/IllusoryLineMotion/core"
	"github.com/DJLougen/IllusoryLineMotion/render"
)

// Session ties one sequencer to one drawing surface for the lifetime of a
// run. The surface and the result log are owned by the caller's event
// loop; nothing here is shared across goroutines.
type Session struct {
	cfg     *ExperimentConfig
	seq     *Sequencer
	surface render.Surface
}

// NewSession wires a sequencer to a surface
func NewSession(cfg *ExperimentConfig, seq *Sequencer, surface render.Surface) *Session {
	return &Session{cfg: cfg, seq: seq, surface: surface}
}

// Start begins the first trial
func (s *Session) Start() {
	s.seq.Start()
}

// Frame advances the sequencer to now and draws the resulting frame.
// Geometry is re-derived per draw call from the immutable config and the
// in-flight condition. Returns false once the run is complete.
func (s *Session) Frame(now time.Time) bool {
	fs := s.seq.Frame(now)

	geom := render.DeriveGeometry(s.cfg.View(), fs.Condition.DistanceDeg)
	render.DrawStimulus(s.surface, fs.Phase, fs.Progress, fs.Condition, geom)

	return fs.Phase != core.PhaseComplete
}

// Key forwards a keypress to the sequencer
func (s *Session) Key(name string, now time.Time) {
	s.seq.HandleKey(name, now)
}

// Done reports whether the run has reached its terminal state
func (s *Session) Done() bool {
	return s.seq.Phase() == core.PhaseComplete
}

// Sequencer exposes the underlying state machine for result export
func (s *Session) Sequencer() *Sequencer {
	return s.seq
}
