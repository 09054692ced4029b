package engine

import (
	"testing"
	"time"

	"github.com/DJLougen/IllusoryLineMotion/conditions"
	"github.com/DJLougen/IllusoryLineMotion/core"
	"github.com/DJLougen/IllusoryLineMotion/render"
)

// End-to-end run on the fallback condition set against a recording
// surface: the whole pipeline minus the display backend.
func TestSessionFallbackRunEndToEnd(t *testing.T) {
	cfg := testConfig()
	clock := NewMockTimeProvider(testStart)

	list := conditions.Fallback()
	seq, err := NewSequencer(cfg, clock, conditions.NewProvider(list))
	if err != nil {
		t.Fatalf("NewSequencer failed: %v", err)
	}

	surf := &render.Recording{}
	sess := NewSession(cfg, seq, surf)
	sess.Start()

	// Simulated 60 Hz display loop; respond 300ms into each Response
	var responded core.Phase
	frames := 0
	for !sess.Done() {
		clock.Advance(16 * time.Millisecond)
		now := clock.Now()
		cont := sess.Frame(now)
		frames++
		if !cont {
			break
		}
		if seq.Phase() == core.PhaseResponse && responded != core.PhaseResponse {
			sess.Key("p", now.Add(300*time.Millisecond))
		}
		responded = seq.Phase()
		if frames > 100_000 {
			t.Fatal("Run never completed")
		}
	}

	results := seq.Results()
	if len(results) != len(list) {
		t.Fatalf("Expected %d results, got %d", len(list), len(results))
	}
	for _, r := range results {
		if !r.Responded || r.Direction != core.DirectionRightToLeft {
			t.Errorf("Trial %d: expected right_to_left response, got %+v", r.TrialIndex, r)
		}
	}
	if surf.Presents == 0 || surf.Presents != frames {
		t.Errorf("Expected one present per frame (%d), got %d", frames, surf.Presents)
	}
}

func TestSessionAbortStopsFrames(t *testing.T) {
	cfg := testConfig()
	clock := NewMockTimeProvider(testStart)
	seq, err := NewSequencer(cfg, clock, conditions.NewProvider(conditions.Fallback()))
	if err != nil {
		t.Fatal(err)
	}

	sess := NewSession(cfg, seq, &render.Recording{})
	sess.Start()

	clock.Advance(100 * time.Millisecond)
	sess.Key("escape", clock.Now())

	if !sess.Done() {
		t.Error("Expected session done after abort")
	}
	if cont := sess.Frame(clock.Now()); cont {
		t.Error("Frame after abort should report completion")
	}
	if seq.Completed() != 0 {
		t.Errorf("Aborted first trial must record nothing, got %d", seq.Completed())
	}
}
