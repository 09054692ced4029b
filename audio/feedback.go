// Package audio plays the optional operator-configured feedback tone.
// Audio is strictly non-essential: any initialization failure downgrades
// the run to silent rather than stopping it.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	toneFrequency = 880
	toneDuration  = 150 * time.Millisecond
)

// Feedback owns the speaker. The zero value is a silent no-op; use
// NewFeedback to get a sounding one.
type Feedback struct {
	ready bool
}

// NewFeedback initializes the speaker. On error the returned Feedback is
// still usable and simply stays silent.
func NewFeedback() (*Feedback, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return &Feedback{}, err
	}
	return &Feedback{ready: true}, nil
}

// TimeoutTone plays a short sine marker for a response window that closed
// without a qualifying key. Non-blocking; the speaker mixes in background.
func (f *Feedback) TimeoutTone() {
	if f == nil || !f.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, toneFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneDuration), sine))
}

// Close releases the speaker
func (f *Feedback) Close() {
	if f != nil && f.ready {
		speaker.Close()
		f.ready = false
	}
}
