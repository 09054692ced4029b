package core

// Phase identifies one step of the fixed per-trial presentation sequence.
// Transitions are strictly forward: Fixation through InterTrialInterval,
// then either the next trial's Fixation or Complete after the last trial.
type Phase int

const (
	PhaseFixation Phase = iota
	PhaseCue
	PhaseBlank
	PhaseLineAnimation
	PhaseResponse
	PhaseInterTrialInterval
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseFixation:
		return "fixation"
	case PhaseCue:
		return "cue"
	case PhaseBlank:
		return "blank"
	case PhaseLineAnimation:
		return "line_animation"
	case PhaseResponse:
		return "response"
	case PhaseInterTrialInterval:
		return "inter_trial_interval"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}
