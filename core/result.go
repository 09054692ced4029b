package core

import "time"

// ResponseDirection is the semantic label derived from the response key
type ResponseDirection int

const (
	DirectionNone ResponseDirection = iota
	DirectionLeftToRight
	DirectionRightToLeft
)

func (d ResponseDirection) String() string {
	switch d {
	case DirectionLeftToRight:
		return "left_to_right"
	case DirectionRightToLeft:
		return "right_to_left"
	default:
		return ""
	}
}

// TrialResult is the immutable outcome of one completed Response phase.
// Created exactly once per trial and never mutated afterwards.
type TrialResult struct {
	TrialIndex int
	Cue        CueSide
	Origin     LineOrigin

	// DistanceDeg and SOAMs are the effective values the trial ran at,
	// after any per-trial override. Recorded here so the export reports
	// what was presented, not the run-level defaults.
	DistanceDeg float64
	SOAMs       int

	// Responded reports whether a qualifying key was pressed before the
	// response window closed. When false, Key, ReactionTime and Direction
	// are zero values and export as empty cells.
	Responded    bool
	Key          string
	ReactionTime time.Duration
	Direction    ResponseDirection
}

// ResultLog is the ordered, append-only record of completed trials.
// Length always equals the number of trials that finished their Response
// phase; order equals execution order.
type ResultLog struct {
	entries []TrialResult
}

// Append adds one result. Results are stored by value so callers cannot
// mutate an entry after it is logged.
func (l *ResultLog) Append(r TrialResult) {
	l.entries = append(l.entries, r)
}

// Len returns the number of completed trials
func (l *ResultLog) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the log in execution order
func (l *ResultLog) Entries() []TrialResult {
	out := make([]TrialResult, len(l.entries))
	copy(out, l.entries)
	return out
}
