package core

// CueSide is the peripheral location briefly highlighted before line onset
type CueSide int

const (
	CueLeft CueSide = iota
	CueRight
)

func (c CueSide) String() string {
	if c == CueRight {
		return "right"
	}
	return "left"
}

// LineOrigin is the placeholder marker the animated line grows from
type LineOrigin int

const (
	OriginLeft LineOrigin = iota
	OriginRight
	OriginCenter
)

func (o LineOrigin) String() string {
	switch o {
	case OriginRight:
		return "right"
	case OriginCenter:
		return "center"
	default:
		return "left"
	}
}

// TrialCondition holds the per-trial parameters pulled from the condition
// source. Created by the provider before the run starts and read-only
// thereafter.
type TrialCondition struct {
	// Index is the stable ordinal from the condition source, not the
	// execution position (the provider may have shuffled the sequence).
	Index int

	Cue    CueSide
	Origin LineOrigin

	// DistanceDeg is the marker separation the line travels, in degrees
	// of visual angle.
	DistanceDeg float64

	// SOAOverrideMs replaces the configured SOA for this trial when > 0.
	SOAOverrideMs int
}
