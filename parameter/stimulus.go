package parameter

// Timing defaults (milliseconds). Cue duration is fixed by the paradigm:
// the blank phase is defined as SOA minus this value, so configurations
// with SOA below it are rejected outright.
const (
	CueMs = 50

	DefaultFixationMs        = 1000
	DefaultSOAMs             = 150
	DefaultITIMs             = 500
	DefaultResponseTimeoutMs = 2000
	DefaultCenterHoldMs      = 100
)

// Stimulus layout in degrees of visual angle
const (
	MarkerEccentricityDeg = 4.0
	MarkerElevationDeg    = 1.1
	MarkerRadiusDeg       = 0.5
	CueRadiusDeg          = 1.0
	FixationSizeDeg       = 0.6
	DefaultDistanceDeg    = 8.0
)

// Line drawing
const (
	DefaultLineSpeedDegPerSec = 200.0
	LineWidthPx               = 3.0
)

// Default response key bindings
const (
	DefaultLeftToRightKey = "q"
	DefaultRightToLeftKey = "p"
	DefaultAbortKey       = "escape"
)
