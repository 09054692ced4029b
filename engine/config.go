// Package engine drives a run: the trial phase sequencer, the animation
// clock, the response recorder, and the result export. All engine work
// happens on the caller's single event loop; nothing here blocks or
// spawns goroutines.
package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/DJLougen/IllusoryLineMotion/core"
	"github.com/DJLougen/IllusoryLineMotion/input"
	"github.com/DJLougen/IllusoryLineMotion/parameter"
	"github.com/DJLougen/IllusoryLineMotion/render"
)

// CenterHoldPolicy selects how long the line phase holds for center-origin
// trials, where the line is fully formed on the first frame
type CenterHoldPolicy string

const (
	// CenterHoldAnimated holds for the same duration an animated trial
	// of the same distance and speed would take
	CenterHoldAnimated CenterHoldPolicy = "animated-duration"

	// CenterHoldFixed holds for CenterHoldMs regardless of speed
	CenterHoldFixed CenterHoldPolicy = "fixed"
)

// ConfigError reports an invalid configuration field. Configuration is
// validated once before the run starts; nothing is clamped silently.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// ExperimentConfig holds every run parameter. Constructed once before the
// sequencer starts and passed by pointer into every component; immutable
// for the lifetime of the run.
type ExperimentConfig struct {
	ParticipantID string `yaml:"participant_id"`
	Session       string `yaml:"session"`

	LineSpeedDegPerSec float64 `yaml:"line_speed_deg_per_sec"`
	SOAMs              int     `yaml:"soa_ms"`

	MonitorWidthCm    float64 `yaml:"monitor_width_cm"`
	ViewingDistanceCm float64 `yaml:"viewing_distance_cm"`
	ScreenWidthPx     int     `yaml:"screen_width_px"`
	ScreenHeightPx    int     `yaml:"screen_height_px"`

	FixationMs int `yaml:"fixation_ms"`
	ITIMs      int `yaml:"iti_ms"`

	// ResponseTimeoutMs bounds the response window; 0 waits unboundedly
	// for a qualifying keypress
	ResponseTimeoutMs int `yaml:"response_timeout_ms"`

	CenterHold   CenterHoldPolicy `yaml:"center_hold"`
	CenterHoldMs int              `yaml:"center_hold_ms"`

	LeftToRightKey string `yaml:"left_to_right_key"`
	RightToLeftKey string `yaml:"right_to_left_key"`
	AbortKey       string `yaml:"abort_key"`

	Shuffle     bool  `yaml:"shuffle"`
	ShuffleSeed int64 `yaml:"shuffle_seed"`

	// FeedbackTone plays a short tone when a bounded response window
	// times out with no qualifying key
	FeedbackTone bool `yaml:"feedback_tone"`
}

// DefaultConfig returns the reference setup: the monitor calibration and
// timing of the original task
func DefaultConfig() *ExperimentConfig {
	return &ExperimentConfig{
		ParticipantID:      "000000",
		Session:            "001",
		LineSpeedDegPerSec: parameter.DefaultLineSpeedDegPerSec,
		SOAMs:              parameter.DefaultSOAMs,
		MonitorWidthCm:     34.5,
		ViewingDistanceCm:  60,
		ScreenWidthPx:      1728,
		ScreenHeightPx:     1117,
		FixationMs:         parameter.DefaultFixationMs,
		ITIMs:              parameter.DefaultITIMs,
		ResponseTimeoutMs:  parameter.DefaultResponseTimeoutMs,
		CenterHold:         CenterHoldAnimated,
		CenterHoldMs:       parameter.DefaultCenterHoldMs,
		LeftToRightKey:     parameter.DefaultLeftToRightKey,
		RightToLeftKey:     parameter.DefaultRightToLeftKey,
		AbortKey:           parameter.DefaultAbortKey,
	}
}

// LoadConfig reads a YAML config file over the defaults
func LoadConfig(path string) (*ExperimentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Validate fails fast on any invalid field
func (c *ExperimentConfig) Validate() error {
	if c.LineSpeedDegPerSec <= 0 {
		return &ConfigError{"line_speed_deg_per_sec", fmt.Sprintf("must be positive, got %g", c.LineSpeedDegPerSec)}
	}
	if c.SOAMs < parameter.CueMs {
		return &ConfigError{"soa_ms", fmt.Sprintf("must be at least %d (the cue duration), got %d", parameter.CueMs, c.SOAMs)}
	}
	if c.MonitorWidthCm <= 0 {
		return &ConfigError{"monitor_width_cm", "must be positive"}
	}
	if c.ViewingDistanceCm <= 0 {
		return &ConfigError{"viewing_distance_cm", "must be positive"}
	}
	if c.ScreenWidthPx <= 0 || c.ScreenHeightPx <= 0 {
		return &ConfigError{"screen_width_px/screen_height_px", "must be positive"}
	}
	if c.FixationMs <= 0 {
		return &ConfigError{"fixation_ms", "must be positive"}
	}
	if c.ITIMs < 0 {
		return &ConfigError{"iti_ms", "must not be negative"}
	}
	if c.ResponseTimeoutMs < 0 {
		return &ConfigError{"response_timeout_ms", "must not be negative (0 waits unboundedly)"}
	}
	switch c.CenterHold {
	case CenterHoldAnimated:
	case CenterHoldFixed:
		if c.CenterHoldMs <= 0 {
			return &ConfigError{"center_hold_ms", "must be positive with center_hold: fixed"}
		}
	default:
		return &ConfigError{"center_hold", fmt.Sprintf("unknown policy %q", c.CenterHold)}
	}
	if err := c.KeyMap().Validate(); err != nil {
		return &ConfigError{"keys", err.Error()}
	}
	return nil
}

// KeyMap returns the configured response/abort key bindings
func (c *ExperimentConfig) KeyMap() input.KeyMap {
	return input.KeyMap{
		LeftToRight: c.LeftToRightKey,
		RightToLeft: c.RightToLeftKey,
		Abort:       c.AbortKey,
	}
}

// View returns the physical display parameters for geometry derivation
func (c *ExperimentConfig) View() render.View {
	return render.View{
		ScreenWidthPx:     float64(c.ScreenWidthPx),
		ScreenHeightPx:    float64(c.ScreenHeightPx),
		MonitorWidthCm:    c.MonitorWidthCm,
		ViewingDistanceCm: c.ViewingDistanceCm,
	}
}

// --- Phase durations ---

// SOAFor returns the effective stimulus onset asynchrony for a trial,
// honoring a per-trial override
func (c *ExperimentConfig) SOAFor(cond core.TrialCondition) time.Duration {
	soa := c.SOAMs
	if cond.SOAOverrideMs > 0 {
		soa = cond.SOAOverrideMs
	}
	return time.Duration(soa) * time.Millisecond
}

// FixationDuration is the fixed baseline before the cue
func (c *ExperimentConfig) FixationDuration() time.Duration {
	return time.Duration(c.FixationMs) * time.Millisecond
}

// CueDuration is fixed by the paradigm
func (c *ExperimentConfig) CueDuration() time.Duration {
	return parameter.CueMs * time.Millisecond
}

// BlankDuration is the remainder of the SOA after the cue
func (c *ExperimentConfig) BlankDuration(cond core.TrialCondition) time.Duration {
	return c.SOAFor(cond) - c.CueDuration()
}

// LineDuration is how long the line phase holds. Animated trials take
// distance/speed; center trials follow the configured hold policy.
func (c *ExperimentConfig) LineDuration(cond core.TrialCondition) time.Duration {
	animated := time.Duration(cond.DistanceDeg / c.LineSpeedDegPerSec * float64(time.Second))
	if cond.Origin == core.OriginCenter && c.CenterHold == CenterHoldFixed {
		return time.Duration(c.CenterHoldMs) * time.Millisecond
	}
	return animated
}

// ResponseWindow returns the bounded response duration, or false for an
// unbounded wait
func (c *ExperimentConfig) ResponseWindow() (time.Duration, bool) {
	if c.ResponseTimeoutMs == 0 {
		return 0, false
	}
	return time.Duration(c.ResponseTimeoutMs) * time.Millisecond, true
}

// ITIDuration is the blank gap between trials
func (c *ExperimentConfig) ITIDuration() time.Duration {
	return time.Duration(c.ITIMs) * time.Millisecond
}
