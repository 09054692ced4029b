package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DJLougen/IllusoryLineMotion/core"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Default config should validate, got %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExperimentConfig)
	}{
		{"soa below cue duration", func(c *ExperimentConfig) { c.SOAMs = 49 }},
		{"zero line speed", func(c *ExperimentConfig) { c.LineSpeedDegPerSec = 0 }},
		{"negative line speed", func(c *ExperimentConfig) { c.LineSpeedDegPerSec = -4 }},
		{"zero monitor width", func(c *ExperimentConfig) { c.MonitorWidthCm = 0 }},
		{"zero viewing distance", func(c *ExperimentConfig) { c.ViewingDistanceCm = 0 }},
		{"zero screen width", func(c *ExperimentConfig) { c.ScreenWidthPx = 0 }},
		{"zero fixation", func(c *ExperimentConfig) { c.FixationMs = 0 }},
		{"negative timeout", func(c *ExperimentConfig) { c.ResponseTimeoutMs = -1 }},
		{"unknown center hold", func(c *ExperimentConfig) { c.CenterHold = "sometimes" }},
		{"fixed hold without duration", func(c *ExperimentConfig) { c.CenterHold = CenterHoldFixed; c.CenterHoldMs = 0 }},
		{"duplicate response keys", func(c *ExperimentConfig) { c.RightToLeftKey = c.LeftToRightKey }},
	}

	for _, tc := range tests {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected rejection, got nil", tc.name)
			continue
		}
		var ce *ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("%s: expected *ConfigError, got %T (%v)", tc.name, err, err)
		}
	}
}

func TestPhaseDurations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SOAMs = 150
	cfg.LineSpeedDegPerSec = 200

	cond := core.TrialCondition{Origin: core.OriginLeft, DistanceDeg: 8}

	if got := cfg.BlankDuration(cond); got != 100*time.Millisecond {
		t.Errorf("Blank duration for soa=150: expected 100ms, got %v", got)
	}
	if got := cfg.LineDuration(cond); got != 40*time.Millisecond {
		t.Errorf("Line duration for 8° at 200°/s: expected 40ms, got %v", got)
	}

	// Per-trial SOA override
	cond.SOAOverrideMs = 300
	if got := cfg.BlankDuration(cond); got != 250*time.Millisecond {
		t.Errorf("Blank duration for override soa=300: expected 250ms, got %v", got)
	}

	// 8° at 75°/s ≈ 106.7 ms
	cfg.LineSpeedDegPerSec = 75
	cond.SOAOverrideMs = 0
	got := cfg.LineDuration(cond)
	secs := 8.0 / 75.0
	want := time.Duration(secs * float64(time.Second))
	if got != want {
		t.Errorf("Line duration for 8° at 75°/s: expected %v, got %v", want, got)
	}
	if got < 106*time.Millisecond || got > 107*time.Millisecond {
		t.Errorf("Line duration should be ≈106.7ms, got %v", got)
	}
}

func TestCenterHoldPolicies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineSpeedDegPerSec = 200
	center := core.TrialCondition{Origin: core.OriginCenter, DistanceDeg: 8}

	cfg.CenterHold = CenterHoldAnimated
	if got := cfg.LineDuration(center); got != 40*time.Millisecond {
		t.Errorf("Animated hold: expected 40ms, got %v", got)
	}

	cfg.CenterHold = CenterHoldFixed
	cfg.CenterHoldMs = 250
	if got := cfg.LineDuration(center); got != 250*time.Millisecond {
		t.Errorf("Fixed hold: expected 250ms, got %v", got)
	}
}

func TestResponseWindow(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ResponseTimeoutMs = 2000
	d, bounded := cfg.ResponseWindow()
	if !bounded || d != 2*time.Second {
		t.Errorf("Expected bounded 2s window, got %v/%v", d, bounded)
	}

	cfg.ResponseTimeoutMs = 0
	if _, bounded := cfg.ResponseWindow(); bounded {
		t.Error("Timeout 0 should mean an unbounded wait")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("participant_id: \"123456\"\nsoa_ms: 300\nline_speed_deg_per_sec: 75\nresponse_timeout_ms: 0\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ParticipantID != "123456" || cfg.SOAMs != 300 || cfg.LineSpeedDegPerSec != 75 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.ResponseTimeoutMs != 0 {
		t.Errorf("Expected unbounded response window from file, got %d", cfg.ResponseTimeoutMs)
	}
	// Untouched fields keep defaults
	if cfg.FixationMs != 1000 || cfg.LeftToRightKey != "q" {
		t.Errorf("Defaults lost on load: %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("no/such/config.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}
