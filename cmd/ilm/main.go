// Command ilm runs the illusory line motion task: a sequence of timed
// trials presenting a peripheral cue followed by an animated line, and
// records the perceived motion direction per trial.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/Zyko0/go-sdl3/bin/binsdl"
	"github.com/Zyko0/go-sdl3/sdl"
	"github.com/gdamore/tcell/v2"

	"github.com/DJLougen/IllusoryLineMotion/audio"
	"github.com/DJLougen/IllusoryLineMotion/conditions"
	"github.com/DJLougen/IllusoryLineMotion/engine"
	"github.com/DJLougen/IllusoryLineMotion/render/sdlsurface"
	"github.com/DJLougen/IllusoryLineMotion/render/termsurface"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	configPath := flag.String("config", "", "YAML experiment config file")
	conditionsPath := flag.String("conditions", "conditions.csv", "Trial condition CSV file")
	output := flag.String("output", "results.csv", "Result CSV file")
	participant := flag.String("participant", "", "Participant ID (overrides config)")
	sessionID := flag.String("session", "", "Session label (overrides config)")
	speed := flag.Float64("speed", 0, "Line speed in deg/s (overrides config)")
	soa := flag.Int("soa", 0, "Cue-to-line SOA in ms (overrides config)")
	timeout := flag.Int("timeout", -1, "Response timeout in ms, 0 waits unboundedly (overrides config)")
	shuffle := flag.Bool("shuffle", false, "Shuffle trial order")
	seed := flag.Int64("seed", 1, "Shuffle seed")
	feedback := flag.Bool("feedback-tone", false, "Play a tone when a response window times out")
	preview := flag.Bool("preview", false, "Dry-run in the terminal instead of SDL (not calibration grade)")
	fullscreen := flag.Bool("fullscreen", false, "Run fullscreen")
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		loaded, err := engine.LoadConfig(*configPath)
		if err != nil {
			slog.Error("Failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *participant != "" {
		cfg.ParticipantID = *participant
	}
	if *sessionID != "" {
		cfg.Session = *sessionID
	}
	if *speed > 0 {
		cfg.LineSpeedDegPerSec = *speed
	}
	if *soa > 0 {
		cfg.SOAMs = *soa
	}
	if *timeout >= 0 {
		cfg.ResponseTimeoutMs = *timeout
	}
	if *shuffle {
		cfg.Shuffle = true
		cfg.ShuffleSeed = *seed
	}
	if *feedback {
		cfg.FeedbackTone = true
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	list, fellBack := conditions.LoadOrFallback(*conditionsPath, logger)
	provider := conditions.NewProvider(list)
	if cfg.Shuffle {
		provider.Shuffle(cfg.ShuffleSeed)
	}

	seq, err := engine.NewSequencer(cfg, engine.NewMonotonicTimeProvider(), provider)
	if err != nil {
		slog.Error("Failed to build sequencer", "error", err)
		os.Exit(1)
	}

	if cfg.FeedbackTone {
		fb, err := audio.NewFeedback()
		if err != nil {
			// Non-fatal, the run continues silently
			slog.Warn("Audio initialization failed", "error", err)
		}
		defer fb.Close()
		seq.TimeoutFn = fb.TimeoutTone
	}

	slog.Info("Starting run",
		"participant", cfg.ParticipantID,
		"session", cfg.Session,
		"trials", provider.TotalCount(),
		"fallback_conditions", fellBack,
		"line_speed_deg_per_sec", cfg.LineSpeedDegPerSec,
		"soa_ms", cfg.SOAMs)

	if *preview {
		err = runPreview(cfg, seq)
	} else {
		err = runSDL(cfg, seq, *fullscreen)
	}
	if err != nil {
		slog.Error("Run failed", "error", err)
	}

	results := seq.Results()
	if len(results) == 0 {
		slog.Warn("No completed trials, nothing to save")
		return
	}

	outputName := engine.TimestampedPath(*output, time.Now())
	if err := engine.SaveResults(outputName, cfg, results); err != nil {
		slog.Error("Failed to save results", "error", err)
		os.Exit(1)
	}
	slog.Info("Results saved", "path", outputName, "trials", len(results), "aborted", seq.Aborted())
}

// runSDL presents on a calibrated SDL display, paced by vsync
func runSDL(cfg *engine.ExperimentConfig, seq *engine.Sequencer, fullscreen bool) error {
	defer binsdl.Load().Unload()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	windowFlags := sdl.WINDOW_RESIZABLE
	if fullscreen {
		windowFlags |= sdl.WINDOW_FULLSCREEN
	}

	window, renderer, err := sdl.CreateWindowAndRenderer("Illusory Line Motion", cfg.ScreenWidthPx, cfg.ScreenHeightPx, windowFlags)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	defer renderer.Destroy()

	renderer.SetVSync(1)

	sess := engine.NewSession(cfg, seq, sdlsurface.New(renderer))
	sess.Start()

	for {
		now := time.Now()

		for {
			var ev sdl.Event
			if !sdl.PollEvent(&ev) {
				break
			}
			switch ev.Type {
			case sdl.EVENT_QUIT:
				seq.Abort()
			case sdl.EVENT_KEY_DOWN:
				sess.Key(ev.KeyboardEvent().Key.KeyName(), now)
			}
		}

		if !sess.Frame(time.Now()) {
			return nil
		}
	}
}

// runPreview drives the same sequencer on a tcell screen at ~60 Hz.
// Terminal timing is not calibration grade; this exists to check
// condition files and phase sequencing without a lab display.
func runPreview(cfg *engine.ExperimentConfig, seq *engine.Sequencer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer screen.Fini()

	sess := engine.NewSession(cfg, seq, termsurface.New(screen, float64(cfg.ScreenWidthPx), float64(cfg.ScreenHeightPx)))
	sess.Start()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				sess.Key(previewKeyName(ev), time.Now())
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if !sess.Frame(time.Now()) {
				return nil
			}
		}
	}
}

// previewKeyName maps tcell key events onto the same names SDL reports
func previewKeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "escape"
	case tcell.KeyRune:
		return string(ev.Rune())
	default:
		return ""
	}
}
