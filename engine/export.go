package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/DJLougen/IllusoryLineMotion/core"
)

var exportHeader = []string{
	"participant_id", "session", "trial_num", "cue_side", "line_origin",
	"reaction_time_ms", "line_speed_deg_per_sec", "distance_deg", "soa_ms", "response_direction",
}

// WriteResults writes one CSV row per completed trial. Trials that timed
// out leave the response cells empty. Distance and SOA come from the
// result, not the config, so per-trial overrides export as presented.
func WriteResults(w io.Writer, cfg *ExperimentConfig, results []core.TrialResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for _, r := range results {
		row := []string{
			cfg.ParticipantID,
			cfg.Session,
			strconv.Itoa(r.TrialIndex),
			r.Cue.String(),
			r.Origin.String(),
			"",
			strconv.FormatFloat(cfg.LineSpeedDegPerSec, 'g', -1, 64),
			strconv.FormatFloat(r.DistanceDeg, 'g', -1, 64),
			strconv.Itoa(r.SOAMs),
			"",
		}
		if r.Responded {
			row[5] = strconv.FormatFloat(float64(r.ReactionTime.Microseconds())/1000.0, 'f', 3, 64)
			row[9] = r.Direction.String()
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write trial %d: %w", r.TrialIndex, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// TimestampedPath inserts a timestamp before the path's extension so
// repeated runs never overwrite an earlier result file. Extensionless
// paths get .csv appended.
func TimestampedPath(path string, t time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	if ext == "" {
		ext = ".csv"
	}
	return base + "_" + t.Format("20060102-150405") + ext
}

// SaveResults writes the result log to a file
func SaveResults(path string, cfg *ExperimentConfig, results []core.TrialResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	return WriteResults(f, cfg, results)
}
