// Package conditions supplies the ordered trial sequence for a run.
// Conditions come from a CSV file in the format produced by the condition
// generator; when the file cannot be read or parsed the provider falls
// back to a fixed built-in list so a session is never lost to a missing
// input file.
package conditions

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DJLougen/IllusoryLineMotion/core"
	"github.com/DJLougen/IllusoryLineMotion/parameter"
)

// CSV columns: cueCondition, lineCondition, trial_num[, distance_deg, soa_ms]
const (
	colCue = iota
	colLine
	colTrialNum
	colDistance
	colSOA
)

// Load reads trial conditions from a CSV file
func Load(path string) ([]core.TrialCondition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("conditions: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads trial conditions from CSV data. The header row is skipped.
// Rows that cannot be interpreted (bad trial number, unknown indicator,
// out-of-range override) are dropped individually; a partial parse
// failure never aborts the load.
func Parse(r io.Reader) ([]core.TrialCondition, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("conditions: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("conditions: empty source")
	}

	var out []core.TrialCondition
	for _, record := range records[1:] {
		cond, ok := parseRow(record)
		if !ok {
			continue
		}
		out = append(out, cond)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("conditions: no usable rows")
	}
	return out, nil
}

func parseRow(record []string) (core.TrialCondition, bool) {
	var zero core.TrialCondition

	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	if len(record) <= colTrialNum || record[colCue] == "" {
		return zero, false
	}

	cue, ok := parseCue(record[colCue])
	if !ok {
		return zero, false
	}
	origin, ok := parseOrigin(record[colLine])
	if !ok {
		return zero, false
	}
	trialNum, err := strconv.Atoi(record[colTrialNum])
	if err != nil {
		return zero, false
	}

	cond := core.TrialCondition{
		Index:       trialNum,
		Cue:         cue,
		Origin:      origin,
		DistanceDeg: parameter.DefaultDistanceDeg,
	}

	if len(record) > colDistance && record[colDistance] != "" {
		d, err := strconv.ParseFloat(record[colDistance], 64)
		if err != nil || d <= 0 {
			return zero, false
		}
		cond.DistanceDeg = d
	}
	if len(record) > colSOA && record[colSOA] != "" {
		soa, err := strconv.Atoi(record[colSOA])
		if err != nil || soa < parameter.CueMs {
			return zero, false
		}
		cond.SOAOverrideMs = soa
	}

	return cond, true
}

// parseCue accepts the generator vocabulary (cued = right marker,
// uncued = left marker) as well as literal side names
func parseCue(s string) (core.CueSide, bool) {
	switch strings.ToLower(s) {
	case "cued", "right":
		return core.CueRight, true
	case "uncued", "left":
		return core.CueLeft, true
	default:
		return 0, false
	}
}

// parseOrigin accepts the generator vocabulary (congruent = line from the
// cued/right marker, incongruent = from the left) as well as literal names
func parseOrigin(s string) (core.LineOrigin, bool) {
	switch strings.ToLower(s) {
	case "congruent", "right":
		return core.OriginRight, true
	case "incongruent", "left":
		return core.OriginLeft, true
	case "center", "centre":
		return core.OriginCenter, true
	default:
		return 0, false
	}
}

// LoadOrFallback loads conditions from path, substituting the built-in
// fallback list on any total failure. The run proceeds either way: losing
// a participant's session is costlier than running the default set.
func LoadOrFallback(path string, logger *slog.Logger) ([]core.TrialCondition, bool) {
	if logger == nil {
		logger = slog.Default()
	}

	list, err := Load(path)
	if err != nil {
		logger.Warn("condition source unusable, running built-in fallback set",
			"path", path, "error", err, "trials", len(Fallback()))
		return Fallback(), true
	}
	return list, false
}
