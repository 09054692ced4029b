package conditions

import (
	"github.com/DJLougen/IllusoryLineMotion/core"
	"github.com/DJLougen/IllusoryLineMotion/parameter"
)

// Fallback returns the fixed built-in condition list: every cue side
// crossed with every line origin exactly once, in a deterministic order.
func Fallback() []core.TrialCondition {
	sides := []core.CueSide{core.CueLeft, core.CueRight}
	origins := []core.LineOrigin{core.OriginLeft, core.OriginRight, core.OriginCenter}

	out := make([]core.TrialCondition, 0, len(sides)*len(origins))
	for _, cue := range sides {
		for _, origin := range origins {
			out = append(out, core.TrialCondition{
				Index:       len(out) + 1,
				Cue:         cue,
				Origin:      origin,
				DistanceDeg: parameter.DefaultDistanceDeg,
			})
		}
	}
	return out
}
