package vmath

import (
	"errors"
	"fmt"
	"math"
)

// ErrAngleDomain is returned for visual angles at or beyond ±180°, where
// the tangent projection is undefined
var ErrAngleDomain = errors.New("vmath: visual angle must lie in (-180, 180)")

// DegToPixels converts a visual angle to a screen distance in pixels for a
// flat display at a known viewing distance.
//
// The physical extent subtended by the angle is
//
//	cm = 2 * viewingDistanceCm * tan(angleDeg * π / 360)
//
// which is then scaled by the screen's pixel density. Pure and
// deterministic: 0° maps to 0 px, the result increases monotonically on
// [0°, 180°), and negative angles return the mirrored negative offset
// (used for left-side placement). Callers must keep angles well below
// 180°; see DegToPixelsChecked for an explicit domain check.
func DegToPixels(angleDeg, viewingDistanceCm, monitorWidthCm, screenWidthPx float64) float64 {
	cm := 2 * viewingDistanceCm * math.Tan(angleDeg*math.Pi/360)
	return cm / monitorWidthCm * screenWidthPx
}

// DegToPixelsChecked is DegToPixels with the domain restriction enforced
func DegToPixelsChecked(angleDeg, viewingDistanceCm, monitorWidthCm, screenWidthPx float64) (float64, error) {
	if math.Abs(angleDeg) >= 180 {
		return 0, fmt.Errorf("%w: got %g", ErrAngleDomain, angleDeg)
	}
	return DegToPixels(angleDeg, viewingDistanceCm, monitorWidthCm, screenWidthPx), nil
}
