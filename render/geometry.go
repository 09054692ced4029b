package render

import (
	"github.com/DJLougen/IllusoryLineMotion/parameter"
	"github.com/DJLougen/IllusoryLineMotion/vmath"
)

// View holds the physical display parameters needed to convert visual
// angles to pixels
type View struct {
	ScreenWidthPx     float64
	ScreenHeightPx    float64
	MonitorWidthCm    float64
	ViewingDistanceCm float64
}

// Geometry holds the pixel placements for one frame. Derived, never
// stored: callers recompute it per draw call from the immutable config,
// so a mid-run change of anything is structurally impossible.
type Geometry struct {
	CenterX float64
	CenterY float64

	// Horizontal center-to-marker distance and vertical lift above center
	MarkerOffsetX float64
	MarkerOffsetY float64

	MarkerRadius float64
	CueRadius    float64

	// Half-extent of one fixation cross arm
	FixationHalf float64

	LineWidth float64
}

// DeriveGeometry converts the stimulus layout from degrees of visual
// angle to pixels. distanceDeg is the trial's marker separation; the
// markers sit at ±distanceDeg/2 from center, lifted MarkerElevationDeg
// above the fixation row.
func DeriveGeometry(v View, distanceDeg float64) Geometry {
	px := func(deg float64) float64 {
		return vmath.DegToPixels(deg, v.ViewingDistanceCm, v.MonitorWidthCm, v.ScreenWidthPx)
	}

	return Geometry{
		CenterX:       v.ScreenWidthPx / 2,
		CenterY:       v.ScreenHeightPx / 2,
		MarkerOffsetX: px(distanceDeg / 2),
		MarkerOffsetY: px(parameter.MarkerElevationDeg),
		MarkerRadius:  px(parameter.MarkerRadiusDeg),
		CueRadius:     px(parameter.CueRadiusDeg),
		FixationHalf:  px(parameter.FixationSizeDeg / 2),
		LineWidth:     parameter.LineWidthPx,
	}
}

// MarkerY returns the screen row of the placeholder markers and the line.
// Markers sit above center, so the elevation is subtracted.
func (g Geometry) MarkerY() float64 {
	return g.CenterY - g.MarkerOffsetY
}

// LeftMarkerX and RightMarkerX return the marker centers
func (g Geometry) LeftMarkerX() float64  { return g.CenterX - g.MarkerOffsetX }
func (g Geometry) RightMarkerX() float64 { return g.CenterX + g.MarkerOffsetX }

// InnerEdges returns the x coordinates the animated line spans: the facing
// edges of the left and right markers
func (g Geometry) InnerEdges() (left, right float64) {
	return g.LeftMarkerX() + g.MarkerRadius, g.RightMarkerX() - g.MarkerRadius
}
