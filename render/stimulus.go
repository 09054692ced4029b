package render

import (
	"github.com/DJLougen/IllusoryLineMotion/core"
)

// DrawStimulus paints one complete frame for the given phase. Stateless:
// everything it needs arrives as arguments, so it can be called from any
// phase at any progress without ordering assumptions.
//
// Every frame starts from a cleared background and carries the fixation
// cross and the two placeholder markers. The cue phase adds a larger
// marker on the cued side; the line phase adds the partially drawn line.
// progress is the [0,1] completion of the line animation and is ignored
// outside PhaseLineAnimation.
func DrawStimulus(s Surface, phase core.Phase, progress float64, cond core.TrialCondition, g Geometry) {
	s.Clear()

	drawFixation(s, g)
	y := g.MarkerY()
	s.FillCircle(g.LeftMarkerX(), y, g.MarkerRadius)
	s.FillCircle(g.RightMarkerX(), y, g.MarkerRadius)

	switch phase {
	case core.PhaseCue:
		cueX := g.LeftMarkerX()
		if cond.Cue == core.CueRight {
			cueX = g.RightMarkerX()
		}
		s.FillCircle(cueX, y, g.CueRadius)

	case core.PhaseLineAnimation:
		xStart, xEnd := lineSpan(cond.Origin, g)
		currentX := xStart + (xEnd-xStart)*clamp01(progress)
		if cond.Origin == core.OriginCenter {
			// Center lines are always drawn fully formed
			currentX = xEnd
		}
		if currentX != xStart {
			s.Line(xStart, y, currentX, y, g.LineWidth)
		}
	}

	s.Present()
}

func drawFixation(s Surface, g Geometry) {
	s.Line(g.CenterX-g.FixationHalf, g.CenterY, g.CenterX+g.FixationHalf, g.CenterY, 1)
	s.Line(g.CenterX, g.CenterY-g.FixationHalf, g.CenterX, g.CenterY+g.FixationHalf, 1)
}

// lineSpan returns the start and end x of the animated line. The line
// always begins at the marker matching the trial's origin label and moves
// toward the opposite marker; center trials span the full gap.
func lineSpan(origin core.LineOrigin, g Geometry) (xStart, xEnd float64) {
	left, right := g.InnerEdges()
	if origin == core.OriginRight {
		return right, left
	}
	return left, right
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
