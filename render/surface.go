// Package render contains the stateless stimulus draw routine and the
// drawing surface abstraction it targets. Stimuli are monochrome: white
// shapes on a black background, so the surface carries no color state.
package render

// Surface is the minimal draw target for a stimulus frame. Implementations
// back it with an SDL renderer for calibrated runs, a tcell screen for
// terminal dry runs, or an in-memory recording for tests. Coordinates are
// pixels with the origin at the top-left.
type Surface interface {
	// Clear fills the whole surface with the background color
	Clear()

	// FillCircle paints a filled circle centered at (cx, cy)
	FillCircle(cx, cy, r float64)

	// Line paints a stroked segment of the given width
	Line(x1, y1, x2, y2, width float64)

	// Present pushes the completed frame to the display
	Present()
}
