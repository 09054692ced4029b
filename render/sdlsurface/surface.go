// Package sdlsurface backs a render.Surface with an SDL3 renderer. This
// is the calibrated-display path used for real sessions.
package sdlsurface

import (
	"math"

	"github.com/Zyko0/go-sdl3/sdl"
)

// Stimuli are monochrome: white shapes on black
var (
	background = sdl.Color{R: 0, G: 0, B: 0, A: 255}
	foreground = sdl.Color{R: 255, G: 255, B: 255, A: 255}
)

// Surface draws stimulus primitives through an SDL renderer. Must only be
// used from the thread that owns the SDL event loop.
type Surface struct {
	renderer *sdl.Renderer
}

// New wraps an SDL renderer
func New(renderer *sdl.Renderer) *Surface {
	return &Surface{renderer: renderer}
}

// Clear fills the frame with the background color
func (s *Surface) Clear() {
	s.renderer.SetDrawColor(background.R, background.G, background.B, background.A)
	s.renderer.Clear()
}

// FillCircle paints a filled circle as horizontal scanlines. SDL3 has no
// circle primitive; one line per row is exact and cheap at stimulus sizes.
func (s *Surface) FillCircle(cx, cy, r float64) {
	s.renderer.SetDrawColor(foreground.R, foreground.G, foreground.B, foreground.A)

	ri := int(math.Ceil(r))
	for dy := -ri; dy <= ri; dy++ {
		span := r*r - float64(dy)*float64(dy)
		if span < 0 {
			continue
		}
		half := math.Sqrt(span)
		y := float32(cy + float64(dy))
		s.renderer.RenderLine(float32(cx-half), y, float32(cx+half), y)
	}
}

// Line paints a stroked segment. Stimulus lines are axis-aligned, so a
// width above 1 is rendered as a filled rect expanded perpendicular to
// the segment's long axis.
func (s *Surface) Line(x1, y1, x2, y2, width float64) {
	s.renderer.SetDrawColor(foreground.R, foreground.G, foreground.B, foreground.A)

	if width <= 1 {
		s.renderer.RenderLine(float32(x1), float32(y1), float32(x2), float32(y2))
		return
	}

	half := width / 2
	var rect sdl.FRect
	if math.Abs(y2-y1) <= math.Abs(x2-x1) {
		// Horizontal-ish: thicken vertically
		left, right := math.Min(x1, x2), math.Max(x1, x2)
		rect = sdl.FRect{X: float32(left), Y: float32(y1 - half), W: float32(right - left), H: float32(width)}
	} else {
		top, bottom := math.Min(y1, y2), math.Max(y1, y2)
		rect = sdl.FRect{X: float32(x1 - half), Y: float32(top), W: float32(width), H: float32(bottom - top)}
	}
	s.renderer.RenderFillRect(&rect)
}

// Present pushes the frame to the display
func (s *Surface) Present() {
	s.renderer.Present()
}
