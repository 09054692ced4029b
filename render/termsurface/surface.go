// Package termsurface backs a render.Surface with a tcell screen. Meant
// for dry runs of the trial pipeline in a terminal: cell resolution and
// terminal timing are nowhere near calibration grade, so it is a preview
// tool, never a data-collection path.
package termsurface

import (
	"github.com/gdamore/tcell/v2"
)

var drawStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

// Surface rasterizes virtual pixel coordinates onto terminal cells. The
// virtual canvas matches the configured screen size so geometry derived
// for the real display maps proportionally onto the terminal.
type Surface struct {
	screen tcell.Screen
	virtW  float64
	virtH  float64
}

// New wraps an initialized tcell screen presenting a virtW×virtH virtual
// pixel canvas
func New(screen tcell.Screen, virtW, virtH float64) *Surface {
	return &Surface{screen: screen, virtW: virtW, virtH: virtH}
}

// cell maps a virtual pixel coordinate to a terminal cell
func (s *Surface) cell(x, y float64) (int, int) {
	w, h := s.screen.Size()
	cx := int(x / s.virtW * float64(w))
	cy := int(y / s.virtH * float64(h))
	return cx, cy
}

func (s *Surface) set(cx, cy int) {
	w, h := s.screen.Size()
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return
	}
	s.screen.SetContent(cx, cy, '█', nil, drawStyle)
}

// Clear blanks the terminal
func (s *Surface) Clear() {
	s.screen.Clear()
}

// FillCircle paints the cells whose centers fall inside the circle,
// always at least the center cell so small markers stay visible
func (s *Surface) FillCircle(cx, cy, r float64) {
	x0, y0 := s.cell(cx, cy)
	x1, y1 := s.cell(cx-r, cy-r)
	x2, y2 := s.cell(cx+r, cy+r)

	painted := false
	for gy := y1; gy <= y2; gy++ {
		for gx := x1; gx <= x2; gx++ {
			dx := float64(gx-x0) / float64(max(x2-x1, 1)) * 2
			dy := float64(gy-y0) / float64(max(y2-y1, 1)) * 2
			if dx*dx+dy*dy <= 1 {
				s.set(gx, gy)
				painted = true
			}
		}
	}
	if !painted {
		s.set(x0, y0)
	}
}

// Line walks the segment cell by cell
func (s *Surface) Line(x1, y1, x2, y2, width float64) {
	ax, ay := s.cell(x1, y1)
	bx, by := s.cell(x2, y2)

	steps := max(abs(bx-ax), abs(by-ay))
	if steps == 0 {
		s.set(ax, ay)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.set(ax+int(t*float64(bx-ax)), ay+int(t*float64(by-ay)))
	}
}

// Present flushes the frame to the terminal
func (s *Surface) Present() {
	s.screen.Show()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
