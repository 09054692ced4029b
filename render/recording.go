package render

// Recording is an in-memory Surface that logs draw calls for assertions.
// The zero value is ready to use.
type Recording struct {
	Clears   int
	Presents int
	Circles  []RecordedCircle
	Lines    []RecordedLine
}

type RecordedCircle struct {
	CX, CY, R float64
}

type RecordedLine struct {
	X1, Y1, X2, Y2, Width float64
}

func (r *Recording) Clear() {
	r.Clears++
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}

func (r *Recording) FillCircle(cx, cy, radius float64) {
	r.Circles = append(r.Circles, RecordedCircle{CX: cx, CY: cy, R: radius})
}

func (r *Recording) Line(x1, y1, x2, y2, width float64) {
	r.Lines = append(r.Lines, RecordedLine{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width})
}

func (r *Recording) Present() {
	r.Presents++
}
