package diagram

import (
	"fmt"
	"strings"

	"scaling-canvas/canvas"
)

// recorder is a canvas.Context that logs calls. Text is 8px per character
// with a 12px ascent.
type recorder struct {
	calls []string
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (r *recorder) SetStrokeStyle(b canvas.Brush, w float64) { r.record("SetStrokeStyle %g", w) }
func (r *recorder) SetFillStyle(canvas.Brush)                { r.record("SetFillStyle") }
func (r *recorder) SetFont(f canvas.Font)                    { r.record("SetFont %s", f) }
func (r *recorder) ClearRect(x, y, w, h float64)             { r.record("ClearRect %g %g %g %g", x, y, w, h) }
func (r *recorder) StrokeRect(x, y, w, h float64)            { r.record("StrokeRect %g %g %g %g", x, y, w, h) }
func (r *recorder) FillRect(x, y, w, h float64)              { r.record("FillRect %g %g %g %g", x, y, w, h) }
func (r *recorder) BeginPath()                               { r.record("BeginPath") }
func (r *recorder) MoveTo(x, y float64)                      { r.record("MoveTo %g %g", x, y) }
func (r *recorder) LineTo(x, y float64)                      { r.record("LineTo %g %g", x, y) }
func (r *recorder) ClosePath()                               { r.record("ClosePath") }
func (r *recorder) Arc(x, y, rad, a0, a1 float64)            { r.record("Arc %g %g %g", x, y, rad) }
func (r *recorder) Stroke()                                  { r.record("Stroke") }
func (r *recorder) Fill()                                    { r.record("Fill") }
func (r *recorder) FillText(s string, x, y float64)          { r.record("FillText %s %g %g", s, x, y) }

func (r *recorder) MeasureText(s string) canvas.TextMetrics {
	w := 8 * float64(len(s))
	return canvas.TextMetrics{Width: w, Right: w, Ascent: 12, Descent: 4}
}

func newTestBrush(unit float64) (*Brush, *recorder) {
	rec := &recorder{}
	return NewBrush(rec, unit), rec
}
