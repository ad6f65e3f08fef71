package canvas

import (
	"errors"
	"fmt"
	"strings"
)

// fakeSurface is an in-memory Surface whose context records every call.
type fakeSurface struct {
	w, h       int
	bufW, bufH int
	onResize   []func()
	ctx        *fakeContext
	ctxErr     error
	diagnostic string
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, ctx: &fakeContext{charWidth: 8, ascent: 12, descent: 4}}
}

func (s *fakeSurface) ClientSize() (int, int) { return s.w, s.h }

func (s *fakeSurface) SetBufferSize(w, h int) { s.bufW, s.bufH = w, h }

func (s *fakeSurface) OnResize(fn func()) { s.onResize = append(s.onResize, fn) }

func (s *fakeSurface) Context2D() (Context, error) {
	if s.ctxErr != nil {
		return nil, s.ctxErr
	}
	return s.ctx, nil
}

func (s *fakeSurface) ReportDiagnostic(msg string) { s.diagnostic = msg }

// resize changes the client size and fires the resize callbacks.
func (s *fakeSurface) resize(w, h int) {
	s.w, s.h = w, h
	for _, fn := range s.onResize {
		fn()
	}
}

var errNoGPU = errors.New("no gpu")

type fakeContext struct {
	calls []string

	stroke      Brush
	strokeWidth float64
	fill        Brush
	font        Font

	charWidth, ascent, descent float64
}

func (c *fakeContext) record(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *fakeContext) reset() { c.calls = nil }

func (c *fakeContext) has(prefix string) bool {
	for _, call := range c.calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

func (c *fakeContext) SetStrokeStyle(b Brush, w float64) {
	c.stroke, c.strokeWidth = b, w
	c.record("SetStrokeStyle %g", w)
}

func (c *fakeContext) SetFillStyle(b Brush) {
	c.fill = b
	c.record("SetFillStyle")
}

func (c *fakeContext) SetFont(f Font) {
	c.font = f
	c.record("SetFont %s", f)
}

func (c *fakeContext) ClearRect(x, y, w, h float64)  { c.record("ClearRect %g %g %g %g", x, y, w, h) }
func (c *fakeContext) StrokeRect(x, y, w, h float64) { c.record("StrokeRect %g %g %g %g", x, y, w, h) }
func (c *fakeContext) FillRect(x, y, w, h float64)   { c.record("FillRect %g %g %g %g", x, y, w, h) }
func (c *fakeContext) BeginPath()                    { c.record("BeginPath") }
func (c *fakeContext) MoveTo(x, y float64)           { c.record("MoveTo %g %g", x, y) }
func (c *fakeContext) LineTo(x, y float64)           { c.record("LineTo %g %g", x, y) }
func (c *fakeContext) ClosePath()                    { c.record("ClosePath") }
func (c *fakeContext) Stroke()                       { c.record("Stroke") }
func (c *fakeContext) Fill()                         { c.record("Fill") }

func (c *fakeContext) Arc(x, y, r, a0, a1 float64) {
	c.record("Arc %g %g %g", x, y, r)
}

func (c *fakeContext) FillText(s string, x, y float64) {
	c.record("FillText %s %g %g", s, x, y)
}

func (c *fakeContext) MeasureText(s string) TextMetrics {
	w := c.charWidth * float64(len(s))
	return TextMetrics{Width: w, Left: 0, Right: w, Ascent: c.ascent, Descent: c.descent}
}
