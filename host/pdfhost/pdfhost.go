// Package pdfhost renders a ScalingCanvas as vector PDF through gofpdf.
// One canvas pixel is one PDF point; the page origin is top-left, like the
// raster hosts.
package pdfhost

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/jung-kurt/gofpdf"

	"scaling-canvas/canvas"
	"scaling-canvas/fonts"
	"scaling-canvas/host"
)

// Surface is a PDF document whose current page is the drawing surface.
type Surface struct {
	pdf      *gofpdf.Fpdf
	w, h     int
	onResize []func()
	ctx      *Context
	diag     string
}

// New starts a document with one w×h point page.
func New(w, h int) *Surface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	pdf.SetCreator("scaling-canvas", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	s := &Surface{pdf: pdf, w: w, h: h}
	s.ctx = &Context{pdf: pdf}
	s.ctx.SetFont(canvas.DefaultFont)
	return s
}

func (s *Surface) ClientSize() (int, int) { return s.w, s.h }

// SetBufferSize is a no-op: a PDF page has no pixel buffer and its size is
// fixed when the page is added.
func (s *Surface) SetBufferSize(int, int) {}

func (s *Surface) OnResize(fn func()) { s.onResize = append(s.onResize, fn) }

func (s *Surface) Context2D() (canvas.Context, error) {
	if err := s.pdf.Error(); err != nil {
		return nil, err
	}
	return s.ctx, nil
}

// ReportDiagnostic writes msg at the top of the current page.
func (s *Surface) ReportDiagnostic(msg string) {
	s.diag = msg
	host.Logger().Error("canvas diagnostic", slog.String("msg", msg))
	s.pdf.SetTextColor(0xcc, 0, 0)
	s.pdf.SetFont("Helvetica", "", 12)
	s.pdf.Text(4, 16, msg)
}

// Diagnostic returns the last reported diagnostic.
func (s *Surface) Diagnostic() string { return s.diag }

// NewPage starts a page of the same size.
func (s *Surface) NewPage() {
	s.pdf.AddPage()
}

// SetPageSize starts a w×h page and fires the resize callbacks, so a bound
// canvas refits to it.
func (s *Surface) SetPageSize(w, h int) {
	s.w, s.h = w, h
	s.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: float64(w), Ht: float64(h)})
	for _, fn := range s.onResize {
		fn()
	}
}

// PageCount returns the number of pages so far.
func (s *Surface) PageCount() int { return s.pdf.PageCount() }

// SetCompression toggles stream compression, on by default.
func (s *Surface) SetCompression(on bool) { s.pdf.SetCompression(on) }

// Output finishes the document and writes it to w.
func (s *Surface) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WriteFile finishes the document and writes it to path.
func (s *Surface) WriteFile(path string) error {
	if err := s.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// Context implements canvas.Context on gofpdf. Path calls go straight to
// the gofpdf path API; alpha is set per operation since gofpdf keeps a
// single alpha for strokes and fills.
type Context struct {
	pdf *gofpdf.Fpdf

	stroke      canvas.Brush
	strokeWidth float64
	fill        canvas.Brush
	font        canvas.Font
	face        pdfFace

	started bool
}

// pdfFace is a core PDF font and its vertical metrics per unit size.
type pdfFace struct {
	family, style   string
	ascent, descent float64
}

var (
	helvetica     = pdfFace{family: "Helvetica", ascent: 0.718, descent: 0.207}
	helveticaBold = pdfFace{family: "Helvetica", style: "B", ascent: 0.718, descent: 0.207}
	courier       = pdfFace{family: "Courier", ascent: 0.629, descent: 0.157}
)

func faceFor(family string) pdfFace {
	f, _ := fonts.Canonical(family)
	switch f {
	case fonts.Mono:
		return courier
	case fonts.Bold:
		return helveticaBold
	}
	return helvetica
}

func (c *Context) SetStrokeStyle(b canvas.Brush, width float64) {
	c.stroke, c.strokeWidth = b, width
	r, g, bl, _ := host.RGBA8(b)
	c.pdf.SetDrawColor(int(r), int(g), int(bl))
	c.pdf.SetLineWidth(width)
}

func (c *Context) SetFillStyle(b canvas.Brush) {
	c.fill = b
	r, g, bl, _ := host.RGBA8(b)
	c.pdf.SetFillColor(int(r), int(g), int(bl))
	c.pdf.SetTextColor(int(r), int(g), int(bl))
}

func (c *Context) SetFont(f canvas.Font) {
	c.font = f
	c.face = faceFor(f.Family)
	c.pdf.SetFont(c.face.family, c.face.style, f.Size)
}

func (c *Context) alpha(b canvas.Brush) {
	_, _, _, a := host.RGBA8(b)
	c.pdf.SetAlpha(float64(a)/255, "Normal")
}

// ClearRect paints the rect white; a PDF page cannot be erased.
func (c *Context) ClearRect(x, y, w, h float64) {
	c.pdf.SetFillColor(0xff, 0xff, 0xff)
	c.pdf.SetAlpha(1, "Normal")
	c.pdf.Rect(x, y, w, h, "F")
	c.SetFillStyle(c.fill)
}

func (c *Context) StrokeRect(x, y, w, h float64) {
	c.alpha(c.stroke)
	c.pdf.Rect(x, y, w, h, "D")
}

func (c *Context) FillRect(x, y, w, h float64) {
	c.alpha(c.fill)
	c.pdf.Rect(x, y, w, h, "F")
}

func (c *Context) BeginPath() { c.started = false }

func (c *Context) MoveTo(x, y float64) {
	c.pdf.MoveTo(x, y)
	c.started = true
}

func (c *Context) LineTo(x, y float64) {
	if !c.started {
		c.MoveTo(x, y)
		return
	}
	c.pdf.LineTo(x, y)
}

func (c *Context) ClosePath() { c.pdf.ClosePath() }

// Arc takes canvas angles, which turn clockwise on the page; gofpdf turns
// counter-clockwise, hence the negation.
func (c *Context) Arc(x, y, r, a0, a1 float64) {
	if !c.started {
		c.MoveTo(x+r*math.Cos(a0), y+r*math.Sin(a0))
	}
	deg := 180 / math.Pi
	c.pdf.ArcTo(x, y, r, r, 0, -a0*deg, -a1*deg)
}

func (c *Context) Stroke() {
	if !c.started {
		return
	}
	c.alpha(c.stroke)
	c.pdf.DrawPath("D")
	c.started = false
}

func (c *Context) Fill() {
	if !c.started {
		return
	}
	c.alpha(c.fill)
	c.pdf.DrawPath("F")
	c.started = false
}

func (c *Context) FillText(s string, x, y float64) {
	c.alpha(c.fill)
	c.pdf.Text(x, y, s)
}

func (c *Context) MeasureText(s string) canvas.TextMetrics {
	w := c.pdf.GetStringWidth(s)
	return canvas.TextMetrics{
		Width:   w,
		Right:   w,
		Ascent:  c.face.ascent * c.font.Size,
		Descent: c.face.descent * c.font.Size,
	}
}
