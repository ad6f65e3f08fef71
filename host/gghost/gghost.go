// Package gghost renders a ScalingCanvas headlessly into a gogpu/gg
// software raster, for tests, exports and the scalerender command.
package gghost

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"scaling-canvas/canvas"
	"scaling-canvas/fonts"
	"scaling-canvas/host"
)

// Surface is an offscreen raster of a given client size. Changing the
// client size with SetClientSize behaves like a window resize.
type Surface struct {
	dc       *gg.Context
	w, h     int
	onResize []func()
	ctx      *Context
	diag     string
}

// New returns a surface of w×h pixels. Non-positive sizes are clamped to 1
// since gg needs a non-empty pixmap.
func New(w, h int) *Surface {
	dc := gg.NewContext(max(w, 1), max(h, 1))
	s := &Surface{dc: dc, w: w, h: h}
	s.ctx = &Context{dc: dc, faces: map[canvas.Font]text.Face{}, sources: map[string]*text.FontSource{}}
	return s
}

func (s *Surface) ClientSize() (int, int) { return s.w, s.h }

func (s *Surface) SetBufferSize(w, h int) {
	if err := s.dc.Resize(max(w, 1), max(h, 1)); err != nil {
		host.Logger().Warn("gg resize failed", slog.Int("width", w), slog.Int("height", h), slog.Any("err", err))
	}
}

func (s *Surface) OnResize(fn func()) { s.onResize = append(s.onResize, fn) }

func (s *Surface) Context2D() (canvas.Context, error) { return s.ctx, nil }

// ReportDiagnostic paints msg in red over a cleared raster.
func (s *Surface) ReportDiagnostic(msg string) {
	s.diag = msg
	host.Logger().Error("canvas diagnostic", slog.String("msg", msg))
	s.dc.ClearWithColor(gg.FromColor(color.White))
	s.ctx.SetFont(canvas.DefaultFont)
	s.ctx.SetFillStyle(color.RGBA{R: 0xcc, A: 0xff})
	s.ctx.FillText(msg, 4, 4+canvas.DefaultFont.Size)
}

// Diagnostic returns the last reported diagnostic.
func (s *Surface) Diagnostic() string { return s.diag }

// SetClientSize changes the client size and fires the resize callbacks.
func (s *Surface) SetClientSize(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	for _, fn := range s.onResize {
		fn()
	}
}

// Image returns the rendered raster.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// EncodePNG writes the raster as PNG.
func (s *Surface) EncodePNG(w io.Writer) error { return s.dc.EncodePNG(w) }

// SavePNG writes the raster to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// Close releases the gg context.
func (s *Surface) Close() error { return s.dc.Close() }

// Context implements canvas.Context on a gg.Context. gg has one current
// paint, so the stroke and fill colors are kept here and set right before
// each stroke or fill.
type Context struct {
	dc          *gg.Context
	stroke      color.Color
	strokeWidth float64
	fill        color.Color
	font        canvas.Font
	face        text.Face

	faces   map[canvas.Font]text.Face
	sources map[string]*text.FontSource
}

func (c *Context) SetStrokeStyle(b canvas.Brush, width float64) {
	c.stroke, c.strokeWidth = b, width
}

func (c *Context) SetFillStyle(b canvas.Brush) { c.fill = b }

func (c *Context) SetFont(f canvas.Font) {
	c.font = f
	c.face = c.resolveFace(f)
	if c.face != nil {
		c.dc.SetFont(c.face)
	}
}

func (c *Context) resolveFace(f canvas.Font) text.Face {
	if face, ok := c.faces[f]; ok {
		return face
	}
	family, ok := fonts.Canonical(f.Family)
	if !ok {
		family = fonts.Sans
	}
	src, ok := c.sources[family]
	if !ok {
		var err error
		src, err = text.NewFontSource(fonts.TTF(family))
		if err != nil {
			host.Logger().Warn("gg font source failed", slog.String("family", family), slog.Any("err", err))
			return nil
		}
		c.sources[family] = src
	}
	face := src.Face(f.Size)
	c.faces[f] = face
	return face
}

// ClearRect makes the rect fully transparent. gg has no clear compositing
// for paths, so a partial rect is cleared pixel by pixel.
func (c *Context) ClearRect(x, y, w, h float64) {
	bw, bh := c.dc.Width(), c.dc.Height()
	if x <= 0 && y <= 0 && x+w >= float64(bw) && y+h >= float64(bh) {
		c.dc.Clear()
		return
	}
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h))).
		Intersect(image.Rect(0, 0, bw, bh))
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			c.dc.SetPixel(px, py, gg.Transparent)
		}
	}
}

func (c *Context) StrokeRect(x, y, w, h float64) {
	c.dc.ClearPath()
	c.dc.DrawRectangle(x, y, w, h)
	c.Stroke()
}

func (c *Context) FillRect(x, y, w, h float64) {
	c.dc.ClearPath()
	c.dc.DrawRectangle(x, y, w, h)
	c.Fill()
}

func (c *Context) BeginPath()          { c.dc.ClearPath() }
func (c *Context) MoveTo(x, y float64) { c.dc.MoveTo(x, y) }
func (c *Context) LineTo(x, y float64) { c.dc.LineTo(x, y) }
func (c *Context) ClosePath()          { c.dc.ClosePath() }

func (c *Context) Arc(x, y, r, a0, a1 float64) {
	c.dc.DrawArc(x, y, r, a0, a1)
}

func (c *Context) Stroke() {
	c.dc.SetColor(orBlack(c.stroke))
	c.dc.SetLineWidth(c.strokeWidth)
	c.do("stroke", c.dc.Stroke)
}

func (c *Context) Fill() {
	c.dc.SetColor(orBlack(c.fill))
	c.do("fill", c.dc.Fill)
}

func (c *Context) FillText(s string, x, y float64) {
	if c.face == nil {
		return
	}
	c.dc.SetColor(orBlack(c.fill))
	c.dc.DrawString(s, x, y)
}

func (c *Context) MeasureText(s string) canvas.TextMetrics {
	if c.face == nil {
		return canvas.TextMetrics{}
	}
	m := c.face.Metrics()
	w := c.face.Advance(s)
	return canvas.TextMetrics{Width: w, Right: w, Ascent: m.Ascent, Descent: m.Descent}
}

func (c *Context) do(op string, fn func() error) {
	if err := fn(); err != nil {
		host.Logger().Warn("gg "+op+" failed", slog.Any("err", err))
	}
}

func orBlack(b color.Color) color.Color {
	if b == nil {
		return color.Black
	}
	return b
}
