// Package ebitenhost binds a ScalingCanvas to an ebiten window. The game's
// Layout feeds the client size, and Frame hands the current screen image
// to the drawing context before the canvas draws.
package ebitenhost

import (
	"image"
	"image/color"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"scaling-canvas/canvas"
	"scaling-canvas/fonts"
	"scaling-canvas/host"
	"scaling-canvas/ui"
)

// Surface tracks the ebiten layout size. It is driven entirely by the
// game's Layout and Draw callbacks.
type Surface struct {
	w, h       int
	bufW, bufH int
	onResize   []func()
	ctx        *Context
	debug      *ui.DebugPanel
}

// New returns a surface of initial size w×h. Diagnostics go to debug,
// which may be nil.
func New(w, h int, debug *ui.DebugPanel) *Surface {
	if debug == nil {
		debug = &ui.DebugPanel{}
	}
	return &Surface{w: w, h: h, ctx: &Context{path: &vector.Path{}}, debug: debug}
}

func (s *Surface) ClientSize() (int, int) { return s.w, s.h }

// SetBufferSize records the size Layout returns to ebiten as the screen
// size, so the screen image matches the window one to one.
func (s *Surface) SetBufferSize(w, h int) { s.bufW, s.bufH = w, h }

func (s *Surface) OnResize(fn func()) { s.onResize = append(s.onResize, fn) }

func (s *Surface) Context2D() (canvas.Context, error) { return s.ctx, nil }

func (s *Surface) ReportDiagnostic(msg string) {
	host.Logger().Error("canvas diagnostic", slog.String("msg", msg))
	s.debug.SetError(msg)
}

// Layout implements the body of ebiten.Game.Layout: a changed outside size
// fires the resize callbacks, and the buffer size is returned.
func (s *Surface) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.w || outsideHeight != s.h {
		s.w, s.h = outsideWidth, outsideHeight
		for _, fn := range s.onResize {
			fn()
		}
	}
	if s.bufW <= 0 || s.bufH <= 0 {
		return max(s.w, 1), max(s.h, 1)
	}
	return s.bufW, s.bufH
}

// Frame binds screen as the drawing target until the next Frame.
func (s *Surface) Frame(screen *ebiten.Image) {
	s.ctx.screen = screen
}

var (
	emptyOnce     sync.Once
	emptySubImage *ebiten.Image
)

// whitePixel returns a 1×1 white source for DrawTriangles, cut from the
// middle of a 3×3 image so edge sampling stays white.
func whitePixel() *ebiten.Image {
	emptyOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		emptySubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return emptySubImage
}

// Context implements canvas.Context with ebiten's vector package. Drawing
// calls before the first Frame are dropped.
type Context struct {
	screen *ebiten.Image
	path   *vector.Path

	stroke      color.Color
	strokeWidth float64
	fill        color.Color
	font        canvas.Font
	face        font.Face
}

func (c *Context) SetStrokeStyle(b canvas.Brush, width float64) {
	c.stroke, c.strokeWidth = b, width
}

func (c *Context) SetFillStyle(b canvas.Brush) { c.fill = b }

func (c *Context) SetFont(f canvas.Font) {
	c.font = f
	c.face = fonts.Face(f.Family, f.Size)
}

func (c *Context) ClearRect(x, y, w, h float64) {
	if c.screen == nil {
		return
	}
	r := image.Rect(int(x), int(y), int(x+w+0.5), int(y+h+0.5))
	if c.screen.Bounds().In(r) {
		c.screen.Clear()
		return
	}
	c.screen.SubImage(r).(*ebiten.Image).Clear()
}

func (c *Context) StrokeRect(x, y, w, h float64) {
	if c.screen == nil {
		return
	}
	vector.StrokeRect(c.screen, float32(x), float32(y), float32(w), float32(h), float32(c.strokeWidth), orBlack(c.stroke), true)
}

func (c *Context) FillRect(x, y, w, h float64) {
	if c.screen == nil {
		return
	}
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(w), float32(h), orBlack(c.fill), true)
}

func (c *Context) BeginPath()          { c.path = &vector.Path{} }
func (c *Context) MoveTo(x, y float64) { c.path.MoveTo(float32(x), float32(y)) }
func (c *Context) LineTo(x, y float64) { c.path.LineTo(float32(x), float32(y)) }
func (c *Context) ClosePath()          { c.path.Close() }

func (c *Context) Arc(x, y, r, a0, a1 float64) {
	c.path.Arc(float32(x), float32(y), float32(r), float32(a0), float32(a1), vector.Clockwise)
}

func (c *Context) Stroke() {
	if c.screen == nil {
		return
	}
	opts := &vector.StrokeOptions{Width: float32(c.strokeWidth), LineJoin: vector.LineJoinRound}
	vs, is := c.path.AppendVerticesAndIndicesForStroke(nil, nil, opts)
	c.drawTriangles(vs, is, orBlack(c.stroke), ebiten.FillRuleFillAll)
}

func (c *Context) Fill() {
	if c.screen == nil {
		return
	}
	vs, is := c.path.AppendVerticesAndIndicesForFilling(nil, nil)
	c.drawTriangles(vs, is, orBlack(c.fill), ebiten.FillRuleNonZero)
}

func (c *Context) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color, rule ebiten.FillRule) {
	if len(is) == 0 {
		return
	}
	r, g, b, a := host.RGBA8(clr)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 255
		vs[i].ColorG = float32(g) / 255
		vs[i].ColorB = float32(b) / 255
		vs[i].ColorA = float32(a) / 255
	}
	c.screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	})
}

func (c *Context) FillText(s string, x, y float64) {
	if c.screen == nil || c.face == nil {
		return
	}
	text.Draw(c.screen, s, c.face, int(x+0.5), int(y+0.5), orBlack(c.fill))
}

func (c *Context) MeasureText(s string) canvas.TextMetrics {
	if c.face == nil {
		return canvas.TextMetrics{}
	}
	m := fonts.Measure(c.face, s)
	return canvas.TextMetrics{Width: m.Width, Right: m.Width, Ascent: m.Ascent, Descent: m.Descent}
}

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
