package diagram

import (
	"log/slog"
	"math"

	"scaling-canvas/canvas"
	"scaling-canvas/geom"
)

// Brush draws straight onto a host context in raster space (Y-down), with
// every length multiplied by Unit. Diagrams are laid out in brush units so
// the whole picture scales with one number.
type Brush struct {
	ctx  canvas.Context
	Unit float64
}

func NewBrush(ctx canvas.Context, unit float64) *Brush {
	return &Brush{ctx: ctx, Unit: unit}
}

// Rescale changes the unit for subsequent calls.
func (b *Brush) Rescale(unit float64) {
	b.Unit = unit
}

// SetStroke sets the line brush; width is in pixels, not units.
func (b *Brush) SetStroke(brush canvas.Brush, width float64) {
	b.ctx.SetStrokeStyle(brush, width)
}

func (b *Brush) SetFill(brush canvas.Brush) {
	b.ctx.SetFillStyle(brush)
}

// SetFont applies a font shorthand such as "1rem sans-serif"; fill, when
// non-nil, becomes the fill brush used for text.
func (b *Brush) SetFont(spec string, fill canvas.Brush) {
	f, err := canvas.ParseFont(spec)
	if err != nil {
		slog.Warn("bad font spec, keeping default", slog.String("spec", spec), slog.Any("err", err))
		f = canvas.DefaultFont
	}
	b.ctx.SetFont(f)
	if fill != nil {
		b.ctx.SetFillStyle(fill)
	}
}

func (b *Brush) Line(from, to geom.Vec2) {
	from, to = from.Scale(b.Unit), to.Scale(b.Unit)
	b.ctx.BeginPath()
	b.ctx.MoveTo(from.X, from.Y)
	b.ctx.LineTo(to.X, to.Y)
	b.ctx.Stroke()
}

func (b *Brush) pixels(spec canvas.RectSpec) (corner, size geom.Vec2) {
	r := canvas.ResolveRect(spec)
	return r.Min.Scale(b.Unit), r.Diagonal().Scale(b.Unit)
}

func (b *Brush) StrokeRect(spec canvas.RectSpec) {
	corner, size := b.pixels(spec)
	b.ctx.StrokeRect(corner.X, corner.Y, size.X, size.Y)
}

func (b *Brush) FillRect(spec canvas.RectSpec) {
	corner, size := b.pixels(spec)
	b.ctx.FillRect(corner.X, corner.Y, size.X, size.Y)
}

// Square fills a square of the given side around center.
func (b *Brush) Square(center geom.Vec2, side float64) {
	b.FillRect(canvas.CenterSize(center, geom.V(side, side)))
}

func (b *Brush) FillCircle(center geom.Vec2, radius float64) {
	b.arc(center, radius)
	b.ctx.Fill()
}

func (b *Brush) StrokeCircle(center geom.Vec2, radius float64) {
	b.arc(center, radius)
	b.ctx.Stroke()
}

func (b *Brush) arc(center geom.Vec2, radius float64) {
	c := center.Scale(b.Unit)
	b.ctx.BeginPath()
	b.ctx.Arc(c.X, c.Y, radius*b.Unit, 0, 2*math.Pi)
}

// TextSize returns the advance width and ascent of text in units.
func (b *Brush) TextSize(text string) geom.Vec2 {
	m := b.ctx.MeasureText(text)
	return geom.V(m.Width, m.Ascent).Div(b.Unit)
}

// Write draws text with its baseline-left anchor at pos.
func (b *Brush) Write(pos geom.Vec2, text string) {
	p := pos.Scale(b.Unit)
	b.ctx.FillText(text, p.X, p.Y)
}
