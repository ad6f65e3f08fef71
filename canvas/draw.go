package canvas

import (
	"image/color"
	"math"

	"scaling-canvas/geom"
)

var defaultInk Brush = color.Black

// RectSpec selects a world rect either by its corners or by a center and
// full size. Build one with Corners or CenterSize.
type RectSpec interface {
	worldRect() geom.Rect
}

type cornersSpec struct {
	rect geom.Rect
}

type centerSizeSpec struct {
	center, size geom.Vec2
}

func (s cornersSpec) worldRect() geom.Rect    { return s.rect.Normalized() }
func (s centerSizeSpec) worldRect() geom.Rect { return geom.FromCenterSize(s.center, s.size.Abs()) }

// Corners selects r as is.
func Corners(r geom.Rect) RectSpec {
	return cornersSpec{rect: r}
}

// CenterSize selects the rect spanning center ± size/2.
func CenterSize(center, size geom.Vec2) RectSpec {
	return centerSizeSpec{center: center, size: size}
}

// ResolveRect returns the world rect a spec describes.
func ResolveRect(spec RectSpec) geom.Rect {
	return spec.worldRect()
}

// Stroke returns the active stroke state.
func (sc *ScalingCanvas) Stroke() StrokeStyle { return sc.stroke }

// Fill returns the active fill state.
func (sc *ScalingCanvas) Fill() FillStyle { return sc.fill }

// Font returns the active font state.
func (sc *ScalingCanvas) Font() FontStyle { return sc.font }

// SetStroke replaces the persistent stroke state.
func (sc *ScalingCanvas) SetStroke(style StrokeStyle) {
	sc.stroke = style
	sc.applyStroke()
}

// SetFill replaces the persistent fill state.
func (sc *ScalingCanvas) SetFill(style FillStyle) {
	sc.fill = style
	sc.applyFill()
}

// SetFont replaces the persistent font state.
func (sc *ScalingCanvas) SetFont(style FontStyle) {
	sc.font = style
	sc.applyFont()
}

func (sc *ScalingCanvas) applyStroke() { sc.ctx.SetStrokeStyle(sc.stroke.Brush, sc.stroke.Width) }
func (sc *ScalingCanvas) applyFill()   { sc.ctx.SetFillStyle(sc.fill.Brush) }

func (sc *ScalingCanvas) applyFont() {
	sc.ctx.SetFont(sc.font.Font)
}

func (sc *ScalingCanvas) useStroke(style *StrokeStyle) {
	if style != nil {
		sc.SetStroke(*style)
	}
}

func (sc *ScalingCanvas) useFill(style *FillStyle) {
	if style != nil {
		sc.SetFill(*style)
	}
}

// Clear wipes the whole canvas. If fill is non-nil the cleared area is then
// painted with it; the persistent fill state is left untouched.
func (sc *ScalingCanvas) Clear(fill Brush) error {
	_, canvas := rects(sc.cam)
	if canvas == nil {
		return ErrNotInitialized
	}
	size := canvas.Diagonal()
	sc.ctx.ClearRect(canvas.Min.X, canvas.Min.Y, size.X, size.Y)
	if fill != nil {
		sc.ctx.SetFillStyle(fill)
		sc.ctx.FillRect(canvas.Min.X, canvas.Min.Y, size.X, size.Y)
		sc.applyFill()
	}
	return nil
}

// StrokeLine draws a segment between two world points.
func (sc *ScalingCanvas) StrokeLine(from, to geom.Vec2, style *StrokeStyle) error {
	r, err := sc.ready("StrokeLine")
	if err != nil {
		return err
	}
	a, b := r.xf.Point(from), r.xf.Point(to)
	sc.useStroke(style)
	sc.ctx.BeginPath()
	sc.ctx.MoveTo(a.X, a.Y)
	sc.ctx.LineTo(b.X, b.Y)
	sc.ctx.Stroke()
	return nil
}

// StrokeRect outlines the canvas projection of a world rect.
func (sc *ScalingCanvas) StrokeRect(spec RectSpec, style *StrokeStyle) error {
	r, err := sc.ready("StrokeRect")
	if err != nil {
		return err
	}
	c := r.xf.Rect(spec.worldRect())
	sc.useStroke(style)
	size := c.Diagonal()
	sc.ctx.StrokeRect(c.Min.X, c.Min.Y, size.X, size.Y)
	return nil
}

// FillRect fills the canvas projection of a world rect.
func (sc *ScalingCanvas) FillRect(spec RectSpec, style *FillStyle) error {
	r, err := sc.ready("FillRect")
	if err != nil {
		return err
	}
	c := r.xf.Rect(spec.worldRect())
	sc.useFill(style)
	size := c.Diagonal()
	sc.ctx.FillRect(c.Min.X, c.Min.Y, size.X, size.Y)
	return nil
}

// circle projects a world circle. The radius goes through the vector map as
// (radius, radius) and the larger canvas component wins, so an anisotropic
// transform still yields a circle.
func circle(xf geom.Affine, center geom.Vec2, radius float64) (geom.Vec2, float64) {
	c := xf.Point(center)
	rv := xf.Vec(geom.V(radius, radius)).Abs()
	return c, rv.MaxComponent()
}

// StrokeCircle outlines a world circle.
func (sc *ScalingCanvas) StrokeCircle(center geom.Vec2, radius float64, style *StrokeStyle) error {
	r, err := sc.ready("StrokeCircle")
	if err != nil {
		return err
	}
	c, cr := circle(r.xf, center, radius)
	sc.useStroke(style)
	sc.ctx.BeginPath()
	sc.ctx.Arc(c.X, c.Y, cr, 0, 2*math.Pi)
	sc.ctx.Stroke()
	return nil
}

// FillCircle fills a world circle.
func (sc *ScalingCanvas) FillCircle(center geom.Vec2, radius float64, style *FillStyle) error {
	r, err := sc.ready("FillCircle")
	if err != nil {
		return err
	}
	c, cr := circle(r.xf, center, radius)
	sc.useFill(style)
	sc.ctx.BeginPath()
	sc.ctx.Arc(c.X, c.Y, cr, 0, 2*math.Pi)
	sc.ctx.Fill()
	return nil
}

// Write draws text anchored at a world point. Only the anchor is
// transformed: glyphs keep their raster pixel size at any zoom.
func (sc *ScalingCanvas) Write(pos geom.Vec2, text string, style *FontStyle) error {
	r, err := sc.ready("Write")
	if err != nil {
		return err
	}
	p := r.xf.Point(pos)
	if style != nil {
		sc.SetFont(*style)
	}
	// Text is painted with the font brush, then the fill state is restored.
	sc.ctx.SetFillStyle(sc.font.Brush)
	sc.ctx.FillText(text, p.X, p.Y)
	sc.applyFill()
	return nil
}

// MeasureText returns the box the host reports for text with the current
// font, converted to world units relative to the anchor point. With the
// Y-up world, Max.Y is the ascent and Min.Y the negated descent.
func (sc *ScalingCanvas) MeasureText(text string) (geom.Rect, error) {
	r, err := sc.ready("MeasureText")
	if err != nil {
		return geom.Rect{}, err
	}
	m := sc.ctx.MeasureText(text)
	box := geom.R(-m.Left, -m.Ascent, m.Right, m.Descent)
	return r.xf.InverseArea(box), nil
}

func (sc *ScalingCanvas) tracePoints(xf geom.Affine, points []geom.Vec2, closed bool) {
	sc.ctx.BeginPath()
	for i, p := range points {
		c := xf.Point(p)
		if i == 0 {
			sc.ctx.MoveTo(c.X, c.Y)
		} else {
			sc.ctx.LineTo(c.X, c.Y)
		}
	}
	if closed {
		sc.ctx.ClosePath()
	}
}

// StrokePoints draws a polyline through points; closed joins the last
// point back to the first.
func (sc *ScalingCanvas) StrokePoints(points []geom.Vec2, closed bool, style *StrokeStyle) error {
	r, err := sc.ready("StrokePoints")
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}
	sc.useStroke(style)
	sc.tracePoints(r.xf, points, closed)
	sc.ctx.Stroke()
	return nil
}

// FillPoints fills the polygon through points.
func (sc *ScalingCanvas) FillPoints(points []geom.Vec2, closed bool, style *FillStyle) error {
	r, err := sc.ready("FillPoints")
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}
	sc.useFill(style)
	sc.tracePoints(r.xf, points, closed)
	sc.ctx.Fill()
	return nil
}
