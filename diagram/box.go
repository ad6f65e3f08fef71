package diagram

import (
	"image/color"

	"scaling-canvas/canvas"
	"scaling-canvas/geom"
)

// Box is a padded frame around some contents.
type Box struct {
	Rect        geom.Rect
	Fill        canvas.Brush
	Hilite      canvas.Brush
	Outline     canvas.Brush
	OutlineSize float64
	Padding     float64
	Highlighted bool
}

// NewBox returns a light grey box with a thin black outline.
func NewBox(padding float64) *Box {
	return &Box{
		Fill:        color.RGBA{0xee, 0xee, 0xee, 0xff},
		Hilite:      color.RGBA{0xff, 0xff, 0x88, 0xff},
		Outline:     color.Black,
		OutlineSize: 1,
		Padding:     padding,
	}
}

// SizeBox fits the box around contents plus its padding.
func SizeBox(box *Box, contents geom.Rect) {
	box.Rect = contents.Grow(geom.V(box.Padding, box.Padding))
}

// PutContentsAsRow lays contents out in a row inside the box, whose top-left
// corner goes at offset, and sizes the box around them. contents is updated
// in place.
func PutContentsAsRow(box *Box, offset geom.Vec2, contents []geom.Rect, align VerticalAlignment) {
	inner := offset.Add(geom.V(box.Padding, box.Padding))
	SizeBox(box, ArrangeAsRow(inner, contents, align))
}

func PaintBox(b *Brush, box *Box) {
	if box.Fill != nil {
		b.SetFill(box.Fill)
		b.FillRect(canvas.Corners(box.Rect))
	}
	if box.Highlighted && box.Hilite != nil {
		b.SetFill(box.Hilite)
		b.FillRect(canvas.Corners(box.Rect))
	}
	if box.Outline != nil && box.OutlineSize > 0 {
		b.SetStroke(box.Outline, box.OutlineSize)
		b.StrokeRect(canvas.Corners(box.Rect))
	}
}
