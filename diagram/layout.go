package diagram

import "scaling-canvas/geom"

// Brush space is Y-down, so "top" is the smaller Y.

type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

type Alignment int

const (
	Beginning Alignment = iota
	Middle
	End
)

type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

type VerticalAlignment int

const (
	AlignTop VerticalAlignment = iota
	AlignMiddle
	AlignBottom
)

func (v VerticalAlignment) alignment() Alignment {
	switch v {
	case AlignMiddle:
		return Middle
	case AlignBottom:
		return End
	}
	return Beginning
}

func (h HorizontalAlignment) alignment() Alignment {
	switch h {
	case AlignCenter:
		return Middle
	case AlignRight:
		return End
	}
	return Beginning
}

// Align moves rect inside envelope along the cross axis of a strip laid out
// in direction: a row aligns vertically, a column horizontally.
func Align(rect, envelope geom.Rect, direction Direction, alignment Alignment) geom.Rect {
	axis := geom.Right
	if direction == Horizontal {
		axis = geom.V(0, 1)
	}
	var delta geom.Vec2
	switch alignment {
	case Beginning:
		delta = envelope.Min.Sub(rect.Min)
	case End:
		delta = envelope.Max.Sub(rect.Max)
	case Middle:
		delta = envelope.Center().Sub(rect.Center())
	}
	return rect.Translate(delta.Project(axis))
}

// AlignVertical aligns rect to the top, middle or bottom of envelope.
func AlignVertical(rect, envelope geom.Rect, a VerticalAlignment) geom.Rect {
	return Align(rect, envelope, Horizontal, a.alignment())
}

// AlignHorizontal aligns rect to the left, center or right of envelope.
func AlignHorizontal(rect, envelope geom.Rect, a HorizontalAlignment) geom.Rect {
	return Align(rect, envelope, Vertical, a.alignment())
}

// ColumnSize is the size needed to stack sizes in one vertical strip.
func ColumnSize(sizes []geom.Vec2) geom.Vec2 {
	var s geom.Vec2
	for _, sz := range sizes {
		s.X = max(s.X, sz.X)
		s.Y += sz.Y
	}
	return s
}

// RowSize is the size needed to put sizes in one horizontal strip.
func RowSize(sizes []geom.Vec2) geom.Vec2 {
	var s geom.Vec2
	for _, sz := range sizes {
		s.X += sz.X
		s.Y = max(s.Y, sz.Y)
	}
	return s
}

func LinearSize(sizes []geom.Vec2, direction Direction) geom.Vec2 {
	if direction == Horizontal {
		return RowSize(sizes)
	}
	return ColumnSize(sizes)
}

// strip places rects end to end from offset and returns their envelope.
func strip(offset geom.Vec2, rects []geom.Rect, direction Direction) geom.Rect {
	pos := offset
	env := geom.Rect{Min: offset, Max: offset}
	for i, r := range rects {
		r = r.Translate(pos.Sub(r.Min))
		rects[i] = r
		if direction == Horizontal {
			pos.X = r.Max.X
		} else {
			pos.Y = r.Max.Y
		}
		env = env.Union(r)
	}
	return env
}

// Arrange lays rects out in one strip starting at offset, aligns each on
// the cross axis and returns the envelope. rects is updated in place.
func Arrange(offset geom.Vec2, rects []geom.Rect, direction Direction, alignment Alignment) geom.Rect {
	env := strip(offset, rects, direction)
	for i := range rects {
		rects[i] = Align(rects[i], env, direction, alignment)
	}
	return env
}

func ArrangeAsRow(offset geom.Vec2, rects []geom.Rect, a VerticalAlignment) geom.Rect {
	return Arrange(offset, rects, Horizontal, a.alignment())
}

func ArrangeAsColumn(offset geom.Vec2, rects []geom.Rect, a HorizontalAlignment) geom.Rect {
	return Arrange(offset, rects, Vertical, a.alignment())
}
