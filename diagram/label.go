package diagram

import "scaling-canvas/geom"

// Label is text in a box.
type Label struct {
	Box  *Box
	Text DisplayText
}

func NewLabel(text string) *Label {
	return &Label{Box: NewBox(4), Text: DisplayText{Text: text}}
}

// SizeLabel places the label with its top-left corner at offset.
func SizeLabel(b *Brush, l *Label, offset geom.Vec2) {
	SizeText(b, &l.Text, geom.Zero)
	contents := []geom.Rect{l.Text.Rect}
	PutContentsAsRow(l.Box, offset, contents, AlignMiddle)
	l.Text.Rect = contents[0]
}

func PaintLabel(b *Brush, l *Label) {
	PaintBox(b, l.Box)
	PaintText(b, &l.Text)
}
