package diagram

import (
	"image/color"

	"scaling-canvas/geom"
)

// DefaultFont is the font of labels, ports and piece names.
const DefaultFont = "1rem sans-serif"

// DisplayText is a single line of text and the rect it occupies.
type DisplayText struct {
	Font  string
	Text  string
	Rect  geom.Rect
	Color color.Color
}

// SizeText measures the text and puts its top-left corner at offset.
func SizeText(b *Brush, t *DisplayText, offset geom.Vec2) {
	b.SetFont(t.font(), nil)
	t.Rect = geom.Rect{Min: offset, Max: offset.Add(b.TextSize(t.Text))}
}

// PaintText writes the text with its baseline on the bottom of its rect.
func PaintText(b *Brush, t *DisplayText) {
	clr := t.Color
	if clr == nil {
		clr = color.Black
	}
	b.SetFont(t.font(), clr)
	b.Write(geom.V(t.Rect.Min.X, t.Rect.Max.Y), t.Text)
}

func (t *DisplayText) font() string {
	if t.Font == "" {
		return DefaultFont
	}
	return t.Font
}
