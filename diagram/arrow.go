package diagram

import (
	"image/color"
	"math"

	"scaling-canvas/geom"
)

const (
	ballSpacing = 30
	ballRadius  = 3.5
	ballSpeed   = 50
)

// Arrow connects an output port of one piece to an input port of another.
type Arrow struct {
	FromID   string
	FromPort string
	ToID     string
	ToPort   string
	Color    color.Color
}

// PaintArrow draws a line from source to target with balls travelling
// along it; t is the animation time in seconds.
func PaintArrow(b *Brush, a *Arrow, source, target geom.Vec2, t float64) {
	clr := a.Color
	if clr == nil {
		clr = color.Black
	}
	b.SetStroke(clr, 1)
	b.Line(source, target)

	d := target.Sub(source)
	length := d.Len()
	if length == 0 {
		return
	}
	dir := d.Div(length)
	b.SetFill(clr)
	s := math.Mod(t*ballSpeed, ballSpacing)
	if s < 0 {
		s += ballSpacing
	}
	for ; s <= length; s += ballSpacing {
		b.FillCircle(source.Add(dir.Scale(s)), ballRadius)
	}
}
