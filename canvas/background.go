package canvas

import (
	"errors"
	"math"

	"scaling-canvas/geom"
)

// maxGridLines bounds the lines drawn per axis when zoomed far out.
const maxGridLines = 512

// originCrossPixels is the half-length of the origin cross in raster pixels.
const originCrossPixels = 15

// ErrBadSpacing is returned by DrawGrid for a non-positive spacing.
var ErrBadSpacing = errors.New("canvas: grid spacing must be positive")

// DrawGrid strokes world-space grid lines every spacing units across the
// visible window, then a cross over the world origin. When the window holds
// more than maxGridLines lines per axis, the spacing is doubled until it
// fits.
func (sc *ScalingCanvas) DrawGrid(spacing float64, style *StrokeStyle) error {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return ErrBadSpacing
	}
	win, err := sc.Window()
	if err != nil {
		return err
	}
	for win.Dx()/spacing > maxGridLines || win.Dy()/spacing > maxGridLines {
		spacing *= 2
	}

	sc.useStroke(style)
	// Lines are indexed rather than accumulated: far from the origin
	// x+spacing can round back to x.
	x0 := math.Ceil(win.Min.X / spacing)
	for i := 0; i <= maxGridLines+1; i++ {
		x := (x0 + float64(i)) * spacing
		if x > win.Max.X {
			break
		}
		if err := sc.StrokeLine(geom.V(x, win.Min.Y), geom.V(x, win.Max.Y), nil); err != nil {
			return err
		}
	}
	y0 := math.Ceil(win.Min.Y / spacing)
	for i := 0; i <= maxGridLines+1; i++ {
		y := (y0 + float64(i)) * spacing
		if y > win.Max.Y {
			break
		}
		if err := sc.StrokeLine(geom.V(win.Min.X, y), geom.V(win.Max.X, y), nil); err != nil {
			return err
		}
	}

	arm, err := sc.CanvasToWorldVec(geom.V(originCrossPixels, originCrossPixels))
	if err != nil {
		return err
	}
	arm = arm.Abs()
	base := sc.stroke
	defer sc.SetStroke(base)
	cross := StrokeStyle{Brush: base.Brush, Width: 2 * base.Width}
	if err := sc.StrokeLine(geom.V(-arm.X, 0), geom.V(arm.X, 0), &cross); err != nil {
		return err
	}
	return sc.StrokeLine(geom.V(0, -arm.Y), geom.V(0, arm.Y), nil)
}
