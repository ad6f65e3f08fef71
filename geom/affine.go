package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine is a 2D affine map stored in row-major order with an implicit
// bottom row of [0 0 1]:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
type Affine struct {
	m f64.Aff3
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{m: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// NewAffine wraps a raw matrix.
func NewAffine(m f64.Aff3) Affine {
	return Affine{m: m}
}

// Matrix returns the raw matrix.
func (a Affine) Matrix() f64.Aff3 {
	return a.m
}

// FitOptions tune ScaleFit.
type FitOptions struct {
	// InvertY flips the vertical axis so that increasing source Y maps to
	// decreasing destination Y.
	InvertY bool
}

// ScaleFit returns the transform that maps src into dst using the largest
// uniform scale that keeps all of src visible, with src's center landing on
// dst's center. Axes on which src has no extent do not constrain the scale;
// when src is a single point the scale is 1.
func ScaleFit(src, dst Rect, opts FitOptions) Affine {
	s := math.Inf(1)
	if w := src.Dx(); w > 0 {
		s = math.Min(s, dst.Dx()/w)
	}
	if h := src.Dy(); h > 0 {
		s = math.Min(s, dst.Dy()/h)
	}
	if math.IsInf(s, 1) {
		s = 1
	}

	sy := s
	if opts.InvertY {
		sy = -s
	}
	sc := src.Center()
	dc := dst.Center()
	return Affine{m: f64.Aff3{
		s, 0, dc.X - s*sc.X,
		0, sy, dc.Y - sy*sc.Y,
	}}
}

// Mul returns the composition a∘b (b applied first).
func (a Affine) Mul(b Affine) Affine {
	m, n := a.m, b.m
	return Affine{m: f64.Aff3{
		m[0]*n[0] + m[1]*n[3], m[0]*n[1] + m[1]*n[4], m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3], m[3]*n[1] + m[4]*n[4], m[3]*n[2] + m[4]*n[5] + m[5],
	}}
}

func (a Affine) det() float64 {
	return a.m[0]*a.m[4] - a.m[1]*a.m[3]
}

// Invertible reports whether the transform has an inverse.
func (a Affine) Invertible() bool {
	return a.det() != 0
}

// Inverse returns the inverse transform. ok is false for a singular
// transform (e.g. a fit into a zero-sized canvas), in which case the
// returned map sends everything to the origin.
func (a Affine) Inverse() (inv Affine, ok bool) {
	m := a.m
	d := a.det()
	if d == 0 {
		return Affine{m: f64.Aff3{0, 0, 0, 0, 0, 0}}, false
	}
	return Affine{m: f64.Aff3{
		m[4] / d, -m[1] / d, (m[1]*m[5] - m[4]*m[2]) / d,
		-m[3] / d, m[0] / d, (m[3]*m[2] - m[0]*m[5]) / d,
	}}, true
}

// ScaleFactors returns the absolute scale along each axis.
func (a Affine) ScaleFactors() Vec2 {
	return Vec2{math.Hypot(a.m[0], a.m[3]), math.Hypot(a.m[1], a.m[4])}
}

// Point maps a position; translation applies.
func (a Affine) Point(p Vec2) Vec2 {
	return Vec2{
		a.m[0]*p.X + a.m[1]*p.Y + a.m[2],
		a.m[3]*p.X + a.m[4]*p.Y + a.m[5],
	}
}

// Vec maps a displacement; translation is ignored.
func (a Affine) Vec(v Vec2) Vec2 {
	return Vec2{
		a.m[0]*v.X + a.m[1]*v.Y,
		a.m[3]*v.X + a.m[4]*v.Y,
	}
}

// Rect maps both corners as points and re-normalizes the result, so a
// flipped axis still yields Min <= Max.
func (a Affine) Rect(r Rect) Rect {
	return RectFromCorners(a.Point(r.Min), a.Point(r.Max))
}

// Area maps a size-only rect: both corners are treated as displacements.
func (a Affine) Area(r Rect) Rect {
	return RectFromCorners(a.Vec(r.Min), a.Vec(r.Max))
}

// InversePoint maps a position back through the inverse transform.
func (a Affine) InversePoint(p Vec2) Vec2 {
	inv, _ := a.Inverse()
	return inv.Point(p)
}

// InverseVec maps a displacement back through the inverse transform.
func (a Affine) InverseVec(v Vec2) Vec2 {
	inv, _ := a.Inverse()
	return inv.Vec(v)
}

// InverseRect maps a rect back through the inverse transform.
func (a Affine) InverseRect(r Rect) Rect {
	inv, _ := a.Inverse()
	return inv.Rect(r)
}

// InverseArea maps a size-only rect back through the inverse transform.
func (a Affine) InverseArea(r Rect) Rect {
	inv, _ := a.Inverse()
	return inv.Area(r)
}
