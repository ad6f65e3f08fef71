package geom

import "math"

// Vec2 represents a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

var (
	Zero  = Vec2{0, 0}
	Left  = Vec2{-1, 0}
	Right = Vec2{1, 0}
	Up    = Vec2{0, 1}
	Down  = Vec2{0, -1}
)

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add adds two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other from v.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides the vector by a scalar.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Len returns the length (magnitude) of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Project returns the projection of v onto axis.
func (v Vec2) Project(axis Vec2) Vec2 {
	d := axis.Dot(axis)
	if d == 0 {
		return Vec2{}
	}
	return axis.Scale(v.Dot(axis) / d)
}

// Abs returns the vector with absolute components.
func (v Vec2) Abs() Vec2 {
	return Vec2{math.Abs(v.X), math.Abs(v.Y)}
}

// MaxComponent returns the larger of X and Y.
func (v Vec2) MaxComponent() float64 {
	return math.Max(v.X, v.Y)
}

// Min returns the component-wise minimum.
func (v Vec2) Min(other Vec2) Vec2 {
	return Vec2{math.Min(v.X, other.X), math.Min(v.Y, other.Y)}
}

// Max returns the component-wise maximum.
func (v Vec2) Max(other Vec2) Vec2 {
	return Vec2{math.Max(v.X, other.X), math.Max(v.Y, other.Y)}
}

// ApproxEqual reports whether v and other differ by at most eps on each axis.
func (v Vec2) ApproxEqual(other Vec2, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps && math.Abs(v.Y-other.Y) <= eps
}
