package geom

// Rect is an axis-aligned rectangle defined by its min and max corners.
// Callers keep Min <= Max on both axes; zero-area rects are allowed.
type Rect struct {
	Min, Max Vec2
}

// R builds a rect from two corner coordinates, normalizing them.
func R(x0, y0, x1, y1 float64) Rect {
	return RectFromCorners(Vec2{x0, y0}, Vec2{x1, y1})
}

// RectFromCorners returns the rect spanned by two arbitrary corners.
func RectFromCorners(a, b Vec2) Rect {
	return Rect{Min: a.Min(b), Max: a.Max(b)}
}

// FromCenterRadius returns the square centered on c extending r in every direction.
func FromCenterRadius(c Vec2, r float64) Rect {
	return FromCenterHalfSpan(c, Vec2{r, r})
}

// FromCenterHalfSpan returns the rect c-half .. c+half.
func FromCenterHalfSpan(c, half Vec2) Rect {
	return RectFromCorners(c.Sub(half), c.Add(half))
}

// FromCenterSize returns the rect of the given full size centered on c.
func FromCenterSize(c, size Vec2) Rect {
	return FromCenterHalfSpan(c, size.Scale(0.5))
}

// Diagonal returns Max - Min.
func (r Rect) Diagonal() Vec2 {
	return r.Max.Sub(r.Min)
}

// Size is an alias of Diagonal.
func (r Rect) Size() Vec2 {
	return r.Diagonal()
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rect.
func (r Rect) Center() Vec2 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Empty reports whether the rect has zero area.
func (r Rect) Empty() bool {
	return r.Dx() <= 0 || r.Dy() <= 0
}

// Normalized swaps coordinates so that Min <= Max.
func (r Rect) Normalized() Rect {
	return RectFromCorners(r.Min, r.Max)
}

// Grow expands the rect by d on every side (negative d shrinks).
func (r Rect) Grow(d Vec2) Rect {
	return Rect{Min: r.Min.Sub(d), Max: r.Max.Add(d)}
}

// Translate moves the rect by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// MoveTo places the rect's Min corner at p, keeping its size.
func (r Rect) MoveTo(p Vec2) Rect {
	return r.Translate(p.Sub(r.Min))
}

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.Min) && r.Contains(o.Max)
}

// Union returns the smallest rect containing both.
func (r Rect) Union(o Rect) Rect {
	return Rect{Min: r.Min.Min(o.Min), Max: r.Max.Max(o.Max)}
}

// ApproxEqual compares both corners within eps.
func (r Rect) ApproxEqual(o Rect, eps float64) bool {
	return r.Min.ApproxEqual(o.Min, eps) && r.Max.ApproxEqual(o.Max, eps)
}
