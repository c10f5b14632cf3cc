package geometry

// Rect is an axis-aligned rectangle anchored at its bottom-left corner
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NewRect creates a rectangle
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// CenteredSquare returns a size×size square centered on c
func CenteredSquare(c Vec2, size float64) Rect {
	return Rect{X: c.X - size/2, Y: c.Y - size/2, Width: size, Height: size}
}

// Left edge
func (r Rect) Left() float64 { return r.X }

// Right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom edge
func (r Rect) Bottom() float64 { return r.Y }

// Top edge
func (r Rect) Top() float64 { return r.Y + r.Height }

// Origin returns the bottom-left corner
func (r Rect) Origin() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Center returns the midpoint
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Min returns the low edge along axis
func (r Rect) Min(axis Axis) float64 {
	if axis == AxisY {
		return r.Bottom()
	}
	return r.Left()
}

// Max returns the high edge along axis
func (r Rect) Max(axis Axis) float64 {
	if axis == AxisY {
		return r.Top()
	}
	return r.Right()
}

// Extent returns the size along axis
func (r Rect) Extent(axis Axis) float64 {
	if axis == AxisY {
		return r.Height
	}
	return r.Width
}

// Translate moves the rectangle by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Shift moves the rectangle by delta along axis
func (r Rect) Shift(axis Axis, delta float64) Rect {
	if axis == AxisY {
		return r.Translate(0, delta)
	}
	return r.Translate(delta, 0)
}

// WithMin places the low edge along axis at v
func (r Rect) WithMin(axis Axis, v float64) Rect {
	if axis == AxisY {
		r.Y = v
	} else {
		r.X = v
	}
	return r
}

// MoveTo places the bottom-left corner at p
func (r Rect) MoveTo(p Vec2) Rect {
	r.X = p.X
	r.Y = p.Y
	return r
}

// ContainsSpan reports whether inner stays within r along axis, edges included
func (r Rect) ContainsSpan(inner Rect, axis Axis) bool {
	return inner.Min(axis) >= r.Min(axis) && inner.Max(axis) <= r.Max(axis)
}

// ContainsRect reports whether inner lies within r, edges included
func (r Rect) ContainsRect(inner Rect) bool {
	return r.ContainsSpan(inner, AxisX) && r.ContainsSpan(inner, AxisY)
}

// StrictlyContains reports whether inner lies within r without touching any edge
func (r Rect) StrictlyContains(inner Rect) bool {
	return inner.Left() > r.Left() &&
		inner.Right() < r.Right() &&
		inner.Bottom() > r.Bottom() &&
		inner.Top() < r.Top()
}

// ContainsPoint reports whether p lies within r, edges included
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Bottom() && p.Y <= r.Top()
}

// DistanceTo returns the distance from p to the closest point of r
func (r Rect) DistanceTo(p Vec2) float64 {
	closest := Vec2{
		X: Clamp(p.X, r.Left(), r.Right()),
		Y: Clamp(p.Y, r.Bottom(), r.Top()),
	}
	return closest.Dist(p)
}
