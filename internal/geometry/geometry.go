package geometry

import "math"

const (
	// MinOverlapFraction is the share of a span that must overlap another
	// span before the two count as connected for a room transition.
	MinOverlapFraction = 0.3

	// EdgeEpsilon absorbs float drift in authored level coordinates
	EdgeEpsilon = 0.001
)

// Axis selects one of the two movement axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// String returns the axis name
func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Vec2 is a point or direction in world units
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by f
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the vector length
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector in the same direction.
// The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Overlaps1D reports whether span B covers more than minFraction of span A.
// The threshold is relative to A only, so the test is not symmetric.
func Overlaps1D(startA, endA, startB, endB, minFraction float64) bool {
	overlap := math.Min(endA, endB) - math.Max(startA, startB)
	return overlap > minFraction*(endA-startA)
}

// EdgesTouch reports whether two edge coordinates coincide within EdgeEpsilon
func EdgesTouch(a, b float64) bool {
	return math.Abs(a-b) < EdgeEpsilon
}

// Clamp limits v to [lo, hi]. When the range is inverted hi wins.
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
