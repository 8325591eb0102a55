package game

import "math"

// Vec2F is a point or direction in continuous screen space.
type Vec2F struct {
	X, Y float64
}

// Vec2I is a discrete pixel or grid coordinate.
type Vec2I struct {
	X, Y int32
}

func (v Vec2F) Add(o Vec2F) Vec2F     { return Vec2F{v.X + o.X, v.Y + o.Y} }
func (v Vec2F) Sub(o Vec2F) Vec2F     { return Vec2F{v.X - o.X, v.Y - o.Y} }
func (v Vec2F) Scale(k float64) Vec2F { return Vec2F{v.X * k, v.Y * k} }
func (v Vec2F) Len() float64          { return math.Hypot(v.X, v.Y) }

// Eq reports whether v and o agree within eps on both axes.
func (v Vec2F) Eq(o Vec2F, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func (v Vec2F) Normalize() Vec2F {
	l := v.Len()
	if l == 0 {
		return Vec2F{}
	}
	return Vec2F{v.X / l, v.Y / l}
}

// Trunc converts to a pixel coordinate, truncating toward zero.
func (v Vec2F) Trunc() Vec2I {
	return Vec2I{int32(v.X), int32(v.Y)}
}

// Heading returns the unit vector for an angle in radians.
func Heading(angle float64) Vec2F {
	return Vec2F{math.Cos(angle), math.Sin(angle)}
}

// Clamp limits value to [min, max]. The lower bound is applied first, so
// a degenerate range (min > max) yields max.
func Clamp(value, min, max float64) float64 {
	if value < min {
		value = min
	}
	if value > max {
		return max
	}
	return value
}

// clampInt is Clamp over ints, same branch order.
func clampInt(value, min, max int) int {
	if value < min {
		value = min
	}
	if value > max {
		return max
	}
	return value
}

// PixelCoordToIndex maps a pixel coordinate to its offset in a row-major
// buffer of the given width and height. Out-of-range coordinates are
// clamped, never rejected.
//
// With legacy set the upper clamp is the dimension itself rather than
// dimension-1, so x == width or y == height address one past the intended
// column or row.
func PixelCoordToIndex(x, y, width, height int, legacy bool) int {
	maxX, maxY := width-1, height-1
	if legacy {
		maxX, maxY = width, height
	}
	x = clampInt(x, 0, maxX)
	y = clampInt(y, 0, maxY)
	return y*width + x
}
