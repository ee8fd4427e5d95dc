package pathkit

import "math"

// Rect represents an axis-aligned rectangle defined by its
// minimum corner and extent.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from two corner points, normalizing
// so that W and H are non-negative.
func NewRect(p1, p2 Point) Rect {
	x0 := math.Min(p1.X, p2.X)
	y0 := math.Min(p1.Y, p2.Y)
	return Rect{
		X: x0,
		Y: y0,
		W: math.Max(p1.X, p2.X) - x0,
		H: math.Max(p1.Y, p2.Y) - y0,
	}
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns the enclosed area.
func (r Rect) Area() float64 { return r.W * r.H }

// Contains reports whether p lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.MaxX(), other.MaxX())
	y1 := math.Max(r.MaxY(), other.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Expand returns the rectangle grown by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{X: r.X - pad, Y: r.Y - pad, W: r.W + 2*pad, H: r.H + 2*pad}
}

// Translate returns the rectangle shifted by v.
func (r Rect) Translate(v Point) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

// IntersectsCircle reports whether the circle at center with the given
// radius overlaps the rectangle.
func (r Rect) IntersectsCircle(center Point, radius float64) bool {
	// Distance from the circle center to the closest point of the rect.
	cx := math.Max(r.X, math.Min(center.X, r.MaxX()))
	cy := math.Max(r.Y, math.Min(center.Y, r.MaxY()))
	dx := center.X - cx
	dy := center.Y - cy
	return dx*dx+dy*dy <= radius*radius
}

// BoundingBox returns the axis-aligned bounds of a point sequence.
// Empty input yields a degenerate zero rectangle.
func BoundingBox(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
