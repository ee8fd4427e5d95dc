package pathkit

import "math"

// Shape generator: canonical point sequences for primitive shapes,
// derived purely from two corner points of the drag gesture.

// ShapeKind identifies a primitive shape.
type ShapeKind int

const (
	// ShapeRectangle is an axis-aligned rectangle.
	ShapeRectangle ShapeKind = iota

	// ShapeSquare is a rectangle with equal sides anchored at start.
	ShapeSquare

	// ShapeEllipse is an axis-aligned ellipse inscribed in the drag box.
	ShapeEllipse

	// ShapeCircle is an ellipse with equal radii anchored at start.
	ShapeCircle

	// ShapeTriangle is an isosceles triangle with its apex on the top edge.
	ShapeTriangle

	// ShapeStar is a 10-point alternating outer/inner fan.
	ShapeStar

	// ShapeLine is a straight two-point segment.
	ShapeLine
)

// ellipseSegments is the sample count for ellipse and circle outlines.
const ellipseSegments = 60

// starInnerRatio is the inner radius of a star relative to the outer.
const starInnerRatio = 0.4

// ShapePoints returns the canonical closed point loop for the given
// shape spanned by the two corner points. Square and circle force equal
// width and height anchored at start. Shapes keep Smoothing == 0 so
// their corners stay sharp.
func ShapePoints(kind ShapeKind, start, end Point) []Point {
	switch kind {
	case ShapeSquare, ShapeCircle:
		end = squareOff(start, end)
	}

	switch kind {
	case ShapeRectangle, ShapeSquare:
		return []Point{
			start,
			{X: end.X, Y: start.Y},
			end,
			{X: start.X, Y: end.Y},
			start,
		}
	case ShapeEllipse, ShapeCircle:
		return ellipsePoints(start, end)
	case ShapeTriangle:
		return []Point{
			{X: (start.X + end.X) / 2, Y: start.Y},
			{X: end.X, Y: end.Y},
			{X: start.X, Y: end.Y},
			{X: (start.X + end.X) / 2, Y: start.Y},
		}
	case ShapeStar:
		return starPoints(start, end)
	case ShapeLine:
		return []Point{start, end}
	}
	return nil
}

// squareOff forces end to span equal extents from start, keeping the
// drag direction of each axis.
func squareOff(start, end Point) Point {
	side := math.Max(math.Abs(end.X-start.X), math.Abs(end.Y-start.Y))
	return Point{
		X: start.X + math.Copysign(side, end.X-start.X),
		Y: start.Y + math.Copysign(side, end.Y-start.Y),
	}
}

// ellipsePoints samples the inscribed ellipse with ellipseSegments
// segments, closing the loop exactly.
func ellipsePoints(start, end Point) []Point {
	center := start.Midpoint(end)
	rx := (end.X - start.X) / 2
	ry := (end.Y - start.Y) / 2
	pts := make([]Point, 0, ellipseSegments+1)
	for i := 0; i <= ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts = append(pts, Point{
			X: center.X + rx*math.Cos(a),
			Y: center.Y + ry*math.Sin(a),
		})
	}
	// Close on the exact first point, free of trig rounding.
	pts[len(pts)-1] = pts[0]
	return pts
}

// starPoints builds a 10-point fan alternating between the outer radius
// and starInnerRatio times it, starting at the top.
func starPoints(start, end Point) []Point {
	center := start.Midpoint(end)
	rx := (end.X - start.X) / 2
	ry := (end.Y - start.Y) / 2
	pts := make([]Point, 0, 11)
	for i := 0; i < 10; i++ {
		r := 1.0
		if i%2 == 1 {
			r = starInnerRatio
		}
		a := -math.Pi/2 + math.Pi/5*float64(i)
		pts = append(pts, Point{
			X: center.X + rx*r*math.Cos(a),
			Y: center.Y + ry*r*math.Sin(a),
		})
	}
	pts = append(pts, pts[0])
	return pts
}

// DetectShapePoints classifies a freehand stroke as a primitive shape
// for shape-snap gestures. It recognizes lines, rectangles, and
// ellipses; anything ambiguous returns ok == false so callers keep the
// stroke as drawn.
func DetectShapePoints(points []Point) (ShapeKind, bool) {
	if len(points) < 2 {
		return 0, false
	}

	chord := points[0].Distance(points[len(points)-1])
	box := BoundingBox(points)
	extent := math.Hypot(box.W, box.H)
	if extent == 0 {
		return 0, false
	}

	// An open stroke hugging its own chord is a line.
	if chord > 0.8*extent {
		maxDev := 0.0
		for _, p := range points {
			d := pointSegmentDistance(p, points[0], points[len(points)-1])
			maxDev = math.Max(maxDev, d)
		}
		if maxDev < 0.05*extent {
			return ShapeLine, true
		}
		return 0, false
	}

	// Closed-ish strokes: compare enclosed area against the bounds.
	// A rectangle fills its bounding box; an ellipse fills pi/4 of it.
	if chord > 0.2*extent || box.Area() == 0 {
		return 0, false
	}
	fill := math.Abs(signedArea(points)) / 2 / box.Area()
	switch {
	case fill > 0.88:
		return ShapeRectangle, true
	case fill > 0.68 && fill < 0.85:
		return ShapeEllipse, true
	}
	return 0, false
}
