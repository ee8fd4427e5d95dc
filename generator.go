package pathkit

import "math"

// Curve generators: turn an ordered point sequence into a renderable
// curve description. Every generator treats sequences of fewer than 2
// points as empty, and falls back to straight lines below 3 points.

// LinedPath emits the canonical straight-line rendering: a move to the
// first point followed by a line to each subsequent point.
func LinedPath(points []Point) *Path {
	p := NewPath()
	if len(points) < 2 {
		return p
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// SmoothedPath fits a smooth quadratic curve through a sparse point
// skeleton. A smoothing factor of zero means no curve fitting at all
// (geometric primitives keep sharp corners) and delegates to
// [LinedPath]. Otherwise the points are moving-average smoothed,
// simplified, and stitched into quadratic spans through segment
// midpoints, which guarantees tangent continuity at the cost of not
// interpolating the input points exactly.
func SmoothedPath(points []Point, smoothing float64) *Path {
	if smoothing <= 0 || len(points) < 3 {
		return LinedPath(points)
	}

	smoothed := movingAverage(points, int(math.Ceil(smoothing)))
	simplified := Simplify(smoothed, 0.5+smoothing*0.1)
	if len(simplified) < 3 {
		return LinedPath(simplified)
	}

	p := NewPath()
	p.MoveTo(simplified[0].X, simplified[0].Y)
	for i := 1; i < len(simplified)-1; i++ {
		mid := simplified[i].Midpoint(simplified[i+1])
		p.QuadraticTo(simplified[i].X, simplified[i].Y, mid.X, mid.Y)
	}
	last := simplified[len(simplified)-1]
	p.LineTo(last.X, last.Y)
	return p
}

// movingAverage applies iterations passes of the 3-point weighted
// kernel 0.25*prev + 0.5*curr + 0.25*next, holding the first and last
// point fixed each pass.
func movingAverage(points []Point, iterations int) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	if len(out) < 3 {
		return out
	}
	next := make([]Point, len(out))
	for it := 0; it < iterations; it++ {
		next[0] = out[0]
		next[len(out)-1] = out[len(out)-1]
		for i := 1; i < len(out)-1; i++ {
			next[i] = Point{
				X: 0.25*out[i-1].X + 0.5*out[i].X + 0.25*out[i+1].X,
				Y: 0.25*out[i-1].Y + 0.5*out[i].Y + 0.25*out[i+1].Y,
			}
		}
		out, next = next, out
	}
	return out
}

// BezierSegments converts a point sequence into explicit cubic Bezier
// segments using the Catmull-Rom construction: for each consecutive
// pair p1,p2 with neighbors p0,p3 (clamped at the sequence ends),
//
//	cp1 = p1 + (p2-p0)*tension/3
//	cp2 = p2 - (p3-p1)*tension/3
//
// The default drawing tension is 0.5.
func BezierSegments(points []Point, tension float64) []BezierSegment {
	if len(points) < 2 {
		return nil
	}
	segs := make([]BezierSegment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, len(points)-1)]

		segs = append(segs, BezierSegment{
			Start: p1,
			CP1:   p1.Add(p2.Sub(p0).Mul(tension / 3)),
			CP2:   p2.Sub(p3.Sub(p1).Mul(tension / 3)),
			End:   p2,
		})
	}
	return segs
}

// CubicPath flattens the Catmull-Rom segments of [BezierSegments] into
// a single curve description.
func CubicPath(points []Point, tension float64) *Path {
	if len(points) < 3 {
		return LinedPath(points)
	}
	p := NewPath()
	segs := BezierSegments(points, tension)
	p.MoveTo(segs[0].Start.X, segs[0].Start.Y)
	for _, s := range segs {
		p.CubicTo(s.CP1.X, s.CP1.Y, s.CP2.X, s.CP2.Y, s.End.X, s.End.Y)
	}
	return p
}
